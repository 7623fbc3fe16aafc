package repository

import (
	"context"

	"github.com/tu-usuario/cse-motors/internal/domain/entity"
)

// AccountRepository define el puerto de persistencia para Account (DIP).
// Las lecturas devuelven domain.ErrNotFound cuando no hay fila; Create devuelve
// domain.ErrEmailAlreadyExists si el UNIQUE de email lo rechaza.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id int) (*entity.Account, error)
	GetByEmail(ctx context.Context, email string) (*entity.Account, error)
	// EmailInUse indica si el email pertenece a una cuenta distinta de excludeID
	// (excludeID = 0 para registro, donde no hay cuenta propia que excluir).
	EmailInUse(ctx context.Context, email string, excludeID int) (bool, error)
	UpdateInfo(ctx context.Context, id int, firstName, lastName, email string) (*entity.Account, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
}
