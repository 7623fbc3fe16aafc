package repository

import (
	"context"

	"github.com/tu-usuario/cse-motors/internal/domain/entity"
)

// ReviewRepository puerto de persistencia para las reseñas.
// Toda mutación está scoped por accountID en el WHERE: el dueño de la reseña
// es el único que puede editarla o borrarla, y la autoría nunca se reasigna.
type ReviewRepository interface {
	Create(ctx context.Context, r *entity.Review) error
	ListByVehicle(ctx context.Context, vehicleID int) ([]entity.Review, error)
	ListByAccount(ctx context.Context, accountID int) ([]entity.Review, error)
	GetOwned(ctx context.Context, reviewID, accountID int) (*entity.Review, error)
	UpdateText(ctx context.Context, reviewID, accountID int, text string) (*entity.Review, error)
	Delete(ctx context.Context, reviewID, accountID int) error
}
