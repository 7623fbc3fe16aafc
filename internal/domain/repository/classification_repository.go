package repository

import (
	"context"

	"github.com/tu-usuario/cse-motors/internal/domain/entity"
)

// ClassificationRepository puerto de persistencia para Classification.
type ClassificationRepository interface {
	Create(ctx context.Context, name string) (*entity.Classification, error)
	GetByID(ctx context.Context, id int) (*entity.Classification, error)
	List(ctx context.Context) ([]entity.Classification, error)
	// NameExists es el pre-check de unicidad que corre durante la validación
	// del formulario; el UNIQUE de la tabla respalda la ventana de carrera.
	NameExists(ctx context.Context, name string) (bool, error)
}
