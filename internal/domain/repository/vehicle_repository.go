package repository

import (
	"context"

	"github.com/tu-usuario/cse-motors/internal/domain/entity"
)

// VehicleRepository puerto de persistencia para el inventario de vehículos.
// Update y Delete devuelven domain.ErrNotFound si el vehículo no existe.
type VehicleRepository interface {
	Create(ctx context.Context, v *entity.Vehicle) error
	GetByID(ctx context.Context, id int) (*entity.Vehicle, error)
	ListByClassification(ctx context.Context, classificationID int) ([]entity.Vehicle, error)
	Update(ctx context.Context, v *entity.Vehicle) (*entity.Vehicle, error)
	Delete(ctx context.Context, id int) error
}
