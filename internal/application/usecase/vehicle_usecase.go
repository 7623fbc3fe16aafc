package usecase

import (
	"context"
	"errors"

	"github.com/tu-usuario/cse-motors/internal/application/ports"
	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	"github.com/tu-usuario/cse-motors/internal/domain/repository"
)

// Imágenes por defecto cuando el formulario no trae rutas.
const (
	defaultImage     = "/images/vehicles/no-image.png"
	defaultThumbnail = "/images/vehicles/no-image-tn.png"
)

// VehicleUseCase CRUD del inventario de vehículos.
type VehicleUseCase struct {
	vehicles        repository.VehicleRepository
	classifications repository.ClassificationRepository
	brochures       ports.BrochureGenerator
}

// NewVehicleUseCase construye el caso de uso.
func NewVehicleUseCase(
	vehicles repository.VehicleRepository,
	classifications repository.ClassificationRepository,
	brochures ports.BrochureGenerator,
) *VehicleUseCase {
	return &VehicleUseCase{vehicles: vehicles, classifications: classifications, brochures: brochures}
}

// Create persiste un vehículo nuevo. La clasificación referida debe existir.
func (uc *VehicleUseCase) Create(ctx context.Context, v *entity.Vehicle) error {
	if _, err := uc.classifications.GetByID(ctx, v.ClassificationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrInvalidInput
		}
		return err
	}
	if v.Image == "" {
		v.Image = defaultImage
	}
	if v.Thumbnail == "" {
		v.Thumbnail = defaultThumbnail
	}
	return uc.vehicles.Create(ctx, v)
}

// Update modifica un vehículo existente. Devuelve domain.ErrNotFound si no existe.
func (uc *VehicleUseCase) Update(ctx context.Context, v *entity.Vehicle) (*entity.Vehicle, error) {
	if _, err := uc.classifications.GetByID(ctx, v.ClassificationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidInput
		}
		return nil, err
	}
	return uc.vehicles.Update(ctx, v)
}

// Delete elimina un vehículo. Devuelve domain.ErrNotFound si no existe.
func (uc *VehicleUseCase) Delete(ctx context.Context, id int) error {
	return uc.vehicles.Delete(ctx, id)
}

// GetByID lee un vehículo con su clasificación.
func (uc *VehicleUseCase) GetByID(ctx context.Context, id int) (*entity.Vehicle, error) {
	return uc.vehicles.GetByID(ctx, id)
}

// ListByClassification lista los vehículos de una clasificación.
func (uc *VehicleUseCase) ListByClassification(ctx context.Context, classificationID int) ([]entity.Vehicle, error) {
	return uc.vehicles.ListByClassification(ctx, classificationID)
}

// Brochure genera la ficha PDF de un vehículo.
func (uc *VehicleUseCase) Brochure(ctx context.Context, id int) ([]byte, error) {
	v, err := uc.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.brochures.GenerateBrochure(ctx, v)
}
