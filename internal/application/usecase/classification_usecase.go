package usecase

import (
	"context"

	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	"github.com/tu-usuario/cse-motors/internal/domain/repository"
)

// ClassificationUseCase alta y listado de clasificaciones del inventario.
type ClassificationUseCase struct {
	repo repository.ClassificationRepository
}

// NewClassificationUseCase construye el caso de uso.
func NewClassificationUseCase(repo repository.ClassificationRepository) *ClassificationUseCase {
	return &ClassificationUseCase{repo: repo}
}

// Create persiste una clasificación nueva. Devuelve domain.ErrDuplicate si el
// nombre ya existe (pre-check más UNIQUE de la tabla como respaldo).
func (uc *ClassificationUseCase) Create(ctx context.Context, name string) (*entity.Classification, error) {
	exists, err := uc.repo.NameExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicate
	}
	return uc.repo.Create(ctx, name)
}

// List devuelve todas las clasificaciones ordenadas por nombre (menú de navegación
// y selects de los formularios de inventario).
func (uc *ClassificationUseCase) List(ctx context.Context) ([]entity.Classification, error) {
	return uc.repo.List(ctx)
}

// NameExists expone el pre-check de unicidad para la fase de validación.
func (uc *ClassificationUseCase) NameExists(ctx context.Context, name string) (bool, error) {
	return uc.repo.NameExists(ctx, name)
}

// GetByID lee una clasificación por ID.
func (uc *ClassificationUseCase) GetByID(ctx context.Context, id int) (*entity.Classification, error) {
	return uc.repo.GetByID(ctx, id)
}
