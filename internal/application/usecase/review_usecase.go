package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	"github.com/tu-usuario/cse-motors/internal/domain/repository"
)

// ReviewUseCase reseñas de clientes sobre vehículos. Toda mutación exige que
// el caller sea el autor: el accountID del token viaja hasta el WHERE del repo.
type ReviewUseCase struct {
	reviews repository.ReviewRepository
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(reviews repository.ReviewRepository) *ReviewUseCase {
	return &ReviewUseCase{reviews: reviews}
}

// Add crea una reseña firmada por la cuenta autenticada.
func (uc *ReviewUseCase) Add(ctx context.Context, vehicleID, accountID int, text string) error {
	r := &entity.Review{
		Text:      text,
		Date:      time.Now(),
		VehicleID: vehicleID,
		AccountID: accountID,
	}
	return uc.reviews.Create(ctx, r)
}

// ListByVehicle reseñas de un vehículo (página de detalle).
func (uc *ReviewUseCase) ListByVehicle(ctx context.Context, vehicleID int) ([]entity.Review, error) {
	return uc.reviews.ListByVehicle(ctx, vehicleID)
}

// ListByAccount reseñas escritas por una cuenta (dashboard de la cuenta).
func (uc *ReviewUseCase) ListByAccount(ctx context.Context, accountID int) ([]entity.Review, error) {
	return uc.reviews.ListByAccount(ctx, accountID)
}

// GetOwned lee una reseña solo si pertenece al caller; domain.ErrNotFound si no.
func (uc *ReviewUseCase) GetOwned(ctx context.Context, reviewID, accountID int) (*entity.Review, error) {
	return uc.reviews.GetOwned(ctx, reviewID, accountID)
}

// UpdateText cambia el texto de una reseña propia. La autoría no se toca.
func (uc *ReviewUseCase) UpdateText(ctx context.Context, reviewID, accountID int, text string) (*entity.Review, error) {
	return uc.reviews.UpdateText(ctx, reviewID, accountID, text)
}

// Delete borra una reseña propia.
func (uc *ReviewUseCase) Delete(ctx context.Context, reviewID, accountID int) error {
	return uc.reviews.Delete(ctx, reviewID, accountID)
}
