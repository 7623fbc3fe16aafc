package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cse-motors/internal/application/dto"
	"github.com/tu-usuario/cse-motors/internal/application/usecase"
	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/validate"
	"github.com/tu-usuario/cse-motors/pkg/logger"
)

// ReviewHandler rutas de /review (todas requieren login). La propiedad de la
// reseña la verifica el caso de uso con el account_id del token: una reseña
// ajena es indistinguible de una inexistente.
type ReviewHandler struct {
	reviews  *usecase.ReviewUseCase
	vehicles *usecase.VehicleUseCase
	view     *View
	log      *logger.Logger
}

// NewReviewHandler construye el handler de reseñas.
func NewReviewHandler(
	reviews *usecase.ReviewUseCase,
	vehicles *usecase.VehicleUseCase,
	view *View,
	log *logger.Logger,
) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, vehicles: vehicles, view: view, log: log}
}

// Add POST /review/add
// Alta de reseña desde la ficha del vehículo. El autor es siempre el caller.
func (h *ReviewHandler) Add(c *fiber.Ctx) error {
	a := GetAuth(c)
	var form dto.AddReviewForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	vehicleID, err := strconv.Atoi(form.VehicleID)
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}

	r := validate.New()
	text := r.Field("review_text", form.Text).
		Required("Please provide a review.").
		MinLen(3, "Review must be at least 3 characters.")

	if !r.Valid() {
		// Re-render de la ficha del vehículo con el texto sticky.
		vehicle, err := h.vehicles.GetByID(c.Context(), vehicleID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
				return c.Redirect("/", fiber.StatusSeeOther)
			}
			return err
		}
		reviews, err := h.reviews.ListByVehicle(c.Context(), vehicleID)
		if err != nil {
			return err
		}
		return h.view.Render(c, fiber.StatusBadRequest, "inventory/detail", fiber.Map{
			"Title":      vehicle.DisplayName(),
			"Vehicle":    vehicle,
			"Reviews":    reviews,
			"ReviewText": text.Value(),
			"Errors":     r.Messages(),
		})
	}

	if err := h.reviews.Add(c.Context(), vehicleID, a.AccountID, text.Value()); err != nil {
		h.log.Error().Err(err).Int("inv_id", vehicleID).Msg("alta de reseña falló")
		h.view.Flash(c, FlashNotice, storageErrorMsg)
		return c.Redirect("/inv/detail/"+form.VehicleID, fiber.StatusSeeOther)
	}

	h.view.Flash(c, FlashSuccess, "Your review has been added.")
	return c.Redirect("/inv/detail/"+form.VehicleID, fiber.StatusSeeOther)
}

// EditPage GET /review/edit/:reviewId
func (h *ReviewHandler) EditPage(c *fiber.Ctx) error {
	a := GetAuth(c)
	id, err := strconv.Atoi(c.Params("reviewId"))
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}
	review, err := h.reviews.GetOwned(c.Context(), id, a.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
			return c.Redirect("/account/", fiber.StatusSeeOther)
		}
		return err
	}
	return h.view.Render(c, fiber.StatusOK, "review/edit", fiber.Map{
		"Title":  "Edit " + review.VehicleName() + " review",
		"Review": review,
		"Text":   review.Text,
	})
}

// Update POST /review/update
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	a := GetAuth(c)
	var form dto.EditReviewForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	id, err := strconv.Atoi(form.ReviewID)
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}

	r := validate.New()
	text := r.Field("review_text", form.Text).
		Required("Please provide a review.").
		MinLen(3, "Review must be at least 3 characters.")

	if !r.Valid() {
		review, err := h.reviews.GetOwned(c.Context(), id, a.AccountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
				return c.Redirect("/account/", fiber.StatusSeeOther)
			}
			return err
		}
		return h.view.Render(c, fiber.StatusBadRequest, "review/edit", fiber.Map{
			"Title":  "Edit " + review.VehicleName() + " review",
			"Review": review,
			"Text":   text.Value(),
			"Errors": r.Messages(),
		})
	}

	if _, err := h.reviews.UpdateText(c.Context(), id, a.AccountID, text.Value()); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
			return c.Redirect("/account/", fiber.StatusSeeOther)
		}
		h.log.Error().Err(err).Int("review_id", id).Msg("actualización de reseña falló")
		h.view.Flash(c, FlashNotice, storageErrorMsg)
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}

	h.view.Flash(c, FlashSuccess, "Your review was successfully updated.")
	return c.Redirect("/account/", fiber.StatusSeeOther)
}

// DeletePage GET /review/delete/:reviewId
func (h *ReviewHandler) DeletePage(c *fiber.Ctx) error {
	a := GetAuth(c)
	id, err := strconv.Atoi(c.Params("reviewId"))
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}
	review, err := h.reviews.GetOwned(c.Context(), id, a.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
			return c.Redirect("/account/", fiber.StatusSeeOther)
		}
		return err
	}
	return h.view.Render(c, fiber.StatusOK, "review/delete", fiber.Map{
		"Title":  "Delete " + review.VehicleName() + " review",
		"Review": review,
	})
}

// Delete POST /review/delete
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	a := GetAuth(c)
	var form dto.EditReviewForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	id, err := strconv.Atoi(form.ReviewID)
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}
	if err := h.reviews.Delete(c.Context(), id, a.AccountID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that review could not be found.")
			return c.Redirect("/account/", fiber.StatusSeeOther)
		}
		h.log.Error().Err(err).Int("review_id", id).Msg("borrado de reseña falló")
		h.view.Flash(c, FlashNotice, storageErrorMsg)
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}
	h.view.Flash(c, FlashSuccess, "Your review was successfully deleted.")
	return c.Redirect("/account/", fiber.StatusSeeOther)
}
