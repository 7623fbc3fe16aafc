package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cse-motors/internal/application/dto"
	"github.com/tu-usuario/cse-motors/internal/application/usecase"
	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	"github.com/tu-usuario/cse-motors/internal/validate"
	"github.com/tu-usuario/cse-motors/pkg/logger"
)

// InventoryHandler rutas de /inv: vistas públicas del catálogo y área de
// administración (gated por rol en el router).
type InventoryHandler struct {
	vehicles        *usecase.VehicleUseCase
	classifications *usecase.ClassificationUseCase
	reviews         *usecase.ReviewUseCase
	view            *View
	log             *logger.Logger
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(
	vehicles *usecase.VehicleUseCase,
	classifications *usecase.ClassificationUseCase,
	reviews *usecase.ReviewUseCase,
	view *View,
	log *logger.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		vehicles:        vehicles,
		classifications: classifications,
		reviews:         reviews,
		view:            view,
		log:             log,
	}
}

// HomePage GET /
func (h *InventoryHandler) HomePage(c *fiber.Ctx) error {
	return h.view.Render(c, fiber.StatusOK, "home", fiber.Map{
		"Title": "Home",
	})
}

// ── Vistas públicas ───────────────────────────────────────────────────────────

// ByClassification GET /inv/type/:classificationId
func (h *InventoryHandler) ByClassification(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("classificationId"))
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that classification could not be found.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	classification, err := h.classifications.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that classification could not be found.")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return err
	}
	vehicles, err := h.vehicles.ListByClassification(c.Context(), id)
	if err != nil {
		return err
	}
	return h.view.Render(c, fiber.StatusOK, "inventory/classification", fiber.Map{
		"Title":    classification.Name + " vehicles",
		"Heading":  classification.Name + " vehicles",
		"Vehicles": vehicles,
	})
}

// Detail GET /inv/detail/:inventoryId
// Ficha del vehículo con sus reseñas y, si hay sesión, el formulario de reseña.
func (h *InventoryHandler) Detail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("inventoryId"))
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	vehicle, err := h.vehicles.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return err
	}
	reviews, err := h.reviews.ListByVehicle(c.Context(), id)
	if err != nil {
		return err
	}
	return h.view.Render(c, fiber.StatusOK, "inventory/detail", fiber.Map{
		"Title":      vehicle.DisplayName(),
		"Vehicle":    vehicle,
		"Reviews":    reviews,
		"ReviewText": "",
	})
}

// Brochure GET /inv/brochure/:inventoryId
// Ficha técnica del vehículo en PDF.
func (h *InventoryHandler) Brochure(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("inventoryId"))
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	doc, err := h.vehicles.Brochure(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
			return c.Redirect("/", fiber.StatusSeeOther)
		}
		return err
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="vehicle-`+strconv.Itoa(id)+`.pdf"`)
	return c.Send(doc)
}

// GetInventoryJSON GET /inv/getInventory/:classificationId (requiere Employee/Admin)
// Alimenta la tabla dinámica de la vista de administración.
func (h *InventoryHandler) GetInventoryJSON(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("classificationId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid classification id"})
	}
	vehicles, err := h.vehicles.ListByClassification(c.Context(), id)
	if err != nil {
		h.log.Error().Err(err).Int("classification_id", id).Msg("no se pudo listar el inventario")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
	return c.JSON(dto.ToVehicleJSON(vehicles))
}

// ── Administración ────────────────────────────────────────────────────────────

// Management GET /inv/ (requiere Employee/Admin)
func (h *InventoryHandler) Management(c *fiber.Ctx) error {
	return h.view.Render(c, fiber.StatusOK, "inventory/management", fiber.Map{
		"Title": "Inventory Management",
	})
}

// AddClassificationPage GET /inv/add-classification (requiere Employee/Admin)
func (h *InventoryHandler) AddClassificationPage(c *fiber.Ctx) error {
	return h.view.Render(c, fiber.StatusOK, "inventory/add-classification", fiber.Map{
		"Title": "Add New Classification",
		"Name":  "",
	})
}

// AddClassification POST /inv/add-classification (requiere Employee/Admin)
func (h *InventoryHandler) AddClassification(c *fiber.Ctx) error {
	var form dto.ClassificationForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	r := validate.New()
	name := r.Field("classification_name", form.Name).TitleCase().
		Required("Please provide a classification name.").
		Alpha("Classification name cannot contain spaces or special characters.")

	renderAgain := func(status int, notice string) error {
		data := fiber.Map{
			"Title":  "Add New Classification",
			"Name":   name.Value(),
			"Errors": r.Messages(),
		}
		if notice != "" {
			data["Notice"] = notice
		}
		return h.view.Render(c, status, "inventory/add-classification", data)
	}

	if !r.Valid() {
		return renderAgain(fiber.StatusBadRequest, "")
	}

	classification, err := h.classifications.Create(c.Context(), name.Value())
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return renderAgain(fiber.StatusBadRequest, "That classification already exists.")
		}
		h.log.Error().Err(err).Msg("alta de clasificación falló")
		return renderAgain(fiber.StatusInternalServerError, storageErrorMsg)
	}

	h.view.Flash(c, FlashSuccess, "The "+classification.Name+" classification was successfully added.")
	return c.Redirect("/inv/", fiber.StatusSeeOther)
}

// AddInventoryPage GET /inv/add-inventory (requiere Employee/Admin)
func (h *InventoryHandler) AddInventoryPage(c *fiber.Ctx) error {
	return h.view.Render(c, fiber.StatusOK, "inventory/add-inventory", fiber.Map{
		"Title": "Add New Vehicle",
		"Form":  dto.VehicleForm{},
	})
}

// AddInventory POST /inv/add-inventory (requiere Employee/Admin)
func (h *InventoryHandler) AddInventory(c *fiber.Ctx) error {
	var form dto.VehicleForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	r, vehicle := h.validateVehicle(&form)

	renderAgain := func(status int, notice string) error {
		data := fiber.Map{
			"Title":  "Add New Vehicle",
			"Form":   form,
			"Errors": r.Messages(),
		}
		if notice != "" {
			data["Notice"] = notice
		}
		return h.view.Render(c, status, "inventory/add-inventory", data)
	}

	if !r.Valid() {
		return renderAgain(fiber.StatusBadRequest, "")
	}

	if err := h.vehicles.Create(c.Context(), vehicle); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return renderAgain(fiber.StatusBadRequest, "Please choose a valid classification.")
		}
		h.log.Error().Err(err).Msg("alta de vehículo falló")
		return renderAgain(fiber.StatusInternalServerError, storageErrorMsg)
	}

	h.view.Flash(c, FlashSuccess,
		"The "+vehicle.DisplayName()+" was successfully added.")
	return c.Redirect("/inv/", fiber.StatusSeeOther)
}

// EditInventoryPage GET /inv/edit/:inventoryId (requiere Employee/Admin)
func (h *InventoryHandler) EditInventoryPage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("inventoryId"))
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
		return c.Redirect("/inv/", fiber.StatusSeeOther)
	}
	vehicle, err := h.vehicles.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
			return c.Redirect("/inv/", fiber.StatusSeeOther)
		}
		return err
	}
	return h.view.Render(c, fiber.StatusOK, "inventory/edit-inventory", fiber.Map{
		"Title": "Edit " + vehicle.DisplayName(),
		"Form":  vehicleToForm(vehicle),
	})
}

// UpdateInventory POST /inv/update (requiere Employee/Admin)
func (h *InventoryHandler) UpdateInventory(c *fiber.Ctx) error {
	var form dto.VehicleForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	id, err := strconv.Atoi(form.ID)
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
		return c.Redirect("/inv/", fiber.StatusSeeOther)
	}

	r, vehicle := h.validateVehicle(&form)
	vehicle.ID = id

	renderAgain := func(status int, notice string) error {
		data := fiber.Map{
			"Title":  "Edit Vehicle",
			"Form":   form,
			"Errors": r.Messages(),
		}
		if notice != "" {
			data["Notice"] = notice
		}
		return h.view.Render(c, status, "inventory/edit-inventory", data)
	}

	if !r.Valid() {
		return renderAgain(fiber.StatusBadRequest, "")
	}

	updated, err := h.vehicles.Update(c.Context(), vehicle)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			h.view.Flash(c, FlashNotice, "Sorry, the update failed – that vehicle no longer exists.")
			return c.Redirect("/inv/", fiber.StatusSeeOther)
		case errors.Is(err, domain.ErrInvalidInput):
			return renderAgain(fiber.StatusBadRequest, "Please choose a valid classification.")
		default:
			h.log.Error().Err(err).Int("inv_id", id).Msg("actualización de vehículo falló")
			return renderAgain(fiber.StatusInternalServerError, storageErrorMsg)
		}
	}

	h.view.Flash(c, FlashSuccess, "The "+updated.DisplayName()+" was successfully updated.")
	return c.Redirect("/inv/", fiber.StatusSeeOther)
}

// DeleteInventoryPage GET /inv/delete/:inventoryId (requiere Employee/Admin)
func (h *InventoryHandler) DeleteInventoryPage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("inventoryId"))
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
		return c.Redirect("/inv/", fiber.StatusSeeOther)
	}
	vehicle, err := h.vehicles.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, that vehicle could not be found.")
			return c.Redirect("/inv/", fiber.StatusSeeOther)
		}
		return err
	}
	return h.view.Render(c, fiber.StatusOK, "inventory/delete-confirm", fiber.Map{
		"Title":   "Delete " + vehicle.DisplayName(),
		"Vehicle": vehicle,
	})
}

// DeleteInventory POST /inv/delete (requiere Employee/Admin)
func (h *InventoryHandler) DeleteInventory(c *fiber.Ctx) error {
	var form dto.DeleteVehicleForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	id, err := strconv.Atoi(form.ID)
	if err != nil {
		h.view.Flash(c, FlashNotice, "Sorry, the delete failed.")
		return c.Redirect("/inv/", fiber.StatusSeeOther)
	}
	if err := h.vehicles.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Sorry, the delete failed.")
			return c.Redirect("/inv/", fiber.StatusSeeOther)
		}
		h.log.Error().Err(err).Int("inv_id", id).Msg("borrado de vehículo falló")
		h.view.Flash(c, FlashNotice, storageErrorMsg)
		return c.Redirect("/inv/", fiber.StatusSeeOther)
	}
	h.view.Flash(c, FlashSuccess, "The vehicle was successfully deleted.")
	return c.Redirect("/inv/", fiber.StatusSeeOther)
}

// ── Validación del formulario de vehículo ─────────────────────────────────────

// validateVehicle aplica las reglas del formulario y construye la entidad con
// los valores ya normalizados. La entidad solo es utilizable si r.Valid().
func (h *InventoryHandler) validateVehicle(form *dto.VehicleForm) (*validate.Result, *entity.Vehicle) {
	r := validate.New()
	classificationID := r.Field("classification_id", form.ClassificationID).
		Required("Please choose a classification.").
		IntMin(1, "Please choose a classification.")
	makeField := r.Field("inv_make", form.Make).TitleCase().
		Required("Please provide a make.").
		MinLen(3, "Make must be at least 3 characters.")
	model := r.Field("inv_model", form.Model).TitleCase().
		Required("Please provide a model.").
		MinLen(3, "Model must be at least 3 characters.")
	year := r.Field("inv_year", form.Year).
		Required("Please provide a year.").
		IntRange(1900, 2099, "Year must be a 4-digit year between 1900 and 2099.")
	description := r.Field("inv_description", form.Description).
		Required("Please provide a description.")
	price := r.Field("inv_price", form.Price).
		Required("Please provide a price.").
		DecimalMin(decimal.Zero, "Price must be a positive number.")
	miles := r.Field("inv_miles", form.Miles).
		Required("Please provide the mileage.").
		IntMin(0, "Mileage must be zero or greater.")
	color := r.Field("inv_color", form.Color).TitleCase().
		Required("Please provide a color.")

	// Los valores normalizados vuelven al formulario: los sticky fields del
	// re-render muestran lo que se persistiría, no el tecleo crudo.
	form.Make = makeField.Value()
	form.Model = model.Value()
	form.Color = color.Value()
	form.Description = description.Value()

	v := &entity.Vehicle{
		ClassificationID: classificationID.Int(),
		Make:             makeField.Value(),
		Model:            model.Value(),
		Year:             year.Int(),
		Description:      description.Value(),
		Image:            form.Image,
		Thumbnail:        form.Thumbnail,
		Price:            price.Decimal(),
		Miles:            miles.Int(),
		Color:            color.Value(),
	}
	return r, v
}

// vehicleToForm vuelca la entidad al formulario de edición (sticky fields).
func vehicleToForm(v *entity.Vehicle) dto.VehicleForm {
	return dto.VehicleForm{
		ID:               strconv.Itoa(v.ID),
		ClassificationID: strconv.Itoa(v.ClassificationID),
		Make:             v.Make,
		Model:            v.Model,
		Year:             strconv.Itoa(v.Year),
		Description:      v.Description,
		Image:            v.Image,
		Thumbnail:        v.Thumbnail,
		Price:            v.Price.StringFixed(2),
		Miles:            strconv.Itoa(v.Miles),
		Color:            v.Color,
	}
}
