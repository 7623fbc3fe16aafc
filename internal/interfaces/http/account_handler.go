package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cse-motors/internal/application/auth"
	"github.com/tu-usuario/cse-motors/internal/application/dto"
	"github.com/tu-usuario/cse-motors/internal/application/usecase"
	"github.com/tu-usuario/cse-motors/internal/domain"
	"github.com/tu-usuario/cse-motors/internal/validate"
	"github.com/tu-usuario/cse-motors/pkg/logger"
)

// AccountHandler rutas de /account: registro, login, dashboard y autoservicio
// de perfil. Las escrituras siguen el patrón POST-redirect-GET con flash.
type AccountHandler struct {
	auth    *auth.AuthUseCase
	reviews *usecase.ReviewUseCase
	view    *View
	log     *logger.Logger
	env     string
	jwtTTL  int // segundos de vida de la cookie "jwt"
}

// NewAccountHandler construye el handler de cuentas.
func NewAccountHandler(
	authUC *auth.AuthUseCase,
	reviews *usecase.ReviewUseCase,
	view *View,
	log *logger.Logger,
	env string,
	jwtTTLSeconds int,
) *AccountHandler {
	return &AccountHandler{
		auth:    authUC,
		reviews: reviews,
		view:    view,
		log:     log,
		env:     env,
		jwtTTL:  jwtTTLSeconds,
	}
}

const storageErrorMsg = "Sorry, there was an error processing your request. Please try again later."

// ── Login ─────────────────────────────────────────────────────────────────────

// LoginPage GET /account/login
func (h *AccountHandler) LoginPage(c *fiber.Ctx) error {
	return h.view.Render(c, fiber.StatusOK, "account/login", fiber.Map{
		"Title": "Login",
		"Email": "",
	})
}

// Login POST /account/login
// Con credenciales válidas emite el token y lo deja en la cookie "jwt".
// Email desconocido y password incorrecto producen la misma respuesta.
func (h *AccountHandler) Login(c *fiber.Ctx) error {
	var form dto.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	r := validate.New()
	email := r.Field("account_email", form.Email).Lower().
		Required("A valid email address is required.").
		Email("A valid email address is required.")
	r.Field("account_password", form.Password).
		Required("Please provide a password.")

	renderAgain := func(status int, notice string) error {
		data := fiber.Map{
			"Title":  "Login",
			"Email":  email.Value(),
			"Errors": r.Messages(),
		}
		if notice != "" {
			data["Notice"] = notice
		}
		return h.view.Render(c, status, "account/login", data)
	}

	if !r.Valid() {
		return renderAgain(fiber.StatusBadRequest, "")
	}

	tok, account, err := h.auth.Login(c.Context(), email.Value(), form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return renderAgain(fiber.StatusBadRequest, "Please check your credentials and try again.")
		}
		h.log.Error().Err(err).Msg("login falló por storage")
		return renderAgain(fiber.StatusInternalServerError, storageErrorMsg)
	}

	h.setSessionCookie(c, tok)
	h.log.Info().Int("account_id", account.ID).Msg("sesión iniciada")
	return c.Redirect("/account/", fiber.StatusSeeOther)
}

// Logout GET /account/logout
func (h *AccountHandler) Logout(c *fiber.Ctx) error {
	h.clearSessionCookie(c)
	h.view.Flash(c, FlashSuccess, "You have been logged out.")
	return c.Redirect("/", fiber.StatusSeeOther)
}

// ── Registro ──────────────────────────────────────────────────────────────────

// RegistrationPage GET /account/registration
func (h *AccountHandler) RegistrationPage(c *fiber.Ctx) error {
	return h.view.Render(c, fiber.StatusOK, "account/registration", fiber.Map{
		"Title":     "Register",
		"FirstName": "",
		"LastName":  "",
		"Email":     "",
	})
}

// Register POST /account/registration
// Crea la cuenta con rol Client. El password nunca vuelve a la vista.
func (h *AccountHandler) Register(c *fiber.Ctx) error {
	var form dto.RegistrationForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}

	r := validate.New()
	first := r.Field("account_firstname", form.FirstName).TitleCase().
		Required("Please provide a first name.")
	last := r.Field("account_lastname", form.LastName).TitleCase().
		Required("Please provide a last name.").
		MinLen(2, "Please provide a last name.")
	email := r.Field("account_email", form.Email).Lower().
		Required("A valid email address is required.").
		Email("A valid email address is required.")
	r.Field("account_password", form.Password).
		Required("Please provide a password.").
		Password("Password does not meet requirements.")

	renderAgain := func(status int, notice string) error {
		data := fiber.Map{
			"Title":     "Register",
			"FirstName": first.Value(),
			"LastName":  last.Value(),
			"Email":     email.Value(),
			"Errors":    r.Messages(),
		}
		if notice != "" {
			data["Notice"] = notice
		}
		return h.view.Render(c, status, "account/registration", data)
	}

	if !r.Valid() {
		return renderAgain(fiber.StatusBadRequest, "")
	}

	account, err := h.auth.Register(c.Context(), first.Value(), last.Value(), email.Value(), form.Password)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return renderAgain(fiber.StatusBadRequest,
				"Sorry, the registration failed – that email may already be in use.")
		}
		h.log.Error().Err(err).Msg("registro falló por storage")
		return renderAgain(fiber.StatusInternalServerError, storageErrorMsg)
	}

	h.log.Info().Int("account_id", account.ID).Msg("cuenta registrada")
	h.view.Flash(c, FlashSuccess,
		"Congratulations, you're registered "+account.FirstName+". Please log in.")
	return c.Redirect("/account/login", fiber.StatusSeeOther)
}

// ── Dashboard ─────────────────────────────────────────────────────────────────

// Management GET /account/ (requiere login)
// Saludo por rol y listado de las reseñas escritas por la cuenta.
func (h *AccountHandler) Management(c *fiber.Ctx) error {
	a := GetAuth(c)
	myReviews, err := h.reviews.ListByAccount(c.Context(), a.AccountID)
	if err != nil {
		h.log.Error().Err(err).Int("account_id", a.AccountID).Msg("no se pudieron listar las reseñas de la cuenta")
	}
	return h.view.Render(c, fiber.StatusOK, "account/management", fiber.Map{
		"Title":     "Account Management",
		"MyReviews": myReviews,
	})
}

// ── Autoservicio de perfil ────────────────────────────────────────────────────

// UpdatePage GET /account/update/:accountId (requiere login)
// Solo la propia cuenta: el perfil de otra cuenta redirige al dashboard.
func (h *AccountHandler) UpdatePage(c *fiber.Ctx) error {
	a := GetAuth(c)
	id, err := strconv.Atoi(c.Params("accountId"))
	if err != nil || id != a.AccountID {
		h.view.Flash(c, FlashNotice, "You can only edit your own account.")
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}
	account, err := h.auth.GetAccount(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.view.Flash(c, FlashNotice, "Account not found.")
			return c.Redirect("/account/", fiber.StatusSeeOther)
		}
		return err
	}
	return h.view.Render(c, fiber.StatusOK, "account/update", fiber.Map{
		"Title":     "Edit Account",
		"AccountID": account.ID,
		"FirstName": account.FirstName,
		"LastName":  account.LastName,
		"Email":     account.Email,
	})
}

// UpdateInfo POST /account/update-user-info (requiere login)
func (h *AccountHandler) UpdateInfo(c *fiber.Ctx) error {
	a := GetAuth(c)
	var form dto.UpdateInfoForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if id, err := strconv.Atoi(form.AccountID); err != nil || id != a.AccountID {
		h.view.Flash(c, FlashNotice, "You can only edit your own account.")
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}

	r := validate.New()
	first := r.Field("account_firstname", form.FirstName).TitleCase().
		Required("Please provide a first name.")
	last := r.Field("account_lastname", form.LastName).TitleCase().
		Required("Please provide a last name.").
		MinLen(2, "Please provide a last name.")
	email := r.Field("account_email", form.Email).Lower().
		Required("A valid email address is required.").
		Email("A valid email address is required.")

	renderAgain := func(status int, notice string) error {
		data := fiber.Map{
			"Title":     "Edit Account",
			"AccountID": a.AccountID,
			"FirstName": first.Value(),
			"LastName":  last.Value(),
			"Email":     email.Value(),
			"Errors":    r.Messages(),
		}
		if notice != "" {
			data["Notice"] = notice
		}
		return h.view.Render(c, status, "account/update", data)
	}

	if !r.Valid() {
		return renderAgain(fiber.StatusBadRequest, "")
	}

	account, err := h.auth.UpdateInfo(c.Context(), a.AccountID, first.Value(), last.Value(), email.Value())
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return renderAgain(fiber.StatusBadRequest,
				"That email address is already in use by another account.")
		}
		h.log.Error().Err(err).Int("account_id", a.AccountID).Msg("actualización de cuenta falló")
		return renderAgain(fiber.StatusInternalServerError, storageErrorMsg)
	}

	h.view.Flash(c, FlashSuccess, "Congratulations "+account.FirstName+", your information has been updated.")
	return c.Redirect("/account/", fiber.StatusSeeOther)
}

// UpdatePassword POST /account/update-user-password (requiere login)
func (h *AccountHandler) UpdatePassword(c *fiber.Ctx) error {
	a := GetAuth(c)
	var form dto.UpdatePasswordForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.ErrBadRequest
	}
	if id, err := strconv.Atoi(form.AccountID); err != nil || id != a.AccountID {
		h.view.Flash(c, FlashNotice, "You can only edit your own account.")
		return c.Redirect("/account/", fiber.StatusSeeOther)
	}

	r := validate.New()
	r.Field("account_password", form.Password).
		Required("Please provide a password.").
		Password("Password does not meet requirements.")

	if !r.Valid() {
		account, err := h.auth.GetAccount(c.Context(), a.AccountID)
		if err != nil {
			return err
		}
		return h.view.Render(c, fiber.StatusBadRequest, "account/update", fiber.Map{
			"Title":     "Edit Account",
			"AccountID": account.ID,
			"FirstName": account.FirstName,
			"LastName":  account.LastName,
			"Email":     account.Email,
			"Errors":    r.Messages(),
		})
	}

	if err := h.auth.UpdatePassword(c.Context(), a.AccountID, form.Password); err != nil {
		h.log.Error().Err(err).Int("account_id", a.AccountID).Msg("cambio de password falló")
		h.view.Flash(c, FlashNotice, storageErrorMsg)
		return c.Redirect("/account/update/"+strconv.Itoa(a.AccountID), fiber.StatusSeeOther)
	}

	h.view.Flash(c, FlashSuccess, "Your password has been updated.")
	return c.Redirect("/account/", fiber.StatusSeeOther)
}

// ── Cookie de sesión ──────────────────────────────────────────────────────────

func (h *AccountHandler) setSessionCookie(c *fiber.Ctx, tok string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    tok,
		Path:     "/",
		MaxAge:   h.jwtTTL,
		HTTPOnly: true,
		Secure:   h.env != "development",
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (h *AccountHandler) clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.env != "development",
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
