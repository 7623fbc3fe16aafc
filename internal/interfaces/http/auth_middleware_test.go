package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cse-motors/internal/application/usecase"
	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	web "github.com/tu-usuario/cse-motors/internal/interfaces/http"
	"github.com/tu-usuario/cse-motors/pkg/logger"
	"github.com/tu-usuario/cse-motors/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "cse-motors-test"
)

// buildGateApp construye una app mínima con el middleware de identidad y una
// ruta gated por rol. El handler final marca si llegó a ejecutarse.
func buildGateApp(gate func(*web.View) fiber.Handler, invoked *bool) *fiber.App {
	app := fiber.New()
	view := web.NewView(session.New(), usecase.NewClassificationUseCase(&fakeClassificationRepo{}), logger.Discard())
	app.Use(web.WithAccount(testJWTSecret))
	app.Get("/protected", gate(view), func(c *fiber.Ctx) error {
		*invoked = true
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

// tokenForType genera un token de sesión para una cuenta del tipo dado.
func tokenForType(t *testing.T, accountType string) string {
	t.Helper()
	tok, err := token.Issue(testJWTSecret, testIssuer, token.AccountClaims{
		AccountID:   7,
		FirstName:   "Basil",
		LastName:    "Grant",
		Email:       "basil@example.com",
		AccountType: accountType,
	}, time.Hour)
	require.NoError(t, err, "debe emitirse un token válido")
	return tok
}

// doGateRequest lanza GET /protected con la cookie jwt indicada (vacía = sin cookie).
func doGateRequest(t *testing.T, app *fiber.App, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: web.CookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireEmployeeOrAdmin
// ──────────────────────────────────────────────────────────────────────────────

// Employee y Admin entran al área de administración.
func TestRequireEmployeeOrAdmin_EmployeeEntra(t *testing.T) {
	var invoked bool
	app := buildGateApp(web.RequireEmployeeOrAdmin, &invoked)
	resp := doGateRequest(t, app, tokenForType(t, entity.TypeEmployee))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, invoked, "el handler debe ejecutarse para Employee")
}

func TestRequireEmployeeOrAdmin_AdminEntra(t *testing.T) {
	var invoked bool
	app := buildGateApp(web.RequireEmployeeOrAdmin, &invoked)
	resp := doGateRequest(t, app, tokenForType(t, entity.TypeAdmin))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, invoked)
}

// Client autenticado NO entra: redirect al login, el handler nunca corre.
func TestRequireEmployeeOrAdmin_ClientRedirigidoALogin(t *testing.T) {
	var invoked bool
	app := buildGateApp(web.RequireEmployeeOrAdmin, &invoked)
	resp := doGateRequest(t, app, tokenForType(t, entity.TypeClient))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/account/login", resp.Header.Get("Location"))
	assert.False(t, invoked, "el handler no debe ejecutarse para Client")
}

// Sin cookie: misma denegación que un Client.
func TestRequireEmployeeOrAdmin_SinCookieRedirigido(t *testing.T) {
	var invoked bool
	app := buildGateApp(web.RequireEmployeeOrAdmin, &invoked)
	resp := doGateRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/account/login", resp.Header.Get("Location"))
	assert.False(t, invoked)
}

// Token corrupto degrada a no-autenticado: denegación, no error.
func TestRequireEmployeeOrAdmin_TokenInvalidoRedirigido(t *testing.T) {
	var invoked bool
	app := buildGateApp(web.RequireEmployeeOrAdmin, &invoked)
	resp := doGateRequest(t, app, "token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.False(t, invoked)
}

// Token expirado también degrada a no-autenticado.
func TestRequireEmployeeOrAdmin_TokenExpiradoRedirigido(t *testing.T) {
	expired, err := token.Issue(testJWTSecret, testIssuer, token.AccountClaims{
		AccountID: 7, AccountType: entity.TypeEmployee,
	}, -time.Minute)
	require.NoError(t, err)

	var invoked bool
	app := buildGateApp(web.RequireEmployeeOrAdmin, &invoked)
	resp := doGateRequest(t, app, expired)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.False(t, invoked)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireLogin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireLogin_ClientEntra(t *testing.T) {
	var invoked bool
	app := buildGateApp(web.RequireLogin, &invoked)
	resp := doGateRequest(t, app, tokenForType(t, entity.TypeClient))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, invoked, "cualquier cuenta autenticada pasa RequireLogin")
}

func TestRequireLogin_SinSesionRedirigido(t *testing.T) {
	var invoked bool
	app := buildGateApp(web.RequireLogin, &invoked)
	resp := doGateRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/account/login", resp.Header.Get("Location"))
	assert.False(t, invoked)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests WithAccount — extracción del AuthContext
// ──────────────────────────────────────────────────────────────────────────────

func TestWithAccount_ExtraeIdentidad(t *testing.T) {
	app := fiber.New()
	app.Use(web.WithAccount(testJWTSecret))
	app.Get("/me", func(c *fiber.Ctx) error {
		a := web.GetAuth(c)
		require.NotNil(t, a)
		return c.JSON(fiber.Map{
			"account_id": a.AccountID,
			"first_name": a.FirstName,
			"type":       a.Type,
		})
	})

	resp := doGateRequest2(t, app, "/me", tokenForType(t, entity.TypeEmployee))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWithAccount_SinCookieGetAuthNil(t *testing.T) {
	app := fiber.New()
	app.Use(web.WithAccount(testJWTSecret))
	app.Get("/me", func(c *fiber.Ctx) error {
		assert.Nil(t, web.GetAuth(c))
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doGateRequest2(t, app, "/me", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func doGateRequest2(t *testing.T, app *fiber.App, path, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: web.CookieName, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
