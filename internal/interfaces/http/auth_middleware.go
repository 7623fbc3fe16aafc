package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cse-motors/internal/domain/entity"
	"github.com/tu-usuario/cse-motors/pkg/token"
)

// CookieName nombre de la cookie que porta el token de sesión.
const CookieName = "jwt"

// Local key para el AuthContext en Fiber.
const localAuth = "auth"

// AuthContext es la identidad autenticada de la petición, derivada de los
// claims del token. Viaja como valor explícito en Locals: los handlers la leen
// con GetAuth en vez de depender de estado implícito.
type AuthContext struct {
	AccountID int
	FirstName string
	LastName  string
	Email     string
	Type      string
}

// LoggedIn indica si hay cuenta autenticada (para las vistas).
func (a *AuthContext) LoggedIn() bool { return a != nil }

// CanManageInventory indica si la cuenta puede acceder al área de administración.
func (a *AuthContext) CanManageInventory() bool {
	return a != nil && (a.Type == entity.TypeEmployee || a.Type == entity.TypeAdmin)
}

// WithAccount decodifica la cookie "jwt" en cada petición y deja el AuthContext
// en Locals. Cualquier fallo (cookie ausente, firma inválida, token expirado)
// degrada a no-autenticado: este middleware nunca corta la petición.
func WithAccount(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(CookieName)
		if raw == "" {
			return c.Next()
		}
		claims, err := token.Parse(jwtSecret, raw)
		if err != nil {
			return c.Next()
		}
		c.Locals(localAuth, &AuthContext{
			AccountID: claims.AccountID,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			Email:     claims.Email,
			Type:      claims.AccountType,
		})
		return c.Next()
	}
}

// GetAuth devuelve el AuthContext de la petición, o nil si no hay sesión válida.
func GetAuth(c *fiber.Ctx) *AuthContext {
	v, _ := c.Locals(localAuth).(*AuthContext)
	return v
}

// RequireLogin exige cualquier cuenta autenticada. En denegación redirige al
// login con un aviso, nunca un 401/403 pelado: el flujo amable de re-auth.
func RequireLogin(view *View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetAuth(c) != nil {
			return c.Next()
		}
		view.Flash(c, FlashNotice, "Please log in to access this area.")
		return c.Redirect("/account/login", fiber.StatusSeeOther)
	}
}

// RequireEmployeeOrAdmin exige rol Employee o Admin para el área de administración
// de inventario. La denegación redirige al login con aviso, igual que RequireLogin.
func RequireEmployeeOrAdmin(view *View) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetAuth(c).CanManageInventory() {
			return c.Next()
		}
		view.Flash(c, FlashNotice, "You must be logged in as an Employee or Admin to access this area.")
		return c.Redirect("/account/login", fiber.StatusSeeOther)
	}
}
