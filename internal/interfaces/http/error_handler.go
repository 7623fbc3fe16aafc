package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cse-motors/pkg/logger"
)

// NewErrorHandler devuelve el ErrorHandler global de Fiber: cualquier error que
// escape de un handler (incluidos los pánicos recuperados por el middleware
// recover) termina en la página de error del sitio, nunca en un stack trace.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		title := "Server Error"
		message := "Oh no! There was a crash. Maybe try a different route?"
		if code == fiber.StatusNotFound {
			title = "Page Not Found"
			message = "Sorry, we appear to have lost that page."
		}

		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Path()).Int("status", code).Msg("error no manejado")
		}

		if renderErr := c.Status(code).Render("error", fiber.Map{
			"Title":   title,
			"Status":  code,
			"Message": message,
		}); renderErr != nil {
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
