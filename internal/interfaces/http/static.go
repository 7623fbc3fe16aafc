package http

import (
	"embed"
	"io/fs"
	gohttp "net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
)

//go:embed static
var staticFS embed.FS

// Prefijos servidos desde los assets embebidos.
var staticPrefixes = []string{"/css/", "/js/", "/images/"}

// Static monta los assets embebidos (/css, /js, /images) del sitio.
func Static(app *fiber.App) error {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return err
	}
	app.Use(filesystem.New(filesystem.Config{
		Root:   gohttp.FS(sub),
		MaxAge: 3600,
		Next: func(c *fiber.Ctx) bool {
			for _, p := range staticPrefixes {
				if strings.HasPrefix(c.Path(), p) {
					return false
				}
			}
			return true
		},
	}))
	return nil
}
