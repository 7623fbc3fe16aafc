package http

import (
	"embed"
	"io/fs"
	gohttp "net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine crea el motor de plantillas con las vistas embebidas en el
// binario. No hay archivos sueltos que desplegar junto al ejecutable.
func NewViewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, err
	}
	return html.NewFileSystem(gohttp.FS(sub), ".html"), nil
}
