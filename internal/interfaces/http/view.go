package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/tu-usuario/cse-motors/internal/application/usecase"
	"github.com/tu-usuario/cse-motors/pkg/logger"
)

// Tipos de mensaje flash. Un flash sobrevive exactamente un render: se escribe
// en la sesión server-side antes del redirect y se consume en la página siguiente.
const (
	FlashSuccess = "success"
	FlashNotice  = "notice"
)

const flashKeyPrefix = "flash_"

// View renderiza páginas con el contexto común del sitio: menú de navegación,
// identidad autenticada y mensajes flash. Todos los handlers pintan a través
// de este helper para que ninguna página salga sin nav ni flashes.
type View struct {
	sessions        *session.Store
	classifications *usecase.ClassificationUseCase
	log             *logger.Logger
}

// NewView construye el helper de render.
func NewView(sessions *session.Store, classifications *usecase.ClassificationUseCase, log *logger.Logger) *View {
	return &View{sessions: sessions, classifications: classifications, log: log}
}

// Render pinta una plantilla inyectando Nav, Auth, Success y Notice sobre los
// datos del handler. Si el menú de navegación no puede leerse, la página sale
// sin nav en vez de fallar entera.
func (v *View) Render(c *fiber.Ctx, status int, name string, data fiber.Map) error {
	if data == nil {
		data = fiber.Map{}
	}
	nav, err := v.classifications.List(c.Context())
	if err != nil {
		v.log.Error().Err(err).Msg("no se pudo cargar el menú de navegación")
	}
	data["Nav"] = nav
	data["Auth"] = GetAuth(c)
	success, notice := v.popFlash(c)
	if _, ok := data["Success"]; !ok {
		data["Success"] = success
	}
	if _, ok := data["Notice"]; !ok {
		data["Notice"] = notice
	}
	return c.Status(status).Render(name, data)
}

// Flash deja un mensaje en la sesión para la próxima página renderizada.
// kind es FlashSuccess o FlashNotice.
func (v *View) Flash(c *fiber.Ctx, kind, message string) {
	sess, err := v.sessions.Get(c)
	if err != nil {
		v.log.Warn().Err(err).Msg("no se pudo abrir la sesión para el flash")
		return
	}
	sess.Set(flashKeyPrefix+kind, message)
	if err := sess.Save(); err != nil {
		v.log.Warn().Err(err).Msg("no se pudo guardar el flash")
	}
}

// popFlash consume los mensajes pendientes. Leer borra: el flash es de un solo uso.
func (v *View) popFlash(c *fiber.Ctx) (success, notice string) {
	sess, err := v.sessions.Get(c)
	if err != nil {
		return "", ""
	}
	dirty := false
	if s, ok := sess.Get(flashKeyPrefix + FlashSuccess).(string); ok && s != "" {
		success = s
		sess.Delete(flashKeyPrefix + FlashSuccess)
		dirty = true
	}
	if s, ok := sess.Get(flashKeyPrefix + FlashNotice).(string); ok && s != "" {
		notice = s
		sess.Delete(flashKeyPrefix + FlashNotice)
		dirty = true
	}
	if dirty {
		if err := sess.Save(); err != nil {
			v.log.Warn().Err(err).Msg("no se pudo consumir el flash")
		}
	}
	return success, notice
}
