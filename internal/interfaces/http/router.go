package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cse-motors/internal/application/auth"
	"github.com/tu-usuario/cse-motors/internal/application/usecase"
	"github.com/tu-usuario/cse-motors/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ClassificationUC *usecase.ClassificationUseCase
	VehicleUC        *usecase.VehicleUseCase
	ReviewUC         *usecase.ReviewUseCase
	View             *View
	Log              *logger.Logger
	JWTSecret        string
	Env              string
	JWTTTLSeconds    int
}

// Router registra las rutas del sitio. Tres niveles de acceso:
// público (catálogo), cualquier cuenta (dashboard y reseñas) y
// Employee/Admin (administración de inventario).
func Router(app *fiber.App, deps RouterDeps) {
	// La identidad del token viaja en Locals para toda ruta.
	app.Use(WithAccount(deps.JWTSecret))

	inventoryHandler := NewInventoryHandler(deps.VehicleUC, deps.ClassificationUC, deps.ReviewUC, deps.View, deps.Log)
	accountHandler := NewAccountHandler(deps.AuthUC, deps.ReviewUC, deps.View, deps.Log, deps.Env, deps.JWTTTLSeconds)
	reviewHandler := NewReviewHandler(deps.ReviewUC, deps.VehicleUC, deps.View, deps.Log)

	// Catálogo (público)
	app.Get("/", inventoryHandler.HomePage)
	app.Get("/inv/type/:classificationId", inventoryHandler.ByClassification)
	app.Get("/inv/detail/:inventoryId", inventoryHandler.Detail)
	app.Get("/inv/brochure/:inventoryId", inventoryHandler.Brochure)

	// Cuenta
	account := app.Group("/account")
	account.Get("/login", accountHandler.LoginPage)
	account.Post("/login", accountHandler.Login)
	account.Get("/registration", accountHandler.RegistrationPage)
	account.Post("/registration", accountHandler.Register)
	account.Get("/logout", accountHandler.Logout)

	loggedIn := account.Group("/", RequireLogin(deps.View))
	loggedIn.Get("/", accountHandler.Management)
	loggedIn.Get("/update/:accountId", accountHandler.UpdatePage)
	loggedIn.Post("/update-user-info", accountHandler.UpdateInfo)
	loggedIn.Post("/update-user-password", accountHandler.UpdatePassword)

	// Reseñas (cualquier cuenta autenticada)
	review := app.Group("/review", RequireLogin(deps.View))
	review.Post("/add", reviewHandler.Add)
	review.Get("/edit/:reviewId", reviewHandler.EditPage)
	review.Post("/update", reviewHandler.Update)
	review.Get("/delete/:reviewId", reviewHandler.DeletePage)
	review.Post("/delete", reviewHandler.Delete)

	// Administración de inventario (Employee/Admin)
	admin := app.Group("/inv", RequireEmployeeOrAdmin(deps.View))
	admin.Get("/", inventoryHandler.Management)
	admin.Get("/getInventory/:classificationId", inventoryHandler.GetInventoryJSON)
	admin.Get("/add-classification", inventoryHandler.AddClassificationPage)
	admin.Post("/add-classification", inventoryHandler.AddClassification)
	admin.Get("/add-inventory", inventoryHandler.AddInventoryPage)
	admin.Post("/add-inventory", inventoryHandler.AddInventory)
	admin.Get("/edit/:inventoryId", inventoryHandler.EditInventoryPage)
	admin.Post("/update", inventoryHandler.UpdateInventory)
	admin.Get("/delete/:inventoryId", inventoryHandler.DeleteInventoryPage)
	admin.Post("/delete", inventoryHandler.DeleteInventory)
}
