package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	fiberpostgres "github.com/gofiber/storage/postgres/v3"

	"github.com/tu-usuario/cse-motors/internal/application/auth"
	"github.com/tu-usuario/cse-motors/internal/application/usecase"
	infrapdf "github.com/tu-usuario/cse-motors/internal/infrastructure/pdf"
	"github.com/tu-usuario/cse-motors/internal/infrastructure/postgres"
	web "github.com/tu-usuario/cse-motors/internal/interfaces/http"
	"github.com/tu-usuario/cse-motors/pkg/config"
	"github.com/tu-usuario/cse-motors/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Sesión server-side (mensajes flash) respaldada en PostgreSQL.
	sessionStorage := fiberpostgres.New(fiberpostgres.Config{
		ConnectionURI: cfg.DB.ConnectionString(),
		Table:         cfg.Session.Table,
		GCInterval:    10 * time.Minute,
	})
	defer sessionStorage.Close()

	sessions := session.New(session.Config{
		Storage:        sessionStorage,
		Expiration:     time.Duration(cfg.Session.Expiration) * time.Minute,
		KeyLookup:      "cookie:session_id",
		CookieHTTPOnly: true,
		CookieSecure:   cfg.App.Env != "development",
		CookieSameSite: "Lax",
	})

	accountRepo := postgres.NewAccountRepository(pool)
	classificationRepo := postgres.NewClassificationRepository(pool)
	vehicleRepo := postgres.NewVehicleRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)

	brochureGen := infrapdf.NewMarotoBrochureGenerator(cfg.App.Name)

	authUC := auth.NewAuthUseCase(accountRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	classificationUC := usecase.NewClassificationUseCase(classificationRepo)
	vehicleUC := usecase.NewVehicleUseCase(vehicleRepo, classificationRepo, brochureGen)
	reviewUC := usecase.NewReviewUseCase(reviewRepo)

	engine, err := web.NewViewEngine()
	if err != nil {
		log.Fatal().Err(err).Msg("cargar vistas")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ErrorHandler: web.NewErrorHandler(log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	if err := web.Static(app); err != nil {
		log.Fatal().Err(err).Msg("montar assets estáticos")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	view := web.NewView(sessions, classificationUC, log)
	web.Router(app, web.RouterDeps{
		AuthUC:           authUC,
		ClassificationUC: classificationUC,
		VehicleUC:        vehicleUC,
		ReviewUC:         reviewUC,
		View:             view,
		Log:              log,
		JWTSecret:        cfg.JWT.Secret,
		Env:              cfg.App.Env,
		JWTTTLSeconds:    cfg.JWT.Expiration * 60,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
