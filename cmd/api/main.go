package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/obrasur/remitos-api/internal/application/auth"
	"github.com/obrasur/remitos-api/internal/application/export"
	"github.com/obrasur/remitos-api/internal/application/usecase"
	"github.com/obrasur/remitos-api/internal/infrastructure/kvstore"
	"github.com/obrasur/remitos-api/internal/infrastructure/localstore"
	infrapdf "github.com/obrasur/remitos-api/internal/infrastructure/pdf"
	httpRouter "github.com/obrasur/remitos-api/internal/interfaces/http"
	"github.com/obrasur/remitos-api/pkg/config"
	"github.com/obrasur/remitos-api/pkg/logger"
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

	var kv kvstore.KV
	if cfg.Store.Path != "" {
		sqlite, err := kvstore.OpenSQLite(cfg.Store.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir almacén local")
		}
		defer sqlite.Close()
		kv = sqlite
	} else {
		log.Warn().Msg("STORE_PATH vacío: usando almacén en memoria, los datos se pierden al salir")
		kv = kvstore.NewMemory()
	}
	kv = kvstore.WithLatency(kv, cfg.Store.Latency())

	userRepo := localstore.NewUserRepository(kv)
	workRepo := localstore.NewWorkRepository(kv)
	remitoRepo := localstore.NewRemitoRepository(kv)
	sessionRepo := localstore.NewSessionRepository(kv)

	if cfg.Store.SeedOnEmpty {
		seeder := localstore.NewSeeder(userRepo, workRepo, remitoRepo, time.Now)
		seeded, err := seeder.SeedIfEmpty(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("sembrar datos de demo")
		}
		if seeded {
			log.Info().Msg("almacén vacío: datos de demostración sembrados")
		}
	}

	authUC := auth.NewUseCase(userRepo, sessionRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	workUC := usecase.NewWorkUseCase(workRepo)
	remitoUC := usecase.NewRemitoUseCase(remitoRepo, time.Now)
	csvUC := export.NewCSVUseCase(workRepo, userRepo)
	pdfUC := export.NewPDFUseCase(workRepo, userRepo, infrapdf.NewMarotoRemitoGenerator())

	// Restauración explícita de la sesión persistida al inicio del proceso.
	if user, err := authUC.Restore(ctx); err != nil {
		log.Warn().Err(err).Msg("restaurar sesión persistida")
	} else if user != nil {
		log.Info().Str("email", user.Email).Msg("sesión restaurada")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // fotos y firmas viajan embebidas como data-URL
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:   authUC,
		UserUC:   userUC,
		WorkUC:   workUC,
		RemitoUC: remitoUC,
		CSVUC:    csvUC,
		PDFUC:    pdfUC,
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
