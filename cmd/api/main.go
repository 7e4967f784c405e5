package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/automotora-front/internal/application/usecase"
	"github.com/tu-usuario/automotora-front/internal/auth"
	"github.com/tu-usuario/automotora-front/internal/infrastructure/backend"
	infrapdf "github.com/tu-usuario/automotora-front/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/automotora-front/internal/interfaces/http"
	"github.com/tu-usuario/automotora-front/internal/routes"
	"github.com/tu-usuario/automotora-front/internal/session"
	"github.com/tu-usuario/automotora-front/pkg/config"
	"github.com/tu-usuario/automotora-front/pkg/logger"
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
		Str("backend", cfg.Backend.BaseURL).
		Msg("iniciando aplicación")

	// Sesión: se restaura del disco ANTES de aceptar tráfico, así la puerta de
	// acceso nunca decide con una sesión a medio cargar.
	store := session.NewFileStore(cfg.Session.File)
	sesion := auth.NewContext(store, log)
	sesion.Inicializar()

	// Clientes del backend remoto
	cliente := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout(), log)
	vehiculosCli := backend.NewVehiculosClient(cliente)
	marcasCli := backend.NewMarcasClient(cliente)
	concesionariosCli := backend.NewConcesionariosClient(cliente)
	usuariosCli := backend.NewUsuariosClient(cliente)
	reservasCli := backend.NewReservasClient(cliente)
	catalogosCli := backend.NewCatalogosClient(cliente)

	// Casos de uso
	catalogoUC := usecase.NewCatalogoUseCase(vehiculosCli, cfg.Cache.Size, cfg.Cache.TTL())
	authUC := usecase.NewAuthUseCase(usuariosCli, sesion)
	pdfGenerator := infrapdf.NewComprobanteReservaGenerator()
	reservaUC := usecase.NewReservaUseCase(reservasCli, vehiculosCli, catalogosCli, pdfGenerator)
	vehiculoUC := usecase.NewVehiculoUseCase(vehiculosCli, catalogoUC)
	marcaUC := usecase.NewMarcaUseCase(marcasCli, catalogoUC)
	concesionarioUC := usecase.NewConcesionarioUseCase(concesionariosCli, catalogoUC)
	usuarioUC := usecase.NewUsuarioUseCase(usuariosCli, catalogosCli)
	dashboardUC := usecase.NewDashboardUseCase(vehiculosCli, marcasCli, usuariosCli, reservasCli)

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// La tabla de rutas calza sensible a mayúsculas; el router debe hacer
		// lo mismo o la puerta y el despacho verían rutas distintas.
		CaseSensitive: true,
		ReadTimeout:   time.Second * 10,
		WriteTimeout:  time.Second * 30,
		IdleTimeout:   time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Automotora Front",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sesion:      sesion,
		Tabla:       routes.Nueva(),
		Log:         log,
		AuthUC:      authUC,
		CatalogoUC:  catalogoUC,
		ReservaUC:   reservaUC,
		VehiculoUC:  vehiculoUC,
		MarcaUC:     marcaUC,
		ConcesionUC: concesionarioUC,
		UsuarioUC:   usuarioUC,
		DashboardUC: dashboardUC,
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
