package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/vinculohr/vinculo/internal/config"
	"github.com/vinculohr/vinculo/pkg/errx"
	"github.com/vinculohr/vinculo/pkg/iam/user/userapi"
	"github.com/vinculohr/vinculo/pkg/logx"
	"github.com/vinculohr/vinculo/seleccion/candidato/candidatoapi"
	"github.com/vinculohr/vinculo/seleccion/candidato/candidatoauth"
	"github.com/vinculohr/vinculo/seleccion/catalogo/catalogoapi"
	"github.com/vinculohr/vinculo/seleccion/certificado/certificadoapi"
	"github.com/vinculohr/vinculo/seleccion/cita/citaapi"
	"github.com/vinculohr/vinculo/seleccion/empresa/empresaapi"
	"github.com/vinculohr/vinculo/seleccion/informe/informeapi"
	"github.com/vinculohr/vinculo/seleccion/prestador/prestadorapi"
	"github.com/vinculohr/vinculo/seleccion/solicitud/solicitudapi"
)

func main() {
	// 1. Initialize Logger
	logx.SetLevel(logx.LevelInfo)
	logx.Info("Starting Vinculo API Server...")

	cfg, err := config.Load()
	if err != nil {
		logx.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Initialize Dependency Container
	container := NewContainer(cfg)
	defer container.DB.Close()
	defer container.Redis.Close()

	// 3. Create Fiber App with Config
	app := fiber.New(fiber.Config{
		AppName:               "Vinculo HR API",
		DisableStartupMessage: true,
		ErrorHandler:          globalErrorHandler,
	})

	// 4. Global Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*", // Configure for production
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT, DELETE, PATCH, HEAD",
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// 5. Health Check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"db":     container.DB.Ping() == nil,
			"redis":  container.Redis.Ping(c.Context()).Err() == nil,
		})
	})

	// 6. Register Routes

	// --- Core Auth Routes ---
	// /auth/login, /auth/refresh, /auth/logout, /auth/me, /auth/password/*
	container.AuthHandlers.RegisterRoutes(app, container.AuthMiddleware)

	// --- IAM Routes ---
	// Usuarios y perfiles: /api/usuarios, /api/perfiles
	userapi.RegisterRoutes(app, container.UserHandlers, container.AuthMiddleware)

	// --- Seleccion Routes ---

	// Solicitudes: /api/solicitudes
	solicitudapi.RegisterRoutes(app, container.SolicitudHandlers, container.AuthMiddleware)

	// Candidatos (admin API): /api/candidatos
	candidatoapi.RegisterRoutes(app, container.CandidatoHandlers, container.AuthMiddleware)

	// Empresas (admin API + portal): /api/empresas
	empresaapi.RegisterRoutes(
		app,
		container.EmpresaHandlers,
		container.AuthMiddleware,
		container.EmpresaTokenService,
		container.PasswordService,
		container.EmpresaRepo,
	)

	// Catalogos: /api/catalogos/:kind
	catalogoapi.RegisterRoutes(app, container.CatalogoHandlers, container.AuthMiddleware)

	// Prestadores: /api/prestadores
	prestadorapi.RegisterRoutes(app, container.PrestadorHandlers, container.AuthMiddleware)

	// Citas: /api/citas
	citaapi.RegisterRoutes(app, container.CitaHandlers, container.AuthMiddleware)

	// Certificados: /api/certificados + public /api/verificacion/:codigo
	certificadoapi.RegisterRoutes(app, container.CertificadoHandlers, container.AuthMiddleware)

	// Informes: /api/informes
	informeapi.RegisterRoutes(app, container.InformeHandlers, container.AuthMiddleware)

	// --- Candidato Portal Routes ---
	// /api/candidatos/auth/*
	candidatoauth.RegisterRoutes(app, container.CandidatoAuthHandlers, container.CandidatoTokenService)

	// 7. Background Workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	container.CertificadoWorker.Start(workerCtx)

	// 8. Start Server with Graceful Shutdown
	go func() {
		logx.Infof("Server listening on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logx.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c // Wait for signal
	logx.Info("Shutting down server...")
	stopWorkers()

	if err := app.Shutdown(); err != nil {
		logx.Errorf("Server forced to shutdown: %v", err)
	}

	logx.Info("Server exited")
}

// globalErrorHandler converts internal errors to standard HTTP responses
func globalErrorHandler(c *fiber.Ctx, err error) error {
	// If it's a Fiber error (e.g., 404 handler not found)
	if e, ok := err.(*fiber.Error); ok {
		return c.Status(e.Code).JSON(fiber.Map{
			"error": e.Message,
			"code":  e.Code,
		})
	}

	// If it's our custom errx.Error
	if e, ok := err.(*errx.Error); ok {
		return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
	}

	// Default unknown error
	logx.Errorf("Internal Server Error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Internal Server Error",
		"type":    "INTERNAL",
		"code":    "INTERNAL_ERROR",
		"message": "An unexpected error occurred",
	})
}
