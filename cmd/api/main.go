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

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/notification"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Gestion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/realtime"
	httpRouter "github.com/jhoicas/Gestion-api/internal/interfaces/http"
	"github.com/jhoicas/Gestion-api/pkg/config"
	"github.com/jhoicas/Gestion-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	roleRepo := postgres.NewRoleRepository(pool)
	permissionRepo := postgres.NewPermissionRepository(pool)
	entityRepo := postgres.NewEntityRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// El catálogo de permisos es fijo; se siembra una sola vez.
	if err := postgres.SeedPermissions(permissionRepo); err != nil {
		log.Fatal().Err(err).Msg("siembra del catálogo de permisos")
	}

	hub := realtime.NewHub()
	notificationSvc := notification.NewService(notificationRepo, hub)

	authUC := auth.NewUseCase(companyRepo, employeeRepo, roleRepo,
		cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpHours)
	resolver := auth.NewPrincipalResolver(employeeRepo, roleRepo)

	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, roleRepo, notificationSvc)
	roleUC := usecase.NewRoleUseCase(roleRepo, permissionRepo, employeeRepo, txRunner)
	entityUC := usecase.NewEntityUseCase(entityRepo)
	unitUC := usecase.NewUnitUseCase(unitRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, unitRepo)

	invoiceUC := billing.NewInvoiceUseCase(txRunner, invoiceRepo, entityRepo, itemRepo, notificationSvc)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, companyRepo, entityRepo, itemRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestion Pro API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		Resolver:      resolver,
		EmployeeUC:    employeeUC,
		RoleUC:        roleUC,
		EntityUC:      entityUC,
		UnitUC:        unitUC,
		ItemUC:        itemUC,
		InvoiceUC:     invoiceUC,
		InvoicePDFUC:  invoicePDFUC,
		Notifications: notificationSvc,
		Hub:           hub,
		JWTSecret:     cfg.JWT.Secret,
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
