package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/application/billing"
	"github.com/jhoicas/Gestion-api/internal/application/notification"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/realtime"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	Resolver      principalResolver
	EmployeeUC    *usecase.EmployeeUseCase
	RoleUC        *usecase.RoleUseCase
	EntityUC      *usecase.EntityUseCase
	UnitUC        *usecase.UnitUseCase
	ItemUC        *usecase.ItemUseCase
	InvoiceUC     *billing.InvoiceUseCase
	InvoicePDFUC  *billing.PDFUseCase
	Notifications *notification.Service
	Hub           *realtime.Hub
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/signup/company", authHandler.SignupCompany)
	authGroup.Post("/login/company", authHandler.LoginCompany)
	authGroup.Post("/login/employee", authHandler.LoginEmployee)

	// Rutas protegidas (requieren Bearer Token). Los permisos se evalúan por
	// petición contra el estado actual del rol, nunca contra el token.
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret, deps.Resolver))

	// Empleados
	employees := protected.Group("/employee")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/create", CompanyOnly(), employeeHandler.Create)
	employees.Get("/all", RequirePermission(entity.PermViewEmployees), employeeHandler.List)
	employees.Get("/:id", RequirePermission(entity.PermViewEmployees), employeeHandler.GetByID)
	employees.Put("/:id", RequirePermission(entity.PermManageEmployees), employeeHandler.Update)
	employees.Patch("/:id/role", RequirePermission(entity.PermManageEmployeeRoles), employeeHandler.UpdateRole)
	employees.Delete("/:id", CompanyOnly(), employeeHandler.Delete)

	// Roles y catálogo de permisos
	roles := protected.Group("/roles")
	roleHandler := NewRoleHandler(deps.RoleUC)
	roles.Get("/permissions", RequirePermission(entity.PermViewRoles), roleHandler.Catalog)
	roles.Get("/", RequirePermission(entity.PermViewRoles), roleHandler.List)
	roles.Get("/:roleId", RequirePermission(entity.PermViewRoles), roleHandler.GetByID)
	roles.Post("/", RequirePermission(entity.PermManageRoles), roleHandler.Create)
	roles.Put("/:roleId", RequirePermission(entity.PermManageRoles), roleHandler.Update)
	roles.Delete("/:roleId", RequirePermission(entity.PermManageRoles), roleHandler.Delete)

	// Entidades (clientes y negocios)
	entities := protected.Group("/entities")
	entityHandler := NewEntityHandler(deps.EntityUC)
	entities.Post("/create", RequirePermission(entity.PermCreateEntities), entityHandler.Create)
	entities.Get("/all", RequirePermission(entity.PermViewEntities), entityHandler.List)
	entities.Get("/:id", RequirePermission(entity.PermViewEntities), entityHandler.GetByID)
	entities.Put("/:id", RequirePermission(entity.PermEditEntities), entityHandler.Update)
	entities.Delete("/:id", RequirePermission(entity.PermDeleteEntities), entityHandler.Delete)

	// Unidades de medida (catálogo global)
	units := protected.Group("/units")
	unitHandler := NewUnitHandler(deps.UnitUC)
	units.Post("/create", RequirePermission(entity.PermCreateUnits), unitHandler.Create)
	units.Get("/all", RequirePermission(entity.PermViewUnits), unitHandler.List)
	units.Get("/:id", RequirePermission(entity.PermViewUnits), unitHandler.GetByID)
	units.Put("/:id", RequirePermission(entity.PermEditUnits), unitHandler.Update)
	units.Delete("/:id", RequirePermission(entity.PermDeleteUnits), unitHandler.Delete)

	// Ítems
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/create", RequirePermission(entity.PermCreateItems), itemHandler.Create)
	items.Get("/all", RequirePermission(entity.PermViewItems), itemHandler.List)
	items.Get("/:id", RequirePermission(entity.PermViewItems), itemHandler.GetByID)
	items.Put("/:id", RequirePermission(entity.PermEditItems), itemHandler.Update)
	items.Delete("/:id", RequirePermission(entity.PermDeleteItems), itemHandler.Delete)

	// Facturas
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.InvoicePDFUC)
	invoices.Post("/create", RequirePermission(entity.PermCreateInvoices), invoiceHandler.Create)
	invoices.Get("/all", RequirePermission(entity.PermViewInvoices), invoiceHandler.List)
	invoices.Get("/:id", RequirePermission(entity.PermViewInvoices), invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", RequirePermission(entity.PermViewInvoices), invoiceHandler.DownloadPDF)
	invoices.Put("/:id", RequirePermission(entity.PermEditInvoices), invoiceHandler.Update)
	invoices.Delete("/:id", RequirePermission(entity.PermDeleteInvoices), invoiceHandler.Delete)

	// Notificaciones (bandeja propia del principal; sin permiso extra)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.Notifications)
	notifications.Get("/", notificationHandler.List)
	notifications.Get("/unread-count", notificationHandler.UnreadCount)
	notifications.Patch("/mark-all-read", notificationHandler.MarkAllRead)
	notifications.Patch("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Realtime
	protected.Get("/ws", WebSocketUpgrade(), WebSocketHandler(deps.Hub))
}
