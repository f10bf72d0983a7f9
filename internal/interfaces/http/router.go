package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nutrimilho/estoque-api/internal/application/alerts"
	"github.com/nutrimilho/estoque-api/internal/application/analytics"
	"github.com/nutrimilho/estoque-api/internal/application/auth"
	"github.com/nutrimilho/estoque-api/internal/application/inventory"
	"github.com/nutrimilho/estoque-api/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	CatalogUC        *inventory.CatalogUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	DashboardUC      *analytics.DashboardUseCase
	ReportUC         *reports.ReportUseCase
	AlertEvaluator   *alerts.Evaluator
	AlertScheduler   *alerts.Scheduler
	JWTSecret        string
	// OnInventoryChanged se invoca tras mutaciones exitosas para refrescar
	// alertas sin esperar al próximo tick; puede ser nil.
	OnInventoryChanged func()
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireAdmin()

	// Groups (lectura para todos; mutaciones solo admin)
	groups := protected.Group("/groups")
	groupHandler := NewGroupHandler(deps.CatalogUC, deps.OnInventoryChanged)
	groups.Get("/", groupHandler.List)
	groups.Post("/", admin, groupHandler.Create)
	groups.Delete("/:id", admin, groupHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC, deps.OnInventoryChanged)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", admin, productHandler.Create)
	products.Put("/:id", admin, productHandler.Update)
	products.Delete("/:id", admin, productHandler.Delete)

	// Movements
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.OnInventoryChanged)
	movements.Get("/", movementHandler.List)
	movements.Post("/", admin, movementHandler.Register)

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)
	dashboard.Get("/groups", dashboardHandler.Groups)

	// Alerts
	alertsGroup := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertEvaluator, deps.AlertScheduler)
	alertsGroup.Get("/", alertHandler.List)
	alertsGroup.Put("/read-all", alertHandler.MarkAllAsRead)
	alertsGroup.Put("/:id/read", alertHandler.MarkAsRead)
	alertsGroup.Post("/refresh", alertHandler.Refresh)

	// Reports
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/stock.pdf", reportHandler.StockPDF)
	reportsGroup.Get("/movements.xlsx", reportHandler.MovementsXLSX)
}
