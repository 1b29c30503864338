package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/smartsell/smartsell-api/internal/application/auth"
	"github.com/smartsell/smartsell-api/internal/application/ledger"
	"github.com/smartsell/smartsell-api/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Core              *ledger.Core
	AuthUC            *auth.UseCase
	ReportsUC         *reports.UseCase
	JWTSecret         string
	LowStockThreshold int
}

// Router registra las rutas de la API. Las formas de las rutas son las que
// consume el SPA del dashboard (/add, /list, /low-stock, /:id/stock, ...).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/profile", authHandler.Profile)

	// Inventario (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.Core, deps.LowStockThreshold)
	products.Post("/add", productHandler.Add)
	products.Get("/list", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/stock", productHandler.AdjustStock)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Libro de ventas (protegido)
	sales := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.Core)
	sales.Post("/add", salesHandler.Add)
	sales.Get("/list", salesHandler.List)
	sales.Get("/summary", salesHandler.Summary)

	// Reportes (protegido)
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/sales.pdf", reportHandler.SalesPDF)
}
