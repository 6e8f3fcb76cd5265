package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/petshop-pos/internal/application/analytics"
	"github.com/tu-usuario/petshop-pos/internal/application/backup"
	"github.com/tu-usuario/petshop-pos/internal/application/ledger"
	"github.com/tu-usuario/petshop-pos/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	OrderUC     *ledger.OrderUseCase
	AnalyticsUC *analytics.AnalyticsUseCase
	BackupUC    *backup.BackupUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo de productos
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/barcode/:code", productHandler.GetByBarcode)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Checkout e historial
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	api.Get("/dashboard", dashboardHandler.GetSummary)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.AnalyticsUC)
	reports.Get("/", reportHandler.Get)
	reports.Get("/pdf", reportHandler.ExportPDF)

	// Respaldo
	backupGroup := api.Group("/backup")
	backupHandler := NewBackupHandler(deps.BackupUC)
	backupGroup.Get("/export", backupHandler.Export)
	backupGroup.Post("/import", backupHandler.Import)
	backupGroup.Post("/clear", backupHandler.Clear)
}
