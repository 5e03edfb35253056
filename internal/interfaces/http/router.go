package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/holawaleh/e-commerce/internal/application/stock"
	"github.com/holawaleh/e-commerce/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppendMovement   *stock.AppendMovementUseCase
	Reconcile        *stock.ReconcileUseCase
	StockQuery       *stock.QueryUseCase
	AlertUC          *usecase.AlertUseCase
	ProductUC        *usecase.ProductUseCase
	CatalogUC        *usecase.CatalogUseCase
	JWTSecret        string
	ExpiryWindowDays int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stock ledger (protegido)
	stockGroup := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.AppendMovement, deps.Reconcile, deps.StockQuery)
	stockGroup.Post("/movements", stockHandler.AppendMovement)
	stockGroup.Get("/movements/summary", stockHandler.Summary)
	stockGroup.Get("/products/:id/movements", stockHandler.ListMovements)
	stockGroup.Post("/products/:id/reconcile", RequireRole("owner", "manager"), stockHandler.Reconcile)

	// Alertas (protegido)
	alertHandler := NewAlertHandler(deps.AlertUC, deps.ExpiryWindowDays)
	stockGroup.Get("/alerts", alertHandler.List)
	stockGroup.Post("/alerts/expiry-check", alertHandler.ExpiryCheck)
	stockGroup.Post("/alerts/:id/resolve", alertHandler.Resolve)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/inventory-value", productHandler.InventoryValue)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole("owner", "manager"), productHandler.Delete)

	// Catálogo: proveedores y categorías (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", catalogHandler.CreateSupplier)
	suppliers.Get("/", catalogHandler.ListSuppliers)
	suppliers.Put("/:id", catalogHandler.UpdateSupplier)
	suppliers.Delete("/:id", RequireRole("owner", "manager"), catalogHandler.DeleteSupplier)

	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Delete("/:id", RequireRole("owner", "manager"), catalogHandler.DeleteCategory)
}
