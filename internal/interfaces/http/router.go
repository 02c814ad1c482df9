package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DavidManiIbrahim/keeper-api/internal/application/analytics"
	"github.com/DavidManiIbrahim/keeper-api/internal/application/auth"
	"github.com/DavidManiIbrahim/keeper-api/internal/application/usecase"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CategoryUC  *usecase.CategoryUseCase
	SupplierUC  *usecase.SupplierUseCase
	ProductUC   *usecase.ProductUseCase
	StockTxUC   *usecase.StockTransactionUseCase
	OrderUC     *usecase.PurchaseOrderUseCase
	OrderPDFUC  *usecase.OrderPDFUseCase
	DashboardUC *analytics.DashboardUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. Las lecturas requieren solo un token
// válido; toda mutación pasa además por RequireRole(admin, manager), sin
// excepciones por entidad.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	manage := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Identidad del usuario autenticado
	protected.Get("/me", authHandler.Me)

	// Categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", manage, categoryHandler.Create)
	categories.Delete("/:id", manage, categoryHandler.Delete)

	// Suppliers
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Post("/", manage, supplierHandler.Create)
	suppliers.Put("/:id", manage, supplierHandler.Update)
	suppliers.Delete("/:id", manage, supplierHandler.Delete)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", manage, productHandler.Create)
	products.Put("/:id", manage, productHandler.Update)
	products.Delete("/:id", manage, productHandler.Delete)

	// Stock transactions (inmutables: sin PUT)
	transactions := protected.Group("/stock-transactions")
	txHandler := NewStockTransactionHandler(deps.StockTxUC)
	transactions.Get("/", txHandler.List)
	transactions.Get("/:id", txHandler.GetByID)
	transactions.Post("/", manage, txHandler.Create)
	transactions.Delete("/:id", manage, txHandler.Delete)

	// Purchase orders
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/pdf", orderHandler.DownloadPDF)
	orders.Post("/", manage, orderHandler.Create)
	orders.Put("/:id", manage, orderHandler.Update)
	orders.Delete("/:id", manage, orderHandler.Delete)

	// Dashboard (solo lectura)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.GetStats)
}
