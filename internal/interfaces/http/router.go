package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-lotes-api/internal/application/auth"
	"github.com/jhoicas/stock-lotes-api/internal/application/catalog"
	"github.com/jhoicas/stock-lotes-api/internal/application/inventory"
	"github.com/jhoicas/stock-lotes-api/internal/application/order"
	"github.com/jhoicas/stock-lotes-api/internal/application/voucher"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *catalog.ProductUseCase
	SupplierUC  *catalog.SupplierUseCase
	WorkshopUC  *catalog.WorkshopUseCase
	VoucherUC   *voucher.VoucherUseCase
	VoucherPDF  *voucher.PDFUseCase
	OrderUC     *order.OrderUseCase
	ValuationUC *inventory.ValuationUseCase
	MovementUC  *inventory.MovementQueryUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
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

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", RequireRole("admin"), productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", RequireRole("admin"), productHandler.Update)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Workshops (protegido)
	workshops := protected.Group("/workshops")
	workshopHandler := NewWorkshopHandler(deps.WorkshopUC)
	workshops.Post("/", workshopHandler.Create)
	workshops.Get("/", workshopHandler.List)

	// Exit vouchers (protegido)
	vouchers := protected.Group("/vouchers")
	voucherHandler := NewVoucherHandler(deps.VoucherUC, deps.VoucherPDF)
	vouchers.Post("/", voucherHandler.Create)
	vouchers.Get("/", voucherHandler.List)
	vouchers.Get("/:id", voucherHandler.GetByID)
	vouchers.Post("/:id/validate", voucherHandler.Validate)
	vouchers.Post("/:id/cancel", voucherHandler.Cancel)
	vouchers.Get("/:id/pdf", voucherHandler.DownloadPDF)

	// Supplier orders (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/validate", orderHandler.Validate)
	orders.Post("/:id/receive", orderHandler.Receive)

	// Stock: valorización, historial y alertas (protegido)
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.ValuationUC, deps.MovementUC)
	stock.Get("/valuation", stockHandler.GlobalValuation)
	stock.Get("/valuation/:id", stockHandler.ProductValuation)
	stock.Get("/movements", stockHandler.ListMovements)
	stock.Get("/alerts", stockHandler.StockAlerts)
}
