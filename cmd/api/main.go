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

	"github.com/jhoicas/stock-lotes-api/internal/application/auth"
	"github.com/jhoicas/stock-lotes-api/internal/application/catalog"
	"github.com/jhoicas/stock-lotes-api/internal/application/inventory"
	"github.com/jhoicas/stock-lotes-api/internal/application/order"
	"github.com/jhoicas/stock-lotes-api/internal/application/voucher"
	infrapdf "github.com/jhoicas/stock-lotes-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stock-lotes-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stock-lotes-api/internal/interfaces/http"
	"github.com/jhoicas/stock-lotes-api/pkg/config"
	"github.com/jhoicas/stock-lotes-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	workshopRepo := postgres.NewWorkshopRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	voucherRepo := postgres.NewExitVoucherRepository(pool)
	orderRepo := postgres.NewSupplierOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := catalog.NewProductUseCase(productRepo)
	supplierUC := catalog.NewSupplierUseCase(supplierRepo)
	workshopUC := catalog.NewWorkshopUseCase(workshopRepo)
	voucherUC := voucher.NewVoucherUseCase(txRunner, voucherRepo, productRepo, workshopRepo)
	orderUC := order.NewOrderUseCase(txRunner, orderRepo, productRepo, supplierRepo)
	valuationUC := inventory.NewValuationUseCase(lotRepo, productRepo)
	movementUC := inventory.NewMovementQueryUseCase(movementRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	voucherPDFUC := voucher.NewPDFUseCase(voucherRepo, productRepo, workshopRepo, pdfGenerator)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Stock Lotes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		SupplierUC:  supplierUC,
		WorkshopUC:  workshopUC,
		VoucherUC:   voucherUC,
		VoucherPDF:  voucherPDFUC,
		OrderUC:     orderUC,
		ValuationUC: valuationUC,
		MovementUC:  movementUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
