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

	appanalytics "github.com/DavidManiIbrahim/keeper-api/internal/application/analytics"
	"github.com/DavidManiIbrahim/keeper-api/internal/application/auth"
	"github.com/DavidManiIbrahim/keeper-api/internal/application/usecase"
	"github.com/DavidManiIbrahim/keeper-api/internal/infrastructure/cache"
	infrapdf "github.com/DavidManiIbrahim/keeper-api/internal/infrastructure/pdf"
	"github.com/DavidManiIbrahim/keeper-api/internal/infrastructure/postgres"
	httpRouter "github.com/DavidManiIbrahim/keeper-api/internal/interfaces/http"
	"github.com/DavidManiIbrahim/keeper-api/pkg/config"
	"github.com/DavidManiIbrahim/keeper-api/pkg/logger"
	"github.com/DavidManiIbrahim/keeper-api/pkg/metrics"
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

	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRepo := postgres.NewStockTransactionRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	// Cache de métricas (opcional): con REDIS_ADDR vacío o Redis caído,
	// el dashboard consulta directo a la DB.
	var statsCache appanalytics.StatsCache
	if cfg.Redis.Addr != "" {
		redisCache, err := cache.Connect(ctx, cfg.Redis, log)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, dashboard sin cache")
		} else {
			defer redisCache.Close()
			statsCache = redisCache
		}
	}

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	stockTxUC := usecase.NewStockTransactionUseCase(txRepo)
	orderUC := usecase.NewPurchaseOrderUseCase(orderRepo)
	orderPDFUC := usecase.NewOrderPDFUseCase(orderRepo, supplierRepo, infrapdf.NewMarotoPDFGenerator())
	dashboardUC := appanalytics.NewDashboardUseCase(categoryRepo, supplierRepo, productRepo, txRepo, statsCache)
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

	metrics.Register()
	app.Use(metrics.Middleware())
	app.Get("/metrics", metrics.Handler())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Keeper API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CategoryUC:  categoryUC,
		SupplierUC:  supplierUC,
		ProductUC:   productUC,
		StockTxUC:   stockTxUC,
		OrderUC:     orderUC,
		OrderPDFUC:  orderPDFUC,
		DashboardUC: dashboardUC,
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
