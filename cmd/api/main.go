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

	"github.com/tu-usuario/cosmetica-saas/internal/application/auth"
	"github.com/tu-usuario/cosmetica-saas/internal/application/consignacion"
	"github.com/tu-usuario/cosmetica-saas/internal/application/inventory"
	"github.com/tu-usuario/cosmetica-saas/internal/application/sales"
	"github.com/tu-usuario/cosmetica-saas/internal/application/usecase"
	"github.com/tu-usuario/cosmetica-saas/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/cosmetica-saas/internal/interfaces/http"
	"github.com/tu-usuario/cosmetica-saas/pkg/config"
	"github.com/tu-usuario/cosmetica-saas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	invRepo := postgres.NewInventoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	proveedoraRepo := postgres.NewProveedoraRepository(pool)
	consigRepo := postgres.NewConsignacionRepository(pool)
	ventaConsigRepo := postgres.NewVentaConsignacionRepository(pool)
	liqRepo := postgres.NewLiquidacionRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(txRunner, companyRepo, planRepo)
	productUC := usecase.NewProductUseCase(txRunner, productRepo)
	inventoryUC := inventory.NewLedgerUseCase(invRepo)
	createSaleUC := sales.NewCreateSaleUseCase(txRunner, customerRepo)
	listSalesUC := sales.NewListSalesUseCase(saleRepo, customerRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo)
	consignacionUC := consignacion.NewUseCase(proveedoraRepo, consigRepo, ventaConsigRepo, liqRepo, productRepo)
	settlementUC := consignacion.NewSettlementUseCase(txRunner, proveedoraRepo, liqRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
	reportUC := usecase.NewReportUseCase(receivableRepo, proveedoraRepo, consigRepo, ventaConsigRepo)

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
		Title:    "Cosmética SaaS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		ProductUC:      productUC,
		InventoryUC:    inventoryUC,
		CreateSale:     createSaleUC,
		ListSales:      listSalesUC,
		CustomerUC:     customerUC,
		ExpenseUC:      expenseUC,
		ConsignacionUC: consignacionUC,
		SettlementUC:   settlementUC,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
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
