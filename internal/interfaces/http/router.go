package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/cosmetica-saas/internal/application/auth"
	"github.com/tu-usuario/cosmetica-saas/internal/application/consignacion"
	"github.com/tu-usuario/cosmetica-saas/internal/application/inventory"
	"github.com/tu-usuario/cosmetica-saas/internal/application/sales"
	"github.com/tu-usuario/cosmetica-saas/internal/application/usecase"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	ProductUC      *usecase.ProductUseCase
	InventoryUC    *inventory.LedgerUseCase
	CreateSale     *sales.CreateSaleUseCase
	ListSales      *sales.ListSalesUseCase
	CustomerUC     *usecase.CustomerUseCase
	ExpenseUC      *usecase.ExpenseUseCase
	ConsignacionUC *consignacion.UseCase
	SettlementUC   *consignacion.SettlementUseCase
	DashboardUC    *usecase.DashboardUseCase
	ReportUC       *usecase.ReportUseCase
	JWTSecret      string
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

	// Companies y plans (solo super_admin)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies := protected.Group("/companies", RequireRole(entity.RoleSuperAdmin))
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	protected.Get("/plans", companyHandler.ListPlans)

	// Catálogo global (lee cualquiera, escribe super_admin)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", RequireRole(entity.RoleSuperAdmin), productHandler.Create)

	// Inventario propio del tenant
	invHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup := protected.Group("/inventory", RequireRole(entity.RoleOwner, entity.RoleVendedor))
	invGroup.Get("/", invHandler.List)
	invGroup.Get("/:productId", invHandler.GetStock)
	invGroup.Patch("/:productId", invHandler.SetPricing)
	invGroup.Post("/:productId/adjust", invHandler.AdjustStock)

	// Ventas POS
	saleHandler := NewSaleHandler(deps.CreateSale, deps.ListSales)
	salesGroup := protected.Group("/sales", RequireRole(entity.RoleOwner, entity.RoleVendedor))
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)

	// Clientes
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers := protected.Group("/customers", RequireRole(entity.RoleOwner, entity.RoleVendedor))
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)

	// Gastos
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := protected.Group("/expenses", RequireRole(entity.RoleOwner))
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)

	// Consignación
	consigHandler := NewConsignacionHandler(deps.ConsignacionUC, deps.SettlementUC)
	consig := protected.Group("/consignacion", RequireRole(entity.RoleOwner, entity.RoleVendedor))
	consig.Get("/proveedoras", consigHandler.ListProveedoras)
	consig.Post("/proveedoras", consigHandler.CreateProveedora)
	consig.Get("/", consigHandler.ListConsignaciones)
	consig.Post("/", consigHandler.CreateConsignacion)
	consig.Get("/reporte/:proveedoraId", consigHandler.Reporte)
	consig.Post("/liquidar/:proveedoraId", RequireRole(entity.RoleOwner), consigHandler.Liquidar)
	consig.Patch("/pago/:liquidacionId", RequireRole(entity.RoleOwner), consigHandler.RegistrarPago)

	// Dashboards
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard := protected.Group("/dashboard")
	dashboard.Get("/admin", RequireRole(entity.RoleOwner), dashboardHandler.Admin)
	dashboard.Get("/superadmin", RequireRole(entity.RoleSuperAdmin), dashboardHandler.SuperAdmin)

	// Reportes (solo dueño)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports := protected.Group("/reports", RequireRole(entity.RoleOwner))
	reports.Get("/cuentas-cobrar", reportHandler.CuentasPorCobrar)
	reports.Get("/consignaciones", reportHandler.Consignaciones)
}
