package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AdminFinancials resultado crudo del rollup financiero del dueño de la
// empresa. Lo produce la DB; el use case lo convierte en DTO.
type AdminFinancials struct {
	SalesToday      decimal.Decimal
	SalesMonth      decimal.Decimal
	ExpensesMonth   decimal.Decimal
	ReceivablesDue  decimal.Decimal // suma de cuentas por cobrar no pagadas
	ConsignmentDebt decimal.Decimal // deuda sin liquidar con todas las proveedoras
	SalesCount      int
}

// SuperAdminStats métricas globales para el panel de super administración.
type SuperAdminStats struct {
	Companies       int
	ActiveCompanies int
	UsersTotal      int
	SalesTotal      int
}

// DashboardRepository define las consultas de lectura de los tableros.
// Las implementaciones son read-only.
type DashboardRepository interface {
	GetAdminFinancials(ctx context.Context, companyID string, now time.Time) (*AdminFinancials, error)
	GetSuperAdminStats(ctx context.Context) (*SuperAdminStats, error)
}
