package dto

import "github.com/shopspring/decimal"

// AdminDashboardResponse rollup financiero para el dueño de la empresa.
type AdminDashboardResponse struct {
	SalesToday      decimal.Decimal `json:"ventas_hoy"`
	SalesMonth      decimal.Decimal `json:"ventas_mes"`
	ExpensesMonth   decimal.Decimal `json:"gastos_mes"`
	ReceivablesDue  decimal.Decimal `json:"cuentas_por_cobrar"`
	ConsignmentDebt decimal.Decimal `json:"deuda_consignacion"`
	SalesCount      int             `json:"numero_ventas"`
}

// SuperAdminDashboardResponse métricas globales del panel de super admin.
type SuperAdminDashboardResponse struct {
	Companies       int `json:"empresas"`
	ActiveCompanies int `json:"empresas_activas"`
	UsersTotal      int `json:"usuarios"`
	SalesTotal      int `json:"ventas_totales"`
}
