package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas agregadas read-only de los tableros.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador.
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// GetAdminFinancials rollup financiero del tenant: ventas de hoy y del mes,
// gastos del mes, fiado pendiente y deuda de consignación sin liquidar.
func (r *DashboardRepo) GetAdminFinancials(ctx context.Context, companyID string, now time.Time) (*repository.AdminFinancials, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var f repository.AdminFinancials
	query := `
		SELECT
			COALESCE((SELECT SUM(monto_total) FROM ventas
				WHERE company_id = $1 AND fecha_venta >= $2), 0),
			COALESCE((SELECT SUM(monto_total) FROM ventas
				WHERE company_id = $1 AND fecha_venta >= $3), 0),
			COALESCE((SELECT SUM(monto) FROM gastos
				WHERE company_id = $1 AND fecha_gasto >= $3), 0),
			COALESCE((SELECT SUM(cpc.monto_adeudado) FROM cuentas_por_cobrar cpc
				JOIN ventas v ON v.id = cpc.venta_id
				WHERE v.company_id = $1 AND cpc.estado <> 'pagado'), 0),
			COALESCE((SELECT SUM(vc.monto_a_reportar) FROM ventas_consignacion vc
				JOIN consignaciones c ON c.id = vc.consignacion_id
				WHERE c.company_id = $1 AND vc.liquidado = false), 0),
			(SELECT COUNT(*) FROM ventas WHERE company_id = $1 AND fecha_venta >= $3)`
	err := r.q.QueryRow(ctx, query, companyID, dayStart, monthStart).Scan(
		&f.SalesToday, &f.SalesMonth, &f.ExpensesMonth,
		&f.ReceivablesDue, &f.ConsignmentDebt, &f.SalesCount,
	)
	if err != nil {
		return nil, fmt.Errorf("get admin financials: %w", err)
	}
	return &f, nil
}

// GetSuperAdminStats métricas globales de la plataforma.
func (r *DashboardRepo) GetSuperAdminStats(ctx context.Context) (*repository.SuperAdminStats, error) {
	var s repository.SuperAdminStats
	query := `
		SELECT
			(SELECT COUNT(*) FROM companies),
			(SELECT COUNT(*) FROM companies WHERE estado = 'activo'),
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM ventas)`
	err := r.q.QueryRow(ctx, query).Scan(
		&s.Companies, &s.ActiveCompanies, &s.UsersTotal, &s.SalesTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("get superadmin stats: %w", err)
	}
	return &s, nil
}
