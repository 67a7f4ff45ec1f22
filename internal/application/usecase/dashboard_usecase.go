package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// DashboardUseCase rollups de lectura para los tableros. Solo agrega lo que
// ya calculan los motores de venta y consignación; no tiene efectos.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// AdminFinancials rollup financiero para el dueño de la empresa.
func (uc *DashboardUseCase) AdminFinancials(ctx context.Context, companyID string) (*dto.AdminDashboardResponse, error) {
	f, err := uc.repo.GetAdminFinancials(ctx, companyID, time.Now())
	if err != nil {
		return nil, err
	}
	return &dto.AdminDashboardResponse{
		SalesToday:      f.SalesToday,
		SalesMonth:      f.SalesMonth,
		ExpensesMonth:   f.ExpensesMonth,
		ReceivablesDue:  f.ReceivablesDue,
		ConsignmentDebt: f.ConsignmentDebt,
		SalesCount:      f.SalesCount,
	}, nil
}

// SuperAdminStats métricas globales del sistema.
func (uc *DashboardUseCase) SuperAdminStats(ctx context.Context) (*dto.SuperAdminDashboardResponse, error) {
	s, err := uc.repo.GetSuperAdminStats(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SuperAdminDashboardResponse{
		Companies:       s.Companies,
		ActiveCompanies: s.ActiveCompanies,
		UsersTotal:      s.UsersTotal,
		SalesTotal:      s.SalesTotal,
	}, nil
}
