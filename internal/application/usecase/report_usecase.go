package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// ReportUseCase reportes de lectura para el dueño: cartera pendiente y deuda
// de consignación por proveedora. Sin efectos sobre el estado.
type ReportUseCase struct {
	receivableRepo repository.ReceivableRepository
	proveedoraRepo repository.ProveedoraRepository
	consigRepo     repository.ConsignacionRepository
	ventaRepo      repository.VentaConsignacionRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	receivableRepo repository.ReceivableRepository,
	proveedoraRepo repository.ProveedoraRepository,
	consigRepo repository.ConsignacionRepository,
	ventaRepo repository.VentaConsignacionRepository,
) *ReportUseCase {
	return &ReportUseCase{
		receivableRepo: receivableRepo,
		proveedoraRepo: proveedoraRepo,
		consigRepo:     consigRepo,
		ventaRepo:      ventaRepo,
	}
}

// CuentasPorCobrar cartera pendiente del tenant: cuentas con saldo, las más
// próximas a vencer primero.
func (uc *ReportUseCase) CuentasPorCobrar(ctx context.Context, companyID string) (*dto.ReceivableReportResponse, error) {
	rows, err := uc.receivableRepo.ListOutstandingByCompany(companyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := &dto.ReceivableReportResponse{
		Rows:      make([]dto.ReceivableReportRow, 0, len(rows)),
		TotalDue:  decimal.Zero,
		Generated: now,
	}
	for _, r := range rows {
		overdue := r.Receivable.DueDate.Before(now)
		resp.Rows = append(resp.Rows, dto.ReceivableReportRow{
			SaleID:       r.Receivable.SaleID,
			CustomerID:   r.CustomerID,
			CustomerName: r.CustomerName,
			SaleTotal:    r.SaleTotal,
			AmountDue:    r.Receivable.AmountDue,
			Status:       r.Receivable.Status,
			SoldAt:       r.SoldAt,
			DueDate:      r.Receivable.DueDate,
			Overdue:      overdue,
		})
		resp.TotalDue = resp.TotalDue.Add(r.Receivable.AmountDue)
		if overdue {
			resp.OverdueN++
		}
	}
	resp.Count = len(resp.Rows)
	return resp, nil
}

// Consignaciones deuda y actividad por proveedora. Agrega los eventos sin
// liquidar a los precios capturados en la venta.
func (uc *ReportUseCase) Consignaciones(ctx context.Context, companyID string) (*dto.ConsignacionReportResponse, error) {
	proveedoras, err := uc.proveedoraRepo.ListByCompany(companyID, false)
	if err != nil {
		return nil, err
	}

	resp := &dto.ConsignacionReportResponse{
		Rows:      make([]dto.ConsignacionReportRow, 0, len(proveedoras)),
		TotalOwed: decimal.Zero,
		Generated: time.Now(),
	}
	for _, p := range proveedoras {
		lots, err := uc.consigRepo.ListByProveedora(companyID, p.ID)
		if err != nil {
			return nil, err
		}
		row := dto.ConsignacionReportRow{
			ProveedoraID:   p.ID,
			ProveedoraName: p.Name,
			AmountOwed:     decimal.Zero,
			OwnProfit:      decimal.Zero,
		}
		for _, l := range lots {
			if l.Status == entity.ConsignacionStatusActive {
				row.ActiveLots++
				row.UnitsAvailable += l.Available
			}
		}

		ventas, err := uc.ventaRepo.ListUnsettledByProveedora(companyID, p.ID, false)
		if err != nil {
			return nil, err
		}
		row.PendingEvents = len(ventas)
		for _, v := range ventas {
			row.AmountOwed = row.AmountOwed.Add(v.AmountOwed)
			row.OwnProfit = row.OwnProfit.Add(v.OwnProfit)
		}

		resp.Rows = append(resp.Rows, row)
		resp.TotalOwed = resp.TotalOwed.Add(row.AmountOwed)
	}
	return resp, nil
}
