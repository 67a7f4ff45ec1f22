package consignacion

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// SettlementUseCase crea liquidaciones y registra sus pagos. La liquidación
// es la foto inmutable de la deuda sin liquidar en la fecha de corte: crear
// la fila y marcar los eventos capturados ocurre en una sola transacción.
type SettlementUseCase struct {
	txRunner       TxRunner
	proveedoraRepo repository.ProveedoraRepository
	liqRepo        repository.LiquidacionRepository
}

// NewSettlementUseCase construye el caso de uso.
func NewSettlementUseCase(txRunner TxRunner, proveedoraRepo repository.ProveedoraRepository, liqRepo repository.LiquidacionRepository) *SettlementUseCase {
	return &SettlementUseCase{txRunner: txRunner, proveedoraRepo: proveedoraRepo, liqRepo: liqRepo}
}

// CrearLiquidacion recalcula la deuda sin liquidar dentro de la transacción
// (filas bloqueadas), agrupa los eventos por lote, crea la liquidación con
// sus detalles y marca los eventos como liquidados. Deuda <= 0 se rechaza con
// ErrNoOutstandingDebt. Los eventos creados después del corte quedan para la
// próxima liquidación.
func (uc *SettlementUseCase) CrearLiquidacion(ctx context.Context, companyID, proveedoraID, notes string) (*dto.LiquidacionResponse, error) {
	p, err := uc.proveedoraRepo.GetByID(proveedoraID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrTenantMismatch
	}

	var liq *entity.Liquidacion
	err = uc.txRunner.RunLiquidacion(ctx, func(
		ventaRepo repository.VentaConsignacionRepository,
		liqRepo repository.LiquidacionRepository,
	) error {
		// Recalcular con las filas bloqueadas: lo que se captura es
		// exactamente lo que se marca.
		ventas, err := ventaRepo.ListUnsettledByProveedora(companyID, proveedoraID, true)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, v := range ventas {
			total = total.Add(v.AmountOwed)
		}
		if !total.IsPositive() {
			return domain.ErrNoOutstandingDebt
		}

		// Agrupar por lote
		type grupo struct {
			events int
			amount decimal.Decimal
		}
		porLote := make(map[string]*grupo)
		ids := make([]string, 0, len(ventas))
		for _, v := range ventas {
			ids = append(ids, v.ID)
			g, ok := porLote[v.ConsignacionID]
			if !ok {
				g = &grupo{amount: decimal.Zero}
				porLote[v.ConsignacionID] = g
			}
			g.events++
			g.amount = g.amount.Add(v.AmountOwed)
		}

		now := time.Now()
		liq = &entity.Liquidacion{
			ID:           uuid.New().String(),
			CompanyID:    companyID,
			ProveedoraID: proveedoraID,
			Total:        total,
			AmountPaid:   decimal.Zero,
			Status:       entity.LiquidacionStatusPending,
			CutoffDate:   now,
			Notes:        notes,
			CreatedAt:    now,
		}
		if err := liqRepo.Create(liq); err != nil {
			return err
		}

		lotIDs := make([]string, 0, len(porLote))
		for lotID := range porLote {
			lotIDs = append(lotIDs, lotID)
		}
		sort.Strings(lotIDs)
		for _, lotID := range lotIDs {
			g := porLote[lotID]
			d := &entity.LiquidacionDetalle{
				ID:             uuid.New().String(),
				LiquidacionID:  liq.ID,
				ConsignacionID: lotID,
				EventsIncluded: g.events,
				Amount:         g.amount,
			}
			if err := liqRepo.CreateDetalle(d); err != nil {
				return err
			}
		}

		// Marcar los eventos capturados. Misma tx que la creación: un corte
		// entre ambas duplicaría la deuda en la próxima liquidación.
		return ventaRepo.MarkLiquidadas(ids)
	})
	if err != nil {
		return nil, err
	}

	resp := toLiquidacionResponse(liq)
	return &resp, nil
}

// RegistrarPago acumula un abono sobre la liquidación. No hay tope contra el
// total: un abono mayor al saldo se acepta tal cual y solo marca pagado
// (comportamiento heredado, ver DESIGN.md).
func (uc *SettlementUseCase) RegistrarPago(ctx context.Context, companyID, liquidacionID string, amount decimal.Decimal) (*dto.LiquidacionResponse, error) {
	if amount.IsNegative() || amount.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	liq, err := uc.liqRepo.GetByID(liquidacionID)
	if err != nil {
		return nil, err
	}
	if liq == nil {
		return nil, domain.ErrLiquidacionNotFound
	}
	if liq.CompanyID != companyID {
		return nil, domain.ErrTenantMismatch
	}

	liq.AmountPaid = liq.AmountPaid.Add(amount)
	if liq.AmountPaid.GreaterThanOrEqual(liq.Total) {
		liq.Status = entity.LiquidacionStatusPaid
		if liq.PaidAt == nil {
			now := time.Now()
			liq.PaidAt = &now
		}
	} else {
		liq.Status = entity.LiquidacionStatusPartial
	}
	if err := uc.liqRepo.UpdatePago(liq); err != nil {
		return nil, err
	}

	resp := toLiquidacionResponse(liq)
	return &resp, nil
}
