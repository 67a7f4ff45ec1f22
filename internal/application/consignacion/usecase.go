package consignacion

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// UseCase agrupa la contabilidad de consignación: proveedoras, lotes, cálculo
// de deuda y reporte. Las liquidaciones viven en SettlementUseCase.
type UseCase struct {
	proveedoraRepo repository.ProveedoraRepository
	consigRepo     repository.ConsignacionRepository
	ventaRepo      repository.VentaConsignacionRepository
	liqRepo        repository.LiquidacionRepository
	productRepo    repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	proveedoraRepo repository.ProveedoraRepository,
	consigRepo repository.ConsignacionRepository,
	ventaRepo repository.VentaConsignacionRepository,
	liqRepo repository.LiquidacionRepository,
	productRepo repository.ProductRepository,
) *UseCase {
	return &UseCase{
		proveedoraRepo: proveedoraRepo,
		consigRepo:     consigRepo,
		ventaRepo:      ventaRepo,
		liqRepo:        liqRepo,
		productRepo:    productRepo,
	}
}

// ── Proveedoras ───────────────────────────────────────────────────────────────

// CreateProveedora alta de proveedora para la empresa.
func (uc *UseCase) CreateProveedora(ctx context.Context, companyID string, in dto.CreateProveedoraRequest) (*dto.ProveedoraResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Proveedora{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Notes:     in.Notes,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.proveedoraRepo.Create(p); err != nil {
		return nil, err
	}
	return toProveedoraResponse(p, nil, nil), nil
}

// ListProveedoras proveedoras activas con el resumen de sus lotes activos.
func (uc *UseCase) ListProveedoras(ctx context.Context, companyID string) ([]*dto.ProveedoraResponse, error) {
	list, err := uc.proveedoraRepo.ListByCompany(companyID, true)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProveedoraResponse, 0, len(list))
	for _, p := range list {
		lots, err := uc.consigRepo.ListByProveedora(companyID, p.ID)
		if err != nil {
			return nil, err
		}
		var active []*entity.Consignacion
		for _, lot := range lots {
			if lot.Status == entity.ConsignacionStatusActive {
				active = append(active, lot)
			}
		}
		names, err := uc.productNames(active)
		if err != nil {
			return nil, err
		}
		out = append(out, toProveedoraResponse(p, active, names))
	}
	return out, nil
}

// ── Lotes ─────────────────────────────────────────────────────────────────────

// CreateConsignacion alta de un lote: disponible arranca igual a lo recibido,
// estado activo.
func (uc *UseCase) CreateConsignacion(ctx context.Context, companyID string, in dto.CreateConsignacionRequest) (*dto.ConsignacionResponse, error) {
	if in.ProveedoraID == "" || in.ProductID == "" || in.Received <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.SupplierPrice.IsNegative() || in.OwnPrice.IsNegative() || in.CostPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	p, err := uc.proveedoraRepo.GetByID(in.ProveedoraID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, domain.ErrTenantMismatch
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	c := &entity.Consignacion{
		ID:            uuid.New().String(),
		CompanyID:     companyID,
		ProveedoraID:  in.ProveedoraID,
		ProductID:     in.ProductID,
		Received:      in.Received,
		Available:     in.Received,
		CostPrice:     in.CostPrice,
		SupplierPrice: in.SupplierPrice,
		OwnPrice:      in.OwnPrice,
		Status:        entity.ConsignacionStatusActive,
		Notes:         in.Notes,
		ReceivedAt:    time.Now(),
	}
	if err := uc.consigRepo.Create(c); err != nil {
		return nil, err
	}
	return uc.toConsignacionResponse(c, p.Name, product.Name, nil), nil
}

// ListConsignaciones lotes de la empresa con totales vendidos/adeudados.
func (uc *UseCase) ListConsignaciones(ctx context.Context, companyID string) ([]*dto.ConsignacionResponse, error) {
	lots, err := uc.consigRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ConsignacionResponse, 0, len(lots))
	for _, lot := range lots {
		p, err := uc.proveedoraRepo.GetByID(lot.ProveedoraID)
		if err != nil {
			return nil, err
		}
		product, err := uc.productRepo.GetByID(lot.ProductID)
		if err != nil {
			return nil, err
		}
		ventas, err := uc.ventaRepo.ListByConsignacion(lot.ID)
		if err != nil {
			return nil, err
		}
		proveedoraName, productName := "", ""
		if p != nil {
			proveedoraName = p.Name
		}
		if product != nil {
			productName = product.Name
		}
		out = append(out, uc.toConsignacionResponse(lot, proveedoraName, productName, ventas))
	}
	return out, nil
}

// ── Deuda ─────────────────────────────────────────────────────────────────────

// CalcularDeuda suma los eventos sin liquidar de los lotes de la proveedora.
// Lectura pura, sin efectos.
func (uc *UseCase) CalcularDeuda(ctx context.Context, companyID, proveedoraID string) (*dto.DebtSummary, []*entity.VentaConsignacion, error) {
	p, err := uc.proveedoraRepo.GetByID(proveedoraID)
	if err != nil {
		return nil, nil, err
	}
	if p == nil {
		return nil, nil, domain.ErrNotFound
	}
	if p.CompanyID != companyID {
		return nil, nil, domain.ErrTenantMismatch
	}

	ventas, err := uc.ventaRepo.ListUnsettledByProveedora(companyID, proveedoraID, false)
	if err != nil {
		return nil, nil, err
	}
	summary := sumVentas(ventas)

	lots, err := uc.consigRepo.ListByProveedora(companyID, proveedoraID)
	if err != nil {
		return nil, nil, err
	}
	for _, lot := range lots {
		if lot.Status == entity.ConsignacionStatusActive {
			summary.ActiveLots++
		}
	}
	return summary, ventas, nil
}

// ReporteProveedora reporte completo: resumen de deuda, desglose por lote y
// liquidaciones anteriores.
func (uc *UseCase) ReporteProveedora(ctx context.Context, companyID, proveedoraID string) (*dto.ReporteProveedoraResponse, error) {
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

	summary, ventas, err := uc.CalcularDeuda(ctx, companyID, proveedoraID)
	if err != nil {
		return nil, err
	}

	lots, err := uc.consigRepo.ListByProveedora(companyID, proveedoraID)
	if err != nil {
		return nil, err
	}
	ventasPorLote := make(map[string][]*entity.VentaConsignacion)
	for _, v := range ventas {
		ventasPorLote[v.ConsignacionID] = append(ventasPorLote[v.ConsignacionID], v)
	}

	detalle := make([]dto.ReporteLote, 0, len(lots))
	for _, lot := range lots {
		product, err := uc.productRepo.GetByID(lot.ProductID)
		if err != nil {
			return nil, err
		}
		productName := ""
		if product != nil {
			productName = product.Name
		}
		deLote := ventasPorLote[lot.ID]
		loteResumen := sumVentas(deLote)
		sold := 0
		salesOut := make([]dto.ReporteVenta, 0, len(deLote))
		for _, v := range deLote {
			sold += v.Quantity
			salesOut = append(salesOut, dto.ReporteVenta{
				Date:       v.SoldAt,
				Quantity:   v.Quantity,
				SoldPrice:  v.UnitPriceUsed,
				AmountOwed: v.AmountOwed,
				Profit:     v.OwnProfit,
			})
		}
		detalle = append(detalle, dto.ReporteLote{
			ConsignacionID: lot.ID,
			Product:        productName,
			Received:       lot.Received,
			Available:      lot.Available,
			Sold:           sold,
			SupplierPrice:  lot.SupplierPrice,
			OwnPrice:       lot.OwnPrice,
			Debt:           loteResumen.TotalDebt,
			Profit:         loteResumen.TotalProfit,
			Sales:          salesOut,
		})
	}

	liqs, err := uc.liqRepo.ListByProveedora(companyID, proveedoraID)
	if err != nil {
		return nil, err
	}
	liqsOut := make([]dto.LiquidacionResponse, 0, len(liqs))
	for _, l := range liqs {
		liqsOut = append(liqsOut, toLiquidacionResponse(l))
	}

	return &dto.ReporteProveedoraResponse{
		Proveedora:    *toProveedoraResponse(p, nil, nil),
		Resumen:       *summary,
		Detalle:       detalle,
		Liquidaciones: liqsOut,
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func sumVentas(ventas []*entity.VentaConsignacion) *dto.DebtSummary {
	s := &dto.DebtSummary{
		TotalDebt:   decimal.Zero,
		TotalProfit: decimal.Zero,
		TotalSold:   decimal.Zero,
	}
	for _, v := range ventas {
		s.TotalDebt = s.TotalDebt.Add(v.AmountOwed)
		s.TotalProfit = s.TotalProfit.Add(v.OwnProfit)
		s.TotalSold = s.TotalSold.Add(v.UnitPriceUsed.Mul(decimal.NewFromInt(int64(v.Quantity))))
	}
	return s
}

func (uc *UseCase) productNames(lots []*entity.Consignacion) (map[string]string, error) {
	names := make(map[string]string, len(lots))
	for _, lot := range lots {
		if _, ok := names[lot.ProductID]; ok {
			continue
		}
		p, err := uc.productRepo.GetByID(lot.ProductID)
		if err != nil {
			return nil, err
		}
		if p != nil {
			names[lot.ProductID] = p.Name
		}
	}
	return names, nil
}

func toProveedoraResponse(p *entity.Proveedora, activeLots []*entity.Consignacion, productNames map[string]string) *dto.ProveedoraResponse {
	resp := &dto.ProveedoraResponse{
		ID:         p.ID,
		Name:       p.Name,
		Phone:      p.Phone,
		Email:      p.Email,
		Notes:      p.Notes,
		Active:     p.Active,
		ActiveLots: len(activeLots),
	}
	for _, lot := range activeLots {
		resp.ProductsOnConsign = append(resp.ProductsOnConsign, dto.ProveedoraLotSummary{
			ID:        lot.ID,
			Product:   productNames[lot.ProductID],
			Available: lot.Available,
		})
	}
	return resp
}

func (uc *UseCase) toConsignacionResponse(c *entity.Consignacion, proveedoraName, productName string, ventas []*entity.VentaConsignacion) *dto.ConsignacionResponse {
	owed, profit := decimal.Zero, decimal.Zero
	for _, v := range ventas {
		owed = owed.Add(v.AmountOwed)
		profit = profit.Add(v.OwnProfit)
	}
	return &dto.ConsignacionResponse{
		ID:            c.ID,
		Proveedora:    proveedoraName,
		ProveedoraID:  c.ProveedoraID,
		Product:       productName,
		ProductID:     c.ProductID,
		Received:      c.Received,
		Available:     c.Available,
		Sold:          c.Received - c.Available,
		CostPrice:     c.CostPrice,
		SupplierPrice: c.SupplierPrice,
		OwnPrice:      c.OwnPrice,
		AmountOwed:    owed,
		OwnProfit:     profit,
		Status:        c.Status,
		ReceivedAt:    c.ReceivedAt,
		Notes:         c.Notes,
	}
}

func toLiquidacionResponse(l *entity.Liquidacion) dto.LiquidacionResponse {
	return dto.LiquidacionResponse{
		ID:           l.ID,
		ProveedoraID: l.ProveedoraID,
		Total:        l.Total,
		AmountPaid:   l.AmountPaid,
		Status:       l.Status,
		CutoffDate:   l.CutoffDate,
		PaidAt:       l.PaidAt,
		Notes:        l.Notes,
	}
}
