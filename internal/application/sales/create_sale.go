package sales

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

// Política de vencimiento de las cuentas por cobrar.
const receivableDueDays = 30

// CreateSaleUseCase es el único camino que crea ventas. Dentro de una sola
// transacción: persiste cabecera y líneas, descuenta stock por línea, crea la
// cuenta por cobrar si es fiado e intercepta las líneas con lote de
// consignación activo. Cualquier fallo revierte todo.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	customerRepo repository.CustomerRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(txRunner TxRunner, customerRepo repository.CustomerRepository) *CreateSaleUseCase {
	return &CreateSaleUseCase{txRunner: txRunner, customerRepo: customerRepo}
}

// CreateSale valida el carrito y ejecuta la venta atómica.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, companyID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if companyID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if in.Status != entity.SaleStatusPaid && in.Status != entity.SaleStatusCredit {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if item.UnitPrice.IsNegative() || item.Discount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.Status == entity.SaleStatusCredit && in.CustomerID == "" {
		return nil, domain.ErrInvalidCustomer
	}

	// Validar cliente y que sea de la empresa (fuera de la tx, solo lectura)
	var customerName string
	if in.CustomerID != "" {
		customer, err := uc.customerRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrInvalidCustomer
		}
		if customer.CompanyID != companyID {
			return nil, domain.ErrTenantMismatch
		}
		customerName = customer.Name
	}

	// Total y subtotales calculados en el servidor
	total := decimal.Zero
	subtotals := make([]decimal.Decimal, len(in.Items))
	for i, item := range in.Items {
		sub := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))).Sub(item.Discount)
		if sub.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		subtotals[i] = sub
		total = total.Add(sub)
	}

	amountPaid := in.AmountPaid
	if in.Status == entity.SaleStatusPaid {
		amountPaid = total
	} else {
		// monto_pagado < total solo es legal en fiado; nunca por encima del total
		if amountPaid.IsNegative() || amountPaid.GreaterThan(total) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		CustomerID: in.CustomerID,
		Total:      total,
		AmountPaid: amountPaid,
		Status:     in.Status,
		SoldAt:     now,
	}
	details := make([]*entity.SaleDetail, len(in.Items))

	err := uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		invRepo repository.InventoryRepository,
		customerRepo repository.CustomerRepository,
		recRepo repository.ReceivableRepository,
		consigRepo repository.ConsignacionRepository,
		ventaRepo repository.VentaConsignacionRepository,
	) error {
		// 1) Cabecera y líneas, en el orden enviado
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for i, item := range in.Items {
			detail := &entity.SaleDetail{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				LineNo:    i + 1,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Discount:  item.Discount,
				Subtotal:  subtotals[i],
			}
			if err := saleRepo.CreateDetail(detail); err != nil {
				return err
			}
			details[i] = detail
		}

		// 2) Descuento de stock por línea. La guarda condicional del
		// repositorio falla con ErrInsufficientStock y revierte todo.
		for _, item := range in.Items {
			if _, err := invRepo.AdjustStock(companyID, item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}

		// 3) Fiado: saldo del cliente + cuenta por cobrar a 30 días
		if sale.Status == entity.SaleStatusCredit {
			pending := total.Sub(amountPaid)
			if err := customerRepo.IncrementSaldo(sale.CustomerID, pending); err != nil {
				return err
			}
			rec := &entity.Receivable{
				ID:        uuid.New().String(),
				SaleID:    sale.ID,
				AmountDue: pending,
				DueDate:   now.AddDate(0, 0, receivableDueDays),
				Status:    entity.ReceivableStatusPending,
				CreatedAt: now,
			}
			if err := recRepo.Create(rec); err != nil {
				return err
			}
		}

		// 4) Intercepción de consignación por línea
		for i := range in.Items {
			if err := interceptConsignacion(consigRepo, ventaRepo, companyID, sale.ID, details[i], now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, customerName, details), nil
}

// interceptConsignacion busca el lote activo más antiguo del producto (FIFO
// por fecha_recepcion) y registra la venta consignada. La cantidad se recorta
// al disponible del lote: si la línea excede un lote NO se reparte el resto
// entre otros lotes ni contra el stock propio (limitación conocida, heredada
// del comportamiento original).
func interceptConsignacion(
	consigRepo repository.ConsignacionRepository,
	ventaRepo repository.VentaConsignacionRepository,
	companyID, saleID string,
	detail *entity.SaleDetail,
	now time.Time,
) error {
	lot, err := consigRepo.FindOldestActive(companyID, detail.ProductID)
	if err != nil {
		return err
	}
	if lot == nil || lot.Available <= 0 {
		return nil
	}
	qty := detail.Quantity
	if qty > lot.Available {
		qty = lot.Available
	}
	if _, err := consigRepo.DecrementAvailable(lot.ID, qty); err != nil {
		return err
	}
	qtyDec := decimal.NewFromInt(int64(qty))
	venta := &entity.VentaConsignacion{
		ID:             uuid.New().String(),
		ConsignacionID: lot.ID,
		SaleID:         saleID,
		SaleDetailID:   detail.ID,
		Quantity:       qty,
		UnitPriceUsed:  detail.UnitPrice,
		SupplierPrice:  lot.SupplierPrice,
		AmountOwed:     lot.SupplierPrice.Mul(qtyDec),
		OwnProfit:      detail.UnitPrice.Sub(lot.SupplierPrice).Mul(qtyDec),
		Liquidado:      false,
		SoldAt:         now,
	}
	return ventaRepo.Create(venta)
}

func toSaleResponse(sale *entity.Sale, customerName string, details []*entity.SaleDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:           sale.ID,
		CustomerID:   sale.CustomerID,
		CustomerName: customerName,
		Total:        sale.Total,
		AmountPaid:   sale.AmountPaid,
		Status:       sale.Status,
		SoldAt:       sale.SoldAt,
		Items:        make([]dto.SaleItemResponse, 0, len(details)),
	}
	for _, d := range details {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Discount:  d.Discount,
			Subtotal:  d.Subtotal,
		})
	}
	return resp
}
