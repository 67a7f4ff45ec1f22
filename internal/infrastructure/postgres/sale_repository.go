package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

var (
	_ repository.SaleRepository       = (*SaleRepo)(nil)
	_ repository.ReceivableRepository = (*ReceivableRepo)(nil)
)

// SaleRepo implementación de SaleRepository. Las ventas son inmutables,
// por eso el adaptador solo expone inserciones y lecturas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO ventas (id, company_id, cliente_id, monto_total, monto_pagado, estado, fecha_venta)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.CompanyID, nullIfEmpty(sale.CustomerID),
		sale.Total, sale.AmountPaid, sale.Status, sale.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// CreateDetail inserta una línea de la venta.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO detalle_ventas (id, venta_id, nro_linea, producto_global_id, cantidad, precio_unitario, descuento, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SaleID, detail.LineNo, detail.ProductID,
		detail.Quantity, detail.UnitPrice, detail.Discount, detail.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("create sale detail: %w", err)
	}
	return nil
}

// ListByCompany ventas del tenant, las más recientes primero.
func (r *SaleRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error) {
	query := `
		SELECT id, company_id, cliente_id, monto_total, monto_pagado, estado, fecha_venta
		FROM ventas WHERE company_id = $1
		ORDER BY fecha_venta DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var out []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var customerID *string
		if err := rows.Scan(
			&s.ID, &s.CompanyID, &customerID,
			&s.Total, &s.AmountPaid, &s.Status, &s.SoldAt,
		); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.CustomerID = derefStr(customerID)
		out = append(out, &s)
	}
	return out, rows.Err()
}

// GetDetailsBySale líneas de una venta, ordenadas por nro_linea.
func (r *SaleRepo) GetDetailsBySale(saleID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, venta_id, nro_linea, producto_global_id, cantidad, precio_unitario, descuento, subtotal
		FROM detalle_ventas WHERE venta_id = $1
		ORDER BY nro_linea ASC`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(
			&d.ID, &d.SaleID, &d.LineNo, &d.ProductID,
			&d.Quantity, &d.UnitPrice, &d.Discount, &d.Subtotal,
		); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// ReceivableRepo implementación de ReceivableRepository.
type ReceivableRepo struct {
	q Querier
}

// NewReceivableRepository construye el adaptador.
func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

// Create inserta la cuenta por cobrar asociada a una venta a crédito.
func (r *ReceivableRepo) Create(rec *entity.Receivable) error {
	query := `
		INSERT INTO cuentas_por_cobrar (id, venta_id, monto_adeudado, fecha_vencimiento, estado, created_at)
		VALUES ($1, $2, $3, $4, $5, now())`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.SaleID, rec.AmountDue, rec.DueDate, rec.Status,
	)
	if err != nil {
		return fmt.Errorf("create receivable: %w", err)
	}
	return nil
}

// GetBySale obtiene la cuenta por cobrar de una venta. nil sin error = no existe.
func (r *ReceivableRepo) GetBySale(saleID string) (*entity.Receivable, error) {
	query := `
		SELECT id, venta_id, monto_adeudado, fecha_vencimiento, estado, created_at
		FROM cuentas_por_cobrar WHERE venta_id = $1`
	var rec entity.Receivable
	err := r.q.QueryRow(context.Background(), query, saleID).Scan(
		&rec.ID, &rec.SaleID, &rec.AmountDue, &rec.DueDate, &rec.Status, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receivable: %w", err)
	}
	return &rec, nil
}

// ListOutstandingByCompany cartera pendiente del tenant: cuentas con estado
// distinto de pagado, con los datos de la venta y del cliente.
func (r *ReceivableRepo) ListOutstandingByCompany(companyID string) ([]*repository.ReceivableWithSale, error) {
	query := `
		SELECT cc.id, cc.venta_id, cc.monto_adeudado, cc.fecha_vencimiento, cc.estado, cc.created_at,
		       COALESCE(v.cliente_id::text, ''), COALESCE(c.nombre, ''), v.monto_total, v.fecha_venta
		FROM cuentas_por_cobrar cc
		JOIN ventas v ON v.id = cc.venta_id
		LEFT JOIN clientes c ON c.id = v.cliente_id
		WHERE v.company_id = $1 AND cc.estado <> 'pagado'
		ORDER BY cc.fecha_vencimiento ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list outstanding receivables: %w", err)
	}
	defer rows.Close()

	var out []*repository.ReceivableWithSale
	for rows.Next() {
		var row repository.ReceivableWithSale
		if err := rows.Scan(
			&row.Receivable.ID, &row.Receivable.SaleID, &row.Receivable.AmountDue,
			&row.Receivable.DueDate, &row.Receivable.Status, &row.Receivable.CreatedAt,
			&row.CustomerID, &row.CustomerName, &row.SaleTotal, &row.SoldAt,
		); err != nil {
			return nil, fmt.Errorf("scan outstanding receivable: %w", err)
		}
		out = append(out, &row)
	}
	return out, rows.Err()
}
