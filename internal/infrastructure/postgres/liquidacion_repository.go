package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

var _ repository.LiquidacionRepository = (*LiquidacionRepo)(nil)

// LiquidacionRepo implementación de LiquidacionRepository.
type LiquidacionRepo struct {
	q Querier
}

// NewLiquidacionRepository construye el adaptador.
func NewLiquidacionRepository(q Querier) *LiquidacionRepo {
	return &LiquidacionRepo{q: q}
}

const liqColumns = `id, company_id, proveedora_id, monto_total, monto_pagado,
	estado, fecha_corte, fecha_pago, notas, created_at`

// Create inserta la cabecera de la liquidación.
func (r *LiquidacionRepo) Create(l *entity.Liquidacion) error {
	query := `
		INSERT INTO liquidaciones_proveedora (id, company_id, proveedora_id, monto_total,
			monto_pagado, estado, fecha_corte, fecha_pago, notas, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())`
	_, err := r.q.Exec(context.Background(), query,
		l.ID, l.CompanyID, l.ProveedoraID, l.Total,
		l.AmountPaid, l.Status, l.CutoffDate, l.PaidAt, nullIfEmpty(l.Notes),
	)
	if err != nil {
		return fmt.Errorf("create liquidacion: %w", err)
	}
	return nil
}

// CreateDetalle inserta el desglose por lote de la liquidación.
func (r *LiquidacionRepo) CreateDetalle(d *entity.LiquidacionDetalle) error {
	query := `
		INSERT INTO liquidacion_detalles (id, liquidacion_id, consignacion_id, eventos_incluidos, monto)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		d.ID, d.LiquidacionID, d.ConsignacionID, d.EventsIncluded, d.Amount,
	)
	if err != nil {
		return fmt.Errorf("create liquidacion detalle: %w", err)
	}
	return nil
}

// GetByID obtiene una liquidación. nil sin error = no existe.
func (r *LiquidacionRepo) GetByID(id string) (*entity.Liquidacion, error) {
	query := `SELECT ` + liqColumns + ` FROM liquidaciones_proveedora WHERE id = $1`
	l, err := r.scanLiquidacion(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get liquidacion: %w", err)
	}
	return l, nil
}

// ListByProveedora liquidaciones de una proveedora, las más recientes primero.
func (r *LiquidacionRepo) ListByProveedora(companyID, proveedoraID string) ([]*entity.Liquidacion, error) {
	query := `
		SELECT ` + liqColumns + ` FROM liquidaciones_proveedora
		WHERE company_id = $1 AND proveedora_id = $2
		ORDER BY fecha_corte DESC`
	rows, err := r.q.Query(context.Background(), query, companyID, proveedoraID)
	if err != nil {
		return nil, fmt.Errorf("list liquidaciones: %w", err)
	}
	defer rows.Close()

	var out []*entity.Liquidacion
	for rows.Next() {
		l, err := r.scanLiquidacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan liquidacion: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// GetDetalles desglose por lote de una liquidación.
func (r *LiquidacionRepo) GetDetalles(liquidacionID string) ([]*entity.LiquidacionDetalle, error) {
	query := `
		SELECT id, liquidacion_id, consignacion_id, eventos_incluidos, monto
		FROM liquidacion_detalles WHERE liquidacion_id = $1
		ORDER BY consignacion_id ASC`
	rows, err := r.q.Query(context.Background(), query, liquidacionID)
	if err != nil {
		return nil, fmt.Errorf("list liquidacion detalles: %w", err)
	}
	defer rows.Close()

	var out []*entity.LiquidacionDetalle
	for rows.Next() {
		var d entity.LiquidacionDetalle
		if err := rows.Scan(&d.ID, &d.LiquidacionID, &d.ConsignacionID, &d.EventsIncluded, &d.Amount); err != nil {
			return nil, fmt.Errorf("scan liquidacion detalle: %w", err)
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

// UpdatePago persiste el estado de pago acumulado. Solo toca
// monto_pagado, estado y fecha_pago.
func (r *LiquidacionRepo) UpdatePago(l *entity.Liquidacion) error {
	query := `
		UPDATE liquidaciones_proveedora
		SET monto_pagado = $2, estado = $3, fecha_pago = $4
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, l.ID, l.AmountPaid, l.Status, l.PaidAt)
	if err != nil {
		return fmt.Errorf("update pago liquidacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLiquidacionNotFound
	}
	return nil
}

func (r *LiquidacionRepo) scanLiquidacion(row pgx.Row) (*entity.Liquidacion, error) {
	var l entity.Liquidacion
	var notes *string
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.ProveedoraID, &l.Total, &l.AmountPaid,
		&l.Status, &l.CutoffDate, &l.PaidAt, &notes, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	l.Notes = derefStr(notes)
	return &l, nil
}
