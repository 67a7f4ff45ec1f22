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

var (
	_ repository.ConsignacionRepository      = (*ConsignacionRepo)(nil)
	_ repository.VentaConsignacionRepository = (*VentaConsignacionRepo)(nil)
)

// ConsignacionRepo implementación de ConsignacionRepository.
type ConsignacionRepo struct {
	q Querier
}

// NewConsignacionRepository construye el adaptador.
func NewConsignacionRepository(q Querier) *ConsignacionRepo {
	return &ConsignacionRepo{q: q}
}

const consigColumns = `id, company_id, proveedora_id, producto_global_id,
	cantidad_recibida, cantidad_disponible, precio_costo, precio_venta_proveedora,
	precio_venta_tuyo, estado, notas, fecha_recepcion`

// Create registra un lote nuevo de mercancía consignada.
func (r *ConsignacionRepo) Create(c *entity.Consignacion) error {
	query := `
		INSERT INTO consignaciones (id, company_id, proveedora_id, producto_global_id,
			cantidad_recibida, cantidad_disponible, precio_costo, precio_venta_proveedora,
			precio_venta_tuyo, estado, notas, fecha_recepcion)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.CompanyID, c.ProveedoraID, c.ProductID,
		c.Received, c.Available, c.CostPrice, c.SupplierPrice,
		c.OwnPrice, c.Status, nullIfEmpty(c.Notes), c.ReceivedAt,
	)
	if err != nil {
		return fmt.Errorf("create consignacion: %w", err)
	}
	return nil
}

// GetByID obtiene un lote. nil sin error = no existe.
func (r *ConsignacionRepo) GetByID(id string) (*entity.Consignacion, error) {
	query := `SELECT ` + consigColumns + ` FROM consignaciones WHERE id = $1`
	c, err := r.scanConsignacion(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get consignacion: %w", err)
	}
	return c, nil
}

// ListByCompany lotes del tenant, los más recientes primero.
func (r *ConsignacionRepo) ListByCompany(companyID string) ([]*entity.Consignacion, error) {
	query := `
		SELECT ` + consigColumns + ` FROM consignaciones
		WHERE company_id = $1
		ORDER BY fecha_recepcion DESC`
	return r.list(query, companyID)
}

// ListByProveedora lotes de una proveedora, los más antiguos primero (el
// mismo orden en que los consume la intercepción de ventas).
func (r *ConsignacionRepo) ListByProveedora(companyID, proveedoraID string) ([]*entity.Consignacion, error) {
	query := `
		SELECT ` + consigColumns + ` FROM consignaciones
		WHERE company_id = $1 AND proveedora_id = $2
		ORDER BY fecha_recepcion ASC`
	return r.list(query, companyID, proveedoraID)
}

// FindOldestActive lote activo más antiguo con disponibilidad para el
// producto. FOR UPDATE serializa las ventas concurrentes sobre el mismo lote
// cuando el repo corre dentro de una transacción.
func (r *ConsignacionRepo) FindOldestActive(companyID, productID string) (*entity.Consignacion, error) {
	query := `
		SELECT ` + consigColumns + ` FROM consignaciones
		WHERE company_id = $1 AND producto_global_id = $2
		  AND estado = 'activo' AND cantidad_disponible > 0
		ORDER BY fecha_recepcion ASC
		LIMIT 1
		FOR UPDATE`
	c, err := r.scanConsignacion(r.q.QueryRow(context.Background(), query, companyID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find oldest active consignacion: %w", err)
	}
	return c, nil
}

// DecrementAvailable descuenta qty con la guarda en la misma sentencia y
// cierra el lote si el disponible queda en cero.
func (r *ConsignacionRepo) DecrementAvailable(id string, qty int) (*entity.Consignacion, error) {
	query := `
		UPDATE consignaciones
		SET cantidad_disponible = cantidad_disponible - $2,
		    estado = CASE WHEN cantidad_disponible - $2 = 0 THEN 'cerrado' ELSE estado END
		WHERE id = $1 AND cantidad_disponible >= $2
		RETURNING ` + consigColumns
	c, err := r.scanConsignacion(r.q.QueryRow(context.Background(), query, id, qty))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInsufficientStock
		}
		return nil, fmt.Errorf("decrement consignacion: %w", err)
	}
	return c, nil
}

// Close cierre manual del lote (devolución de mercancía a la proveedora).
func (r *ConsignacionRepo) Close(id string) error {
	query := `UPDATE consignaciones SET estado = 'cerrado' WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("close consignacion: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ConsignacionRepo) list(query string, args ...any) ([]*entity.Consignacion, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list consignaciones: %w", err)
	}
	defer rows.Close()

	var out []*entity.Consignacion
	for rows.Next() {
		c, err := r.scanConsignacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consignacion: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ConsignacionRepo) scanConsignacion(row pgx.Row) (*entity.Consignacion, error) {
	var c entity.Consignacion
	var notes *string
	err := row.Scan(
		&c.ID, &c.CompanyID, &c.ProveedoraID, &c.ProductID,
		&c.Received, &c.Available, &c.CostPrice, &c.SupplierPrice,
		&c.OwnPrice, &c.Status, &notes, &c.ReceivedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Notes = derefStr(notes)
	return &c, nil
}

// VentaConsignacionRepo implementación de VentaConsignacionRepository.
type VentaConsignacionRepo struct {
	q Querier
}

// NewVentaConsignacionRepository construye el adaptador.
func NewVentaConsignacionRepository(q Querier) *VentaConsignacionRepo {
	return &VentaConsignacionRepo{q: q}
}

const ventaConsigColumns = `vc.id, vc.consignacion_id, vc.venta_id, vc.detalle_venta_id,
	vc.cantidad, vc.precio_unitario_usado, vc.precio_venta_proveedora,
	vc.monto_a_reportar, vc.tu_ganancia, vc.liquidado, vc.fecha_venta`

// Create registra el evento de venta consignada.
func (r *VentaConsignacionRepo) Create(v *entity.VentaConsignacion) error {
	query := `
		INSERT INTO ventas_consignacion (id, consignacion_id, venta_id, detalle_venta_id,
			cantidad, precio_unitario_usado, precio_venta_proveedora,
			monto_a_reportar, tu_ganancia, liquidado, fecha_venta)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		v.ID, v.ConsignacionID, v.SaleID, v.SaleDetailID,
		v.Quantity, v.UnitPriceUsed, v.SupplierPrice,
		v.AmountOwed, v.OwnProfit, v.Liquidado, v.SoldAt,
	)
	if err != nil {
		return fmt.Errorf("create venta consignacion: %w", err)
	}
	return nil
}

// ListUnsettledByProveedora eventos sin liquidar de todos los lotes de la
// proveedora. Con forUpdate bloquea las filas hasta el commit de la
// transacción en curso.
func (r *VentaConsignacionRepo) ListUnsettledByProveedora(companyID, proveedoraID string, forUpdate bool) ([]*entity.VentaConsignacion, error) {
	query := `
		SELECT ` + ventaConsigColumns + `
		FROM ventas_consignacion vc
		JOIN consignaciones c ON c.id = vc.consignacion_id
		WHERE c.company_id = $1 AND c.proveedora_id = $2 AND vc.liquidado = false
		ORDER BY vc.fecha_venta ASC`
	if forUpdate {
		query += `
		FOR UPDATE OF vc`
	}
	return r.list(query, companyID, proveedoraID)
}

// ListByConsignacion eventos de un lote, los más antiguos primero.
func (r *VentaConsignacionRepo) ListByConsignacion(consignacionID string) ([]*entity.VentaConsignacion, error) {
	query := `
		SELECT ` + ventaConsigColumns + `
		FROM ventas_consignacion vc
		WHERE vc.consignacion_id = $1
		ORDER BY vc.fecha_venta ASC`
	return r.list(query, consignacionID)
}

// MarkLiquidadas pone liquidado=true en los eventos capturados.
func (r *VentaConsignacionRepo) MarkLiquidadas(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	query := `UPDATE ventas_consignacion SET liquidado = true WHERE id = ANY($1)`
	if _, err := r.q.Exec(context.Background(), query, ids); err != nil {
		return fmt.Errorf("mark liquidadas: %w", err)
	}
	return nil
}

func (r *VentaConsignacionRepo) list(query string, args ...any) ([]*entity.VentaConsignacion, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas consignacion: %w", err)
	}
	defer rows.Close()

	var out []*entity.VentaConsignacion
	for rows.Next() {
		var v entity.VentaConsignacion
		if err := rows.Scan(
			&v.ID, &v.ConsignacionID, &v.SaleID, &v.SaleDetailID,
			&v.Quantity, &v.UnitPriceUsed, &v.SupplierPrice,
			&v.AmountOwed, &v.OwnProfit, &v.Liquidado, &v.SoldAt,
		); err != nil {
			return nil, fmt.Errorf("scan venta consignacion: %w", err)
		}
		out = append(out, &v)
	}
	return out, rows.Err()
}
