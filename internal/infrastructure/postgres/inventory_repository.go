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

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación de InventoryRepository (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

const invColumns = `id, company_id, producto_global_id, stock, precio_compra, precio_venta, updated_at`

// Get obtiene el registro de inventario del par (empresa, producto).
// nil sin error = no existe.
func (r *InventoryRepo) Get(companyID, productID string) (*entity.InventoryRecord, error) {
	query := `
		SELECT ` + invColumns + `
		FROM inventario_empresa WHERE company_id = $1 AND producto_global_id = $2`
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, companyID, productID).Scan(
		&rec.ID, &rec.CompanyID, &rec.ProductID, &rec.Stock,
		&rec.PurchasePrice, &rec.SalePrice, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &rec, nil
}

// AdjustStock aplica stock += delta con la guarda de no-negatividad en la
// misma sentencia: UPDATE ... WHERE stock + delta >= 0. Dos ventas
// concurrentes serializan en la fila por el row lock del UPDATE; la que
// pierda la carrera no encuentra fila elegible y falla sin tocar nada.
func (r *InventoryRepo) AdjustStock(companyID, productID string, delta int) (*entity.InventoryRecord, error) {
	query := `
		UPDATE inventario_empresa
		SET stock = stock + $3, updated_at = now()
		WHERE company_id = $1 AND producto_global_id = $2 AND stock + $3 >= 0
		RETURNING ` + invColumns
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, companyID, productID, delta).Scan(
		&rec.ID, &rec.CompanyID, &rec.ProductID, &rec.Stock,
		&rec.PurchasePrice, &rec.SalePrice, &rec.UpdatedAt,
	)
	if err == nil {
		return &rec, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("adjust stock: %w", err)
	}
	// Sin fila elegible: distinguir registro inexistente de stock insuficiente
	existing, err := r.Get(companyID, productID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	return nil, domain.ErrInsufficientStock
}

// SetPricing override administrativo: solo toca los campos no-nil.
func (r *InventoryRepo) SetPricing(companyID, productID string, upd repository.PricingUpdate) (*entity.InventoryRecord, error) {
	query := `
		UPDATE inventario_empresa
		SET precio_venta  = COALESCE($3, precio_venta),
		    precio_compra = COALESCE($4, precio_compra),
		    stock         = COALESCE($5, stock),
		    updated_at    = now()
		WHERE company_id = $1 AND producto_global_id = $2
		RETURNING ` + invColumns
	var rec entity.InventoryRecord
	err := r.q.QueryRow(context.Background(), query, companyID, productID,
		upd.SalePrice, upd.PurchasePrice, upd.Stock,
	).Scan(
		&rec.ID, &rec.CompanyID, &rec.ProductID, &rec.Stock,
		&rec.PurchasePrice, &rec.SalePrice, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("set pricing: %w", err)
	}
	return &rec, nil
}

// ListByCompany inventario completo del tenant con los datos del producto.
func (r *InventoryRepo) ListByCompany(companyID string) ([]*repository.InventoryItem, error) {
	query := `
		SELECT i.id, i.company_id, i.producto_global_id, i.stock, i.precio_compra, i.precio_venta, i.updated_at,
		       p.id, p.nombre_producto, p.categoria, p.imagen_url
		FROM inventario_empresa i
		JOIN productos_globales p ON p.id = i.producto_global_id
		WHERE i.company_id = $1
		ORDER BY p.nombre_producto ASC`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var out []*repository.InventoryItem
	for rows.Next() {
		var it repository.InventoryItem
		var imageURL *string
		if err := rows.Scan(
			&it.Record.ID, &it.Record.CompanyID, &it.Record.ProductID, &it.Record.Stock,
			&it.Record.PurchasePrice, &it.Record.SalePrice, &it.Record.UpdatedAt,
			&it.Product.ID, &it.Product.Name, &it.Product.Category, &imageURL,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		it.Product.ImageURL = derefStr(imageURL)
		out = append(out, &it)
	}
	return out, rows.Err()
}

// InitForCompany crea registros en cero para todos los productos globales que
// la empresa aún no tenga (aprovisionamiento de empresa nueva).
func (r *InventoryRepo) InitForCompany(companyID string) error {
	query := `
		INSERT INTO inventario_empresa (id, company_id, producto_global_id, stock, precio_compra, precio_venta, updated_at)
		SELECT gen_random_uuid(), $1, p.id, 0, 0, 0, now()
		FROM productos_globales p
		ON CONFLICT (company_id, producto_global_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), query, companyID); err != nil {
		return fmt.Errorf("init inventory for company: %w", err)
	}
	return nil
}

// InitForProduct crea registros en cero del producto para todas las empresas
// (alta de producto nuevo en el catálogo).
func (r *InventoryRepo) InitForProduct(productID string) error {
	query := `
		INSERT INTO inventario_empresa (id, company_id, producto_global_id, stock, precio_compra, precio_venta, updated_at)
		SELECT gen_random_uuid(), c.id, $1, 0, 0, 0, now()
		FROM companies c
		ON CONFLICT (company_id, producto_global_id) DO NOTHING`
	if _, err := r.q.Exec(context.Background(), query, productID); err != nil {
		return fmt.Errorf("init inventory for product: %w", err)
	}
	return nil
}
