package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del catálogo global (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto del catálogo global.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO productos_globales (id, nombre_producto, categoria, marca, codigo_base, descripcion, imagen_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Category, nullIfEmpty(product.Brand),
		nullIfEmpty(product.BaseCode), nullIfEmpty(product.Description), nullIfEmpty(product.ImageURL), product.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("product code already exists: %w", err)
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto. nil sin error = no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, nombre_producto, categoria, marca, codigo_base, descripcion, imagen_url, created_at
		FROM productos_globales WHERE id = $1`
	var p entity.Product
	var brand, baseCode, description, imageURL *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Category, &brand, &baseCode, &description, &imageURL, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Brand = derefStr(brand)
	p.BaseCode = derefStr(baseCode)
	p.Description = derefStr(description)
	p.ImageURL = derefStr(imageURL)
	return &p, nil
}

// List catálogo completo ordenado por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, nombre_producto, categoria, marca, codigo_base, descripcion, imagen_url, created_at
		FROM productos_globales ORDER BY nombre_producto ASC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		var p entity.Product
		var brand, baseCode, description, imageURL *string
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &brand, &baseCode, &description, &imageURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Brand = derefStr(brand)
		p.BaseCode = derefStr(baseCode)
		p.Description = derefStr(description)
		p.ImageURL = derefStr(imageURL)
		out = append(out, &p)
	}
	return out, rows.Err()
}
