package repository

import "github.com/tu-usuario/cosmetica-saas/internal/domain/entity"

// ProductRepository define el puerto del catálogo global de productos.
// Los productos son compartidos entre empresas; no llevan company_id.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
}
