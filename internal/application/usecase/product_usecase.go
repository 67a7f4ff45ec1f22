package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// ProductUseCase catálogo global de productos (solo super_admin escribe).
type ProductUseCase struct {
	txRunner    ProvisionTxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner ProvisionTxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create alta de producto en el catálogo global. El backfill crea registros
// de inventario en cero del producto para todas las empresas, en la misma
// transacción (producto cartesiano empresas × productos).
func (uc *ProductUseCase) Create(ctx context.Context, name, category, brand, baseCode, description, imageURL string) (*entity.Product, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Brand:       brand,
		BaseCode:    baseCode,
		Description: description,
		ImageURL:    imageURL,
		CreatedAt:   time.Now(),
	}
	err := uc.txRunner.RunProvision(ctx, func(
		_ repository.CompanyRepository,
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		return invRepo.InitForProduct(product.ID)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// List catálogo completo.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.productRepo.List()
}
