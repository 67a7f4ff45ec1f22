package inventory

import (
	"context"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// LedgerUseCase es la autoridad del stock propio por empresa: lecturas,
// ajuste atómico y override administrativo de precios. El flujo de ventas usa
// la misma operación AdjustStock a través de su repositorio transaccional, de
// modo que un fallo de stock aborta la transacción completa del caller.
type LedgerUseCase struct {
	invRepo repository.InventoryRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(invRepo repository.InventoryRepository) *LedgerUseCase {
	return &LedgerUseCase{invRepo: invRepo}
}

// GetStock devuelve el registro de inventario de un producto para la empresa.
func (uc *LedgerUseCase) GetStock(ctx context.Context, companyID, productID string) (*entity.InventoryRecord, error) {
	rec, err := uc.invRepo.Get(companyID, productID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// AdjustStock aplica stock += delta. El repositorio ejecuta la guarda
// condicional (stock + delta >= 0) en una sola sentencia; si el resultado
// sería negativo retorna domain.ErrInsufficientStock sin tocar la fila.
func (uc *LedgerUseCase) AdjustStock(ctx context.Context, companyID, productID string, delta int) (*entity.InventoryRecord, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.invRepo.AdjustStock(companyID, productID, delta)
}

// SetPricing override administrativo de precios y/o stock, independiente del
// flujo de ventas.
func (uc *LedgerUseCase) SetPricing(ctx context.Context, companyID, productID string, in dto.SetPricingRequest) (*entity.InventoryRecord, error) {
	if in.SalePrice == nil && in.PurchasePrice == nil && in.Stock == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Stock != nil && *in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	return uc.invRepo.SetPricing(companyID, productID, repository.PricingUpdate{
		SalePrice:     in.SalePrice,
		PurchasePrice: in.PurchasePrice,
		Stock:         in.Stock,
	})
}

// List devuelve el inventario completo del tenant con los datos del catálogo.
func (uc *LedgerUseCase) List(ctx context.Context, companyID string) ([]*dto.InventoryItemResponse, error) {
	items, err := uc.invRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, &dto.InventoryItemResponse{
			ProductID:     it.Record.ProductID,
			Name:          it.Product.Name,
			Category:      it.Product.Category,
			Stock:         it.Record.Stock,
			PurchasePrice: it.Record.PurchasePrice,
			SalePrice:     it.Record.SalePrice,
			ImageURL:      it.Product.ImageURL,
		})
	}
	return out, nil
}
