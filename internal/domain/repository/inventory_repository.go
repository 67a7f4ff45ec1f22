package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

// InventoryItem es el registro de inventario enriquecido con los datos del
// producto global, para el listado de inventario del tenant.
type InventoryItem struct {
	Record  entity.InventoryRecord
	Product entity.Product
}

// PricingUpdate campos opcionales del override administrativo de precios/stock.
// Un puntero nil deja el campo como está.
type PricingUpdate struct {
	SalePrice     *decimal.Decimal
	PurchasePrice *decimal.Decimal
	Stock         *int
}

// InventoryRepository define el puerto del libro de inventario propio.
// AdjustStock es la ÚNICA vía de mutación de stock en el flujo de ventas:
// aplica stock += delta con guarda condicional (stock + delta >= 0) en la
// misma sentencia, de modo que dos ventas concurrentes serializan en la fila
// y el stock nunca queda negativo.
type InventoryRepository interface {
	Get(companyID, productID string) (*entity.InventoryRecord, error)
	// AdjustStock devuelve el registro actualizado, o domain.ErrInsufficientStock
	// si el resultado sería negativo (la fila no se toca en ese caso).
	AdjustStock(companyID, productID string, delta int) (*entity.InventoryRecord, error)
	SetPricing(companyID, productID string, upd PricingUpdate) (*entity.InventoryRecord, error)
	ListByCompany(companyID string) ([]*InventoryItem, error)
	// InitForCompany crea registros en cero para todos los productos globales
	// (aprovisionamiento de una empresa nueva).
	InitForCompany(companyID string) error
	// InitForProduct crea registros en cero del producto para todas las empresas
	// (alta de un producto nuevo en el catálogo).
	InitForProduct(productID string) error
}
