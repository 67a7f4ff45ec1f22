package dto

import "github.com/shopspring/decimal"

// InventoryItemResponse fila del inventario propio del tenant con los datos
// del producto global.
type InventoryItemResponse struct {
	ProductID     string          `json:"producto_global_id"`
	Name          string          `json:"nombre"`
	Category      string          `json:"categoria"`
	Stock         int             `json:"stock"`
	PurchasePrice decimal.Decimal `json:"precio_compra"`
	SalePrice     decimal.Decimal `json:"precio_venta"`
	ImageURL      string          `json:"imagen_url,omitempty"`
}

// SetPricingRequest override administrativo de precios/stock. Los campos nil
// se dejan como están.
type SetPricingRequest struct {
	SalePrice     *decimal.Decimal `json:"precio_venta"`
	PurchasePrice *decimal.Decimal `json:"precio_compra"`
	Stock         *int             `json:"stock"`
}
