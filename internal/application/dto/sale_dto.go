package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest una línea del carrito, en el orden enviado por el POS.
type SaleItemRequest struct {
	ProductID string          `json:"producto_global_id"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Discount  decimal.Decimal `json:"descuento"`
}

// CreateSaleRequest cuerpo de POST /api/sales. El total se calcula en el
// servidor a partir de las líneas; monto_pagado < total solo es válido en fiado.
type CreateSaleRequest struct {
	CustomerID string            `json:"cliente_id"`
	Status     string            `json:"estado"` // paid | credit
	AmountPaid decimal.Decimal   `json:"monto_pagado"`
	Items      []SaleItemRequest `json:"items"`
}

// SaleItemResponse línea de venta persistida.
type SaleItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"producto_global_id"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Discount  decimal.Decimal `json:"descuento"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta con sus líneas.
type SaleResponse struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"cliente_id,omitempty"`
	CustomerName string             `json:"cliente,omitempty"`
	Total        decimal.Decimal    `json:"total"`
	AmountPaid   decimal.Decimal    `json:"monto_pagado"`
	Status       string             `json:"estado"`
	SoldAt       time.Time          `json:"fecha_venta"`
	Items        []SaleItemResponse `json:"items"`
}
