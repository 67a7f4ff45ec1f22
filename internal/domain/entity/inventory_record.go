package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord es el stock propio de una empresa para un producto del
// catálogo global. Par único (company_id, product_id); se crea en cero al
// aprovisionar una empresa o un producto. Invariante: Stock nunca es negativo;
// toda mutación pasa por el decremento condicional del repositorio.
type InventoryRecord struct {
	ID            string
	CompanyID     string
	ProductID     string
	Stock         int
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	UpdatedAt     time.Time
}
