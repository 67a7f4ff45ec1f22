package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. AmountPaid < Total solo es legal en crédito (fiado).
const (
	SaleStatusPaid   = "paid"
	SaleStatusCredit = "credit"
)

// Sale es la cabecera de una venta POS. Inmutable una vez creada: no existen
// operaciones de edición ni borrado.
type Sale struct {
	ID         string
	CompanyID  string
	CustomerID string // vacío = consumidor final
	Total      decimal.Decimal
	AmountPaid decimal.Decimal
	Status     string // ver constantes SaleStatus*
	SoldAt     time.Time
}

// SaleDetail es una línea de venta. LineNo empieza en 1 y fija el orden en
// que el POS envió las líneas; las lecturas ordenan por él.
type SaleDetail struct {
	ID        string
	SaleID    string
	LineNo    int
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
	Discount  decimal.Decimal
	Subtotal  decimal.Decimal
}
