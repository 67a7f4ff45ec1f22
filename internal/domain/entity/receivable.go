package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una cuenta por cobrar. Las filas no se borran: el estado
// registra la resolución de la deuda.
const (
	ReceivableStatusPending = "pendiente"
	ReceivableStatusPartial = "parcial"
	ReceivableStatusPaid    = "pagado"
)

// Receivable (cuenta por cobrar) nace 1:1 con una venta a crédito.
// Vencimiento: 30 días desde la venta.
type Receivable struct {
	ID        string
	SaleID    string
	AmountDue decimal.Decimal
	DueDate   time.Time
	Status    string // ver constantes ReceivableStatus*
	CreatedAt time.Time
}
