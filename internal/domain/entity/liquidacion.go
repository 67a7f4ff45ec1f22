package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una liquidación a proveedora.
const (
	LiquidacionStatusPending = "pendiente"
	LiquidacionStatusPartial = "parcial"
	LiquidacionStatusPaid    = "pagado"
)

// Liquidacion es la foto inmutable de la deuda sin liquidar con una
// proveedora en la fecha de corte. Las ventas posteriores acumulan en un
// saldo nuevo; nunca se absorben retroactivamente en una liquidación cerrada.
type Liquidacion struct {
	ID           string
	CompanyID    string
	ProveedoraID string
	Total        decimal.Decimal
	AmountPaid   decimal.Decimal // acumula abonos parciales
	Status       string          // ver constantes LiquidacionStatus*
	CutoffDate   time.Time
	PaidAt       *time.Time // solo al llegar a pagado
	Notes        string
	CreatedAt    time.Time
}

// LiquidacionDetalle atribuye a cada lote el monto y la cantidad de eventos
// de venta que la liquidación capturó.
type LiquidacionDetalle struct {
	ID             string
	LiquidacionID  string
	ConsignacionID string
	EventsIncluded int
	Amount         decimal.Decimal
}
