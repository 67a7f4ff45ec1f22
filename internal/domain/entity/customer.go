package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente de la empresa. SaldoPendiente acumula el
// fiado de sus ventas a crédito y solo se mueve desde el orquestador de ventas
// o al registrar abonos.
type Customer struct {
	ID             string
	CompanyID      string
	Name           string
	Phone          string
	Email          string
	SaldoPendiente decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
