package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense es un gasto operativo de la empresa.
type Expense struct {
	ID          string
	CompanyID   string
	Description string
	Category    string
	Amount      decimal.Decimal
	SpentAt     time.Time
	CreatedAt   time.Time
}
