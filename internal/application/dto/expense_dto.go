package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest alta de gasto.
type CreateExpenseRequest struct {
	Description string          `json:"descripcion"`
	Category    string          `json:"categoria"`
	Amount      decimal.Decimal `json:"monto"`
	SpentAt     *time.Time      `json:"fecha,omitempty"` // nil = ahora
}

// ExpenseResponse gasto registrado.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"descripcion"`
	Category    string          `json:"categoria"`
	Amount      decimal.Decimal `json:"monto"`
	SpentAt     time.Time       `json:"fecha"`
}
