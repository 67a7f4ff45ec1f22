package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name  string `json:"nombre"`
	Phone string `json:"telefono"`
	Email string `json:"email"`
}

// CustomerResponse cliente con su saldo fiado.
type CustomerResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"nombre"`
	Phone          string          `json:"telefono,omitempty"`
	Email          string          `json:"email,omitempty"`
	SaldoPendiente decimal.Decimal `json:"saldo_pendiente"`
}
