package repository

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para clientes.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.Customer, error)
	// IncrementSaldo aplica saldo_pendiente += delta sobre la fila del cliente.
	IncrementSaldo(id string, delta decimal.Decimal) error
}
