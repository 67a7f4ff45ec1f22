package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y sus líneas.
// Las ventas son inmutables: no hay Update ni Delete.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.Sale, error)
	GetDetailsBySale(saleID string) ([]*entity.SaleDetail, error)
}

// ReceivableWithSale cuenta por cobrar con los datos de su venta, para el
// reporte de cartera.
type ReceivableWithSale struct {
	Receivable   entity.Receivable
	CustomerID   string
	CustomerName string
	SaleTotal    decimal.Decimal
	SoldAt       time.Time
}

// ReceivableRepository define el puerto de las cuentas por cobrar.
type ReceivableRepository interface {
	Create(rec *entity.Receivable) error
	GetBySale(saleID string) (*entity.Receivable, error)
	// ListOutstandingByCompany cuentas con estado distinto de pagado,
	// las más próximas a vencer primero.
	ListOutstandingByCompany(companyID string) ([]*ReceivableWithSale, error)
}
