package sales

import (
	"context"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// ListSalesUseCase lectura de ventas del tenant con sus líneas.
type ListSalesUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
}

// NewListSalesUseCase construye el caso de uso.
func NewListSalesUseCase(saleRepo repository.SaleRepository, customerRepo repository.CustomerRepository) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo, customerRepo: customerRepo}
}

// List devuelve las ventas de la empresa, más recientes primero.
func (uc *ListSalesUseCase) List(ctx context.Context, companyID string, limit, offset int) ([]*dto.SaleResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.saleRepo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.SaleResponse, 0, len(list))
	for _, sale := range list {
		details, err := uc.saleRepo.GetDetailsBySale(sale.ID)
		if err != nil {
			return nil, err
		}
		customerName := "Consumidor Final"
		if sale.CustomerID != "" {
			c, err := uc.customerRepo.GetByID(sale.CustomerID)
			if err != nil {
				return nil, err
			}
			if c != nil {
				customerName = c.Name
			}
		}
		out = append(out, toSaleResponse(sale, customerName, details))
	}
	return out, nil
}
