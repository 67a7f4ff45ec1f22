package sales_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/application/fakes"
	"github.com/tu-usuario/cosmetica-saas/internal/application/sales"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

func TestCreateSale_LineasNumeradasEnOrden(t *testing.T) {
	s, uc := newFixture(t)

	resp, err := uc.CreateSale(context.Background(), testCompanyID, dto.CreateSaleRequest{
		Status: entity.SaleStatusPaid,
		Items: []dto.SaleItemRequest{
			{ProductID: productLabial, Quantity: 1, UnitPrice: dec("9000")},
			{ProductID: productCrema, Quantity: 1, UnitPrice: dec("15000")},
		},
	})
	require.NoError(t, err)

	require.Len(t, s.SaleDetails, 2)
	for i, d := range s.SaleDetails {
		assert.Equal(t, i+1, d.LineNo, "nro_linea arranca en 1 y sigue el orden enviado")
		assert.Equal(t, resp.Items[i].ProductID, d.ProductID)
	}
}

func TestListSales_LineasOrdenadasPorNumero(t *testing.T) {
	s := fakes.NewStore()
	saleID := "venta-1"
	s.Sales[saleID] = entity.Sale{
		ID: saleID, CompanyID: testCompanyID,
		Total: dec("24000"), AmountPaid: dec("24000"),
		Status: entity.SaleStatusPaid, SoldAt: time.Now(),
	}
	// Insertadas fuera de orden a propósito: la lectura debe ordenar por
	// nro_linea, no por orden de llegada
	s.SaleDetails = append(s.SaleDetails,
		entity.SaleDetail{ID: "d3", SaleID: saleID, LineNo: 3, ProductID: "p3", Quantity: 1, UnitPrice: dec("5000"), Subtotal: dec("5000")},
		entity.SaleDetail{ID: "d1", SaleID: saleID, LineNo: 1, ProductID: "p1", Quantity: 1, UnitPrice: dec("9000"), Subtotal: dec("9000")},
		entity.SaleDetail{ID: "d2", SaleID: saleID, LineNo: 2, ProductID: "p2", Quantity: 1, UnitPrice: dec("10000"), Subtotal: dec("10000")},
	)

	uc := sales.NewListSalesUseCase(fakes.NewSaleRepo(s), fakes.NewCustomerRepo(s))
	out, err := uc.List(context.Background(), testCompanyID, 10, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)

	require.Len(t, out[0].Items, 3)
	assert.Equal(t, "p1", out[0].Items[0].ProductID)
	assert.Equal(t, "p2", out[0].Items[1].ProductID)
	assert.Equal(t, "p3", out[0].Items[2].ProductID)
}

var errCustomerStore = errors.New("clientes no disponible")

// failingCustomerRepo simula una caída del almacén de clientes.
type failingCustomerRepo struct {
	repository.CustomerRepository
}

func (failingCustomerRepo) GetByID(string) (*entity.Customer, error) {
	return nil, errCustomerStore
}

func TestListSales_ErrorDeClienteSePropaga(t *testing.T) {
	s := fakes.NewStore()
	s.Sales["venta-1"] = entity.Sale{
		ID: "venta-1", CompanyID: testCompanyID, CustomerID: customerAna,
		Total: dec("9000"), AmountPaid: dec("9000"),
		Status: entity.SaleStatusPaid, SoldAt: time.Now(),
	}

	uc := sales.NewListSalesUseCase(fakes.NewSaleRepo(s), failingCustomerRepo{})
	_, err := uc.List(context.Background(), testCompanyID, 10, 0)
	assert.ErrorIs(t, err, errCustomerStore,
		"un fallo de lectura del cliente no debe etiquetar la venta como consumidor final")
}
