package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/application/fakes"
	"github.com/tu-usuario/cosmetica-saas/internal/application/inventory"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

const (
	testCompanyID = "00000000-0000-0000-0000-0000000000c1"
	productLabial = "00000000-0000-0000-0000-0000000000p1"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFixture(t *testing.T, stock int) (*fakes.Store, *inventory.LedgerUseCase) {
	t.Helper()
	s := fakes.NewStore()
	s.Products[productLabial] = entity.Product{ID: productLabial, Name: "Labial Mate Rojo", Category: "labiales"}
	s.Inventory[testCompanyID+"|"+productLabial] = entity.InventoryRecord{
		ID:        testCompanyID + "|" + productLabial,
		CompanyID: testCompanyID,
		ProductID: productLabial,
		Stock:     stock,
		SalePrice: dec("9000"),
	}
	return s, inventory.NewLedgerUseCase(fakes.NewInventoryRepo(s))
}

func TestAdjustStock_EntradaYSalida(t *testing.T) {
	_, uc := newFixture(t, 10)

	rec, err := uc.AdjustStock(context.Background(), testCompanyID, productLabial, 5)
	require.NoError(t, err)
	assert.Equal(t, 15, rec.Stock)

	rec, err = uc.AdjustStock(context.Background(), testCompanyID, productLabial, -15)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Stock, "bajar exactamente a cero es válido")
}

func TestAdjustStock_NoDejaStockNegativo(t *testing.T) {
	s, uc := newFixture(t, 3)

	_, err := uc.AdjustStock(context.Background(), testCompanyID, productLabial, -4)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 3, s.Inventory[testCompanyID+"|"+productLabial].Stock, "el fallo no toca la fila")
}

func TestAdjustStock_DeltaCeroRechazado(t *testing.T) {
	_, uc := newFixture(t, 3)
	_, err := uc.AdjustStock(context.Background(), testCompanyID, productLabial, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_ProductoSinRegistro(t *testing.T) {
	_, uc := newFixture(t, 3)
	_, err := uc.AdjustStock(context.Background(), testCompanyID, "no-existe", 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetStock_NoEncontrado(t *testing.T) {
	_, uc := newFixture(t, 3)
	_, err := uc.GetStock(context.Background(), "otra-empresa", productLabial)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSetPricing_ActualizaSoloLoEnviado(t *testing.T) {
	_, uc := newFixture(t, 10)
	precio := dec("9500")

	rec, err := uc.SetPricing(context.Background(), testCompanyID, productLabial, dto.SetPricingRequest{
		SalePrice: &precio,
	})
	require.NoError(t, err)
	assert.True(t, precio.Equal(rec.SalePrice))
	assert.Equal(t, 10, rec.Stock, "los campos no enviados no cambian")
}

func TestSetPricing_SinCamposRechazado(t *testing.T) {
	_, uc := newFixture(t, 10)
	_, err := uc.SetPricing(context.Background(), testCompanyID, productLabial, dto.SetPricingRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetPricing_StockNegativoRechazado(t *testing.T) {
	_, uc := newFixture(t, 10)
	negativo := -1
	_, err := uc.SetPricing(context.Background(), testCompanyID, productLabial, dto.SetPricingRequest{
		Stock: &negativo,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_DevuelveCatalogoConStock(t *testing.T) {
	_, uc := newFixture(t, 10)

	items, err := uc.List(context.Background(), testCompanyID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Labial Mate Rojo", items[0].Name)
	assert.Equal(t, 10, items[0].Stock)
}
