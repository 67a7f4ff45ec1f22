package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/application/fakes"
	"github.com/tu-usuario/cosmetica-saas/internal/application/sales"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	apphttp "github.com/tu-usuario/cosmetica-saas/internal/interfaces/http"
)

const saleTestProduct = "00000000-0000-0000-0000-0000000000p1"

// buildSaleApp app Fiber con el handler de ventas sobre repos en memoria,
// inyectando el company_id como lo haría el middleware de auth.
func buildSaleApp(t *testing.T, stock int) *fiber.App {
	t.Helper()
	s := fakes.NewStore()
	s.Products[saleTestProduct] = entity.Product{ID: saleTestProduct, Name: "Labial Mate Rojo"}
	s.Inventory[testCompanyID+"|"+saleTestProduct] = entity.InventoryRecord{
		ID:        testCompanyID + "|" + saleTestProduct,
		CompanyID: testCompanyID,
		ProductID: saleTestProduct,
		Stock:     stock,
		SalePrice: decimal.RequireFromString("9000"),
	}
	create := sales.NewCreateSaleUseCase(fakes.NewTxRunner(s), fakes.NewCustomerRepo(s))
	list := sales.NewListSalesUseCase(fakes.NewSaleRepo(s), fakes.NewCustomerRepo(s))
	handler := apphttp.NewSaleHandler(create, list)

	app := fiber.New()
	app.Post("/api/sales", func(c *fiber.Ctx) error {
		c.Locals(apphttp.LocalCompanyID, testCompanyID)
		return c.Next()
	}, handler.Create)
	return app
}

func postSale(t *testing.T, app *fiber.App, in dto.CreateSaleRequest) *http.Response {
	t.Helper()
	body, err := json.Marshal(in)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/sales", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSaleHandler_Creada201(t *testing.T) {
	app := buildSaleApp(t, 10)
	resp := postSale(t, app, dto.CreateSaleRequest{
		Status: entity.SaleStatusPaid,
		Items: []dto.SaleItemRequest{
			{ProductID: saleTestProduct, Quantity: 2, UnitPrice: decimal.RequireFromString("9000")},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestSaleHandler_StockInsuficienteRetorna400(t *testing.T) {
	app := buildSaleApp(t, 1)
	resp := postSale(t, app, dto.CreateSaleRequest{
		Status: entity.SaleStatusPaid,
		Items: []dto.SaleItemRequest{
			{ProductID: saleTestProduct, Quantity: 5, UnitPrice: decimal.RequireFromString("9000")},
		},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode,
		"las violaciones de regla de negocio responden 400")

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
}

func TestSaleHandler_CarritoVacioRetorna400(t *testing.T) {
	app := buildSaleApp(t, 10)
	resp := postSale(t, app, dto.CreateSaleRequest{Status: entity.SaleStatusPaid})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
