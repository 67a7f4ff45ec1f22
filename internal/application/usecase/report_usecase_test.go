package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cosmetica-saas/internal/application/fakes"
	"github.com/tu-usuario/cosmetica-saas/internal/application/usecase"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

const reportCompany = "00000000-0000-0000-0000-0000000000c1"

func newReportUC(s *fakes.Store) *usecase.ReportUseCase {
	return usecase.NewReportUseCase(
		fakes.NewReceivableRepo(s),
		fakes.NewProveedoraRepo(s),
		fakes.NewConsignacionRepo(s),
		fakes.NewVentaConsignacionRepo(s),
	)
}

func TestReporteCartera_PendientesOrdenadasPorVencimiento(t *testing.T) {
	s := fakes.NewStore()
	now := time.Now()
	s.Customers["cli1"] = entity.Customer{ID: "cli1", CompanyID: reportCompany, Name: "Ana"}
	s.Sales["v1"] = entity.Sale{ID: "v1", CompanyID: reportCompany, CustomerID: "cli1",
		Total: decimal.RequireFromString("80000"), Status: entity.SaleStatusCredit, SoldAt: now.AddDate(0, 0, -40)}
	s.Sales["v2"] = entity.Sale{ID: "v2", CompanyID: reportCompany, CustomerID: "cli1",
		Total: decimal.RequireFromString("50000"), Status: entity.SaleStatusCredit, SoldAt: now.AddDate(0, 0, -5)}
	s.Sales["v3"] = entity.Sale{ID: "v3", CompanyID: reportCompany, CustomerID: "cli1",
		Total: decimal.RequireFromString("20000"), Status: entity.SaleStatusPaid, SoldAt: now}
	// v1 ya venció, v2 vence en 25 días, v3 está pagada y no debe aparecer
	s.Receivables["v1"] = entity.Receivable{ID: "r1", SaleID: "v1",
		AmountDue: decimal.RequireFromString("80000"), DueDate: now.AddDate(0, 0, -10),
		Status: entity.ReceivableStatusPending}
	s.Receivables["v2"] = entity.Receivable{ID: "r2", SaleID: "v2",
		AmountDue: decimal.RequireFromString("30000"), DueDate: now.AddDate(0, 0, 25),
		Status: entity.ReceivableStatusPartial}
	s.Receivables["v3"] = entity.Receivable{ID: "r3", SaleID: "v3",
		AmountDue: decimal.Zero, DueDate: now.AddDate(0, 0, 25),
		Status: entity.ReceivableStatusPaid}

	out, err := newReportUC(s).CuentasPorCobrar(context.Background(), reportCompany)
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	assert.Equal(t, "v1", out.Rows[0].SaleID)
	assert.Equal(t, "v2", out.Rows[1].SaleID)
	assert.True(t, out.Rows[0].Overdue)
	assert.False(t, out.Rows[1].Overdue)
	assert.Equal(t, "Ana", out.Rows[0].CustomerName)
	assert.Equal(t, 1, out.OverdueN)
	assert.True(t, out.TotalDue.Equal(decimal.RequireFromString("110000")))
}

func TestReporteCartera_NoCruzaTenants(t *testing.T) {
	s := fakes.NewStore()
	now := time.Now()
	s.Sales["v1"] = entity.Sale{ID: "v1", CompanyID: "otra-empresa",
		Total: decimal.RequireFromString("80000"), Status: entity.SaleStatusCredit, SoldAt: now}
	s.Receivables["v1"] = entity.Receivable{ID: "r1", SaleID: "v1",
		AmountDue: decimal.RequireFromString("80000"), DueDate: now.AddDate(0, 0, 30),
		Status: entity.ReceivableStatusPending}

	out, err := newReportUC(s).CuentasPorCobrar(context.Background(), reportCompany)
	require.NoError(t, err)
	assert.Empty(t, out.Rows)
	assert.True(t, out.TotalDue.IsZero())
}

func TestReporteConsignaciones_AgregaPorProveedora(t *testing.T) {
	s := fakes.NewStore()
	now := time.Now()
	s.Proveedoras["prov1"] = entity.Proveedora{ID: "prov1", CompanyID: reportCompany, Name: "Rosa", Active: true}
	s.Proveedoras["prov2"] = entity.Proveedora{ID: "prov2", CompanyID: reportCompany, Name: "Carmen", Active: true}
	s.Consignaciones["lote1"] = entity.Consignacion{
		ID: "lote1", CompanyID: reportCompany, ProveedoraID: "prov1", ProductID: "p1",
		Received: 10, Available: 4, SupplierPrice: decimal.RequireFromString("5000"),
		OwnPrice: decimal.RequireFromString("8000"), Status: entity.ConsignacionStatusActive,
		ReceivedAt: now.AddDate(0, 0, -20),
	}
	s.Consignaciones["lote2"] = entity.Consignacion{
		ID: "lote2", CompanyID: reportCompany, ProveedoraID: "prov1", ProductID: "p1",
		Received: 5, Available: 0, SupplierPrice: decimal.RequireFromString("5000"),
		OwnPrice: decimal.RequireFromString("8000"), Status: entity.ConsignacionStatusClosed,
		ReceivedAt: now.AddDate(0, 0, -60),
	}
	// dos eventos sin liquidar y uno ya capturado por una liquidación
	s.VentasConsignacion["e1"] = entity.VentaConsignacion{
		ID: "e1", ConsignacionID: "lote1", SaleID: "v1", Quantity: 2,
		AmountOwed: decimal.RequireFromString("10000"), OwnProfit: decimal.RequireFromString("6000"),
		SoldAt: now.AddDate(0, 0, -3),
	}
	s.VentasConsignacion["e2"] = entity.VentaConsignacion{
		ID: "e2", ConsignacionID: "lote1", SaleID: "v2", Quantity: 1,
		AmountOwed: decimal.RequireFromString("5000"), OwnProfit: decimal.RequireFromString("3000"),
		SoldAt: now.AddDate(0, 0, -1),
	}
	s.VentasConsignacion["e3"] = entity.VentaConsignacion{
		ID: "e3", ConsignacionID: "lote2", SaleID: "v0", Quantity: 5,
		AmountOwed: decimal.RequireFromString("25000"), Liquidado: true,
		SoldAt: now.AddDate(0, 0, -45),
	}

	out, err := newReportUC(s).Consignaciones(context.Background(), reportCompany)
	require.NoError(t, err)

	require.Len(t, out.Rows, 2)
	byName := map[string]int{}
	for i, r := range out.Rows {
		byName[r.ProveedoraName] = i
	}
	rosa := out.Rows[byName["Rosa"]]
	assert.Equal(t, 1, rosa.ActiveLots)
	assert.Equal(t, 4, rosa.UnitsAvailable)
	assert.Equal(t, 2, rosa.PendingEvents)
	assert.True(t, rosa.AmountOwed.Equal(decimal.RequireFromString("15000")))
	assert.True(t, rosa.OwnProfit.Equal(decimal.RequireFromString("9000")))

	carmen := out.Rows[byName["Carmen"]]
	assert.Equal(t, 0, carmen.ActiveLots)
	assert.True(t, carmen.AmountOwed.IsZero())

	assert.True(t, out.TotalOwed.Equal(decimal.RequireFromString("15000")))
}
