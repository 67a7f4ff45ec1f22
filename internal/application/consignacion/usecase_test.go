package consignacion_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cosmetica-saas/internal/application/consignacion"
	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/application/fakes"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

const productEsmalte = "00000000-0000-0000-0000-0000000000p9"

func newUseCaseFixture(t *testing.T) (*fakes.Store, *consignacion.UseCase) {
	t.Helper()
	s := fakes.NewStore()
	s.Proveedoras[proveedoraID] = entity.Proveedora{
		ID: proveedoraID, CompanyID: testCompanyID, Name: "Marta Cosméticos", Active: true,
	}
	s.Products[productEsmalte] = entity.Product{ID: productEsmalte, Name: "Esmalte Nude"}
	uc := consignacion.NewUseCase(
		fakes.NewProveedoraRepo(s),
		fakes.NewConsignacionRepo(s),
		fakes.NewVentaConsignacionRepo(s),
		fakes.NewLiquidacionRepo(s),
		fakes.NewProductRepo(s),
	)
	return s, uc
}

func TestCreateProveedora(t *testing.T) {
	s, uc := newUseCaseFixture(t)

	resp, err := uc.CreateProveedora(context.Background(), testCompanyID, dto.CreateProveedoraRequest{
		Name: "Lucía Belleza", Phone: "3001234567",
	})
	require.NoError(t, err)
	assert.True(t, resp.Active, "las proveedoras nacen activas")

	p := s.Proveedoras[resp.ID]
	assert.Equal(t, testCompanyID, p.CompanyID)
	assert.Equal(t, "Lucía Belleza", p.Name)
}

func TestCreateProveedora_SinNombre(t *testing.T) {
	_, uc := newUseCaseFixture(t)
	_, err := uc.CreateProveedora(context.Background(), testCompanyID, dto.CreateProveedoraRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateConsignacion(t *testing.T) {
	s, uc := newUseCaseFixture(t)

	resp, err := uc.CreateConsignacion(context.Background(), testCompanyID, dto.CreateConsignacionRequest{
		ProveedoraID:  proveedoraID,
		ProductID:     productEsmalte,
		Received:      12,
		SupplierPrice: dec("4000"),
		OwnPrice:      dec("7000"),
	})
	require.NoError(t, err)

	assert.Equal(t, 12, resp.Received)
	assert.Equal(t, 12, resp.Available, "disponible arranca igual a lo recibido")
	assert.Equal(t, 0, resp.Sold)
	assert.Equal(t, entity.ConsignacionStatusActive, resp.Status)
	assert.Equal(t, "Marta Cosméticos", resp.Proveedora)
	assert.Equal(t, "Esmalte Nude", resp.Product)

	lote := s.Consignaciones[resp.ID]
	assert.Equal(t, testCompanyID, lote.CompanyID)
}

func TestCreateConsignacion_Validaciones(t *testing.T) {
	_, uc := newUseCaseFixture(t)
	ctx := context.Background()

	_, err := uc.CreateConsignacion(ctx, testCompanyID, dto.CreateConsignacionRequest{
		ProveedoraID: proveedoraID, ProductID: productEsmalte, Received: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad recibida debe ser positiva")

	_, err = uc.CreateConsignacion(ctx, testCompanyID, dto.CreateConsignacionRequest{
		ProveedoraID: proveedoraID, ProductID: productEsmalte, Received: 5, SupplierPrice: dec("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precios negativos rechazados")

	_, err = uc.CreateConsignacion(ctx, testCompanyID, dto.CreateConsignacionRequest{
		ProveedoraID: "no-existe", ProductID: productEsmalte, Received: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.CreateConsignacion(ctx, testCompanyID, dto.CreateConsignacionRequest{
		ProveedoraID: proveedoraID, ProductID: "no-existe", Received: 5,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateConsignacion_ProveedoraDeOtraEmpresa(t *testing.T) {
	s, uc := newUseCaseFixture(t)
	ajena := s.Proveedoras[proveedoraID]
	ajena.CompanyID = otherCompanyID
	s.Proveedoras[proveedoraID] = ajena

	_, err := uc.CreateConsignacion(context.Background(), testCompanyID, dto.CreateConsignacionRequest{
		ProveedoraID: proveedoraID, ProductID: productEsmalte, Received: 5,
	})
	assert.ErrorIs(t, err, domain.ErrTenantMismatch)
}

func TestCalcularDeuda(t *testing.T) {
	s, uc := newUseCaseFixture(t)
	s.Consignaciones[loteA] = entity.Consignacion{
		ID: loteA, CompanyID: testCompanyID, ProveedoraID: proveedoraID,
		ProductID: productEsmalte, Status: entity.ConsignacionStatusActive,
	}
	now := time.Now()
	s.VentasConsignacion["ev1"] = entity.VentaConsignacion{
		ID: "ev1", ConsignacionID: loteA, Quantity: 2,
		UnitPriceUsed: dec("7000"), AmountOwed: dec("8000"), OwnProfit: dec("6000"),
		SoldAt: now.Add(-time.Hour),
	}
	s.VentasConsignacion["ev2"] = entity.VentaConsignacion{
		ID: "ev2", ConsignacionID: loteA, Quantity: 1,
		UnitPriceUsed: dec("7000"), AmountOwed: dec("4000"), OwnProfit: dec("3000"),
		Liquidado: true, SoldAt: now,
	}

	summary, ventas, err := uc.CalcularDeuda(context.Background(), testCompanyID, proveedoraID)
	require.NoError(t, err)

	// Solo el evento sin liquidar cuenta
	require.Len(t, ventas, 1)
	assert.True(t, dec("8000").Equal(summary.TotalDebt))
	assert.True(t, dec("6000").Equal(summary.TotalProfit))
	assert.True(t, dec("14000").Equal(summary.TotalSold), "2 × 7000 vendidos")
	assert.Equal(t, 1, summary.ActiveLots)
}

func TestReporteProveedora(t *testing.T) {
	s, uc := newUseCaseFixture(t)
	s.Consignaciones[loteA] = entity.Consignacion{
		ID: loteA, CompanyID: testCompanyID, ProveedoraID: proveedoraID,
		ProductID: productEsmalte, Received: 10, Available: 7,
		SupplierPrice: dec("4000"), OwnPrice: dec("7000"),
		Status: entity.ConsignacionStatusActive,
	}
	s.VentasConsignacion["ev1"] = entity.VentaConsignacion{
		ID: "ev1", ConsignacionID: loteA, Quantity: 3,
		UnitPriceUsed: dec("7000"), AmountOwed: dec("12000"), OwnProfit: dec("9000"),
		SoldAt: time.Now().Add(-time.Hour),
	}
	s.Liquidaciones["liq1"] = entity.Liquidacion{
		ID: "liq1", CompanyID: testCompanyID, ProveedoraID: proveedoraID,
		Total: dec("5000"), AmountPaid: dec("5000"),
		Status: entity.LiquidacionStatusPaid, CutoffDate: time.Now().Add(-24 * time.Hour),
	}

	resp, err := uc.ReporteProveedora(context.Background(), testCompanyID, proveedoraID)
	require.NoError(t, err)

	assert.Equal(t, "Marta Cosméticos", resp.Proveedora.Name)
	assert.True(t, dec("12000").Equal(resp.Resumen.TotalDebt))

	require.Len(t, resp.Detalle, 1)
	lote := resp.Detalle[0]
	assert.Equal(t, "Esmalte Nude", lote.Product)
	assert.Equal(t, 3, lote.Sold)
	assert.Equal(t, 7, lote.Available)
	assert.True(t, dec("12000").Equal(lote.Debt))
	require.Len(t, lote.Sales, 1)

	require.Len(t, resp.Liquidaciones, 1)
	assert.Equal(t, entity.LiquidacionStatusPaid, resp.Liquidaciones[0].Status)
}

func TestReporteProveedora_Inexistente(t *testing.T) {
	_, uc := newUseCaseFixture(t)
	_, err := uc.ReporteProveedora(context.Background(), testCompanyID, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
