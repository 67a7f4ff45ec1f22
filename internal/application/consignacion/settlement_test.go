package consignacion_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cosmetica-saas/internal/application/consignacion"
	"github.com/tu-usuario/cosmetica-saas/internal/application/fakes"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

const (
	testCompanyID  = "00000000-0000-0000-0000-0000000000c1"
	otherCompanyID = "00000000-0000-0000-0000-0000000000c2"
	proveedoraID   = "00000000-0000-0000-0000-0000000000pv"
	loteA          = "00000000-0000-0000-0000-0000000000la"
	loteB          = "00000000-0000-0000-0000-0000000000lb"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newFixture(t *testing.T) (*fakes.Store, *consignacion.SettlementUseCase) {
	t.Helper()
	s := fakes.NewStore()
	s.Proveedoras[proveedoraID] = entity.Proveedora{
		ID: proveedoraID, CompanyID: testCompanyID, Name: "Marta Cosméticos", Active: true,
	}
	s.Consignaciones[loteA] = entity.Consignacion{
		ID: loteA, CompanyID: testCompanyID, ProveedoraID: proveedoraID,
		Status: entity.ConsignacionStatusActive,
	}
	s.Consignaciones[loteB] = entity.Consignacion{
		ID: loteB, CompanyID: testCompanyID, ProveedoraID: proveedoraID,
		Status: entity.ConsignacionStatusActive,
	}
	uc := consignacion.NewSettlementUseCase(fakes.NewTxRunner(s), fakes.NewProveedoraRepo(s), fakes.NewLiquidacionRepo(s))
	return s, uc
}

func seedEvento(s *fakes.Store, id, consignacionID, owed string, soldAt time.Time) {
	s.VentasConsignacion[id] = entity.VentaConsignacion{
		ID:             id,
		ConsignacionID: consignacionID,
		Quantity:       1,
		AmountOwed:     dec(owed),
		Liquidado:      false,
		SoldAt:         soldAt,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CrearLiquidacion
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearLiquidacion_CapturaYAgrupaPorLote(t *testing.T) {
	s, uc := newFixture(t)
	base := time.Now().Add(-time.Hour)
	seedEvento(s, "ev1", loteA, "6000", base)
	seedEvento(s, "ev2", loteA, "6000", base.Add(time.Minute))
	seedEvento(s, "ev3", loteB, "7500", base.Add(2*time.Minute))

	resp, err := uc.CrearLiquidacion(context.Background(), testCompanyID, proveedoraID, "corte semanal")
	require.NoError(t, err)

	assert.True(t, dec("19500").Equal(resp.Total), "total esperado 19500, fue %s", resp.Total)
	assert.Equal(t, entity.LiquidacionStatusPending, resp.Status)

	// Todos los eventos quedaron marcados
	for id, v := range s.VentasConsignacion {
		assert.True(t, v.Liquidado, "evento %s debe quedar liquidado", id)
	}

	// Detalle por lote: loteA 2 eventos 12000, loteB 1 evento 7500
	detalles := make(map[string]entity.LiquidacionDetalle)
	for _, d := range s.LiqDetalles {
		require.Equal(t, resp.ID, d.LiquidacionID)
		detalles[d.ConsignacionID] = d
	}
	require.Len(t, detalles, 2)
	assert.Equal(t, 2, detalles[loteA].EventsIncluded)
	assert.True(t, dec("12000").Equal(detalles[loteA].Amount))
	assert.Equal(t, 1, detalles[loteB].EventsIncluded)
	assert.True(t, dec("7500").Equal(detalles[loteB].Amount))
}

func TestCrearLiquidacion_SinDeudaRechazada(t *testing.T) {
	s, uc := newFixture(t)
	seedEvento(s, "ev1", loteA, "6000", time.Now().Add(-time.Hour))

	_, err := uc.CrearLiquidacion(context.Background(), testCompanyID, proveedoraID, "")
	require.NoError(t, err)

	// Segundo corte inmediato: ya no queda nada por liquidar
	_, err = uc.CrearLiquidacion(context.Background(), testCompanyID, proveedoraID, "")
	assert.ErrorIs(t, err, domain.ErrNoOutstandingDebt)
	assert.Len(t, s.Liquidaciones, 1, "el corte fallido no crea liquidación")
}

func TestCrearLiquidacion_VentasPosterioresQuedanParaElSiguienteCorte(t *testing.T) {
	s, uc := newFixture(t)
	seedEvento(s, "ev1", loteA, "6000", time.Now().Add(-time.Hour))

	first, err := uc.CrearLiquidacion(context.Background(), testCompanyID, proveedoraID, "")
	require.NoError(t, err)

	// Venta después del corte: no se absorbe retroactivamente
	seedEvento(s, "ev2", loteA, "9000", time.Now())

	second, err := uc.CrearLiquidacion(context.Background(), testCompanyID, proveedoraID, "")
	require.NoError(t, err)
	assert.True(t, dec("6000").Equal(s.Liquidaciones[first.ID].Total))
	assert.True(t, dec("9000").Equal(second.Total))
}

func TestCrearLiquidacion_ProveedoraDeOtraEmpresa(t *testing.T) {
	s, uc := newFixture(t)
	ajena := s.Proveedoras[proveedoraID]
	ajena.CompanyID = otherCompanyID
	s.Proveedoras[proveedoraID] = ajena

	_, err := uc.CrearLiquidacion(context.Background(), testCompanyID, proveedoraID, "")
	assert.ErrorIs(t, err, domain.ErrTenantMismatch)
}

func TestCrearLiquidacion_ProveedoraInexistente(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.CrearLiquidacion(context.Background(), testCompanyID, "no-existe", "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// RegistrarPago
// ──────────────────────────────────────────────────────────────────────────────

func crearLiquidacionConDeuda(t *testing.T, s *fakes.Store, uc *consignacion.SettlementUseCase, owed string) string {
	t.Helper()
	seedEvento(s, "ev-"+owed, loteA, owed, time.Now().Add(-time.Hour))
	resp, err := uc.CrearLiquidacion(context.Background(), testCompanyID, proveedoraID, "")
	require.NoError(t, err)
	return resp.ID
}

func TestRegistrarPago_AbonoParcial(t *testing.T) {
	s, uc := newFixture(t)
	liqID := crearLiquidacionConDeuda(t, s, uc, "10000")

	resp, err := uc.RegistrarPago(context.Background(), testCompanyID, liqID, dec("4000"))
	require.NoError(t, err)

	assert.Equal(t, entity.LiquidacionStatusPartial, resp.Status)
	assert.True(t, dec("4000").Equal(resp.AmountPaid))
	assert.Nil(t, s.Liquidaciones[liqID].PaidAt)
}

func TestRegistrarPago_AbonosAcumulanHastaPagado(t *testing.T) {
	s, uc := newFixture(t)
	liqID := crearLiquidacionConDeuda(t, s, uc, "10000")

	_, err := uc.RegistrarPago(context.Background(), testCompanyID, liqID, dec("4000"))
	require.NoError(t, err)
	resp, err := uc.RegistrarPago(context.Background(), testCompanyID, liqID, dec("6000"))
	require.NoError(t, err)

	assert.Equal(t, entity.LiquidacionStatusPaid, resp.Status)
	assert.True(t, dec("10000").Equal(resp.AmountPaid))
	require.NotNil(t, s.Liquidaciones[liqID].PaidAt)
	assert.WithinDuration(t, time.Now(), *s.Liquidaciones[liqID].PaidAt, time.Minute)
}

func TestRegistrarPago_SobrepagoSeAceptaSinRecorte(t *testing.T) {
	s, uc := newFixture(t)
	liqID := crearLiquidacionConDeuda(t, s, uc, "10000")

	resp, err := uc.RegistrarPago(context.Background(), testCompanyID, liqID, dec("12000"))
	require.NoError(t, err)

	// El abono se registra tal cual, por encima del total
	assert.Equal(t, entity.LiquidacionStatusPaid, resp.Status)
	assert.True(t, dec("12000").Equal(s.Liquidaciones[liqID].AmountPaid))
}

func TestRegistrarPago_MontoNoPositivo(t *testing.T) {
	s, uc := newFixture(t)
	liqID := crearLiquidacionConDeuda(t, s, uc, "10000")

	_, err := uc.RegistrarPago(context.Background(), testCompanyID, liqID, decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.RegistrarPago(context.Background(), testCompanyID, liqID, dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrarPago_LiquidacionDeOtraEmpresa(t *testing.T) {
	s, uc := newFixture(t)
	liqID := crearLiquidacionConDeuda(t, s, uc, "10000")

	_, err := uc.RegistrarPago(context.Background(), otherCompanyID, liqID, dec("1000"))
	assert.ErrorIs(t, err, domain.ErrTenantMismatch)
}

func TestRegistrarPago_LiquidacionInexistente(t *testing.T) {
	_, uc := newFixture(t)
	_, err := uc.RegistrarPago(context.Background(), testCompanyID, "no-existe", dec("1000"))
	assert.ErrorIs(t, err, domain.ErrLiquidacionNotFound)
}
