package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/application/fakes"
	"github.com/tu-usuario/cosmetica-saas/internal/application/usecase"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
)

const planBasico = "00000000-0000-0000-0000-0000000000pl"

func newStore() *fakes.Store {
	s := fakes.NewStore()
	s.Plans[planBasico] = entity.Plan{
		ID: planBasico, Name: "Básico", Price: decimal.RequireFromString("50000"),
		UserLimit: 3, ProductLimit: 100,
	}
	return s
}

func TestCompanyCreate_BackfillDeInventario(t *testing.T) {
	s := newStore()
	s.Products["p1"] = entity.Product{ID: "p1", Name: "Labial"}
	s.Products["p2"] = entity.Product{ID: "p2", Name: "Crema"}
	uc := usecase.NewCompanyUseCase(fakes.NewTxRunner(s), fakes.NewCompanyRepo(s), fakes.NewPlanRepo(s))

	resp, err := uc.Create(context.Background(), dto.CreateCompanyRequest{
		Name:      "Distribuidora Rosa",
		PlanID:    planBasico,
		ExpiresAt: time.Now().AddDate(1, 0, 0),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.CompanyStatusActive, resp.Status)

	// Un registro en cero por cada producto del catálogo
	count := 0
	for _, rec := range s.Inventory {
		if rec.CompanyID == resp.ID {
			count++
			assert.Equal(t, 0, rec.Stock)
		}
	}
	assert.Equal(t, 2, count)
}

func TestCompanyCreate_PlanInexistente(t *testing.T) {
	s := newStore()
	uc := usecase.NewCompanyUseCase(fakes.NewTxRunner(s), fakes.NewCompanyRepo(s), fakes.NewPlanRepo(s))

	_, err := uc.Create(context.Background(), dto.CreateCompanyRequest{Name: "X", PlanID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.Companies)
}

func TestProductCreate_BackfillParaTodasLasEmpresas(t *testing.T) {
	s := newStore()
	s.Companies["c1"] = entity.Company{ID: "c1", Name: "Rosa", CreatedAt: time.Now()}
	s.Companies["c2"] = entity.Company{ID: "c2", Name: "Lila", CreatedAt: time.Now()}
	uc := usecase.NewProductUseCase(fakes.NewTxRunner(s), fakes.NewProductRepo(s))

	product, err := uc.Create(context.Background(), "Esmalte Nude", "esmaltes", "Vogue", "ESM-01", "", "")
	require.NoError(t, err)

	count := 0
	for _, rec := range s.Inventory {
		if rec.ProductID == product.ID {
			count++
			assert.Equal(t, 0, rec.Stock)
		}
	}
	assert.Equal(t, 2, count, "registro en cero para cada empresa existente")
}

func TestProductCreate_SinNombre(t *testing.T) {
	s := newStore()
	uc := usecase.NewProductUseCase(fakes.NewTxRunner(s), fakes.NewProductRepo(s))
	_, err := uc.Create(context.Background(), "", "", "", "", "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
