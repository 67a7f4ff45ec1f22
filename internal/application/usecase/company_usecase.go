package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/cosmetica-saas/internal/application/dto"
	"github.com/tu-usuario/cosmetica-saas/internal/domain"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/entity"
	"github.com/tu-usuario/cosmetica-saas/internal/domain/repository"
)

// ProvisionTxRunner transacción de aprovisionamiento: alta de empresa o de
// producto junto con el backfill de inventario en cero.
type ProvisionTxRunner interface {
	RunProvision(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		productRepo repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error) error
}

// CompanyUseCase altas y listado de empresas (solo super_admin).
type CompanyUseCase struct {
	txRunner    ProvisionTxRunner
	companyRepo repository.CompanyRepository
	planRepo    repository.PlanRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(txRunner ProvisionTxRunner, companyRepo repository.CompanyRepository, planRepo repository.PlanRepository) *CompanyUseCase {
	return &CompanyUseCase{txRunner: txRunner, companyRepo: companyRepo, planRepo: planRepo}
}

// Create crea la empresa y su inventario en cero para todo el catálogo
// global, en una sola transacción.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.PlanID == "" {
		return nil, domain.ErrInvalidInput
	}
	plan, err := uc.planRepo.GetByID(in.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		PlanID:    in.PlanID,
		Status:    entity.CompanyStatusActive,
		ExpiresAt: in.ExpiresAt,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err = uc.txRunner.RunProvision(ctx, func(
		companyRepo repository.CompanyRepository,
		_ repository.ProductRepository,
		invRepo repository.InventoryRepository,
	) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		// Registros en cero para todos los productos globales
		return invRepo.InitForCompany(company.ID)
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// List empresas del panel de super administración.
func (uc *CompanyUseCase) List(ctx context.Context) ([]*dto.CompanyResponse, error) {
	list, err := uc.companyRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCompanyResponse(c))
	}
	return out, nil
}

// ListPlans catálogo de planes.
func (uc *CompanyUseCase) ListPlans(ctx context.Context) ([]*dto.PlanResponse, error) {
	plans, err := uc.planRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, &dto.PlanResponse{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			UserLimit:    p.UserLimit,
			ProductLimit: p.ProductLimit,
		})
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		PlanID:    c.PlanID,
		Status:    c.Status,
		ExpiresAt: c.ExpiresAt,
		CreatedAt: c.CreatedAt,
	}
}
