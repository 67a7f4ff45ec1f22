package repository

import "github.com/tu-usuario/cosmetica-saas/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para empresas (tenants).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	List() ([]*entity.Company, error)
	UpdateStatus(id, status string) error
}

// PlanRepository define el puerto de lectura del catálogo de planes.
type PlanRepository interface {
	GetByID(id string) (*entity.Plan, error)
	List() ([]*entity.Plan, error)
}
