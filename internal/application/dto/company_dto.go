package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest alta de empresa por el super_admin. El aprovisionamiento
// crea inventario en cero para todo el catálogo global.
type CreateCompanyRequest struct {
	Name      string    `json:"nombre_empresa"`
	PlanID    string    `json:"plan_id"`
	ExpiresAt time.Time `json:"fecha_vencimiento"`
}

// CompanyResponse empresa del panel de super administración.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre_empresa"`
	PlanID    string    `json:"plan_id"`
	Status    string    `json:"estado"`
	ExpiresAt time.Time `json:"fecha_vencimiento"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanResponse plan del catálogo SaaS.
type PlanResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nombre_plan"`
	Price        decimal.Decimal `json:"precio"`
	UserLimit    int             `json:"limite_usuarios"`
	ProductLimit int             `json:"limite_productos"`
}
