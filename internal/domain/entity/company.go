package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una empresa (tenant). Una empresa inactiva congela todas las
// operaciones de escritura de sus usuarios (se rechaza en el borde de autorización).
const (
	CompanyStatusActive   = "activo"
	CompanyStatusInactive = "inactivo"
)

// Company representa una distribuidora (tenant). Todas las filas de negocio
// cuelgan de company_id.
type Company struct {
	ID        string
	Name      string
	PlanID    string
	Status    string // ver constantes CompanyStatus*
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Plan representa un plan de suscripción del catálogo SaaS.
type Plan struct {
	ID           string
	Name         string
	Price        decimal.Decimal
	UserLimit    int
	ProductLimit int
}
