package entity

import "time"

// Roles de usuario. El super_admin opera sin empresa asignada (CompanyID vacío)
// y es el único que puede crear empresas.
const (
	RoleSuperAdmin = "super_admin"
	RoleOwner      = "owner"
	RoleVendedor   = "vendedor"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	CompanyID    string // vacío solo para super_admin
	Name         string
	Email        string
	PasswordHash string
	Role         string // ver constantes Role*
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
