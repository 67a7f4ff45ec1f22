package dto

import "time"

// RegisterRequest alta de usuario en una empresa.
type RegisterRequest struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"nombre"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"rol"` // owner | vendedor (super_admin solo por seed)
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse usuario sin campos sensibles.
type UserResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Role      string    `json:"rol"`
	Status    string    `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
