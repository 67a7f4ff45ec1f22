package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Motor de ventas
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrEmptyCart         = errors.New("la venta no tiene productos")
	ErrInvalidCustomer   = errors.New("el cliente no existe para esta empresa")

	// Motor de consignación
	ErrNoOutstandingDebt   = errors.New("no hay deuda pendiente con esta proveedora")
	ErrLiquidacionNotFound = errors.New("liquidación no encontrada")

	// Cualquier id referenciado que no pertenezca a la empresa del token.
	// Se verifica explícitamente en cada operación que recibe ids de entrada
	// (clientes, proveedoras, liquidaciones) para evitar fugas entre tenants.
	ErrTenantMismatch = errors.New("el recurso no pertenece a la empresa")
)
