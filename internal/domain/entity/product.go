package entity

import "time"

// Product es un producto del catálogo global, compartido por todas las
// empresas. Inmutable desde la perspectiva del tenant: el stock y los precios
// por empresa viven en InventoryRecord.
type Product struct {
	ID          string
	Name        string
	Category    string
	Brand       string
	BaseCode    string
	Description string
	ImageURL    string
	CreatedAt   time.Time
}
