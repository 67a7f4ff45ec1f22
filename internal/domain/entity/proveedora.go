package entity

import "time"

// Proveedora es una proveedora externa cuyos productos se venden en
// consignación. Independiente del inventario propio: su mercancía se rastrea
// en Consignacion, nunca en InventoryRecord.
type Proveedora struct {
	ID        string
	CompanyID string
	Name      string
	Phone     string
	Email     string
	Notes     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
