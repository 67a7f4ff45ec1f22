package dto

// CreateProductRequest alta de producto en el catálogo global (super_admin).
type CreateProductRequest struct {
	Name        string `json:"nombre_producto"`
	Category    string `json:"categoria"`
	Brand       string `json:"marca"`
	BaseCode    string `json:"codigo_base"`
	Description string `json:"descripcion"`
	ImageURL    string `json:"imagen_url"`
}

// ProductResponse producto del catálogo global.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"nombre_producto"`
	Category    string `json:"categoria,omitempty"`
	Brand       string `json:"marca,omitempty"`
	BaseCode    string `json:"codigo_base,omitempty"`
	Description string `json:"descripcion,omitempty"`
	ImageURL    string `json:"imagen_url,omitempty"`
}
