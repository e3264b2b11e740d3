package dto

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name             string `json:"name"`
	Reference        string `json:"reference"`
	ReorderThreshold int64  `json:"reorder_threshold"`
}

// UpdateProductRequest body para PUT /api/products/:id.
type UpdateProductRequest struct {
	Name             string `json:"name"`
	ReorderThreshold int64  `json:"reorder_threshold"`
}

// ProductResponse representación de un producto.
type ProductResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Reference        string `json:"reference"`
	ReorderThreshold int64  `json:"reorder_threshold"`
}
