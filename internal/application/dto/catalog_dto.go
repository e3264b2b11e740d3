package dto

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// SupplierResponse representación de un proveedor.
type SupplierResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// CreateWorkshopRequest body para POST /api/workshops.
type CreateWorkshopRequest struct {
	Name string `json:"name"`
}

// WorkshopResponse representación de un taller.
type WorkshopResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
