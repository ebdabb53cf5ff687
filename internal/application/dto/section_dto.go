package dto

import "time"

// CreateSectionRequest entrada para crear una sección de atributos.
type CreateSectionRequest struct {
	Code        string `json:"code" validate:"required,min=1,max=100"`
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
	DisplayIn   string `json:"displayIn"`
	Order       int    `json:"order"`
}

// UpdateSectionRequest entrada para actualizar una sección.
type UpdateSectionRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	DisplayIn   *string `json:"displayIn"`
	Order       *int    `json:"order"`
}

// ReorderSectionsRequest nuevo orden: ids en la posición deseada (1-based).
type ReorderSectionsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1"`
}

// SectionResponse salida de una sección.
type SectionResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"companyId"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	DisplayIn   string    `json:"displayIn"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
