package dto

import (
	"encoding/json"
	"time"
)

// CreateAttributeRequest entrada para crear un atributo.
type CreateAttributeRequest struct {
	Code            string          `json:"code" validate:"required,min=1,max=100"`
	Name            string          `json:"name" validate:"required,min=1,max=200"`
	Type            string          `json:"type" validate:"required"`
	SectionID       string          `json:"sectionId"`
	Options         []string        `json:"options"`
	ValidationRules json.RawMessage `json:"validationRules"`
	TableConfig     json.RawMessage `json:"tableConfig"`
}

// UpdateAttributeRequest entrada para actualizar un atributo (patch parcial).
type UpdateAttributeRequest struct {
	Code            *string         `json:"code"`
	Name            *string         `json:"name"`
	Type            *string         `json:"type"`
	SectionID       *string         `json:"sectionId"`
	Options         []string        `json:"options"`
	ValidationRules json.RawMessage `json:"validationRules"`
	TableConfig     json.RawMessage `json:"tableConfig"`
}

// AttributeUsage conteos de uso de un atributo.
type AttributeUsage struct {
	ProductCount int `json:"productCount"`
	FamilyCount  int `json:"familyCount"`
}

// AttributeResponse salida de un atributo.
type AttributeResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"companyId"`
	SectionID       string          `json:"sectionId,omitempty"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Type            string          `json:"type"`
	Options         []string        `json:"options,omitempty"`
	ValidationRules json.RawMessage `json:"validationRules,omitempty"`
	TableConfig     json.RawMessage `json:"tableConfig,omitempty"`
	Usage           *AttributeUsage `json:"usage,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
