package dto

import "time"

// AttributeGroupInput grupo de atributos en create/update de familia.
// Order en cero toma la posición 1-based en la secuencia de entrada.
type AttributeGroupInput struct {
	Name  string `json:"name" validate:"required"`
	Order int    `json:"order"`
}

// FamilyAttributeInput vínculo atributo-familia en create/update.
type FamilyAttributeInput struct {
	AttributeID string `json:"attributeId" validate:"required"`
	GroupID     string `json:"groupId"`
	IsRequired  *bool  `json:"isRequired"` // nil = true (default del original)
	Order       int    `json:"order"`
}

// CreateFamilyRequest entrada para crear una familia con sus grupos y requeridos.
type CreateFamilyRequest struct {
	Code               string                 `json:"code" validate:"required,min=1,max=100"`
	Name               string                 `json:"name" validate:"required,min=1,max=200"`
	AttributeGroups    []AttributeGroupInput  `json:"attributeGroups"`
	RequiredAttributes []FamilyAttributeInput `json:"requiredAttributes"`
}

// UpdateFamilyRequest entrada para actualizar una familia. Grupos y requeridos
// nil significan "no tocar"; presentes (aunque vacíos) reemplazan el set completo.
type UpdateFamilyRequest struct {
	Code               *string                 `json:"code"`
	Name               *string                 `json:"name"`
	AttributeGroups    *[]AttributeGroupInput  `json:"attributeGroups"`
	RequiredAttributes *[]FamilyAttributeInput `json:"requiredAttributes"`
}

// FamilyResponse salida resumida de una familia.
type FamilyResponse struct {
	ID                 string    `json:"id"`
	CompanyID          string    `json:"companyId"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	ProductsCount      int       `json:"productsCount"`
	RequiredAttributes int       `json:"requiredAttributesCount"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// AttributeGroupResponse grupo con su orden.
type AttributeGroupResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// FamilyAttributeResponse requerido con el atributo resuelto.
type FamilyAttributeResponse struct {
	ID          string             `json:"id"`
	AttributeID string             `json:"attributeId"`
	GroupID     string             `json:"groupId,omitempty"`
	IsRequired  bool               `json:"isRequired"`
	Order       int                `json:"order"`
	Attribute   *AttributeResponse `json:"attribute,omitempty"`
}

// FamilyDetailResponse familia con grupos y requeridos ordenados.
type FamilyDetailResponse struct {
	FamilyResponse
	AttributeGroups []AttributeGroupResponse  `json:"attributeGroups"`
	Requirements    []FamilyAttributeResponse `json:"requiredAttributes"`
}
