package entity

import (
	"encoding/json"
	"time"
)

// Attribute es la definición tipada de un campo de producto, con reglas de
// validación específicas del tipo. Code es único por empresa.
type Attribute struct {
	ID              string
	CompanyID       string
	SectionID       string // vacío si no pertenece a una sección
	Code            string
	Name            string
	Type            string          // uno de attribute.Type (validado al parsear)
	Options         []string        // requerido para SELECT/MULTISELECT
	ValidationRules json.RawMessage // bolsa de reglas por tipo (minLength, min, minDate, ...)
	TableConfig     json.RawMessage // requerido para TABLE (columnas)
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AttributeValue es el valor polimórfico de un atributo sobre un producto.
// Value se almacena como JSONB; su forma depende del tipo del atributo.
type AttributeValue struct {
	ID          string
	ProductID   string
	AttributeID string
	Value       json.RawMessage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
