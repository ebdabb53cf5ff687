package entity

import "time"

// Category representa una categoría de productos jerárquica.
// Level es derivado: 1 si es raíz, si no parent.Level + 1. El invariante se
// mantiene en cada create/move con cascada sobre los descendientes.
type Category struct {
	ID        string
	CompanyID string
	ParentID  string // vacío si es raíz
	Code      string // código único por empresa
	Name      string
	Level     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot indica si la categoría no tiene padre.
func (c *Category) IsRoot() bool { return c.ParentID == "" }
