package entity

import "time"

// Family agrupa productos que comparten un esquema de atributos: grupos
// ordenados más una lista de atributos requeridos. Code es único por empresa.
type Family struct {
	ID        string
	CompanyID string
	Code      string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AttributeGroup es un grupo ordenado de atributos dentro de una familia.
type AttributeGroup struct {
	ID        string
	FamilyID  string
	Name      string
	Order     int
	CreatedAt time.Time
}

// FamilyAttribute vincula un atributo (posiblemente requerido) a una familia,
// opcionalmente dentro de un grupo. El reemplazo es siempre total y atómico:
// delete-all-then-recreate dentro de una transacción.
type FamilyAttribute struct {
	ID          string
	FamilyID    string
	AttributeID string
	GroupID     string // vacío si no está agrupado
	IsRequired  bool
	Order       int
	CreatedAt   time.Time
}
