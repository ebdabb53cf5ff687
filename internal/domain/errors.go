package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// UniquenessError indica colisión de un campo único por empresa (code, sku).
type UniquenessError struct {
	Entity string // "category", "attribute", "family", "section", "product"
	Field  string // "code", "sku"
	Value  string
}

func (e *UniquenessError) Error() string {
	return fmt.Sprintf("%s: %s %q ya existe en esta empresa", e.Entity, e.Field, e.Value)
}

// DependencyError bloquea un delete por referencias vivas.
// Counts lleva el número de referencias por tipo, p. ej. {"products": 3, "children": 1}.
type DependencyError struct {
	Entity string
	Counts map[string]int
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s: no se puede eliminar, tiene referencias activas %v", e.Entity, e.Counts)
}

// CycleError indica que mover una categoría la colocaría bajo uno de sus descendientes.
type CycleError struct {
	CategoryID string
	ParentID   string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("categoría %s: mover bajo %s crearía un ciclo en la jerarquía", e.CategoryID, e.ParentID)
}

// TypeValidationError indica que la definición o el valor de un atributo
// viola una regla de su tipo. Rule nombra la regla ofendida (minLength, options, ...).
type TypeValidationError struct {
	Type    string
	Rule    string
	Message string
}

func (e *TypeValidationError) Error() string {
	return fmt.Sprintf("atributo %s: regla %s: %s", e.Type, e.Rule, e.Message)
}

// InUseError bloquea el cambio de tipo de un atributo con valores existentes.
type InUseError struct {
	Entity string
	Count  int
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s: en uso por %d valores existentes", e.Entity, e.Count)
}
