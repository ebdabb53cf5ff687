package repository

import (
	"encoding/json"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// AttributeValueDetail es el modelo de lectura de un valor con su atributo
// resuelto (para export, completitud y fichas de producto).
type AttributeValueDetail struct {
	ProductID   string
	AttributeID string
	Code        string
	Name        string
	Type        string
	Value       json.RawMessage
}

// AttributeValueRepository define el puerto de persistencia para AttributeValue.
type AttributeValueRepository interface {
	Create(value *entity.AttributeValue) error
	// DeleteByProduct borra el set completo de un producto (reemplazo atómico
	// junto con los Create siguientes, dentro de una transacción).
	DeleteByProduct(productID string) error
	ListByProduct(productID string) ([]*entity.AttributeValue, error)
	ListDetailsByProducts(productIDs []string) ([]*AttributeValueDetail, error)
	CountByAttribute(attributeID string) (int, error)
	// ListDistinctAttributeCodes retorna los códigos de atributo presentes entre
	// los productos que matchean el filtro (esquema del export derivado de los
	// datos, no del registro completo).
	ListDistinctAttributeCodes(companyID string, f ProductFilter) ([]string, error)
}
