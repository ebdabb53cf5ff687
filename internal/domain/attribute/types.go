package attribute

import "github.com/jhoicas/Catalogo-api/internal/domain"

// Type es el conjunto cerrado de tipos de atributo. Todo string externo pasa
// por Parse antes de entrar al dominio, así los switch por tipo nunca ven un
// valor desconocido.
type Type string

const (
	TypeText        Type = "TEXT"
	TypeTextarea    Type = "TEXTAREA"
	TypeNumber      Type = "NUMBER"
	TypePrice       Type = "PRICE"
	TypeMetric      Type = "METRIC"
	TypeBoolean     Type = "BOOLEAN"
	TypeDate        Type = "DATE"
	TypeDatetime    Type = "DATETIME"
	TypeSelect      Type = "SELECT"
	TypeMultiselect Type = "MULTISELECT"
	TypeTable       Type = "TABLE"
)

// All lista los tipos en orden estable (plantilla de importación, docs).
func All() []Type {
	return []Type{
		TypeText, TypeTextarea, TypeNumber, TypePrice, TypeMetric,
		TypeBoolean, TypeDate, TypeDatetime, TypeSelect, TypeMultiselect,
		TypeTable,
	}
}

// Parse valida un string externo contra el conjunto cerrado de tipos.
func Parse(s string) (Type, error) {
	t := Type(s)
	switch t {
	case TypeText, TypeTextarea, TypeNumber, TypePrice, TypeMetric,
		TypeBoolean, TypeDate, TypeDatetime, TypeSelect, TypeMultiselect,
		TypeTable:
		return t, nil
	}
	return "", &domain.TypeValidationError{Type: s, Rule: "type", Message: "tipo de atributo desconocido"}
}

// RequiresOptions indica si el tipo exige una lista de opciones no vacía.
func (t Type) RequiresOptions() bool {
	return t == TypeSelect || t == TypeMultiselect
}
