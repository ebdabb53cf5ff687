package attribute

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// TableColumn es una columna de un atributo TABLE.
type TableColumn struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type,omitempty"`
}

// TableConfig es la configuración estructural de un atributo TABLE.
type TableConfig struct {
	Columns []TableColumn `json:"columns"`
}

// DefaultTableConfig es la configuración aplicada cuando un atributo TABLE
// llega sin tableConfig (una sola columna "value").
func DefaultTableConfig() json.RawMessage {
	cfg := TableConfig{Columns: []TableColumn{{Key: "value", Label: "Value"}}}
	b, _ := json.Marshal(cfg)
	return b
}

// Formatos de fecha aceptados en reglas minDate/maxDate.
var dateLayouts = []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"}

// ValidateDefinition aplica la validación estructural por tipo antes de
// persistir una definición de atributo. Las violaciones retornan
// *domain.TypeValidationError nombrando la regla.
func ValidateDefinition(t Type, options []string, rules json.RawMessage, tableConfig json.RawMessage) error {
	if t.RequiresOptions() && len(options) == 0 {
		return &domain.TypeValidationError{
			Type: string(t), Rule: "options",
			Message: fmt.Sprintf("el tipo %s requiere una lista de opciones no vacía", t),
		}
	}

	if t == TypeTable && len(tableConfig) > 0 && !isJSONNull(tableConfig) {
		var cfg TableConfig
		if err := json.Unmarshal(tableConfig, &cfg); err != nil {
			return &domain.TypeValidationError{Type: string(t), Rule: "tableConfig", Message: "tableConfig debe ser un objeto JSON"}
		}
		if len(cfg.Columns) == 0 {
			return &domain.TypeValidationError{Type: string(t), Rule: "tableConfig.columns", Message: "un atributo TABLE debe definir al menos una columna"}
		}
	}

	if len(rules) == 0 || isJSONNull(rules) {
		return nil
	}
	var bag map[string]json.RawMessage
	if err := json.Unmarshal(rules, &bag); err != nil {
		return &domain.TypeValidationError{Type: string(t), Rule: "validationRules", Message: "validationRules debe ser un objeto JSON"}
	}

	switch t {
	case TypeText, TypeTextarea:
		for _, rule := range []string{"minLength", "maxLength"} {
			if raw, ok := bag[rule]; ok {
				if err := mustInteger(t, rule, raw); err != nil {
					return err
				}
			}
		}
	case TypeNumber, TypePrice, TypeMetric:
		for _, rule := range []string{"min", "max"} {
			if raw, ok := bag[rule]; ok {
				if err := mustNumber(t, rule, raw); err != nil {
					return err
				}
			}
		}
	case TypeDate, TypeDatetime:
		for _, rule := range []string{"minDate", "maxDate"} {
			if raw, ok := bag[rule]; ok {
				if err := mustDate(t, rule, raw); err != nil {
					return err
				}
			}
		}
	case TypeBoolean, TypeSelect, TypeMultiselect, TypeTable:
		// sin reglas numéricas/fecha; la bolsa se acepta tal cual
	}
	return nil
}

func mustInteger(t Type, rule string, raw json.RawMessage) error {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return &domain.TypeValidationError{Type: string(t), Rule: rule, Message: rule + " debe ser un entero"}
	}
	if _, err := n.Int64(); err != nil {
		return &domain.TypeValidationError{Type: string(t), Rule: rule, Message: rule + " debe ser un entero"}
	}
	return nil
}

func mustNumber(t Type, rule string, raw json.RawMessage) error {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return &domain.TypeValidationError{Type: string(t), Rule: rule, Message: rule + " debe ser numérico"}
	}
	if _, err := n.Float64(); err != nil {
		return &domain.TypeValidationError{Type: string(t), Rule: rule, Message: rule + " debe ser numérico"}
	}
	return nil
}

func mustDate(t Type, rule string, raw json.RawMessage) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return &domain.TypeValidationError{Type: string(t), Rule: rule, Message: rule + " debe ser una fecha válida"}
	}
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return nil
		}
	}
	return &domain.TypeValidationError{Type: string(t), Rule: rule, Message: rule + " debe ser una fecha válida"}
}

// CoerceValue convierte el valor crudo de una celda CSV al JSON tipado que se
// persiste como AttributeValue.Value, según el tipo del atributo.
func CoerceValue(t Type, raw string) (json.RawMessage, error) {
	switch t {
	case TypeNumber:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &domain.TypeValidationError{Type: string(t), Rule: "number", Message: fmt.Sprintf("%q no es un número", raw)}
		}
		return json.Marshal(f)
	case TypeBoolean:
		v := strings.EqualFold(raw, "true") || raw == "1"
		return json.Marshal(v)
	case TypeSelect, TypeMultiselect:
		trimmed := strings.TrimSpace(raw)
		if json.Valid([]byte(trimmed)) && trimmed != "" {
			return json.RawMessage(trimmed), nil
		}
		// fallback: el valor crudo como string JSON
		return json.Marshal(raw)
	case TypeText, TypeTextarea, TypePrice, TypeMetric, TypeDate, TypeDatetime, TypeTable:
		return json.Marshal(raw)
	}
	return nil, &domain.TypeValidationError{Type: string(t), Rule: "type", Message: "tipo de atributo desconocido"}
}

// IsEmptyValue indica si un valor JSON cuenta como "sin valor" para el
// cálculo de completitud ("", null, [], {} o vacío).
func IsEmptyValue(v json.RawMessage) bool {
	s := bytes.TrimSpace(v)
	switch string(s) {
	case "", "null", `""`, "[]", "{}":
		return true
	}
	return false
}

func isJSONNull(v json.RawMessage) bool {
	return string(bytes.TrimSpace(v)) == "null"
}
