// Package completeness deriva el porcentaje de completitud de un producto:
// proporción de atributos requeridos por su familia que tienen valor no vacío.
package completeness

import (
	"encoding/json"
	"math"

	"github.com/jhoicas/Catalogo-api/internal/domain/attribute"
)

// Compute calcula round(100 * llenos / requeridos) sobre el conjunto de
// atributos requeridos. Sin requeridos, el producto está 100% completo.
// El resultado está siempre en [0, 100].
func Compute(requiredAttributeIDs []string, values map[string]json.RawMessage) int {
	if len(requiredAttributeIDs) == 0 {
		return 100
	}
	// deduplicar requeridos: una familia mal configurada no debe inflar el denominador
	required := make(map[string]struct{}, len(requiredAttributeIDs))
	for _, id := range requiredAttributeIDs {
		required[id] = struct{}{}
	}
	filled := 0
	for id := range required {
		if v, ok := values[id]; ok && !attribute.IsEmptyValue(v) {
			filled++
		}
	}
	return int(math.Round(float64(filled) / float64(len(required)) * 100))
}
