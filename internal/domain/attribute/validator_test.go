package attribute_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/attribute"
)

func TestParse_TipoDesconocido(t *testing.T) {
	_, err := attribute.Parse("RADIO")
	var tvErr *domain.TypeValidationError
	require.ErrorAs(t, err, &tvErr)
	assert.Equal(t, "type", tvErr.Rule)

	for _, s := range []string{"TEXT", "MULTISELECT", "TABLE", "DATETIME"} {
		typ, err := attribute.Parse(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(typ))
	}
}

func TestValidateDefinition_OpcionesRequeridas(t *testing.T) {
	for _, typ := range []attribute.Type{attribute.TypeSelect, attribute.TypeMultiselect} {
		err := attribute.ValidateDefinition(typ, nil, nil, nil)
		var tvErr *domain.TypeValidationError
		require.ErrorAs(t, err, &tvErr, "tipo %s sin opciones debe fallar", typ)
		assert.Equal(t, "options", tvErr.Rule)

		assert.NoError(t, attribute.ValidateDefinition(typ, []string{"Rojo", "Azul"}, nil, nil))
	}
}

func TestValidateDefinition_TableConfig(t *testing.T) {
	// sin tableConfig se tolera: el usecase aplica el default
	assert.NoError(t, attribute.ValidateDefinition(attribute.TypeTable, nil, nil, nil))

	// tableConfig presente pero sin columnas -> rechazado
	err := attribute.ValidateDefinition(attribute.TypeTable, nil, nil, json.RawMessage(`{"columns":[]}`))
	var tvErr *domain.TypeValidationError
	require.ErrorAs(t, err, &tvErr)
	assert.Equal(t, "tableConfig.columns", tvErr.Rule)

	ok := json.RawMessage(`{"columns":[{"key":"size","label":"Talla"}]}`)
	assert.NoError(t, attribute.ValidateDefinition(attribute.TypeTable, nil, nil, ok))
}

func TestValidateDefinition_ReglasDeTexto(t *testing.T) {
	cases := []struct {
		name  string
		rules string
		rule  string // "" = válido
	}{
		{"enteros válidos", `{"minLength": 2, "maxLength": 80}`, ""},
		{"minLength decimal", `{"minLength": 2.5}`, "minLength"},
		{"maxLength string", `{"maxLength": "80"}`, "maxLength"},
		{"sin reglas", `{}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := attribute.ValidateDefinition(attribute.TypeText, nil, json.RawMessage(tc.rules), nil)
			if tc.rule == "" {
				assert.NoError(t, err)
				return
			}
			var tvErr *domain.TypeValidationError
			require.ErrorAs(t, err, &tvErr)
			assert.Equal(t, tc.rule, tvErr.Rule)
		})
	}
}

func TestValidateDefinition_ReglasNumericas(t *testing.T) {
	for _, typ := range []attribute.Type{attribute.TypeNumber, attribute.TypePrice, attribute.TypeMetric} {
		assert.NoError(t, attribute.ValidateDefinition(typ, nil, json.RawMessage(`{"min": 0, "max": 99.9}`), nil))

		err := attribute.ValidateDefinition(typ, nil, json.RawMessage(`{"min": "cero"}`), nil)
		var tvErr *domain.TypeValidationError
		require.ErrorAs(t, err, &tvErr, "tipo %s", typ)
		assert.Equal(t, "min", tvErr.Rule)
	}
}

func TestValidateDefinition_ReglasDeFecha(t *testing.T) {
	assert.NoError(t, attribute.ValidateDefinition(attribute.TypeDate, nil,
		json.RawMessage(`{"minDate": "2024-01-01", "maxDate": "2025-12-31T23:59:59Z"}`), nil))

	err := attribute.ValidateDefinition(attribute.TypeDatetime, nil,
		json.RawMessage(`{"maxDate": "no es fecha"}`), nil)
	var tvErr *domain.TypeValidationError
	require.ErrorAs(t, err, &tvErr)
	assert.Equal(t, "maxDate", tvErr.Rule)
}

func TestCoerceValue_PorTipo(t *testing.T) {
	cases := []struct {
		name string
		typ  attribute.Type
		raw  string
		want string
	}{
		{"number float", attribute.TypeNumber, "123.45", "123.45"},
		{"boolean true", attribute.TypeBoolean, "TRUE", "true"},
		{"boolean 1", attribute.TypeBoolean, "1", "true"},
		{"boolean otro", attribute.TypeBoolean, "yes", "false"},
		{"multiselect json", attribute.TypeMultiselect, `["Option 1","Option 2"]`, `["Option 1","Option 2"]`},
		{"select fallback crudo", attribute.TypeSelect, "Option 1", `"Option 1"`},
		{"texto crudo", attribute.TypeText, "hola", `"hola"`},
		{"price como string", attribute.TypePrice, "19.99", `"19.99"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := attribute.CoerceValue(tc.typ, tc.raw)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(got))
		})
	}
}

func TestCoerceValue_NumeroInvalido(t *testing.T) {
	_, err := attribute.CoerceValue(attribute.TypeNumber, "abc")
	var tvErr *domain.TypeValidationError
	require.ErrorAs(t, err, &tvErr)
	assert.Equal(t, "number", tvErr.Rule)
}

func TestIsEmptyValue(t *testing.T) {
	assert.True(t, attribute.IsEmptyValue(nil))
	assert.True(t, attribute.IsEmptyValue(json.RawMessage(`null`)))
	assert.True(t, attribute.IsEmptyValue(json.RawMessage(`""`)))
	assert.True(t, attribute.IsEmptyValue(json.RawMessage(`[]`)))
	assert.False(t, attribute.IsEmptyValue(json.RawMessage(`0`)))
	assert.False(t, attribute.IsEmptyValue(json.RawMessage(`false`)))
	assert.False(t, attribute.IsEmptyValue(json.RawMessage(`"x"`)))
}
