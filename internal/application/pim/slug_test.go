package pim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Catalogo-api/internal/application/pim"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Calzado Deportivo", "calzado_deportivo"},
		{"Électronique Été", "electronique_ete"},
		{"Niños & Bebés", "ninos___bebes"},
		{"  rodeado  ", "rodeado"},
		{"UPPER", "upper"},
		{"ya_es_slug", "ya_es_slug"},
		{"123 números", "123_numeros"},
		{"", ""},
		{"---", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pim.Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
