package usecase_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/attribute"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

func newAttributeUC(f *fixture) *usecase.AttributeUseCase {
	return usecase.NewAttributeUseCase(f.attributes, f.values, f.families)
}

func mustCreateAttribute(t *testing.T, uc *usecase.AttributeUseCase, in dto.CreateAttributeRequest) dto.AttributeResponse {
	t.Helper()
	resp, err := uc.Create(testCompany, in)
	require.NoError(t, err)
	require.NotNil(t, resp)
	return *resp
}

func TestAttributeCreate_TipoInvalido(t *testing.T) {
	f := newFixture()
	uc := newAttributeUC(f)

	_, err := uc.Create(testCompany, dto.CreateAttributeRequest{Code: "color", Name: "Color", Type: "RAINBOW"})
	var tve *domain.TypeValidationError
	assert.ErrorAs(t, err, &tve)
}

func TestAttributeCreate_SelectSinOpciones(t *testing.T) {
	f := newFixture()
	uc := newAttributeUC(f)

	_, err := uc.Create(testCompany, dto.CreateAttributeRequest{Code: "color", Name: "Color", Type: string(attribute.TypeSelect)})
	var tve *domain.TypeValidationError
	assert.ErrorAs(t, err, &tve, "SELECT sin options debe fallar la validación de definición")
}

func TestAttributeCreate_TableRecibeConfigDefault(t *testing.T) {
	f := newFixture()
	uc := newAttributeUC(f)

	resp := mustCreateAttribute(t, uc, dto.CreateAttributeRequest{Code: "specs", Name: "Especificaciones", Type: string(attribute.TypeTable)})
	assert.NotEmpty(t, resp.TableConfig, "TABLE sin tableConfig toma el default de una columna")
}

func TestAttributeUpdate_CambioDeTipoConValoresBloqueado(t *testing.T) {
	f := newFixture()
	uc := newAttributeUC(f)
	attr := mustCreateAttribute(t, uc, dto.CreateAttributeRequest{Code: "weight", Name: "Peso", Type: string(attribute.TypeNumber)})

	now := time.Now()
	require.NoError(t, f.values.Create(&entity.AttributeValue{
		ID: "v1", ProductID: "p1", AttributeID: attr.ID,
		Value: json.RawMessage(`12.5`), CreatedAt: now, UpdatedAt: now,
	}))

	_, err := uc.Update(testCompany, attr.ID, dto.UpdateAttributeRequest{Type: strPtr(string(attribute.TypeText))})
	var inUse *domain.InUseError
	require.ErrorAs(t, err, &inUse)
	assert.Equal(t, 1, inUse.Count)

	got, _ := f.attributes.GetByID(attr.ID)
	assert.Equal(t, string(attribute.TypeNumber), got.Type, "el tipo no debe cambiar")
}

func TestAttributeUpdate_CambioDeTipoSinValores(t *testing.T) {
	f := newFixture()
	uc := newAttributeUC(f)
	attr := mustCreateAttribute(t, uc, dto.CreateAttributeRequest{Code: "weight", Name: "Peso", Type: string(attribute.TypeNumber)})

	resp, err := uc.Update(testCompany, attr.ID, dto.UpdateAttributeRequest{Type: strPtr(string(attribute.TypeText))})
	require.NoError(t, err)
	assert.Equal(t, string(attribute.TypeText), resp.Type)
}

func TestAttributeDelete_BloqueadoConConteos(t *testing.T) {
	f := newFixture()
	uc := newAttributeUC(f)
	attr := mustCreateAttribute(t, uc, dto.CreateAttributeRequest{Code: "weight", Name: "Peso", Type: string(attribute.TypeNumber)})

	now := time.Now()
	require.NoError(t, f.values.Create(&entity.AttributeValue{
		ID: "v1", ProductID: "p1", AttributeID: attr.ID, Value: json.RawMessage(`1`), CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, f.families.CreateFamilyAttribute(&entity.FamilyAttribute{
		ID: "fa1", FamilyID: "fam1", AttributeID: attr.ID, IsRequired: true, Order: 1, CreatedAt: now,
	}))

	err := uc.Delete(testCompany, attr.ID)
	var dep *domain.DependencyError
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, 1, dep.Counts["products"])
	assert.Equal(t, 1, dep.Counts["families"])
}

func TestAttributeList_FiltraPorTipo(t *testing.T) {
	f := newFixture()
	uc := newAttributeUC(f)
	mustCreateAttribute(t, uc, dto.CreateAttributeRequest{Code: "weight", Name: "Peso", Type: string(attribute.TypeNumber)})
	mustCreateAttribute(t, uc, dto.CreateAttributeRequest{Code: "title", Name: "Título", Type: string(attribute.TypeText)})

	out, err := uc.List(testCompany, repository.AttributeFilter{Type: string(attribute.TypeNumber)})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "weight", out[0].Code)
}

func TestAttributeGet_IncluyeUsage(t *testing.T) {
	f := newFixture()
	uc := newAttributeUC(f)
	attr := mustCreateAttribute(t, uc, dto.CreateAttributeRequest{Code: "weight", Name: "Peso", Type: string(attribute.TypeNumber)})

	now := time.Now()
	require.NoError(t, f.values.Create(&entity.AttributeValue{
		ID: "v1", ProductID: "p1", AttributeID: attr.ID, Value: json.RawMessage(`1`), CreatedAt: now, UpdatedAt: now,
	}))

	got, err := uc.Get(testCompany, attr.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.Usage)
	assert.Equal(t, 1, got.Usage.ProductCount)
	assert.Equal(t, 0, got.Usage.FamilyCount)
}
