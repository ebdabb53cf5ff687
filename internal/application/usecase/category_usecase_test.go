package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/usecase"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

const testCompany = "co-1"

func newCategoryUC(f *fixture) *usecase.CategoryUseCase {
	return usecase.NewCategoryUseCase(f.categories, f.products, f.tx)
}

func mustCreateCategory(t *testing.T, uc *usecase.CategoryUseCase, code, name, parentID string) dto.CategoryResponse {
	t.Helper()
	resp, err := uc.Create(testCompany, dto.CreateCategoryRequest{Code: code, Name: name, ParentID: parentID})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return *resp
}

func strPtr(s string) *string { return &s }

func TestCategoryCreate_NivelDerivadoDelPadre(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)

	root := mustCreateCategory(t, uc, "electronics", "Electrónica", "")
	assert.Equal(t, 1, root.Level, "una raíz siempre es nivel 1")

	child := mustCreateCategory(t, uc, "phones", "Teléfonos", root.ID)
	assert.Equal(t, 2, child.Level)

	grandchild := mustCreateCategory(t, uc, "smartphones", "Smartphones", child.ID)
	assert.Equal(t, 3, grandchild.Level)
}

func TestCategoryCreate_CodigoDuplicado(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)
	mustCreateCategory(t, uc, "electronics", "Electrónica", "")

	_, err := uc.Create(testCompany, dto.CreateCategoryRequest{Code: "electronics", Name: "Otra"})
	var uniq *domain.UniquenessError
	require.ErrorAs(t, err, &uniq)
	assert.Equal(t, "category", uniq.Entity)
	assert.Equal(t, "code", uniq.Field)
}

func TestCategoryUpdate_MoverRecascadeaNiveles(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)
	root := mustCreateCategory(t, uc, "root", "Raíz", "")
	a := mustCreateCategory(t, uc, "a", "A", root.ID)
	b := mustCreateCategory(t, uc, "b", "B", a.ID)
	c := mustCreateCategory(t, uc, "c", "C", b.ID)

	// mover A a raíz: A=1, B=2, C=3
	resp, err := uc.Update(context.Background(), testCompany, a.ID, dto.UpdateCategoryRequest{ParentID: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Level)

	got, err := f.categories.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Level, "el nivel del hijo debe recascadearse")
	got, err = f.categories.GetByID(c.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Level, "la cascada debe llegar a todo el subtree")
}

func TestCategoryUpdate_CicloRechazadoSinCambios(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)
	root := mustCreateCategory(t, uc, "root", "Raíz", "")
	child := mustCreateCategory(t, uc, "child", "Hija", root.ID)
	grandchild := mustCreateCategory(t, uc, "grandchild", "Nieta", child.ID)

	// colgar la raíz bajo su nieta formaría un ciclo
	_, err := uc.Update(context.Background(), testCompany, root.ID, dto.UpdateCategoryRequest{ParentID: &grandchild.ID})
	var cycle *domain.CycleError
	require.ErrorAs(t, err, &cycle)

	// el árbol queda intacto: padres y niveles sin tocar
	got, _ := f.categories.GetByID(root.ID)
	assert.Empty(t, got.ParentID)
	assert.Equal(t, 1, got.Level)
	got, _ = f.categories.GetByID(child.ID)
	assert.Equal(t, root.ID, got.ParentID)
	assert.Equal(t, 2, got.Level)
	got, _ = f.categories.GetByID(grandchild.ID)
	assert.Equal(t, 3, got.Level)
}

func TestCategoryUpdate_AutoPadreRechazado(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)
	root := mustCreateCategory(t, uc, "root", "Raíz", "")

	_, err := uc.Update(context.Background(), testCompany, root.ID, dto.UpdateCategoryRequest{ParentID: &root.ID})
	var cycle *domain.CycleError
	assert.ErrorAs(t, err, &cycle, "una categoría no puede ser su propio padre")
}

func TestCategoryDelete_BloqueadoPorDependencias(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)
	root := mustCreateCategory(t, uc, "root", "Raíz", "")
	mustCreateCategory(t, uc, "child", "Hija", root.ID)

	err := uc.Delete(testCompany, root.ID)
	var dep *domain.DependencyError
	require.ErrorAs(t, err, &dep)
	assert.Equal(t, 1, dep.Counts["children"])

	got, _ := f.categories.GetByID(root.ID)
	assert.NotNil(t, got, "la categoría bloqueada no debe borrarse")
}

func TestCategoryDelete_SinDependencias(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)
	root := mustCreateCategory(t, uc, "root", "Raíz", "")

	require.NoError(t, uc.Delete(testCompany, root.ID))
	got, _ := f.categories.GetByID(root.ID)
	assert.Nil(t, got)
}

func TestCategoryGet_OtraEmpresaEsInvisible(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)
	root := mustCreateCategory(t, uc, "root", "Raíz", "")

	got, err := uc.Get("otra-empresa", root.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "una categoría de otra empresa se trata como inexistente")
}

func TestCategoryList_ArbolArmado(t *testing.T) {
	f := newFixture()
	uc := newCategoryUC(f)
	root := mustCreateCategory(t, uc, "root", "Raíz", "")
	child := mustCreateCategory(t, uc, "child", "Hija", root.ID)

	out, err := uc.List(testCompany)
	require.NoError(t, err)
	assert.Len(t, out.Categories, 2)
	require.Len(t, out.CategoryTree, 1)
	assert.Equal(t, root.ID, out.CategoryTree[0].ID)
	require.Len(t, out.CategoryTree[0].Children, 1)
	assert.Equal(t, child.ID, out.CategoryTree[0].Children[0].ID)
}
