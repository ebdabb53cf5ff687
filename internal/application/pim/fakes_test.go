package pim_test

import (
	"context"
	"sort"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Fakes en memoria del pipeline import/export. Implementan solo los métodos
// que estos casos de uso tocan; el resto viene de la interfaz embebida y
// panicaría si un test lo alcanzara.

type memCategories struct {
	repository.CategoryRepository
	items map[string]entity.Category
}

func newMemCategories() *memCategories {
	return &memCategories{items: map[string]entity.Category{}}
}

func (m *memCategories) Create(c *entity.Category) error {
	m.items[c.ID] = *c
	return nil
}

func (m *memCategories) GetByCompanyAndName(companyID, name string) (*entity.Category, error) {
	for _, c := range m.items {
		if c.CompanyID == companyID && c.Name == name {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memCategories) ListByCompany(companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.items {
		if c.CompanyID == companyID {
			item := c
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memAttributes struct {
	repository.AttributeRepository
	items map[string]entity.Attribute
}

func newMemAttributes() *memAttributes {
	return &memAttributes{items: map[string]entity.Attribute{}}
}

func (m *memAttributes) add(a entity.Attribute) { m.items[a.ID] = a }

func (m *memAttributes) GetByCompanyAndCode(companyID, code string) (*entity.Attribute, error) {
	for _, a := range m.items {
		if a.CompanyID == companyID && a.Code == code {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memAttributes) ListByCompany(companyID string, f repository.AttributeFilter) ([]*entity.Attribute, error) {
	var out []*entity.Attribute
	for _, a := range m.items {
		if a.CompanyID == companyID {
			item := a
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

type memFamilies struct {
	repository.FamilyRepository
	items map[string]entity.Family
}

func newMemFamilies() *memFamilies {
	return &memFamilies{items: map[string]entity.Family{}}
}

func (m *memFamilies) add(f entity.Family) { m.items[f.ID] = f }

func (m *memFamilies) GetByCompanyAndName(companyID, name string) (*entity.Family, error) {
	for _, f := range m.items {
		if f.CompanyID == companyID && f.Name == name {
			out := f
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memFamilies) ListByCompany(companyID string) ([]*entity.Family, error) {
	var out []*entity.Family
	for _, f := range m.items {
		if f.CompanyID == companyID {
			item := f
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type memProducts struct {
	repository.ProductRepository
	items map[string]entity.Product
}

func newMemProducts() *memProducts {
	return &memProducts{items: map[string]entity.Product{}}
}

func (m *memProducts) Create(p *entity.Product) error {
	m.items[p.ID] = *p
	return nil
}

func (m *memProducts) Update(p *entity.Product) error {
	m.items[p.ID] = *p
	return nil
}

func (m *memProducts) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	for _, p := range m.items {
		if p.CompanyID == companyID && p.SKU == sku {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memProducts) ListByCompany(companyID string, f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.items {
		if p.CompanyID != companyID {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.FamilyID != "" && p.FamilyID != f.FamilyID {
			continue
		}
		item := p
		out = append(out, &item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if f.Offset > 0 {
		if f.Offset >= len(out) {
			return nil, nil
		}
		out = out[f.Offset:]
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *memProducts) all() []entity.Product {
	var out []entity.Product
	for _, p := range m.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type memValues struct {
	repository.AttributeValueRepository
	items map[string]entity.AttributeValue
	attrs *memAttributes
}

func newMemValues(attrs *memAttributes) *memValues {
	return &memValues{items: map[string]entity.AttributeValue{}, attrs: attrs}
}

func (m *memValues) Create(v *entity.AttributeValue) error {
	m.items[v.ID] = *v
	return nil
}

func (m *memValues) DeleteByProduct(productID string) error {
	for id, v := range m.items {
		if v.ProductID == productID {
			delete(m.items, id)
		}
	}
	return nil
}

func (m *memValues) ListByProduct(productID string) ([]*entity.AttributeValue, error) {
	var out []*entity.AttributeValue
	for _, v := range m.items {
		if v.ProductID == productID {
			item := v
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AttributeID < out[j].AttributeID })
	return out, nil
}

func (m *memValues) ListDetailsByProducts(productIDs []string) ([]*repository.AttributeValueDetail, error) {
	wanted := map[string]bool{}
	for _, id := range productIDs {
		wanted[id] = true
	}
	var out []*repository.AttributeValueDetail
	for _, v := range m.items {
		if !wanted[v.ProductID] {
			continue
		}
		d := &repository.AttributeValueDetail{ProductID: v.ProductID, AttributeID: v.AttributeID, Value: v.Value}
		if a, ok := m.attrs.items[v.AttributeID]; ok {
			d.Code = a.Code
			d.Name = a.Name
			d.Type = a.Type
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].Code < out[j].Code
	})
	return out, nil
}

func (m *memValues) ListDistinctAttributeCodes(companyID string, f repository.ProductFilter) ([]string, error) {
	seen := map[string]bool{}
	for _, v := range m.items {
		if a, ok := m.attrs.items[v.AttributeID]; ok && a.CompanyID == companyID {
			seen[a.Code] = true
		}
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out, nil
}

type memCompanies struct {
	repository.CompanyRepository
	items map[string]entity.Company
}

func newMemCompanies() *memCompanies {
	return &memCompanies{items: map[string]entity.Company{}}
}

func (m *memCompanies) add(c entity.Company) { m.items[c.ID] = c }

func (m *memCompanies) GetByID(id string) (*entity.Company, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	out := c
	return &out, nil
}

type fakeTx struct {
	repos ports.TxRepos
}

func (t *fakeTx) Run(_ context.Context, fn func(r ports.TxRepos) error) error {
	return fn(t.repos)
}

type fixture struct {
	categories *memCategories
	attributes *memAttributes
	families   *memFamilies
	products   *memProducts
	values     *memValues
	companies  *memCompanies
	tx         *fakeTx
}

func newFixture() *fixture {
	f := &fixture{
		categories: newMemCategories(),
		attributes: newMemAttributes(),
		families:   newMemFamilies(),
		products:   newMemProducts(),
		companies:  newMemCompanies(),
	}
	f.values = newMemValues(f.attributes)
	f.tx = &fakeTx{repos: ports.TxRepos{
		Categories: f.categories,
		Attributes: f.attributes,
		Families:   f.families,
		Products:   f.products,
		Values:     f.values,
	}}
	return f
}
