package usecase_test

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de casos de uso. Guardan y devuelven
// copias: mutar lo retornado por un Get no toca el estado hasta el Update.
// ──────────────────────────────────────────────────────────────────────────────

type memCategories struct {
	items map[string]entity.Category
}

func newMemCategories() *memCategories {
	return &memCategories{items: map[string]entity.Category{}}
}

func (m *memCategories) Create(c *entity.Category) error {
	m.items[c.ID] = *c
	return nil
}

func (m *memCategories) GetByID(id string) (*entity.Category, error) {
	c, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	out := c
	return &out, nil
}

func (m *memCategories) GetByCompanyAndCode(companyID, code string) (*entity.Category, error) {
	for _, c := range m.items {
		if c.CompanyID == companyID && c.Code == code {
			out := c
			return &out, nil
		}
	}
	return nil, nil
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

func (m *memCategories) Update(c *entity.Category) error {
	m.items[c.ID] = *c
	return nil
}

func (m *memCategories) UpdateLevel(id string, level int) error {
	c := m.items[id]
	c.Level = level
	m.items[id] = c
	return nil
}

func (m *memCategories) ListByCompany(companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.items {
		if c.CompanyID == companyID {
			item :=c
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Level != out[j].Level {
			return out[i].Level < out[j].Level
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (m *memCategories) ListByParent(parentID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.items {
		if c.ParentID == parentID {
			item :=c
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memCategories) CountByParent(parentID string) (int, error) {
	n := 0
	for _, c := range m.items {
		if c.ParentID == parentID {
			n++
		}
	}
	return n, nil
}

func (m *memCategories) Delete(id string) error {
	delete(m.items, id)
	return nil
}

type memProducts struct {
	items map[string]entity.Product
}

func newMemProducts() *memProducts {
	return &memProducts{items: map[string]entity.Product{}}
}

func (m *memProducts) Create(p *entity.Product) error {
	m.items[p.ID] = *p
	return nil
}

func (m *memProducts) GetByID(id string) (*entity.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	out := p
	return &out, nil
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

func (m *memProducts) Update(p *entity.Product) error {
	m.items[p.ID] = *p
	return nil
}

func (m *memProducts) UpdateCompleteness(productID string, completeness int) error {
	p := m.items[productID]
	p.Completeness = completeness
	m.items[productID] = p
	return nil
}

func (m *memProducts) matches(p entity.Product, companyID string, f repository.ProductFilter) bool {
	if p.CompanyID != companyID {
		return false
	}
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.FamilyID != "" && p.FamilyID != f.FamilyID {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Search != "" {
		s := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), s) &&
			!strings.Contains(strings.ToLower(p.SKU), s) &&
			!strings.Contains(strings.ToLower(p.Description), s) {
			return false
		}
	}
	return true
}

func (m *memProducts) ListByCompany(companyID string, f repository.ProductFilter) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.items {
		if m.matches(p, companyID, f) {
			item :=p
			out = append(out, &item)
		}
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

func (m *memProducts) CountByCompany(companyID string, f repository.ProductFilter) (int, error) {
	n := 0
	for _, p := range m.items {
		if m.matches(p, companyID, f) {
			n++
		}
	}
	return n, nil
}

func (m *memProducts) CountByCategory(categoryID string) (int, error) {
	n := 0
	for _, p := range m.items {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (m *memProducts) CountByFamily(familyID string) (int, error) {
	n := 0
	for _, p := range m.items {
		if p.FamilyID == familyID {
			n++
		}
	}
	return n, nil
}

func (m *memProducts) BulkUpdate(companyID string, ids []string, patch repository.ProductBulkPatch) (int, error) {
	n := 0
	for _, id := range ids {
		p, ok := m.items[id]
		if !ok || p.CompanyID != companyID {
			continue
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.CategoryID != nil {
			p.CategoryID = *patch.CategoryID
		}
		if patch.FamilyID != nil {
			p.FamilyID = *patch.FamilyID
		}
		m.items[id] = p
		n++
	}
	return n, nil
}

func (m *memProducts) BulkDelete(companyID string, ids []string) (int, error) {
	n := 0
	for _, id := range ids {
		p, ok := m.items[id]
		if !ok || p.CompanyID != companyID {
			continue
		}
		delete(m.items, id)
		n++
	}
	return n, nil
}

func (m *memProducts) Delete(id string) error {
	delete(m.items, id)
	return nil
}

type memAttributes struct {
	items map[string]entity.Attribute
}

func newMemAttributes() *memAttributes {
	return &memAttributes{items: map[string]entity.Attribute{}}
}

func (m *memAttributes) Create(a *entity.Attribute) error {
	m.items[a.ID] = *a
	return nil
}

func (m *memAttributes) GetByID(id string) (*entity.Attribute, error) {
	a, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	out := a
	return &out, nil
}

func (m *memAttributes) GetByCompanyAndCode(companyID, code string) (*entity.Attribute, error) {
	for _, a := range m.items {
		if a.CompanyID == companyID && a.Code == code {
			out := a
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memAttributes) Update(a *entity.Attribute) error {
	m.items[a.ID] = *a
	return nil
}

func (m *memAttributes) ListByCompany(companyID string, f repository.AttributeFilter) ([]*entity.Attribute, error) {
	var out []*entity.Attribute
	for _, a := range m.items {
		if a.CompanyID != companyID {
			continue
		}
		if f.Type != "" && a.Type != f.Type {
			continue
		}
		if f.SectionID != "" && a.SectionID != f.SectionID {
			continue
		}
		item :=a
		out = append(out, &item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (m *memAttributes) CountBySection(sectionID string) (int, error) {
	n := 0
	for _, a := range m.items {
		if a.SectionID == sectionID {
			n++
		}
	}
	return n, nil
}

func (m *memAttributes) Delete(id string) error {
	delete(m.items, id)
	return nil
}

type memValues struct {
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
			item :=v
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
		d := &repository.AttributeValueDetail{
			ProductID:   v.ProductID,
			AttributeID: v.AttributeID,
			Value:       v.Value,
		}
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

func (m *memValues) CountByAttribute(attributeID string) (int, error) {
	n := 0
	for _, v := range m.items {
		if v.AttributeID == attributeID {
			n++
		}
	}
	return n, nil
}

func (m *memValues) ListDistinctAttributeCodes(companyID string, f repository.ProductFilter) ([]string, error) {
	seen := map[string]bool{}
	for _, v := range m.items {
		a, ok := m.attrs.items[v.AttributeID]
		if !ok || a.CompanyID != companyID {
			continue
		}
		seen[a.Code] = true
	}
	out := make([]string, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Strings(out)
	return out, nil
}

type memFamilies struct {
	items  map[string]entity.Family
	groups map[string]entity.AttributeGroup
	links  map[string]entity.FamilyAttribute
}

func newMemFamilies() *memFamilies {
	return &memFamilies{
		items:  map[string]entity.Family{},
		groups: map[string]entity.AttributeGroup{},
		links:  map[string]entity.FamilyAttribute{},
	}
}

func (m *memFamilies) Create(f *entity.Family) error {
	m.items[f.ID] = *f
	return nil
}

func (m *memFamilies) GetByID(id string) (*entity.Family, error) {
	f, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	out := f
	return &out, nil
}

func (m *memFamilies) GetByCompanyAndCode(companyID, code string) (*entity.Family, error) {
	for _, f := range m.items {
		if f.CompanyID == companyID && f.Code == code {
			out := f
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memFamilies) GetByCompanyAndName(companyID, name string) (*entity.Family, error) {
	for _, f := range m.items {
		if f.CompanyID == companyID && f.Name == name {
			out := f
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memFamilies) Update(f *entity.Family) error {
	m.items[f.ID] = *f
	return nil
}

func (m *memFamilies) ListByCompany(companyID string) ([]*entity.Family, error) {
	var out []*entity.Family
	for _, f := range m.items {
		if f.CompanyID == companyID {
			item :=f
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memFamilies) Delete(id string) error {
	delete(m.items, id)
	return nil
}

func (m *memFamilies) CreateGroup(g *entity.AttributeGroup) error {
	m.groups[g.ID] = *g
	return nil
}

func (m *memFamilies) DeleteGroupsByFamily(familyID string) error {
	for id, g := range m.groups {
		if g.FamilyID == familyID {
			delete(m.groups, id)
		}
	}
	return nil
}

func (m *memFamilies) ListGroupsByFamily(familyID string) ([]*entity.AttributeGroup, error) {
	var out []*entity.AttributeGroup
	for _, g := range m.groups {
		if g.FamilyID == familyID {
			item :=g
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *memFamilies) CreateFamilyAttribute(fa *entity.FamilyAttribute) error {
	m.links[fa.ID] = *fa
	return nil
}

func (m *memFamilies) DeleteFamilyAttributesByFamily(familyID string) error {
	for id, fa := range m.links {
		if fa.FamilyID == familyID {
			delete(m.links, id)
		}
	}
	return nil
}

func (m *memFamilies) ListFamilyAttributesByFamily(familyID string) ([]*entity.FamilyAttribute, error) {
	var out []*entity.FamilyAttribute
	for _, fa := range m.links {
		if fa.FamilyID == familyID {
			item :=fa
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *memFamilies) CountFamilyAttributesByAttribute(attributeID string) (int, error) {
	n := 0
	for _, fa := range m.links {
		if fa.AttributeID == attributeID {
			n++
		}
	}
	return n, nil
}

func (m *memFamilies) CountFamilyAttributes(familyID string) (int, error) {
	n := 0
	for _, fa := range m.links {
		if fa.FamilyID == familyID {
			n++
		}
	}
	return n, nil
}

type memSections struct {
	items map[string]entity.Section
}

func newMemSections() *memSections {
	return &memSections{items: map[string]entity.Section{}}
}

func (m *memSections) Create(s *entity.Section) error {
	m.items[s.ID] = *s
	return nil
}

func (m *memSections) GetByID(id string) (*entity.Section, error) {
	s, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	out := s
	return &out, nil
}

func (m *memSections) GetByCompanyAndCode(companyID, code string) (*entity.Section, error) {
	for _, s := range m.items {
		if s.CompanyID == companyID && s.Code == code {
			out := s
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memSections) Update(s *entity.Section) error {
	m.items[s.ID] = *s
	return nil
}

func (m *memSections) UpdateOrder(id string, order int) error {
	s := m.items[id]
	s.Order = order
	m.items[id] = s
	return nil
}

func (m *memSections) ListByCompany(companyID string) ([]*entity.Section, error) {
	var out []*entity.Section
	for _, s := range m.items {
		if s.CompanyID == companyID {
			item :=s
			out = append(out, &item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out, nil
}

func (m *memSections) MaxOrder(companyID string) (int, error) {
	max := 0
	for _, s := range m.items {
		if s.CompanyID == companyID && s.Order > max {
			max = s.Order
		}
	}
	return max, nil
}

func (m *memSections) Delete(id string) error {
	delete(m.items, id)
	return nil
}

// fakeTx ejecuta el callback directamente sobre los mismos repos en memoria
// (sin semántica transaccional: los tests verifican estados finales).
type fakeTx struct {
	repos ports.TxRepos
}

func (t *fakeTx) Run(_ context.Context, fn func(r ports.TxRepos) error) error {
	return fn(t.repos)
}

// fixture agrupa los repos en memoria que comparten los tests del paquete.
type fixture struct {
	categories *memCategories
	attributes *memAttributes
	families   *memFamilies
	products   *memProducts
	values     *memValues
	sections   *memSections
	tx         *fakeTx
}

func newFixture() *fixture {
	f := &fixture{
		categories: newMemCategories(),
		attributes: newMemAttributes(),
		families:   newMemFamilies(),
		products:   newMemProducts(),
		sections:   newMemSections(),
	}
	f.values = newMemValues(f.attributes)
	f.tx = &fakeTx{repos: ports.TxRepos{
		Categories: f.categories,
		Attributes: f.attributes,
		Families:   f.families,
		Products:   f.products,
		Values:     f.values,
		Sections:   f.sections,
	}}
	return f
}
