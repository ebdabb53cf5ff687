package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.AttributeValueRepository = (*AttributeValueRepo)(nil)

// AttributeValueRepo implementación del puerto AttributeValueRepository sobre PostgreSQL (usable con pool o tx).
// Value se almacena como JSONB.
type AttributeValueRepo struct {
	q Querier
}

// NewAttributeValueRepository construye el adaptador de persistencia para valores de atributo. Pasar pool o tx (Querier).
func NewAttributeValueRepository(q Querier) *AttributeValueRepo {
	return &AttributeValueRepo{q: q}
}

// Create persiste un valor de atributo.
func (r *AttributeValueRepo) Create(value *entity.AttributeValue) error {
	query := `
		INSERT INTO attribute_values (id, product_id, attribute_id, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		value.ID, value.ProductID, value.AttributeID, value.Value, value.CreatedAt, value.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert attribute value: %w", err)
	}
	return nil
}

// DeleteByProduct elimina el set completo de valores de un producto.
func (r *AttributeValueRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM attribute_values WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete attribute values: %w", err)
	}
	return nil
}

// ListByProduct lista los valores crudos de un producto.
func (r *AttributeValueRepo) ListByProduct(productID string) ([]*entity.AttributeValue, error) {
	query := `
		SELECT id, product_id, attribute_id, value, created_at, updated_at
		FROM attribute_values WHERE product_id = $1`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list attribute values: %w", err)
	}
	defer rows.Close()

	var list []*entity.AttributeValue
	for rows.Next() {
		var v entity.AttributeValue
		if err := rows.Scan(&v.ID, &v.ProductID, &v.AttributeID, &v.Value, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan attribute value: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}

// ListDetailsByProducts lista valores con su atributo resuelto para un lote de
// productos (export, completitud, fichas).
func (r *AttributeValueRepo) ListDetailsByProducts(productIDs []string) ([]*repository.AttributeValueDetail, error) {
	query := `
		SELECT v.product_id, v.attribute_id, a.code, a.name, a.type, v.value
		FROM attribute_values v
		JOIN attributes a ON a.id = v.attribute_id
		WHERE v.product_id = ANY($1)
		ORDER BY v.product_id, a.code`
	rows, err := r.q.Query(context.Background(), query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list attribute value details: %w", err)
	}
	defer rows.Close()

	var list []*repository.AttributeValueDetail
	for rows.Next() {
		var d repository.AttributeValueDetail
		if err := rows.Scan(&d.ProductID, &d.AttributeID, &d.Code, &d.Name, &d.Type, &d.Value); err != nil {
			return nil, fmt.Errorf("scan attribute value detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// CountByAttribute cuenta los valores existentes de un atributo (bloqueo de
// type-change y de delete).
func (r *AttributeValueRepo) CountByAttribute(attributeID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM attribute_values WHERE attribute_id = $1`, attributeID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count attribute values: %w", err)
	}
	return count, nil
}

// ListDistinctAttributeCodes retorna los códigos de atributo presentes entre
// los productos que matchean el filtro (esquema del export derivado de los datos).
func (r *AttributeValueRepo) ListDistinctAttributeCodes(companyID string, f repository.ProductFilter) ([]string, error) {
	inner, args := productFilterQuery(`SELECT id FROM products`, companyID, f)
	query := `
		SELECT DISTINCT a.code
		FROM attribute_values v
		JOIN attributes a ON a.id = v.attribute_id
		WHERE v.product_id IN (` + inner + `)
		ORDER BY a.code`
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list distinct attribute codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan attribute code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
