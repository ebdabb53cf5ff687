package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, company_id, COALESCE(sku, ''), name, description, type, status, price, COALESCE(category_id, ''), COALESCE(family_id, ''), completeness, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. SKU vacío se guarda como NULL para no
// chocar con el unique parcial (company_id, sku).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, company_id, sku, name, description, type, status, price, category_id, family_id, completeness, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.CompanyID, nullIfEmpty(product.SKU), product.Name, product.Description,
		product.Type, product.Status, product.Price, nullIfEmpty(product.CategoryID),
		nullIfEmpty(product.FamilyID), product.Completeness, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// GetByCompanyAndSKU obtiene un producto por empresa y SKU (upsert de importación).
func (r *ProductRepo) GetByCompanyAndSKU(companyID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE company_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, companyID, sku), "get product by sku")
}

// Update actualiza los campos estándar y el completeness cacheado.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET sku = $2, name = $3, description = $4, type = $5, status = $6, price = $7, category_id = $8, family_id = $9, completeness = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		product.ID, nullIfEmpty(product.SKU), product.Name, product.Description, product.Type,
		product.Status, product.Price, nullIfEmpty(product.CategoryID), nullIfEmpty(product.FamilyID),
		product.Completeness, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCompleteness reescribe solo el porcentaje cacheado (write-back-on-read).
func (r *ProductRepo) UpdateCompleteness(productID string, completeness int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET completeness = $2 WHERE id = $1`,
		productID, completeness,
	)
	if err != nil {
		return fmt.Errorf("update product completeness: %w", err)
	}
	return nil
}

// ListByCompany lista productos con filtros, orden y paginación. SortBy llega
// ya validado contra la lista blanca del usecase.
func (r *ProductRepo) ListByCompany(companyID string, f repository.ProductFilter) ([]*entity.Product, error) {
	query, args := productFilterQuery(`SELECT `+productColumns+` FROM products`, companyID, f)
	query += fmt.Sprintf(" ORDER BY %s %s", f.SortBy, strings.ToUpper(f.SortOrder))
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Description, &p.Type, &p.Status,
			&p.Price, &p.CategoryID, &p.FamilyID, &p.Completeness, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// CountByCompany cuenta productos con los mismos filtros del listado.
func (r *ProductRepo) CountByCompany(companyID string, f repository.ProductFilter) (int, error) {
	query, args := productFilterQuery(`SELECT COUNT(*) FROM products`, companyID, f)
	var count int
	if err := r.q.QueryRow(context.Background(), query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// CountByCategory cuenta productos de una categoría (bloqueo de delete).
func (r *ProductRepo) CountByCategory(categoryID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by category: %w", err)
	}
	return count, nil
}

// CountByFamily cuenta productos de una familia (bloqueo de delete).
func (r *ProductRepo) CountByFamily(familyID string) (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE family_id = $1`, familyID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count products by family: %w", err)
	}
	return count, nil
}

// BulkUpdate aplica el patch a todos los ids de la empresa; retorna filas afectadas.
func (r *ProductRepo) BulkUpdate(companyID string, ids []string, patch repository.ProductBulkPatch) (int, error) {
	sets := []string{"updated_at = now()"}
	args := []any{companyID, ids}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if patch.CategoryID != nil {
		args = append(args, nullIfEmpty(*patch.CategoryID))
		sets = append(sets, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if patch.FamilyID != nil {
		args = append(args, nullIfEmpty(*patch.FamilyID))
		sets = append(sets, fmt.Sprintf("family_id = $%d", len(args)))
	}
	query := fmt.Sprintf(`UPDATE products SET %s WHERE company_id = $1 AND id = ANY($2)`, strings.Join(sets, ", "))
	cmd, err := r.q.Exec(context.Background(), query, args...)
	if err != nil {
		return 0, fmt.Errorf("bulk update products: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// BulkDelete elimina los ids de la empresa; retorna filas afectadas.
func (r *ProductRepo) BulkDelete(companyID string, ids []string) (int, error) {
	cmd, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE company_id = $1 AND id = ANY($2)`, companyID, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete products: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.CompanyID, &p.SKU, &p.Name, &p.Description, &p.Type, &p.Status,
		&p.Price, &p.CategoryID, &p.FamilyID, &p.Completeness, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// productFilterQuery arma el WHERE compartido entre listado y conteo.
func productFilterQuery(base, companyID string, f repository.ProductFilter) (string, []any) {
	query := base + ` WHERE company_id = $1`
	args := []any{companyID}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d OR sku ILIKE $%d)", n, n, n)
	}
	if f.CategoryID != "" {
		args = append(args, f.CategoryID)
		query += fmt.Sprintf(" AND category_id = $%d", len(args))
	}
	if f.FamilyID != "" {
		args = append(args, f.FamilyID)
		query += fmt.Sprintf(" AND family_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	return query, args
}
