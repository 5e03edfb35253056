package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/holawaleh/e-commerce/internal/domain"
	"github.com/holawaleh/e-commerce/internal/domain/entity"
	"github.com/holawaleh/e-commerce/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, business_id, name, description, sku, category_id, supplier_id,
		cost_price, selling_price, tracking_type, current_quantity, reorder_level,
		reorder_quantity, unit_of_measure, barcode, is_active, created_by, created_at, updated_at`

// ProductRepo implementación de ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo con stock inicial 0.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, business_id, name, description, sku, category_id, supplier_id,
			cost_price, selling_price, tracking_type, current_quantity, reorder_level,
			reorder_quantity, unit_of_measure, barcode, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.BusinessID, product.Name, product.Description, product.SKU,
		product.CategoryID, product.SupplierID, product.CostPrice, product.SellingPrice,
		product.TrackingType, product.CurrentQuantity, product.ReorderLevel,
		product.ReorderQuantity, product.UnitOfMeasure, product.Barcode, product.IsActive,
		nullable(product.CreatedBy), product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto del negocio.
func (r *ProductRepo) GetByID(ctx context.Context, businessID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND business_id = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, id, businessID), "get product")
}

// GetForUpdate obtiene el producto y bloquea su fila (SELECT FOR UPDATE).
// Es el punto de serialización por producto del camino de append: dos
// movimientos concurrentes sobre el mismo producto se encolan aquí.
func (r *ProductRepo) GetForUpdate(ctx context.Context, businessID, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND business_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id, businessID), "get product for update")
}

// GetBySKU obtiene un producto por negocio y SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, businessID, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE business_id = $1 AND sku = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, businessID, sku), "get product by sku")
}

// Update actualiza datos maestros. current_quantity no se toca aquí: lo
// escriben UpdateQuantity (proyector/reconciliación) exclusivamente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET name = $3, description = $4, category_id = $5, supplier_id = $6,
			cost_price = $7, selling_price = $8, tracking_type = $9, reorder_level = $10,
			reorder_quantity = $11, unit_of_measure = $12, barcode = $13, is_active = $14,
			updated_at = $15
		WHERE id = $1 AND business_id = $2`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.BusinessID, product.Name, product.Description,
		product.CategoryID, product.SupplierID, product.CostPrice, product.SellingPrice,
		product.TrackingType, product.ReorderLevel, product.ReorderQuantity,
		product.UnitOfMeasure, product.Barcode, product.IsActive, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateQuantity escribe el cache current_quantity (proyector de saldo y
// reconciliación).
func (r *ProductRepo) UpdateQuantity(ctx context.Context, id string, quantity int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET current_quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update product quantity: %w", err)
	}
	return nil
}

// ListByBusiness lista productos del negocio con paginación.
func (r *ProductRepo) ListByBusiness(ctx context.Context, businessID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products WHERE business_id = $1 ORDER BY name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// ListLowStock productos activos con current_quantity <= reorder_level.
func (r *ProductRepo) ListLowStock(ctx context.Context, businessID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE business_id = $1 AND is_active AND current_quantity <= reorder_level
		ORDER BY current_quantity`
	rows, err := r.q.Query(ctx, query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	return r.scanList(rows)
}

// InventoryValue agrega unidades y valor (a costo y a venta) del inventario activo.
func (r *ProductRepo) InventoryValue(ctx context.Context, businessID string) (*repository.InventoryValue, error) {
	query := `
		SELECT COUNT(*),
			COALESCE(SUM(current_quantity), 0),
			COALESCE(SUM(cost_price * current_quantity), 0),
			COALESCE(SUM(selling_price * current_quantity), 0)
		FROM products WHERE business_id = $1 AND is_active`
	var v repository.InventoryValue
	err := r.q.QueryRow(ctx, query, businessID).Scan(
		&v.TotalProducts, &v.TotalUnits, &v.TotalCostValue, &v.TotalSellingValue,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory value: %w", err)
	}
	return &v, nil
}

// Delete elimina un producto del negocio.
func (r *ProductRepo) Delete(ctx context.Context, businessID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	var p entity.Product
	var createdBy *string
	err := row.Scan(
		&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.SKU, &p.CategoryID, &p.SupplierID,
		&p.CostPrice, &p.SellingPrice, &p.TrackingType, &p.CurrentQuantity, &p.ReorderLevel,
		&p.ReorderQuantity, &p.UnitOfMeasure, &p.Barcode, &p.IsActive, &createdBy,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	return &p, nil
}

func (r *ProductRepo) scanList(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		var createdBy *string
		if err := rows.Scan(
			&p.ID, &p.BusinessID, &p.Name, &p.Description, &p.SKU, &p.CategoryID, &p.SupplierID,
			&p.CostPrice, &p.SellingPrice, &p.TrackingType, &p.CurrentQuantity, &p.ReorderLevel,
			&p.ReorderQuantity, &p.UnitOfMeasure, &p.Barcode, &p.IsActive, &createdBy,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if createdBy != nil {
			p.CreatedBy = *createdBy
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// nullable convierte "" a NULL para columnas con FK opcional.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
