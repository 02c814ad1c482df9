package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/inventory"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, sku, description, unit_price, cost_price, quantity_in_stock,
	minimum_stock_level, maximum_stock_level, category_id, supplier_id, barcode, image_url,
	status, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.SKU, p.Description, p.UnitPrice, p.CostPrice, p.QuantityInStock,
		p.MinimumStockLevel, p.MaximumStockLevel, p.CategoryID, p.SupplierID, p.Barcode,
		p.ImageURL, p.Status, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeError("insert product", err)
	}
	return nil
}

func scanProduct(row pgx.Row, p *entity.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Description, &p.UnitPrice, &p.CostPrice, &p.QuantityInStock,
		&p.MinimumStockLevel, &p.MaximumStockLevel, &p.CategoryID, &p.SupplierID, &p.Barcode,
		&p.ImageURL, &p.Status, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// GetBySKU obtiene un producto por SKU.
func (r *ProductRepo) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	var p entity.Product
	if err := scanProduct(r.q.QueryRow(ctx, query, sku), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// Update actualiza un producto existente. El SKU no se modifica.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, description = $3, unit_price = $4, cost_price = $5,
			quantity_in_stock = $6, minimum_stock_level = $7, maximum_stock_level = $8,
			category_id = $9, supplier_id = $10, barcode = $11, image_url = $12,
			status = $13, updated_at = $14
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Description, p.UnitPrice, p.CostPrice, p.QuantityInStock,
		p.MinimumStockLevel, p.MaximumStockLevel, p.CategoryID, p.SupplierID,
		p.Barcode, p.ImageURL, p.Status, p.UpdatedAt,
	)
	if err != nil {
		return writeError("update product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos con nombres de categoría y proveedor expandidos
// (LEFT JOIN). Filtros de igualdad opcionales por status y category_id.
func (r *ProductRepo) List(ctx context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.name, p.sku, p.description, p.unit_price, p.cost_price, p.quantity_in_stock,
			p.minimum_stock_level, p.maximum_stock_level, p.category_id, p.supplier_id, p.barcode,
			p.image_url, p.status, p.created_at, p.updated_at, c.name, s.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE ($1 = '' OR p.status = $1)
		  AND ($2 = '' OR p.category_id = $2::uuid)
		ORDER BY p.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Status, f.CategoryID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.SKU, &p.Description, &p.UnitPrice, &p.CostPrice, &p.QuantityInStock,
			&p.MinimumStockLevel, &p.MaximumStockLevel, &p.CategoryID, &p.SupplierID, &p.Barcode,
			&p.ImageURL, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.CategoryName, &p.SupplierName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Count cuenta el total de productos.
func (r *ProductRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

// StockSnapshot proyecta solo las columnas que usan las métricas del
// dashboard: cantidad, mínimo y costo de cada producto.
func (r *ProductRepo) StockSnapshot(ctx context.Context) ([]inventory.ProductStock, error) {
	rows, err := r.q.Query(ctx,
		`SELECT quantity_in_stock, minimum_stock_level, cost_price FROM products`)
	if err != nil {
		return nil, fmt.Errorf("stock snapshot: %w", err)
	}
	defer rows.Close()
	var snapshot []inventory.ProductStock
	for rows.Next() {
		var ps inventory.ProductStock
		if err := rows.Scan(&ps.QuantityInStock, &ps.MinimumStockLevel, &ps.CostPrice); err != nil {
			return nil, fmt.Errorf("scan stock snapshot: %w", err)
		}
		snapshot = append(snapshot, ps)
	}
	return snapshot, rows.Err()
}

// Delete elimina un producto. Un ID inexistente retorna ErrNotFound.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return writeError("delete product", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
