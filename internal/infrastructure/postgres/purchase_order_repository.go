package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre PostgreSQL.
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador de persistencia para órdenes de compra.
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const orderColumns = `id, order_number, supplier_id, status, order_date,
	expected_delivery_date, total_amount, notes, created_at, updated_at`

// Create persiste una orden nueva. Un order_number repetido retorna ErrDuplicate.
func (r *PurchaseOrderRepo) Create(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.OrderNumber, o.SupplierID, o.Status, o.OrderDate,
		o.ExpectedDeliveryDate, o.TotalAmount, o.Notes, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return writeError("insert purchase order", err)
	}
	return nil
}

// GetByID obtiene una orden por ID, con el nombre del proveedor expandido.
func (r *PurchaseOrderRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error) {
	query := `
		SELECT o.id, o.order_number, o.supplier_id, o.status, o.order_date,
			o.expected_delivery_date, o.total_amount, o.notes, o.created_at, o.updated_at,
			s.name
		FROM purchase_orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		WHERE o.id = $1`
	o, err := scanOrder(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	return o, nil
}

// Update reescribe los campos mutables de la orden. order_number es inmutable.
func (r *PurchaseOrderRepo) Update(ctx context.Context, o *entity.PurchaseOrder) error {
	query := `
		UPDATE purchase_orders
		SET supplier_id = $2, status = $3, order_date = $4, expected_delivery_date = $5,
			total_amount = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		o.ID, o.SupplierID, o.Status, o.OrderDate, o.ExpectedDeliveryDate,
		o.TotalAmount, o.Notes, o.UpdatedAt,
	)
	if err != nil {
		return writeError("update purchase order", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista órdenes con filtros de igualdad opcionales por estado y proveedor.
func (r *PurchaseOrderRepo) List(ctx context.Context, f repository.OrderFilter) ([]*entity.PurchaseOrder, error) {
	query := `
		SELECT o.id, o.order_number, o.supplier_id, o.status, o.order_date,
			o.expected_delivery_date, o.total_amount, o.notes, o.created_at, o.updated_at,
			s.name
		FROM purchase_orders o
		LEFT JOIN suppliers s ON s.id = o.supplier_id
		WHERE ($1 = '' OR o.status = $1)
		  AND ($2 = '' OR o.supplier_id = $2::uuid)
		ORDER BY o.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.Status, f.SupplierID, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

func scanOrder(row pgx.Row) (*entity.PurchaseOrder, error) {
	var o entity.PurchaseOrder
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.SupplierID, &o.Status, &o.OrderDate,
		&o.ExpectedDeliveryDate, &o.TotalAmount, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		&o.SupplierName,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Delete elimina una orden. Un ID inexistente retorna ErrNotFound.
func (r *PurchaseOrderRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return writeError("delete purchase order", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
