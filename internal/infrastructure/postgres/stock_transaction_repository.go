package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del puerto StockTransactionRepository
// sobre PostgreSQL. Sin Update: las transacciones son inmutables.
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador de persistencia para transacciones.
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

// Create persiste una transacción nueva.
func (r *StockTransactionRepo) Create(ctx context.Context, tx *entity.StockTransaction) error {
	query := `
		INSERT INTO stock_transactions (id, product_id, transaction_type, quantity, unit_price,
			total_value, reference_number, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		tx.ID, tx.ProductID, tx.TransactionType, tx.Quantity, tx.UnitPrice,
		tx.TotalValue, tx.ReferenceNumber, tx.Notes, tx.CreatedAt,
	)
	if err != nil {
		return writeError("insert stock transaction", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID.
func (r *StockTransactionRepo) GetByID(ctx context.Context, id string) (*entity.StockTransaction, error) {
	query := `
		SELECT id, product_id, transaction_type, quantity, unit_price, total_value,
			reference_number, notes, created_at
		FROM stock_transactions WHERE id = $1`
	var tx entity.StockTransaction
	err := r.q.QueryRow(ctx, query, id).Scan(
		&tx.ID, &tx.ProductID, &tx.TransactionType, &tx.Quantity, &tx.UnitPrice,
		&tx.TotalValue, &tx.ReferenceNumber, &tx.Notes, &tx.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock transaction: %w", err)
	}
	return &tx, nil
}

// List lista transacciones con nombre y SKU del producto expandidos
// (LEFT JOIN). Filtros de igualdad opcionales por product_id y tipo.
func (r *StockTransactionRepo) List(ctx context.Context, f repository.TransactionFilter) ([]*entity.StockTransaction, error) {
	query := `
		SELECT t.id, t.product_id, t.transaction_type, t.quantity, t.unit_price, t.total_value,
			t.reference_number, t.notes, t.created_at, p.name, p.sku
		FROM stock_transactions t
		LEFT JOIN products p ON p.id = t.product_id
		WHERE ($1 = '' OR t.product_id = $1::uuid)
		  AND ($2 = '' OR t.transaction_type = $2)
		ORDER BY t.created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, f.ProductID, f.TransactionType, f.Limit, f.Offset)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// ListSince lista las transacciones creadas desde el instante dado
// (snapshot de actividad reciente para el dashboard).
func (r *StockTransactionRepo) ListSince(ctx context.Context, since time.Time) ([]*entity.StockTransaction, error) {
	query := `
		SELECT t.id, t.product_id, t.transaction_type, t.quantity, t.unit_price, t.total_value,
			t.reference_number, t.notes, t.created_at, p.name, p.sku
		FROM stock_transactions t
		LEFT JOIN products p ON p.id = t.product_id
		WHERE t.created_at >= $1
		ORDER BY t.created_at DESC`
	rows, err := r.q.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list recent stock transactions: %w", err)
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func scanTransactions(rows pgx.Rows) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	for rows.Next() {
		var tx entity.StockTransaction
		if err := rows.Scan(
			&tx.ID, &tx.ProductID, &tx.TransactionType, &tx.Quantity, &tx.UnitPrice,
			&tx.TotalValue, &tx.ReferenceNumber, &tx.Notes, &tx.CreatedAt,
			&tx.ProductName, &tx.ProductSKU,
		); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		list = append(list, &tx)
	}
	return list, rows.Err()
}

// Delete elimina una transacción. Un ID inexistente retorna ErrNotFound.
func (r *StockTransactionRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM stock_transactions WHERE id = $1`, id)
	if err != nil {
		return writeError("delete stock transaction", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
