package repository

import (
	"context"
	"time"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

// TransactionFilter filtros de igualdad para listados de transacciones.
type TransactionFilter struct {
	ProductID       string
	TransactionType string
	Limit           int
	Offset          int
}

// StockTransactionRepository define el puerto de persistencia para
// StockTransaction (DIP). Las transacciones son inmutables: no hay Update.
type StockTransactionRepository interface {
	Create(ctx context.Context, tx *entity.StockTransaction) error
	GetByID(ctx context.Context, id string) (*entity.StockTransaction, error)
	List(ctx context.Context, f TransactionFilter) ([]*entity.StockTransaction, error)
	ListSince(ctx context.Context, since time.Time) ([]*entity.StockTransaction, error)
	Delete(ctx context.Context, id string) error
}
