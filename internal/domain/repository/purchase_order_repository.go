package repository

import (
	"context"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

// OrderFilter filtros de igualdad para listados de órdenes de compra.
type OrderFilter struct {
	Status     string
	SupplierID string
	Limit      int
	Offset     int
}

// PurchaseOrderRepository define el puerto de persistencia para
// PurchaseOrder (DIP).
type PurchaseOrderRepository interface {
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, order *entity.PurchaseOrder) error
	List(ctx context.Context, f OrderFilter) ([]*entity.PurchaseOrder, error)
	Delete(ctx context.Context, id string) error
}
