package repository

import (
	"context"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/inventory"
)

// ProductFilter filtros de igualdad para listados de productos.
// Campos vacíos no filtran.
type ProductFilter struct {
	Status     string
	CategoryID string
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// List expande los nombres de categoría y proveedor (LEFT JOIN);
// StockSnapshot proyecta solo las columnas que usan las métricas.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, f ProductFilter) ([]*entity.Product, error)
	Count(ctx context.Context) (int, error)
	StockSnapshot(ctx context.Context) ([]inventory.ProductStock, error)
	Delete(ctx context.Context, id string) error
}
