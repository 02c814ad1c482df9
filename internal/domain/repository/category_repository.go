package repository

import (
	"context"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Category no soporta Update: su ciclo de vida es crear y eliminar.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
}
