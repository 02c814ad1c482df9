package usecase_test

import (
	"context"
	"time"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/inventory"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

// Fakes en memoria para los puertos de persistencia. Cada fake registra las
// llamadas que recibe para poder afirmar que la validación corta antes de
// tocar el repositorio.

// ── CategoryRepository ────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	created []*entity.Category
	byID    map[string]*entity.Category
	deleted []string
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byID: make(map[string]*entity.Category)}
}

func (f *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	f.created = append(f.created, c)
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return f.byID[id], nil
}

func (f *fakeCategoryRepo) List(_ context.Context, limit, offset int) ([]*entity.Category, error) {
	return f.created, nil
}

func (f *fakeCategoryRepo) Count(_ context.Context) (int, error) { return len(f.byID), nil }

func (f *fakeCategoryRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

// ── SupplierRepository ────────────────────────────────────────────────────────

type fakeSupplierRepo struct {
	byID    map[string]*entity.Supplier
	updated []*entity.Supplier
}

func newFakeSupplierRepo() *fakeSupplierRepo {
	return &fakeSupplierRepo{byID: make(map[string]*entity.Supplier)}
}

func (f *fakeSupplierRepo) Create(_ context.Context, s *entity.Supplier) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return f.byID[id], nil
}

func (f *fakeSupplierRepo) Update(_ context.Context, s *entity.Supplier) error {
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[s.ID] = s
	f.updated = append(f.updated, s)
	return nil
}

func (f *fakeSupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSupplierRepo) Count(_ context.Context) (int, error) { return len(f.byID), nil }

func (f *fakeSupplierRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

var _ repository.SupplierRepository = (*fakeSupplierRepo)(nil)

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID    map[string]*entity.Product
	bySKU   map[string]*entity.Product
	created []*entity.Product
	updated []*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{
		byID:  make(map[string]*entity.Product),
		bySKU: make(map[string]*entity.Product),
	}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	f.created = append(f.created, p)
	f.byID[p.ID] = p
	f.bySKU[p.SKU] = p
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	return f.bySKU[sku], nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := f.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[p.ID] = p
	f.updated = append(f.updated, p)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ repository.ProductFilter) ([]*entity.Product, error) {
	return f.created, nil
}

func (f *fakeProductRepo) Count(_ context.Context) (int, error) { return len(f.byID), nil }

func (f *fakeProductRepo) StockSnapshot(_ context.Context) ([]inventory.ProductStock, error) {
	var snap []inventory.ProductStock
	for _, p := range f.byID {
		snap = append(snap, inventory.ProductStock{
			QuantityInStock:   p.QuantityInStock,
			MinimumStockLevel: p.MinimumStockLevel,
			CostPrice:         p.CostPrice,
		})
	}
	return snap, nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

// ── StockTransactionRepository ────────────────────────────────────────────────

type fakeTransactionRepo struct {
	created []*entity.StockTransaction
	byID    map[string]*entity.StockTransaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{byID: make(map[string]*entity.StockTransaction)}
}

func (f *fakeTransactionRepo) Create(_ context.Context, tx *entity.StockTransaction) error {
	f.created = append(f.created, tx)
	f.byID[tx.ID] = tx
	return nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id string) (*entity.StockTransaction, error) {
	return f.byID[id], nil
}

func (f *fakeTransactionRepo) List(_ context.Context, _ repository.TransactionFilter) ([]*entity.StockTransaction, error) {
	return f.created, nil
}

func (f *fakeTransactionRepo) ListSince(_ context.Context, since time.Time) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, tx := range f.created {
		if !tx.CreatedAt.Before(since) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

var _ repository.StockTransactionRepository = (*fakeTransactionRepo)(nil)

// ── PurchaseOrderRepository ───────────────────────────────────────────────────

type fakeOrderRepo struct {
	byID    map[string]*entity.PurchaseOrder
	created []*entity.PurchaseOrder
	updated []*entity.PurchaseOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{byID: make(map[string]*entity.PurchaseOrder)}
}

func (f *fakeOrderRepo) Create(_ context.Context, o *entity.PurchaseOrder) error {
	f.created = append(f.created, o)
	f.byID[o.ID] = o
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	return f.byID[id], nil
}

func (f *fakeOrderRepo) Update(_ context.Context, o *entity.PurchaseOrder) error {
	if _, ok := f.byID[o.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[o.ID] = o
	f.updated = append(f.updated, o)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ repository.OrderFilter) ([]*entity.PurchaseOrder, error) {
	return f.created, nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

var _ repository.PurchaseOrderRepository = (*fakeOrderRepo)(nil)

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)
