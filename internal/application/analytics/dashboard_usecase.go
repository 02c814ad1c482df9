// Package analytics contiene el caso de uso del Dashboard: las tarjetas de
// resumen del inventario (conteos, stock bajo, valorización y actividad).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/DavidManiIbrahim/keeper-api/internal/application/dto"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/inventory"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

// recentWindow ventana de "actividad reciente" de la tarjeta de transacciones.
const recentWindow = 7 * 24 * time.Hour

// statsCacheKey clave y TTL del cache de tarjetas en Redis.
const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// StatsCache puerto del cache de métricas (opcional, Redis). Get devuelve
// false en miss o cache deshabilitado; ninguna falla del cache es fatal.
type StatsCache interface {
	Get(ctx context.Context, key string, dest any) bool
	Set(ctx context.Context, key string, value any, ttl time.Duration)
}

// DashboardUseCase arma el DashboardStatsDTO a partir de snapshots.
//
// Las consultas a la DB se lanzan en paralelo (conteos + snapshot de stock
// + transacciones recientes); la agregación es pura y vive en
// domain/inventory.
type DashboardUseCase struct {
	categoryRepo repository.CategoryRepository
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	txRepo       repository.StockTransactionRepository
	cache        StatsCache // nil = sin cache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil.
func NewDashboardUseCase(
	categoryRepo repository.CategoryRepository,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	txRepo repository.StockTransactionRepository,
	cache StatsCache,
) *DashboardUseCase {
	return &DashboardUseCase{
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		txRepo:       txRepo,
		cache:        cache,
	}
}

// GetStats calcula las seis tarjetas del dashboard. Snapshots vacíos
// producen métricas en cero, nunca error.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	if uc.cache != nil {
		var cached dto.DashboardStatsDTO
		if uc.cache.Get(ctx, statsCacheKey, &cached) {
			return &cached, nil
		}
	}

	cutoff := time.Now().Add(-recentWindow)

	// ── Goroutines para paralelizar las consultas DB ──────────────────────────
	type countResult struct {
		n   int
		err error
	}
	type snapshotResult struct {
		snapshot []inventory.ProductStock
		err      error
	}
	type txResult struct {
		txs []*entity.StockTransaction
		err error
	}

	productsCh := make(chan countResult, 1)
	suppliersCh := make(chan countResult, 1)
	categoriesCh := make(chan countResult, 1)
	stockCh := make(chan snapshotResult, 1)
	recentCh := make(chan txResult, 1)

	go func() {
		n, err := uc.productRepo.Count(ctx)
		productsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.supplierRepo.Count(ctx)
		suppliersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.categoryRepo.Count(ctx)
		categoriesCh <- countResult{n, err}
	}()
	go func() {
		snap, err := uc.productRepo.StockSnapshot(ctx)
		stockCh <- snapshotResult{snap, err}
	}()
	go func() {
		txs, err := uc.txRepo.ListSince(ctx, cutoff)
		recentCh <- txResult{txs, err}
	}()

	products := <-productsCh
	suppliers := <-suppliersCh
	categories := <-categoriesCh
	stock := <-stockCh
	recent := <-recentCh

	if products.err != nil {
		return nil, fmt.Errorf("dashboard: contar productos: %w", products.err)
	}
	if suppliers.err != nil {
		return nil, fmt.Errorf("dashboard: contar proveedores: %w", suppliers.err)
	}
	if categories.err != nil {
		return nil, fmt.Errorf("dashboard: contar categorías: %w", categories.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("dashboard: snapshot de stock: %w", stock.err)
	}
	if recent.err != nil {
		return nil, fmt.Errorf("dashboard: transacciones recientes: %w", recent.err)
	}

	stats := &dto.DashboardStatsDTO{
		TotalProducts:          products.n,
		TotalSuppliers:         suppliers.n,
		TotalCategories:        categories.n,
		LowStockProducts:       inventory.LowStockCount(stock.snapshot),
		TotalStockValue:        inventory.TotalStockValue(stock.snapshot).Round(2),
		RecentTransactionCount: inventory.RecentTransactionCount(recent.txs, cutoff),
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, statsCacheKey, stats, statsCacheTTL)
	}
	return stats, nil
}
