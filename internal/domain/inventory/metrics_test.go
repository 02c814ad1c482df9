package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/inventory"
)

func intPtr(n int) *int { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// LowStockCount
// ──────────────────────────────────────────────────────────────────────────────

func TestLowStockCount_UmbralInclusivo(t *testing.T) {
	snapshot := []inventory.ProductStock{
		{QuantityInStock: 5, MinimumStockLevel: intPtr(5)},  // igual al mínimo → bajo
		{QuantityInStock: 4, MinimumStockLevel: intPtr(5)},  // debajo → bajo
		{QuantityInStock: 6, MinimumStockLevel: intPtr(5)},  // encima → ok
		{QuantityInStock: 0, MinimumStockLevel: intPtr(10)}, // agotado → bajo
	}
	assert.Equal(t, 3, inventory.LowStockCount(snapshot),
		"quantity <= minimum cuenta como stock bajo, con igualdad incluida")
}

func TestLowStockCount_SinMinimoUsaCero(t *testing.T) {
	// Un producto sin mínimo configurado solo es "bajo" con stock <= 0.
	snapshot := []inventory.ProductStock{
		{QuantityInStock: 0, MinimumStockLevel: nil},
		{QuantityInStock: 1, MinimumStockLevel: nil},
		{QuantityInStock: -2, MinimumStockLevel: nil},
	}
	assert.Equal(t, 2, inventory.LowStockCount(snapshot))
}

func TestLowStockCount_SnapshotVacio(t *testing.T) {
	assert.Equal(t, 0, inventory.LowStockCount(nil))
}

// ──────────────────────────────────────────────────────────────────────────────
// TotalStockValue
// ──────────────────────────────────────────────────────────────────────────────

func TestTotalStockValue_SumaCostoPorCantidad(t *testing.T) {
	snapshot := []inventory.ProductStock{
		{QuantityInStock: 10, CostPrice: decimal.RequireFromString("2.50")}, // 25.00
		{QuantityInStock: 3, CostPrice: decimal.RequireFromString("100")},   // 300.00
		{QuantityInStock: 0, CostPrice: decimal.RequireFromString("999")},   // 0
	}
	total := inventory.TotalStockValue(snapshot)
	assert.True(t, total.Equal(decimal.RequireFromString("325")),
		"total esperado 325, obtenido %s", total)
}

func TestTotalStockValue_SinPerdidaDecimal(t *testing.T) {
	// 0.1 * 3 en float64 daría 0.30000000000000004; con decimal debe ser exacto.
	snapshot := []inventory.ProductStock{
		{QuantityInStock: 3, CostPrice: decimal.RequireFromString("0.1")},
	}
	total := inventory.TotalStockValue(snapshot)
	assert.True(t, total.Equal(decimal.RequireFromString("0.3")))
}

func TestTotalStockValue_SnapshotVacio(t *testing.T) {
	assert.True(t, inventory.TotalStockValue(nil).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// RecentTransactionCount
// ──────────────────────────────────────────────────────────────────────────────

func TestRecentTransactionCount_FiltraPorCorte(t *testing.T) {
	cutoff := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	txs := []*entity.StockTransaction{
		{CreatedAt: cutoff.Add(time.Hour)},      // dentro
		{CreatedAt: cutoff},                     // exactamente el corte → dentro
		{CreatedAt: cutoff.Add(-time.Minute)},   // antes → fuera
		{CreatedAt: cutoff.Add(48 * time.Hour)}, // dentro
	}
	assert.Equal(t, 3, inventory.RecentTransactionCount(txs, cutoff))
}

func TestRecentTransactionCount_SinTransacciones(t *testing.T) {
	cutoff := time.Now()
	assert.Equal(t, 0, inventory.RecentTransactionCount(nil, cutoff))
}
