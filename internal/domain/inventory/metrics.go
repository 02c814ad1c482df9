// Package inventory contiene la lógica pura de agregación de inventario
// (servicio de dominio): conteo de stock bajo, valorización total y
// actividad reciente. Sin efectos secundarios ni acceso a datos.
package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

// ProductStock es el snapshot mínimo de un producto que necesitan las
// métricas: cantidad, nivel mínimo y costo. Los repositorios lo proyectan
// directamente para no arrastrar filas completas al dashboard.
type ProductStock struct {
	QuantityInStock   int
	MinimumStockLevel *int
	CostPrice         decimal.Decimal
}

// LowStockCount cuenta los productos con stock en o bajo su nivel mínimo.
// Sin mínimo definido se asume 0: un producto sin mínimo solo cuenta
// cuando su stock llega a cero.
func LowStockCount(snapshot []ProductStock) int {
	count := 0
	for _, p := range snapshot {
		min := 0
		if p.MinimumStockLevel != nil {
			min = *p.MinimumStockLevel
		}
		if p.QuantityInStock <= min {
			count++
		}
	}
	return count
}

// TotalStockValue suma quantity_in_stock * cost_price sobre el snapshot.
// Acumula en decimal para evitar deriva de punto flotante.
func TotalStockValue(snapshot []ProductStock) decimal.Decimal {
	total := decimal.Zero
	for _, p := range snapshot {
		total = total.Add(p.CostPrice.Mul(decimal.NewFromInt(int64(p.QuantityInStock))))
	}
	return total
}

// RecentTransactionCount cuenta las transacciones con created_at >= cutoff.
// El snapshot vacío o nil produce 0.
func RecentTransactionCount(txs []*entity.StockTransaction, cutoff time.Time) int {
	count := 0
	for _, tx := range txs {
		if !tx.CreatedAt.Before(cutoff) {
			count++
		}
	}
	return count
}
