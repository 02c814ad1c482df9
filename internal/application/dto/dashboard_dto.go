package dto

import "github.com/shopspring/decimal"

// DashboardStatsDTO respuesta de GET /api/dashboard/stats.
// Las seis tarjetas del panel: conteos globales, stock bajo, valorización
// del inventario y actividad de los últimos 7 días.
type DashboardStatsDTO struct {
	TotalProducts          int             `json:"total_products"`
	TotalSuppliers         int             `json:"total_suppliers"`
	TotalCategories        int             `json:"total_categories"`
	LowStockProducts       int             `json:"low_stock_products"`
	TotalStockValue        decimal.Decimal `json:"total_stock_value"`
	RecentTransactionCount int             `json:"recent_transaction_count"`
}
