package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductActive       = "active"
	ProductDiscontinued = "discontinued"
	ProductOutOfStock   = "out_of_stock"
)

// ValidProductStatus verifica que el estado pertenezca a la enumeración.
func ValidProductStatus(s string) bool {
	return s == ProductActive || s == ProductDiscontinued || s == ProductOutOfStock
}

// Product representa un producto del inventario.
// CategoryID y SupplierID son referencias débiles (nullable); la integridad
// referencial la garantiza la base de datos, no este módulo.
type Product struct {
	ID                string
	Name              string
	SKU               string // único por convención
	Description       *string
	UnitPrice         decimal.Decimal // precio de venta, >= 0
	CostPrice         decimal.Decimal // costo de adquisición, >= 0
	QuantityInStock   int             // >= 0
	MinimumStockLevel *int
	MaximumStockLevel *int
	CategoryID        *string
	SupplierID        *string
	Barcode           *string
	ImageURL          *string
	Status            string // active, discontinued, out_of_stock
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Nombres relacionados, poblados solo en listados (LEFT JOIN).
	CategoryName *string
	SupplierName *string
}

// IsLowStock indica si el producto está en o bajo su nivel mínimo.
// Sin mínimo definido se asume 0.
func (p *Product) IsLowStock() bool {
	min := 0
	if p.MinimumStockLevel != nil {
		min = *p.MinimumStockLevel
	}
	return p.QuantityInStock <= min
}
