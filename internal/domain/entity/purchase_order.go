package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para PurchaseOrder. Son una enumeración plana: el módulo
// no impone reglas de transición entre ellos.
const (
	OrderPending   = "pending"
	OrderApproved  = "approved"
	OrderReceived  = "received"
	OrderCancelled = "cancelled"
)

// ValidOrderStatus verifica que el estado pertenezca a la enumeración.
func ValidOrderStatus(s string) bool {
	return s == OrderPending || s == OrderApproved || s == OrderReceived || s == OrderCancelled
}

// PurchaseOrder representa una orden de compra a un proveedor.
type PurchaseOrder struct {
	ID                   string
	OrderNumber          string // generado PO-###### si el caller no lo define
	SupplierID           *string
	Status               string // pending, approved, received, cancelled
	OrderDate            *time.Time
	ExpectedDeliveryDate *time.Time
	TotalAmount          *decimal.Decimal
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	// Poblado solo en listados (LEFT JOIN con suppliers).
	SupplierName *string
}
