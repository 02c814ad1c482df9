package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos válidos para StockTransaction.
const (
	TransactionIn         = "in"
	TransactionOut        = "out"
	TransactionAdjustment = "adjustment"
)

// ValidTransactionType verifica que el tipo pertenezca a la enumeración.
func ValidTransactionType(t string) bool {
	return t == TransactionIn || t == TransactionOut || t == TransactionAdjustment
}

// StockTransaction registra un movimiento de stock de un producto.
// Inmutable después de crearse: solo se soporta crear y eliminar.
// TotalValue = UnitPrice * Quantity cuando hay precio; NULL si no.
type StockTransaction struct {
	ID              string
	ProductID       string
	TransactionType string // in, out, adjustment
	Quantity        int    // el signo lo da el tipo
	UnitPrice       *decimal.Decimal
	TotalValue      *decimal.Decimal
	ReferenceNumber *string
	Notes           *string
	CreatedAt       time.Time

	// Poblados solo en listados (LEFT JOIN con products).
	ProductName *string
	ProductSKU  *string
}
