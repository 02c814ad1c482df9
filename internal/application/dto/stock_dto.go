package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTransactionRequest body para POST /api/stock-transactions.
// UnitPrice es opcional: sin precio el movimiento no tiene valor total.
type CreateTransactionRequest struct {
	ProductID       string           `json:"product_id"`
	TransactionType string           `json:"transaction_type"`
	Quantity        int              `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price,omitempty"`
	ReferenceNumber string           `json:"reference_number,omitempty"`
	Notes           string           `json:"notes,omitempty"`
}

// TransactionResponse fila de transacción con producto expandido.
type TransactionResponse struct {
	ID              string           `json:"id"`
	ProductID       string           `json:"product_id"`
	TransactionType string           `json:"transaction_type"`
	Quantity        int              `json:"quantity"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	TotalValue      *decimal.Decimal `json:"total_value"`
	ReferenceNumber *string          `json:"reference_number"`
	Notes           *string          `json:"notes"`
	ProductName     *string          `json:"product_name,omitempty"`
	ProductSKU      *string          `json:"product_sku,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// TransactionListResponse listado paginado de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
