package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest body para POST /api/purchase-orders.
// OrderNumber vacío genera PO-###### a partir del timestamp de creación.
// Las fechas viajan como "2006-01-02"; vacías se almacenan como NULL.
type CreateOrderRequest struct {
	OrderNumber          string           `json:"order_number,omitempty"`
	SupplierID           string           `json:"supplier_id,omitempty"`
	Status               string           `json:"status,omitempty"`
	OrderDate            string           `json:"order_date,omitempty"`
	ExpectedDeliveryDate string           `json:"expected_delivery_date,omitempty"`
	TotalAmount          *decimal.Decimal `json:"total_amount,omitempty"`
	Notes                string           `json:"notes,omitempty"`
}

// UpdateOrderRequest body para PUT /api/purchase-orders/:id. Campos nil no se tocan.
type UpdateOrderRequest struct {
	SupplierID           *string          `json:"supplier_id,omitempty"`
	Status               *string          `json:"status,omitempty"`
	OrderDate            *string          `json:"order_date,omitempty"`
	ExpectedDeliveryDate *string          `json:"expected_delivery_date,omitempty"`
	TotalAmount          *decimal.Decimal `json:"total_amount,omitempty"`
	Notes                *string          `json:"notes,omitempty"`
}

// OrderResponse fila de orden de compra con proveedor expandido.
type OrderResponse struct {
	ID                   string           `json:"id"`
	OrderNumber          string           `json:"order_number"`
	SupplierID           *string          `json:"supplier_id"`
	Status               string           `json:"status"`
	OrderDate            *time.Time       `json:"order_date"`
	ExpectedDeliveryDate *time.Time       `json:"expected_delivery_date"`
	TotalAmount          *decimal.Decimal `json:"total_amount"`
	Notes                *string          `json:"notes"`
	SupplierName         *string          `json:"supplier_name,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
}

// OrderListResponse listado paginado de órdenes de compra.
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
