package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products.
// Numéricos mal formados fallan en el bind del JSON (VALIDATION), no se
// coercen silenciosamente a cero. Status vacío se asume active.
type CreateProductRequest struct {
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Description       string          `json:"description,omitempty"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	QuantityInStock   int             `json:"quantity_in_stock"`
	MinimumStockLevel *int            `json:"minimum_stock_level,omitempty"`
	MaximumStockLevel *int            `json:"maximum_stock_level,omitempty"`
	CategoryID        string          `json:"category_id,omitempty"`
	SupplierID        string          `json:"supplier_id,omitempty"`
	Barcode           string          `json:"barcode,omitempty"`
	ImageURL          string          `json:"image_url,omitempty"`
	Status            string          `json:"status,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
type UpdateProductRequest struct {
	Name              *string          `json:"name,omitempty"`
	Description       *string          `json:"description,omitempty"`
	UnitPrice         *decimal.Decimal `json:"unit_price,omitempty"`
	CostPrice         *decimal.Decimal `json:"cost_price,omitempty"`
	QuantityInStock   *int             `json:"quantity_in_stock,omitempty"`
	MinimumStockLevel *int             `json:"minimum_stock_level,omitempty"`
	MaximumStockLevel *int             `json:"maximum_stock_level,omitempty"`
	CategoryID        *string          `json:"category_id,omitempty"`
	SupplierID        *string          `json:"supplier_id,omitempty"`
	Barcode           *string          `json:"barcode,omitempty"`
	ImageURL          *string          `json:"image_url,omitempty"`
	Status            *string          `json:"status,omitempty"`
}

// ProductResponse fila de producto con nombres relacionados expandidos.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	SKU               string          `json:"sku"`
	Description       *string         `json:"description"`
	UnitPrice         decimal.Decimal `json:"unit_price"`
	CostPrice         decimal.Decimal `json:"cost_price"`
	QuantityInStock   int             `json:"quantity_in_stock"`
	MinimumStockLevel *int            `json:"minimum_stock_level"`
	MaximumStockLevel *int            `json:"maximum_stock_level"`
	CategoryID        *string         `json:"category_id"`
	SupplierID        *string         `json:"supplier_id"`
	Barcode           *string         `json:"barcode"`
	ImageURL          *string         `json:"image_url"`
	Status            string          `json:"status"`
	LowStock          bool            `json:"low_stock"`
	CategoryName      *string         `json:"category_name,omitempty"`
	SupplierName      *string         `json:"supplier_name,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
