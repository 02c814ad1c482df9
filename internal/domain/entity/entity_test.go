package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

func TestCanManageInventory(t *testing.T) {
	cases := []struct {
		role string
		want bool
	}{
		{entity.RoleAdmin, true},
		{entity.RoleManager, true},
		{entity.RoleEmployee, false},
		{"", false},
		{"auditor", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, entity.CanManageInventory(tc.role), "rol %q", tc.role)
	}
}

func TestProductIsLowStock(t *testing.T) {
	min := 5
	p := entity.Product{QuantityInStock: 5, MinimumStockLevel: &min}
	assert.True(t, p.IsLowStock(), "cantidad igual al mínimo cuenta como stock bajo")

	p.QuantityInStock = 6
	assert.False(t, p.IsLowStock())

	// Sin mínimo configurado el umbral es cero.
	p = entity.Product{QuantityInStock: 0}
	assert.True(t, p.IsLowStock())
	p.QuantityInStock = 1
	assert.False(t, p.IsLowStock())
}

func TestValidProductStatus(t *testing.T) {
	assert.True(t, entity.ValidProductStatus(entity.ProductActive))
	assert.True(t, entity.ValidProductStatus(entity.ProductDiscontinued))
	assert.True(t, entity.ValidProductStatus(entity.ProductOutOfStock))
	assert.False(t, entity.ValidProductStatus("archived"))
}

func TestValidTransactionType(t *testing.T) {
	assert.True(t, entity.ValidTransactionType(entity.TransactionIn))
	assert.True(t, entity.ValidTransactionType(entity.TransactionOut))
	assert.True(t, entity.ValidTransactionType(entity.TransactionAdjustment))
	assert.False(t, entity.ValidTransactionType("transfer"))
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, entity.ValidOrderStatus(entity.OrderPending))
	assert.True(t, entity.ValidOrderStatus(entity.OrderApproved))
	assert.True(t, entity.ValidOrderStatus(entity.OrderReceived))
	assert.True(t, entity.ValidOrderStatus(entity.OrderCancelled))
	assert.False(t, entity.ValidOrderStatus("draft"))
}
