package usecase_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidManiIbrahim/keeper-api/internal/application/dto"
	"github.com/DavidManiIbrahim/keeper-api/internal/application/usecase"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
)

var orderNumberPattern = regexp.MustCompile(`^PO-\d{6}$`)

func TestOrderCreate_GeneraOrderNumber(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(newFakeOrderRepo())

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{})
	require.NoError(t, err)
	assert.Regexp(t, orderNumberPattern, out.OrderNumber,
		"sin order_number explícito se genera PO-######")
	assert.Equal(t, entity.OrderPending, out.Status, "status por defecto pending")
}

func TestOrderCreate_RespetaOrderNumberExplicito(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(newFakeOrderRepo())

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{OrderNumber: "PO-CUSTOM-7"})
	require.NoError(t, err)
	assert.Equal(t, "PO-CUSTOM-7", out.OrderNumber)
}

func TestOrderCreate_ParseaFechas(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(newFakeOrderRepo())

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		OrderDate:            "2026-08-15",
		ExpectedDeliveryDate: "2026-09-01",
	})
	require.NoError(t, err)
	require.NotNil(t, out.OrderDate)
	assert.Equal(t, time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC), out.OrderDate.UTC())
	require.NotNil(t, out.ExpectedDeliveryDate)
}

func TestOrderCreate_FechaMalFormadaInvalida(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewPurchaseOrderUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{OrderDate: "15/08/2026"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.created)
}

func TestOrderCreate_MontoNegativoInvalido(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(newFakeOrderRepo())
	neg := decimal.RequireFromString("-10")

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{TotalAmount: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_StatusInvalido(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(newFakeOrderRepo())

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{Status: "draft"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderUpdate_CambiaStatusSinReglasDeTransicion(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewPurchaseOrderUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{})
	require.NoError(t, err)

	// received → pending también es legal: la enumeración es plana.
	for _, status := range []string{"received", "pending", "cancelled", "approved"} {
		out, err := uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, status, out.Status)
	}
}

func TestOrderUpdate_OrderNumberInmutable(t *testing.T) {
	repo := newFakeOrderRepo()
	uc := usecase.NewPurchaseOrderUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateOrderRequest{OrderNumber: "PO-000001"})
	require.NoError(t, err)

	status := "approved"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateOrderRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "PO-000001", out.OrderNumber)
}

func TestOrderUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(newFakeOrderRepo())
	status := "approved"

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateOrderRequest{Status: &status})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderDelete_IDInexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewPurchaseOrderUseCase(newFakeOrderRepo())

	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
