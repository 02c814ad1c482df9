package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DavidManiIbrahim/keeper-api/internal/application/dto"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

// PurchaseOrderUseCase casos de uso CRUD para órdenes de compra.
type PurchaseOrderUseCase struct {
	repo repository.PurchaseOrderRepository
}

// NewPurchaseOrderUseCase construye el caso de uso.
func NewPurchaseOrderUseCase(repo repository.PurchaseOrderRepository) *PurchaseOrderUseCase {
	return &PurchaseOrderUseCase{repo: repo}
}

// generateOrderNumber arma el número por defecto de una orden:
// "PO-" + los últimos 6 dígitos del timestamp de creación en milisegundos.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("PO-%06d", now.UnixMilli()%1_000_000)
}

// Create valida y persiste una orden. OrderNumber vacío se genera a partir
// del timestamp; Status vacío se asume pending. Las fechas mal formadas y
// los montos negativos son inválidos.
func (uc *PurchaseOrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	now := time.Now()
	orderNumber := strings.TrimSpace(in.OrderNumber)
	if orderNumber == "" {
		orderNumber = generateOrderNumber(now)
	}
	status := in.Status
	if status == "" {
		status = entity.OrderPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	if in.TotalAmount != nil && in.TotalAmount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	orderDate, err := optDate(in.OrderDate)
	if err != nil {
		return nil, err
	}
	deliveryDate, err := optDate(in.ExpectedDeliveryDate)
	if err != nil {
		return nil, err
	}
	order := &entity.PurchaseOrder{
		ID:                   uuid.New().String(),
		OrderNumber:          orderNumber,
		SupplierID:           optString(in.SupplierID),
		Status:               status,
		OrderDate:            orderDate,
		ExpectedDeliveryDate: deliveryDate,
		TotalAmount:          in.TotalAmount,
		Notes:                optString(in.Notes),
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// GetByID obtiene una orden por ID.
func (uc *PurchaseOrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(order), nil
}

// Update aplica un patch parcial. OrderNumber no se modifica después de
// crear. El status es una enumeración plana: cualquier valor válido se
// acepta sin reglas de transición.
func (uc *PurchaseOrderUseCase) Update(ctx context.Context, id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if in.SupplierID != nil {
		order.SupplierID = optString(*in.SupplierID)
	}
	if in.Status != nil {
		if !entity.ValidOrderStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		order.Status = *in.Status
	}
	if in.OrderDate != nil {
		d, err := optDate(*in.OrderDate)
		if err != nil {
			return nil, err
		}
		order.OrderDate = d
	}
	if in.ExpectedDeliveryDate != nil {
		d, err := optDate(*in.ExpectedDeliveryDate)
		if err != nil {
			return nil, err
		}
		order.ExpectedDeliveryDate = d
	}
	if in.TotalAmount != nil {
		if in.TotalAmount.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		order.TotalAmount = in.TotalAmount
	}
	if in.Notes != nil {
		order.Notes = optString(*in.Notes)
	}
	order.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

// List lista órdenes con filtros de igualdad y paginación.
func (uc *PurchaseOrderUseCase) List(ctx context.Context, status, supplierID string, page dto.PageRequest) (*dto.OrderListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.OrderFilter{
		Status:     status,
		SupplierID: supplierID,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una orden por ID.
func (uc *PurchaseOrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toOrderResponse(o *entity.PurchaseOrder) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:                   o.ID,
		OrderNumber:          o.OrderNumber,
		SupplierID:           o.SupplierID,
		Status:               o.Status,
		OrderDate:            o.OrderDate,
		ExpectedDeliveryDate: o.ExpectedDeliveryDate,
		TotalAmount:          o.TotalAmount,
		Notes:                o.Notes,
		SupplierName:         o.SupplierName,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}
