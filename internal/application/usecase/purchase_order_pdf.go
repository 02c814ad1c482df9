package usecase

import (
	"context"
	"fmt"

	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

// OrderPDFGenerator puerto de renderizado PDF para órdenes de compra.
// La implementación vive en infrastructure/pdf (Maroto).
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier) ([]byte, error)
}

// OrderPDFUseCase genera la hoja imprimible de una orden de compra.
type OrderPDFUseCase struct {
	orderRepo    repository.PurchaseOrderRepository
	supplierRepo repository.SupplierRepository
	generator    OrderPDFGenerator
}

// NewOrderPDFUseCase construye el caso de uso.
func NewOrderPDFUseCase(
	orderRepo repository.PurchaseOrderRepository,
	supplierRepo repository.SupplierRepository,
	generator OrderPDFGenerator,
) *OrderPDFUseCase {
	return &OrderPDFUseCase{orderRepo: orderRepo, supplierRepo: supplierRepo, generator: generator}
}

// DownloadOrderPDF carga la orden y su proveedor (si tiene) y genera el PDF.
// Retorna (pdfBytes, filename, nil), o domain.ErrNotFound si la orden no existe.
func (uc *OrderPDFUseCase) DownloadOrderPDF(ctx context.Context, orderID string) ([]byte, string, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}

	var supplier *entity.Supplier
	if order.SupplierID != nil {
		supplier, err = uc.supplierRepo.GetByID(ctx, *order.SupplierID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener proveedor: %w", err)
		}
	}

	pdfBytes, err := uc.generator.GenerateOrderPDF(ctx, order, supplier)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar orden %s: %w", order.OrderNumber, err)
	}
	return pdfBytes, order.OrderNumber + ".pdf", nil
}
