package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/DavidManiIbrahim/keeper-api/internal/application/dto"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

// StockTransactionUseCase casos de uso para transacciones de stock.
// Las transacciones son inmutables: se crean, se listan y se eliminan.
type StockTransactionUseCase struct {
	repo repository.StockTransactionRepository
}

// NewStockTransactionUseCase construye el caso de uso.
func NewStockTransactionUseCase(repo repository.StockTransactionRepository) *StockTransactionUseCase {
	return &StockTransactionUseCase{repo: repo}
}

// Create valida y persiste una transacción. ProductID y un tipo válido son
// obligatorios. TotalValue se calcula solo si hay UnitPrice:
// total_value = unit_price * quantity; sin precio queda NULL.
func (uc *StockTransactionUseCase) Create(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	productID := strings.TrimSpace(in.ProductID)
	if productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidTransactionType(in.TransactionType) {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity == 0 {
		return nil, domain.ErrInvalidInput
	}
	var totalValue *decimal.Decimal
	if in.UnitPrice != nil {
		tv := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		totalValue = &tv
	}
	tx := &entity.StockTransaction{
		ID:              uuid.New().String(),
		ProductID:       productID,
		TransactionType: in.TransactionType,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		TotalValue:      totalValue,
		ReferenceNumber: optString(in.ReferenceNumber),
		Notes:           optString(in.Notes),
		CreatedAt:       time.Now(),
	}
	if err := uc.repo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetByID obtiene una transacción por ID.
func (uc *StockTransactionUseCase) GetByID(ctx context.Context, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(tx), nil
}

// List lista transacciones con filtros de igualdad y paginación.
func (uc *StockTransactionUseCase) List(ctx context.Context, productID, txType string, page dto.PageRequest) (*dto.TransactionListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.TransactionFilter{
		ProductID:       productID,
		TransactionType: txType,
		Limit:           page.Limit,
		Offset:          page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina una transacción por ID.
func (uc *StockTransactionUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toTransactionResponse(tx *entity.StockTransaction) *dto.TransactionResponse {
	if tx == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:              tx.ID,
		ProductID:       tx.ProductID,
		TransactionType: tx.TransactionType,
		Quantity:        tx.Quantity,
		UnitPrice:       tx.UnitPrice,
		TotalValue:      tx.TotalValue,
		ReferenceNumber: tx.ReferenceNumber,
		Notes:           tx.Notes,
		ProductName:     tx.ProductName,
		ProductSKU:      tx.ProductSKU,
		CreatedAt:       tx.CreatedAt,
	}
}
