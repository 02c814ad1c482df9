package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DavidManiIbrahim/keeper-api/internal/application/dto"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/entity"
	"github.com/DavidManiIbrahim/keeper-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create valida y persiste un producto. Name y SKU son obligatorios
// después de recortar espacios; un SKU existente retorna ErrDuplicate.
// Precios negativos y status fuera de la enumeración son inválidos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	sku := strings.TrimSpace(in.SKU)
	if name == "" || sku == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() || in.CostPrice.IsNegative() || in.QuantityInStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	status := in.Status
	if status == "" {
		status = entity.ProductActive
	}
	if !entity.ValidProductStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		Name:              name,
		SKU:               sku,
		Description:       optString(in.Description),
		UnitPrice:         in.UnitPrice,
		CostPrice:         in.CostPrice,
		QuantityInStock:   in.QuantityInStock,
		MinimumStockLevel: in.MinimumStockLevel,
		MaximumStockLevel: in.MaximumStockLevel,
		CategoryID:        optString(in.CategoryID),
		SupplierID:        optString(in.SupplierID),
		Barcode:           optString(in.Barcode),
		ImageURL:          optString(in.ImageURL),
		Status:            status,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update aplica un patch parcial. El SKU no se modifica después de crear.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = optString(*in.Description)
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.CostPrice != nil {
		if in.CostPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.CostPrice = *in.CostPrice
	}
	if in.QuantityInStock != nil {
		if *in.QuantityInStock < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.QuantityInStock = *in.QuantityInStock
	}
	if in.MinimumStockLevel != nil {
		product.MinimumStockLevel = in.MinimumStockLevel
	}
	if in.MaximumStockLevel != nil {
		product.MaximumStockLevel = in.MaximumStockLevel
	}
	if in.CategoryID != nil {
		product.CategoryID = optString(*in.CategoryID)
	}
	if in.SupplierID != nil {
		product.SupplierID = optString(*in.SupplierID)
	}
	if in.Barcode != nil {
		product.Barcode = optString(*in.Barcode)
	}
	if in.ImageURL != nil {
		product.ImageURL = optString(*in.ImageURL)
	}
	if in.Status != nil {
		if !entity.ValidProductStatus(*in.Status) {
			return nil, domain.ErrInvalidInput
		}
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con filtros de igualdad y paginación.
func (uc *ProductUseCase) List(ctx context.Context, status, categoryID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, repository.ProductFilter{
		Status:     status,
		CategoryID: categoryID,
		Limit:      page.Limit,
		Offset:     page.Offset,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		SKU:               p.SKU,
		Description:       p.Description,
		UnitPrice:         p.UnitPrice,
		CostPrice:         p.CostPrice,
		QuantityInStock:   p.QuantityInStock,
		MinimumStockLevel: p.MinimumStockLevel,
		MaximumStockLevel: p.MaximumStockLevel,
		CategoryID:        p.CategoryID,
		SupplierID:        p.SupplierID,
		Barcode:           p.Barcode,
		ImageURL:          p.ImageURL,
		Status:            p.Status,
		LowStock:          p.IsLowStock(),
		CategoryName:      p.CategoryName,
		SupplierName:      p.SupplierName,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
