package service

import (
	"context"
	"strings"
	"time"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
	"github.com/izaplantas/floricultura-api/internal/domain/repository"
	"github.com/izaplantas/floricultura-api/pkg/apperror"
	"github.com/izaplantas/floricultura-api/pkg/pagination"
	"github.com/izaplantas/floricultura-api/pkg/utils"
)

// ProductService handles catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductFilter contains filtering parameters for catalog listings
type ProductFilter struct {
	Pagination *pagination.PaginationParams
	Search     string
	Category   string
	Status     string
	LowStock   bool
	ActiveOnly bool // storefront listings hide everything not active
}

// ListProducts lists catalog products with in-memory filtering
func (s *ProductService) ListProducts(ctx context.Context, filter *ProductFilter) (*pagination.PaginatedResult[entity.Product], error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	matched := make([]entity.Product, 0, len(products))
	for i := range products {
		p := &products[i]
		if filter.ActiveOnly && p.Status != enum.ProductStatusActive {
			continue
		}
		if filter.Category != "" && string(p.Category) != filter.Category {
			continue
		}
		if filter.Status != "" && string(p.Status) != filter.Status {
			continue
		}
		if filter.LowStock && !p.IsLowStock() {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Code), search) {
			continue
		}
		matched = append(matched, *p)
	}

	params := filter.Pagination
	if params == nil {
		params = pagination.DefaultPagination()
	}
	return pagination.Paginate(matched, params), nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// SaveProductInput represents the save product input. A populated ID
// replaces the existing product; an empty ID creates a new one.
type SaveProductInput struct {
	ID          string
	Code        string
	Name        string
	Description string
	Category    string
	CostPrice   float64
	SalePrice   float64
	Stock       int
	MinStock    int
	Unit        string
	Status      string
	Image       string
	Details     entity.ProductDetails
}

// SaveProduct creates or replaces a catalog product
func (s *ProductService) SaveProduct(ctx context.Context, input *SaveProductInput) (*entity.Product, error) {
	category := enum.Category(input.Category)
	if !category.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown category: " + input.Category)
	}

	status := enum.ProductStatus(input.Status)
	if input.Status == "" {
		status = enum.ProductStatusActive
	} else if !status.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown product status: " + input.Status)
	}

	if input.Stock < 0 || input.MinStock < 0 {
		return nil, apperror.NewBadRequestError("Stock values cannot be negative")
	}

	code := strings.TrimSpace(input.Code)
	if code == "" {
		code = utils.GenerateProductCode()
	}

	product := &entity.Product{
		ID:          input.ID,
		Code:        code,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Category:    category,
		Stock:       input.Stock,
		MinStock:    input.MinStock,
		Unit:        input.Unit,
		Status:      status,
		Image:       input.Image,
		Details:     input.Details.TrimForCategory(category),
	}
	product.SetCostPriceFromDecimal(input.CostPrice)
	product.SetSalePriceFromDecimal(input.SalePrice)

	if product.ID == "" {
		product.ID = utils.NewID()
		product.CreatedAt = time.Now().UTC()
	} else {
		existing, err := s.productRepo.GetByID(ctx, product.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			product.CreatedAt = existing.CreatedAt
		} else {
			product.CreatedAt = time.Now().UTC()
		}
	}

	if err := s.productRepo.Upsert(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog.
// Deleting an unknown ID succeeds quietly.
func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	return s.productRepo.Delete(ctx, id)
}

// GetLowStockProducts returns products at or below their restock threshold
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]entity.Product, 0)
	for i := range products {
		if products[i].IsLowStock() {
			low = append(low, products[i])
		}
	}
	return low, nil
}
