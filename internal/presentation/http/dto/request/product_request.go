package request

import "github.com/izaplantas/floricultura-api/internal/domain/entity"

// SaveProductRequest represents a product create/update request
type SaveProductRequest struct {
	Code        string                `json:"code" binding:"omitempty,max=100"`
	Name        string                `json:"name" binding:"required,min=2,max=255"`
	Description string                `json:"description"`
	Category    string                `json:"category" binding:"required"`
	CostPrice   float64               `json:"costPrice" binding:"min=0"`
	SalePrice   float64               `json:"salePrice" binding:"min=0"`
	Stock       int                   `json:"stock" binding:"min=0"`
	MinStock    int                   `json:"minStock" binding:"min=0"`
	Unit        string                `json:"unit" binding:"omitempty,max=20"`
	Status      string                `json:"status" binding:"omitempty,oneof=active inactive order discontinued"`
	Image       string                `json:"image"`
	Details     entity.ProductDetails `json:"details"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive order discontinued"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
