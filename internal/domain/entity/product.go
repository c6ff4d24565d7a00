package entity

import (
	"encoding/json"
	"math"
	"time"

	"github.com/izaplantas/floricultura-api/internal/domain/enum"
)

// Product represents an item in the nursery catalog
type Product struct {
	ID          string
	Code        string
	Name        string
	Description string
	Category    enum.Category
	CostPrice   int64 // Stored in cents
	SalePrice   int64 // Stored in cents
	Stock       int
	MinStock    int
	Unit        string
	Status      enum.ProductStatus
	Image       string
	Details     ProductDetails
	CreatedAt   time.Time
}

// ProductDetails holds the category-specific attributes of a product.
// Only the fields relevant to the product's category are populated.
type ProductDetails struct {
	ScientificName *string  `json:"scientificName,omitempty"`
	SunNeeds       *string  `json:"sunNeeds,omitempty"`
	WateringFreq   *string  `json:"wateringFreq,omitempty"`
	Care           *string  `json:"care,omitempty"`
	PH             *float64 `json:"ph,omitempty"`
	Composition    *string  `json:"composition,omitempty"`
	Granulometry   *string  `json:"granulometry,omitempty"`
	Weight         *string  `json:"weight,omitempty"`
	Material       *string  `json:"material,omitempty"`
	Dimensions     *string  `json:"dimensions,omitempty"`
}

// TrimForCategory returns a copy of the details with only the fields
// that apply to the given category.
func (d ProductDetails) TrimForCategory(c enum.Category) ProductDetails {
	switch c {
	case enum.CategoryPlants:
		return ProductDetails{
			ScientificName: d.ScientificName,
			SunNeeds:       d.SunNeeds,
			WateringFreq:   d.WateringFreq,
			Care:           d.Care,
		}
	case enum.CategorySoil, enum.CategorySubstrate:
		return ProductDetails{
			PH:           d.PH,
			Composition:  d.Composition,
			Granulometry: d.Granulometry,
			Weight:       d.Weight,
		}
	case enum.CategoryPots:
		return ProductDetails{
			Material:   d.Material,
			Dimensions: d.Dimensions,
		}
	}
	return ProductDetails{}
}

// IsLowStock reports whether the product is at or below its restock threshold
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// GetSalePriceDecimal returns the sale price as a decimal (for display)
func (p *Product) GetSalePriceDecimal() float64 {
	return float64(p.SalePrice) / 100
}

// SetCostPriceFromDecimal sets the cost price from a decimal value
func (p *Product) SetCostPriceFromDecimal(price float64) {
	p.CostPrice = CentsFromDecimal(price)
}

// SetSalePriceFromDecimal sets the sale price from a decimal value
func (p *Product) SetSalePriceFromDecimal(price float64) {
	p.SalePrice = CentsFromDecimal(price)
}

// CentsFromDecimal converts a decimal money value to cents
func CentsFromDecimal(v float64) int64 {
	return int64(math.Round(v * 100))
}

// productJSON is a helper struct for JSON marshaling with decimal prices
type productJSON struct {
	ID          string             `json:"id"`
	Code        string             `json:"code"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Category    enum.Category      `json:"category"`
	CostPrice   float64            `json:"costPrice"` // Decimal value for JSON
	SalePrice   float64            `json:"salePrice"` // Decimal value for JSON
	Stock       int                `json:"stock"`
	MinStock    int                `json:"minStock"`
	Unit        string             `json:"unit"`
	Status      enum.ProductStatus `json:"status"`
	Image       string             `json:"image,omitempty"`
	Details     ProductDetails     `json:"details"`
	CreatedAt   time.Time          `json:"createdAt"`
}

func (p Product) toJSON() productJSON {
	return productJSON{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		CostPrice:   p.GetCostPriceDecimal(),
		SalePrice:   p.GetSalePriceDecimal(),
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		Unit:        p.Unit,
		Status:      p.Status,
		Image:       p.Image,
		Details:     p.Details,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *Product) fromJSON(pj productJSON) {
	p.ID = pj.ID
	p.Code = pj.Code
	p.Name = pj.Name
	p.Description = pj.Description
	p.Category = pj.Category
	p.CostPrice = CentsFromDecimal(pj.CostPrice)
	p.SalePrice = CentsFromDecimal(pj.SalePrice)
	p.Stock = pj.Stock
	p.MinStock = pj.MinStock
	p.Unit = pj.Unit
	p.Status = pj.Status
	p.Image = pj.Image
	p.Details = pj.Details
	p.CreatedAt = pj.CreatedAt
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toJSON())
}

// UnmarshalJSON converts JSON with decimal prices into a Product
func (p *Product) UnmarshalJSON(data []byte) error {
	var pj productJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}
	p.fromJSON(pj)
	return nil
}
