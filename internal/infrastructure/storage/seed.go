package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/izaplantas/floricultura-api/internal/domain/entity"
	"github.com/izaplantas/floricultura-api/internal/domain/enum"
)

type schemaDoc struct {
	Version  int       `json:"version"`
	SeededAt time.Time `json:"seededAt"`
}

// EnsureSeeded initializes missing collections. A fresh bucket gets a
// starter catalog plus empty order and finance collections; buckets that
// already carry data are left untouched. The cart is never seeded.
func (s *Store) EnsureSeeded(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	hasProducts, err := s.exists(ctx, KeyProducts)
	if err != nil {
		return err
	}
	if !hasProducts {
		if err := writeLocked(ctx, s, KeyProducts, DefaultCatalog()); err != nil {
			return err
		}
	}

	for _, key := range []string{KeyOrders, KeyFinance} {
		ok, err := s.exists(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			if err := writeLocked(ctx, s, key, []json.RawMessage{}); err != nil {
				return err
			}
		}
	}

	hasSchema, err := s.exists(ctx, KeySchema)
	if err != nil {
		return err
	}
	if !hasSchema {
		doc, err := json.Marshal(schemaDoc{Version: SchemaVersion, SeededAt: time.Now().UTC()})
		if err != nil {
			return &Failure{Op: "encode", Key: KeySchema, Err: err}
		}
		if err := s.bucket.WriteAll(ctx, KeySchema, doc, nil); err != nil {
			return &Failure{Op: "write", Key: KeySchema, Err: err}
		}
	}

	return nil
}

// DefaultCatalog returns the starter products written into an empty store
func DefaultCatalog() []entity.Product {
	sunNeeds := "Meia Sombra"
	wateringFreq := "2x por semana"
	care := "Evite sol direto nas folhas"
	material := "Cerâmica"
	dimensions := "30x30cm"

	return []entity.Product{
		{
			ID:          "1",
			Code:        "PL001",
			Name:        "Costela de Adão",
			Description: "Planta ornamental de folhas largas e recortadas",
			Category:    enum.CategoryPlants,
			CostPrice:   2000,
			SalePrice:   4500,
			Stock:       15,
			MinStock:    5,
			Unit:        "un",
			Status:      enum.ProductStatusActive,
			Details: entity.ProductDetails{
				ScientificName: strPtr("Monstera deliciosa"),
				SunNeeds:       &sunNeeds,
				WateringFreq:   &wateringFreq,
				Care:           &care,
			},
			CreatedAt: time.Now().UTC(),
		},
		{
			ID:          "2",
			Code:        "VS001",
			Name:        "Vaso Cerâmica Rústico",
			Description: "Vaso de cerâmica artesanal com acabamento rústico",
			Category:    enum.CategoryPots,
			CostPrice:   1500,
			SalePrice:   3290,
			Stock:       30,
			MinStock:    10,
			Unit:        "un",
			Status:      enum.ProductStatusActive,
			Details: entity.ProductDetails{
				Material:   &material,
				Dimensions: &dimensions,
			},
			CreatedAt: time.Now().UTC(),
		},
	}
}

func strPtr(s string) *string {
	return &s
}
