package gamification

import (
	"context"
	"time"

	"github.com/hammamikhairi/tasteverse/internal/domain"
)

// Compile-time interface checks.
var (
	_ domain.Scanner = (*MockScanner)(nil)
	_ domain.Orderer = (*MockOrderer)(nil)
)

const shelfLife = 7 * 24 * time.Hour

// MockScanner stands in for a camera barcode reader. Every scan yields a
// kilo of organic tomatoes expiring a week from now. Setting Err makes
// scans fail.
type MockScanner struct {
	Clock domain.Clock
	IDs   domain.IDGenerator
	Err   error
}

// Scan returns the simulated product.
func (s *MockScanner) Scan(ctx context.Context) (domain.PantryItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.PantryItem{}, err
	}
	if s.Err != nil {
		return domain.PantryItem{}, s.Err
	}
	return domain.PantryItem{
		ID:         "barcode_" + s.IDs.NewID(),
		Name:       "Organic Tomatoes",
		Category:   "Vegetables",
		Quantity:   1,
		Unit:       "kg",
		ExpiryDate: s.Clock.Now().Add(shelfLife),
		NutritionalInfo: domain.NutritionalInfo{
			Calories: 18,
			Protein:  0.9,
			Carbs:    3.9,
			Fat:      0.2,
		},
	}, nil
}

// MockOrderer pretends to place a grocery order. Setting Err makes orders
// fail.
type MockOrderer struct {
	Clock domain.Clock
	IDs   domain.IDGenerator
	Err   error
}

// Order returns a receipt for items.
func (o *MockOrderer) Order(ctx context.Context, items []string) (domain.OrderReceipt, error) {
	if err := ctx.Err(); err != nil {
		return domain.OrderReceipt{}, err
	}
	if o.Err != nil {
		return domain.OrderReceipt{}, o.Err
	}
	return domain.OrderReceipt{
		OrderID:  "order_" + o.IDs.NewID(),
		Items:    append([]string(nil), items...),
		PlacedAt: o.Clock.Now(),
	}, nil
}
