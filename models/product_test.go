package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockStatusBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		want     StockStatus
	}{
		{"zero quantity is out of stock", 0, StockStatusOut},
		{"one is low stock", 1, StockStatusLow},
		{"ten is still low stock", 10, StockStatusLow},
		{"eleven is in stock", 11, StockStatusIn},
		{"large quantity is in stock", 500, StockStatusIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Quantity: tt.quantity}
			assert.Equal(t, tt.want, p.StockStatus())
		})
	}
}

func TestStockStatusIsDerivedFromQuantity(t *testing.T) {
	p := Product{ID: 1, Name: "AirPods Pro 2", Category: CategoryAccessory, Quantity: 0}
	assert.Equal(t, StockStatusOut, p.StockStatus())

	// restocking alone must flip the status, nothing else to update
	p.Quantity = 25
	assert.Equal(t, StockStatusIn, p.StockStatus())
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.IsValid(), "category %q should be valid", c)
	}
	assert.False(t, Category("Fridge").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestSeedProducts(t *testing.T) {
	seed := SeedProducts()
	assert.Len(t, seed, 8, "seed catalog should hold 8 products")

	seen := map[int]bool{}
	for _, p := range seed {
		assert.False(t, seen[p.ID], "seed id %d should be unique", p.ID)
		seen[p.ID] = true
		assert.True(t, p.Category.IsValid(), "seed product %q should have a valid category", p.Name)
		assert.GreaterOrEqual(t, p.Price, 0.0)
		assert.GreaterOrEqual(t, p.Quantity, 0)
	}
}
