package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngocminh-dev/shop-admin-core/models"
)

func TestSummarizeEmptyCollections(t *testing.T) {
	summary := Summarize(nil, nil)

	assert.Zero(t, summary.TotalProducts)
	assert.Zero(t, summary.TotalStockValue)
	assert.Zero(t, summary.TotalOrders)
	assert.Zero(t, summary.Revenue)
	assert.Len(t, summary.OrdersByStatus, 4, "every status must be present even with no orders")
	for _, status := range models.OrderStatuses() {
		count, ok := summary.OrdersByStatus[status]
		assert.True(t, ok, "status %q should have a key", status)
		assert.Zero(t, count)
	}
}

func TestSummarizeStockValue(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Laptop Dell XPS 13", Category: models.CategoryLaptop, Price: 25000000, Quantity: 15},
		{ID: 6, Name: "AirPods Pro 2", Category: models.CategoryAccessory, Price: 6000000, Quantity: 0},
		{ID: 8, Name: "Logitech MX Master 3", Category: models.CategoryAccessory, Price: 2500000, Quantity: 25},
	}

	summary := Summarize(products, nil)
	assert.Equal(t, 3, summary.TotalProducts)
	assert.Equal(t, 25000000.0*15+2500000.0*25, summary.TotalStockValue, "out-of-stock items contribute zero")
}

func TestRevenueCountsOnlyCompletedOrders(t *testing.T) {
	orders := []models.Order{
		{ID: "DH1", TotalAmount: 100, Status: models.OrderStatusCompleted},
		{ID: "DH2", TotalAmount: 50, Status: models.OrderStatusPending},
	}

	summary := Summarize(nil, orders)
	assert.Equal(t, 100.0, summary.Revenue)
}

func TestHistogramSumsToTotalOrders(t *testing.T) {
	orders := []models.Order{
		{ID: "DH1", Status: models.OrderStatusPending},
		{ID: "DH2", Status: models.OrderStatusPending},
		{ID: "DH3", Status: models.OrderStatusShipping},
		{ID: "DH4", Status: models.OrderStatusCompleted},
		{ID: "DH5", Status: models.OrderStatusCancelled},
	}

	summary := Summarize(nil, orders)
	assert.Equal(t, 5, summary.TotalOrders)

	sum := 0
	for _, count := range summary.OrdersByStatus {
		sum += count
	}
	assert.Equal(t, summary.TotalOrders, sum)

	assert.Equal(t, 2, summary.OrdersByStatus[models.OrderStatusPending])
	assert.Equal(t, 1, summary.OrdersByStatus[models.OrderStatusShipping])
}

func TestSummarizeLargeCurrencyValues(t *testing.T) {
	// tens of millions per unit across hundreds of units stays exact in float64
	products := []models.Product{
		{ID: 1, Price: 30000000, Quantity: 200},
		{ID: 2, Price: 28000000, Quantity: 150},
	}
	orders := []models.Order{
		{ID: "DH1", TotalAmount: 30000000, Status: models.OrderStatusCompleted},
		{ID: "DH2", TotalAmount: 28000000, Status: models.OrderStatusCompleted},
	}

	summary := Summarize(products, orders)
	assert.Equal(t, 10200000000.0, summary.TotalStockValue)
	assert.Equal(t, 58000000.0, summary.Revenue)
}
