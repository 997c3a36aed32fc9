package stats

import "github.com/ngocminh-dev/shop-admin-core/models"

// Summary holds the dashboard statistics computed over the full, unfiltered
// collections. OrdersByStatus always carries all four statuses, at zero when
// no order is in that state.
type Summary struct {
	TotalProducts   int
	TotalStockValue float64
	TotalOrders     int
	Revenue         float64
	OrdersByStatus  map[models.OrderStatus]int
}

// Summarize computes the summary on demand. It reads its inputs only;
// nothing is mutated or persisted. Revenue counts completed orders alone.
func Summarize(products []models.Product, orders []models.Order) Summary {
	summary := Summary{
		TotalProducts:  len(products),
		TotalOrders:    len(orders),
		OrdersByStatus: make(map[models.OrderStatus]int, 4),
	}

	for _, status := range models.OrderStatuses() {
		summary.OrdersByStatus[status] = 0
	}

	for _, p := range products {
		summary.TotalStockValue += p.Price * float64(p.Quantity)
	}

	for _, o := range orders {
		summary.OrdersByStatus[o.Status]++
		if o.Status == models.OrderStatusCompleted {
			summary.Revenue += o.TotalAmount
		}
	}

	return summary
}
