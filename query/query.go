package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ngocminh-dev/shop-admin-core/models"
)

// SortField names a sortable column
type SortField string

const (
	SortByName     SortField = "name"
	SortByCategory SortField = "category"
	SortByPrice    SortField = "price"
	SortByQuantity SortField = "quantity"

	SortByCustomer    SortField = "customerName"
	SortByTotalAmount SortField = "totalAmount"
	SortByCreatedAt   SortField = "createdAt"
	SortByID          SortField = "id"
)

// Sort orders a view by a single field. Equal keys keep their relative
// input order.
type Sort struct {
	Field      SortField
	Descending bool
}

// ProductCriteria filters and optionally sorts a product view. Zero-value
// criteria match everything; all supplied criteria must hold at once.
// Status is matched against the stock status derived from quantity.
type ProductCriteria struct {
	Name     string
	Category *models.Category
	Status   *models.StockStatus
	MinPrice *float64
	MaxPrice *float64
	Sort     *Sort
}

// OrderCriteria filters and optionally sorts an order view
type OrderCriteria struct {
	Customer  string
	Status    *models.OrderStatus
	MinAmount *float64
	MaxAmount *float64
	Sort      *Sort
}

// Engine derives read-only views from collections. It holds no collection
// state of its own; text ordering uses Vietnamese collation to match how
// the catalog names compare for an operator.
type Engine struct {
	collator *collate.Collator
}

// NewEngine returns an Engine ready for use
func NewEngine() *Engine {
	return &Engine{collator: collate.New(language.Vietnamese)}
}

// Products returns a new slice holding the products that match every
// supplied criterion, sorted if requested. The input is never mutated or
// reordered.
func (e *Engine) Products(in []models.Product, c ProductCriteria) []models.Product {
	needle := strings.ToLower(c.Name)

	out := make([]models.Product, 0, len(in))
	for _, p := range in {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if c.Category != nil && p.Category != *c.Category {
			continue
		}
		if c.Status != nil && p.StockStatus() != *c.Status {
			continue
		}
		if c.MinPrice != nil && p.Price < *c.MinPrice {
			continue
		}
		if c.MaxPrice != nil && p.Price > *c.MaxPrice {
			continue
		}
		out = append(out, p)
	}

	if c.Sort != nil {
		e.sortProducts(out, *c.Sort)
	}
	return out
}

// Orders is the order-collection counterpart of Products
func (e *Engine) Orders(in []models.Order, c OrderCriteria) []models.Order {
	needle := strings.ToLower(c.Customer)

	out := make([]models.Order, 0, len(in))
	for _, o := range in {
		if needle != "" && !strings.Contains(strings.ToLower(o.CustomerName), needle) {
			continue
		}
		if c.Status != nil && o.Status != *c.Status {
			continue
		}
		if c.MinAmount != nil && o.TotalAmount < *c.MinAmount {
			continue
		}
		if c.MaxAmount != nil && o.TotalAmount > *c.MaxAmount {
			continue
		}
		out = append(out, o)
	}

	if c.Sort != nil {
		e.sortOrders(out, *c.Sort)
	}
	return out
}

func (e *Engine) sortProducts(items []models.Product, s Sort) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if s.Descending {
			a, b = b, a
		}
		switch s.Field {
		case SortByName:
			return e.collator.CompareString(a.Name, b.Name) < 0
		case SortByCategory:
			return e.collator.CompareString(string(a.Category), string(b.Category)) < 0
		case SortByPrice:
			return a.Price < b.Price
		case SortByQuantity:
			return a.Quantity < b.Quantity
		}
		return false
	})
}

func (e *Engine) sortOrders(items []models.Order, s Sort) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if s.Descending {
			a, b = b, a
		}
		switch s.Field {
		case SortByCustomer:
			return e.collator.CompareString(a.CustomerName, b.CustomerName) < 0
		case SortByTotalAmount:
			return a.TotalAmount < b.TotalAmount
		case SortByCreatedAt:
			// YYYY-MM-DD sorts chronologically as plain text
			return a.CreatedAt < b.CreatedAt
		case SortByID:
			return a.ID < b.ID
		}
		return false
	})
}
