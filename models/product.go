package models

// Category classifies a product in the catalog
type Category string

const (
	CategoryLaptop    Category = "Laptop"
	CategoryPhone     Category = "Phone"
	CategoryTablet    Category = "Tablet"
	CategoryAccessory Category = "Accessory"
)

// Categories returns every valid category in display order
func Categories() []Category {
	return []Category{CategoryLaptop, CategoryPhone, CategoryTablet, CategoryAccessory}
}

// IsValid reports whether c is one of the known categories
func (c Category) IsValid() bool {
	switch c {
	case CategoryLaptop, CategoryPhone, CategoryTablet, CategoryAccessory:
		return true
	}
	return false
}

// StockStatus is derived from a product's quantity and is never persisted
type StockStatus string

const (
	StockStatusOut StockStatus = "OutOfStock"
	StockStatusLow StockStatus = "LowStock"
	StockStatusIn  StockStatus = "InStock"
)

// Product represents one catalog entry
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name" validate:"required"`
	Category Category `json:"category" validate:"required,oneof=Laptop Phone Tablet Accessory"`
	Price    float64  `json:"price" validate:"gte=0"`
	Quantity int      `json:"quantity" validate:"gte=0"`
}

// StockStatus computes the stock classification from the current quantity:
// 0 is out of stock, 1-10 is low, anything above is in stock.
func (p Product) StockStatus() StockStatus {
	switch {
	case p.Quantity == 0:
		return StockStatusOut
	case p.Quantity <= 10:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// SeedProducts returns the default catalog used when no persisted
// collection exists yet. IDs occupy 1..8; new products continue from there.
func SeedProducts() []Product {
	return []Product{
		{ID: 1, Name: "Laptop Dell XPS 13", Category: CategoryLaptop, Price: 25000000, Quantity: 15},
		{ID: 2, Name: "iPhone 15 Pro Max", Category: CategoryPhone, Price: 30000000, Quantity: 8},
		{ID: 3, Name: "Samsung Galaxy S24", Category: CategoryPhone, Price: 22000000, Quantity: 20},
		{ID: 4, Name: "iPad Air M2", Category: CategoryTablet, Price: 18000000, Quantity: 5},
		{ID: 5, Name: "MacBook Air M3", Category: CategoryLaptop, Price: 28000000, Quantity: 12},
		{ID: 6, Name: "AirPods Pro 2", Category: CategoryAccessory, Price: 6000000, Quantity: 0},
		{ID: 7, Name: "Samsung Galaxy Tab S9", Category: CategoryTablet, Price: 15000000, Quantity: 7},
		{ID: 8, Name: "Logitech MX Master 3", Category: CategoryAccessory, Price: 2500000, Quantity: 25},
	}
}
