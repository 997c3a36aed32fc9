package store

import (
	"log"
	"strconv"
	"time"

	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/ngocminh-dev/shop-admin-core/models"
	"github.com/ngocminh-dev/shop-admin-core/storage"
)

// Store is the single source of truth for the product and order collections
// during a session. Every mutation is validated first and persisted in full
// before it becomes observable to the caller, so the durable collections and
// the in-memory ones never diverge. Construct one per session with New and
// call Initialize before anything else.
type Store struct {
	storage  *storage.Store
	validate *validatorv10.Validate

	products []models.Product
	orders   []models.Order

	now         func() time.Time
	persistWarn func(error)
}

// New creates a Store over the given persistence adapter
func New(st *storage.Store) *Store {
	return &Store{
		storage:  st,
		validate: newValidator(),
		now:      time.Now,
		persistWarn: func(err error) {
			log.Printf("persist failed: %v", err)
		},
	}
}

// SetPersistErrorHandler routes write failures that happen after a completed
// mutation to fn instead of the default log line. The mutation itself is not
// rolled back; the session keeps running on the in-memory state.
func (s *Store) SetPersistErrorHandler(fn func(error)) {
	if fn != nil {
		s.persistWarn = fn
	}
}

// Initialize loads both collections from storage. Missing or unreadable
// product data is replaced by the seed catalog, missing or unreadable order
// data by an empty collection; either way the result is written back so
// storage and memory agree from the first render.
func (s *Store) Initialize() ([]models.Product, []models.Order) {
	products, err := storage.Load[models.Product](s.storage, storage.KeyProducts)
	if err != nil {
		log.Printf("loading %q: %v; falling back to seed catalog", storage.KeyProducts, err)
		products = nil
	}
	if len(products) == 0 {
		products = models.SeedProducts()
	}

	orders, err := storage.Load[models.Order](s.storage, storage.KeyOrders)
	if err != nil {
		log.Printf("loading %q: %v; falling back to empty collection", storage.KeyOrders, err)
		orders = []models.Order{}
	}

	s.products = products
	s.orders = orders
	s.persistProducts()
	s.persistOrders()

	return s.Products(), s.Orders()
}

// Products returns the current product collection in insertion order
func (s *Store) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Orders returns the current order collection in insertion order
func (s *Store) Orders() []models.Order {
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// ProductDraft carries operator input for a new product
type ProductDraft struct {
	Name     string
	Category models.Category
	Price    float64
	Quantity int
}

// CreateProduct validates the draft, assigns the next free identifier,
// appends the product and persists the collection before returning it.
func (s *Store) CreateProduct(draft ProductDraft) (models.Product, error) {
	product := models.Product{
		ID:       s.nextProductID(),
		Name:     draft.Name,
		Category: draft.Category,
		Price:    draft.Price,
		Quantity: draft.Quantity,
	}
	if err := s.validate.Struct(product); err != nil {
		return models.Product{}, toValidationError(err)
	}
	for _, existing := range s.products {
		if existing.ID == product.ID {
			return models.Product{}, ErrIDCollision
		}
	}

	s.products = append(s.products, product)
	s.persistProducts()
	return product, nil
}

// ProductPatch holds the fields an update may change; nil fields keep their
// current value.
type ProductPatch struct {
	Name     *string
	Category *models.Category
	Price    *float64
	Quantity *int
}

// UpdateProduct merges the patch into the stored product, re-validates the
// merged result against the creation rules and persists the collection.
func (s *Store) UpdateProduct(id int, patch ProductPatch) (models.Product, error) {
	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Product{}, &NotFoundError{Kind: "product", ID: strconv.Itoa(id)}
	}

	merged := s.products[idx]
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Category != nil {
		merged.Category = *patch.Category
	}
	if patch.Price != nil {
		merged.Price = *patch.Price
	}
	if patch.Quantity != nil {
		merged.Quantity = *patch.Quantity
	}
	if err := s.validate.Struct(merged); err != nil {
		return models.Product{}, toValidationError(err)
	}

	s.products[idx] = merged
	s.persistProducts()
	return merged, nil
}

// OrderDraft carries operator input for a new order. Status and creation
// date are not part of the draft: every order starts Pending, dated today.
type OrderDraft struct {
	CustomerName string
	Phone        string
	Address      string
	TotalAmount  float64
}

// CreateOrder validates the draft, derives the identifier and creation date
// from the current time, appends the order and persists the collection.
func (s *Store) CreateOrder(draft OrderDraft) (models.Order, error) {
	now := s.now()
	order := models.Order{
		ID:           models.NewOrderID(now),
		CustomerName: draft.CustomerName,
		Phone:        draft.Phone,
		Address:      draft.Address,
		TotalAmount:  draft.TotalAmount,
		Status:       models.OrderStatusPending,
		CreatedAt:    now.Format(models.OrderDateFormat),
	}
	if err := s.validate.Struct(order); err != nil {
		return models.Order{}, toValidationError(err)
	}
	for _, existing := range s.orders {
		if existing.ID == order.ID {
			return models.Order{}, ErrIDCollision
		}
	}

	s.orders = append(s.orders, order)
	s.persistOrders()
	return order, nil
}

// OrderPatch holds the fields an update may change; nil fields keep their
// current value. Identifier and creation date are immutable.
type OrderPatch struct {
	CustomerName *string
	Phone        *string
	Address      *string
	TotalAmount  *float64
	Status       *models.OrderStatus
}

// UpdateOrder merges the patch into the stored order, re-validates the
// merged result and persists the collection. Status may move to any of the
// four values in any order.
func (s *Store) UpdateOrder(id string, patch OrderPatch) (models.Order, error) {
	idx := -1
	for i := range s.orders {
		if s.orders[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Order{}, &NotFoundError{Kind: "order", ID: id}
	}

	merged := s.orders[idx]
	if patch.CustomerName != nil {
		merged.CustomerName = *patch.CustomerName
	}
	if patch.Phone != nil {
		merged.Phone = *patch.Phone
	}
	if patch.Address != nil {
		merged.Address = *patch.Address
	}
	if patch.TotalAmount != nil {
		merged.TotalAmount = *patch.TotalAmount
	}
	if patch.Status != nil {
		merged.Status = *patch.Status
	}
	if err := s.validate.Struct(merged); err != nil {
		return models.Order{}, toValidationError(err)
	}

	s.orders[idx] = merged
	s.persistOrders()
	return merged, nil
}

// nextProductID returns one past the highest identifier in the collection.
// The seed catalog occupies 1..8, so fresh products continue from 9.
func (s *Store) nextProductID() int {
	maxID := 0
	for _, p := range s.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func (s *Store) persistProducts() {
	if err := storage.Save(s.storage, storage.KeyProducts, s.products); err != nil {
		s.persistWarn(err)
	}
}

func (s *Store) persistOrders() {
	if err := storage.Save(s.storage, storage.KeyOrders, s.orders); err != nil {
		s.persistWarn(err)
	}
}
