// Package shopfront holds the storefront state: in-memory mirrors of the
// persisted catalog plus the session cart. Mirrors are loaded from storage
// when the manager is built and thereafter reflect only this manager's own
// mutations; writes made through the back-office manager stay invisible
// until an explicit Refresh call. That staleness is a documented property
// of the system, not an accident.
package shopfront

import (
	"sort"
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/yazanstore/storefront/internal/domain"
	"github.com/yazanstore/storefront/internal/store"
)

// Event topics published on the manager bus after state changes.
const (
	TopicCartChanged     = "cart.changed"
	TopicProductsChanged = "products.changed"
	TopicOrderPlaced     = "order.placed"
)

// Manager is the catalog/cart state manager.
type Manager struct {
	mu  sync.Mutex
	db  *store.Database
	bus EventBus.Bus

	products      []*domain.Product
	categories    []*domain.Category
	orders        []*domain.Order
	sliderImages  []*domain.SliderImage
	announcements []*domain.Announcement
	settings      domain.SiteSettings
	cart          []domain.CartItem
}

// NewManager seeds first-run data, loads all mirrors from storage and
// returns the manager.
func NewManager(db *store.Database) *Manager {
	m := &Manager{db: db, bus: EventBus.New()}
	db.Initialize()
	m.RefreshAll()
	return m
}

// Subscribe registers fn for a topic on the manager's private bus.
func (m *Manager) Subscribe(topic string, fn interface{}) error {
	return m.bus.Subscribe(topic, fn)
}

// Refresh functions reload a single mirror from storage.

func (m *Manager) RefreshProducts() {
	m.mu.Lock()
	m.products = m.db.Products.GetAll()
	m.mu.Unlock()
	m.bus.Publish(TopicProductsChanged)
}

func (m *Manager) RefreshCategories() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = m.db.Categories.GetAll()
}

func (m *Manager) RefreshOrders() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = m.db.Orders.GetAll()
}

func (m *Manager) RefreshSliderImages() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sliderImages = m.db.SliderImages.GetAll()
}

func (m *Manager) RefreshAnnouncements() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.announcements = m.db.Announcements.GetAll()
}

func (m *Manager) RefreshSettings() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = m.db.Settings.Get()
}

// RefreshAll reloads every mirror, cart included.
func (m *Manager) RefreshAll() {
	m.RefreshProducts()
	m.RefreshCategories()
	m.RefreshOrders()
	m.RefreshSliderImages()
	m.RefreshAnnouncements()
	m.RefreshSettings()
	m.mu.Lock()
	m.cart = m.db.Cart.GetAll()
	m.mu.Unlock()
}

// Mirror accessors return copies of the mirror slices.

func (m *Manager) Products() []*domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Product(nil), m.products...)
}

func (m *Manager) Categories() []*domain.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Category(nil), m.categories...)
}

func (m *Manager) Orders() []*domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Order(nil), m.orders...)
}

func (m *Manager) SliderImages() []*domain.SliderImage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.SliderImage(nil), m.sliderImages...)
}

func (m *Manager) Announcements() []*domain.Announcement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Announcement(nil), m.announcements...)
}

func (m *Manager) Settings() domain.SiteSettings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

func (m *Manager) Cart() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CartItem(nil), m.cart...)
}

// AddToCart merges the product into an existing line when the
// (product id, size, color) triple matches, otherwise appends a new line.
// Quantities below one are treated as one.
func (m *Manager) AddToCart(p *domain.Product, quantity int, size, color string) {
	if quantity < 1 {
		quantity = 1
	}
	m.mu.Lock()
	merged := false
	for i := range m.cart {
		if m.cart[i].Variant(p.ID, size, color) {
			m.cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		m.cart = append(m.cart, domain.CartItem{
			Product:  *p,
			Quantity: quantity,
			Size:     size,
			Color:    color,
		})
	}
	m.db.Cart.SetAll(m.cart)
	m.mu.Unlock()
	m.bus.Publish(TopicCartChanged)
}

// RemoveFromCart drops every line for the product id, size/color variants
// included.
func (m *Manager) RemoveFromCart(productID string) {
	m.mu.Lock()
	kept := m.cart[:0:0]
	for _, item := range m.cart {
		if item.Product.ID != productID {
			kept = append(kept, item)
		}
	}
	m.cart = kept
	m.db.Cart.SetAll(m.cart)
	m.mu.Unlock()
	m.bus.Publish(TopicCartChanged)
}

// UpdateQuantity sets the quantity on every line for the product id, again
// across all variants. A quantity of zero or less removes the product.
func (m *Manager) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		m.RemoveFromCart(productID)
		return
	}
	m.mu.Lock()
	for i := range m.cart {
		if m.cart[i].Product.ID == productID {
			m.cart[i].Quantity = quantity
		}
	}
	m.db.Cart.SetAll(m.cart)
	m.mu.Unlock()
	m.bus.Publish(TopicCartChanged)
}

// ClearCart empties the cart and its storage key.
func (m *Manager) ClearCart() {
	m.mu.Lock()
	m.cart = nil
	m.db.Cart.Clear()
	m.mu.Unlock()
	m.bus.Publish(TopicCartChanged)
}

// CartTotal sums price times quantity over all lines.
func (m *Manager) CartTotal() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cartTotal(m.cart)
}

// CartCount sums quantities over all lines.
func (m *Manager) CartCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int
	for _, item := range m.cart {
		count += item.Quantity
	}
	return count
}

func cartTotal(cart []domain.CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// CheckoutInfo is the customer input collected at checkout.
type CheckoutInfo struct {
	Name          string
	Phone         string
	Address       string
	Email         string
	Notes         string
	PaymentMethod domain.PaymentMethod
	TransactionID string
	PaymentProof  string
}

// Checkout turns the cart into an order. Shipping is zero when the subtotal
// reaches the free-shipping threshold, otherwise the flat shipping cost;
// subtotal, shipping and total are stored verbatim on the order. On success
// the cart is cleared and the orders mirror refreshed.
func (m *Manager) Checkout(info CheckoutInfo) (*domain.Order, error) {
	m.mu.Lock()
	if len(m.cart) == 0 {
		m.mu.Unlock()
		return nil, errors.New("cart is empty")
	}

	subtotal := cartTotal(m.cart)
	shipping := m.settings.ShippingCost
	if subtotal >= m.settings.FreeShippingThreshold {
		shipping = 0
	}

	items := make([]domain.OrderItem, 0, len(m.cart))
	for _, line := range m.cart {
		items = append(items, domain.OrderItem{
			Product: domain.ProductSnapshot{
				ID:       line.Product.ID,
				Name:     line.Product.Name,
				Price:    line.Product.Price,
				Image:    line.Product.Image,
				Category: line.Product.Category,
			},
			Quantity: line.Quantity,
			Size:     line.Size,
			Color:    line.Color,
		})
	}

	order := &domain.Order{
		CustomerName:  info.Name,
		Phone:         info.Phone,
		Address:       info.Address,
		Email:         info.Email,
		Notes:         info.Notes,
		Items:         items,
		Subtotal:      subtotal,
		Shipping:      shipping,
		Total:         subtotal + shipping,
		PaymentMethod: info.PaymentMethod,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.OrderPending,
		PaymentProof:  info.PaymentProof,
	}
	if info.PaymentMethod == domain.PaymentWallet {
		order.TransactionID = info.TransactionID
	}

	order = m.db.Orders.Create(order)
	m.cart = nil
	m.db.Cart.Clear()
	m.orders = m.db.Orders.GetAll()
	m.mu.Unlock()

	m.bus.Publish(TopicCartChanged)
	m.bus.Publish(TopicOrderPlaced, order.ID)
	return order, nil
}

// Catalog views are pure filters over the in-memory product mirror.

func (m *Manager) ProductsByCategory(slug string) []*domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Product
	for _, p := range m.products {
		if p.Category == slug {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) ProductByID(id string) (*domain.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (m *Manager) FeaturedProducts() []*domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Product
	for _, p := range m.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) NewProducts() []*domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Product
	for _, p := range m.products {
		if p.IsNew {
			out = append(out, p)
		}
	}
	return out
}

// FilterProducts applies every set filter constraint over the mirror.
func (m *Manager) FilterProducts(f domain.ProductFilter) []*domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	search := strings.ToLower(f.Search)
	var out []*domain.Product
	for _, p := range m.products {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.Featured != nil && p.Featured != *f.Featured {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ActiveAnnouncement returns the announcement shown in the notification
// bar, if any is active.
func (m *Manager) ActiveAnnouncement() (*domain.Announcement, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.announcements {
		if a.IsActive {
			return a, true
		}
	}
	return nil, false
}

// ActiveSliderImages returns the active slides in display order.
func (m *Manager) ActiveSliderImages() []*domain.SliderImage {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.SliderImage
	for _, s := range m.sliderImages {
		if s.IsActive {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}
