// Package backoffice holds the admin state: its own mirrors of the persisted
// collections, the authentication session and dashboard stats. Mirrors are
// independent from the storefront manager's; neither observes the other's
// writes until RefreshAll/Refresh* is invoked. Every mutation goes through
// the domain store first and touches the mirror only on success.
package backoffice

import (
	"strings"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/yazanstore/storefront/internal/domain"
	"github.com/yazanstore/storefront/internal/store"
)

// Event topics published on the manager bus after state changes.
const (
	TopicProductsChanged      = "products.changed"
	TopicCategoriesChanged    = "categories.changed"
	TopicOrdersChanged        = "orders.changed"
	TopicSliderChanged        = "slider.changed"
	TopicAnnouncementsChanged = "announcements.changed"
	TopicSettingsChanged      = "settings.changed"
	TopicSessionChanged       = "session.changed"
)

// Manager is the admin state manager.
type Manager struct {
	mu  sync.Mutex
	db  *store.Database
	bus EventBus.Bus

	currentAdmin  *domain.AdminUser
	products      []*domain.Product
	categories    []*domain.Category
	orders        []*domain.Order
	sliderImages  []*domain.SliderImage
	announcements []*domain.Announcement
	settings      domain.SiteSettings
	stats         domain.DashboardStats
}

// NewManager restores the persisted session pointer, loads all mirrors and
// returns the manager.
func NewManager(db *store.Database) *Manager {
	m := &Manager{db: db, bus: EventBus.New()}
	if user, ok := db.Auth.CurrentUser(); ok {
		m.currentAdmin = user
	}
	m.RefreshAll()
	return m
}

// Subscribe registers fn for a topic on the manager's private bus.
func (m *Manager) Subscribe(topic string, fn interface{}) error {
	return m.bus.Subscribe(topic, fn)
}

// Auth

// Login authenticates against the auth store and retains the session.
func (m *Manager) Login(username, password string) bool {
	user, ok := m.db.Auth.Login(username, password)
	if !ok {
		return false
	}
	m.mu.Lock()
	m.currentAdmin = user
	m.mu.Unlock()
	m.bus.Publish(TopicSessionChanged)
	return true
}

// Logout clears the session pointer and the in-memory session.
func (m *Manager) Logout() {
	m.db.Auth.Logout()
	m.mu.Lock()
	m.currentAdmin = nil
	m.mu.Unlock()
	m.bus.Publish(TopicSessionChanged)
}

func (m *Manager) CurrentAdmin() (*domain.AdminUser, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentAdmin, m.currentAdmin != nil
}

func (m *Manager) IsAuthenticated() bool {
	_, ok := m.CurrentAdmin()
	return ok
}

// ChangePassword delegates to the auth store.
func (m *Manager) ChangePassword(oldPassword, newPassword string) bool {
	return m.db.Auth.ChangePassword(oldPassword, newPassword)
}

// Refresh

// RefreshAll reloads every mirror from storage plus the dashboard stats.
func (m *Manager) RefreshAll() {
	m.mu.Lock()
	m.products = m.db.Products.GetAll()
	m.categories = m.db.Categories.GetAll()
	m.orders = m.db.Orders.GetAll()
	m.sliderImages = m.db.SliderImages.GetAll()
	m.announcements = m.db.Announcements.GetAll()
	m.settings = m.db.Settings.Get()
	m.mu.Unlock()
	m.RefreshStats()
}

// RefreshStats recomputes the dashboard stats from storage.
func (m *Manager) RefreshStats() {
	stats := m.db.Stats.GetDashboardStats()
	m.mu.Lock()
	m.stats = stats
	m.mu.Unlock()
}

// Mirror accessors

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

func (m *Manager) Stats() domain.DashboardStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stats
}

// Products

func (m *Manager) AddProduct(p *domain.Product) *domain.Product {
	created := m.db.Products.Create(p)
	m.mu.Lock()
	m.products = append(m.products, created)
	m.mu.Unlock()
	m.RefreshStats()
	m.bus.Publish(TopicProductsChanged)
	return created
}

func (m *Manager) UpdateProduct(id string, patch store.Patch) (*domain.Product, bool) {
	updated, ok := m.db.Products.Update(id, patch)
	if !ok {
		return nil, false
	}
	m.mu.Lock()
	for i, p := range m.products {
		if p.ID == id {
			m.products[i] = updated
			break
		}
	}
	m.mu.Unlock()
	m.bus.Publish(TopicProductsChanged)
	return updated, true
}

func (m *Manager) DeleteProduct(id string) bool {
	if !m.db.Products.Delete(id) {
		return false
	}
	m.mu.Lock()
	m.products = removeByID(m.products, id)
	m.mu.Unlock()
	m.RefreshStats()
	m.bus.Publish(TopicProductsChanged)
	return true
}

// Categories

func (m *Manager) AddCategory(c *domain.Category) *domain.Category {
	c.ProductCount = 0
	created := m.db.Categories.Create(c)
	m.mu.Lock()
	m.categories = append(m.categories, created)
	m.mu.Unlock()
	m.bus.Publish(TopicCategoriesChanged)
	return created
}

// UpdateCategory saves a category patch. The slug join key is immutable and
// stripped from patches; productCount is recomputed from the products mirror
// on every save.
func (m *Manager) UpdateCategory(id string, patch store.Patch) (*domain.Category, bool) {
	m.mu.Lock()
	current, ok := findByID(m.categories, id)
	if !ok {
		m.mu.Unlock()
		return nil, false
	}
	merged := make(store.Patch, len(patch)+1)
	for k, v := range patch {
		if k == "slug" {
			continue
		}
		merged[k] = v
	}
	merged["productCount"] = countProducts(m.products, current.Slug)
	m.mu.Unlock()

	updated, ok := m.db.Categories.Update(id, merged)
	if !ok {
		return nil, false
	}
	m.mu.Lock()
	for i, c := range m.categories {
		if c.ID == id {
			m.categories[i] = updated
			break
		}
	}
	m.mu.Unlock()
	m.bus.Publish(TopicCategoriesChanged)
	return updated, true
}

func (m *Manager) DeleteCategory(id string) bool {
	if !m.db.Categories.Delete(id) {
		return false
	}
	m.mu.Lock()
	m.categories = removeByID(m.categories, id)
	m.mu.Unlock()
	m.bus.Publish(TopicCategoriesChanged)
	return true
}

// Orders

func (m *Manager) UpdateOrderStatus(id string, status domain.OrderStatus) (*domain.Order, bool) {
	return m.updateOrder(id, store.Patch{"status": status})
}

func (m *Manager) UpdatePaymentStatus(id string, status domain.PaymentStatus) (*domain.Order, bool) {
	return m.updateOrder(id, store.Patch{"paymentStatus": status})
}

func (m *Manager) updateOrder(id string, patch store.Patch) (*domain.Order, bool) {
	updated, ok := m.db.Orders.Update(id, patch)
	if !ok {
		return nil, false
	}
	m.mu.Lock()
	for i, o := range m.orders {
		if o.ID == id {
			m.orders[i] = updated
			break
		}
	}
	m.mu.Unlock()
	m.RefreshStats()
	m.bus.Publish(TopicOrdersChanged)
	return updated, true
}

func (m *Manager) DeleteOrder(id string) bool {
	if !m.db.Orders.Delete(id) {
		return false
	}
	m.mu.Lock()
	m.orders = removeByID(m.orders, id)
	m.mu.Unlock()
	m.RefreshStats()
	m.bus.Publish(TopicOrdersChanged)
	return true
}

// FilterOrders applies every set filter constraint over the orders mirror.
func (m *Manager) FilterOrders(f domain.OrderFilter) []*domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	search := strings.ToLower(f.Search)
	var out []*domain.Order
	for _, o := range m.orders {
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
			continue
		}
		if f.PaymentMethod != "" && o.PaymentMethod != f.PaymentMethod {
			continue
		}
		if !f.Since.IsZero() && o.CreatedAt.Before(f.Since) {
			continue
		}
		if !f.Until.IsZero() && o.CreatedAt.After(f.Until) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) &&
			!strings.Contains(o.Phone, search) &&
			!strings.Contains(strings.ToLower(o.ID), search) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Slider

func (m *Manager) AddSliderImage(s *domain.SliderImage) *domain.SliderImage {
	created := m.db.SliderImages.Create(s)
	m.mu.Lock()
	m.sliderImages = append(m.sliderImages, created)
	m.mu.Unlock()
	m.bus.Publish(TopicSliderChanged)
	return created
}

func (m *Manager) UpdateSliderImage(id string, patch store.Patch) (*domain.SliderImage, bool) {
	updated, ok := m.db.SliderImages.Update(id, patch)
	if !ok {
		return nil, false
	}
	m.mu.Lock()
	for i, s := range m.sliderImages {
		if s.ID == id {
			m.sliderImages[i] = updated
			break
		}
	}
	m.mu.Unlock()
	m.bus.Publish(TopicSliderChanged)
	return updated, true
}

func (m *Manager) DeleteSliderImage(id string) bool {
	if !m.db.SliderImages.Delete(id) {
		return false
	}
	m.mu.Lock()
	m.sliderImages = removeByID(m.sliderImages, id)
	m.mu.Unlock()
	m.bus.Publish(TopicSliderChanged)
	return true
}

// ReorderSliderImages replaces the whole collection. The caller assigns the
// new sequential order values before calling; no renumbering happens here.
func (m *Manager) ReorderSliderImages(images []*domain.SliderImage) {
	m.db.SliderImages.SetAll(images)
	m.mu.Lock()
	m.sliderImages = append([]*domain.SliderImage(nil), images...)
	m.mu.Unlock()
	m.bus.Publish(TopicSliderChanged)
}

// Announcements

func (m *Manager) AddAnnouncement(a *domain.Announcement) *domain.Announcement {
	created := m.db.Announcements.Create(a)
	m.mu.Lock()
	m.announcements = append(m.announcements, created)
	m.mu.Unlock()
	m.bus.Publish(TopicAnnouncementsChanged)
	return created
}

func (m *Manager) UpdateAnnouncement(id string, patch store.Patch) (*domain.Announcement, bool) {
	updated, ok := m.db.Announcements.Update(id, patch)
	if !ok {
		return nil, false
	}
	m.mu.Lock()
	for i, a := range m.announcements {
		if a.ID == id {
			m.announcements[i] = updated
			break
		}
	}
	m.mu.Unlock()
	m.bus.Publish(TopicAnnouncementsChanged)
	return updated, true
}

func (m *Manager) DeleteAnnouncement(id string) bool {
	if !m.db.Announcements.Delete(id) {
		return false
	}
	m.mu.Lock()
	m.announcements = removeByID(m.announcements, id)
	m.mu.Unlock()
	m.bus.Publish(TopicAnnouncementsChanged)
	return true
}

// SetActiveAnnouncement loads all announcements fresh from storage, marks
// exactly the targeted id active and everything else inactive, writes the
// whole set back and replaces the mirror with that result. Idempotent.
func (m *Manager) SetActiveAnnouncement(id string) {
	all := m.db.Announcements.GetAll()
	for _, a := range all {
		a.IsActive = a.ID == id
	}
	m.db.Announcements.SetAll(all)
	m.mu.Lock()
	m.announcements = all
	m.mu.Unlock()
	m.bus.Publish(TopicAnnouncementsChanged)
}

// Settings

// UpdateSettings shallow-merges the patch through the settings store and
// mirrors the merged result.
func (m *Manager) UpdateSettings(patch store.Patch) domain.SiteSettings {
	updated := m.db.Settings.Update(patch)
	m.mu.Lock()
	m.settings = updated
	m.mu.Unlock()
	m.bus.Publish(TopicSettingsChanged)
	return updated
}

// helpers

func findByID[T store.Entity](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func removeByID[T store.Entity](items []T, id string) []T {
	kept := items[:0:0]
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	return kept
}

func countProducts(products []*domain.Product, slug string) int {
	var n int
	for _, p := range products {
		if p.Category == slug {
			n++
		}
	}
	return n
}
