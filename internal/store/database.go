package store

import "github.com/yazanstore/storefront/internal/domain"

// Storage keys. Pre-existing data written under these names is picked up
// as-is, so they must not change.
const (
	KeyProducts      = "products"
	KeyCategories    = "categories"
	KeyOrders        = "orders"
	KeySliderImages  = "slider_images"
	KeyAnnouncements = "announcements"
	KeySettings      = "settings"
	KeyAdminUsers    = "admin_users"
	KeyCurrentAdmin  = "current_admin"
	KeyCart          = "cart"
	KeyAdminPassword = "admin_password"
)

// Database bundles every domain store over one KV file. All members share
// the same backing file and the same disabled-mode semantics.
type Database struct {
	kv *KV

	Products      *Collection[*domain.Product]
	Categories    *Collection[*domain.Category]
	Orders        *Collection[*domain.Order]
	SliderImages  *Collection[*domain.SliderImage]
	Announcements *Collection[*domain.Announcement]

	Settings *SettingsStore
	Auth     *AuthStore
	Cart     *CartStore
	Stats    *StatsStore
}

// OpenDatabase opens the KV file at path and wires all domain stores.
func OpenDatabase(path string) (*Database, error) {
	kv, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewDatabase(kv), nil
}

// NewDatabase wires domain stores over an already-open KV.
func NewDatabase(kv *KV) *Database {
	d := &Database{
		kv:            kv,
		Products:      NewCollection[*domain.Product](kv, KeyProducts),
		Categories:    NewCollection[*domain.Category](kv, KeyCategories),
		Orders:        NewCollection[*domain.Order](kv, KeyOrders),
		SliderImages:  NewCollection[*domain.SliderImage](kv, KeySliderImages),
		Announcements: NewCollection[*domain.Announcement](kv, KeyAnnouncements),
		Settings:      &SettingsStore{kv: kv},
		Cart:          &CartStore{kv: kv},
	}
	d.Auth = &AuthStore{kv: kv, users: NewCollection[*domain.AdminUser](kv, KeyAdminUsers)}
	d.Stats = &StatsStore{orders: d.Orders, products: d.Products}
	return d
}

// KV exposes the underlying adapter.
func (d *Database) KV() *KV { return d.kv }

// Close releases the backing file.
func (d *Database) Close() error { return d.kv.Close() }
