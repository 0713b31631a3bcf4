package backoffice_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yazanstore/storefront/internal/backoffice"
	"github.com/yazanstore/storefront/internal/domain"
	"github.com/yazanstore/storefront/internal/shopfront"
	"github.com/yazanstore/storefront/internal/store"
)

func newManagers(t *testing.T) (*backoffice.Manager, *shopfront.Manager, *store.Database) {
	t.Helper()
	db, err := store.OpenDatabase(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	shop := shopfront.NewManager(db) // seeds first-run data
	admin := backoffice.NewManager(db)
	return admin, shop, db
}

func TestLoginLogout(t *testing.T) {
	admin, _, _ := newManagers(t)

	assert.False(t, admin.Login("admin", "wrong"))
	assert.False(t, admin.IsAuthenticated())

	require.True(t, admin.Login("admin", store.DefaultAdminPassword))
	require.True(t, admin.IsAuthenticated())
	user, ok := admin.CurrentAdmin()
	require.True(t, ok)
	assert.Equal(t, "admin", user.Username)
	assert.NotNil(t, user.LastLogin)

	admin.Logout()
	assert.False(t, admin.IsAuthenticated())
}

func TestSessionRestoredOnBuild(t *testing.T) {
	admin, _, db := newManagers(t)
	require.True(t, admin.Login("admin", store.DefaultAdminPassword))

	rebuilt := backoffice.NewManager(db)
	assert.True(t, rebuilt.IsAuthenticated())
}

func TestProductCRUDKeepsMirrorInSync(t *testing.T) {
	admin, _, db := newManagers(t)
	before := len(admin.Products())

	created := admin.AddProduct(&domain.Product{Name: "new", Price: 100, Category: domain.CategoryClothes})
	assert.Len(t, admin.Products(), before+1)

	updated, ok := admin.UpdateProduct(created.ID, store.Patch{"price": 150.0})
	require.True(t, ok)
	assert.Equal(t, 150.0, updated.Price)

	// failed update leaves the mirror untouched
	_, ok = admin.UpdateProduct("missing", store.Patch{"price": 1.0})
	assert.False(t, ok)
	assert.Len(t, admin.Products(), before+1)

	require.True(t, admin.DeleteProduct(created.ID))
	assert.Len(t, admin.Products(), before)
	_, found := db.Products.GetByID(created.ID)
	assert.False(t, found)
	assert.False(t, admin.DeleteProduct(created.ID))
}

// Writes made through one manager stay invisible to the other manager's
// mirror until that manager refreshes explicitly.
func TestMirrorsAreIndependent(t *testing.T) {
	admin, shop, _ := newManagers(t)
	before := len(shop.Products())

	admin.AddProduct(&domain.Product{Name: "admin only", Price: 10, Category: domain.CategoryShoes})

	assert.Len(t, shop.Products(), before, "storefront mirror must be stale")

	shop.RefreshProducts()
	assert.Len(t, shop.Products(), before+1)
}

func TestCategorySaveRecountsProducts(t *testing.T) {
	admin, _, _ := newManagers(t)

	var clothes *domain.Category
	for _, c := range admin.Categories() {
		if c.Slug == domain.CategoryClothes {
			clothes = c
			break
		}
	}
	require.NotNil(t, clothes)

	updated, ok := admin.UpdateCategory(clothes.ID, store.Patch{"name": "ملابس رجالية"})
	require.True(t, ok)
	assert.Equal(t, "ملابس رجالية", updated.Name)
	assert.Equal(t, 4, updated.ProductCount) // seed has 4 clothes products

	// the slug join key is immutable after creation
	updated, ok = admin.UpdateCategory(clothes.ID, store.Patch{"slug": "renamed"})
	require.True(t, ok)
	assert.Equal(t, domain.CategoryClothes, updated.Slug)

	created := admin.AddCategory(&domain.Category{Name: "جديد", Slug: "bags", IsActive: true})
	assert.Zero(t, created.ProductCount)
}

func TestOrderStatusUpdatesRefreshStats(t *testing.T) {
	admin, _, db := newManagers(t)
	order := db.Orders.Create(&domain.Order{
		CustomerName:  "Omar",
		Phone:         "0100",
		Total:         500,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.OrderPending,
	})
	admin.RefreshAll()
	require.Equal(t, 1, admin.Stats().PendingOrders)
	require.Zero(t, admin.Stats().TotalRevenue)

	_, ok := admin.UpdateOrderStatus(order.ID, domain.OrderConfirmed)
	require.True(t, ok)
	assert.Zero(t, admin.Stats().PendingOrders)

	_, ok = admin.UpdatePaymentStatus(order.ID, domain.PaymentPaid)
	require.True(t, ok)
	assert.Equal(t, 500.0, admin.Stats().TotalRevenue)

	require.True(t, admin.DeleteOrder(order.ID))
	assert.Zero(t, admin.Stats().TotalOrders)
}

func TestFilterOrders(t *testing.T) {
	admin, _, db := newManagers(t)
	db.Orders.Create(&domain.Order{CustomerName: "A", Phone: "0101", Status: domain.OrderPending, PaymentMethod: domain.PaymentCOD})
	db.Orders.Create(&domain.Order{CustomerName: "B", Phone: "0102", Status: domain.OrderShipped, PaymentMethod: domain.PaymentWallet})
	admin.RefreshAll()

	out := admin.FilterOrders(domain.OrderFilter{Status: domain.OrderPending})
	require.Len(t, out, 1)
	assert.Equal(t, "A", out[0].CustomerName)

	out = admin.FilterOrders(domain.OrderFilter{Search: "0102"})
	require.Len(t, out, 1)
	assert.Equal(t, "B", out[0].CustomerName)
}

func TestSetActiveAnnouncementIsExclusive(t *testing.T) {
	admin, _, db := newManagers(t)
	a := admin.AddAnnouncement(&domain.Announcement{Message: "a", IsActive: true})
	admin.AddAnnouncement(&domain.Announcement{Message: "b", IsActive: true})

	// seed announcement plus two more, several active at once
	activeCount := 0
	for _, ann := range db.Announcements.GetAll() {
		if ann.IsActive {
			activeCount++
		}
	}
	require.GreaterOrEqual(t, activeCount, 2)

	admin.SetActiveAnnouncement(a.ID)
	assertOnlyActive(t, db, a.ID)

	// idempotent under repeated calls
	admin.SetActiveAnnouncement(a.ID)
	assertOnlyActive(t, db, a.ID)

	// mirror replaced with the written result
	for _, ann := range admin.Announcements() {
		assert.Equal(t, ann.ID == a.ID, ann.IsActive)
	}
}

func assertOnlyActive(t *testing.T, db *store.Database, id string) {
	t.Helper()
	for _, ann := range db.Announcements.GetAll() {
		assert.Equal(t, ann.ID == id, ann.IsActive, "announcement %s", ann.ID)
	}
}

func TestReorderSliderImages(t *testing.T) {
	admin, _, db := newManagers(t)
	images := admin.SliderImages()
	require.Len(t, images, 2)

	// caller assigns the new order values, the store just replaces
	images[0], images[1] = images[1], images[0]
	for i, img := range images {
		img.Order = i + 1
	}
	admin.ReorderSliderImages(images)

	persisted := db.SliderImages.GetAll()
	require.Len(t, persisted, 2)
	assert.Equal(t, images[0].ID, persisted[0].ID)
	assert.Equal(t, 1, persisted[0].Order)
}

func TestUpdateSettingsMergesAndMirrors(t *testing.T) {
	admin, _, db := newManagers(t)

	updated := admin.UpdateSettings(store.Patch{"shippingCost": 80.0})
	assert.Equal(t, 80.0, updated.ShippingCost)
	assert.Equal(t, 80.0, admin.Settings().ShippingCost)
	assert.Equal(t, 80.0, db.Settings.Get().ShippingCost)
	// untouched fields keep defaults
	assert.Equal(t, "Yazan Store", updated.SiteName)
}
