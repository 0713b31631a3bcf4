package store_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yazanstore/storefront/internal/domain"
	"github.com/yazanstore/storefront/internal/store"
)

func openDB(t *testing.T) *store.Database {
	t.Helper()
	db, err := store.OpenDatabase(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCollectionEmptyBeforeFirstWrite(t *testing.T) {
	db := openDB(t)
	require.Empty(t, db.Products.GetAll())
}

func TestCollectionCreateAndGetByID(t *testing.T) {
	db := openDB(t)

	created := db.Products.Create(&domain.Product{
		Name:     "قميص أبيض كلاسيكي",
		Price:    799,
		Category: domain.CategoryClothes,
		Sizes:    []string{"M", "L"},
		InStock:  true,
	})
	require.NotEmpty(t, created.ID)
	assert.True(t, strings.HasPrefix(created.ID, store.KeyProducts+"-"))
	assert.False(t, created.CreatedAt.IsZero())
	assert.False(t, created.UpdatedAt.IsZero())

	got, ok := db.Products.GetByID(created.ID)
	require.True(t, ok)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Price, got.Price)
	assert.Equal(t, created.Category, got.Category)
	assert.Equal(t, created.Sizes, got.Sizes)
	assert.True(t, got.InStock)
}

func TestCollectionCreateKeepsExplicitID(t *testing.T) {
	db := openDB(t)
	created := db.Products.Create(&domain.Product{ID: "prod-x", Name: "x"})
	assert.Equal(t, "prod-x", created.ID)
}

func TestCollectionUpdateShallowMerge(t *testing.T) {
	db := openDB(t)
	created := db.Products.Create(&domain.Product{
		Name:        "حزام جلد",
		Price:       399,
		Category:    domain.CategoryAccessories,
		Description: "حزام جلد طبيعي",
		InStock:     true,
	})
	createdAt := created.CreatedAt

	time.Sleep(5 * time.Millisecond)
	updated, ok := db.Products.Update(created.ID, store.Patch{
		"price":    299.0,
		"featured": true,
	})
	require.True(t, ok)
	assert.Equal(t, 299.0, updated.Price)
	assert.True(t, updated.Featured)
	// untouched fields survive the merge
	assert.Equal(t, "حزام جلد", updated.Name)
	assert.Equal(t, "حزام جلد طبيعي", updated.Description)
	assert.True(t, updated.InStock)
	assert.True(t, updated.CreatedAt.Equal(createdAt))
	assert.True(t, updated.UpdatedAt.After(createdAt))

	_, ok = db.Products.Update("no-such-id", store.Patch{"price": 1.0})
	assert.False(t, ok)
}

func TestCollectionDelete(t *testing.T) {
	db := openDB(t)
	a := db.Products.Create(&domain.Product{Name: "a"})
	db.Products.Create(&domain.Product{Name: "b"})

	require.True(t, db.Products.Delete(a.ID))
	assert.Len(t, db.Products.GetAll(), 1)

	// deleting a missing id reports false and leaves the collection alone
	require.False(t, db.Products.Delete("no-such-id"))
	assert.Len(t, db.Products.GetAll(), 1)
}

func TestCollectionSetAllReplaces(t *testing.T) {
	db := openDB(t)
	db.SliderImages.SetAll([]*domain.SliderImage{
		{ID: "s-1", Order: 2},
		{ID: "s-2", Order: 1},
	})
	db.SliderImages.SetAll([]*domain.SliderImage{
		{ID: "s-2", Order: 1},
		{ID: "s-1", Order: 2},
	})
	all := db.SliderImages.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "s-2", all[0].ID)
}

func TestCollectionGeneratedIDsAreUnique(t *testing.T) {
	db := openDB(t)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		p := db.Products.Create(&domain.Product{Name: "p"})
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}
