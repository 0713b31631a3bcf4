package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yazanstore/storefront/internal/domain"
)

func TestInitializeSeedsFirstRun(t *testing.T) {
	db := openDB(t)
	db.Initialize()

	assert.Len(t, db.Products.GetAll(), 10)
	categories := db.Categories.GetAll()
	require.Len(t, categories, 3)
	slugs := make(map[string]bool)
	for _, c := range categories {
		slugs[c.Slug] = true
	}
	assert.True(t, slugs[domain.CategoryClothes])
	assert.True(t, slugs[domain.CategoryShoes])
	assert.True(t, slugs[domain.CategoryAccessories])

	assert.Len(t, db.SliderImages.GetAll(), 2)

	announcements := db.Announcements.GetAll()
	require.Len(t, announcements, 1)
	assert.True(t, announcements[0].IsActive)

	assert.Equal(t, 2000.0, db.Settings.Get().FreeShippingThreshold)

	// orders and cart are never seeded
	assert.Empty(t, db.Orders.GetAll())
	assert.Empty(t, db.Cart.GetAll())
}

func TestInitializeSkipsPresentKeys(t *testing.T) {
	db := openDB(t)
	db.Products.SetAll([]*domain.Product{{ID: "mine", Name: "mine"}})

	db.Initialize()

	// an existing key is left untouched, even a partial one
	products := db.Products.GetAll()
	require.Len(t, products, 1)
	assert.Equal(t, "mine", products[0].ID)

	// absent keys still seed
	assert.Len(t, db.Categories.GetAll(), 3)
}

func TestInitializeIsIdempotent(t *testing.T) {
	db := openDB(t)
	db.Initialize()
	db.Initialize()
	assert.Len(t, db.Products.GetAll(), 10)
	assert.Len(t, db.Categories.GetAll(), 3)
}
