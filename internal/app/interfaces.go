package app

import (
	"github.com/yazanstore/storefront/config"
	"github.com/yazanstore/storefront/internal/backoffice"
	"github.com/yazanstore/storefront/internal/shopfront"
	"github.com/yazanstore/storefront/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// DatabaseProvider provides embedded store access
type DatabaseProvider interface {
	Database() *store.Database
}

// ShopfrontProvider provides the storefront state manager
type ShopfrontProvider interface {
	Shopfront() *shopfront.Manager
}

// BackofficeProvider provides the admin state manager
type BackofficeProvider interface {
	Backoffice() *backoffice.Manager
}

// AppContext combines all provider interfaces for full application context.
// Callers should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	DatabaseProvider
	ShopfrontProvider
	BackofficeProvider

	// Release releases application resources.
	Release()
}
