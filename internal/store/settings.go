package store

import (
	"github.com/yazanstore/storefront/internal/domain"
	"go.uber.org/zap"
)

// SettingsStore persists the singleton SiteSettings record.
type SettingsStore struct {
	kv *KV
}

// Get returns the stored settings, or the built-in defaults if the key has
// never been written.
func (s *SettingsStore) Get() domain.SiteSettings {
	var settings domain.SiteSettings
	if !s.kv.Get(KeySettings, &settings) {
		return DefaultSettings()
	}
	return settings
}

// Update shallow-merges patch onto the current settings, persists and
// returns the merged result. Nested socialLinks/seo values in the patch
// replace the stored objects wholesale.
func (s *SettingsStore) Update(patch Patch) domain.SiteSettings {
	settings := s.Get()
	if err := applyPatch(&settings, patch); err != nil {
		zap.L().Error("apply settings patch failed", zap.Error(err))
		return settings
	}
	s.kv.Set(KeySettings, settings)
	return settings
}
