package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yazanstore/storefront/internal/store"
)

func seededDB(t *testing.T) *store.Database {
	t.Helper()
	db := openDB(t)
	db.Initialize()
	return db
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	db := seededDB(t)

	user, ok := db.Auth.Login("admin", "wrong")
	assert.False(t, ok)
	assert.Nil(t, user)
	assert.False(t, db.Auth.IsAuthenticated())
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	db := seededDB(t)

	_, ok := db.Auth.Login("nobody", store.DefaultAdminPassword)
	assert.False(t, ok)
	assert.False(t, db.Auth.IsAuthenticated())
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	db := seededDB(t)
	users := db.Auth.Users().GetAll()
	require.Len(t, users, 1)
	users[0].IsActive = false
	db.Auth.Users().SetAll(users)

	_, ok := db.Auth.Login("admin", store.DefaultAdminPassword)
	assert.False(t, ok)
}

func TestLoginSuccessStampsLastLoginAndSession(t *testing.T) {
	db := seededDB(t)

	user, ok := db.Auth.Login("admin", store.DefaultAdminPassword)
	require.True(t, ok)
	require.NotNil(t, user.LastLogin)

	// lastLogin persisted on the roster record, not just the return value
	persisted, found := db.Auth.Users().GetByID(user.ID)
	require.True(t, found)
	require.NotNil(t, persisted.LastLogin)

	require.True(t, db.Auth.IsAuthenticated())
	current, found := db.Auth.CurrentUser()
	require.True(t, found)
	assert.Equal(t, "admin", current.Username)

	db.Auth.Logout()
	assert.False(t, db.Auth.IsAuthenticated())
}

func TestChangePassword(t *testing.T) {
	db := seededDB(t)

	assert.False(t, db.Auth.ChangePassword("wrong", "next"))

	require.True(t, db.Auth.ChangePassword(store.DefaultAdminPassword, "s3cret"))
	_, ok := db.Auth.Login("admin", store.DefaultAdminPassword)
	assert.False(t, ok)
	_, ok = db.Auth.Login("admin", "s3cret")
	assert.True(t, ok)
}
