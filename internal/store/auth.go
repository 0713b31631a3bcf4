package store

import (
	"time"

	"github.com/yazanstore/storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthStore handles back-office authentication: a single global password
// checked against the admin user roster, plus the persisted session pointer.
//
// The original system kept the credential base64-encoded; it is stored as a
// bcrypt hash here behind the same login/changePassword contract.
type AuthStore struct {
	kv    *KV
	users *Collection[*domain.AdminUser]
}

// Users exposes the admin user roster.
func (a *AuthStore) Users() *Collection[*domain.AdminUser] { return a.users }

// Login checks username against the active admin users and password against
// the stored credential. On success it stamps the user's last login and
// persists the session pointer. Failure is a bare false, with no distinction
// between unknown user and wrong password.
func (a *AuthStore) Login(username, password string) (*domain.AdminUser, bool) {
	users := a.users.GetAll()
	var user *domain.AdminUser
	for _, u := range users {
		if u.Username == username && u.IsActive {
			user = u
			break
		}
	}
	if user == nil {
		return nil, false
	}

	var stored string
	if !a.kv.Get(KeyAdminPassword, &stored) {
		return nil, false
	}
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) != nil {
		return nil, false
	}

	now := time.Now()
	user.LastLogin = &now
	a.users.SetAll(users)
	a.kv.Set(KeyCurrentAdmin, user)

	zap.L().Info("admin login", zap.String("username", username))
	return user, true
}

// Logout clears the session pointer.
func (a *AuthStore) Logout() {
	a.kv.Remove(KeyCurrentAdmin)
}

// CurrentUser returns the admin the session pointer refers to, if any.
func (a *AuthStore) CurrentUser() (*domain.AdminUser, bool) {
	var user domain.AdminUser
	if !a.kv.Get(KeyCurrentAdmin, &user) {
		return nil, false
	}
	return &user, true
}

// IsAuthenticated reports session pointer presence.
func (a *AuthStore) IsAuthenticated() bool {
	_, ok := a.CurrentUser()
	return ok
}

// ChangePassword replaces the global credential after verifying the old one.
func (a *AuthStore) ChangePassword(oldPassword, newPassword string) bool {
	var stored string
	if !a.kv.Get(KeyAdminPassword, &stored) {
		return false
	}
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(oldPassword)) != nil {
		return false
	}
	a.setPassword(newPassword)
	return true
}

func (a *AuthStore) setPassword(password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("hash credential failed", zap.Error(err))
		return
	}
	a.kv.Set(KeyAdminPassword, string(hash))
}
