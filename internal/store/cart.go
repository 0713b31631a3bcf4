package store

import "github.com/yazanstore/storefront/internal/domain"

// CartStore persists the session cart under a single key. The cart is not
// attached to any user identity and survives restarts until cleared.
type CartStore struct {
	kv *KV
}

func (c *CartStore) GetAll() []domain.CartItem {
	var items []domain.CartItem
	c.kv.Get(KeyCart, &items)
	return items
}

func (c *CartStore) SetAll(items []domain.CartItem) {
	c.kv.Set(KeyCart, items)
}

func (c *CartStore) Clear() {
	c.kv.Remove(KeyCart)
}
