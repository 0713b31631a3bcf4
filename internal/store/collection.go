package store

import (
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/yazanstore/storefront/pkg/common"
	"go.uber.org/zap"
)

// Entity is any record with a string id.
type Entity interface {
	GetID() string
	SetID(id string)
}

// Patch is a partial update keyed by JSON field name. It merges one level
// deep: a nested object present in a patch replaces the stored one wholesale.
type Patch map[string]interface{}

// timestamped entities get their CreatedAt/UpdatedAt maintained by the
// collection on create and update.
type timestamped interface {
	StampCreated(now time.Time)
	StampUpdated(now time.Time)
}

// Collection is a typed record store over a single KV key. Every operation
// reads, modifies and rewrites the whole collection; fine for the tens to
// low hundreds of records this system holds.
type Collection[T Entity] struct {
	kv  *KV
	key string
}

func NewCollection[T Entity](kv *KV, key string) *Collection[T] {
	return &Collection[T]{kv: kv, key: key}
}

// Key returns the storage key backing this collection.
func (c *Collection[T]) Key() string { return c.key }

// GetAll returns every record, or an empty slice if the key has never been
// written.
func (c *Collection[T]) GetAll() []T {
	var items []T
	c.kv.Get(c.key, &items)
	return items
}

// GetByID returns the record with the given id.
func (c *Collection[T]) GetByID(id string) (T, bool) {
	for _, item := range c.GetAll() {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create appends item and persists the collection. When item carries no id
// a generated one is assigned; an explicitly supplied id is kept as-is.
func (c *Collection[T]) Create(item T) T {
	if item.GetID() == "" {
		item.SetID(common.NewRecordID(c.key))
	}
	if ts, ok := any(item).(timestamped); ok {
		ts.StampCreated(time.Now())
	}
	items := append(c.GetAll(), item)
	c.kv.Set(c.key, items)
	return item
}

// Update shallow-merges patch onto the record with the given id and persists
// the collection. Returns false when no record matches.
func (c *Collection[T]) Update(id string, patch Patch) (T, bool) {
	items := c.GetAll()
	for i, item := range items {
		if item.GetID() != id {
			continue
		}
		if err := applyPatch(item, patch); err != nil {
			zap.L().Error("apply record patch failed",
				zap.String("key", c.key), zap.String("id", id), zap.Error(err))
			var zero T
			return zero, false
		}
		if ts, ok := any(item).(timestamped); ok {
			ts.StampUpdated(time.Now())
		}
		c.kv.Set(c.key, items)
		return items[i], true
	}
	var zero T
	return zero, false
}

// Delete removes the record with the given id, reporting whether anything
// matched. A miss leaves the collection untouched.
func (c *Collection[T]) Delete(id string) bool {
	items := c.GetAll()
	kept := items[:0:0]
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return false
	}
	c.kv.Set(c.key, kept)
	return true
}

// SetAll replaces the whole collection, used for bulk reordering.
func (c *Collection[T]) SetAll(items []T) {
	c.kv.Set(c.key, items)
}

// applyPatch overwrites target fields named by the patch keys. Keys resolve
// against JSON tags so patches read like the serialized records.
func applyPatch(target interface{}, patch Patch) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "json",
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]interface{}(patch))
}
