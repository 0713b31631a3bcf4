package store

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var recordsBucket = []byte("records")

// KV wraps a bbolt file with get/set/remove semantics keyed by string.
// Values are serialized to JSON on every call and every read re-parses;
// there is no in-process cache. A KV without a backing file is disabled:
// reads return nothing and writes are silent no-ops, nothing panics.
type KV struct {
	db *bbolt.DB
}

// Open opens the database file at path, creating it if needed. An empty
// path yields a disabled store.
func Open(path string) (*KV, error) {
	if path == "" {
		return &KV{}, nil
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, errors.Wrapf(err, "open store %q", path)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(recordsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create records bucket")
	}
	return &KV{db: db}, nil
}

// Disabled reports whether the store has no backing file.
func (kv *KV) Disabled() bool {
	return kv == nil || kv.db == nil
}

// Has reports whether key has ever been written.
func (kv *KV) Has(key string) bool {
	if kv.Disabled() {
		return false
	}
	var found bool
	_ = kv.db.View(func(tx *bbolt.Tx) error {
		found = tx.Bucket(recordsBucket).Get([]byte(key)) != nil
		return nil
	})
	return found
}

// Get unmarshals the value stored under key into out and reports whether
// the key was present and readable.
func (kv *KV) Get(key string, out interface{}) bool {
	if kv.Disabled() {
		return false
	}
	var raw []byte
	_ = kv.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(recordsBucket).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if raw == nil {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		zap.L().Warn("discarding unreadable store value",
			zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Set serializes v and stores it under key.
func (kv *KV) Set(key string, v interface{}) {
	if kv.Disabled() {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		zap.L().Error("marshal store value failed",
			zap.String("key", key), zap.Error(err))
		return
	}
	err = kv.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(recordsBucket).Put([]byte(key), raw)
	})
	if err != nil {
		zap.L().Error("persist store value failed",
			zap.String("key", key), zap.Error(err))
	}
}

// Remove deletes key. Removing an absent key is a no-op.
func (kv *KV) Remove(key string) {
	if kv.Disabled() {
		return
	}
	err := kv.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(recordsBucket).Delete([]byte(key))
	})
	if err != nil {
		zap.L().Error("remove store value failed",
			zap.String("key", key), zap.Error(err))
	}
}

// Close releases the backing file. Safe to call on a disabled store.
func (kv *KV) Close() error {
	if kv.Disabled() {
		return nil
	}
	return kv.db.Close()
}
