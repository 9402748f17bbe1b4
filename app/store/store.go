// Package store provides durable storage of per-client preferences.
package store

import (
	"context"
	"errors"
	"sync"
)

// ErrNotFound is returned when no preference is stored for the client and key.
var ErrNotFound = errors.New("preference not found")

// DBType identifies the database engine behind the store.
type DBType int

// supported database types
const (
	DBTypeSQLite DBType = iota
	DBTypePostgres
)

// RWLocker is the subset of sync.RWMutex used by the store.
// SQLite gets a real mutex (single writer), PostgreSQL a no-op one.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

type noopLocker struct{}

func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}

// Accessor is the part of Store used by Scoped.
type Accessor interface {
	Get(ctx context.Context, client, key string) (string, error)
	Set(ctx context.Context, client, key, value string) error
}

// Scoped binds one (client, key) pair of the store.
// It satisfies theme.PreferenceStore.
type Scoped struct {
	st     Accessor
	client string
	key    string
}

// NewScoped makes a Scoped accessor for the given client and key.
func NewScoped(st Accessor, client, key string) *Scoped {
	return &Scoped{st: st, client: client, key: key}
}

// LoadPreference returns the stored value, ErrNotFound if nothing stored.
func (s *Scoped) LoadPreference(ctx context.Context) (string, error) {
	return s.st.Get(ctx, s.client, s.key)
}

// SavePreference stores the value.
func (s *Scoped) SavePreference(ctx context.Context, value string) error {
	return s.st.Set(ctx, s.client, s.key, value)
}
