// Package memory is the local storage driver: the same repository contracts
// as the gorm implementation, backed by in-process go-cache instances. It
// mirrors the app's browser-local-storage mode and doubles as the test
// double for service-level tests. Writes are last-write-wins; there is no
// cross-client coordination, matching the storage model the core assumes.
package memory

import (
	"github.com/patrickmn/go-cache"
)

// Store owns one cache per table. A single Store is created at bootstrap and
// shared by every unit of work, so all repositories see the same data.
type Store struct {
	subscriptions *cache.Cache
	pools         *cache.Cache
	renewals      *cache.Cache
	creditChanges *cache.Cache
	presets       *cache.Cache
}

func NewStore() *Store {
	return &Store{
		subscriptions: cache.New(cache.NoExpiration, 0),
		pools:         cache.New(cache.NoExpiration, 0),
		renewals:      cache.New(cache.NoExpiration, 0),
		creditChanges: cache.New(cache.NoExpiration, 0),
		presets:       cache.New(cache.NoExpiration, 0),
	}
}
