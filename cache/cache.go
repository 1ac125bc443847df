// Package cache implements an in-process response cache
package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultExpire = 5 * time.Minute
	defaultPurge  = 30 * time.Second
)

// Cache provides an in-memory key:value store shared by the provider
// adapters. Each upstream response is cached per (source, prefix) key so a
// repeated query within the expiry window never re-fetches.
var Cache = cache.New(defaultExpire, defaultPurge)

// Get returns the value for 'key'.
//
// cache hit:
//
//	pull the value from the cache and returns it.
//
// cache miss:
//
//	call 'cb' to get a new value. If the callback doesn't return an error
//	the value is cached with the default expiry and returned.
func Get[T any](key string, cb func() (T, error)) (T, error) {
	return GetWithExpiration[T](key, cb, defaultExpire)
}

// GetWithExpiration behaves like Get with an explicit expiry duration.
func GetWithExpiration[T any](key string, cb func() (T, error), expire time.Duration) (T, error) {
	if x, found := Cache.Get(key); found {
		return x.(T), nil
	}

	res, err := cb()
	// We don't cache errors
	if err == nil {
		Cache.Set(key, res, expire)
	}
	return res, err
}
