// Package kvstore defines the on-device key/value persistence primitive
// shared by the transaction store and the theme state. Values are opaque
// text blobs; callers decide the serialization.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value is stored under the key.
var ErrNotFound = errors.New("kvstore: key not found")

type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Remove deletes the value under key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}
