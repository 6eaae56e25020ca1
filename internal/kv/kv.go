// Package kv provides the string key-value substrate the record store
// persists into. Implementations serialize their own access; callers get
// whole-value get/set semantics and multi-key delete, nothing finer.
package kv

import "context"

type Store interface {
	// Get returns the stored value for key. The second result reports
	// whether the key was present; a missing key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// DeleteKeys removes every given key in a single substrate operation.
	// Missing keys are ignored.
	DeleteKeys(ctx context.Context, keys ...string) error
}
