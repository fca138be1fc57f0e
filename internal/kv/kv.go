// Package kv provides the persistent key-value storage the application
// state lives behind: string keys to string values, durable across
// restarts, scoped to the app's private storage area.
package kv

import "context"

type Store interface {
	// Get returns the value for key. The boolean reports whether the
	// key exists; a missing key is not an error.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// MultiGet returns the values for the given keys. Missing keys are
	// simply absent from the result map.
	MultiGet(ctx context.Context, keys []string) (map[string]string, error)
	// MultiRemove deletes the given keys in one operation. Missing keys
	// are ignored.
	MultiRemove(ctx context.Context, keys []string) error
}
