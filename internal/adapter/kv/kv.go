package kv

import "context"

// Store is a durable string key-value store. It is the persistence
// collaborator of the session store: synchronous, process-local, and
// loss-tolerant. Absence of a key is not an error; Get reports it through
// the boolean return.
type Store interface {
	// Get returns the value for key, or ("", false, nil) when absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}
