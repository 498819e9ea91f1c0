package repository

import "context"

// Blob keys used by the stores
const (
	KeyMenuItems    = "menuItems"
	KeyBills        = "bills"
	KeySettings     = "settings"
	KeyBillSequence = "billSequence"
)

// BlobStore is a string key-value medium. Each Get and Set is atomic;
// nothing spans more than one call.
type BlobStore interface {
	// Get returns the stored value and whether the key was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set replaces the value stored under key
	Set(ctx context.Context, key, value string) error
}
