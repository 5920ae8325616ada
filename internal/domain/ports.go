package domain

import (
	"context"
	"time"
)

// Store is a durable key-value store holding one JSON blob per key.
// Implementations can be in-memory, SQLite, or anything else that can
// write a batch atomically.
type Store interface {
	// Load returns the value stored at key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	// SaveBatch writes all entries or none of them.
	SaveBatch(ctx context.Context, entries []Entry) error
	Delete(ctx context.Context, key string) error
	// Keys lists stored keys with the given prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Entry is a single key-value pair of a batch write.
type Entry struct {
	Key   string
	Value []byte
}

// Clock is the time source. Tests swap in a fixed clock.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique identifiers for sessions and scanned items.
type IDGenerator interface {
	NewID() string
}

// Scanner reads a product barcode and resolves it to a pantry item.
// Implementations talk to a camera or a product database; the item's
// AddedDate and LastUpdated are filled in by the pantry, not the scanner.
type Scanner interface {
	Scan(ctx context.Context) (PantryItem, error)
}

// Orderer places an ingredient order with a grocery partner.
type Orderer interface {
	Order(ctx context.Context, items []string) (OrderReceipt, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout, push notifications, or anything the embedding app renders.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}
