// Package ident generates identifiers for sessions and scanned items.
package ident

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/hammamikhairi/tasteverse/internal/domain"
)

// Compile-time interface check.
var _ domain.IDGenerator = UUID{}

// UUID generates time-ordered UUIDv7 strings, so ids of records written
// later sort after earlier ones.
type UUID struct{}

// NewID returns a fresh UUIDv7.
func (UUID) NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Sequence returns ids prefix-1, prefix-2, ... Used where ids must be
// predictable.
type Sequence struct {
	Prefix string
	n      int
}

// NewID returns the next id in the sequence.
func (s *Sequence) NewID() string {
	s.n++
	return s.Prefix + "-" + strconv.Itoa(s.n)
}
