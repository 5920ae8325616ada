// Package storagetest provides store doubles for tests.
package storagetest

import (
	"context"
	"errors"
	"sync"

	"github.com/hammamikhairi/tasteverse/internal/domain"
)

// ErrInjected is returned by a Faulty store while writes are failing.
var ErrInjected = errors.New("injected store failure")

// Faulty wraps a store and fails writes on demand.
type Faulty struct {
	domain.Store

	mu         sync.Mutex
	failWrites bool
	writes     int
}

// NewFaulty wraps inner.
func NewFaulty(inner domain.Store) *Faulty {
	return &Faulty{Store: inner}
}

// FailWrites toggles write failures.
func (f *Faulty) FailWrites(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failWrites = fail
}

// Writes returns how many Save/SaveBatch calls succeeded.
func (f *Faulty) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

func (f *Faulty) Save(ctx context.Context, key string, value []byte) error {
	if err := f.check(); err != nil {
		return err
	}
	return f.Store.Save(ctx, key, value)
}

func (f *Faulty) SaveBatch(ctx context.Context, entries []domain.Entry) error {
	if err := f.check(); err != nil {
		return err
	}
	return f.Store.SaveBatch(ctx, entries)
}

func (f *Faulty) check() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return ErrInjected
	}
	f.writes++
	return nil
}
