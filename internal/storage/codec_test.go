package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
	"github.com/hammamikhairi/tasteverse/internal/storage/storagetest"
)

type sample struct {
	Count int `json:"count"`
}

func nonNegative(s *sample) error {
	if s.Count < 0 {
		return errors.New("negative count")
	}
	return nil
}

func TestGetFallsBackOnBadBlobs(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		stored string
		wantOK bool
		want   int
	}{
		{"envelope", `{"version":1,"data":{"count":3}}`, true, 3},
		{"legacy bare value", `{"count":4}`, true, 4},
		{"future version", `{"version":2,"data":{"count":3}}`, false, 0},
		{"malformed json", `{"count":`, false, 0},
		{"wrong shape", `["a"]`, false, 0},
		{"fails validation", `{"version":1,"data":{"count":-1}}`, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore(log)
			require.NoError(t, store.Save(ctx, "k", []byte(tt.stored)))

			got, ok, err := Get(ctx, store, log, "k", 1, nonNegative)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got.Count)
		})
	}
}

func TestGetAbsentKey(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	_, ok, err := Get[sample](context.Background(), NewMemoryStore(log), log, "missing", 1, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPutWrapsPersistenceFailure(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()
	store := storagetest.NewFaulty(NewMemoryStore(log))
	store.FailWrites(true)

	err := Put(ctx, store, "k", 1, sample{Count: 1})
	assert.ErrorIs(t, err, domain.ErrPersistence)
	assert.ErrorIs(t, err, storagetest.ErrInjected)

	e, err := NewEntry("k", 1, sample{Count: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, PutBatch(ctx, store, e), domain.ErrPersistence)

	store.FailWrites(false)
	require.NoError(t, Put(ctx, store, "k", 1, sample{Count: 5}))
	got, ok, err := Get[sample](ctx, store, log, "k", 1, nil)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 5, got.Count)
}
