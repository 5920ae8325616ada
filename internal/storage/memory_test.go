package storage

import (
	"context"
	"testing"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
)

func TestMemoryStoreCRUD(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	// Save.
	if err := store.Save(ctx, domain.KeyProfile, []byte(`{"name":"Ada"}`)); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Load.
	loaded, err := store.Load(ctx, domain.KeyProfile)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(loaded) != `{"name":"Ada"}` {
		t.Fatalf("unexpected value %s", loaded)
	}

	// Loaded bytes are a copy.
	loaded[0] = 'X'
	again, _ := store.Load(ctx, domain.KeyProfile)
	if again[0] != '{' {
		t.Fatal("stored value was mutated through a loaded slice")
	}

	// Load nonexistent.
	_, err = store.Load(ctx, "nonexistent")
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// Delete.
	if err := store.Delete(ctx, domain.KeyProfile); err != nil {
		t.Fatalf("delete: %v", err)
	}
	_, err = store.Load(ctx, domain.KeyProfile)
	if err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Delete nonexistent.
	if err := store.Delete(ctx, "nonexistent"); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreKeysFiltersByPrefix(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := NewMemoryStore(log)
	ctx := context.Background()

	entries := []domain.Entry{
		{Key: domain.KeySessionPrefix + "b", Value: []byte("{}")},
		{Key: domain.KeySessionPrefix + "a", Value: []byte("{}")},
		{Key: domain.KeyPantry, Value: []byte("[]")},
	}
	if err := store.SaveBatch(ctx, entries); err != nil {
		t.Fatalf("save batch: %v", err)
	}

	keys, err := store.Keys(ctx, domain.KeySessionPrefix)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("expected 2 session keys, got %d", len(keys))
	}
	if keys[0] != domain.KeySessionPrefix+"a" {
		t.Fatalf("expected sorted keys, got %v", keys)
	}
}
