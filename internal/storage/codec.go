package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hammamikhairi/tasteverse/internal/domain"
	"github.com/hammamikhairi/tasteverse/internal/logger"
)

// envelope wraps every persisted value with its schema version.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// Encode marshals v inside a versioned envelope.
func Encode(version int, v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Version: version, Data: data})
}

// Decode unmarshals an envelope written by Encode. Blobs without an
// envelope (written before versioning) are decoded as the bare value.
// A version other than the expected one is an error.
func Decode[T any](raw []byte, version int) (T, error) {
	var zero, out T

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Version != 0 && len(env.Data) > 0 {
		if env.Version != version {
			return zero, fmt.Errorf("unsupported schema version %d (want %d)", env.Version, version)
		}
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return zero, err
		}
		return out, nil
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Get loads the value at key. It returns ok=false when the key is absent
// or when the stored blob is malformed, has the wrong version, or fails
// validate; those are logged and treated as absent so callers fall back
// to their defaults. Only store failures are returned as errors.
func Get[T any](ctx context.Context, s domain.Store, log *logger.Logger, key string, version int, validate func(*T) error) (T, bool, error) {
	var zero T

	raw, err := s.Load(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, fmt.Errorf("loading %s: %w: %w", key, domain.ErrPersistence, err)
	}

	v, err := Decode[T](raw, version)
	if err != nil {
		log.Warn("discarding malformed %s: %v", key, err)
		return zero, false, nil
	}
	if validate != nil {
		if err := validate(&v); err != nil {
			log.Warn("discarding invalid %s: %v", key, err)
			return zero, false, nil
		}
	}
	return v, true, nil
}

// Put encodes v and saves it at key.
func Put(ctx context.Context, s domain.Store, key string, version int, v any) error {
	e, err := NewEntry(key, version, v)
	if err != nil {
		return err
	}
	if err := s.Save(ctx, e.Key, e.Value); err != nil {
		return fmt.Errorf("saving %s: %w: %w", key, domain.ErrPersistence, err)
	}
	return nil
}

// PutBatch encodes and saves every entry atomically.
func PutBatch(ctx context.Context, s domain.Store, entries ...domain.Entry) error {
	if err := s.SaveBatch(ctx, entries); err != nil {
		return fmt.Errorf("saving batch: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

// NewEntry encodes v as a batch entry.
func NewEntry(key string, version int, v any) (domain.Entry, error) {
	b, err := Encode(version, v)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("encoding %s: %w", key, err)
	}
	return domain.Entry{Key: key, Value: b}, nil
}
