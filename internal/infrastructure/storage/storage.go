package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// Collection keys. Each key holds one JSON array document; the whole
// document is read and rewritten on every mutation.
const (
	KeyProducts    = "iza_products"
	KeyOrders      = "iza_orders"
	KeyFinance     = "iza_finance"
	KeyCart        = "iza_cart"
	KeySchema      = "iza_schema"
	KeyIdempotency = "iza_idempotency"
)

// SchemaVersion is the current layout version written under KeySchema
const SchemaVersion = 1

// Failure wraps an underlying storage error so callers can map it to a
// service-unavailable response instead of a generic server error.
type Failure struct {
	Op  string
	Key string
	Err error
}

func (f *Failure) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", f.Op, f.Key, f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// IsFailure reports whether err originates from the storage backend
func IsFailure(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

// Store is a key-value document store backed by a blob bucket.
// A single mutex serializes all access, so a read-modify-write cycle
// done through Update never interleaves with another caller.
type Store struct {
	bucket *blob.Bucket
	mu     sync.Mutex
}

// New creates a store on top of an open bucket
func New(bucket *blob.Bucket) *Store {
	return &Store{bucket: bucket}
}

// Close releases the underlying bucket
func (s *Store) Close() error {
	return s.bucket.Close()
}

// Read loads and decodes the collection stored under key.
// A missing key decodes as an empty collection.
func Read[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readLocked[T](ctx, s, key)
}

// Write encodes and stores the collection under key
func Write[T any](ctx context.Context, s *Store, key string, items []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeLocked(ctx, s, key, items)
}

// Update runs fn inside the store lock with the current collection and
// persists whatever fn returns. fn returning an error aborts the write.
func Update[T any](ctx context.Context, s *Store, key string, fn func(items []T) ([]T, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := readLocked[T](ctx, s, key)
	if err != nil {
		return err
	}

	out, err := fn(items)
	if err != nil {
		return err
	}

	return writeLocked(ctx, s, key, out)
}

func readLocked[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return []T{}, nil
		}
		return nil, &Failure{Op: "read", Key: key, Err: err}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &Failure{Op: "decode", Key: key, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func writeLocked[T any](ctx context.Context, s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return &Failure{Op: "encode", Key: key, Err: err}
	}

	if err := s.bucket.WriteAll(ctx, key, data, nil); err != nil {
		return &Failure{Op: "write", Key: key, Err: err}
	}
	return nil
}

// exists reports whether key is present in the bucket
func (s *Store) exists(ctx context.Context, key string) (bool, error) {
	ok, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return false, &Failure{Op: "stat", Key: key, Err: err}
	}
	return ok, nil
}
