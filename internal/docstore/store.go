// Package docstore is a small realtime document store: schemaless
// collections of JSON records with one-shot queries and change
// subscriptions that always deliver the full current snapshot.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound is returned by Get for a missing document.
	ErrNotFound = errors.New("document not found")

	// ErrUnavailable wraps failures talking to the backing database or
	// change feed. Subscriptions treat it as transient.
	ErrUnavailable = errors.New("store unavailable")
)

// Fields is the JSON object stored for one document.
type Fields map[string]any

// Document is a stored record as seen by readers.
type Document struct {
	ID        string
	Fields    Fields
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpsertOptions controls Upsert. With Merge the given fields are laid over
// the stored ones; without it the document is replaced.
type UpsertOptions struct {
	Merge bool
}

// Store is the document store consumed by the rest of the app.
type Store interface {
	// Subscribe delivers the current snapshot right away and again after
	// every change to the collection. onError is called at most once, after
	// which the listener is gone. The returned func detaches the listener
	// and is safe to call more than once.
	Subscribe(ctx context.Context, collection string, q Query, onSnapshot func([]Document), onError func(error)) (func(), error)
	Upsert(ctx context.Context, collection, id string, fields Fields, opts UpsertOptions) error
	Append(ctx context.Context, collection string, fields Fields) (string, error)
	Get(ctx context.Context, collection, id string) (Document, error)
	GetOnce(ctx context.Context, collection string, q Query) ([]Document, error)
	DeleteOne(ctx context.Context, collection, id string) error
}

// Encode turns a tagged struct into Fields through its JSON form.
func Encode(v any) (Fields, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	var f Fields
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return f, nil
}

// Decode fills dst from the document fields.
func Decode(doc Document, dst any) error {
	b, err := json.Marshal(doc.Fields)
	if err != nil {
		return fmt.Errorf("decode %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decode %s: %w", doc.ID, err)
	}
	return nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}
