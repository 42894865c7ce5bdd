package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/realtime"
)

// Entry is a decoded document with its store metadata.
type Entry[T any] struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Data      T
}

// Collection gives typed access to one document store collection.
type Collection[T any] struct {
	store docstore.Store
	name  string
}

func NewCollection[T any](store docstore.Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

func (c *Collection[T]) Name() string { return c.name }

func (c *Collection[T]) Get(ctx context.Context, id string) (Entry[T], error) {
	doc, err := c.store.Get(ctx, c.name, id)
	if err != nil {
		return Entry[T]{}, err
	}
	return decode[T](doc)
}

// Exists reports whether id is present.
func (c *Collection[T]) Exists(ctx context.Context, id string) (bool, error) {
	_, err := c.store.Get(ctx, c.name, id)
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

// Find runs q once. Records that no longer decode into T are skipped.
func (c *Collection[T]) Find(ctx context.Context, q docstore.Query) ([]Entry[T], error) {
	docs, err := c.store.GetOnce(ctx, c.name, q)
	if err != nil {
		return nil, err
	}
	out := make([]Entry[T], 0, len(docs))
	for _, d := range docs {
		e, err := decode[T](d)
		if err != nil {
			slog.Warn("skipping malformed record", "collection", c.name, "id", d.ID, "err", err)
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

// Values is Find without the metadata.
func (c *Collection[T]) Values(ctx context.Context, q docstore.Query) ([]T, error) {
	entries, err := c.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.Data
	}
	return out, nil
}

func (c *Collection[T]) Append(ctx context.Context, v T) (string, error) {
	fields, err := docstore.Encode(v)
	if err != nil {
		return "", err
	}
	return c.store.Append(ctx, c.name, fields)
}

// Put replaces the document at id with v.
func (c *Collection[T]) Put(ctx context.Context, id string, v T) error {
	fields, err := docstore.Encode(v)
	if err != nil {
		return err
	}
	return c.store.Upsert(ctx, c.name, id, fields, docstore.UpsertOptions{})
}

// Merge lays fields over the document at id.
func (c *Collection[T]) Merge(ctx context.Context, id string, fields docstore.Fields) error {
	return c.store.Upsert(ctx, c.name, id, fields, docstore.UpsertOptions{Merge: true})
}

func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.store.DeleteOne(ctx, c.name, id)
}

// DeleteWhere removes every document q selects and returns how many went.
// Deletes are independent; the first failure stops the sweep.
func (c *Collection[T]) DeleteWhere(ctx context.Context, q docstore.Query) (int, error) {
	docs, err := c.store.GetOnce(ctx, c.name, q)
	if err != nil {
		return 0, err
	}
	for i, d := range docs {
		if err := c.store.DeleteOne(ctx, c.name, d.ID); err != nil {
			return i, err
		}
	}
	return len(docs), nil
}

// Watch opens a live subscription over q.
func (c *Collection[T]) Watch(ctx context.Context, q docstore.Query, opts realtime.Options, fn func(realtime.Snapshot[T])) *realtime.Subscription[T] {
	return realtime.Watch(ctx, c.store, c.name, q, opts, fn)
}

func decode[T any](d docstore.Document) (Entry[T], error) {
	var v T
	if err := docstore.Decode(d, &v); err != nil {
		return Entry[T]{}, fmt.Errorf("decode: %w", err)
	}
	return Entry[T]{ID: d.ID, CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt, Data: v}, nil
}
