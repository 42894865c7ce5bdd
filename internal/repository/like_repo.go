package repository

import (
	"context"
	"log/slog"

	"github.com/oggyb/barchat/internal/cache"
	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
)

// LikeRepository stores directed like edges, one document per (from, to).
type LikeRepository struct {
	*Collection[model.LikeEdge]
	cache *cache.RedisCache
}

// NewLikeRepository binds likes to the store. A nil cache disables the
// received-likes counter cache.
func NewLikeRepository(store docstore.Store, c *cache.RedisCache) *LikeRepository {
	return &LikeRepository{
		Collection: NewCollection[model.LikeEdge](store, model.CollectionLikes),
		cache:      c,
	}
}

// LikeID is the document id of the edge from → to.
func LikeID(from, to string) string {
	return from + ":" + to
}

// Create records the edge unless it already exists.
//
// Behavior:
//   - Existing (from, to) → ErrAlreadyExists, nothing written.
//   - Otherwise the edge is written and the recipient's cached count bumped.
//   - The check and the write are separate calls; two racing likes end as
//     one document either way.
func (r *LikeRepository) Create(ctx context.Context, edge model.LikeEdge) error {
	id := LikeID(edge.From, edge.To)
	exists, err := r.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return svcErr.ErrAlreadyExists
	}
	if err := r.Put(ctx, id, edge); err != nil {
		return err
	}

	if r.cache != nil {
		if err := r.cache.IncrLikeCount(ctx, edge.To); err != nil {
			slog.Warn("like count cache bump failed", "to", edge.To, "err", err)
		}
	}
	return nil
}

// HasLiked checks whether from has liked to.
func (r *LikeRepository) HasLiked(ctx context.Context, from, to string) (bool, error) {
	return r.Exists(ctx, LikeID(from, to))
}

// SentBy returns the edges name has sent, oldest first.
func (r *LikeRepository) SentBy(ctx context.Context, name string) ([]model.LikeEdge, error) {
	return r.Values(ctx, SentQuery(name))
}

// ReceivedBy returns the edges pointing at name, oldest first.
func (r *LikeRepository) ReceivedBy(ctx context.Context, name string) ([]model.LikeEdge, error) {
	return r.Values(ctx, ReceivedQuery(name))
}

func SentQuery(name string) docstore.Query {
	return docstore.Where("from", docstore.OpEq, name)
}

func ReceivedQuery(name string) docstore.Query {
	return docstore.Where("to", docstore.OpEq, name)
}

// CountLikers returns how many patrons liked name.
// Cache-first strategy:
//  1. Attempts to read from Redis (likes:count:name).
//  2. On a miss or cache error, counts the edges in the store.
//  3. On a store count, updates Redis with a 1h TTL.
func (r *LikeRepository) CountLikers(ctx context.Context, name string) (int64, error) {
	if r.cache != nil {
		if n, ok, err := r.cache.GetLikeCount(ctx, name); err == nil && ok {
			return n, nil
		}
	}

	edges, err := r.ReceivedBy(ctx, name)
	if err != nil {
		return 0, err
	}
	count := int64(len(edges))

	if r.cache != nil {
		_ = r.cache.SetLikeCount(ctx, name, count)
	}
	return count, nil
}
