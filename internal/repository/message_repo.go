package repository

import (
	"context"
	"slices"

	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/model"
	"github.com/oggyb/barchat/internal/utils/pagination"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// MessageRepository stores the bar chat. Messages are append-only.
type MessageRepository struct {
	*Collection[model.Message]
}

func NewMessageRepository(store docstore.Store) *MessageRepository {
	return &MessageRepository{Collection: NewCollection[model.Message](store, model.CollectionMessages)}
}

// TableQuery selects the chat of one table, or the whole bar when table is
// empty, in creation order.
func TableQuery(table string) docstore.Query {
	if table == "" {
		return docstore.Query{}
	}
	return docstore.Where("authorTable", docstore.OpEq, table)
}

// ListPage returns messages newest first.
//
// Behavior:
//   - table narrows to one table; empty means every table.
//   - Ordered by created_at DESC, id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.ListPage(ctx, "5", nil, 20) // latest 20 messages at table 5
func (r *MessageRepository) ListPage(
	ctx context.Context,
	table string,
	paginationToken *string,
	limit int,
) ([]Entry[model.Message], *string, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)

	// decode cursor if provided
	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	all, err := r.Find(ctx, TableQuery(table))
	if err != nil {
		return nil, nil, err
	}
	slices.Reverse(all)

	page := make([]Entry[model.Message], 0, limit+1)
	for _, e := range all {
		if !cursor.Precedes(e.ID, e.CreatedAt) {
			continue
		}
		page = append(page, e)
		if len(page) > limit {
			break
		}
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(page) > limit {
		last := page[limit-1]
		token, _ := pagination.Encode(pagination.At(last.ID, last.CreatedAt))
		nextToken = &token
		page = page[:limit]
	}

	return page, nextToken, nil
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
