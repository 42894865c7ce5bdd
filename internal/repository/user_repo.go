package repository

import (
	"context"
	"errors"

	"github.com/oggyb/barchat/internal/aggregate"
	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/model"
)

// UserRepository is the identity directory.
type UserRepository struct {
	*Collection[model.DirectoryEntry]
	presence *Collection[model.PresenceRecord]
}

func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{
		Collection: NewCollection[model.DirectoryEntry](store, model.CollectionUsers),
		presence:   NewCollection[model.PresenceRecord](store, model.CollectionPresence),
	}
}

// Directory loads the name → identity lookup used by the aggregators.
func (r *UserRepository) Directory(ctx context.Context) (aggregate.Directory, error) {
	entries, err := r.Values(ctx, docstore.Query{})
	if err != nil {
		return nil, err
	}
	ids := make([]model.Identity, len(entries))
	for i, e := range entries {
		ids[i] = e.Identity
	}
	return aggregate.NewDirectory(ids), nil
}

// Lookup returns the directory entry of id.
func (r *UserRepository) Lookup(ctx context.Context, id model.Identity) (model.DirectoryEntry, bool, error) {
	e, err := r.Get(ctx, id.Key())
	if errors.Is(err, docstore.ErrNotFound) {
		return model.DirectoryEntry{}, false, nil
	}
	if err != nil {
		return model.DirectoryEntry{}, false, err
	}
	return e.Data, true, nil
}

// UpdateProfile merges the given status and interests into the directory
// entry and the presence record. Empty status and nil interests are left
// alone.
func (r *UserRepository) UpdateProfile(ctx context.Context, id model.Identity, status model.Status, interests []string) error {
	fields := docstore.Fields{}
	if status != "" {
		fields["status"] = status
	}
	if len(fields) > 0 {
		if err := r.Merge(ctx, id.Key(), fields); err != nil {
			return err
		}
	}

	if interests != nil {
		fields["interests"] = interests
	}
	if len(fields) == 0 {
		return nil
	}
	return r.presence.Merge(ctx, id.Key(), fields)
}

// Presence returns every presence record, active or not.
func (r *UserRepository) Presence(ctx context.Context) ([]model.PresenceRecord, error) {
	return r.presence.Values(ctx, docstore.Query{})
}

// PresenceCollection exposes the presence records for live views.
func (r *UserRepository) PresenceCollection() *Collection[model.PresenceRecord] {
	return r.presence
}
