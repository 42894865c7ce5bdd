package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
)

// VoteRepository stores the music catalog and one vote per voter.
type VoteRepository struct {
	Votes *Collection[model.Vote]
	Music *Collection[model.Music]
}

func NewVoteRepository(store docstore.Store) *VoteRepository {
	return &VoteRepository{
		Votes: NewCollection[model.Vote](store, model.CollectionVotes),
		Music: NewCollection[model.Music](store, model.CollectionMusic),
	}
}

// VoteID is the vote document id of a voter; one id per voter keeps one
// vote per voter.
func VoteID(voterName, voterTable string) string {
	return model.Identity{Name: voterName, Table: voterTable}.Key()
}

// Cast records v unless the voter already voted (ErrAlreadyExists).
func (r *VoteRepository) Cast(ctx context.Context, v model.Vote) error {
	id := VoteID(v.VoterName, v.VoterTable)
	exists, err := r.Votes.Exists(ctx, id)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s already voted", svcErr.ErrAlreadyExists, v.VoterName)
	}
	return r.Votes.Put(ctx, id, v)
}

// ByVoter returns the identity's vote, if any.
func (r *VoteRepository) ByVoter(ctx context.Context, id model.Identity) (model.Vote, bool, error) {
	e, err := r.Votes.Get(ctx, VoteID(id.Name, id.Table))
	if errors.Is(err, docstore.ErrNotFound) {
		return model.Vote{}, false, nil
	}
	if err != nil {
		return model.Vote{}, false, err
	}
	return e.Data, true, nil
}

func (r *VoteRepository) All(ctx context.Context) ([]model.Vote, error) {
	return r.Votes.Values(ctx, docstore.Query{})
}

// Reset removes every vote and returns how many were removed.
func (r *VoteRepository) Reset(ctx context.Context) (int, error) {
	return r.Votes.DeleteWhere(ctx, docstore.Query{})
}

// Catalog lists the music entries by name.
func (r *VoteRepository) Catalog(ctx context.Context) ([]Entry[model.Music], error) {
	return r.Music.Find(ctx, docstore.Query{}.Order("name", false))
}

// AddMusic adds a catalog entry unless one with the same name exists.
func (r *VoteRepository) AddMusic(ctx context.Context, m model.Music) (string, error) {
	dupes, err := r.Music.Find(ctx, docstore.Where("name", docstore.OpEq, m.Name).Take(1))
	if err != nil {
		return "", err
	}
	if len(dupes) > 0 {
		return "", fmt.Errorf("%w: music %q", svcErr.ErrAlreadyExists, m.Name)
	}
	return r.Music.Append(ctx, m)
}
