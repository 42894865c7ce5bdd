package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
)

// RaffleRepository reads and writes the singleton raffle document.
type RaffleRepository struct {
	*Collection[model.RaffleState]
}

func NewRaffleRepository(store docstore.Store) *RaffleRepository {
	return &RaffleRepository{Collection: NewCollection[model.RaffleState](store, model.CollectionRaffle)}
}

// State returns the current raffle; before the first write it is empty.
func (r *RaffleRepository) State(ctx context.Context) (model.RaffleState, error) {
	e, err := r.Get(ctx, model.RaffleDocID)
	if errors.Is(err, docstore.ErrNotFound) {
		return model.RaffleState{Participants: []model.RaffleEntry{}, History: []model.RaffleDraw{}}, nil
	}
	if err != nil {
		return model.RaffleState{}, err
	}
	return e.Data, nil
}

func (r *RaffleRepository) Save(ctx context.Context, state model.RaffleState) error {
	return r.Put(ctx, model.RaffleDocID, state)
}

// Join adds id to the participants, once per identity.
func (r *RaffleRepository) Join(ctx context.Context, id model.Identity, at time.Time) (model.RaffleState, error) {
	state, err := r.State(ctx)
	if err != nil {
		return model.RaffleState{}, err
	}
	if state.HasParticipant(id) {
		return state, fmt.Errorf("%w: %s already joined the raffle", svcErr.ErrAlreadyExists, id.Name)
	}

	state.Participants = append(state.Participants, model.RaffleEntry{Name: id.Name, Table: id.Table, JoinedAt: at})
	if err := r.Save(ctx, state); err != nil {
		return model.RaffleState{}, err
	}
	return state, nil
}
