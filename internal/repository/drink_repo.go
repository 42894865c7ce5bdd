package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
)

// DrinkRepository stores drink gifts and the senders' tabs.
type DrinkRepository struct {
	Gifts *Collection[model.DrinkGift]
	Tabs  *Collection[model.Tab]
}

func NewDrinkRepository(store docstore.Store) *DrinkRepository {
	return &DrinkRepository{
		Gifts: NewCollection[model.DrinkGift](store, model.CollectionDrinks),
		Tabs:  NewCollection[model.Tab](store, model.CollectionTabs),
	}
}

// Send stores a new gift as pending and returns its id.
func (r *DrinkRepository) Send(ctx context.Context, gift model.DrinkGift) (string, error) {
	gift.Status = model.GiftPending
	gift.ResolvedAt = nil
	return r.Gifts.Append(ctx, gift)
}

// Resolve moves a pending gift to status.
//
// Behavior:
//   - status must be accepted or declined.
//   - Only the recipient (by name) may answer; others → ErrPermissionDenied.
//   - A gift already accepted or declined → ErrInvariant, nothing written.
func (r *DrinkRepository) Resolve(ctx context.Context, id, recipient string, status model.GiftStatus, at time.Time) (model.DrinkGift, error) {
	if !status.Terminal() {
		return model.DrinkGift{}, svcErr.Validation(fmt.Sprintf("status must be %s or %s", model.GiftAccepted, model.GiftDeclined))
	}

	e, err := r.Gifts.Get(ctx, id)
	if err != nil {
		return model.DrinkGift{}, err
	}
	gift := e.Data
	if gift.To != recipient {
		return model.DrinkGift{}, fmt.Errorf("%w: only the recipient can answer a drink", svcErr.ErrPermissionDenied)
	}
	if gift.Status.Terminal() {
		return model.DrinkGift{}, svcErr.Invariant(fmt.Sprintf("drink already %s", gift.Status))
	}

	err = r.Gifts.Merge(ctx, id, docstore.Fields{"status": status, "resolvedAt": at})
	if err != nil {
		return model.DrinkGift{}, err
	}
	gift.Status = status
	gift.ResolvedAt = &at
	return gift, nil
}

// Incoming returns gifts sent to name, oldest first.
func (r *DrinkRepository) Incoming(ctx context.Context, name string) ([]Entry[model.DrinkGift], error) {
	return r.Gifts.Find(ctx, docstore.Where("to", docstore.OpEq, name))
}

// Outgoing returns gifts sent by name, oldest first.
func (r *DrinkRepository) Outgoing(ctx context.Context, name string) ([]Entry[model.DrinkGift], error) {
	return r.Gifts.Find(ctx, docstore.Where("from", docstore.OpEq, name))
}

// TabID is the tab document id of a patron.
func TabID(name, table string) string {
	return model.Identity{Name: name, Table: table}.Key()
}

// Tab returns the patron's tab; a patron with no accepted drinks has an
// empty one.
func (r *DrinkRepository) Tab(ctx context.Context, name, table string) (model.Tab, error) {
	e, err := r.Tabs.Get(ctx, TabID(name, table))
	if errors.Is(err, docstore.ErrNotFound) {
		return model.Tab{Name: name, Table: table}, nil
	}
	if err != nil {
		return model.Tab{}, err
	}
	return e.Data, nil
}

// Charge adds price to the patron's tab. Read and write are two calls with
// no transaction; concurrent charges resolve last-write-wins.
func (r *DrinkRepository) Charge(ctx context.Context, name, table string, price float64, at time.Time) (model.Tab, error) {
	tab, err := r.Tab(ctx, name, table)
	if err != nil {
		return model.Tab{}, err
	}
	tab.Total = math.Round((tab.Total+price)*100) / 100
	tab.Drinks++
	tab.UpdatedAt = at

	if err := r.Tabs.Put(ctx, TabID(name, table), tab); err != nil {
		return model.Tab{}, err
	}
	return tab, nil
}
