// Package presence simulates online status with periodic lastActive writes
// and a read-side recency window.
package presence

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/model"
)

const (
	DefaultWindow   = 15 * time.Second
	DefaultInterval = 5 * time.Second
)

// IsActive is the radar predicate: seen within window and flagged online.
// There is no offline event; a silent identity simply ages out.
func IsActive(rec model.PresenceRecord, now time.Time, window time.Duration) bool {
	return rec.Online && now.Sub(rec.LastActive) < window
}

// Active keeps the records IsActive accepts, in input order.
func Active(recs []model.PresenceRecord, now time.Time, window time.Duration) []model.PresenceRecord {
	out := make([]model.PresenceRecord, 0, len(recs))
	for _, r := range recs {
		if IsActive(r, now, window) {
			out = append(out, r)
		}
	}
	return out
}

type Options struct {
	Window            time.Duration
	HeartbeatInterval time.Duration
	Now               func() time.Time
	Logger            *slog.Logger
}

// Registry writes presence and directory entries and owns the running
// heartbeats, at most one per identity.
type Registry struct {
	store    docstore.Store
	window   time.Duration
	interval time.Duration
	now      func() time.Time
	log      *slog.Logger

	mu         sync.Mutex
	heartbeats map[string]*Heartbeat
}

func NewRegistry(store docstore.Store, opts Options) *Registry {
	if opts.Window <= 0 {
		opts.Window = DefaultWindow
	}
	if opts.HeartbeatInterval <= 0 {
		opts.HeartbeatInterval = DefaultInterval
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Registry{
		store:      store,
		window:     opts.Window,
		interval:   opts.HeartbeatInterval,
		now:        opts.Now,
		log:        opts.Logger,
		heartbeats: make(map[string]*Heartbeat),
	}
}

func (r *Registry) Window() time.Duration { return r.window }

func (r *Registry) Now() time.Time { return r.now() }

// IsActive applies the package predicate with the registry clock and window.
func (r *Registry) IsActive(rec model.PresenceRecord) bool {
	return IsActive(rec, r.now(), r.window)
}

// Register upserts the presence record and the directory entry for id,
// both online as of now.
func (r *Registry) Register(ctx context.Context, id model.Identity) error {
	now := r.now()

	rec, err := docstore.Encode(model.PresenceRecord{Identity: id, LastActive: now, Online: true})
	if err != nil {
		return err
	}
	if err := r.store.Upsert(ctx, model.CollectionPresence, id.Key(), rec, docstore.UpsertOptions{}); err != nil {
		return fmt.Errorf("register presence %s: %w", id.Key(), err)
	}

	entry, err := docstore.Encode(model.DirectoryEntry{Identity: id, Online: true, LastActive: now})
	if err != nil {
		return err
	}
	if err := r.store.Upsert(ctx, model.CollectionUsers, id.Key(), entry, docstore.UpsertOptions{Merge: true}); err != nil {
		return fmt.Errorf("register directory %s: %w", id.Key(), err)
	}

	r.log.Debug("presence registered", "id", id.Key())
	return nil
}

// Touch refreshes lastActive only, keeping every other field.
func (r *Registry) Touch(ctx context.Context, id model.Identity) error {
	err := r.store.Upsert(ctx, model.CollectionPresence, id.Key(),
		docstore.Fields{"lastActive": r.now()},
		docstore.UpsertOptions{Merge: true},
	)
	if err != nil {
		return fmt.Errorf("heartbeat %s: %w", id.Key(), err)
	}
	return nil
}

// ListActive reads the presence collection once and keeps active records.
func (r *Registry) ListActive(ctx context.Context) ([]model.PresenceRecord, error) {
	now := r.now()
	docs, err := r.store.GetOnce(ctx, model.CollectionPresence,
		docstore.Where("lastActive", docstore.OpGt, now.Add(-r.window)).Order("lastActive", true),
	)
	if err != nil {
		return nil, err
	}

	recs := make([]model.PresenceRecord, 0, len(docs))
	for _, d := range docs {
		var rec model.PresenceRecord
		if err := docstore.Decode(d, &rec); err != nil {
			r.log.Warn("skipping malformed presence", "id", d.ID, "err", err)
			continue
		}
		recs = append(recs, rec)
	}
	return Active(recs, now, r.window), nil
}

// Heartbeat is a running lastActive refresher.
type Heartbeat struct {
	id     model.Identity
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the heartbeat and waits for its goroutine to exit. No write
// is issued after Stop returns. Safe to call more than once.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.once.Do(h.cancel)
	<-h.done
}

// StartHeartbeat begins refreshing lastActive for id every interval until
// the returned handle is stopped or ctx ends. A heartbeat already running
// for the same identity is stopped first.
func (r *Registry) StartHeartbeat(ctx context.Context, id model.Identity) *Heartbeat {
	hctx, cancel := context.WithCancel(ctx)
	hb := &Heartbeat{id: id, cancel: cancel, done: make(chan struct{})}

	r.mu.Lock()
	prev := r.heartbeats[id.Key()]
	r.heartbeats[id.Key()] = hb
	r.mu.Unlock()
	prev.Stop()

	go func() {
		defer close(hb.done)
		defer r.forget(hb)

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-hctx.Done():
				return
			case <-ticker.C:
				if err := r.Touch(hctx, id); err != nil && hctx.Err() == nil {
					r.log.Warn("heartbeat write failed", "id", id.Key(), "err", err)
				}
			}
		}
	}()

	r.log.Debug("heartbeat started", "id", id.Key(), "interval", r.interval)
	return hb
}

// StopHeartbeat stops the heartbeat running for id, if any.
func (r *Registry) StopHeartbeat(id model.Identity) {
	r.mu.Lock()
	hb := r.heartbeats[id.Key()]
	r.mu.Unlock()
	hb.Stop()
}

// Running reports whether a heartbeat is active for id.
func (r *Registry) Running(id model.Identity) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.heartbeats[id.Key()]
	return ok
}

// StopAll stops every heartbeat; used on shutdown.
func (r *Registry) StopAll() {
	r.mu.Lock()
	all := make([]*Heartbeat, 0, len(r.heartbeats))
	for _, hb := range r.heartbeats {
		all = append(all, hb)
	}
	r.mu.Unlock()

	for _, hb := range all {
		hb.Stop()
	}
}

func (r *Registry) forget(hb *Heartbeat) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.heartbeats[hb.id.Key()] == hb {
		delete(r.heartbeats, hb.id.Key())
	}
}

// PurgeReport describes what a logout managed to remove.
type PurgeReport struct {
	PresenceDeleted bool
	MessagesDeleted int
	// Err joins every purge failure. Logout has completed regardless.
	Err error
}

// Logout stops the identity's heartbeat, marks its directory entry offline
// and purges its presence record and authored messages. Failures are
// collected in the report and never stop the remaining steps.
func (r *Registry) Logout(ctx context.Context, id model.Identity) PurgeReport {
	r.StopHeartbeat(id)

	var (
		report PurgeReport
		errs   []error
	)

	if err := r.store.DeleteOne(ctx, model.CollectionPresence, id.Key()); err != nil {
		errs = append(errs, fmt.Errorf("delete presence: %w", err))
	} else {
		report.PresenceDeleted = true
	}

	docs, err := r.store.GetOnce(ctx, model.CollectionMessages,
		docstore.Where("authorName", docstore.OpEq, id.Name).Where("authorTable", docstore.OpEq, id.Table),
	)
	if err != nil {
		errs = append(errs, fmt.Errorf("list messages: %w", err))
	}
	for _, d := range docs {
		if err := r.store.DeleteOne(ctx, model.CollectionMessages, d.ID); err != nil {
			errs = append(errs, fmt.Errorf("delete message %s: %w", d.ID, err))
			continue
		}
		report.MessagesDeleted++
	}

	if err := r.store.Upsert(ctx, model.CollectionUsers, id.Key(),
		docstore.Fields{"online": false},
		docstore.UpsertOptions{Merge: true},
	); err != nil {
		errs = append(errs, fmt.Errorf("mark offline: %w", err))
	}

	report.Err = errors.Join(errs...)
	if report.Err != nil {
		r.log.Warn("logout purge incomplete", "id", id.Key(), "err", report.Err)
	} else {
		r.log.Info("logout purge done", "id", id.Key(), "messages", report.MessagesDeleted)
	}
	return report
}
