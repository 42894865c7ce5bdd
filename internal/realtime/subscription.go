// Package realtime keeps live, decoded snapshots of store collections for
// the screens that show them, retrying failed listeners with linear backoff.
package realtime

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/oggyb/barchat/internal/docstore"
)

// State of a Subscription.
//
//	Idle → Subscribing → Active
//	              ↘ Erroring → Subscribing (retry) … → Failed
//
// Closed is terminal and reached only through Close.
type State int

const (
	Idle State = iota
	Subscribing
	Active
	Erroring
	Failed
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Subscribing:
		return "subscribing"
	case Active:
		return "active"
	case Erroring:
		return "erroring"
	case Failed:
		return "failed"
	case Closed:
		return "closed"
	}
	return "unknown"
}

const (
	DefaultMaxRetries = 3
	DefaultBaseDelay  = time.Second
)

// Options tune a Subscription. A zero BaseDelay takes the default.
type Options struct {
	// MaxRetries bounds retries after a failure. Zero means fail on the
	// first error; a negative value takes DefaultMaxRetries.
	MaxRetries int
	BaseDelay  time.Duration
	// Disabled skips the store entirely: one empty, loaded snapshot is
	// delivered and nothing else happens.
	Disabled bool
	Logger   *slog.Logger
	// OnRetry is called each time a retry is scheduled.
	OnRetry func(collection string, attempt int)
}

// Record is one decoded document with its stable id.
type Record[T any] struct {
	ID   string
	Data T
}

// Snapshot is what subscribers see: the full current record list, never a
// diff. While Erroring or Failed it still carries the last good records.
type Snapshot[T any] struct {
	Records []Record[T]
	Loading bool
	State   State
	Err     error
}

// Degraded reports whether the records may be stale.
func (s Snapshot[T]) Degraded() bool {
	return s.State == Erroring || s.State == Failed
}

// Values returns the decoded records without ids.
func (s Snapshot[T]) Values() []T {
	out := make([]T, len(s.Records))
	for i, r := range s.Records {
		out[i] = r.Data
	}
	return out
}

// Subscription is a live view of one query over one collection.
type Subscription[T any] struct {
	store      docstore.Store
	collection string
	query      docstore.Query
	opts       Options
	onChange   func(Snapshot[T])
	ctx        context.Context
	cancel     context.CancelFunc

	mu          sync.Mutex
	state       State
	attempt     int
	gen         int
	seq         uint64
	records     []Record[T]
	loading     bool
	lastErr     error
	unsubscribe func()
	timer       *time.Timer
	closed      bool

	emitMu  sync.Mutex
	emitted uint64
}

// Watch subscribes to collection and calls onChange with every new
// snapshot. Calls to onChange never overlap and never go backwards. The
// subscription is closed when ctx ends or Close is called.
func Watch[T any](
	ctx context.Context,
	store docstore.Store,
	collection string,
	q docstore.Query,
	opts Options,
	onChange func(Snapshot[T]),
) *Subscription[T] {
	if opts.MaxRetries < 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = DefaultBaseDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if onChange == nil {
		onChange = func(Snapshot[T]) {}
	}

	sctx, cancel := context.WithCancel(ctx)
	s := &Subscription[T]{
		store:      store,
		collection: collection,
		query:      q,
		opts:       opts,
		onChange:   onChange,
		ctx:        sctx,
		cancel:     cancel,
		state:      Idle,
		loading:    true,
	}

	if opts.Disabled {
		s.mu.Lock()
		s.state = Active
		s.loading = false
		snap, seq := s.snapshotLocked()
		s.mu.Unlock()
		s.emit(snap, seq)
		return s
	}

	context.AfterFunc(sctx, s.Close)
	s.subscribe()
	return s
}

// Snapshot returns the latest snapshot.
func (s *Subscription[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot[T]{
		Records: slices.Clone(s.records),
		Loading: s.loading,
		State:   s.state,
		Err:     s.lastErr,
	}
}

func (s *Subscription[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Retry restarts a Failed subscription with a fresh retry budget.
func (s *Subscription[T]) Retry() {
	s.mu.Lock()
	if s.closed || s.state != Failed {
		s.mu.Unlock()
		return
	}
	s.attempt = 0
	s.mu.Unlock()
	s.subscribe()
}

// Close detaches the listener and cancels pending retries. Safe to call
// any number of times, including from onChange.
func (s *Subscription[T]) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.state = Closed
	unsub := s.unsubscribe
	s.unsubscribe = nil
	if s.timer != nil {
		s.timer.Stop()
	}
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	s.cancel()
}

func (s *Subscription[T]) subscribe() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.state = Subscribing
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	unsub, err := s.store.Subscribe(s.ctx, s.collection, s.query,
		func(docs []docstore.Document) { s.handleSnapshot(gen, docs) },
		func(err error) { s.handleError(gen, err) },
	)
	if err != nil {
		s.handleError(gen, err)
		return
	}

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		unsub()
		return
	}
	s.unsubscribe = unsub
	s.mu.Unlock()
}

func (s *Subscription[T]) handleSnapshot(gen int, docs []docstore.Document) {
	records := make([]Record[T], 0, len(docs))
	for _, d := range docs {
		var v T
		if err := docstore.Decode(d, &v); err != nil {
			s.opts.Logger.Warn("skipping malformed record", "collection", s.collection, "id", d.ID, "err", err)
			continue
		}
		records = append(records, Record[T]{ID: d.ID, Data: v})
	}

	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.records = records
	s.loading = false
	s.state = Active
	s.attempt = 0
	s.lastErr = nil
	snap, seq := s.snapshotLocked()
	s.mu.Unlock()

	s.emit(snap, seq)
}

func (s *Subscription[T]) handleError(gen int, err error) {
	s.mu.Lock()
	if s.closed || gen != s.gen {
		s.mu.Unlock()
		return
	}
	// this listener is done; anything it still sends is stale
	s.gen++
	unsub := s.unsubscribe
	s.unsubscribe = nil
	s.lastErr = err

	retry := s.attempt < s.opts.MaxRetries
	if retry {
		s.attempt++
		s.state = Erroring
		s.timer = time.AfterFunc(time.Duration(s.attempt)*s.opts.BaseDelay, s.subscribe)
	} else {
		s.state = Failed
		s.loading = false
	}
	attempt := s.attempt
	snap, seq := s.snapshotLocked()
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}

	if retry {
		s.opts.Logger.Warn("subscription error, retrying",
			"collection", s.collection, "attempt", attempt, "max", s.opts.MaxRetries, "err", err)
		if s.opts.OnRetry != nil {
			s.opts.OnRetry(s.collection, attempt)
		}
	} else {
		s.opts.Logger.Error("subscription failed", "collection", s.collection, "err", err)
	}
	s.emit(snap, seq)
}

func (s *Subscription[T]) snapshotLocked() (Snapshot[T], uint64) {
	s.seq++
	return Snapshot[T]{
		Records: slices.Clone(s.records),
		Loading: s.loading,
		State:   s.state,
		Err:     s.lastErr,
	}, s.seq
}

// emit hands snap to onChange unless something newer already went out.
func (s *Subscription[T]) emit(snap Snapshot[T], seq uint64) {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	if seq <= s.emitted {
		return
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	s.emitted = seq
	s.onChange(snap)
}

// Group closes a set of subscriptions and timers together, exactly once.
type Group struct {
	mu      sync.Mutex
	closers []func()
	closed  bool
}

// Add registers a close func. Adding to a closed group closes it at once.
func (g *Group) Add(close func()) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		close()
		return
	}
	g.closers = append(g.closers, close)
	g.mu.Unlock()
}

// Close runs every registered close func in reverse order.
func (g *Group) Close() {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.closed = true
	closers := g.closers
	g.closers = nil
	g.mu.Unlock()

	for i := len(closers) - 1; i >= 0; i-- {
		closers[i]()
	}
}
