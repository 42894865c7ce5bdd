package realtime_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/logger"
	"github.com/oggyb/barchat/internal/model"
	"github.com/oggyb/barchat/internal/realtime"
	"github.com/oggyb/barchat/internal/testutil"
)

var errBoom = errors.New("listener dropped")

type step struct {
	fail    bool
	docs    []docstore.Document
	thenErr bool
}

// scriptedStore plays one step per Subscribe call; the last step repeats.
type scriptedStore struct {
	docstore.Store

	mu     sync.Mutex
	script []step
	calls  int
	unsubs int
}

func (s *scriptedStore) Subscribe(_ context.Context, _ string, _ docstore.Query, onSnapshot func([]docstore.Document), onError func(error)) (func(), error) {
	s.mu.Lock()
	st := s.script[min(s.calls, len(s.script)-1)]
	s.calls++
	s.mu.Unlock()

	if st.fail {
		return nil, errBoom
	}
	go func() {
		onSnapshot(st.docs)
		if st.thenErr {
			onError(errBoom)
		}
	}()
	return func() {
		s.mu.Lock()
		s.unsubs++
		s.mu.Unlock()
	}, nil
}

func (s *scriptedStore) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type recorder[T any] struct {
	mu    sync.Mutex
	snaps []realtime.Snapshot[T]
}

func (r *recorder[T]) on(s realtime.Snapshot[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder[T]) last() realtime.Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snaps) == 0 {
		return realtime.Snapshot[T]{Loading: true}
	}
	return r.snaps[len(r.snaps)-1]
}

func (r *recorder[T]) first() realtime.Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snaps[0]
}

func (r *recorder[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func messageDoc(id, text string) docstore.Document {
	return docstore.Document{ID: id, Fields: docstore.Fields{"text": text, "authorName": "Alice", "authorTable": "5"}}
}

func fastOpts() realtime.Options {
	return realtime.Options{MaxRetries: 2, BaseDelay: 5 * time.Millisecond, Logger: logger.Discard()}
}

func TestWatch_DeliversDecodedSnapshots(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	_, err := store.Append(ctx, model.CollectionMessages, docstore.Fields{"text": "hello", "authorName": "Alice", "authorTable": "5"})
	require.NoError(t, err)

	rec := &recorder[model.Message]{}
	sub := realtime.Watch(ctx, store, model.CollectionMessages, docstore.Query{}, fastOpts(), rec.on)
	defer sub.Close()

	require.Eventually(t, func() bool { return !rec.last().Loading }, time.Second, 5*time.Millisecond)
	snap := rec.last()
	assert.Equal(t, realtime.Active, snap.State)
	require.Len(t, snap.Records, 1)
	assert.Equal(t, "hello", snap.Records[0].Data.Text)
	assert.NotEmpty(t, snap.Records[0].ID)

	_, err = store.Append(ctx, model.CollectionMessages, docstore.Fields{"text": "again", "authorName": "Bob", "authorTable": "3"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(rec.last().Records) == 2 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"hello", "again"}, texts(rec.last()))
	assert.Equal(t, rec.last().Records, sub.Snapshot().Records)
}

func TestWatch_SkipsMalformedRecords(t *testing.T) {
	store := &scriptedStore{script: []step{{docs: []docstore.Document{
		messageDoc("m1", "ok"),
		{ID: "m2", Fields: docstore.Fields{"text": 42}},
		messageDoc("m3", "also ok"),
	}}}}

	rec := &recorder[model.Message]{}
	sub := realtime.Watch(context.Background(), store, model.CollectionMessages, docstore.Query{}, fastOpts(), rec.on)
	defer sub.Close()

	require.Eventually(t, func() bool { return !rec.last().Loading }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"ok", "also ok"}, texts(rec.last()))
}

func TestWatch_RetriesThenRecovers(t *testing.T) {
	store := &scriptedStore{script: []step{
		{fail: true},
		{fail: true},
		{docs: []docstore.Document{messageDoc("m1", "back")}},
	}}

	var mu sync.Mutex
	var retries []int
	opts := fastOpts()
	opts.OnRetry = func(collection string, attempt int) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, model.CollectionMessages, collection)
		retries = append(retries, attempt)
	}

	rec := &recorder[model.Message]{}
	sub := realtime.Watch(context.Background(), store, model.CollectionMessages, docstore.Query{}, opts, rec.on)
	defer sub.Close()

	require.Eventually(t, func() bool { return rec.last().State == realtime.Active }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"back"}, texts(rec.last()))
	assert.NoError(t, rec.last().Err)
	assert.Equal(t, 3, store.callCount())

	mu.Lock()
	assert.Equal(t, []int{1, 2}, retries)
	mu.Unlock()

	// the first retry snapshot was still loading and degraded
	first := rec.first()
	assert.Equal(t, realtime.Erroring, first.State)
	assert.True(t, first.Loading)
	assert.True(t, first.Degraded())
}

func TestWatch_FailsAfterMaxRetriesKeepingLastGood(t *testing.T) {
	store := &scriptedStore{script: []step{
		{docs: []docstore.Document{messageDoc("m1", "kept")}, thenErr: true},
		{fail: true},
	}}

	rec := &recorder[model.Message]{}
	sub := realtime.Watch(context.Background(), store, model.CollectionMessages, docstore.Query{}, fastOpts(), rec.on)
	defer sub.Close()

	require.Eventually(t, func() bool { return rec.last().State == realtime.Failed }, time.Second, 5*time.Millisecond)
	snap := rec.last()
	assert.False(t, snap.Loading)
	assert.ErrorIs(t, snap.Err, errBoom)
	assert.Equal(t, []string{"kept"}, texts(snap), "last good records stay visible")
	assert.Equal(t, 3, store.callCount(), "one subscribe plus two retries")

	// no more attempts once failed
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 3, store.callCount())

	store.mu.Lock()
	store.script = []step{{docs: []docstore.Document{messageDoc("m2", "fresh")}}}
	store.calls = 0
	store.mu.Unlock()

	sub.Retry()
	require.Eventually(t, func() bool { return rec.last().State == realtime.Active }, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"fresh"}, texts(rec.last()))
}

func TestWatch_ZeroRetriesFailsAtOnce(t *testing.T) {
	store := &scriptedStore{script: []step{{fail: true}}}
	opts := fastOpts()
	opts.MaxRetries = 0

	rec := &recorder[model.Message]{}
	sub := realtime.Watch(context.Background(), store, model.CollectionMessages, docstore.Query{}, opts, rec.on)
	defer sub.Close()

	require.Eventually(t, func() bool { return rec.last().State == realtime.Failed }, time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, store.callCount())
}

func TestWatch_NegativeRetriesTakeDefault(t *testing.T) {
	store := &scriptedStore{script: []step{{fail: true}}}
	opts := fastOpts()
	opts.MaxRetries = -1
	opts.BaseDelay = time.Millisecond

	rec := &recorder[model.Message]{}
	sub := realtime.Watch(context.Background(), store, model.CollectionMessages, docstore.Query{}, opts, rec.on)
	defer sub.Close()

	require.Eventually(t, func() bool { return rec.last().State == realtime.Failed }, time.Second, 5*time.Millisecond)
	assert.Equal(t, realtime.DefaultMaxRetries+1, store.callCount())
}

func TestWatch_CloseIsIdempotentAndSilences(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	rec := &recorder[model.Message]{}
	sub := realtime.Watch(ctx, store, model.CollectionMessages, docstore.Query{}, fastOpts(), rec.on)
	require.Eventually(t, func() bool { return !rec.last().Loading }, time.Second, 5*time.Millisecond)

	sub.Close()
	sub.Close()
	assert.Equal(t, realtime.Closed, sub.State())

	n := rec.count()
	_, err := store.Append(ctx, model.CollectionMessages, docstore.Fields{"text": "late"})
	require.NoError(t, err)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, n, rec.count(), "no snapshot after close")
}

func TestWatch_CloseCancelsPendingRetry(t *testing.T) {
	store := &scriptedStore{script: []step{{fail: true}}}
	opts := fastOpts()
	opts.BaseDelay = 20 * time.Millisecond

	sub := realtime.Watch[model.Message](context.Background(), store, model.CollectionMessages, docstore.Query{}, opts, nil)
	assert.Equal(t, realtime.Erroring, sub.State())
	sub.Close()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, store.callCount())
}

func TestWatch_ContextCancelCloses(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := &scriptedStore{script: []step{{docs: nil}}}

	sub := realtime.Watch[model.Message](ctx, store, model.CollectionMessages, docstore.Query{}, fastOpts(), nil)
	cancel()
	require.Eventually(t, func() bool { return sub.State() == realtime.Closed }, time.Second, 5*time.Millisecond)
}

func TestWatch_Disabled(t *testing.T) {
	store := &scriptedStore{script: []step{{fail: true}}}
	opts := fastOpts()
	opts.Disabled = true

	rec := &recorder[model.Message]{}
	sub := realtime.Watch(context.Background(), store, model.CollectionMessages, docstore.Query{}, opts, rec.on)
	defer sub.Close()

	require.Equal(t, 1, rec.count())
	assert.False(t, rec.last().Loading)
	assert.Empty(t, rec.last().Records)
	assert.Equal(t, 0, store.callCount())
}

func TestGroup_ClosesOnce(t *testing.T) {
	var g realtime.Group
	var order []int
	g.Add(func() { order = append(order, 1) })
	g.Add(func() { order = append(order, 2) })

	g.Close()
	g.Close()
	assert.Equal(t, []int{2, 1}, order)

	g.Add(func() { order = append(order, 3) })
	assert.Equal(t, []int{2, 1, 3}, order)
}

func texts(s realtime.Snapshot[model.Message]) []string {
	out := []string{}
	for _, m := range s.Values() {
		out = append(out, m.Text)
	}
	return out
}
