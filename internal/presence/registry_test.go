package presence_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/logger"
	"github.com/oggyb/barchat/internal/model"
	"github.com/oggyb/barchat/internal/presence"
	"github.com/oggyb/barchat/internal/testutil"
)

var (
	alice = model.Identity{Name: "Alice", Table: "5", Status: model.StatusSingle}
	bob   = model.Identity{Name: "Bob", Table: "3", Status: model.StatusTaken}
	start = time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)
)

func newRegistry(t *testing.T, store docstore.Store, clock *testutil.Clock, interval time.Duration) *presence.Registry {
	t.Helper()
	r := presence.NewRegistry(store, presence.Options{
		Window:            15 * time.Second,
		HeartbeatInterval: interval,
		Now:               clock.Now,
		Logger:            logger.Discard(),
	})
	t.Cleanup(r.StopAll)
	return r
}

func TestIsActive_Window(t *testing.T) {
	now := start
	rec := model.PresenceRecord{Identity: alice, Online: true}

	rec.LastActive = now.Add(-10 * time.Second)
	assert.True(t, presence.IsActive(rec, now, 15*time.Second))

	rec.LastActive = now.Add(-20 * time.Second)
	assert.False(t, presence.IsActive(rec, now, 15*time.Second))

	rec.LastActive = now.Add(-15 * time.Second)
	assert.False(t, presence.IsActive(rec, now, 15*time.Second), "window is exclusive")

	rec.LastActive = now
	rec.Online = false
	assert.False(t, presence.IsActive(rec, now, 15*time.Second))
}

func TestActive_KeepsOrder(t *testing.T) {
	recs := []model.PresenceRecord{
		{Identity: bob, Online: true, LastActive: start.Add(-time.Second)},
		{Identity: alice, Online: true, LastActive: start.Add(-time.Minute)},
		{Identity: alice, Online: true, LastActive: start},
	}
	got := presence.Active(recs, start, 15*time.Second)
	require.Len(t, got, 2)
	assert.Equal(t, "Bob", got[0].Name)
	assert.Equal(t, start, got[1].LastActive)
}

func TestRegister_WritesPresenceAndDirectory(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	clock := testutil.NewClock(start)
	reg := newRegistry(t, store, clock, time.Hour)

	require.NoError(t, reg.Register(ctx, alice))

	doc, err := store.Get(ctx, model.CollectionPresence, "Alice_5")
	require.NoError(t, err)
	var rec model.PresenceRecord
	require.NoError(t, docstore.Decode(doc, &rec))
	assert.True(t, rec.Online)
	assert.Equal(t, start, rec.LastActive)
	assert.Equal(t, alice, rec.Identity)

	doc, err = store.Get(ctx, model.CollectionUsers, "Alice_5")
	require.NoError(t, err)
	var entry model.DirectoryEntry
	require.NoError(t, docstore.Decode(doc, &entry))
	assert.True(t, entry.Online)
	assert.Equal(t, model.StatusSingle, entry.Status)
}

func TestListActive_AgesOutSilently(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	clock := testutil.NewClock(start)
	reg := newRegistry(t, store, clock, time.Hour)

	require.NoError(t, reg.Register(ctx, alice))
	clock.Advance(10 * time.Second)
	require.NoError(t, reg.Register(ctx, bob))

	active, err := reg.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Bob", active[0].Name, "most recent first")

	clock.Advance(6 * time.Second)
	active, err = reg.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Bob", active[0].Name)

	require.NoError(t, reg.Touch(ctx, alice))
	assert.True(t, reg.IsActive(mustPresence(t, store, alice)))
}

func TestHeartbeat_RefreshesUntilStopped(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	clock := testutil.NewClock(start)
	reg := newRegistry(t, store, clock, 5*time.Millisecond)

	require.NoError(t, reg.Register(ctx, alice))
	require.NoError(t, store.Upsert(ctx, model.CollectionPresence, alice.Key(),
		docstore.Fields{"interests": []string{"jazz"}}, docstore.UpsertOptions{Merge: true}))

	hb := reg.StartHeartbeat(ctx, alice)
	assert.True(t, reg.Running(alice))

	clock.Advance(time.Minute)
	require.Eventually(t, func() bool {
		return mustPresence(t, store, alice).LastActive.Equal(start.Add(time.Minute))
	}, time.Second, 5*time.Millisecond)

	rec := mustPresence(t, store, alice)
	assert.Equal(t, []string{"jazz"}, rec.Interests, "merge keeps other fields")
	assert.True(t, rec.Online)

	hb.Stop()
	hb.Stop()
	assert.False(t, reg.Running(alice))

	clock.Advance(time.Minute)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, start.Add(time.Minute), mustPresence(t, store, alice).LastActive, "no writes after stop")
}

func TestStartHeartbeat_ReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	reg := newRegistry(t, store, testutil.NewClock(start), time.Hour)

	first := reg.StartHeartbeat(ctx, alice)
	second := reg.StartHeartbeat(ctx, alice)

	// first is already stopped; Stop returns immediately
	first.Stop()
	assert.True(t, reg.Running(alice))

	reg.StopHeartbeat(alice)
	assert.False(t, reg.Running(alice))
	second.Stop()
}

func TestHeartbeat_StopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	store := testutil.NewStore(t)
	reg := newRegistry(t, store, testutil.NewClock(start), time.Hour)

	reg.StartHeartbeat(ctx, bob)
	cancel()
	require.Eventually(t, func() bool { return !reg.Running(bob) }, time.Second, 5*time.Millisecond)
}

func TestLogout_PurgesOwnData(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)
	clock := testutil.NewClock(start)
	reg := newRegistry(t, store, clock, time.Hour)

	require.NoError(t, reg.Register(ctx, alice))
	require.NoError(t, reg.Register(ctx, bob))
	reg.StartHeartbeat(ctx, alice)

	for _, m := range []model.Message{
		{Text: "hi", AuthorName: "Alice", AuthorTable: "5"},
		{Text: "yo", AuthorName: "Bob", AuthorTable: "3"},
		{Text: "again", AuthorName: "Alice", AuthorTable: "5"},
		{Text: "other alice", AuthorName: "Alice", AuthorTable: "9"},
		{Text: "lowercase", AuthorName: "alice", AuthorTable: "5"},
	} {
		f, err := docstore.Encode(m)
		require.NoError(t, err)
		_, err = store.Append(ctx, model.CollectionMessages, f)
		require.NoError(t, err)
	}

	report := reg.Logout(ctx, alice)
	require.NoError(t, report.Err)
	assert.True(t, report.PresenceDeleted)
	assert.Equal(t, 2, report.MessagesDeleted)
	assert.False(t, reg.Running(alice))

	_, err := store.Get(ctx, model.CollectionPresence, alice.Key())
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	left, err := store.GetOnce(ctx, model.CollectionMessages, docstore.Query{})
	require.NoError(t, err)
	assert.Len(t, left, 3)

	doc, err := store.Get(ctx, model.CollectionUsers, alice.Key())
	require.NoError(t, err)
	assert.Equal(t, false, doc.Fields["online"])
	assert.Equal(t, "Alice", doc.Fields["name"])
}

// failingDeletes lets reads through and fails every delete.
type failingDeletes struct {
	docstore.Store
}

func (f failingDeletes) DeleteOne(context.Context, string, string) error {
	return errors.New("network down")
}

func TestLogout_ReportsPurgeFailures(t *testing.T) {
	ctx := context.Background()
	base := testutil.NewStore(t)
	store := failingDeletes{Store: base}
	reg := newRegistry(t, store, testutil.NewClock(start), time.Hour)

	require.NoError(t, reg.Register(ctx, alice))
	f, err := docstore.Encode(model.Message{Text: "hi", AuthorName: "Alice", AuthorTable: "5"})
	require.NoError(t, err)
	_, err = base.Append(ctx, model.CollectionMessages, f)
	require.NoError(t, err)

	report := reg.Logout(ctx, alice)
	require.Error(t, report.Err)
	assert.Contains(t, report.Err.Error(), "delete presence")
	assert.Contains(t, report.Err.Error(), "delete message")
	assert.False(t, report.PresenceDeleted)
	assert.Zero(t, report.MessagesDeleted)

	// logout still marked the directory entry offline
	doc, err := base.Get(ctx, model.CollectionUsers, alice.Key())
	require.NoError(t, err)
	assert.Equal(t, false, doc.Fields["online"])
}

func mustPresence(t *testing.T, store docstore.Store, id model.Identity) model.PresenceRecord {
	t.Helper()
	doc, err := store.Get(context.Background(), model.CollectionPresence, id.Key())
	require.NoError(t, err)
	var rec model.PresenceRecord
	require.NoError(t, docstore.Decode(doc, &rec))
	return rec
}
