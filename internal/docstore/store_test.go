package docstore_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/testutil"
)

func TestAppendAndGetOnce_FilterAndOrder(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	base := time.Date(2026, 1, 1, 22, 0, 0, 0, time.UTC)
	for i, m := range []struct {
		author string
		table  string
	}{{"Alice", "5"}, {"Bob", "3"}, {"Alice", "5"}} {
		_, err := store.Append(ctx, "messages", docstore.Fields{
			"authorName":  m.author,
			"authorTable": m.table,
			"createdAt":   base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	docs, err := store.GetOnce(ctx, "messages", docstore.Where("authorName", docstore.OpEq, "Alice"))
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = store.GetOnce(ctx, "messages", docstore.Query{}.Order("createdAt", true).Take(2))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "Alice", docs[0].Fields["authorName"])
	assert.Equal(t, "Bob", docs[1].Fields["authorName"])

	docs, err = store.GetOnce(ctx, "messages", docstore.Where("createdAt", docstore.OpGt, base))
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = store.GetOnce(ctx, "messages", docstore.Where("authorTable", docstore.OpIn, []string{"3", "9"}))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Bob", docs[0].Fields["authorName"])
}

func TestGetOnce_FiltersInSQL(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	for _, f := range []docstore.Fields{
		{"name": "Alice", "table": "5", "online": true, "score": 3},
		{"name": "Bob", "table": "7", "online": false, "score": 1.5},
		{"name": "Carol", "table": "5", "online": true, "score": 3},
	} {
		_, err := store.Append(ctx, "users", f)
		require.NoError(t, err)
	}

	docs, err := store.GetOnce(ctx, "users", docstore.Where("table", docstore.OpEq, "5").Take(1))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Alice", docs[0].Fields["name"])

	docs, err = store.GetOnce(ctx, "users", docstore.Where("score", docstore.OpEq, 3))
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	docs, err = store.GetOnce(ctx, "users", docstore.Where("online", docstore.OpEq, false))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Bob", docs[0].Fields["name"])

	docs, err = store.GetOnce(ctx, "users", docstore.Where("name", docstore.OpIn, []string{"Carol", "Dan"}))
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "5", docs[0].Fields["table"])

	docs, err = store.GetOnce(ctx, "users", docstore.Where(docstore.FieldID, docstore.OpEq, docs[0].ID))
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestUpsert_MergeKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	require.NoError(t, store.Upsert(ctx, "presence", "Alice_5", docstore.Fields{
		"name": "Alice", "online": true, "interests": []string{"jazz"},
	}, docstore.UpsertOptions{}))

	require.NoError(t, store.Upsert(ctx, "presence", "Alice_5", docstore.Fields{
		"online": false,
	}, docstore.UpsertOptions{Merge: true}))

	doc, err := store.Get(ctx, "presence", "Alice_5")
	require.NoError(t, err)
	assert.Equal(t, "Alice", doc.Fields["name"])
	assert.Equal(t, false, doc.Fields["online"])
	assert.Equal(t, []any{"jazz"}, doc.Fields["interests"])

	require.NoError(t, store.Upsert(ctx, "presence", "Alice_5", docstore.Fields{
		"online": true,
	}, docstore.UpsertOptions{}))

	doc, err = store.Get(ctx, "presence", "Alice_5")
	require.NoError(t, err)
	assert.NotContains(t, doc.Fields, "name")
}

func TestGet_NotFoundAndDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	_, err := store.Get(ctx, "drinks", "missing")
	assert.ErrorIs(t, err, docstore.ErrNotFound)

	id, err := store.Append(ctx, "drinks", docstore.Fields{"status": "pending"})
	require.NoError(t, err)
	require.NoError(t, store.DeleteOne(ctx, "drinks", id))
	require.NoError(t, store.DeleteOne(ctx, "drinks", id))

	_, err = store.Get(ctx, "drinks", id)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

// recorder collects snapshots delivered by a subscription.
type recorder struct {
	mu    sync.Mutex
	snaps [][]docstore.Document
}

func (r *recorder) onSnapshot(docs []docstore.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, docs)
}

func (r *recorder) last() []docstore.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snaps) == 0 {
		return nil
	}
	return r.snaps[len(r.snaps)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func TestSubscribe_DeliversFullSnapshots(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore(t)

	_, err := store.Append(ctx, "likes", docstore.Fields{"from": "Alice", "to": "Bob"})
	require.NoError(t, err)

	rec := &recorder{}
	unsubscribe, err := store.Subscribe(ctx, "likes", docstore.Where("to", docstore.OpEq, "Bob"), rec.onSnapshot, func(err error) {
		t.Errorf("unexpected listener error: %v", err)
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(rec.last()) == 1 }, time.Second, 5*time.Millisecond)

	_, err = store.Append(ctx, "likes", docstore.Fields{"from": "Carol", "to": "Bob"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(rec.last()) == 2 }, time.Second, 5*time.Millisecond)

	unsubscribe()
	unsubscribe()

	seen := rec.count()
	_, err = store.Append(ctx, "likes", docstore.Fields{"from": "Dan", "to": "Bob"})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, seen, rec.count())
}

func TestRedisNotifier_SubscribeAcrossStores(t *testing.T) {
	ctx := context.Background()
	rc, _ := testutil.NewRedis(t)
	database := testutil.NewDB(t)

	reader := docstore.NewGormStore(database, docstore.NewRedisNotifier(rc), nil)
	writer := docstore.NewGormStore(database, docstore.NewRedisNotifier(rc), nil)

	rec := &recorder{}
	unsubscribe, err := reader.Subscribe(ctx, "votes", docstore.Query{}, rec.onSnapshot, func(error) {})
	require.NoError(t, err)
	defer unsubscribe()

	require.Eventually(t, func() bool { return rec.count() >= 1 }, time.Second, 5*time.Millisecond)

	_, err = writer.Append(ctx, "votes", docstore.Fields{"musicId": "m1"})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(rec.last()) == 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestEncodeDecode(t *testing.T) {
	type vote struct {
		MusicID string    `json:"musicId"`
		At      time.Time `json:"createdAt"`
	}
	at := time.Date(2026, 3, 1, 21, 30, 0, 0, time.UTC)

	f, err := docstore.Encode(vote{MusicID: "m1", At: at})
	require.NoError(t, err)
	assert.Equal(t, "m1", f["musicId"])

	var out vote
	require.NoError(t, docstore.Decode(docstore.Document{ID: "x", Fields: f}, &out))
	assert.True(t, at.Equal(out.At))
}
