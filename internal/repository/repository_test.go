package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/docstore"
	svcErr "github.com/oggyb/barchat/internal/errors"
	"github.com/oggyb/barchat/internal/model"
	"github.com/oggyb/barchat/internal/repository"
	"github.com/oggyb/barchat/internal/testutil"
)

var night = time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)

// setup store with a controllable clock
func setupStore(t *testing.T) (*docstore.GormStore, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(night)
	return testutil.NewStore(t).WithClock(clock.Now), clock
}

func TestMessages_ListPage(t *testing.T) {
	ctx := context.Background()
	store, clock := setupStore(t)
	repo := repository.NewMessageRepository(store)

	for i, table := range []string{"5", "3", "5", "5", "3"} {
		clock.Advance(time.Second)
		_, err := repo.Append(ctx, model.Message{Text: string(rune('a' + i)), AuthorName: "X", AuthorTable: table, CreatedAt: clock.Now()})
		require.NoError(t, err)
	}

	// table 5 newest first: d, c, a
	page, next, err := repo.ListPage(ctx, "5", nil, 2)
	assert.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "d", page[0].Data.Text)
	assert.Equal(t, "c", page[1].Data.Text)
	require.NotNil(t, next)

	page, next, err = repo.ListPage(ctx, "5", next, 2)
	assert.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "a", page[0].Data.Text)
	assert.Nil(t, next)

	// whole bar
	page, _, err = repo.ListPage(ctx, "", nil, 0)
	assert.NoError(t, err)
	assert.Len(t, page, 5)

	bad := "not-a-token"
	_, _, err = repo.ListPage(ctx, "", &bad, 2)
	assert.Error(t, err)
}

func TestLikes_CreateOncePerPair(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	repo := repository.NewLikeRepository(store, nil)

	edge := model.LikeEdge{From: "Alice", FromTable: "5", To: "Bob", ToTable: "3", CreatedAt: night}
	assert.NoError(t, repo.Create(ctx, edge))
	assert.ErrorIs(t, repo.Create(ctx, edge), svcErr.ErrAlreadyExists)

	ok, err := repo.HasLiked(ctx, "Alice", "Bob")
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.HasLiked(ctx, "Bob", "Alice")
	assert.NoError(t, err)
	assert.False(t, ok)

	// names are case-sensitive
	ok, err = repo.HasLiked(ctx, "alice", "Bob")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, repo.Create(ctx, model.LikeEdge{From: "Carol", To: "Bob", CreatedAt: night}))
	sent, err := repo.SentBy(ctx, "Alice")
	assert.NoError(t, err)
	assert.Len(t, sent, 1)
	received, err := repo.ReceivedBy(ctx, "Bob")
	assert.NoError(t, err)
	assert.Len(t, received, 2)
}

func TestLikes_CountLikersCacheFirst(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	rc, mr := testutil.NewRedis(t)
	repo := repository.NewLikeRepository(store, rc)

	assert.NoError(t, repo.Create(ctx, model.LikeEdge{From: "Alice", To: "Bob"}))

	// miss → store count, then cached
	n, err := repo.CountLikers(ctx, "Bob")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, mr.Exists("likes:count:Bob"))

	// warm key is bumped on write
	assert.NoError(t, repo.Create(ctx, model.LikeEdge{From: "Carol", To: "Bob"}))
	cached, err := mr.Get("likes:count:Bob")
	assert.NoError(t, err)
	assert.Equal(t, "2", cached)

	n, err = repo.CountLikers(ctx, "Bob")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDrinks_ResolveOnce(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	repo := repository.NewDrinkRepository(store)

	id, err := repo.Send(ctx, model.DrinkGift{From: "Alice", FromTable: "5", To: "Bob", ToTable: "3", DrinkType: "Beer", Price: 4.5, Status: model.GiftAccepted})
	require.NoError(t, err)

	incoming, err := repo.Incoming(ctx, "Bob")
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	assert.Equal(t, model.GiftPending, incoming[0].Data.Status, "new gifts always start pending")

	_, err = repo.Resolve(ctx, id, "Carol", model.GiftAccepted, night)
	assert.ErrorIs(t, err, svcErr.ErrPermissionDenied)

	_, err = repo.Resolve(ctx, id, "Bob", model.GiftPending, night)
	assert.ErrorIs(t, err, svcErr.ErrValidation)

	gift, err := repo.Resolve(ctx, id, "Bob", model.GiftAccepted, night)
	require.NoError(t, err)
	assert.Equal(t, model.GiftAccepted, gift.Status)
	require.NotNil(t, gift.ResolvedAt)

	_, err = repo.Resolve(ctx, id, "Bob", model.GiftDeclined, night)
	assert.ErrorIs(t, err, svcErr.ErrInvariant)

	stored, err := repo.Gifts.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.GiftAccepted, stored.Data.Status, "status never goes back")

	_, err = repo.Resolve(ctx, "missing", "Bob", model.GiftAccepted, night)
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestDrinks_Tab(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	repo := repository.NewDrinkRepository(store)

	tab, err := repo.Tab(ctx, "Alice", "5")
	assert.NoError(t, err)
	assert.Zero(t, tab.Total)
	assert.Equal(t, "Alice", tab.Name)

	_, err = repo.Charge(ctx, "Alice", "5", 4.5, night)
	assert.NoError(t, err)
	tab, err = repo.Charge(ctx, "Alice", "5", 0.1, night)
	assert.NoError(t, err)
	assert.Equal(t, 4.6, tab.Total)
	assert.Equal(t, 2, tab.Drinks)

	tab, err = repo.Tab(ctx, "Alice", "5")
	assert.NoError(t, err)
	assert.Equal(t, 4.6, tab.Total)
}

func TestVotes_OnePerVoterAndReset(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	repo := repository.NewVoteRepository(store)

	songID, err := repo.AddMusic(ctx, model.Music{Name: "Song A", Artist: "Band"})
	require.NoError(t, err)
	_, err = repo.AddMusic(ctx, model.Music{Name: "Song A"})
	assert.ErrorIs(t, err, svcErr.ErrAlreadyExists)
	_, err = repo.AddMusic(ctx, model.Music{Name: "Another"})
	require.NoError(t, err)

	catalog, err := repo.Catalog(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	assert.Equal(t, "Another", catalog[0].Data.Name)

	alice := model.Identity{Name: "Alice", Table: "5"}
	v := model.Vote{MusicID: songID, MusicName: "Song A", VoterName: "Alice", VoterTable: "5", CreatedAt: night}
	assert.NoError(t, repo.Cast(ctx, v))
	assert.ErrorIs(t, repo.Cast(ctx, v), svcErr.ErrAlreadyExists)

	got, ok, err := repo.ByVoter(ctx, alice)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Song A", got.MusicName)

	n, err := repo.Reset(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	_, ok, err = repo.ByVoter(ctx, alice)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestRaffle_JoinOnce(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	repo := repository.NewRaffleRepository(store)

	state, err := repo.State(ctx)
	assert.NoError(t, err)
	assert.Empty(t, state.Participants)
	assert.Nil(t, state.Winner)

	alice := model.Identity{Name: "Alice", Table: "5"}
	state, err = repo.Join(ctx, alice, night)
	assert.NoError(t, err)
	assert.Len(t, state.Participants, 1)

	_, err = repo.Join(ctx, alice, night)
	assert.ErrorIs(t, err, svcErr.ErrAlreadyExists)

	// same name at another table is another patron
	_, err = repo.Join(ctx, model.Identity{Name: "Alice", Table: "9"}, night)
	assert.NoError(t, err)

	state, err = repo.State(ctx)
	assert.NoError(t, err)
	assert.Len(t, state.Participants, 2)
}

func TestUsers_DirectoryAndProfile(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	repo := repository.NewUserRepository(store)
	alice := model.Identity{Name: "Alice", Table: "5", Status: model.StatusSingle}

	require.NoError(t, repo.Put(ctx, alice.Key(), model.DirectoryEntry{Identity: alice, Online: true}))
	require.NoError(t, store.Upsert(ctx, model.CollectionPresence, alice.Key(),
		docstore.Fields{"name": "Alice", "table": "5", "online": true}, docstore.UpsertOptions{}))

	require.NoError(t, repo.UpdateProfile(ctx, alice, model.StatusTaken, []string{"jazz"}))

	dir, err := repo.Directory(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StatusTaken, dir["Alice"].Status)

	entry, ok, err := repo.Lookup(ctx, alice)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, entry.Online, "merge keeps other fields")

	recs, err := repo.Presence(ctx)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"jazz"}, recs[0].Interests)
	assert.Equal(t, model.StatusTaken, recs[0].Status)

	_, ok, err = repo.Lookup(ctx, model.Identity{Name: "Nobody", Table: "1"})
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestPrivate_ConversationIsSymmetric(t *testing.T) {
	ctx := context.Background()
	store, clock := setupStore(t)
	repo := repository.NewPrivateMessageRepository(store)

	_, err := repo.Send(ctx, model.PrivateMessage{From: "Alice", To: "Bob", Text: "hi"})
	require.NoError(t, err)
	clock.Advance(time.Second)
	_, err = repo.Send(ctx, model.PrivateMessage{From: "Bob", To: "Alice", Text: "hey"})
	require.NoError(t, err)
	_, err = repo.Send(ctx, model.PrivateMessage{From: "Bob", To: "Carol", Text: "psst"})
	require.NoError(t, err)

	ab, err := repo.Conversation(ctx, "Alice", "Bob")
	require.NoError(t, err)
	ba, err := repo.Conversation(ctx, "Bob", "Alice")
	require.NoError(t, err)

	require.Len(t, ab, 2)
	assert.Equal(t, ab, ba)
	assert.Equal(t, "Alice_Bob", ab[0].Data.ChatID)
	assert.Equal(t, "hi", ab[0].Data.Text)
}

func TestCollection_DeleteWhere(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)
	c := repository.NewCollection[model.Message](store, model.CollectionMessages)

	for _, table := range []string{"1", "2", "1"} {
		_, err := c.Append(ctx, model.Message{Text: "x", AuthorTable: table})
		require.NoError(t, err)
	}
	n, err := c.DeleteWhere(ctx, repository.TableQuery("1"))
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	left, err := c.Values(ctx, docstore.Query{})
	assert.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "2", left[0].AuthorTable)
}
