package db_test

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/aggregate"
	"github.com/oggyb/barchat/internal/db"
	"github.com/oggyb/barchat/internal/docstore"
	"github.com/oggyb/barchat/internal/repository"
	tu "github.com/oggyb/barchat/internal/testutil"
)

func TestSeedDemoData(t *testing.T) {
	ctx := context.Background()
	database := tu.NewDB(t)
	now := time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)

	counts, err := db.SeedDemoData(database, rand.New(rand.NewPCG(7, 7)), now)
	require.NoError(t, err)
	assert.Equal(t, len(db.DemoMusic), counts.Music)
	assert.Equal(t, len(db.DemoPatrons), counts.Patrons)
	assert.Equal(t, 3*len(db.DemoPatrons), counts.Messages)
	assert.Equal(t, len(db.DemoPatrons)/2, counts.Votes)

	repos := repository.New(docstore.NewGormStore(database, nil, nil), nil)

	catalog, err := repos.Votes.Catalog(ctx)
	require.NoError(t, err)
	assert.Len(t, catalog, len(db.DemoMusic))

	dir, err := repos.Users.Directory(ctx)
	require.NoError(t, err)
	assert.Equal(t, "3", dir["Elisa"].Table)

	likes, err := repos.Likes.Values(ctx, docstore.Query{})
	require.NoError(t, err)
	assert.Len(t, likes, counts.Likes)
	for _, l := range likes {
		assert.NotEqual(t, l.From, l.To)
	}

	votes, err := repos.Votes.All(ctx)
	require.NoError(t, err)
	for _, v := range votes {
		_, err := repos.Votes.Music.Get(ctx, v.MusicID)
		assert.NoError(t, err, "vote %s points at a catalog entry", v.VoterName)
	}
	assert.NotEmpty(t, aggregate.VoteTally(votes))

	// seeding twice starts over
	again, err := db.SeedDemoData(database, rand.New(rand.NewPCG(7, 7)), now)
	require.NoError(t, err)
	all, err := repos.Messages.Values(ctx, docstore.Query{})
	require.NoError(t, err)
	assert.Len(t, all, again.Messages)
}
