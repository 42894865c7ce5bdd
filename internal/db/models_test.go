package db_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/db"
	"github.com/oggyb/barchat/internal/docstore"
	tu "github.com/oggyb/barchat/internal/testutil"
)

func TestDocument_DataIsJSONColumn(t *testing.T) {
	database := tu.NewDB(t)

	cols, err := database.Migrator().ColumnTypes(&db.Document{})
	require.NoError(t, err)

	var found bool
	for _, c := range cols {
		if c.Name() == "data" {
			found = true
			assert.True(t, strings.EqualFold(c.DatabaseTypeName(), "json"), c.DatabaseTypeName())
		}
	}
	assert.True(t, found)
}

func TestDocument_HoldsLargeDocuments(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewGormStore(tu.NewDB(t), nil, nil)

	// larger than a 64 KB TEXT column
	big := strings.Repeat("x", 100_000)
	require.NoError(t, store.Upsert(ctx, "raffle", "current", docstore.Fields{"blob": big}, docstore.UpsertOptions{}))

	docs, err := store.GetOnce(ctx, "raffle", docstore.Query{})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, big, docs[0].Fields["blob"])
}
