package docstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/oggyb/barchat/internal/db"
)

// dryRun renders the SELECT GetOnce would issue for q without running it.
func dryRun(t *testing.T, q Query) (string, []any, Query) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{DryRun: true, Logger: logger.Discard})
	require.NoError(t, err)

	tx, rest := pushDown(database.Where("collection = ?", "messages"), q)
	var rows []db.Document
	stmt := tx.Find(&rows).Statement
	return stmt.SQL.String(), stmt.Vars, rest
}

func TestPushDown_EqualityAndLimitRunInSQL(t *testing.T) {
	sql, vars, rest := dryRun(t, Where("authorTable", OpEq, "5").Take(2))

	assert.Contains(t, sql, "JSON_EXTRACT(`data`,?) = ?")
	assert.Contains(t, sql, "ORDER BY created_at ASC, id ASC")
	assert.Contains(t, sql, "LIMIT 2")
	assert.Contains(t, vars, "$.authorTable")
	assert.Contains(t, vars, "5")
	assert.Equal(t, Query{}, rest)
}

func TestPushDown_InAndID(t *testing.T) {
	sql, _, rest := dryRun(t, Where("to", OpIn, []string{"Bob", "Carol"}).Where(FieldID, OpEq, "Alice:Bob"))

	assert.Contains(t, sql, " OR ")
	assert.Contains(t, sql, "`id` = ?")
	assert.Empty(t, rest.Filters)
}

func TestPushDown_KeepsWhatSQLCannotMatch(t *testing.T) {
	at := time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)
	q := Where("authorTable", OpEq, "5").
		Where("createdAt", OpGt, at).
		Where("online", OpEq, true).
		Where("seen", OpEq, at).
		Where("table", OpNe, "3").
		Take(10)

	sql, _, rest := dryRun(t, q)

	assert.Contains(t, sql, "JSON_EXTRACT(`data`,?) = ?")
	assert.NotContains(t, sql, "LIMIT")
	require.Len(t, rest.Filters, 4)
	assert.Equal(t, "createdAt", rest.Filters[0].Field)
	assert.Equal(t, "online", rest.Filters[1].Field)
	assert.Equal(t, "seen", rest.Filters[2].Field)
	assert.Equal(t, "table", rest.Filters[3].Field)
	assert.Equal(t, 10, rest.Limit)
}

func TestPushDown_FieldOrderStaysInGo(t *testing.T) {
	sql, _, rest := dryRun(t, Where("authorTable", OpEq, "5").Order("createdAt", true).Take(3))

	assert.NotContains(t, sql, "LIMIT")
	assert.Empty(t, rest.Filters)
	assert.Equal(t, []Order{{Field: "createdAt", Desc: true}}, rest.OrderBy)
	assert.Equal(t, 3, rest.Limit)
}
