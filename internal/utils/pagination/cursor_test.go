package pagination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/utils/pagination"
)

func TestEncodeDecode(t *testing.T) {
	at := time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)
	token, err := pagination.Encode(pagination.At("0190-abc", at))
	require.NoError(t, err)

	c, err := pagination.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "0190-abc", c.ID)
	assert.Equal(t, at.UnixMilli(), c.CreatedUnix)

	c, err = pagination.Decode("")
	require.NoError(t, err)
	assert.True(t, c.IsZero())

	_, err = pagination.Decode("%%%")
	assert.Error(t, err)
}

func TestPrecedes(t *testing.T) {
	at := time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)
	c := pagination.At("m5", at)

	assert.True(t, c.Precedes("m9", at.Add(-time.Second)), "older record")
	assert.True(t, c.Precedes("m4", at), "same instant, lower id")
	assert.False(t, c.Precedes("m5", at), "the cursor record itself")
	assert.False(t, c.Precedes("m6", at))
	assert.False(t, c.Precedes("m1", at.Add(time.Second)))
	assert.True(t, pagination.Cursor{}.Precedes("any", at))
}
