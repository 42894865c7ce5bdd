package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tu "github.com/oggyb/barchat/internal/testutil"
)

func TestLikeCount(t *testing.T) {
	ctx := context.Background()
	rc, mr := tu.NewRedis(t)

	_, ok, err := rc.GetLikeCount(ctx, "Bob")
	require.NoError(t, err)
	assert.False(t, ok)

	// a cold key stays cold
	require.NoError(t, rc.IncrLikeCount(ctx, "Bob"))
	assert.False(t, mr.Exists(rc.KeyForLikeCount("Bob")))

	require.NoError(t, rc.SetLikeCount(ctx, "Bob", 2))
	require.NoError(t, rc.IncrLikeCount(ctx, "Bob"))

	n, ok, err := rc.GetLikeCount(ctx, "Bob")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)
	assert.Equal(t, time.Hour, mr.TTL(rc.KeyForLikeCount("Bob")))

	// names are case-sensitive
	_, ok, err = rc.GetLikeCount(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, ok)

	mr.FastForward(2 * time.Hour)
	_, ok, err = rc.GetLikeCount(ctx, "Bob")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSlidingWindow(t *testing.T) {
	ctx := context.Background()
	rc, _ := tu.NewRedis(t)
	key := rc.KeyForRateWindow("messages", "Alice_5")
	now := time.Date(2026, 6, 12, 22, 0, 0, 0, time.UTC)

	for i, member := range []string{"a", "b"} {
		ok, err := rc.SlidingWindowAllow(ctx, key, now.Add(time.Duration(i)*time.Second), time.Minute, 2, member)
		require.NoError(t, err)
		assert.True(t, ok)
	}

	ok, err := rc.SlidingWindowAllow(ctx, key, now.Add(10*time.Second), time.Minute, 2, "c")
	require.NoError(t, err)
	assert.False(t, ok, "third action inside the window")

	n, err := rc.SlidingWindowCount(ctx, key, now.Add(10*time.Second), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n, "rejected action is not recorded")

	// the first entry leaves the window after exactly one minute
	ok, err = rc.SlidingWindowAllow(ctx, key, now.Add(time.Minute), time.Minute, 2, "d")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = rc.SlidingWindowAllow(ctx, rc.KeyForRateWindow("votes", "Alice_5"), now, time.Minute, 0, "e")
	require.NoError(t, err)
	assert.False(t, ok, "zero capacity always rejects")
}

func TestChangeFeed(t *testing.T) {
	ctx := context.Background()
	rc, _ := tu.NewRedis(t)

	sub := rc.SubscribeChanges(ctx, "messages")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, rc.PublishChange(ctx, "messages"))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, rc.KeyForChanges("messages"), msg.Channel)
}
