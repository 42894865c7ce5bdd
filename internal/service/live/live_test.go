package live_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/barchat/internal/service/live"
)

func TestMailbox_KeepsNewest(t *testing.T) {
	mb := live.NewMailbox[int]()
	mb.Put(1)
	mb.Put(2)
	mb.Put(3)

	ctx, cancel := context.WithCancel(context.Background())
	var got []int
	err := live.Pump(ctx, mb, func(v int) error {
		got = append(got, v)
		cancel()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)
}

func TestPump_StopsOnSendError(t *testing.T) {
	mb := live.NewMailbox[string]()
	mb.Put("hello")

	boom := errors.New("client gone")
	err := live.Pump(context.Background(), mb, func(string) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestPump_ReturnsNilWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := live.Pump(ctx, live.NewMailbox[int](), func(int) error { return nil })
	assert.NoError(t, err)
}
