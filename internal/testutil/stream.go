package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// Stream is an in-process grpc.ServerStreamingServer that hands every sent
// message to the test. Only Send and Context are backed.
type Stream[T any] struct {
	grpc.ServerStream
	ctx  context.Context
	sent chan *T
}

var _ grpc.ServerStreamingServer[struct{}] = (*Stream[struct{}])(nil)

func NewStream[T any](ctx context.Context) *Stream[T] {
	return &Stream[T]{ctx: ctx, sent: make(chan *T, 64)}
}

func (s *Stream[T]) Send(m *T) error {
	select {
	case s.sent <- m:
		return nil
	case <-s.ctx.Done():
		return s.ctx.Err()
	}
}

func (s *Stream[T]) Context() context.Context { return s.ctx }

// Next waits for the next sent message.
func (s *Stream[T]) Next(t *testing.T) *T {
	t.Helper()
	select {
	case m := <-s.sent:
		return m
	case <-time.After(2 * time.Second):
		require.FailNow(t, "no message on stream")
		return nil
	}
}

// Until waits for a sent message that satisfies ok and returns it.
func (s *Stream[T]) Until(t *testing.T, ok func(*T) bool) *T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case m := <-s.sent:
			if ok(m) {
				return m
			}
		case <-deadline:
			require.FailNow(t, "stream never reached the expected state")
			return nil
		}
	}
}
