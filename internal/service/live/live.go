// Package live feeds realtime snapshots into gRPC server streams.
package live

import "context"

// Mailbox holds the newest undelivered value. A slow reader skips
// intermediate values; it always ends up with the latest one.
type Mailbox[T any] struct {
	ch chan T
}

func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{ch: make(chan T, 1)}
}

// Put replaces any undelivered value with v. It never blocks.
func (m *Mailbox[T]) Put(v T) {
	for {
		select {
		case m.ch <- v:
			return
		default:
		}
		select {
		case <-m.ch:
		default:
		}
	}
}

// Pump sends every value put into m until ctx ends or send fails.
// A finished ctx is a normal end of stream.
func Pump[T any](ctx context.Context, m *Mailbox[T], send func(T) error) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case v := <-m.ch:
			if err := send(v); err != nil {
				return err
			}
		}
	}
}
