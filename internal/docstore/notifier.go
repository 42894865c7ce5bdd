package docstore

import (
	"context"
	"sync"

	"github.com/oggyb/barchat/internal/cache"
)

// Notifier carries "collection changed" notices from writers to listeners.
// Notices coalesce: a listener that is busy sees one pending notice no
// matter how many writes happened meanwhile.
type Notifier interface {
	Publish(ctx context.Context, collection string) error
	// Listen returns a channel of notices and a stop func that releases it.
	// The channel is closed once the listener is stopped or the feed dies.
	Listen(ctx context.Context, collection string) (<-chan struct{}, func(), error)
}

// LocalNotifier fans notices out inside one process.
type LocalNotifier struct {
	mu        sync.Mutex
	next      int
	listeners map[string]map[int]chan struct{}
}

func NewLocalNotifier() *LocalNotifier {
	return &LocalNotifier{listeners: make(map[string]map[int]chan struct{})}
}

func (n *LocalNotifier) Publish(_ context.Context, collection string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, ch := range n.listeners[collection] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

func (n *LocalNotifier) Listen(_ context.Context, collection string) (<-chan struct{}, func(), error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.next
	n.next++
	ch := make(chan struct{}, 1)
	if n.listeners[collection] == nil {
		n.listeners[collection] = make(map[int]chan struct{})
	}
	n.listeners[collection][id] = ch

	var once sync.Once
	stop := func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.listeners[collection], id)
			if len(n.listeners[collection]) == 0 {
				delete(n.listeners, collection)
			}
			close(ch)
		})
	}
	return ch, stop, nil
}

// RedisNotifier shares notices between processes over Redis pub/sub.
type RedisNotifier struct {
	cache *cache.RedisCache
}

func NewRedisNotifier(c *cache.RedisCache) *RedisNotifier {
	return &RedisNotifier{cache: c}
}

func (n *RedisNotifier) Publish(ctx context.Context, collection string) error {
	return n.cache.PublishChange(ctx, collection)
}

func (n *RedisNotifier) Listen(ctx context.Context, collection string) (<-chan struct{}, func(), error) {
	ps := n.cache.SubscribeChanges(ctx, collection)
	// wait for the subscription to be confirmed so no publish is missed
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, nil, err
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		for range ps.Channel() {
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()

	var once sync.Once
	stop := func() {
		once.Do(func() { _ = ps.Close() })
	}
	return out, stop, nil
}
