// Package metrics holds the prometheus collectors of one barchat instance.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "barchat"

type Metrics struct {
	MessagesSent       prometheus.Counter
	Likes              prometheus.Counter
	Matches            prometheus.Counter
	Drinks             *prometheus.CounterVec
	Votes              prometheus.Counter
	RateLimited        *prometheus.CounterVec
	SubscriptionRetry  *prometheus.CounterVec
	GRPCRequests       *prometheus.CounterVec
	GRPCRequestSeconds *prometheus.HistogramVec
}

// New builds the collectors and registers them on reg. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "messages_sent_total",
			Help:      "Bar chat messages accepted.",
		}),
		Likes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "likes_total",
			Help:      "Likes recorded.",
		}),
		Matches: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "matches_total",
			Help:      "Likes that completed a mutual match.",
		}),
		Drinks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "drinks_total",
			Help:      "Drink gifts by lifecycle status.",
		}, []string{"status"}),
		Votes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "votes_total",
			Help:      "Music votes cast.",
		}),
		RateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rate_limited_total",
			Help:      "Actions rejected by a limiter.",
		}, []string{"limiter"}),
		SubscriptionRetry: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "subscription_retries_total",
			Help:      "Realtime subscription retries scheduled.",
		}, []string{"collection"}),
		GRPCRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "gRPC calls by method and status code.",
		}, []string{"method", "code"}),
		GRPCRequestSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "grpc_request_duration_seconds",
			Help:      "Duration of unary gRPC calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.MessagesSent,
			m.Likes,
			m.Matches,
			m.Drinks,
			m.Votes,
			m.RateLimited,
			m.SubscriptionRetry,
			m.GRPCRequests,
			m.GRPCRequestSeconds,
		)
	}
	return m
}

// Discard returns collectors registered nowhere.
func Discard() *Metrics {
	return New(nil)
}

// OnRetry matches realtime.Options.OnRetry.
func (m *Metrics) OnRetry(collection string, _ int) {
	m.SubscriptionRetry.WithLabelValues(collection).Inc()
}
