package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RepositoryCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "repository_calls_total",
			Help: "Total number of repository method calls",
		},
		[]string{"method", "status"},
	)

	RepositoryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "repository_duration_seconds",
			Help:    "Duration of repository method calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	RegistrationsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "user_registrations_total",
			Help: "Total number of registered users",
		},
	)

	WalletCreditsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wallet_credits_total",
			Help: "Total number of wallet funding operations",
		},
		[]string{"method"},
	)

	TicketsIssuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_issued_total",
			Help: "Total number of tickets issued",
		},
		[]string{"type"},
	)

	InsufficientFundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "purchase_insufficient_funds_total",
			Help: "Total number of purchases rejected for insufficient balance",
		},
	)
)

func InitMetrics() {
	prometheus.MustRegister(
		RepositoryCalls,
		RepositoryDuration,
		RegistrationsTotal,
		WalletCreditsTotal,
		TicketsIssuedTotal,
		InsufficientFundsTotal,
	)
}
