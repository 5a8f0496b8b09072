package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PurchasesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "purchases_total",
		Help: "Total number of completed purchases",
	})

	PaymentAttemptsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_attempts_total",
		Help: "Total number of payment gateway charge attempts",
	})

	PaymentFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "payment_failed_total",
		Help: "Total number of failed payment gateway charges",
	})

	EmailsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emails_sent_total",
		Help: "Total number of confirmation emails sent",
	})

	EmailsFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "emails_failed_total",
		Help: "Total number of confirmation emails that failed to send",
	})

	AuditWritesFailedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "audit_writes_failed_total",
		Help: "Total number of audit log writes that failed",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
