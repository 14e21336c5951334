// Package metrics exposes prometheus collectors for the claim pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "claimflow_queue_depth",
		Help: "Number of email records currently on the work queue.",
	})

	LastPollTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "claimflow_last_poll_timestamp_seconds",
		Help: "Unix time of the last successful mailbox poll.",
	})

	BrokerConnected = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "claimflow_broker_connected",
		Help: "1 while the AMQP connection carrying claim events is up.",
	})

	EmailsIngested = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claimflow_emails_ingested_total",
		Help: "Emails fetched per poll cycle, by classification outcome.",
	}, []string{"outcome"})

	ClaimsAssessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "claimflow_claims_assessed_total",
		Help: "Claims that reached a terminal fulfillment status.",
	}, []string{"status"})
)
