package ddns

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "r53ddns_events_total",
			Help: "Lifecycle events handled, by dispatch action",
		},
		[]string{"action"},
	)
	changeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "r53ddns_dns_changes_total",
			Help: "DNS changes applied, by action and outcome",
		},
		[]string{"action", "outcome"},
	)
	storageFailureCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "r53ddns_storage_failures_total",
			Help: "Record store failures, by operation",
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(eventCounter)
	prometheus.MustRegister(changeCounter)
	prometheus.MustRegister(storageFailureCounter)
}

func countChange(outcome ChangeOutcome) {
	result := "success"
	if outcome.Error != nil {
		result = "failure"
	}
	changeCounter.WithLabelValues(string(outcome.Action), result).Inc()
}
