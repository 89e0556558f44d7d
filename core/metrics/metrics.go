// Package metrics holds the Prometheus collectors for the provider layer.
//
// Collectors are package-level and registered explicitly with Register, so tests and
// the HTTP server can choose their own registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcomes of a specific-function execution.
const (
	OutcomeUnsupported = "unsupported"
	OutcomeMismatch    = "mismatch"
	OutcomeNegative    = "negative"
	OutcomeOK          = "ok"
	OutcomeError       = "error"
)

var (
	FunctionExecutions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_function_executions_total",
		Help: "Specific-function executions by provider, operation and outcome",
	}, []string{"provider", "operation", "outcome"})

	FunctionDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "provider_function_duration_seconds",
		Help:    "Specific-function execution latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider", "operation"})

	ScriptsExecuted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "provider_scripts_executed_total",
		Help: "SQL scripts applied by the script runner",
	}, []string{"provider", "status"})
)

// Register registers the collectors on reg (or the default registerer if nil).
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{FunctionExecutions, FunctionDuration, ScriptsExecuted} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}

// ObserveFunction records one executor call.
func ObserveFunction(provider, operation, outcome string, elapsed time.Duration) {
	FunctionExecutions.WithLabelValues(provider, operation, outcome).Inc()
	FunctionDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
}

// ObserveScript records one script run.
func ObserveScript(provider string, ok bool) {
	status := "ok"
	if !ok {
		status = "failed"
	}
	ScriptsExecuted.WithLabelValues(provider, status).Inc()
}
