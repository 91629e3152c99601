// Package metrics holds the Prometheus collectors of the storefront server.
package metrics

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const DefaultPrefix = "storefront"

// Result labels.
const (
	ResultOK           = "ok"
	ResultValidation   = "validation"
	ResultConflict     = "conflict"
	ResultPolicy       = "policy"
	ResultNotFound     = "not_found"
	ResultUnauthorized = "unauthorized"
	ResultDependency   = "dependency"
	ResultInternal     = "internal"
)

// Metrics is safe to use through a nil pointer; every method is then a no-op.
type Metrics struct {
	RequestsTotal     *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
	OperationsTotal   *prometheus.CounterVec
	PasswordRotations prometheus.Counter
}

// New registers the collectors on reg with names starting with prefix.
func New(reg prometheus.Registerer, prefix string) *Metrics {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	f := promauto.With(reg)

	return &Metrics{
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of handled requests",
			},
			[]string{"transport", "method", "result"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_request_duration_seconds",
				Help:    "Duration of handled requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"transport", "method"},
		),
		OperationsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_operations_total",
				Help: "Total number of account and provisioning operations by result",
			},
			[]string{"operation", "result"},
		),
		PasswordRotations: f.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_password_rotations_total",
				Help: "Total number of successful password rotations",
			},
		),
	}
}

// Result classifies err into one of the Result labels.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, common.ErrValidation):
		return ResultValidation
	case errors.Is(err, common.ErrConflict):
		return ResultConflict
	case errors.Is(err, common.ErrPolicyViolation):
		return ResultPolicy
	case errors.Is(err, common.ErrorNotFound):
		return ResultNotFound
	case errors.Is(err, common.ErrorUnauthorized):
		return ResultUnauthorized
	case errors.Is(err, common.ErrDependency):
		return ResultDependency
	default:
		return ResultInternal
	}
}

// ObserveRequest records one transport-level request.
func (m *Metrics) ObserveRequest(transport, method string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(transport, method, Result(err)).Inc()
	m.RequestDuration.WithLabelValues(transport, method).Observe(d.Seconds())
}

// RecordOperation counts one service operation by its outcome.
func (m *Metrics) RecordOperation(operation string, err error) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(operation, Result(err)).Inc()
}

// RecordRotation counts a changed password.
func (m *Metrics) RecordRotation() {
	if m == nil {
		return
	}
	m.PasswordRotations.Inc()
}
