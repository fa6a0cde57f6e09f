// Copyright 2026 The Flashkit Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dispatch

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/flashkit/routing"
	"github.com/flashkit/routing/route"
)

// dispatchMetrics contains Prometheus metrics for route resolution.
type dispatchMetrics struct {
	resolutions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	routes      *prometheus.GaugeVec
}

var (
	dispatchMetricsInstance *dispatchMetrics
	dispatchMetricsOnce     sync.Once
)

// getDispatchMetrics returns the singleton dispatch metrics instance.
// Metrics register with the default registry exactly once, no matter how
// many dispatchers a process creates.
func getDispatchMetrics() *dispatchMetrics {
	dispatchMetricsOnce.Do(func() {
		dispatchMetricsInstance = &dispatchMetrics{
			resolutions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "routing",
					Subsystem: "dispatch",
					Name:      "resolutions_total",
					Help:      "Total number of route resolutions by outcome",
				},
				[]string{"outcome"},
			),
			duration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: "routing",
					Subsystem: "dispatch",
					Name:      "resolution_duration_seconds",
					Help:      "Route resolution latency by outcome",
					Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
				},
				[]string{"outcome"},
			),
			routes: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "routing",
					Subsystem: "dispatch",
					Name:      "registered_routes",
					Help:      "Registered routes by resolution bucket",
				},
				[]string{"bucket"},
			),
		}
	})
	return dispatchMetricsInstance
}

// setRouteCounts refreshes the registered-route gauges from the registry's
// per-bucket counts. The gauges are process-wide series; when several
// dispatchers enable metrics, they reflect the registry that registered
// last.
func (m *dispatchMetrics) setRouteCounts(reg *routing.Registry) {
	m.routes.WithLabelValues(route.KindLiteral.String()).Set(float64(reg.LiteralCount()))
	m.routes.WithLabelValues(route.KindParameterized.String()).Set(float64(reg.ParameterizedCount()))
	m.routes.WithLabelValues(route.KindDynamic.String()).Set(float64(reg.DynamicCount()))
}

// observe records one resolution with its outcome and latency.
func (m *dispatchMetrics) observe(outcome string, elapsed time.Duration) {
	m.resolutions.WithLabelValues(outcome).Inc()
	m.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}
