// Copyright 2026 KrakLabs
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package honeybadger

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsAPI holds Prometheus metrics for the API client.
type metricsAPI struct {
	once sync.Once

	// Requests by method and outcome (HTTP status code, "transport_error",
	// or "read_error").
	requests *prometheus.CounterVec

	// Durations
	duration prometheus.Histogram
}

var apiMetrics metricsAPI

func (m *metricsAPI) init() {
	m.once.Do(func() {
		m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "hb_api_requests_total",
			Help: "Requests issued against the Honeybadger API",
		}, []string{"method", "outcome"})

		m.duration = prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "hb_api_request_seconds",
			Help:    "Honeybadger API request duration",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		})

		prometheus.MustRegister(m.requests, m.duration)
	})
}

// recordRequest tracks one completed (or failed) API request.
func recordRequest(method Method, outcome string, d time.Duration) {
	apiMetrics.init()
	apiMetrics.requests.WithLabelValues(string(method), outcome).Inc()
	apiMetrics.duration.Observe(d.Seconds())
}
