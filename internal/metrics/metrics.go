// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package metrics holds the Prometheus instruments for exports and
// verifications.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OK       = "ok"
	NotFound = "not_found"
	Failed   = "error"
)

type Metrics struct {
	// Export metrics
	ExportsTotal   *prometheus.CounterVec
	ExportDuration prometheus.Histogram
	ExportBytes    prometheus.Histogram

	// Verification metrics
	VerificationsTotal   *prometheus.CounterVec
	VerificationDuration prometheus.Histogram
	Rating               prometheus.Histogram
	TranslationNeeded    prometheus.Counter
}

// New registers all instruments with reg. Tests pass a fresh registry so
// repeated construction does not collide.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	m := &Metrics{}

	m.ExportsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_exports_total",
			Help: "Total number of metadata documents exported",
		},
		[]string{"format", "outcome"},
	)
	m.ExportDuration = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_export_duration_seconds",
			Help:    "Time to load and serialize one metadata document",
			Buckets: prometheus.DefBuckets,
		},
	)
	m.ExportBytes = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_export_bytes",
			Help:    "Size of exported metadata documents",
			Buckets: prometheus.ExponentialBuckets(1024, 2, 10),
		},
	)

	m.VerificationsTotal = f.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inventory_verifications_total",
			Help: "Total number of completeness verifications",
		},
		[]string{"outcome"},
	)
	m.VerificationDuration = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_verification_duration_seconds",
			Help:    "Time to load, score and persist one resource",
			Buckets: prometheus.DefBuckets,
		},
	)
	m.Rating = f.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "inventory_completeness_rating",
			Help:    "Distribution of completeness ratings",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)
	m.TranslationNeeded = f.NewCounter(
		prometheus.CounterOpts{
			Name: "inventory_translation_needed_total",
			Help: "Verifications that flagged a missing translation",
		},
	)

	return m
}

func (m *Metrics) ObserveExport(format, outcome string, start time.Time, size int) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(format, outcome).Inc()
	if outcome != OK {
		return
	}
	m.ExportDuration.Observe(time.Since(start).Seconds())
	m.ExportBytes.Observe(float64(size))
}

func (m *Metrics) ObserveVerification(outcome string, start time.Time, rating float64, translationNeeded bool) {
	if m == nil {
		return
	}
	m.VerificationsTotal.WithLabelValues(outcome).Inc()
	if outcome != OK {
		return
	}
	m.VerificationDuration.Observe(time.Since(start).Seconds())
	m.Rating.Observe(rating)
	if translationNeeded {
		m.TranslationNeeded.Inc()
	}
}
