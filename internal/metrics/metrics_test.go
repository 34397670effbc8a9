// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package metrics_test

import (
	"testing"
	"time"

	"inventory/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveExport(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.ObserveExport("xml", metrics.OK, time.Now(), 2048)
	m.ObserveExport("xml", metrics.NotFound, time.Now(), 0)

	if got := testutil.ToFloat64(m.ExportsTotal.WithLabelValues("xml", metrics.OK)); got != 1 {
		t.Fatalf("ok exports = %v", got)
	}
	if got := testutil.ToFloat64(m.ExportsTotal.WithLabelValues("xml", metrics.NotFound)); got != 1 {
		t.Fatalf("not found exports = %v", got)
	}
	if got := testutil.CollectAndCount(m.ExportBytes); got != 1 {
		t.Fatalf("export bytes series = %d", got)
	}
}

func TestObserveVerification(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.ObserveVerification(metrics.OK, time.Now(), 0.75, true)
	m.ObserveVerification(metrics.OK, time.Now(), 1, false)
	m.ObserveVerification(metrics.Failed, time.Now(), 0, true)

	if got := testutil.ToFloat64(m.VerificationsTotal.WithLabelValues(metrics.OK)); got != 2 {
		t.Fatalf("ok verifications = %v", got)
	}
	if got := testutil.ToFloat64(m.TranslationNeeded); got != 1 {
		t.Fatalf("translation needed = %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	m.ObserveExport("xml", metrics.OK, time.Now(), 1)
	m.ObserveVerification(metrics.OK, time.Now(), 1, false)
}
