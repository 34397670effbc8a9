// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inventory/internal/api/metadata"
	"inventory/internal/checklist"
	"inventory/internal/fixture"
	"inventory/internal/inventory"
	"inventory/internal/lookup"
	"inventory/internal/metrics"
	"inventory/internal/nap"
	"inventory/internal/router"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(t *testing.T) (*echo.Echo, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	t.Cleanup(zap.ReplaceGlobals(zap.New(core)))

	reg := prometheus.NewRegistry()
	clock := func() time.Time { return fixture.Clock }
	lookups := lookup.Default()
	svc := inventory.NewService(fixture.NewMockStore(fixture.Complete()),
		nap.NewBuilder(lookups, nap.WithClock(clock)),
		checklist.NewScorer(lookups, checklist.WithClock(clock)),
		metrics.New(reg),
	)
	return router.New(metadata.NewHandler(svc), reg), logs
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// ───────────────────────────────────────────────────────────
// Routing
// ───────────────────────────────────────────────────────────

func TestRoutes(t *testing.T) {
	e, _ := newRouter(t)

	for target, want := range map[string]int{
		"/healthz":                        200,
		"/api/resources/1/xml":            200,
		"/api/resources/export.zip?ids=1": 200,
		"/api/resources/2/xml":            404,
		"/nowhere":                        404,
	} {
		if rec := get(e, target); rec.Code != want {
			t.Fatalf("%s: expected %d, got %d", target, want, rec.Code)
		}
	}
}

func TestMetricsExposed(t *testing.T) {
	e, _ := newRouter(t)
	get(e, "/api/resources/1/xml")

	rec := get(e, "/metrics")
	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `inventory_exports_total{format="xml",outcome="ok"} 1`) {
		t.Fatalf("export counter missing:\n%s", rec.Body.String())
	}
}

// ───────────────────────────────────────────────────────────
// Middleware
// ───────────────────────────────────────────────────────────

func TestRequestIDPropagated(t *testing.T) {
	e, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(echo.HeaderXRequestID, "trace-1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderXRequestID); got != "trace-1" {
		t.Fatalf("request id = %q", got)
	}
	if id := get(e, "/healthz").Header().Get(echo.HeaderXRequestID); !strings.HasPrefix(id, "INV-") {
		t.Fatalf("assigned request id = %q", id)
	}
}

func TestRequestLogged(t *testing.T) {
	e, logs := newRouter(t)
	get(e, "/api/resources/1/xml?compact=1")

	entries := logs.FilterMessage("request").All()
	if len(entries) != 1 {
		t.Fatalf("got %d request entries", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["route"] != "/api/resources/:id/xml" || fields["status"] != int64(200) || fields["query"] != "?compact=1" {
		t.Fatalf("fields = %v", fields)
	}
}
