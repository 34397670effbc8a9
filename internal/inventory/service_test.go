// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package inventory_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"inventory/internal/checklist"
	"inventory/internal/fixture"
	"inventory/internal/inventory"
	"inventory/internal/lookup"
	"inventory/internal/metrics"
	"inventory/internal/nap"
	"inventory/internal/resource"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func clock() time.Time { return fixture.Clock }

func newService(store resource.Store, m *metrics.Metrics) *inventory.Service {
	reg := lookup.Default()
	return inventory.NewService(store,
		nap.NewBuilder(reg, nap.WithClock(clock)),
		checklist.NewScorer(reg, checklist.WithClock(clock)),
		m,
	)
}

func second() *resource.Resource {
	r := fixture.Complete()
	r.ID = 2
	r.UUID = uuid.MustParse("11111111-2222-3333-4444-555555555555")
	r.TitleFre = ""
	return r
}

// ─── Export ─────────────────────────────────────────────────────────────────

func TestExport(t *testing.T) {
	svc := newService(fixture.NewMockStore(fixture.Complete()), nil)

	pretty, err := svc.Export(context.Background(), 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if pretty.UUID != fixture.UUID || pretty.FileName() != fixture.UUID.String()+".xml" {
		t.Fatalf("document = %s %s", pretty.UUID, pretty.FileName())
	}
	if !bytes.Contains(pretty.XML, []byte("\n  <gmd:fileIdentifier>")) {
		t.Fatal("pretty export is not indented")
	}

	compact, err := svc.Export(context.Background(), 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(compact.XML) >= len(pretty.XML) {
		t.Fatalf("compact %d bytes, pretty %d bytes", len(compact.XML), len(pretty.XML))
	}
}

func TestExportNotFound(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc := newService(fixture.NewMockStore(), m)

	if _, err := svc.Export(context.Background(), 42, true); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	if got := testutil.ToFloat64(m.ExportsTotal.WithLabelValues(inventory.FormatXML, metrics.NotFound)); got != 1 {
		t.Fatalf("not found exports = %v", got)
	}
}

func TestTree(t *testing.T) {
	svc := newService(fixture.NewMockStore(fixture.Complete()), nil)

	doc, err := svc.Tree(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	el := doc.FindElement("/gmd:MD_Metadata/gmd:fileIdentifier/gco:CharacterString")
	if el == nil || el.Text() != fixture.UUID.String() {
		t.Fatal("fileIdentifier missing from tree")
	}
}

// ─── Archive ────────────────────────────────────────────────────────────────

func TestExportArchive(t *testing.T) {
	svc := newService(fixture.NewMockStore(fixture.Complete(), second()), nil)

	var buf bytes.Buffer
	if err := svc.ExportArchive(context.Background(), &buf, []uint{1, 2, 1}); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("archive has %d entries", len(zr.File))
	}
	want := []string{fixture.UUID.String() + ".xml", "11111111-2222-3333-4444-555555555555.xml"}
	for i, f := range zr.File {
		if f.Name != want[i] {
			t.Fatalf("entry %d = %s, want %s", i, f.Name, want[i])
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(data, []byte("<?xml")) {
			t.Fatalf("entry %s is not xml", f.Name)
		}
	}
}

func TestExportArchiveErrors(t *testing.T) {
	svc := newService(fixture.NewMockStore(fixture.Complete()), nil)

	if err := svc.ExportArchive(context.Background(), io.Discard, nil); !errors.Is(err, inventory.ErrNoResources) {
		t.Fatalf("err = %v", err)
	}
	if err := svc.ExportArchive(context.Background(), io.Discard, []uint{1, 7}); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestExportArchiveMetrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	svc := newService(fixture.NewMockStore(fixture.Complete()), m)

	var buf bytes.Buffer
	if err := svc.ExportArchive(context.Background(), &buf, []uint{1, 1}); err != nil {
		t.Fatal(err)
	}
	if got := testutil.ToFloat64(m.ExportsTotal.WithLabelValues(inventory.FormatArchive, metrics.OK)); got != 1 {
		t.Fatalf("zip ok = %v", got)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 1 {
		t.Fatalf("entries = %d, want 1", len(zr.File))
	}

	if err := svc.ExportArchive(context.Background(), io.Discard, []uint{7}); !errors.Is(err, resource.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
	if got := testutil.ToFloat64(m.ExportsTotal.WithLabelValues(inventory.FormatArchive, metrics.NotFound)); got != 1 {
		t.Fatalf("zip not found = %v", got)
	}
}

func TestUniqueIDs(t *testing.T) {
	got := inventory.UniqueIDs([]uint{3, 1, 3, 2, 1})
	want := []uint{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("ids = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

// ─── Verify ─────────────────────────────────────────────────────────────────

func TestVerifyPersists(t *testing.T) {
	store := fixture.NewMockStore(fixture.Complete(), second())
	m := metrics.New(prometheus.NewRegistry())
	svc := newService(store, m)

	res, err := svc.Verify(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Checklist) != 1 || !res.TranslationNeeded {
		t.Fatalf("result = %+v", res)
	}

	saved, ok := store.Saved[2]
	if !ok {
		t.Fatal("completeness not saved")
	}
	if saved.Rating != res.Rating || saved.TranslationNeeded != res.TranslationNeeded || len(saved.Checklist) != 1 {
		t.Fatalf("saved = %+v", saved)
	}
	if got := testutil.ToFloat64(m.TranslationNeeded); got != 1 {
		t.Fatalf("translation needed = %v", got)
	}
}

func TestVerifyPerfect(t *testing.T) {
	store := fixture.NewMockStore(fixture.Complete())
	res, err := newService(store, nil).Verify(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Rating != 1 || len(store.Saved[1].Checklist) != 0 {
		t.Fatalf("result = %+v", res)
	}
}

func TestVerifyStoreFailure(t *testing.T) {
	store := fixture.NewMockStore(fixture.Complete())
	store.Err = errors.New("connection refused")

	if _, err := newService(store, nil).Verify(context.Background(), 1); !errors.Is(err, store.Err) {
		t.Fatalf("err = %v", err)
	}
	if len(store.Saved) != 0 {
		t.Fatal("nothing should be saved")
	}
}
