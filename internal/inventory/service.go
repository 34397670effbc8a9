// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package inventory loads resources and runs the document builder and the
// completeness scorer over them.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"inventory/internal/checklist"
	"inventory/internal/metrics"
	"inventory/internal/nap"
	"inventory/internal/resource"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
	"go.uber.org/zap"
)

// ErrNoResources is returned for an archive request without ids.
var ErrNoResources = errors.New("no resources requested")

// Export formats, used as metric labels.
const (
	FormatXML     = "xml"
	FormatCompact = "compact"
	FormatArchive = "zip"
)

// Document is one serialized metadata record.
type Document struct {
	UUID uuid.UUID
	XML  []byte
}

// FileName is the archive entry and download name of the document.
func (d Document) FileName() string {
	return d.UUID.String() + ".xml"
}

type Service struct {
	store   resource.Store
	builder *nap.Builder
	scorer  *checklist.Scorer
	metrics *metrics.Metrics
}

// NewService wires the service. m may be nil.
func NewService(store resource.Store, builder *nap.Builder, scorer *checklist.Scorer, m *metrics.Metrics) *Service {
	return &Service{store: store, builder: builder, scorer: scorer, metrics: m}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OK
	case errors.Is(err, resource.ErrNotFound):
		return metrics.NotFound
	}
	return metrics.Failed
}

// Tree returns the compact in-memory document for resource id.
func (s *Service) Tree(ctx context.Context, id uint) (doc *etree.Document, err error) {
	start := time.Now()
	defer func() { s.metrics.ObserveExport(FormatCompact, outcome(err), start, 0) }()

	r, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.builder.Build(r)
}

// Export serializes resource id, indented when pretty.
func (s *Service) Export(ctx context.Context, id uint, pretty bool) (doc Document, err error) {
	start := time.Now()
	format := FormatXML
	if !pretty {
		format = FormatCompact
	}
	defer func() { s.metrics.ObserveExport(format, outcome(err), start, len(doc.XML)) }()

	r, err := s.store.Get(ctx, id)
	if err != nil {
		return Document{}, err
	}
	out, err := s.builder.BuildBytes(r, pretty)
	if err != nil {
		return Document{}, fmt.Errorf("build resource %d: %w", id, err)
	}

	zap.L().Debug("resource exported",
		zap.Uint("id", id),
		zap.Stringer("uuid", r.UUID),
		zap.Int("bytes", len(out)),
	)
	return Document{UUID: r.UUID, XML: out}, nil
}

// UniqueIDs drops repeated ids, keeping first-seen order.
func UniqueIDs(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// countingWriter records how many bytes reached the wrapped writer.
type countingWriter struct {
	w io.Writer
	n int
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// ExportArchive writes a zip holding one pretty document per id. Duplicate
// ids are written once. Any missing resource aborts the archive.
func (s *Service) ExportArchive(ctx context.Context, w io.Writer, ids []uint) (err error) {
	ids = UniqueIDs(ids)
	if len(ids) == 0 {
		return ErrNoResources
	}

	start := time.Now()
	cw := &countingWriter{w: w}
	defer func() { s.metrics.ObserveExport(FormatArchive, outcome(err), start, cw.n) }()

	zw := zip.NewWriter(cw)
	for _, id := range ids {
		doc, err := s.Export(ctx, id, true)
		if err != nil {
			return fmt.Errorf("archive resource %d: %w", id, err)
		}
		f, err := zw.Create(doc.FileName())
		if err != nil {
			return fmt.Errorf("archive resource %d: %w", id, err)
		}
		if _, err := f.Write(doc.XML); err != nil {
			return fmt.Errorf("archive resource %d: %w", id, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}

	zap.L().Info("archive exported", zap.Int("resources", len(ids)), zap.Int("bytes", cw.n))
	return nil
}

// Verify scores resource id and writes the checklist, rating and
// translation flag back through the store.
func (s *Service) Verify(ctx context.Context, id uint) (res checklist.Result, err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveVerification(outcome(err), start, res.Rating, res.TranslationNeeded)
	}()

	r, err := s.store.Get(ctx, id)
	if err != nil {
		return checklist.Result{}, err
	}
	res, err = s.scorer.Verify(r)
	if err != nil {
		return checklist.Result{}, fmt.Errorf("verify resource %d: %w", id, err)
	}
	if err := s.store.SaveCompleteness(ctx, id, res.Completeness()); err != nil {
		return checklist.Result{}, fmt.Errorf("save completeness for resource %d: %w", id, err)
	}

	zap.L().Info("resource verified",
		zap.Uint("id", id),
		zap.Float64("rating", res.Rating),
		zap.Int("deficiencies", len(res.Checklist)),
		zap.Bool("translation_needed", res.TranslationNeeded),
	)
	return res, nil
}
