// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package checklist scores a resource against a declarative list of
// completeness rules.
package checklist

import (
	"errors"
	"time"

	"inventory/internal/lookup"
	"inventory/internal/resource"

	"go.uber.org/zap"
)

var ErrNilResource = errors.New("checklist: nil resource")

// Result is the outcome of one verification.
type Result struct {
	Checklist         []string `json:"checklist"`
	Rating            float64  `json:"rating"`
	TranslationNeeded bool     `json:"translation_needed"`
	Achievable        int      `json:"achievable"`
	Penalties         int      `json:"penalties"`
}

// Completeness converts the result to the columns persisted on the resource.
func (r Result) Completeness() resource.Completeness {
	return resource.Completeness{
		Checklist:         r.Checklist,
		Rating:            r.Rating,
		TranslationNeeded: r.TranslationNeeded,
	}
}

type Scorer struct {
	reg   *lookup.Registry
	rules []Rule[*resource.Resource]
	now   func() time.Time
}

type Option func(*Scorer)

// WithClock overrides time.Now, which decides certification recency.
func WithClock(now func() time.Time) Option {
	return func(s *Scorer) { s.now = now }
}

// WithRules replaces DefaultRules.
func WithRules(rules ...Rule[*resource.Resource]) Option {
	return func(s *Scorer) { s.rules = append([]Rule[*resource.Resource]{}, rules...) }
}

func NewScorer(reg *lookup.Registry, opts ...Option) *Scorer {
	if reg == nil {
		reg = lookup.Default()
	}
	s := &Scorer{reg: reg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.rules == nil {
		s.rules = DefaultRules(reg)
	}
	return s
}

// Verify evaluates every rule against r. It only fails for a nil resource;
// missing data is reported through the checklist.
func (s *Scorer) Verify(r *resource.Resource) (Result, error) {
	if r == nil {
		return Result{}, ErrNilResource
	}

	e := &evaluation{reg: s.reg, now: s.now(), messages: []string{}}
	achievable := 0
	for _, rule := range s.rules {
		achievable += rule.Weight(r)
		rule.check(e, r, "")
	}

	rating := 1.0
	if achievable > 0 {
		rating = float64(achievable-e.penalties) / float64(achievable)
	}
	if rating < 0 {
		rating = 0
	}

	zap.L().Debug("resource verified",
		zap.Stringer("uuid", r.UUID),
		zap.Int("achievable", achievable),
		zap.Int("penalties", e.penalties),
		zap.Float64("rating", rating),
	)

	return Result{
		Checklist:         e.messages,
		Rating:            rating,
		TranslationNeeded: e.translationNeeded,
		Achievable:        achievable,
		Penalties:         e.penalties,
	}, nil
}
