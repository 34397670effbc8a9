// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package checklist

import (
	"fmt"
	"time"

	"inventory/internal/lookup"
)

type Kind int

const (
	KindSimple Kind = iota + 1
	KindBilingualRequired
	KindBilingualOptional
	KindForeignKeyChain
	KindFilteredCount
	KindPerRelatedEntity
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindBilingualRequired:
		return "bilingual-required"
	case KindBilingualOptional:
		return "bilingual-optional"
	case KindForeignKeyChain:
		return "foreign-key-chain"
	case KindFilteredCount:
		return "filtered-count"
	case KindPerRelatedEntity:
		return "per-related-entity"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Rule is one entry of a checklist over subjects of type T. The set of
// implementations is closed: the six kinds declared in this package.
//
// Weight is the number of points the rule can award for a subject. check
// costs at most Weight points, one per failing check.
type Rule[T any] interface {
	Kind() Kind
	Weight(subject T) int
	check(e *evaluation, subject T, where string)
}

// evaluation is the mutable state of one Verify call.
type evaluation struct {
	reg               *lookup.Registry
	now               time.Time
	messages          []string
	penalties         int
	translationNeeded bool
}

func (e *evaluation) fail(where, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if where != "" {
		msg = where + ": " + msg
	}
	e.messages = append(e.messages, msg)
	e.penalties++
}

// Simple requires one scalar to be non-empty.
type Simple[T any] struct {
	Label string
	Value func(T) string
}

func (Simple[T]) Kind() Kind { return KindSimple }
func (Simple[T]) Weight(T) int { return 1 }

func (r Simple[T]) check(e *evaluation, s T, where string) {
	if r.Value(s) == "" {
		e.fail(where, msgMissing, r.Label)
	}
}

// BilingualRequired requires both halves of an English/French pair.
type BilingualRequired[T any] struct {
	Label string
	Eng   func(T) string
	Fre   func(T) string
}

func (BilingualRequired[T]) Kind() Kind { return KindBilingualRequired }
func (BilingualRequired[T]) Weight(T) int { return 2 }

func (r BilingualRequired[T]) check(e *evaluation, s T, where string) {
	eng, fre := r.Eng(s) != "", r.Fre(s) != ""
	if eng != fre {
		e.translationNeeded = true
	}
	if !eng {
		e.fail(where, msgMissingEnglish, r.Label)
	}
	if !fre {
		e.fail(where, msgMissingFrench, r.Label)
	}
}

// BilingualOptional accepts an absent pair but not a half-filled one.
type BilingualOptional[T any] struct {
	Label string
	Eng   func(T) string
	Fre   func(T) string
}

func (BilingualOptional[T]) Kind() Kind { return KindBilingualOptional }
func (BilingualOptional[T]) Weight(T) int { return 2 }

func (r BilingualOptional[T]) check(e *evaluation, s T, where string) {
	eng, fre := r.Eng(s) != "", r.Fre(s) != ""
	switch {
	case eng && !fre:
		e.translationNeeded = true
		e.fail(where, msgOnlyEnglish, r.Label)
	case fre && !eng:
		e.translationNeeded = true
		e.fail(where, msgOnlyFrench, r.Label)
	}
}

// Link is the far end of a foreign key: a display name and the attribute
// the chain requires.
type Link struct {
	Name string
	Attr string
}

// ForeignKeyChain requires fk to be set and fk.attr to be non-empty. A
// missing attribute is a defect in shared reference data and is reported
// to an administrator rather than the editor.
type ForeignKeyChain[T any] struct {
	Label   string
	Attr    string
	Resolve func(reg *lookup.Registry, subject T) (Link, bool)
}

func (ForeignKeyChain[T]) Kind() Kind { return KindForeignKeyChain }
func (ForeignKeyChain[T]) Weight(T) int { return 2 }

func (r ForeignKeyChain[T]) check(e *evaluation, s T, where string) {
	link, ok := r.Resolve(e.reg, s)
	if !ok {
		e.fail(where, msgMissing, r.Label)
		return
	}
	if link.Attr == "" {
		e.fail(where, msgAdministrator, r.Label, link.Name, r.Attr)
	}
}

// Count is one "at least one related item must match" check.
type Count[T any] struct {
	Message string
	Match   func(now time.Time, subject T) bool
}

// FilteredCount groups one or more Count checks. Each check is worth one point.
type FilteredCount[T any] struct {
	Checks []Count[T]
}

func (FilteredCount[T]) Kind() Kind { return KindFilteredCount }
func (r FilteredCount[T]) Weight(T) int { return len(r.Checks) }

func (r FilteredCount[T]) check(e *evaluation, s T, where string) {
	for _, c := range r.Checks {
		if !c.Match(e.now, s) {
			e.fail(where, "%s", c.Message)
		}
	}
}

// PerRelatedEntity applies nested rules to every related item of a subject.
// Its weight grows with the number of items.
type PerRelatedEntity[T, E any] struct {
	Items    func(T) []E
	Describe func(E) string
	Rules    []Rule[E]
}

func (PerRelatedEntity[T, E]) Kind() Kind { return KindPerRelatedEntity }

func (r PerRelatedEntity[T, E]) Weight(s T) int {
	total := 0
	for _, item := range r.Items(s) {
		for _, nested := range r.Rules {
			total += nested.Weight(item)
		}
	}
	return total
}

func (r PerRelatedEntity[T, E]) check(e *evaluation, s T, _ string) {
	for _, item := range r.Items(s) {
		where := r.Describe(item)
		for _, nested := range r.Rules {
			nested.check(e, item, where)
		}
	}
}
