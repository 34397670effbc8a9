// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package lookup_test

import (
	"testing"

	"inventory/internal/lookup"
)

func intp(v int) *int { return &v }

func TestTableGet(t *testing.T) {
	reg := lookup.Default()

	c, ok := reg.Status.Get(intp(1))
	if !ok {
		t.Fatalf("expected status 1 to resolve")
	}
	if c.Code != "RI_593" || c.Label() != "completed; complété" {
		t.Fatalf("unexpected row: %+v", c)
	}

	if _, ok := reg.Status.Get(nil); ok {
		t.Fatalf("nil id must not resolve")
	}
	if _, ok := reg.Status.Get(intp(999)); ok {
		t.Fatalf("unknown id must not resolve")
	}
}

func TestLocalRowsHaveNoCode(t *testing.T) {
	reg := lookup.Default()

	c, ok := reg.Role.Get(intp(12))
	if !ok {
		t.Fatalf("expected role 12")
	}
	if c.HasCode() {
		t.Fatalf("local role should not carry an authority code: %+v", c)
	}
}

func TestByCodeAndURL(t *testing.T) {
	reg := lookup.Default()

	c, ok := reg.Role.ByCode(lookup.RoleCodePointOfContact)
	if !ok || c.NameEng != "pointOfContact" {
		t.Fatalf("point of contact not found: %+v", c)
	}

	want := lookup.RegisterURL + "#IC_90"
	if got := reg.Role.CodeListURL(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if reg.SpatialReferenceSystem.CodeListURL() != "" {
		t.Fatalf("reference systems have no codelist")
	}
}

func TestDuplicateIDPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on duplicate id")
		}
	}()
	lookup.NewTable("x", "", "", lookup.Code{ID: 1}, lookup.Code{ID: 1})
}
