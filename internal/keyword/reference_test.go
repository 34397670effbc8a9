// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package keyword_test

import (
	"testing"

	"inventory/internal/keyword"
)

func TestEveryDomainHasReference(t *testing.T) {
	for d := keyword.DomainGCMD; d <= keyword.DomainTopicCategory; d++ {
		r, ok := keyword.Lookup(d)
		if !ok {
			t.Fatalf("domain %d has no reference data", d)
		}
		if r.Domain != d {
			t.Fatalf("domain %d keyed under %d", r.Domain, d)
		}
	}
	if _, ok := keyword.Lookup(9); ok {
		t.Fatalf("domain 9 should not exist")
	}
}

func TestGroupOrderExcludesTopicCategory(t *testing.T) {
	want := []keyword.Domain{4, 1, 7, 6, 2, 3, 5}
	if len(keyword.GroupOrder) != len(want) {
		t.Fatalf("got %v", keyword.GroupOrder)
	}
	for i, d := range want {
		if keyword.GroupOrder[i] != d {
			t.Fatalf("position %d: got %d want %d", i, keyword.GroupOrder[i], d)
		}
	}
}

func TestITISCitation(t *testing.T) {
	r, _ := keyword.Lookup(keyword.DomainITIS)
	if r.Thesaurus == nil {
		t.Fatalf("ITIS must cite a thesaurus")
	}
	if r.Thesaurus.TitleEng != "Integrated Taxonomic Information System (ITIS)" {
		t.Fatalf("bad title %q", r.Thesaurus.TitleEng)
	}
	for _, d := range []string{r.Thesaurus.Creation, r.Thesaurus.Publication, r.Thesaurus.Revision} {
		if d != "2017" {
			t.Fatalf("ITIS dates must be 2017, got %q", d)
		}
	}
}

func TestTaxonomicDomains(t *testing.T) {
	for d := keyword.DomainGCMD; d <= keyword.DomainTopicCategory; d++ {
		want := d == keyword.DomainITIS || d == keyword.DomainWoRMS
		if d.IsTaxonomic() != want {
			t.Fatalf("domain %d taxonomic=%v", d, d.IsTaxonomic())
		}
	}
}

func TestKeywordGroupsHaveThesaurus(t *testing.T) {
	for _, d := range keyword.GroupOrder {
		r, _ := keyword.Lookup(d)
		th := r.Thesaurus
		if th == nil {
			t.Fatalf("domain %d has no thesaurus", d)
		}
		if th.TitleEng == "" || th.TitleFre == "" || th.OrgEng == "" || th.URL == "" || th.Creation == "" {
			t.Fatalf("domain %d thesaurus incomplete: %+v", d, th)
		}
	}
}
