// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package keyword describes the eight keyword domains a resource keyword can
// belong to, together with the citation of the thesaurus each domain is
// drawn from.
package keyword

import "inventory/internal/lookup"

type Domain int

const (
	DomainGCMD          Domain = 1
	DomainITIS          Domain = 2
	DomainWoRMS         Domain = 3
	DomainUncontrolled  Domain = 4
	DomainMeSH          Domain = 5
	DomainCoreSubject   Domain = 6
	DomainDFOArea       Domain = 7
	DomainTopicCategory Domain = 8
)

// GroupOrder is the order keyword groups are written in an exported record.
// Topic categories are not a keyword group and are emitted separately.
var GroupOrder = []Domain{
	DomainUncontrolled,
	DomainGCMD,
	DomainDFOArea,
	DomainCoreSubject,
	DomainITIS,
	DomainWoRMS,
	DomainMeSH,
}

func (d Domain) Valid() bool {
	return d >= DomainGCMD && d <= DomainTopicCategory
}

// IsTaxonomic reports whether keywords of this domain are scientific names.
func (d Domain) IsTaxonomic() bool {
	return d == DomainITIS || d == DomainWoRMS
}

func (d Domain) String() string {
	if r, ok := Lookup(d); ok {
		return r.NameEng
	}
	return "unknown domain"
}

// Keyword type ids within KeywordTypes.
const (
	TypeDiscipline = 1
	TypePlace      = 2
	TypeStratum    = 3
	TypeTemporal   = 4
	TypeTheme      = 5
)

var KeywordTypes = lookup.NewTable("keyword type", "IC_101", "gmd:MD_KeywordTypeCode",
	lookup.Code{ID: TypeDiscipline, NameEng: "discipline", NameFre: "discipline", Code: "RI_524"},
	lookup.Code{ID: TypePlace, NameEng: "place", NameFre: "endroit", Code: "RI_525"},
	lookup.Code{ID: TypeStratum, NameEng: "stratum", NameFre: "strate", Code: "RI_526"},
	lookup.Code{ID: TypeTemporal, NameEng: "temporal", NameFre: "temporel", Code: "RI_527"},
	lookup.Code{ID: TypeTheme, NameEng: "theme", NameFre: "thème", Code: "RI_528"},
)
