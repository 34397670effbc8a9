// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package checklist

import (
	"fmt"
	"strconv"
	"time"

	"inventory/internal/keyword"
	"inventory/internal/lookup"
	"inventory/internal/resource"

	"github.com/google/uuid"
)

// CertificationWindow is how recent the last certification must be.
const CertificationWindow = 30 * 24 * time.Hour

type res = *resource.Resource

func intValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// lookupChain builds a ForeignKeyChain from a resource lookup id to the
// authority code of the row it points at.
func lookupChain(label string, table func(*lookup.Registry) *lookup.Table, id func(res) *int) ForeignKeyChain[res] {
	return ForeignKeyChain[res]{
		Label: label,
		Attr:  "code",
		Resolve: func(reg *lookup.Registry, r res) (Link, bool) {
			c, ok := table(reg).Get(id(r))
			if !ok {
				return Link{}, false
			}
			return Link{Name: c.NameEng, Attr: c.Code}, true
		},
	}
}

func hasKeyword(d keyword.Domain) Count[res] {
	return Count[res]{
		Message: fmt.Sprintf("The resource needs at least one keyword from %s.", d),
		Match: func(_ time.Time, r res) bool {
			for _, k := range r.Keywords {
				if k.DomainID == d {
					return true
				}
			}
			return false
		},
	}
}

// hasRole reports whether a person with the given role code is attached.
// The registry is fixed at rule construction so the predicate stays pure.
func hasRole(reg *lookup.Registry, code, message string) Count[res] {
	return Count[res]{
		Message: message,
		Match: func(_ time.Time, r res) bool {
			for _, rp := range r.People {
				if c, ok := reg.Role.Get(rp.RoleID); ok && c.Code == code {
					return true
				}
			}
			return false
		},
	}
}

func hasWebService(lang, message string) Count[res] {
	return Count[res]{
		Message: message,
		Match: func(_ time.Time, r res) bool {
			for _, ws := range r.WebServices {
				if ws.Language == lang {
					return true
				}
			}
			return false
		},
	}
}

var recentCertification = Count[res]{
	Message: MsgNeedsCertification,
	Match: func(now time.Time, r res) bool {
		cutoff := now.Add(-CertificationWindow)
		for _, c := range r.Certifications {
			if !c.CertificationDate.Before(cutoff) {
				return true
			}
		}
		return false
	},
}

func keywordRules() PerRelatedEntity[res, resource.Keyword] {
	return PerRelatedEntity[res, resource.Keyword]{
		// Topic categories are maintained outside the editor.
		Items: func(r res) []resource.Keyword {
			var out []resource.Keyword
			for _, k := range r.Keywords {
				if k.DomainID != keyword.DomainTopicCategory {
					out = append(out, k)
				}
			}
			return out
		},
		Describe: func(k resource.Keyword) string {
			return fmt.Sprintf("Keyword %q (id %d)", k.TextValueEng, k.ID)
		},
		Rules: []Rule[resource.Keyword]{
			BilingualRequired[resource.Keyword]{
				Label: "keyword",
				Eng:   func(k resource.Keyword) string { return k.TextValueEng },
				// scientific names are the same in both languages
				Fre: func(k resource.Keyword) string {
					if k.DomainID.IsTaxonomic() {
						return k.TextValueEng
					}
					return k.TextValueFre
				},
			},
		},
	}
}

func personRules() PerRelatedEntity[res, resource.ResourcePerson] {
	person := func(rp resource.ResourcePerson) resource.Person {
		if rp.Person == nil {
			return resource.Person{}
		}
		return *rp.Person
	}
	return PerRelatedEntity[res, resource.ResourcePerson]{
		Items: func(r res) []resource.ResourcePerson { return r.People },
		Describe: func(rp resource.ResourcePerson) string {
			p := person(rp)
			return fmt.Sprintf("Person %q (id %d)", p.FullName(), rp.PersonID)
		},
		Rules: []Rule[resource.ResourcePerson]{
			Simple[resource.ResourcePerson]{
				Label: "email",
				Value: func(rp resource.ResourcePerson) string { return person(rp).Email },
			},
			BilingualRequired[resource.ResourcePerson]{
				Label: "position",
				Eng:   func(rp resource.ResourcePerson) string { return person(rp).PositionEng },
				Fre:   func(rp resource.ResourcePerson) string { return person(rp).PositionFre },
			},
			ForeignKeyChain[resource.ResourcePerson]{
				Label: "role",
				Attr:  "code",
				Resolve: func(reg *lookup.Registry, rp resource.ResourcePerson) (Link, bool) {
					c, ok := reg.Role.Get(rp.RoleID)
					if !ok {
						return Link{}, false
					}
					return Link{Name: c.NameEng, Attr: c.Code}, true
				},
			},
			ForeignKeyChain[resource.ResourcePerson]{
				Label: "organization",
				Attr:  "location",
				Resolve: func(_ *lookup.Registry, rp resource.ResourcePerson) (Link, bool) {
					org := person(rp).Organization
					if org == nil {
						return Link{}, false
					}
					link := Link{Name: org.NameEng}
					if loc := org.Location; loc != nil {
						link.Attr = loc.ProvinceEng + ", " + loc.CountryEng
					}
					return link, true
				},
			},
		},
	}
}

// DefaultRules is the ordered checklist every resource is verified against.
func DefaultRules(reg *lookup.Registry) []Rule[res] {
	return []Rule[res]{
		Simple[res]{Label: "unique identifier", Value: func(r res) string {
			if r.UUID == uuid.Nil {
				return ""
			}
			return r.UUID.String()
		}},
		BilingualRequired[res]{Label: "title", Eng: func(r res) string { return r.TitleEng }, Fre: func(r res) string { return r.TitleFre }},
		BilingualRequired[res]{Label: "description", Eng: func(r res) string { return r.DescrEng }, Fre: func(r res) string { return r.DescrFre }},
		BilingualRequired[res]{Label: "purpose", Eng: func(r res) string { return r.PurposeEng }, Fre: func(r res) string { return r.PurposeFre }},
		lookupChain("status", func(reg *lookup.Registry) *lookup.Table { return reg.Status }, func(r res) *int { return r.StatusID }),
		lookupChain("maintenance frequency", func(reg *lookup.Registry) *lookup.Table { return reg.Maintenance }, func(r res) *int { return r.MaintenanceID }),
		lookupChain("resource type", func(reg *lookup.Registry) *lookup.Table { return reg.ResourceType }, func(r res) *int { return r.ResourceTypeID }),
		lookupChain("security classification", func(reg *lookup.Registry) *lookup.Table { return reg.SecurityClassification }, func(r res) *int { return r.SecurityClassificationID }),
		lookupChain("character set", func(reg *lookup.Registry) *lookup.Table { return reg.CharacterSet }, func(r res) *int { return r.CharacterSetID }),
		lookupChain("spatial representation type", func(reg *lookup.Registry) *lookup.Table { return reg.SpatialRepresentation }, func(r res) *int { return r.SpatialRepresentationID }),
		lookupChain("spatial reference system", func(reg *lookup.Registry) *lookup.Table { return reg.SpatialReferenceSystem }, func(r res) *int { return r.SpatialReferenceSystemID }),
		Simple[res]{Label: "start year", Value: func(r res) string { return intValue(r.StartYear) }},
		BilingualRequired[res]{Label: "geographic description", Eng: func(r res) string { return r.GeoDescrEng }, Fre: func(r res) string { return r.GeoDescrFre }},
		Simple[res]{Label: "west bounding coordinate", Value: func(r res) string { return floatValue(r.WestBounding) }},
		Simple[res]{Label: "south bounding coordinate", Value: func(r res) string { return floatValue(r.SouthBounding) }},
		Simple[res]{Label: "east bounding coordinate", Value: func(r res) string { return floatValue(r.EastBounding) }},
		Simple[res]{Label: "north bounding coordinate", Value: func(r res) string { return floatValue(r.NorthBounding) }},
		BilingualOptional[res]{Label: "security use limitation", Eng: func(r res) string { return r.SecurityUseLimitationEng }, Fre: func(r res) string { return r.SecurityUseLimitationFre }},
		BilingualOptional[res]{Label: "resource constraint", Eng: func(r res) string { return r.ResourceConstraintEng }, Fre: func(r res) string { return r.ResourceConstraintFre }},
		BilingualOptional[res]{Label: "parameters collected", Eng: func(r res) string { return r.ParametersCollectedEng }, Fre: func(r res) string { return r.ParametersCollectedFre }},
		BilingualOptional[res]{Label: "QC process description", Eng: func(r res) string { return r.QCProcessDescrEng }, Fre: func(r res) string { return r.QCProcessDescrFre }},
		BilingualOptional[res]{Label: "physical sample description", Eng: func(r res) string { return r.PhysicalSampleDescrEng }, Fre: func(r res) string { return r.PhysicalSampleDescrFre }},
		BilingualOptional[res]{Label: "sampling method", Eng: func(r res) string { return r.SamplingMethodEng }, Fre: func(r res) string { return r.SamplingMethodFre }},
		FilteredCount[res]{Checks: []Count[res]{hasKeyword(keyword.DomainTopicCategory)}},
		FilteredCount[res]{Checks: []Count[res]{hasKeyword(keyword.DomainGCMD)}},
		FilteredCount[res]{Checks: []Count[res]{hasKeyword(keyword.DomainCoreSubject)}},
		FilteredCount[res]{Checks: []Count[res]{hasKeyword(keyword.DomainDFOArea)}},
		FilteredCount[res]{Checks: []Count[res]{hasRole(reg, lookup.RoleCodePointOfContact, MsgNeedsPointOfContact)}},
		FilteredCount[res]{Checks: []Count[res]{hasRole(reg, lookup.RoleCodeCustodian, MsgNeedsCustodian)}},
		FilteredCount[res]{Checks: []Count[res]{recentCertification}},
		FilteredCount[res]{Checks: []Count[res]{{
			Message: MsgNeedsDistributionFormat,
			Match:   func(_ time.Time, r res) bool { return len(r.DistributionFormats) > 0 },
		}}},
		FilteredCount[res]{Checks: []Count[res]{{
			Message: MsgNeedsDataResource,
			Match:   func(_ time.Time, r res) bool { return len(r.DataResources) > 0 },
		}}},
		FilteredCount[res]{Checks: []Count[res]{
			hasWebService(resource.LanguageEnglish, MsgNeedsEnglishWebService),
			hasWebService(resource.LanguageFrench, MsgNeedsFrenchWebService),
		}},
		keywordRules(),
		personRules(),
	}
}
