// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package nap

import (
	"sort"
	"strconv"
	"strings"

	"inventory/internal/keyword"
	"inventory/internal/lookup"
	"inventory/internal/resource"

	"github.com/beevik/etree"
)

func (b *Builder) identification(root *etree.Element, r *resource.Resource) {
	id := root.CreateElement("gmd:identificationInfo").CreateElement("gmd:MD_DataIdentification")

	b.citation(id, r)
	bilingual(id, "gmd:abstract", r.DescrEng, r.DescrFre)
	if r.PurposeEng != "" || r.PurposeFre != "" {
		bilingual(id, "gmd:purpose", r.PurposeEng, r.PurposeFre)
	}

	if c, ok := b.code(r, b.reg.Status, r.StatusID); ok {
		codeList(id, "gmd:status", b.reg.Status, c)
	}
	if c, ok := b.code(r, b.reg.Maintenance, r.MaintenanceID); ok {
		mi := id.CreateElement("gmd:resourceMaintenance").CreateElement("gmd:MD_MaintenanceInformation")
		codeList(mi, "gmd:maintenanceAndUpdateFrequency", b.reg.Maintenance, c)
	}

	byDomain := keywordsByDomain(r.Keywords)
	for _, d := range keyword.GroupOrder {
		if kws := byDomain[d]; len(kws) > 0 {
			b.keywordGroup(id, d, kws)
		}
	}

	b.constraints(id, r)

	if c, ok := b.code(r, b.reg.SpatialRepresentation, r.SpatialRepresentationID); ok {
		codeList(id, "gmd:spatialRepresentationType", b.reg.SpatialRepresentation, c)
	}
	charString(id, "gmd:language", languageEng)
	if c, ok := b.code(r, b.reg.CharacterSet, r.CharacterSetID); ok {
		codeList(id, "gmd:characterSet", b.reg.CharacterSet, c)
	}

	for _, k := range byDomain[keyword.DomainTopicCategory] {
		value := k.Code
		if value == "" {
			value = k.TextValueEng
		}
		if value == "" {
			continue
		}
		id.CreateElement("gmd:topicCategory").CreateElement("gmd:MD_TopicCategoryCode").SetText(value)
	}

	b.temporalExtent(id, r)
	b.geographicExtent(id, r)

	eng, fre := supplementalText(r)
	if eng != "" || fre != "" {
		bilingual(id, "gmd:supplementalInformation", eng, fre)
	}
}

func (b *Builder) citation(id *etree.Element, r *resource.Resource) {
	ci := id.CreateElement("gmd:citation").CreateElement("gmd:CI_Citation")
	bilingual(ci, "gmd:title", r.TitleEng, r.TitleFre)

	if start := r.StartDate(); start != "" {
		citationDate(ci, start, dateCreation)
	}
	published := b.now()
	if r.FGPPublicationDate != nil {
		published = *r.FGPPublicationDate
	}
	citationDate(ci, published.Format(dateLayout), datePublication)
	if r.LastRevisionDate != nil {
		citationDate(ci, r.LastRevisionDate.Format(dateLayout), dateRevision)
	}

	for _, rp := range r.People {
		role, ok := b.reg.Role.Get(rp.RoleID)
		if !ok || !role.HasCode() || role.Code == lookup.RoleCodePointOfContact {
			continue
		}
		b.responsibleParty(ci, "gmd:citedResponsibleParty", r, rp)
	}
}

func keywordsByDomain(kws []resource.Keyword) map[keyword.Domain][]resource.Keyword {
	out := make(map[keyword.Domain][]resource.Keyword)
	for _, k := range kws {
		out[k.DomainID] = append(out[k.DomainID], k)
	}
	for _, list := range out {
		sort.SliceStable(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	}
	return out
}

// keywordGroup writes one MD_Keywords block. Every domain is rendered by this
// one routine from its reference entry.
func (b *Builder) keywordGroup(id *etree.Element, d keyword.Domain, kws []resource.Keyword) {
	ref, ok := keyword.Lookup(d)
	if !ok {
		return
	}

	group := id.CreateElement("gmd:descriptiveKeywords").CreateElement("gmd:MD_Keywords")
	for _, k := range kws {
		bilingual(group, "gmd:keyword", k.TextValueEng, k.TextValueFre)
	}
	if t, ok := keyword.KeywordTypes.Get(&ref.Type); ok {
		codeList(group, "gmd:type", keyword.KeywordTypes, t)
	}

	th := ref.Thesaurus
	if th == nil {
		return
	}
	ci := group.CreateElement("gmd:thesaurusName").CreateElement("gmd:CI_Citation")
	bilingual(ci, "gmd:title", th.TitleEng, th.TitleFre)
	citationDate(ci, th.Creation, dateCreation)
	citationDate(ci, th.Publication, datePublication)
	citationDate(ci, th.Revision, dateRevision)

	party := ci.CreateElement("gmd:citedResponsibleParty").CreateElement("gmd:CI_ResponsibleParty")
	bilingual(party, "gmd:organisationName", th.OrgEng, th.OrgFre)
	if th.URL != "" {
		online := party.CreateElement("gmd:contactInfo").
			CreateElement("gmd:CI_Contact").
			CreateElement("gmd:onlineResource").
			CreateElement("gmd:CI_OnlineResource")
		linkage(online, "gmd:linkage", th.URL)
	}
	if role, ok := b.reg.Role.ByCode(lookup.RoleCodeCustodian); ok {
		codeList(party, "gmd:role", b.reg.Role, role)
	}
}

func (b *Builder) constraints(id *etree.Element, r *resource.Resource) {
	licence, _ := restrictionCodes.ByCode("RI_606")

	legal := id.CreateElement("gmd:resourceConstraints").CreateElement("gmd:MD_LegalConstraints")
	bilingual(legal, "gmd:useLimitation", licenceEng, licenceFre)
	codeList(legal, "gmd:accessConstraints", restrictionCodes, licence)

	legal = id.CreateElement("gmd:resourceConstraints").CreateElement("gmd:MD_LegalConstraints")
	codeList(legal, "gmd:useConstraints", restrictionCodes, licence)
	bilingual(legal, "gmd:otherConstraints", licenceEng, licenceFre)

	if r.ResourceConstraintEng != "" || r.ResourceConstraintFre != "" {
		c := id.CreateElement("gmd:resourceConstraints").CreateElement("gmd:MD_Constraints")
		bilingual(c, "gmd:useLimitation", r.ResourceConstraintEng, r.ResourceConstraintFre)
	}

	hasText := r.SecurityUseLimitationEng != "" || r.SecurityUseLimitationFre != ""
	class, ok := b.code(r, b.reg.SecurityClassification, r.SecurityClassificationID)
	switch {
	case ok:
		sec := id.CreateElement("gmd:resourceConstraints").CreateElement("gmd:MD_SecurityConstraints")
		if hasText {
			bilingual(sec, "gmd:useLimitation", r.SecurityUseLimitationEng, r.SecurityUseLimitationFre)
		}
		codeList(sec, "gmd:classification", b.reg.SecurityClassification, class)
	case hasText:
		// MD_SecurityConstraints requires a classification; keep the text anyway.
		c := id.CreateElement("gmd:resourceConstraints").CreateElement("gmd:MD_Constraints")
		bilingual(c, "gmd:useLimitation", r.SecurityUseLimitationEng, r.SecurityUseLimitationFre)
	}
}

func (b *Builder) temporalExtent(id *etree.Element, r *resource.Resource) {
	period := id.CreateElement("gmd:extent").
		CreateElement("gmd:EX_Extent").
		CreateElement("gmd:temporalElement").
		CreateElement("gmd:EX_TemporalExtent").
		CreateElement("gmd:extent").
		CreateElement("gml:TimePeriod")
	period.CreateAttr("gml:id", "timePeriod")
	period.CreateElement("gml:beginPosition").SetText(r.StartDate())
	if end := r.EndDate(); end != "" {
		period.CreateElement("gml:endPosition").SetText(end)
	}
}

func (b *Builder) geographicExtent(id *etree.Element, r *resource.Resource) {
	ext := id.CreateElement("gmd:extent").CreateElement("gmd:EX_Extent")
	bilingual(ext, "gmd:description", r.GeoDescrEng, r.GeoDescrFre)

	box := ext.CreateElement("gmd:geographicElement").CreateElement("gmd:EX_GeographicBoundingBox")
	for _, c := range []struct {
		tag string
		v   *float64
	}{
		{"gmd:westBoundLongitude", r.WestBounding},
		{"gmd:eastBoundLongitude", r.EastBounding},
		{"gmd:southBoundLatitude", r.SouthBounding},
		{"gmd:northBoundLatitude", r.NorthBounding},
	} {
		box.CreateElement(c.tag).CreateElement("gco:Decimal").SetText(decimal(c.v))
	}
}

func decimal(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

type section struct {
	headingEng, headingFre string
	eng, fre               string
}

// supplementalText assembles the English and French supplemental blocks
// independently, each from the non-empty sections of its own language.
func supplementalText(r *resource.Resource) (string, string) {
	var cites []string
	for i := range r.Citations {
		if s := r.Citations[i].ShortForm(); s != "" {
			cites = append(cites, s)
		}
	}
	joined := strings.Join(cites, "; ")

	sections := []section{
		{"Parameters collected", "Paramètres recueillis", r.ParametersCollectedEng, r.ParametersCollectedFre},
		{"Quality control process", "Processus de contrôle de la qualité", r.QCProcessDescrEng, r.QCProcessDescrFre},
		{"Physical sample description", "Description des échantillons physiques", r.PhysicalSampleDescrEng, r.PhysicalSampleDescrFre},
		{"Sampling method", "Méthode d'échantillonnage", r.SamplingMethodEng, r.SamplingMethodFre},
		{"Citations", "Citations", joined, joined},
	}

	var eng, fre []string
	for _, s := range sections {
		if s.eng != "" {
			eng = append(eng, s.headingEng+": "+s.eng)
		}
		if s.fre != "" {
			fre = append(fre, s.headingFre+" : "+s.fre)
		}
	}
	return strings.Join(eng, "\n\n"), strings.Join(fre, "\n\n")
}
