// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package nap

import (
	"inventory/internal/lookup"
	"inventory/internal/resource"

	"github.com/beevik/etree"
)

func (b *Builder) distribution(root *etree.Element, r *resource.Resource) {
	dist := root.CreateElement("gmd:distributionInfo").CreateElement("gmd:MD_Distribution")

	for _, f := range r.DistributionFormats {
		format := dist.CreateElement("gmd:distributionFormat").CreateElement("gmd:MD_Format")
		charString(format, "gmd:name", f.Name)
		if f.Version != "" {
			charString(format, "gmd:version", f.Version)
		} else {
			format.CreateElement("gmd:version").CreateAttr("gco:nilReason", "unknown")
		}
	}

	for _, rp := range b.peopleWithRole(r, lookup.RoleCodeDistributor) {
		d := dist.CreateElement("gmd:distributor").CreateElement("gmd:MD_Distributor")
		b.responsibleParty(d, "gmd:distributorContact", r, rp)
	}

	for _, dr := range r.DataResources {
		b.onlineResource(dist, r, dr.URL, dr.Protocol, dr.NameEng, dr.NameFre, dr.ContentTypeID, "")
	}
	for _, ws := range r.WebServices {
		b.onlineResource(dist, r, ws.URL, ws.Protocol, ws.ServiceNameEng, ws.ServiceNameFre, ws.ContentTypeID, ws.Language)
	}
}

// onlineResource writes one transferOptions entry. The description is the
// content-type label, followed by the service language when one is known.
func (b *Builder) onlineResource(dist *etree.Element, r *resource.Resource, link, protocol, nameEng, nameFre string, contentType *int, lang string) {
	online := dist.CreateElement("gmd:transferOptions").
		CreateElement("gmd:MD_DigitalTransferOptions").
		CreateElement("gmd:onLine").
		CreateElement("gmd:CI_OnlineResource")

	linkage(online, "gmd:linkage", link)
	if protocol != "" {
		charString(online, "gmd:protocol", protocol)
	}
	if nameEng != "" || nameFre != "" {
		bilingual(online, "gmd:name", nameEng, nameFre)
	}

	ct, ok := b.reg.ContentType.Get(contentType)
	if !ok {
		b.skip(r, "transferOptions: content type")
		return
	}
	descEng, descFre := ct.NameEng, ct.NameFre
	if code := languageToken(lang); code != "" {
		descEng += ";" + code
		descFre += ";" + code
	}
	bilingual(online, "gmd:description", descEng, descFre)
}

func languageToken(lang string) string {
	switch lang {
	case resource.LanguageEnglish:
		return "eng"
	case resource.LanguageFrench:
		return "fra"
	}
	return ""
}
