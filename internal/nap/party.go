// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package nap

import (
	"inventory/internal/resource"

	"github.com/beevik/etree"
)

// responsibleParty writes <tag><gmd:CI_ResponsibleParty>...</gmd:CI_ResponsibleParty></tag>
// for a linked person. Absent organization or location data only drops the
// matching sub-elements.
func (b *Builder) responsibleParty(parent *etree.Element, tag string, r *resource.Resource, rp resource.ResourcePerson) {
	p := rp.Person
	if p == nil {
		b.skip(r, tag+": person not loaded")
		return
	}

	party := parent.CreateElement(tag).CreateElement("gmd:CI_ResponsibleParty")
	charString(party, "gmd:individualName", p.FullName())

	org := p.Organization
	if org != nil && (org.NameEng != "" || org.NameFre != "") {
		bilingual(party, "gmd:organisationName", org.NameEng, org.NameFre)
	}
	if p.PositionEng != "" || p.PositionFre != "" {
		bilingual(party, "gmd:positionName", p.PositionEng, p.PositionFre)
	}

	contact := party.CreateElement("gmd:contactInfo").CreateElement("gmd:CI_Contact")
	if p.Phone != "" {
		tel := contact.CreateElement("gmd:phone").CreateElement("gmd:CI_Telephone")
		charString(tel, "gmd:voice", p.Phone)
	}

	addr := contact.CreateElement("gmd:address").CreateElement("gmd:CI_Address")
	if org != nil {
		if org.Address != "" {
			bilingual(addr, "gmd:deliveryPoint", org.Address, "")
		}
		if org.City != "" {
			charString(addr, "gmd:city", org.City)
		}
		if loc := org.Location; loc != nil && loc.ProvinceEng != "" {
			bilingual(addr, "gmd:administrativeArea", loc.ProvinceEng, loc.ProvinceFre)
		}
		if org.PostalCode != "" {
			charString(addr, "gmd:postalCode", org.PostalCode)
		}
		if loc := org.Location; loc != nil && loc.CountryEng != "" {
			bilingual(addr, "gmd:country", loc.CountryEng, loc.CountryFre)
		}
	}
	if p.Email != "" {
		charString(addr, "gmd:electronicMailAddress", p.Email)
	}

	if role, ok := b.reg.Role.Get(rp.RoleID); ok && role.HasCode() {
		codeList(party, "gmd:role", b.reg.Role, role)
	} else {
		b.skip(r, tag+": role")
	}
}
