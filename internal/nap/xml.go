// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package nap

import (
	"inventory/internal/lookup"

	"github.com/beevik/etree"
)

// charString writes <tag><gco:CharacterString>text</gco:CharacterString></tag>.
func charString(parent *etree.Element, tag, text string) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateElement("gco:CharacterString").SetText(text)
	return el
}

// bilingual writes an English CharacterString and, when a French value is
// present, the localised French alternate. French is never written as the
// primary string: with only French available the English string is empty.
func bilingual(parent *etree.Element, tag, eng, fre string) *etree.Element {
	el := parent.CreateElement(tag)
	if fre != "" {
		el.CreateAttr("xsi:type", "gmd:PT_FreeText_PropertyType")
	}
	el.CreateElement("gco:CharacterString").SetText(eng)
	if fre != "" {
		loc := el.CreateElement("gmd:PT_FreeText").
			CreateElement("gmd:textGroup").
			CreateElement("gmd:LocalisedCharacterString")
		loc.CreateAttr("locale", "#"+frenchLocaleID)
		loc.SetText(fre)
	}
	return el
}

// codeList writes <tag><element codeList=... codeListValue=...>label</element></tag>.
// Callers check Code.HasCode first.
func codeList(parent *etree.Element, tag string, t *lookup.Table, c lookup.Code) *etree.Element {
	el := parent.CreateElement(tag)
	code := el.CreateElement(t.Element)
	code.CreateAttr("codeList", t.CodeListURL())
	code.CreateAttr("codeListValue", c.Code)
	code.SetText(c.Label())
	return el
}

// citationDate writes one gmd:date/gmd:CI_Date entry.
func citationDate(parent *etree.Element, date string, dateType int) {
	ci := parent.CreateElement("gmd:date").CreateElement("gmd:CI_Date")
	ci.CreateElement("gmd:date").CreateElement("gco:Date").SetText(date)
	c, _ := dateTypes.Get(&dateType)
	codeList(ci, "gmd:dateType", dateTypes, c)
}

func linkage(parent *etree.Element, tag, link string) *etree.Element {
	el := parent.CreateElement(tag)
	el.CreateElement("gmd:URL").SetText(link)
	return el
}
