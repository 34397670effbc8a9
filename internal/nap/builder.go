// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package nap writes a resource as a bilingual North American Profile
// (ISO 19115) metadata record.
package nap

import (
	"errors"
	"time"

	"inventory/internal/lookup"
	"inventory/internal/resource"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

var ErrNilResource = errors.New("nap: nil resource")

const dateLayout = "2006-01-02"

type Builder struct {
	reg *lookup.Registry
	now func() time.Time
	log *zap.Logger
}

type Option func(*Builder)

// WithClock replaces time.Now for the dateStamp and the default publication date.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// NewBuilder uses lookup.Default when reg is nil.
func NewBuilder(reg *lookup.Registry, opts ...Option) *Builder {
	if reg == nil {
		reg = lookup.Default()
	}
	b := &Builder{reg: reg, now: time.Now, log: zap.L()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns the record as an in-memory tree. Missing optional data never
// fails the build; the corresponding branch is left out.
func (b *Builder) Build(r *resource.Resource) (*etree.Document, error) {
	if r == nil {
		return nil, ErrNilResource
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("gmd:MD_Metadata")
	for _, ns := range namespaces {
		root.CreateAttr("xmlns:"+ns.prefix, ns.uri)
	}
	root.CreateAttr("xsi:schemaLocation", schemaLocation)

	charString(root, "gmd:fileIdentifier", r.UUID.String())
	charString(root, "gmd:language", languageEng)
	codeList(root, "gmd:characterSet", b.reg.CharacterSet, lookup.UTF8)

	if r.Parent != nil {
		charString(root, "gmd:parentIdentifier", r.Parent.UUID.String())
	}

	if c, ok := b.code(r, b.reg.ResourceType, r.ResourceTypeID); ok {
		codeList(root, "gmd:hierarchyLevel", b.reg.ResourceType, c)
	}

	for _, rp := range b.peopleWithRole(r, lookup.RoleCodePointOfContact) {
		b.responsibleParty(root, "gmd:contact", r, rp)
	}

	root.CreateElement("gmd:dateStamp").CreateElement("gco:Date").SetText(b.now().Format(dateLayout))

	charString(root, "gmd:metadataStandardName", standardName)
	charString(root, "gmd:metadataStandardVersion", standardVersion)
	b.locale(root)

	if c, ok := b.reg.SpatialReferenceSystem.Get(r.SpatialReferenceSystemID); ok && c.HasCode() {
		rs := root.CreateElement("gmd:referenceSystemInfo").
			CreateElement("gmd:MD_ReferenceSystem").
			CreateElement("gmd:referenceSystemIdentifier").
			CreateElement("gmd:RS_Identifier")
		charString(rs, "gmd:code", c.Code)
		charString(rs, "gmd:codeSpace", c.CodeSpace)
	} else {
		b.skip(r, "referenceSystemInfo")
	}

	b.identification(root, r)
	b.distribution(root, r)

	return doc, nil
}

// BuildBytes serializes the record. Pretty output is indented with two spaces.
func (b *Builder) BuildBytes(r *resource.Resource, pretty bool) ([]byte, error) {
	doc, err := b.Build(r)
	if err != nil {
		return nil, err
	}
	if pretty {
		doc.Indent(2)
	}
	return doc.WriteToBytes()
}

func (b *Builder) locale(root *etree.Element) {
	loc := root.CreateElement("gmd:locale").CreateElement("gmd:PT_Locale")
	loc.CreateAttr("id", frenchLocaleID)
	lang, _ := languageCodes.ByCode(frenchLocaleID)
	codeList(loc, "gmd:languageCode", languageCodes, lang)
	country, _ := countryCodes.ByCode("CAN")
	codeList(loc, "gmd:country", countryCodes, country)
	codeList(loc, "gmd:characterEncoding", b.reg.CharacterSet, lookup.UTF8)
}

// code resolves a lookup id and reports whether it is emittable.
func (b *Builder) code(r *resource.Resource, t *lookup.Table, id *int) (lookup.Code, bool) {
	c, ok := t.Get(id)
	if !ok || !c.HasCode() {
		b.skip(r, t.Name)
		return lookup.Code{}, false
	}
	return c, true
}

func (b *Builder) skip(r *resource.Resource, what string) {
	b.log.Debug("nap: omitting element",
		zap.String("uuid", r.UUID.String()),
		zap.String("element", what),
	)
}

// peopleWithRole returns the people whose role carries the given authority code.
func (b *Builder) peopleWithRole(r *resource.Resource, code string) []resource.ResourcePerson {
	var out []resource.ResourcePerson
	for _, rp := range r.People {
		if c, ok := b.reg.Role.Get(rp.RoleID); ok && c.Code == code {
			out = append(out, rp)
		}
	}
	return out
}
