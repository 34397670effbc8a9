// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package lookup holds the controlled-vocabulary tables that resource
// attributes point into. Each row carries a bilingual label and, when the
// vocabulary is published by the NAP register, an authority code.
package lookup

import "fmt"

// RegisterURL is the NAP codelist register every codeList attribute points at.
const RegisterURL = "http://nap.geogratis.gc.ca/metadata/register/napMetadataRegister.xml"

// Code is one row of a lookup table.
type Code struct {
	ID        int
	NameEng   string
	NameFre   string
	Code      string // authority code, e.g. "RI_593"; empty for local-only rows
	CodeSpace string // set for spatial reference systems only
}

// Label renders the row the way NAP codelist elements expect: "english; french".
func (c Code) Label() string {
	if c.NameFre == "" {
		return c.NameEng
	}
	return c.NameEng + "; " + c.NameFre
}

// HasCode reports whether the row can be emitted as a codelist value.
func (c Code) HasCode() bool {
	return c.Code != ""
}

// Table is a single vocabulary keyed by integer id.
type Table struct {
	Name     string // human name used in checklist messages
	CodeList string // register anchor, e.g. "IC_106"
	Element  string // qualified codelist element, e.g. "gmd:MD_ProgressCode"
	rows     map[int]Code
	order    []int
}

func NewTable(name, codeList, element string, rows ...Code) *Table {
	t := &Table{
		Name:     name,
		CodeList: codeList,
		Element:  element,
		rows:     make(map[int]Code, len(rows)),
	}
	for _, r := range rows {
		if _, dup := t.rows[r.ID]; dup {
			panic(fmt.Sprintf("lookup %s: duplicate id %d", name, r.ID))
		}
		t.rows[r.ID] = r
		t.order = append(t.order, r.ID)
	}
	return t
}

// Get resolves an optional foreign key. A nil id or an id with no row
// both report false.
func (t *Table) Get(id *int) (Code, bool) {
	if t == nil || id == nil {
		return Code{}, false
	}
	c, ok := t.rows[*id]
	return c, ok
}

// ByCode returns the first row carrying the given authority code.
func (t *Table) ByCode(code string) (Code, bool) {
	for _, id := range t.order {
		if t.rows[id].Code == code {
			return t.rows[id], true
		}
	}
	return Code{}, false
}

// Rows returns the table in declaration order.
func (t *Table) Rows() []Code {
	out := make([]Code, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// CodeListURL is the value of the codeList attribute for this table.
func (t *Table) CodeListURL() string {
	if t.CodeList == "" {
		return ""
	}
	return RegisterURL + "#" + t.CodeList
}

// Registry groups every table the builder and the scorer resolve through.
type Registry struct {
	Status                 *Table
	Maintenance            *Table
	SecurityClassification *Table
	CharacterSet           *Table
	SpatialRepresentation  *Table
	SpatialReferenceSystem *Table
	ResourceType           *Table
	ContentType            *Table
	Role                   *Table
}
