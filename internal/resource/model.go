// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package resource

import (
	"fmt"
	"strings"
	"time"

	"inventory/internal/keyword"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Resource is the record being described and exported. Bilingual attributes
// follow the Eng/Fre pair convention. Lookup ids resolve through
// lookup.Registry and are nil when unset.
type Resource struct {
	ID       uint      `gorm:"primaryKey"`
	UUID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	ParentID *uint     `gorm:"index"`
	Parent   *Resource `gorm:"foreignKey:ParentID"`

	TitleEng                 string `gorm:"type:text"`
	TitleFre                 string `gorm:"type:text"`
	DescrEng                 string `gorm:"type:text"`
	DescrFre                 string `gorm:"type:text"`
	PurposeEng               string `gorm:"type:text"`
	PurposeFre               string `gorm:"type:text"`
	GeoDescrEng              string `gorm:"type:text"`
	GeoDescrFre              string `gorm:"type:text"`
	SecurityUseLimitationEng string `gorm:"type:text"`
	SecurityUseLimitationFre string `gorm:"type:text"`
	QCProcessDescrEng        string `gorm:"type:text"`
	QCProcessDescrFre        string `gorm:"type:text"`
	SamplingMethodEng        string `gorm:"type:text"`
	SamplingMethodFre        string `gorm:"type:text"`
	PhysicalSampleDescrEng   string `gorm:"type:text"`
	PhysicalSampleDescrFre   string `gorm:"type:text"`
	ParametersCollectedEng   string `gorm:"type:text"`
	ParametersCollectedFre   string `gorm:"type:text"`
	ResourceConstraintEng    string `gorm:"type:text"`
	ResourceConstraintFre    string `gorm:"type:text"`

	StartYear  *int
	StartMonth *int
	StartDay   *int
	EndYear    *int
	EndMonth   *int
	EndDay     *int

	WestBounding  *float64
	SouthBounding *float64
	EastBounding  *float64
	NorthBounding *float64

	StatusID                 *int
	MaintenanceID            *int
	SecurityClassificationID *int
	CharacterSetID           *int
	SpatialRepresentationID  *int
	SpatialReferenceSystemID *int
	ResourceTypeID           *int
	FGPPublicationDate       *time.Time
	LastRevisionDate         *time.Time

	Keywords            []Keyword               `gorm:"many2many:resource_keywords"`
	People              []ResourcePerson        `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
	DataResources       []DataResource          `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
	WebServices         []WebService            `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
	Certifications      []ResourceCertification `gorm:"foreignKey:ResourceID;constraint:OnDelete:CASCADE"`
	DistributionFormats []DistributionFormat    `gorm:"many2many:resource_distribution_formats"`
	Citations           []Citation              `gorm:"many2many:resource_citations"`

	// Derived by the completeness scorer; never edited directly.
	CompletenessReport datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CompletenessRating float64
	TranslationNeeded  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StartDate renders the temporal-extent start as a possibly partial ISO date.
func (r *Resource) StartDate() string {
	return PartialDate(r.StartYear, r.StartMonth, r.StartDay)
}

// EndDate renders the temporal-extent end; empty without an end year.
func (r *Resource) EndDate() string {
	return PartialDate(r.EndYear, r.EndMonth, r.EndDay)
}

// PartialDate formats YYYY, YYYY-MM or YYYY-MM-DD depending on which parts are
// known. A missing year yields "", a missing month drops the day.
func PartialDate(year, month, day *int) string {
	if year == nil {
		return ""
	}
	s := fmt.Sprintf("%04d", *year)
	if month == nil {
		return s
	}
	s += fmt.Sprintf("-%02d", *month)
	if day == nil {
		return s
	}
	return s + fmt.Sprintf("-%02d", *day)
}

type Location struct {
	ID          uint `gorm:"primaryKey"`
	CountryEng  string
	CountryFre  string
	ProvinceEng string
	ProvinceFre string
}

type Organization struct {
	ID         uint `gorm:"primaryKey"`
	NameEng    string
	NameFre    string
	Address    string
	City       string
	PostalCode string
	LocationID *uint
	Location   *Location
}

type Person struct {
	ID             uint `gorm:"primaryKey"`
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	PositionEng    string
	PositionFre    string
	OrganizationID *uint
	Organization   *Organization
}

// FullName is the "Last, First" form used for individualName.
func (p *Person) FullName() string {
	switch {
	case p.LastName == "":
		return p.FirstName
	case p.FirstName == "":
		return p.LastName
	}
	return p.LastName + ", " + p.FirstName
}

// ResourcePerson links a person to a resource under a role (lookup.Registry.Role).
type ResourcePerson struct {
	ID         uint `gorm:"primaryKey"`
	ResourceID uint `gorm:"index;not null"`
	PersonID   uint `gorm:"not null"`
	Person     *Person
	RoleID     *int
	Notes      string
}

type Keyword struct {
	ID           uint           `gorm:"primaryKey"`
	TextValueEng string         `gorm:"type:text"`
	TextValueFre string         `gorm:"type:text"`
	Code         string         // authority code (TSN, AphiaID, topic category token)
	DomainID     keyword.Domain `gorm:"not null"`
	IsTaxonomic  bool
}

// BeforeSave keeps IsTaxonomic in step with the domain.
func (k *Keyword) BeforeSave(tx *gorm.DB) error {
	if !k.DomainID.Valid() {
		return fmt.Errorf("keyword %q: invalid domain %d", k.TextValueEng, k.DomainID)
	}
	k.IsTaxonomic = k.DomainID.IsTaxonomic()
	return nil
}

type DataResource struct {
	ID            uint `gorm:"primaryKey"`
	ResourceID    uint `gorm:"index;not null"`
	URL           string
	Protocol      string
	NameEng       string
	NameFre       string
	ContentTypeID *int
}

type WebService struct {
	ID             uint `gorm:"primaryKey"`
	ResourceID     uint `gorm:"index;not null"`
	URL            string
	Protocol       string
	ServiceNameEng string
	ServiceNameFre string
	ContentTypeID  *int
	Language       string `gorm:"type:varchar(3)"` // "eng" or "fre"
}

const (
	LanguageEnglish = "eng"
	LanguageFrench  = "fre"
)

type ResourceCertification struct {
	ID                uint `gorm:"primaryKey"`
	ResourceID        uint `gorm:"index;not null"`
	CertifyingUser    string
	CertificationDate time.Time
	Notes             string
}

type DistributionFormat struct {
	ID      uint `gorm:"primaryKey"`
	Name    string
	Version string
}

type Citation struct {
	ID          uint `gorm:"primaryKey"`
	Authors     string
	Year        *int
	Title       string
	Publication string
}

// ShortForm renders "Authors (Year). Title. Publication." skipping empty parts.
func (c *Citation) ShortForm() string {
	var b strings.Builder
	b.WriteString(strings.TrimSpace(c.Authors))
	if c.Year != nil {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "(%d)", *c.Year)
	}
	for _, part := range []string{c.Title, c.Publication} {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(". ")
		}
		b.WriteString(strings.TrimSuffix(part, "."))
	}
	if b.Len() > 0 {
		b.WriteString(".")
	}
	return b.String()
}

// Completeness is the derived triple written back by the scorer.
type Completeness struct {
	Checklist         []string
	Rating            float64
	TranslationNeeded bool
}

// Columns maps the triple onto the Resource columns it updates. A map keeps
// a zero rating and a false flag from being skipped by gorm.
func (c Completeness) Columns() map[string]any {
	checklist := c.Checklist
	if checklist == nil {
		checklist = []string{}
	}
	return map[string]any{
		"completeness_report": datatypes.JSONSlice[string](checklist),
		"completeness_rating": c.Rating,
		"translation_needed":  c.TranslationNeeded,
	}
}
