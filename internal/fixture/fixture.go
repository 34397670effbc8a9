// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package fixture builds resource graphs for tests.
package fixture

import (
	"time"

	"inventory/internal/keyword"
	"inventory/internal/resource"

	"github.com/google/uuid"
)

// UUID is the identifier of the resource returned by Complete.
var UUID = uuid.MustParse("6f1b1c2e-9a3d-4e5f-8a7b-1c2d3e4f5a6b")

// Clock is a fixed "now" for deterministic output.
var Clock = time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)

// Lookup ids from lookup.Default used by Complete.
const (
	StatusCompleted    = 1
	RoleCustodian      = 2
	RoleDistributor    = 5
	RolePointOfContact = 7
	RoleAuthor         = 11
	RoleDataManager    = 12 // no authority code
	ContentDataset     = 1
	ContentWebService  = 2
)

func Int(v int) *int { return &v }
func Float(v float64) *float64 { return &v }
func Uint(v uint) *uint { return &v }
func Time(t time.Time) *time.Time { return &t }

// Person returns a fully described person attached under a role.
func Person(id uint, role int) resource.ResourcePerson {
	return resource.ResourcePerson{
		ID:         id,
		ResourceID: 1,
		PersonID:   id,
		RoleID:     Int(role),
		Person: &resource.Person{
			ID:          id,
			FirstName:   "Jane",
			LastName:    "Doe",
			Email:       "jane.doe@dfo-mpo.gc.ca",
			Phone:       "902-555-0100",
			PositionEng: "Biologist",
			PositionFre: "Biologiste",
			Organization: &resource.Organization{
				ID:         1,
				NameEng:    "Bedford Institute of Oceanography",
				NameFre:    "Institut océanographique de Bedford",
				Address:    "1 Challenger Drive",
				City:       "Dartmouth",
				PostalCode: "B2Y 4A2",
				Location: &resource.Location{
					ID:          1,
					CountryEng:  "Canada",
					CountryFre:  "Canada",
					ProvinceEng: "Nova Scotia",
					ProvinceFre: "Nouvelle-Écosse",
				},
			},
		},
	}
}

// Keyword returns a bilingual keyword in the given domain.
func Keyword(id uint, d keyword.Domain, eng, fre string) resource.Keyword {
	return resource.Keyword{
		ID:           id,
		TextValueEng: eng,
		TextValueFre: fre,
		DomainID:     d,
		IsTaxonomic:  d.IsTaxonomic(),
	}
}

// Complete returns a resource that satisfies every completeness rule when
// checked at Clock.
func Complete() *resource.Resource {
	topic := Keyword(5, keyword.DomainTopicCategory, "oceans", "")
	topic.Code = "oceans"

	return &resource.Resource{
		ID:   1,
		UUID: UUID,

		TitleEng:                 "Scotian Shelf ecosystem survey",
		TitleFre:                 "Relevé écosystémique du plateau néo-écossais",
		DescrEng:                 "Annual trawl survey.",
		DescrFre:                 "Relevé annuel au chalut.",
		PurposeEng:               "Stock assessment.",
		PurposeFre:               "Évaluation des stocks.",
		GeoDescrEng:              "Scotian Shelf",
		GeoDescrFre:              "Plateau néo-écossais",
		SecurityUseLimitationEng: "None.",
		SecurityUseLimitationFre: "Aucune.",
		QCProcessDescrEng:        "Double entry.",
		QCProcessDescrFre:        "Double saisie.",
		SamplingMethodEng:        "Stratified random.",
		SamplingMethodFre:        "Aléatoire stratifié.",
		PhysicalSampleDescrEng:   "Otoliths.",
		PhysicalSampleDescrFre:   "Otolithes.",
		ParametersCollectedEng:   "Length, weight.",
		ParametersCollectedFre:   "Longueur, poids.",
		ResourceConstraintEng:    "Cite the source.",
		ResourceConstraintFre:    "Citer la source.",

		StartYear:  Int(2015),
		StartMonth: Int(3),
		StartDay:   Int(4),
		EndYear:    Int(2018),

		WestBounding:  Float(-67.5),
		SouthBounding: Float(41.25),
		EastBounding:  Float(-57),
		NorthBounding: Float(47),

		StatusID:                 Int(StatusCompleted),
		MaintenanceID:            Int(8),
		SecurityClassificationID: Int(1),
		CharacterSetID:           Int(1),
		SpatialRepresentationID:  Int(3),
		SpatialReferenceSystemID: Int(1),
		ResourceTypeID:           Int(1),
		FGPPublicationDate:       Time(time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC)),
		LastRevisionDate:         Time(time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)),

		Keywords: []resource.Keyword{
			Keyword(1, keyword.DomainGCMD, "Oceans", "Océans"),
			Keyword(2, keyword.DomainCoreSubject, "Fisheries", "Pêches"),
			Keyword(3, keyword.DomainDFOArea, "Maritimes", "Maritimes"),
			Keyword(4, keyword.DomainITIS, "Gadus morhua", ""),
			topic,
		},
		People: []resource.ResourcePerson{
			Person(1, RolePointOfContact),
			Person(2, RoleCustodian),
			Person(3, RoleDistributor),
		},
		DataResources: []resource.DataResource{
			{ID: 1, ResourceID: 1, URL: "https://open.canada.ca/data/survey.csv", Protocol: "HTTPS", NameEng: "Survey data", NameFre: "Données du relevé", ContentTypeID: Int(ContentDataset)},
		},
		WebServices: []resource.WebService{
			{ID: 1, ResourceID: 1, URL: "https://maps.example.gc.ca/en/rest", Protocol: "ESRI REST", ServiceNameEng: "Survey map", ServiceNameFre: "Carte du relevé", ContentTypeID: Int(ContentWebService), Language: resource.LanguageEnglish},
			{ID: 2, ResourceID: 1, URL: "https://maps.example.gc.ca/fr/rest", Protocol: "ESRI REST", ServiceNameEng: "Survey map", ServiceNameFre: "Carte du relevé", ContentTypeID: Int(ContentWebService), Language: resource.LanguageFrench},
		},
		Certifications: []resource.ResourceCertification{
			{ID: 1, ResourceID: 1, CertifyingUser: "jdoe", CertificationDate: Clock.AddDate(0, 0, -5)},
		},
		DistributionFormats: []resource.DistributionFormat{
			{ID: 1, Name: "CSV"},
		},
		Citations: []resource.Citation{
			{ID: 1, Authors: "Doe, J.", Year: Int(2019), Title: "Survey summary", Publication: "Can. Tech. Rep. Fish. Aquat. Sci. 3300"},
		},
	}
}
