// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package nap

import "inventory/internal/lookup"

const (
	standardName    = "North American Profile of ISO 19115:2003 - Geographic information - Metadata"
	standardVersion = "CAN/CGSB-171.100-2009"
	languageEng     = "eng; CAN"
	frenchLocaleID  = "fra"
)

var namespaces = []struct{ prefix, uri string }{
	{"gmd", "http://www.isotc211.org/2005/gmd"},
	{"gco", "http://www.isotc211.org/2005/gco"},
	{"gml", "http://www.opengis.net/gml"},
	{"gmi", "http://www.isotc211.org/2005/gmi"},
	{"gmx", "http://www.isotc211.org/2005/gmx"},
	{"gsr", "http://www.isotc211.org/2005/gsr"},
	{"gss", "http://www.isotc211.org/2005/gss"},
	{"gts", "http://www.isotc211.org/2005/gts"},
	{"srv", "http://www.isotc211.org/2005/srv"},
	{"xlink", "http://www.w3.org/1999/xlink"},
	{"xsi", "http://www.w3.org/2001/XMLSchema-instance"},
	{"geonet", "http://www.fao.org/geonetwork"},
	{"napm", "http://www.geconnections.org/nap/napMetadataTools/napXsd/napm"},
	{"napec", "http://www.ec.gc.ca/data_donnees/standards/schemas/napec"},
}

const schemaLocation = "http://www.isotc211.org/2005/gmd " +
	"http://nap.geogratis.gc.ca/metadata/tools/schemas/metadata/can-cgsb-171.100-2009-a/gmd/gmd.xsd " +
	"http://www.isotc211.org/2005/srv " +
	"http://nap.geogratis.gc.ca/metadata/tools/schemas/metadata/can-cgsb-171.100-2009-a/srv/srv.xsd " +
	"http://www.geconnections.org/nap/napMetadataTools/napXsd/napm " +
	"http://nap.geogratis.gc.ca/metadata/tools/schemas/metadata/can-cgsb-171.100-2009-a/napm/napm.xsd"

// Fixed vocabularies that never come from the resource itself.
const (
	dateCreation    = 1
	datePublication = 2
	dateRevision    = 3
)

var dateTypes = lookup.NewTable("date type", "IC_87", "gmd:CI_DateTypeCode",
	lookup.Code{ID: dateCreation, NameEng: "creation", NameFre: "création", Code: "RI_366"},
	lookup.Code{ID: datePublication, NameEng: "publication", NameFre: "publication", Code: "RI_367"},
	lookup.Code{ID: dateRevision, NameEng: "revision", NameFre: "révision", Code: "RI_368"},
)

var (
	restrictionCodes = lookup.NewTable("restriction", "IC_107", "gmd:MD_RestrictionCode",
		lookup.Code{ID: 1, NameEng: "license", NameFre: "licence", Code: "RI_606"},
	)
	languageCodes = lookup.NewTable("language", "IC_116", "gmd:LanguageCode",
		lookup.Code{ID: 1, NameEng: "French", NameFre: "Français", Code: "fra"},
	)
	countryCodes = lookup.NewTable("country", "IC_117", "gmd:Country",
		lookup.Code{ID: 1, NameEng: "Canada", NameFre: "Canada", Code: "CAN"},
	)
)

const (
	licenceEng = "Open Government Licence - Canada (http://open.canada.ca/en/open-government-licence-canada)"
	licenceFre = "Licence du gouvernement ouvert - Canada (http://ouvert.canada.ca/fr/licence-du-gouvernement-ouvert-canada)"
)
