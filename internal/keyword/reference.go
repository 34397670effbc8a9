// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package keyword

// Thesaurus is the fixed citation written under a keyword group.
type Thesaurus struct {
	TitleEng    string
	TitleFre    string
	OrgEng      string
	OrgFre      string
	Creation    string
	Publication string
	Revision    string
	URL         string
}

// Reference is the static description of one domain.
type Reference struct {
	Domain    Domain
	NameEng   string
	NameFre   string
	Type      int        // id within KeywordTypes
	Thesaurus *Thesaurus // nil for the topic category
}

var references = map[Domain]Reference{
	DomainGCMD: {
		Domain:  DomainGCMD,
		NameEng: "GCMD Science Keywords",
		NameFre: "Mots-clés scientifiques du GCMD",
		Type:    TypeTheme,
		Thesaurus: &Thesaurus{
			TitleEng:    "Global Change Master Directory (GCMD) Science Keywords",
			TitleFre:    "Mots-clés scientifiques du Global Change Master Directory (GCMD)",
			OrgEng:      "National Aeronautics and Space Administration (NASA)",
			OrgFre:      "National Aeronautics and Space Administration (NASA)",
			Creation:    "2008-02-05",
			Publication: "2008-02-05",
			Revision:    "2017-06-13",
			URL:         "https://earthdata.nasa.gov/earth-observation-data/find-data/idn/gcmd-keywords",
		},
	},
	DomainITIS: {
		Domain:  DomainITIS,
		NameEng: "Taxonomic keywords (ITIS)",
		NameFre: "Mots-clés taxonomiques (SITI)",
		Type:    TypeTheme,
		Thesaurus: &Thesaurus{
			TitleEng:    "Integrated Taxonomic Information System (ITIS)",
			TitleFre:    "Système d'information taxonomique intégré (SITI)",
			OrgEng:      "Integrated Taxonomic Information System (ITIS)",
			OrgFre:      "Système d'information taxonomique intégré (SITI)",
			Creation:    "2017",
			Publication: "2017",
			Revision:    "2017",
			URL:         "https://www.itis.gov",
		},
	},
	DomainWoRMS: {
		Domain:  DomainWoRMS,
		NameEng: "Taxonomic keywords (WoRMS)",
		NameFre: "Mots-clés taxonomiques (WoRMS)",
		Type:    TypeTheme,
		Thesaurus: &Thesaurus{
			TitleEng:    "World Register of Marine Species (WoRMS)",
			TitleFre:    "Registre mondial des espèces marines (WoRMS)",
			OrgEng:      "WoRMS Editorial Board",
			OrgFre:      "Comité de rédaction de WoRMS",
			Creation:    "2017",
			Publication: "2017",
			Revision:    "2017",
			URL:         "http://www.marinespecies.org",
		},
	},
	DomainUncontrolled: {
		Domain:  DomainUncontrolled,
		NameEng: "Uncontrolled keywords",
		NameFre: "Mots-clés non contrôlés",
		Type:    TypeTheme,
		Thesaurus: &Thesaurus{
			TitleEng:    "Government of Canada; Fisheries and Oceans Canada uncontrolled keywords",
			TitleFre:    "Gouvernement du Canada; Pêches et Océans Canada mots-clés non contrôlés",
			OrgEng:      "Government of Canada; Fisheries and Oceans Canada",
			OrgFre:      "Gouvernement du Canada; Pêches et Océans Canada",
			Creation:    "2018-01-01",
			Publication: "2018-01-01",
			Revision:    "2018-01-01",
			URL:         "http://www.dfo-mpo.gc.ca",
		},
	},
	DomainMeSH: {
		Domain:  DomainMeSH,
		NameEng: "Medical Subject Headings",
		NameFre: "Vedettes-matière médicales",
		Type:    TypeDiscipline,
		Thesaurus: &Thesaurus{
			TitleEng:    "Medical Subject Headings (MeSH)",
			TitleFre:    "Répertoire de vedettes-matière (MeSH)",
			OrgEng:      "U.S. National Library of Medicine",
			OrgFre:      "U.S. National Library of Medicine",
			Creation:    "1960",
			Publication: "2018-01-01",
			Revision:    "2018-01-01",
			URL:         "https://www.nlm.nih.gov/mesh/",
		},
	},
	DomainCoreSubject: {
		Domain:  DomainCoreSubject,
		NameEng: "Government of Canada Core Subject Thesaurus",
		NameFre: "Thésaurus des sujets de base du gouvernement du Canada",
		Type:    TypeTheme,
		Thesaurus: &Thesaurus{
			TitleEng:    "Government of Canada Core Subject Thesaurus",
			TitleFre:    "Thésaurus des sujets de base du gouvernement du Canada",
			OrgEng:      "Government of Canada; Library and Archives Canada",
			OrgFre:      "Gouvernement du Canada; Bibliothèque et Archives Canada",
			Creation:    "2004",
			Publication: "2016-07-04",
			Revision:    "2016-07-04",
			URL:         "http://canada.multites.net/cst/index.htm",
		},
	},
	DomainDFOArea: {
		Domain:  DomainDFOArea,
		NameEng: "DFO Areas",
		NameFre: "Régions du MPO",
		Type:    TypePlace,
		Thesaurus: &Thesaurus{
			TitleEng:    "DFO Areas",
			TitleFre:    "Régions du MPO",
			OrgEng:      "Government of Canada; Fisheries and Oceans Canada",
			OrgFre:      "Gouvernement du Canada; Pêches et Océans Canada",
			Creation:    "2018-01-01",
			Publication: "2018-01-01",
			Revision:    "2018-01-01",
			URL:         "http://www.dfo-mpo.gc.ca",
		},
	},
	DomainTopicCategory: {
		Domain:  DomainTopicCategory,
		NameEng: "ISO Topic Category",
		NameFre: "Catégorie de sujet ISO",
	},
}

// Lookup returns the reference data for a domain.
func Lookup(d Domain) (Reference, bool) {
	r, ok := references[d]
	return r, ok
}
