// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package lookup

// Role authority codes the builder and scorer single out.
const (
	RoleCodeCustodian      = "RI_409"
	RoleCodeDistributor    = "RI_412"
	RoleCodePointOfContact = "RI_414"
)

// UTF8 is the character set declared for the metadata record itself.
var UTF8 = Code{ID: 1, NameEng: "utf8", NameFre: "utf8", Code: "RI_458"}

// Default returns the registry seeded with the NAP vocabularies plus the
// handful of local rows that have no authority code.
func Default() *Registry {
	return &Registry{
		Status: NewTable("status", "IC_106", "gmd:MD_ProgressCode",
			Code{ID: 1, NameEng: "completed", NameFre: "complété", Code: "RI_593"},
			Code{ID: 2, NameEng: "historicalArchive", NameFre: "archiveHistorique", Code: "RI_594"},
			Code{ID: 3, NameEng: "obsolete", NameFre: "périmé", Code: "RI_595"},
			Code{ID: 4, NameEng: "onGoing", NameFre: "enContinu", Code: "RI_596"},
			Code{ID: 5, NameEng: "planned", NameFre: "planifié", Code: "RI_597"},
			Code{ID: 6, NameEng: "required", NameFre: "requis", Code: "RI_598"},
			Code{ID: 7, NameEng: "underDevelopment", NameFre: "enProduction", Code: "RI_599"},
			Code{ID: 8, NameEng: "under internal review", NameFre: "en révision interne"},
		),
		Maintenance: NewTable("maintenance frequency", "IC_102", "gmd:MD_MaintenanceFrequencyCode",
			Code{ID: 1, NameEng: "continual", NameFre: "continue", Code: "RI_532"},
			Code{ID: 2, NameEng: "daily", NameFre: "quotidien", Code: "RI_533"},
			Code{ID: 3, NameEng: "weekly", NameFre: "hebdomadaire", Code: "RI_534"},
			Code{ID: 4, NameEng: "fortnightly", NameFre: "quinzomadaire", Code: "RI_535"},
			Code{ID: 5, NameEng: "monthly", NameFre: "mensuel", Code: "RI_536"},
			Code{ID: 6, NameEng: "quarterly", NameFre: "trimestriel", Code: "RI_537"},
			Code{ID: 7, NameEng: "biannually", NameFre: "semestriel", Code: "RI_538"},
			Code{ID: 8, NameEng: "annually", NameFre: "annuel", Code: "RI_539"},
			Code{ID: 9, NameEng: "asNeeded", NameFre: "auBesoin", Code: "RI_540"},
			Code{ID: 10, NameEng: "irregular", NameFre: "irrégulier", Code: "RI_541"},
			Code{ID: 11, NameEng: "notPlanned", NameFre: "nonPlanifié", Code: "RI_542"},
			Code{ID: 12, NameEng: "unknown", NameFre: "inconnu", Code: "RI_543"},
		),
		SecurityClassification: NewTable("security classification", "IC_96", "gmd:MD_ClassificationCode",
			Code{ID: 1, NameEng: "unclassified", NameFre: "nonClassifié", Code: "RI_484"},
			Code{ID: 2, NameEng: "restricted", NameFre: "restreint", Code: "RI_485"},
			Code{ID: 3, NameEng: "confidential", NameFre: "confidentiel", Code: "RI_486"},
			Code{ID: 4, NameEng: "secret", NameFre: "secret", Code: "RI_487"},
			Code{ID: 5, NameEng: "topSecret", NameFre: "trèsSecret", Code: "RI_488"},
			Code{ID: 6, NameEng: "protected B", NameFre: "protégé B"},
		),
		CharacterSet: NewTable("character set", "IC_95", "gmd:MD_CharacterSetCode",
			UTF8,
			Code{ID: 2, NameEng: "utf16", NameFre: "utf16", Code: "RI_459"},
			Code{ID: 3, NameEng: "ucs2", NameFre: "ucs2", Code: "RI_455"},
			Code{ID: 4, NameEng: "ucs4", NameFre: "ucs4", Code: "RI_456"},
			Code{ID: 5, NameEng: "utf7", NameFre: "utf7", Code: "RI_457"},
			Code{ID: 6, NameEng: "8859part1", NameFre: "8859partie1", Code: "RI_460"},
			Code{ID: 7, NameEng: "usAscii", NameFre: "usAscii", Code: "RI_474"},
		),
		SpatialRepresentation: NewTable("spatial representation type", "IC_109", "gmd:MD_SpatialRepresentationTypeCode",
			Code{ID: 1, NameEng: "vector", NameFre: "vecteur", Code: "RI_635"},
			Code{ID: 2, NameEng: "grid", NameFre: "grille", Code: "RI_636"},
			Code{ID: 3, NameEng: "textTable", NameFre: "tableTexte", Code: "RI_637"},
			Code{ID: 4, NameEng: "tin", NameFre: "tin", Code: "RI_638"},
			Code{ID: 5, NameEng: "stereoModel", NameFre: "modèleStéréo", Code: "RI_639"},
			Code{ID: 6, NameEng: "video", NameFre: "vidéo", Code: "RI_640"},
		),
		SpatialReferenceSystem: NewTable("spatial reference system", "", "",
			Code{ID: 1, NameEng: "WGS 84", NameFre: "WGS 84", Code: "4326", CodeSpace: "EPSG"},
			Code{ID: 2, NameEng: "NAD83", NameFre: "NAD83", Code: "4269", CodeSpace: "EPSG"},
			Code{ID: 3, NameEng: "NAD83(CSRS)", NameFre: "NAD83(SCRS)", Code: "4617", CodeSpace: "EPSG"},
			Code{ID: 4, NameEng: "WGS 84 / Pseudo-Mercator", NameFre: "WGS 84 / Pseudo-Mercator", Code: "3857", CodeSpace: "EPSG"},
			Code{ID: 5, NameEng: "local grid", NameFre: "grille locale"},
		),
		ResourceType: NewTable("resource type", "IC_108", "gmd:MD_ScopeCode",
			Code{ID: 1, NameEng: "dataset", NameFre: "jeuDonnées", Code: "RI_622"},
			Code{ID: 2, NameEng: "series", NameFre: "série", Code: "RI_623"},
			Code{ID: 3, NameEng: "service", NameFre: "service", Code: "RI_624"},
			Code{ID: 4, NameEng: "nonGeographicDataset", NameFre: "jeuDonnéesNonGéographiques", Code: "RI_625"},
			Code{ID: 5, NameEng: "collectionSession", NameFre: "séanceCollecte", Code: "RI_619"},
		),
		ContentType: NewTable("content type", "", "",
			Code{ID: 1, NameEng: "Dataset", NameFre: "Données", Code: "dataset"},
			Code{ID: 2, NameEng: "Web Service", NameFre: "Service Web", Code: "web_service"},
			Code{ID: 3, NameEng: "API", NameFre: "API", Code: "api"},
			Code{ID: 4, NameEng: "Application", NameFre: "Application", Code: "application"},
			Code{ID: 5, NameEng: "Supporting Document", NameFre: "Document de soutien", Code: "supporting_document"},
		),
		Role: NewTable("role", "IC_90", "gmd:CI_RoleCode",
			Code{ID: 1, NameEng: "resourceProvider", NameFre: "fournisseurRessource", Code: "RI_408"},
			Code{ID: 2, NameEng: "custodian", NameFre: "conservateur", Code: RoleCodeCustodian},
			Code{ID: 3, NameEng: "owner", NameFre: "propriétaire", Code: "RI_410"},
			Code{ID: 4, NameEng: "user", NameFre: "utilisateur", Code: "RI_411"},
			Code{ID: 5, NameEng: "distributor", NameFre: "distributeur", Code: RoleCodeDistributor},
			Code{ID: 6, NameEng: "originator", NameFre: "créateur", Code: "RI_413"},
			Code{ID: 7, NameEng: "pointOfContact", NameFre: "contact", Code: RoleCodePointOfContact},
			Code{ID: 8, NameEng: "principalInvestigator", NameFre: "chercheurPrincipal", Code: "RI_415"},
			Code{ID: 9, NameEng: "processor", NameFre: "traiteur", Code: "RI_416"},
			Code{ID: 10, NameEng: "publisher", NameFre: "éditeur", Code: "RI_417"},
			Code{ID: 11, NameEng: "author", NameFre: "auteur", Code: "RI_418"},
			Code{ID: 12, NameEng: "data manager", NameFre: "gestionnaire de données"},
		),
	}
}
