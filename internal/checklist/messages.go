// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package checklist

const (
	msgMissing        = "Missing required field: %s."
	msgMissingEnglish = "Missing required field: %s (English)."
	msgMissingFrench  = "Missing required field: %s (French)."
	msgOnlyEnglish    = "The %s is only provided in English; a French translation is needed."
	msgOnlyFrench     = "The %s is only provided in French; an English translation is needed."
	msgAdministrator  = "The %s %q has no %s. Please contact your administrator to correct this lookup."

	MsgNeedsEnglishWebService  = "The resource needs an English web service."
	MsgNeedsFrenchWebService   = "The resource needs a French web service."
	MsgNeedsPointOfContact     = "The resource needs at least one point of contact."
	MsgNeedsCustodian          = "The resource needs at least one custodian."
	MsgNeedsCertification      = "The metadata has not been certified in the last 30 days."
	MsgNeedsDistributionFormat = "The resource needs at least one distribution format."
	MsgNeedsDataResource       = "The resource needs at least one data resource."
)
