// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package respond

import (
	"net/http"

	"github.com/beevik/etree"
	"github.com/labstack/echo/v4"
)

// WriteXML writes an already serialized document.
func WriteXML(c echo.Context, data []byte) error {
	writeHeaders(c)
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, data)
}

// WriteTree streams doc without buffering the serialized form.
func WriteTree(c echo.Context, doc *etree.Document) error {
	writeHeaders(c)
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXMLCharsetUTF8)
	c.Response().WriteHeader(http.StatusOK)
	_, err := doc.WriteTo(c.Response())
	return err
}
