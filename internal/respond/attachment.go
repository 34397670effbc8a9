// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package respond

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"
)

const MIMEZip = "application/zip"

// WriteAttachment sends data as a download named filename.
func WriteAttachment(c echo.Context, contentType, filename string, data []byte) error {
	writeHeaders(c)
	c.Response().Header().Set(echo.HeaderContentDisposition,
		mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	return c.Blob(http.StatusOK, contentType, data)
}
