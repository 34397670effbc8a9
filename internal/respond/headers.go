// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package respond

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestID returns the id assigned to the request, allocating one if the
// router middleware did not.
func RequestID(c echo.Context) string {
	h := c.Response().Header()
	if id := h.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	id := NextRequestID()
	h.Set(echo.HeaderXRequestID, id)
	return id
}

func writeHeaders(c echo.Context) {
	RequestID(c)
	h := c.Response().Header()
	h.Set("Cache-Control", "no-store")
	h.Set("Date", time.Now().UTC().Format(http.TimeFormat))
}
