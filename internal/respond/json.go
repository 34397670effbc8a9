// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package respond

import (
	"github.com/labstack/echo/v4"
)

func WriteJSON(c echo.Context, status int, v any) error {
	writeHeaders(c)
	return c.JSON(status, v)
}
