// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package respond

import (
	"errors"
	"net/http"

	"inventory/internal/resource"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error codes.
const (
	CodeNotFound     = "NotFound"
	CodeInvalidInput = "InvalidInput"
	CodeInternal     = "InternalError"
)

type ErrorResponse struct {
	Error     Error  `json:"error"`
	RequestID string `json:"request_id"`
}

type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteError(c echo.Context, status int, code, message string) error {
	writeHeaders(c)
	return c.JSON(status, ErrorResponse{
		Error:     Error{Code: code, Message: message},
		RequestID: RequestID(c),
	})
}

// WriteErr maps a service error to a response. Storage failures are logged
// and reported without detail.
func WriteErr(c echo.Context, err error) error {
	if errors.Is(err, resource.ErrNotFound) {
		return WriteError(c, http.StatusNotFound, CodeNotFound, err.Error())
	}
	zap.L().Error("request failed",
		zap.String("path", c.Request().URL.Path),
		zap.String("request_id", RequestID(c)),
		zap.Error(err),
	)
	return WriteError(c, http.StatusInternalServerError, CodeInternal, "internal error")
}
