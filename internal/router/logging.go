// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// RequestLogger logs one concise line per request.
func RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req, res := c.Request(), c.Response()
		query := req.URL.RawQuery
		if query != "" {
			query = "?" + query
		}

		zap.L().Info("request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("query", query),
			zap.String("route", c.Path()),
			zap.Int("status", res.Status),
			zap.Int64("size", res.Size),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", res.Header().Get(echo.HeaderXRequestID)),
		)
		return nil
	}
}
