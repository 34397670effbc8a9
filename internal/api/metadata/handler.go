// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"inventory/internal/inventory"
	"inventory/internal/respond"

	"github.com/labstack/echo/v4"
)

// MaxArchiveResources bounds a single archive request.
const MaxArchiveResources = 500

type Handler struct {
	Service *inventory.Service
}

func NewHandler(svc *inventory.Service) *Handler {
	return &Handler{Service: svc}
}

//
// Routes
//

func (h *Handler) Register(g *echo.Group) {
	g.GET("/resources/export.zip", h.ExportArchive)
	g.GET("/resources/:id/xml", h.GetXML)
	g.POST("/resources/:id/verify", h.Verify)
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("invalid resource id %q", s)
	}
	return uint(n), nil
}

func parseIDs(s string) ([]uint, error) {
	var ids []uint
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := parseID(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New("ids is required")
	}
	ids = inventory.UniqueIDs(ids)
	if len(ids) > MaxArchiveResources {
		return nil, fmt.Errorf("at most %d ids per archive", MaxArchiveResources)
	}
	return ids, nil
}

func compact(c echo.Context) bool {
	v := c.QueryParam("compact")
	return v == "1" || v == "true"
}

//
// GET /api/resources/:id/xml
//

func (h *Handler) GetXML(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond.WriteError(c, http.StatusBadRequest, respond.CodeInvalidInput, err.Error())
	}

	if compact(c) {
		doc, err := h.Service.Tree(c.Request().Context(), id)
		if err != nil {
			return respond.WriteErr(c, err)
		}
		return respond.WriteTree(c, doc)
	}

	doc, err := h.Service.Export(c.Request().Context(), id, true)
	if err != nil {
		return respond.WriteErr(c, err)
	}
	if c.QueryParam("download") != "" {
		return respond.WriteAttachment(c, echo.MIMEApplicationXMLCharsetUTF8, doc.FileName(), doc.XML)
	}
	return respond.WriteXML(c, doc.XML)
}

//
// POST /api/resources/:id/verify
//

func (h *Handler) Verify(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return respond.WriteError(c, http.StatusBadRequest, respond.CodeInvalidInput, err.Error())
	}

	res, err := h.Service.Verify(c.Request().Context(), id)
	if err != nil {
		return respond.WriteErr(c, err)
	}
	return respond.WriteJSON(c, http.StatusOK, res)
}

//
// GET /api/resources/export.zip?ids=1,2,3
//

func (h *Handler) ExportArchive(c echo.Context) error {
	ids, err := parseIDs(c.QueryParam("ids"))
	if err != nil {
		return respond.WriteError(c, http.StatusBadRequest, respond.CodeInvalidInput, err.Error())
	}

	// buffered so a missing resource can still produce a 404
	var buf bytes.Buffer
	if err := h.Service.ExportArchive(c.Request().Context(), &buf, ids); err != nil {
		return respond.WriteErr(c, err)
	}
	return respond.WriteAttachment(c, respond.MIMEZip, "metadata.zip", buf.Bytes())
}
