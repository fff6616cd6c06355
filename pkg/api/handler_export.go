package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

// exportHandler handles GET /v1/export/:user_id. The event hash chain is
// integrity-scoped per instance_id (spec.md §3/§4.6), so a user-level
// export is an aggregate of every instance_id the user has ever written
// to — see eventlog.UserExportDocument.
func (s *Server) exportHandler(c *echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	doc, err := s.store.ExportForUser(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, doc)
}

// importHandler handles POST /v1/import. Accepts either a single
// instance_id-scoped document or a user-scoped aggregate; exactly one of
// the two fields on ImportRequest must be set.
func (s *Server) importHandler(c *echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var count int
	switch {
	case req.Document != nil && req.UserDocument == nil:
		if err := s.store.Import(c.Request().Context(), *req.Document); err != nil {
			return mapError(err)
		}
		count = req.Document.EventCount
	case req.UserDocument != nil && req.Document == nil:
		if err := s.store.ImportForUser(c.Request().Context(), *req.UserDocument); err != nil {
			return mapError(err)
		}
		for _, instanceDoc := range req.UserDocument.Instances {
			count += instanceDoc.EventCount
		}
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "exactly one of document or user_document is required")
	}

	return c.JSON(http.StatusOK, ImportResponse{EventsImported: count})
}

// verifyHandler handles GET /v1/verify/:user_id: checks the hash-chain
// integrity of every instance_id the user has ever written to.
func (s *Server) verifyHandler(c *echo.Context) error {
	userID := c.Param("user_id")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	reports, err := s.store.VerifyIntegrityForUser(c.Request().Context(), userID)
	if err != nil {
		return mapError(err)
	}

	intact := true
	for _, r := range reports {
		if !r.Intact {
			intact = false
			break
		}
	}

	status := http.StatusOK
	if !intact {
		status = http.StatusConflict
	}
	return c.JSON(status, VerifyResponse{UserID: userID, Intact: intact, Reports: reports})
}
