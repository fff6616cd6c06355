package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/axiom-guard/boundary/pkg/events"
)

// processHandler handles POST /v1/process: one full synchronous turn
// through the constitutional pipeline.
func (s *Server) processHandler(c *echo.Context) error {
	var req ProcessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	domainReq := req.toRequest()
	if headerUser := extractUser(c); headerUser != "api-client" {
		domainReq.UserID = headerUser
	}

	// The invocation contract itself is enforced inside the orchestrator's
	// first stage, not here: a violation is a normal (sealed, audited)
	// refusal Response, not an out-of-band HTTP error — rejecting it before
	// the pipeline runs would skip the audit seal spec.md requires on
	// every return path.
	prefs := req.Preferences.toPreferences(s.defaultPrefs)

	unlock, err := s.sessions.LockContext(c.Request().Context(), domainReq.UserID)
	if err != nil {
		return mapError(err)
	}
	defer unlock()

	resp, err := s.orchestrator.Run(c.Request().Context(), domainReq, prefs)
	if err != nil {
		return mapError(err)
	}

	if s.eventPublisher != nil && resp.AuditID != "" {
		_ = s.eventPublisher.PublishAuditSealed(c.Request().Context(), domainReq.UserID, events.AuditSealedPayload{
			AuditID:   resp.AuditID,
			UserID:    domainReq.UserID,
			RequestID: domainReq.ConversationID,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	}

	return c.JSON(http.StatusOK, newProcessResponse(resp))
}
