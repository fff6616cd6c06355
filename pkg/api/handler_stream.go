package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/axiom-guard/boundary/pkg/events"
	"github.com/axiom-guard/boundary/pkg/pipeline"
)

// streamHandler handles POST /v1/stream: the same pipeline turn as
// /v1/process, delivered as Server-Sent Events — one event per
// pipeline.StreamEvent (`chunk`, `violation`, `end`), matching spec.md's
// `stream(Request) -> AsyncSeq<Chunk | Violation | End>`.
func (s *Server) streamHandler(c *echo.Context) error {
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
	prefs := req.Preferences.toPreferences(s.defaultPrefs)

	unlock, err := s.sessions.LockContext(c.Request().Context(), domainReq.UserID)
	if err != nil {
		return mapError(err)
	}
	defer unlock()

	resHeader := c.Response().Header()
	resHeader.Set(echo.HeaderContentType, "text/event-stream")
	resHeader.Set("Cache-Control", "no-cache")
	resHeader.Set("Connection", "keep-alive")
	c.Response().WriteHeader(http.StatusOK)

	for event := range s.orchestrator.Stream(c.Request().Context(), domainReq, prefs) {
		if err := writeSSEEvent(c, event); err != nil {
			return nil // client disconnected; nothing more to do
		}
		if event.Kind == pipeline.StreamEnd && s.eventPublisher != nil && event.Final.AuditID != "" {
			_ = s.eventPublisher.PublishAuditSealed(c.Request().Context(), domainReq.UserID, events.AuditSealedPayload{
				AuditID:   event.Final.AuditID,
				UserID:    domainReq.UserID,
				RequestID: domainReq.ConversationID,
			})
		}
	}
	return nil
}

func writeSSEEvent(c *echo.Context, event pipeline.StreamEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", event.Kind, payload); err != nil {
		return err
	}
	if f, ok := c.Response().(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
