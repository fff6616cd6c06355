package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/axiom-guard/boundary/pkg/axiom"
)

// exitHandler handles POST /v1/exit: the I15 exit flow contract every
// UI-level disconnect/delete/export path must invoke before completing.
// A HARD violation means the caller must not proceed with the exit path
// as described; Allowed is false whenever any violation is returned.
func (s *Server) exitHandler(c *echo.Context) error {
	var req ExitFlowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	leaveEvent, violations := axiom.ValidateExitFlow(req.UserID, req.ConfirmationShown, req.RetentionPrompt, req.FarewellMessage)

	return c.JSON(http.StatusOK, ExitFlowResponse{
		Allowed:    len(violations) == 0,
		Violations: violations,
		LeaveEvent: newExitLeaveEvent(leaveEvent),
	})
}
