package api

import (
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/axiom-guard/boundary/pkg/mirrorscore"
	"github.com/axiom-guard/boundary/pkg/models"
)

// candidatesHandler handles POST /v1/candidates: the MirrorScore ranking
// operation (C9) over a caller-supplied candidate/target set. Score
// state (TPV, session/history shown) is reconstructed fresh from the
// request body on every call — the calculator holds no state of its own
// between requests, matching spec.md's framing of scoring as a pure
// function of its inputs, not a stateful session.
func (s *Server) candidatesHandler(c *echo.Context) error {
	var req CandidatesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}
	if len(req.Candidates) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "candidates must be non-empty")
	}

	posture := models.Posture(req.Posture)
	weights := s.cfg.WeightsFor(posture)

	lensCatalog := req.LensCatalog
	userTPV := mirrorscore.ComputeTPV(req.toLensUsage(), lensCatalog, time.Now().UTC())

	calc := mirrorscore.NewCalculatorWithWeights(posture, userTPV, lensCatalog, map[models.Posture]mirrorscore.Weights{posture: weights})
	calc.SeedHistory(req.HistoryShown...)
	for _, nodeID := range req.SessionShown {
		calc.MarkShown(models.Candidate{NodeID: nodeID}, false)
	}

	scored := calc.Score(req.toCandidates(), req.toTargets(), models.InteractionStyle(req.RequestedStyle))

	return c.JSON(http.StatusOK, newCandidatesResponse(scored))
}
