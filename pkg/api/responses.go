package api

import (
	"github.com/axiom-guard/boundary/pkg/database"
	"github.com/axiom-guard/boundary/pkg/eventlog"
	"github.com/axiom-guard/boundary/pkg/mirrorscore"
	"github.com/axiom-guard/boundary/pkg/models"
)

// ProcessResponse is returned by POST /v1/process.
type ProcessResponse struct {
	OutputText string             `json:"output_text"`
	Safe       bool               `json:"safe"`
	Violations []models.Violation `json:"violations,omitempty"`
	AuditID    string             `json:"audit_id"`
}

func newProcessResponse(resp models.Response) ProcessResponse {
	return ProcessResponse{
		OutputText: resp.OutputText,
		Safe:       resp.Safe,
		Violations: resp.Violations,
		AuditID:    resp.AuditID,
	}
}

// ImportResponse is returned by POST /v1/import.
type ImportResponse struct {
	EventsImported int `json:"events_imported"`
}

// ExitFlowResponse is returned by POST /v1/exit.
type ExitFlowResponse struct {
	Allowed    bool               `json:"allowed"`
	Violations []models.Violation `json:"violations,omitempty"`
	LeaveEvent exitLeaveEvent     `json:"leave_event"`
}

type exitLeaveEvent struct {
	UserID          string `json:"user_id"`
	Timestamp       string `json:"timestamp"`
	SilentExit      bool   `json:"silent_exit"`
	FrictionApplied bool   `json:"friction_applied"`
}

func newExitLeaveEvent(e models.LeaveEvent) exitLeaveEvent {
	return exitLeaveEvent{
		UserID:          e.UserID,
		Timestamp:       e.Timestamp.Format("2006-01-02T15:04:05.000Z07:00"),
		SilentExit:      e.SilentExit,
		FrictionApplied: e.FrictionApplied,
	}
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	Status            string                `json:"status"`
	Version           string                `json:"version"`
	Database          *database.HealthStatus `json:"database,omitempty"`
	ActiveConnections int                   `json:"active_connections"`
	Sessions          int                   `json:"sessions_locked"`
}

// VerifyResponse is returned by GET /v1/verify/:user_id.
type VerifyResponse struct {
	UserID  string                     `json:"user_id"`
	Intact  bool                       `json:"intact"`
	Reports []eventlog.IntegrityReport `json:"reports"`
}

// CandidatesResponse is returned by POST /v1/candidates: candidates
// ranked by TotalScore descending, with the per-component breakdown
// intact so a caller (or an audit) can see why a candidate ranked where
// it did.
type CandidatesResponse struct {
	Ranked []scoredCandidateResponse `json:"ranked"`
}

type scoredCandidateResponse struct {
	NodeID            string  `json:"node_id"`
	TotalScore        float64 `json:"total_score"`
	PostureFit        float64 `json:"posture_fit"`
	TargetCoverage    float64 `json:"target_coverage"`
	TensionAdjacency  float64 `json:"tension_adjacency"`
	DiversityPressure float64 `json:"diversity_pressure"`
	Novelty           float64 `json:"novelty"`
	RiskPenalty       float64 `json:"risk_penalty"`
}

func newCandidatesResponse(scored []mirrorscore.ScoredCandidate) CandidatesResponse {
	out := make([]scoredCandidateResponse, 0, len(scored))
	for _, s := range scored {
		out = append(out, scoredCandidateResponse{
			NodeID:            s.Candidate.NodeID,
			TotalScore:        s.TotalScore,
			PostureFit:        s.PostureFit,
			TargetCoverage:    s.TargetCoverage,
			TensionAdjacency:  s.TensionAdjacency,
			DiversityPressure: s.DiversityPressure,
			Novelty:           s.Novelty,
			RiskPenalty:       s.RiskPenalty,
		})
	}
	return CandidatesResponse{Ranked: out}
}
