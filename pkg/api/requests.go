package api

import (
	"time"

	"github.com/axiom-guard/boundary/pkg/eventlog"
	"github.com/axiom-guard/boundary/pkg/expression"
	"github.com/axiom-guard/boundary/pkg/mirrorscore"
	"github.com/axiom-guard/boundary/pkg/models"
)

// ProcessRequest is the HTTP request body for POST /v1/process and
// POST /v1/stream.
type ProcessRequest struct {
	UserID             string               `json:"user_id"`
	InputText          string               `json:"input_text"`
	InvocationMode     string               `json:"invocation_mode"`
	TriggerSource      string               `json:"trigger_source,omitempty"`
	ConversationID     string               `json:"conversation_id,omitempty"`
	UserActionArtifact string               `json:"user_action_artifact,omitempty"`
	Preferences        *PreferencesRequest  `json:"preferences,omitempty"`
}

// PreferencesRequest carries the expression shaper's tunables — optional;
// zero value falls back to expression.DefaultPreferences().
type PreferencesRequest struct {
	Tone        string `json:"tone,omitempty"`
	DetailLevel string `json:"detail_level,omitempty"`
	Formality   string `json:"formality,omitempty"`
	Warmth      string `json:"warmth,omitempty"`
}

// toRequest converts the wire shape into a models.Request, stamping the
// current time and leaving History for the caller to populate from a
// replay if it wants semantic context threaded in.
func (r ProcessRequest) toRequest() models.Request {
	return models.Request{
		UserID:             r.UserID,
		InputText:          r.InputText,
		InvocationMode:     models.InvocationMode(r.InvocationMode),
		TriggerSource:      models.TriggerSource(r.TriggerSource),
		ConversationID:     r.ConversationID,
		Timestamp:          time.Now().UTC(),
		UserActionArtifact: r.UserActionArtifact,
	}
}

func (r *PreferencesRequest) toPreferences(fallback expression.Preferences) expression.Preferences {
	if r == nil {
		return fallback
	}
	prefs := fallback
	if r.Tone != "" {
		prefs.Tone = expression.Tone(r.Tone)
	}
	if r.DetailLevel != "" {
		prefs.DetailLevel = expression.DetailLevel(r.DetailLevel)
	}
	if r.Formality != "" {
		prefs.Formality = r.Formality
	}
	if r.Warmth != "" {
		prefs.Warmth = r.Warmth
	}
	return prefs
}

// ImportRequest is the HTTP request body for POST /v1/import. Exactly
// one of Document (single instance) or UserDocument (aggregate across a
// user's instances) must be set.
type ImportRequest struct {
	Document     *eventlog.ExportDocument     `json:"document,omitempty"`
	UserDocument *eventlog.UserExportDocument `json:"user_document,omitempty"`
}

// ExitFlowRequest is the HTTP request body for POST /v1/exit.
type ExitFlowRequest struct {
	UserID            string `json:"user_id"`
	ConfirmationShown bool   `json:"confirmation_shown"`
	RetentionPrompt   bool   `json:"retention_prompt"`
	FarewellMessage   string `json:"farewell_message,omitempty"`
}

// CandidatesRequest is the HTTP request body for POST /v1/candidates:
// the MirrorScore ranking operation over a caller-supplied candidate and
// target set. Session/history-shown state and lens-usage history travel
// in the request itself since the calculator is stateless between calls.
type CandidatesRequest struct {
	UserID         string             `json:"user_id"`
	Posture        string             `json:"posture"`
	RequestedStyle string             `json:"requested_style,omitempty"`
	LensCatalog    []string           `json:"lens_catalog"`
	LensUsage      []lensUsageRequest `json:"lens_usage,omitempty"`
	Candidates     []candidateRequest `json:"candidates"`
	Targets        []targetRequest    `json:"targets,omitempty"`
	SessionShown   []string           `json:"session_shown,omitempty"`
	HistoryShown   []string           `json:"history_shown,omitempty"`
}

type lensUsageRequest struct {
	LensID    string    `json:"lens_id"`
	Timestamp time.Time `json:"timestamp"`
	Weight    float64   `json:"weight"`
}

type candidateRequest struct {
	NodeID           string   `json:"node_id"`
	InteractionStyle string   `json:"interaction_style"`
	LensTags         []string `json:"lens_tags,omitempty"`
	AsymmetryTier    string   `json:"asymmetry_tier,omitempty"`
	AsymmetryScore   float64  `json:"asymmetry_score,omitempty"`
}

type targetRequest struct {
	LensTags []string `json:"lens_tags,omitempty"`
}

func stringSetOf(tags []string) map[string]struct{} {
	if len(tags) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

func (r CandidatesRequest) toLensUsage() []mirrorscore.LensUsage {
	out := make([]mirrorscore.LensUsage, 0, len(r.LensUsage))
	for _, u := range r.LensUsage {
		out = append(out, mirrorscore.LensUsage{LensID: u.LensID, Timestamp: u.Timestamp, Weight: u.Weight})
	}
	return out
}

func (r CandidatesRequest) toCandidates() []models.Candidate {
	out := make([]models.Candidate, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		out = append(out, models.Candidate{
			NodeID:           c.NodeID,
			InteractionStyle: models.InteractionStyle(c.InteractionStyle),
			LensTags:         stringSetOf(c.LensTags),
			Asymmetry: models.AsymmetryReport{
				Tier:  models.EvidenceTier(c.AsymmetryTier),
				Score: c.AsymmetryScore,
			},
		})
	}
	return out
}

func (r CandidatesRequest) toTargets() []mirrorscore.Target {
	out := make([]mirrorscore.Target, 0, len(r.Targets))
	for _, t := range r.Targets {
		out = append(out, mirrorscore.Target{LensTags: stringSetOf(t.LensTags)})
	}
	return out
}
