package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/axiom-guard/boundary/pkg/axiom"
	"github.com/axiom-guard/boundary/pkg/expression"
	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/provider"
	"github.com/axiom-guard/boundary/pkg/safety"
	"github.com/axiom-guard/boundary/pkg/semantic"
)

// AuditSealer seals one AuditRecord, chained off the prior record for
// the same user. *eventlog.Store satisfies this; tests substitute a
// fake so the orchestrator's control flow can be exercised without a
// database.
type AuditSealer interface {
	SealAudit(ctx context.Context, userID string, record models.AuditRecord) (models.AuditRecord, error)
}

// Orchestrator sequences the safety, axiom, semantic, provider, and
// expression stages into one request/response turn, fail closed at
// every stage, sealing exactly one AuditRecord per run.
//
// Appending reflection/metadata/posture events and re-deriving the
// identity view from them is the caller's responsibility, driven by
// what the user actually declared — the orchestrator here only deals
// with the constitutional request/response turn and its audit seal.
type Orchestrator struct {
	axioms              *axiom.Registry
	scanner             *safety.Scanner
	analyzer            *semantic.Analyzer
	shaper              *expression.Shaper
	generator           provider.Generator
	audit               AuditSealer
	constitutionVersion string
}

// NewOrchestrator wires the constitutional pipeline's stages together.
func NewOrchestrator(
	axioms *axiom.Registry,
	scanner *safety.Scanner,
	analyzer *semantic.Analyzer,
	shaper *expression.Shaper,
	generator provider.Generator,
	audit AuditSealer,
	constitutionVersion string,
) *Orchestrator {
	return &Orchestrator{
		axioms:              axioms,
		scanner:             scanner,
		analyzer:            analyzer,
		shaper:              shaper,
		generator:           generator,
		audit:               audit,
		constitutionVersion: constitutionVersion,
	}
}

// Run executes one full pipeline turn for req, returning the final
// response. Every return path — crisis, refusal, degraded, or completed
// — seals an audit record before returning; err is non-nil only for
// infrastructure failures (e.g. the audit write itself failing) — in
// that case no derived state is returned either.
func (o *Orchestrator) Run(ctx context.Context, req models.Request, prefs expression.Preferences) (models.Response, error) {
	var layers []string

	finish := func(resp models.Response, violations []models.Violation) (models.Response, error) {
		layers = append(layers, "audit")
		sealed, err := o.seal(ctx, req, resp, layers, violations)
		if err != nil {
			return models.Response{}, fmt.Errorf("seal audit record: %w", err)
		}
		resp.AuditID = sealed.AuditID.String()
		return resp, nil
	}

	// invocation: the post_action contract gates the pipeline before any
	// other stage runs — a request that never represents a user-initiated,
	// artifact-bearing action never reaches generation at all.
	if err := req.Validate(); err != nil {
		layers = append(layers, "invocation")
		violation := models.Violation{
			InvariantID: "INVOCATION",
			Severity:    models.SeverityCritical,
			Description: err.Error(),
		}
		return finish(refusalResponse([]models.Violation{violation}), []models.Violation{violation})
	}

	// safety
	safetyStep := runSafety(o.scanner, req.InputText)
	layers = append(layers, "safety")
	if safetyStep.Outcome == Crisis {
		return finish(safetyStep.Response, nil)
	}
	if len(safetyStep.Value) > 0 {
		req.CrisisDetected = true
	}
	if err := ctx.Err(); err != nil {
		return models.Response{}, err
	}

	// axiom_in
	axiomInStep := runAxiomIn(o.axioms, req)
	layers = append(layers, "axiom_in")
	if axiomInStep.Outcome == Refuse {
		return finish(axiomInStep.Response, axiomInStep.Value)
	}
	if err := ctx.Err(); err != nil {
		return models.Response{}, err
	}

	// semantic
	history := reflectionsFromEvents(req.History)
	current := semantic.Reflection{Text: req.InputText, At: req.Timestamp}
	semCtx := runSemantic(o.analyzer, current, history).Value
	layers = append(layers, "semantic")
	if err := ctx.Err(); err != nil {
		return models.Response{}, err
	}

	// generate
	genStep := runGenerate(ctx, o.generator, provider.Request{Prompt: req.InputText})
	layers = append(layers, "generate")
	if genStep.Outcome == Refuse {
		return finish(genStep.Response, nil)
	}
	draft := genStep.Value
	if err := ctx.Err(); err != nil {
		return models.Response{}, err
	}

	// axiom_out, with the single strict-mode retry on SOFT
	outViolations := runAxiomOut(o.axioms, req, draft)
	switch sev := axiom.HighestSeverity(outViolations); {
	case sev == models.SeveritySoft:
		retryStep := runGenerate(ctx, o.generator, provider.Request{
			Prompt:  req.InputText,
			Context: map[string]any{"strict_mode": true},
		})
		if retryStep.Outcome == Continue {
			retryViolations := runAxiomOut(o.axioms, req, retryStep.Value)
			if axiom.HighestSeverity(retryViolations).AtLeast(models.SeverityHard) {
				layers = append(layers, "axiom_out")
				return finish(refusalResponse(retryViolations), retryViolations)
			}
			draft = retryStep.Value
			outViolations = retryViolations
		}
	case sev.AtLeast(models.SeverityHard):
		layers = append(layers, "axiom_out")
		return finish(refusalResponse(outViolations), outViolations)
	}
	layers = append(layers, "axiom_out")
	if err := ctx.Err(); err != nil {
		return models.Response{}, err
	}

	// express
	finalText, expressViolations := runExpress(o.shaper, draft, prefs, semCtx, req.CrisisDetected)
	layers = append(layers, "express")

	allViolations := append(append([]models.Violation{}, axiomInStep.Value...), outViolations...)
	allViolations = append(allViolations, expressViolations...)

	return finish(models.Response{
		OutputText: finalText,
		Safe:       isSafe(allViolations),
		Violations: allViolations,
	}, allViolations)
}

// seal writes the AuditRecord for this run. Only hashes of input/output
// are stored, never the text itself, and violations are summarized down
// to invariant ID/severity/remediation — never Evidence.
func (o *Orchestrator) seal(ctx context.Context, req models.Request, resp models.Response, layers []string, violations []models.Violation) (models.AuditRecord, error) {
	summary := make([]models.Violation, len(violations))
	for i, v := range violations {
		summary[i] = models.Violation{
			InvariantID: v.InvariantID,
			Severity:    v.Severity,
			Description: v.Description,
			Remediation: v.Remediation,
		}
	}

	record := models.AuditRecord{
		RequestID:           req.ConversationID,
		InputHash:           hashText(req.InputText),
		OutputHash:          hashText(resp.OutputText),
		ConstitutionVersion: o.constitutionVersion,
		InvocationMode:      req.InvocationMode,
		LayersExecuted:      layers,
		ViolationsSummary:   summary,
		Timestamp:           time.Now().UTC(),
	}
	return o.audit.SealAudit(ctx, req.UserID, record)
}

func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// reflectionsFromEvents projects replayed history events into the
// provider-agnostic Reflection shape semantic.Analyzer expects.
func reflectionsFromEvents(events []models.Event) []semantic.Reflection {
	out := make([]semantic.Reflection, 0, len(events))
	for _, e := range events {
		if e.EventType != models.EventReflectionCreated && e.EventType != models.EventVoiceTranscribed {
			continue
		}
		out = append(out, semantic.Reflection{Text: e.Content(), At: e.Timestamp})
	}
	return out
}
