package pipeline

import (
	"context"

	"github.com/axiom-guard/boundary/pkg/axiom"
	"github.com/axiom-guard/boundary/pkg/expression"
	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/provider"
	"github.com/axiom-guard/boundary/pkg/semantic"
)

// StreamEventKind distinguishes the event shapes Stream emits.
type StreamEventKind string

const (
	// StreamChunk carries one piece of generated text, already checked
	// against the running draft's axiom_out state at the time it was
	// emitted.
	StreamChunk StreamEventKind = "chunk"
	// StreamViolation means a HARD/CRITICAL violation was found in the
	// accumulated draft; no further chunks follow, and End carries the
	// refusal text instead of the streamed draft.
	StreamViolation StreamEventKind = "violation"
	// StreamEnd is always the last event on the channel, carrying the
	// sealed audit ID and the final (possibly refused) response.
	StreamEnd StreamEventKind = "end"
)

// StreamEvent is one item on the channel Orchestrator.Stream returns.
type StreamEvent struct {
	Kind       StreamEventKind
	Text       string
	Violations []models.Violation
	Final      models.Response
}

// Stream runs the same safety/axiom_in stages as Run, then — if the
// generator supports it — streams the generation instead of waiting
// for it whole. Axiom checks run against the accumulated draft after
// every chunk: violations found mid-stream stop further output rather
// than letting it reach the caller unchecked. Exactly one StreamEnd event
// is always sent before the channel closes.
func (o *Orchestrator) Stream(ctx context.Context, req models.Request, prefs expression.Preferences) <-chan StreamEvent {
	out := make(chan StreamEvent, 4)

	go func() {
		defer close(out)

		var layers []string
		finish := func(resp models.Response, violations []models.Violation) {
			layers = append(layers, "audit")
			sealed, err := o.seal(ctx, req, resp, layers, violations)
			if err == nil {
				resp.AuditID = sealed.AuditID.String()
			}
			out <- StreamEvent{Kind: StreamEnd, Final: resp, Violations: violations}
		}

		if err := req.Validate(); err != nil {
			layers = append(layers, "invocation")
			violation := models.Violation{
				InvariantID: "INVOCATION",
				Severity:    models.SeverityCritical,
				Description: err.Error(),
			}
			finish(refusalResponse([]models.Violation{violation}), []models.Violation{violation})
			return
		}

		safetyStep := runSafety(o.scanner, req.InputText)
		layers = append(layers, "safety")
		if safetyStep.Outcome == Crisis {
			finish(safetyStep.Response, nil)
			return
		}
		if len(safetyStep.Value) > 0 {
			req.CrisisDetected = true
		}

		axiomInStep := runAxiomIn(o.axioms, req)
		layers = append(layers, "axiom_in")
		if axiomInStep.Outcome == Refuse {
			finish(axiomInStep.Response, axiomInStep.Value)
			return
		}

		streamer, canStream := o.generator.(provider.StreamGenerator)
		if !canStream {
			genStep := runGenerate(ctx, o.generator, provider.Request{Prompt: req.InputText})
			layers = append(layers, "generate")
			if genStep.Outcome == Refuse {
				finish(genStep.Response, nil)
				return
			}
			o.finishStreamedDraft(ctx, out, req, prefs, genStep.Value, layers, finish)
			return
		}

		chunks, errs := streamer.Stream(ctx, provider.Request{Prompt: req.InputText})
		layers = append(layers, "generate")

		var draft string
		for chunk := range chunks {
			draft += chunk.Text
			violations := runAxiomOut(o.axioms, req, draft)
			if axiom.HighestSeverity(violations).AtLeast(models.SeverityHard) {
				layers = append(layers, "axiom_out")
				resp := refusalResponse(violations)
				out <- StreamEvent{Kind: StreamViolation, Violations: violations}
				finish(resp, violations)
				return
			}
			out <- StreamEvent{Kind: StreamChunk, Text: chunk.Text}
			if chunk.Done {
				break
			}
		}
		if err := <-errs; err != nil {
			layers = append(layers, "generate")
			finish(models.Response{
				OutputText: "I'm not able to respond right now. Please try again shortly.",
				Safe:       isSafe(nil),
			}, nil)
			return
		}

		o.finishStreamedDraft(ctx, out, req, prefs, draft, layers, finish)
	}()

	return out
}

// finishStreamedDraft runs axiom_out plus express on a fully assembled
// draft (already streamed chunk-by-chunk, or produced whole by a
// non-streaming generator) and seals the turn.
func (o *Orchestrator) finishStreamedDraft(
	ctx context.Context,
	out chan<- StreamEvent,
	req models.Request,
	prefs expression.Preferences,
	draft string,
	layers []string,
	finish func(models.Response, []models.Violation),
) {
	outViolations := runAxiomOut(o.axioms, req, draft)
	layers = append(layers, "axiom_out")
	if axiom.HighestSeverity(outViolations).AtLeast(models.SeverityHard) {
		resp := refusalResponse(outViolations)
		out <- StreamEvent{Kind: StreamViolation, Violations: outViolations}
		finish(resp, outViolations)
		return
	}

	history := reflectionsFromEvents(req.History)
	current := semantic.Reflection{Text: req.InputText, At: req.Timestamp}
	semCtx := runSemantic(o.analyzer, current, history).Value
	finalText, expressViolations := runExpress(o.shaper, draft, prefs, semCtx, req.CrisisDetected)
	layers = append(layers, "express")

	all := append(append([]models.Violation{}, outViolations...), expressViolations...)
	finish(models.Response{
		OutputText: finalText,
		Safe:       isSafe(all),
		Violations: all,
	}, all)
}
