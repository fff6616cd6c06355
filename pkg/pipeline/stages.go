package pipeline

import (
	"context"

	"github.com/axiom-guard/boundary/pkg/axiom"
	"github.com/axiom-guard/boundary/pkg/expression"
	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/provider"
	"github.com/axiom-guard/boundary/pkg/safety"
	"github.com/axiom-guard/boundary/pkg/semantic"
)

// runSafety is the `safety` stage: on a critical crisis signal, emit the
// crisis response and short-circuit; otherwise continue with the
// detected signals so later stages can suppress departure-inference
// checks via Request.CrisisDetected.
func runSafety(scanner *safety.Scanner, text string) Step[[]safety.CrisisSignal] {
	signals := scanner.Check(text)
	if safety.HighestLevel(signals) == safety.LevelCritical {
		return CrisisWith[[]safety.CrisisSignal](models.Response{
			OutputText: safety.CrisisResponse(signals),
			Safe:       isSafe(nil),
		})
	}
	return ContinueWith(signals)
}

// runAxiomIn is the `axiom_in` stage: any HARD/CRITICAL violation on the
// inbound request refuses immediately.
func runAxiomIn(registry *axiom.Registry, req models.Request) Step[[]models.Violation] {
	violations := registry.CheckRequest(req)
	if axiom.HighestSeverity(violations).AtLeast(models.SeverityHard) {
		return RefuseWith[[]models.Violation](refusalResponse(violations))
	}
	return ContinueWith(violations)
}

// runSemantic is the `semantic` stage: never fatal — a detector failure
// inside Analyzer.Analyze already degrades to an empty pattern list
// rather than propagating an error.
func runSemantic(analyzer *semantic.Analyzer, current semantic.Reflection, history []semantic.Reflection) Step[semantic.Context] {
	return ContinueWith(analyzer.Analyze(current, history))
}

// runGenerate is the `generate` stage: calls the provider adapter and
// maps any error (the fallback chain has already been exhausted inside
// generator.Generate by this point) to a degraded response.
func runGenerate(ctx context.Context, generator provider.Generator, req provider.Request) Step[string] {
	result, err := generator.Generate(ctx, req)
	if err != nil {
		return RefuseWith[string](models.Response{
			OutputText: "I'm not able to respond right now. Please try again shortly.",
			Safe:       isSafe(nil),
			Violations: nil,
		})
	}
	return ContinueWith(result.Text)
}

// runAxiomOut is the `axiom_out` stage. Callers handle the SOFT-once
// retry themselves (it needs to re-invoke generate), so this stage only
// reports the violations and lets the orchestrator branch on severity.
func runAxiomOut(registry *axiom.Registry, req models.Request, draft string) []models.Violation {
	return registry.CheckResponse(req, draft)
}

// runExpress is the `express` stage: on any shaper violation (an I15
// match in the shaped text, scrubbed or not), fall back to draft verbatim — it already
// passed axiom_out, so using it unshaped cannot regress safety.
func runExpress(shaper *expression.Shaper, draft string, prefs expression.Preferences, semCtx semantic.Context, crisisDetected bool) (string, []models.Violation) {
	shaped, violations := shaper.Shape(draft, prefs, semCtx, crisisDetected)
	if len(violations) > 0 {
		return draft, violations
	}
	return shaped, nil
}

func refusalResponse(violations []models.Violation) models.Response {
	return models.Response{
		OutputText: "I can't help with that the way you've framed it, but I'm glad to continue if you'd like to try a different angle.",
		Safe:       isSafe(violations),
		Violations: violations,
	}
}

// isSafe implements spec.md §3's Response invariant exactly:
// safe = true iff no violation of severity >= HARD.
func isSafe(violations []models.Violation) bool {
	return !axiom.HighestSeverity(violations).AtLeast(models.SeverityHard)
}
