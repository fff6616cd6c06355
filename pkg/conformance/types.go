// Package conformance implements the conformance harness: the battery
// any implementation of the constitutional pipeline must pass to be
// called a conforming instance. It is deliberately written against
// narrow interfaces (PipelineRunner, not *pipeline.Orchestrator) so the
// same battery can drive an in-process pipeline value in a unit test or
// an HTTP client talking to a running boundaryd instance — the
// language-agnostic-black-box usage spec.md calls for.
package conformance

import (
	"context"

	"github.com/axiom-guard/boundary/pkg/axiom"
	"github.com/axiom-guard/boundary/pkg/expression"
	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/replay"
)

// PipelineRunner is the one pipeline operation the battery drives.
// *pipeline.Orchestrator satisfies this directly; an HTTP-backed harness
// wraps POST /v1/process in the same shape.
type PipelineRunner interface {
	Run(ctx context.Context, req models.Request, prefs expression.Preferences) (models.Response, error)
}

// Harness bundles everything a Case may need. Fields other than
// Pipeline are optional: a case that needs one checks it is non-nil and
// reports Skipped rather than panicking, so a black-box HTTP harness
// that only has a PipelineRunner can still run the cases that apply.
type Harness struct {
	// Pipeline is required: every case either calls it directly or uses
	// it to produce inputs for a narrower check.
	Pipeline PipelineRunner

	// Axioms, Shaper, and Engine let in-process harnesses (where these
	// values already exist) run the finer-grained checks that operate
	// below the pipeline's Run boundary. A pure HTTP black-box harness
	// leaves these nil.
	Axioms *axiom.Registry
	Shaper *expression.Shaper
	Engine *replay.Engine

	// ProviderCalls reports the cumulative count of provider.Generate/
	// Stream invocations observed so far, when the harness is wired
	// in-process against an instrumented generator. Nil in black-box
	// mode, where the crisis-short-circuit case falls back to checking
	// response content only.
	ProviderCalls func() int64
}

// Status is the outcome of one Case.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusSkipped Status = "skipped"
)

// Result is one Case's outcome.
type Result struct {
	ID     string
	Name   string
	Status Status
	Detail string
}

// Case is one conformance check: a scenario (S1..S6) or a universal
// property. Cases are pure functions of (ctx, harness) — they report,
// never panic, on a harness missing an optional dependency.
type Case struct {
	ID   string
	Name string
	Run  func(ctx context.Context, h *Harness) Result
}

// Report is the outcome of running a Battery.
type Report struct {
	Results []Result
}

// Passed reports whether every case in the report passed (skips do not
// count as failures — they mean the harness didn't carry the optional
// dependency the case needed).
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if res.Status == StatusFail {
			return false
		}
	}
	return true
}

// Failures returns only the failing results.
func (r Report) Failures() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Status == StatusFail {
			out = append(out, res)
		}
	}
	return out
}

func pass(id, name, detail string) Result {
	return Result{ID: id, Name: name, Status: StatusPass, Detail: detail}
}

func fail(id, name, detail string) Result {
	return Result{ID: id, Name: name, Status: StatusFail, Detail: detail}
}

func skip(id, name, detail string) Result {
	return Result{ID: id, Name: name, Status: StatusSkipped, Detail: detail}
}
