// Package pipeline implements the Pipeline Orchestrator: the state
// machine sequencing the Safety Scanner, Axiom Checker, Semantic
// Analyzer, Provider Adapter, and Expression Shaper, sealing an audit
// record on every run. Each stage is a strategy over a shared execution
// context; progressive writes happen as each step completes rather than
// being buffered to the end.
package pipeline

import "github.com/axiom-guard/boundary/pkg/models"

// Outcome is the three-way result every pipeline stage can produce.
type Outcome int

const (
	// Continue means the stage succeeded; Step.Value carries its output
	// and the orchestrator advances to the next stage.
	Continue Outcome = iota
	// Refuse means the stage detected a HARD/CRITICAL constitutional
	// violation (or an unrecoverable generation failure); Step.Response
	// is final and the orchestrator jumps straight to audit.
	Refuse
	// Crisis means the Safety Scanner detected a critical crisis signal;
	// Step.Response is the crisis response and the orchestrator jumps
	// straight to audit, bypassing every other stage.
	Crisis
)

// Step is the sum type `Continue | Refuse | Crisis` each stage function
// returns: exactly one of Value (on Continue) or Response (on Refuse/
// Crisis) is meaningful, selected by Outcome.
type Step[T any] struct {
	Outcome  Outcome
	Value    T
	Response models.Response
}

// ContinueWith wraps a successful stage result.
func ContinueWith[T any](v T) Step[T] {
	return Step[T]{Outcome: Continue, Value: v}
}

// RefuseWith short-circuits the pipeline with a refusal response.
func RefuseWith[T any](resp models.Response) Step[T] {
	return Step[T]{Outcome: Refuse, Response: resp}
}

// CrisisWith short-circuits the pipeline with a crisis response.
func CrisisWith[T any](resp models.Response) Step[T] {
	return Step[T]{Outcome: Crisis, Response: resp}
}

// Terminal reports whether this step ends the pipeline early.
func (s Step[T]) Terminal() bool {
	return s.Outcome != Continue
}
