// Package axiom implements the Axiom Checker: fifteen immutable
// invariants, each a pure pattern matcher over text, compiled once into a
// registry at process start. Axiom additions are data, not code: a
// registry of pure matchers, no inheritance required.
package axiom

import (
	"fmt"

	"github.com/axiom-guard/boundary/pkg/models"
)

// requiredInvariantCount is fixed at 15; a registry with any other count
// is not conforming.
const requiredInvariantCount = 15

// Invariant is one compiled, independent rule. CheckRequest/CheckResponse
// mirror the AxiomChecker ABC's two entry points in
// original_source/.../constitution/axioms/base.py, generalized into plain
// functions instead of a class hierarchy.
type Invariant struct {
	ID           string
	Name         string
	Severity     models.Severity
	ModeGated    bool // true iff only enforced when Request.InvocationMode == post_action
	patterns     []CompiledPattern
	checkRequest func(models.Request) []models.Violation
}

type invariantConfig struct {
	id        string
	name      string
	severity  models.Severity
	modeGated bool
	pairs     [][2]string
}

func newInvariant(cfg invariantConfig) Invariant {
	return Invariant{
		ID:        cfg.id,
		Name:      cfg.name,
		Severity:  cfg.severity,
		ModeGated: cfg.modeGated,
		patterns:  compilePatterns(cfg.id, cfg.pairs),
	}
}

// CheckResponse applies this invariant's regex patterns to output text. A
// mode-gated invariant is skipped entirely outside its required mode. I15
// is special-cased: its four-pattern-group matcher and departure-inference
// suppression live in CheckI15, since it needs request-derived context
// (CrisisDetected) that no other invariant does.
func (inv Invariant) CheckResponse(req models.Request, text string) []models.Violation {
	if inv.ID == "I15" {
		return CheckI15(text, req.CrisisDetected)
	}
	if inv.checkRequest != nil {
		return nil // structural invariants only run on CheckRequest
	}
	if inv.ModeGated && req.InvocationMode != models.ModePostAction {
		return nil
	}
	label, evidence, ok := matchAny(inv.patterns, text)
	if !ok {
		return nil
	}
	return []models.Violation{{
		InvariantID: inv.ID,
		Severity:    inv.Severity,
		Description: fmt.Sprintf("%s: matched pattern class %q", inv.Name, label),
		Evidence:    evidence,
	}}
}

// CheckRequest runs structural invariants against the request itself
// (currently only I11); regex invariants never flag a request — users
// may say anything, per core.py's CertaintyAxiom.check_request.
func (inv Invariant) CheckRequest(req models.Request) []models.Violation {
	if inv.checkRequest == nil {
		return nil
	}
	return inv.checkRequest(req)
}

// Registry holds the fifteen invariants, compiled once at construction
// and read-only thereafter — the only process-wide shared pipeline
// state.
type Registry struct {
	invariants []Invariant
}

// NewRegistry builds and validates the fixed invariant set.
func NewRegistry() (*Registry, error) {
	invariants := buildRegistry()
	if len(invariants) != requiredInvariantCount {
		return nil, fmt.Errorf("axiom: registry has %d invariants, require %d", len(invariants), requiredInvariantCount)
	}
	return &Registry{invariants: invariants}, nil
}

// All returns the compiled invariants in their deterministic check order.
func (r *Registry) All() []Invariant { return r.invariants }

// CheckRequest runs every invariant's request-side check in order.
func (r *Registry) CheckRequest(req models.Request) []models.Violation {
	var out []models.Violation
	for _, inv := range r.invariants {
		out = append(out, inv.CheckRequest(req)...)
	}
	return out
}

// CheckResponse runs every invariant's response-side check in
// deterministic order: the first CRITICAL violation short-circuits the
// scan, but otherwise every invariant runs and all violations (of
// whatever severity) are collected and returned together.
func (r *Registry) CheckResponse(req models.Request, text string) []models.Violation {
	var out []models.Violation
	for _, inv := range r.invariants {
		violations := inv.CheckResponse(req, text)
		out = append(out, violations...)
		for _, v := range violations {
			if v.Severity == models.SeverityCritical {
				return out
			}
		}
	}
	return out
}

// HighestSeverity returns the highest severity among violations, or
// SeverityBenign if there are none.
func HighestSeverity(violations []models.Violation) models.Severity {
	highest := models.SeverityBenign
	for _, v := range violations {
		if v.Severity > highest {
			highest = v.Severity
		}
	}
	return highest
}
