package mirrorscore

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/axiom-guard/boundary/pkg/models"
)

// diversityMinShown is the session_shown count threshold at or below which
// DiversityPressure stays at 0.
const diversityMinShown = 5

// Calculator ranks candidates for one user's current posture/TPV,
// holding the session- and history-shown sets DiversityPressure and
// Novelty need. Not safe for concurrent use — callers hold one per
// active session.
type Calculator struct {
	posture     models.Posture
	userTPV     TPV
	lensCatalog []string
	weights     map[models.Posture]Weights

	sessionShown map[string]struct{}
	historyShown map[string]struct{}
}

// NewCalculator builds a ranking calculator for the given posture and
// user TPV, using the fixed spec.md §4.9 weight table.
func NewCalculator(posture models.Posture, userTPV TPV, lensCatalog []string) *Calculator {
	return NewCalculatorWithWeights(posture, userTPV, lensCatalog, DefaultScoreWeights)
}

// NewCalculatorWithWeights builds a ranking calculator using an
// operator-supplied weight table (e.g. loaded by pkg/config), falling
// back to DefaultScoreWeights for any posture the table omits.
func NewCalculatorWithWeights(posture models.Posture, userTPV TPV, lensCatalog []string, weights map[models.Posture]Weights) *Calculator {
	return &Calculator{
		posture:      posture,
		userTPV:      userTPV,
		lensCatalog:  lensCatalog,
		weights:      weights,
		sessionShown: make(map[string]struct{}),
		historyShown: make(map[string]struct{}),
	}
}

// SeedHistory marks node IDs as previously shown (e.g. loaded from
// storage at session start) so Novelty reflects shows from prior
// sessions, not just this one.
func (c *Calculator) SeedHistory(nodeIDs ...string) {
	for _, id := range nodeIDs {
		c.historyShown[id] = struct{}{}
	}
}

// PinTPV overrides the calculator's working TPV with an explicit,
// user-chosen vector — the manual "pin" spec.md §4.9 allows on top of
// the derived softmax, e.g. when a user disagrees with their inferred
// tension profile. Marked IsManualOverride so it is never silently
// replaced by a subsequent ComputeTPV call elsewhere.
func (c *Calculator) PinTPV(tpv TPV) {
	tpv.IsManualOverride = true
	c.userTPV = tpv
}

// ResetTPV discards any pinned override and recomputes the working TPV
// from usage events, per spec.md §4.9's "User can ... reset (recompute)".
func (c *Calculator) ResetTPV(events []LensUsage, catalog []string, now time.Time) {
	c.userTPV = ComputeTPV(events, catalog, now)
}

// Score ranks candidates against targets, returning them sorted by
// total score descending.
func (c *Calculator) Score(candidates []models.Candidate, targets []Target, requestedStyle models.InteractionStyle) []ScoredCandidate {
	w, ok := c.weights[c.posture]
	if !ok {
		w = DefaultScoreWeights[c.posture]
	}

	scored := make([]ScoredCandidate, 0, len(candidates))
	for _, candidate := range candidates {
		pf := postureFit(c.posture, candidate.InteractionStyle, requestedStyle)
		tc := c.targetCoverage(candidate, targets)
		ta := c.tensionAdjacency(candidate)
		dp := c.diversityPressure(candidate)
		nov := c.novelty(candidate)
		rp := candidate.Asymmetry.ToRiskScore()

		total := w.PostureFit*pf + w.TargetCoverage*tc + w.TensionAdjacency*ta +
			w.Diversity*dp + w.Novelty*nov - w.Risk*rp

		scored = append(scored, ScoredCandidate{
			Candidate: candidate, TotalScore: total,
			PostureFit: pf, TargetCoverage: tc, TensionAdjacency: ta,
			DiversityPressure: dp, Novelty: nov, RiskPenalty: rp,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	return scored
}

// targetCoverage is the mean Jaccard overlap between the candidate's
// lens tags and each target's, intensity_match fixed at 1.0 absent a
// per-target intensity model (matching the "simplified" note in the
// grounding source).
func (c *Calculator) targetCoverage(candidate models.Candidate, targets []Target) float64 {
	if len(targets) == 0 {
		return 0.5
	}
	var total float64
	for _, target := range targets {
		total += jaccard(target.LensTags, candidate.LensTags)
	}
	coverage := total / float64(len(targets))
	if coverage > 1.0 {
		return 1.0
	}
	return coverage
}

// tensionAdjacency favors candidates neither too close nor too far from
// the user's TPV, per the posture-specific (mu, sigma) target.
func (c *Calculator) tensionAdjacency(candidate models.Candidate) float64 {
	candidateTPV := FromLensTags(candidate.LensTags, c.lensCatalog)
	distance := c.userTPV.CosineDistance(candidateTPV)
	param := adjacencyParams[c.posture]
	return math.Exp(-math.Abs(distance-param.mu) / param.sigma)
}

// diversityPressure favors candidates from underrepresented interaction
// styles once enough candidates have been shown this session.
func (c *Calculator) diversityPressure(candidate models.Candidate) float64 {
	if len(c.sessionShown) <= diversityMinShown {
		return 0.0
	}
	clusterID := string(candidate.InteractionStyle)
	clusterCount := 0
	for nodeID := range c.sessionShown {
		if strings.Contains(nodeID, clusterID) {
			clusterCount++
		}
	}
	pressure := 1.0 - float64(clusterCount)/float64(len(c.sessionShown))
	if pressure < 0 {
		return 0
	}
	return pressure
}

// novelty favors candidates never shown, with partial credit for ones
// shown in a past session but not this one.
func (c *Calculator) novelty(candidate models.Candidate) float64 {
	if _, everShown := c.historyShown[candidate.NodeID]; !everShown {
		return 1.0
	}
	if _, shownThisSession := c.sessionShown[candidate.NodeID]; !shownThisSession {
		return 0.3
	}
	return 0.0
}

// MarkShown records that candidate was shown, updating session state
// and (if persistent) the cross-session history.
func (c *Calculator) MarkShown(candidate models.Candidate, persistent bool) {
	c.sessionShown[candidate.NodeID] = struct{}{}
	if persistent {
		c.historyShown[candidate.NodeID] = struct{}{}
	}
}
