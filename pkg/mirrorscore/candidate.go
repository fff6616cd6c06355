package mirrorscore

import "github.com/axiom-guard/boundary/pkg/models"

// Target is a Finder Target the user is being routed toward — what the
// current session is trying to cover, expressed as lens tags.
type Target struct {
	LensTags map[string]struct{}
}

// ScoredCandidate pairs a Candidate with its total score and the
// per-component breakdown, so callers (and audits) can inspect how the
// ranking was produced.
type ScoredCandidate struct {
	Candidate        models.Candidate
	TotalScore       float64
	PostureFit       float64
	TargetCoverage   float64
	TensionAdjacency float64
	DiversityPressure float64
	Novelty          float64
	RiskPenalty      float64
}

func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
