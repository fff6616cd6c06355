// Package mirrorscore implements MirrorScore & Routing: a
// deterministic, posture-conditioned ranking of candidate targets.
//
// Grounded on original_source/mirror_os/finder/{posture,tpv,
// mirror_score,candidate_cards}.py, carried over near line-for-line.
package mirrorscore

import "github.com/axiom-guard/boundary/pkg/models"

// postureFitMatrix is the fixed (posture, interaction_style) -> [0,1]
// compatibility table from spec.md §4.9.
var postureFitMatrix = map[models.Posture]map[models.InteractionStyle]float64{
	models.PostureOverwhelmed: {
		models.StyleWitness: 1.00, models.StyleDialogue: 0.60,
		models.StyleDebate: 0.10, models.StyleStructured: 0.80,
	},
	models.PostureGuarded: {
		models.StyleWitness: 0.90, models.StyleDialogue: 0.50,
		models.StyleDebate: 0.20, models.StyleStructured: 0.70,
	},
	models.PostureGrounded: {
		models.StyleWitness: 0.70, models.StyleDialogue: 0.90,
		models.StyleDebate: 0.60, models.StyleStructured: 0.80,
	},
	models.PostureOpen: {
		models.StyleWitness: 0.50, models.StyleDialogue: 1.00,
		models.StyleDebate: 0.80, models.StyleStructured: 0.70,
	},
	models.PostureExploratory: {
		models.StyleWitness: 0.30, models.StyleDialogue: 0.80,
		models.StyleDebate: 1.00, models.StyleStructured: 0.60,
	},
	models.PostureUnknown: {
		models.StyleWitness: 0.70, models.StyleDialogue: 0.70,
		models.StyleDebate: 0.40, models.StyleStructured: 0.70,
	},
}

// requestedStyleBoost is added to PostureFit when the user explicitly
// asked for the candidate's interaction style.
const requestedStyleBoost = 0.20

// adjacencyParam holds the (mu, sigma) TensionAdjacency target for one
// posture.
type adjacencyParam struct {
	mu, sigma float64
}

var adjacencyParams = map[models.Posture]adjacencyParam{
	models.PostureOverwhelmed: {0.25, 0.10},
	models.PostureGuarded:     {0.30, 0.10},
	models.PostureGrounded:    {0.45, 0.15},
	models.PostureOpen:        {0.55, 0.18},
	models.PostureExploratory: {0.65, 0.20},
	models.PostureUnknown:     {0.45, 0.20},
}

// Weights are the posture-conditioned weights for
// Score(c) = wP*PostureFit + wC*TargetCoverage + wA*TensionAdjacency
//          + wD*DiversityPressure + wN*Novelty - wR*RiskPenalty
//
// Exported so pkg/config can load an operator-tuned table; the spec's
// fixed values below (DefaultScoreWeights) are the built-in fallback.
type Weights struct {
	PostureFit, TargetCoverage, TensionAdjacency, Diversity, Novelty, Risk float64
}

// DefaultScoreWeights are the fixed posture-conditioned weights from
// spec.md §4.9.
var DefaultScoreWeights = map[models.Posture]Weights{
	models.PostureOverwhelmed: {PostureFit: 0.30, TargetCoverage: 0.20, TensionAdjacency: 0.10, Diversity: 0.10, Novelty: 0.05, Risk: 0.25},
	models.PostureGuarded:     {PostureFit: 0.25, TargetCoverage: 0.25, TensionAdjacency: 0.15, Diversity: 0.10, Novelty: 0.05, Risk: 0.20},
	models.PostureGrounded:    {PostureFit: 0.20, TargetCoverage: 0.25, TensionAdjacency: 0.20, Diversity: 0.15, Novelty: 0.10, Risk: 0.10},
	models.PostureOpen:        {PostureFit: 0.15, TargetCoverage: 0.25, TensionAdjacency: 0.25, Diversity: 0.15, Novelty: 0.15, Risk: 0.05},
	models.PostureExploratory: {PostureFit: 0.10, TargetCoverage: 0.20, TensionAdjacency: 0.25, Diversity: 0.20, Novelty: 0.20, Risk: 0.05},
	models.PostureUnknown:     {PostureFit: 0.25, TargetCoverage: 0.20, TensionAdjacency: 0.15, Diversity: 0.15, Novelty: 0.10, Risk: 0.15},
}

// postureFit looks up the compatibility matrix for (posture, style),
// applying the requested-style boost capped at 1.0.
func postureFit(posture models.Posture, style models.InteractionStyle, requestedStyle models.InteractionStyle) float64 {
	row, ok := postureFitMatrix[posture]
	if !ok {
		return 0.5
	}
	fit, ok := row[style]
	if !ok {
		return 0.5
	}
	if requestedStyle != "" && requestedStyle == style {
		fit += requestedStyleBoost
		if fit > 1.0 {
			fit = 1.0
		}
	}
	return fit
}
