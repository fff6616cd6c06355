package mirrorscore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-guard/boundary/pkg/models"
)

func lensTagSet(tags ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

func TestComputeTPV_NullBelowEpsilon(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tpv := ComputeTPV(nil, []string{"somatic", "cognitive"}, now)
	assert.True(t, tpv.IsNull())
}

func TestComputeTPV_WeightsRecentUsageMoreHeavily(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []LensUsage{
		{LensID: "somatic", Timestamp: now.Add(-1 * time.Hour), Weight: 5},
		{LensID: "cognitive", Timestamp: now.AddDate(0, 0, -60), Weight: 5},
	}
	tpv := ComputeTPV(events, []string{"somatic", "cognitive"}, now)
	require.False(t, tpv.IsNull())
	assert.Greater(t, tpv.Vector["somatic"], tpv.Vector["cognitive"])
}

func TestComputeTPV_UnknownLensFallsIntoUnlabeled(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []LensUsage{
		{LensID: "mystery-tool", Timestamp: now, Weight: 5},
	}
	tpv := ComputeTPV(events, []string{"somatic"}, now)
	require.False(t, tpv.IsNull())
	assert.Greater(t, tpv.Vector["UNLABELED"], 0.0)
}

func TestTPV_CosineDistanceNeutralWhenNull(t *testing.T) {
	null := TPV{}
	other := TPV{Vector: map[string]float64{"somatic": 1.0}}
	assert.Equal(t, 0.5, null.CosineDistance(other))
}

func TestTPV_CosineDistanceZeroForIdenticalVectors(t *testing.T) {
	a := TPV{Vector: map[string]float64{"somatic": 0.6, "cognitive": 0.4}}
	b := TPV{Vector: map[string]float64{"somatic": 0.6, "cognitive": 0.4}}
	assert.InDelta(t, 0.0, a.CosineDistance(b), 1e-9)
}

func TestCalculator_Score_RanksByTotalScoreDescending(t *testing.T) {
	calc := NewCalculator(models.PostureOpen, TPV{}, []string{"somatic", "cognitive"})

	candidates := []models.Candidate{
		{NodeID: "witness-1", InteractionStyle: models.StyleWitness, LensTags: lensTagSet("somatic")},
		{NodeID: "dialogue-1", InteractionStyle: models.StyleDialogue, LensTags: lensTagSet("cognitive")},
	}
	targets := []Target{{LensTags: lensTagSet("cognitive")}}

	scored := calc.Score(candidates, targets, models.StyleDialogue)
	require.Len(t, scored, 2)
	assert.Equal(t, "dialogue-1", scored[0].Candidate.NodeID, "requested style + target match should rank first")
	assert.GreaterOrEqual(t, scored[0].TotalScore, scored[1].TotalScore)
}

func TestCalculator_Novelty_PrefersNeverShown(t *testing.T) {
	calc := NewCalculator(models.PostureOpen, TPV{}, nil)
	calc.SeedHistory("seen-before")

	candidates := []models.Candidate{
		{NodeID: "seen-before", InteractionStyle: models.StyleWitness},
		{NodeID: "brand-new", InteractionStyle: models.StyleWitness},
	}
	scored := calc.Score(candidates, nil, "")

	var noveltyFor = map[string]float64{}
	for _, s := range scored {
		noveltyFor[s.Candidate.NodeID] = s.Novelty
	}
	assert.Equal(t, 1.0, noveltyFor["brand-new"])
	assert.Equal(t, 0.3, noveltyFor["seen-before"])
}

func TestCalculator_RiskPenaltyWeightsByEvidenceTier(t *testing.T) {
	calc := NewCalculator(models.PostureOverwhelmed, TPV{}, nil)

	risky := models.Candidate{
		NodeID: "risky", InteractionStyle: models.StyleWitness,
		Asymmetry: models.AsymmetryReport{Tier: models.EvidenceObserved, Score: 1.0},
	}
	safe := models.Candidate{
		NodeID: "safe", InteractionStyle: models.StyleWitness,
		Asymmetry: models.AsymmetryReport{Tier: models.EvidenceDeclared, Score: 1.0},
	}

	scored := calc.Score([]models.Candidate{risky, safe}, nil, "")
	var riskFor = map[string]float64{}
	for _, s := range scored {
		riskFor[s.Candidate.NodeID] = s.RiskPenalty
	}
	assert.Greater(t, riskFor["risky"], riskFor["safe"])
}

func TestCalculator_PinTPV_OverridesUntilReset(t *testing.T) {
	calc := NewCalculator(models.PostureOpen, TPV{}, []string{"somatic", "cognitive"})
	assert.True(t, calc.userTPV.IsNull())

	pinned := TPV{Vector: map[string]float64{"somatic": 1.0}}
	calc.PinTPV(pinned)
	assert.True(t, calc.userTPV.IsManualOverride)
	assert.False(t, calc.userTPV.IsNull())

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	calc.ResetTPV(nil, []string{"somatic", "cognitive"}, now)
	assert.True(t, calc.userTPV.IsNull())
	assert.False(t, calc.userTPV.IsManualOverride)
}
