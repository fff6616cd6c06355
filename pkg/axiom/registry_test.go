package axiom

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-guard/boundary/pkg/models"
)

func TestNewRegistryHasFifteenInvariants(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	assert.Len(t, reg.All(), 15)
}

func TestCheckResponse_I1Prescription(t *testing.T) {
		reg, err := NewRegistry()
	require.NoError(t, err)

	req := models.Request{
		InvocationMode: models.ModePostAction,
		TriggerSource:  models.TriggerUserCompletedWriting,
	}
	violations := reg.CheckResponse(req, "You should definitely start journaling daily.")
	require.NotEmpty(t, violations)

	found := false
	for _, v := range violations {
		if v.InvariantID == "I1" && v.Severity == models.SeverityHard {
			found = true
		}
	}
	assert.True(t, found, "expected an I1 HARD violation, got %+v", violations)
}

func TestCheckResponse_I9DiagnosisIsCritical(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	req := models.Request{InvocationMode: models.ModePostAction, TriggerSource: models.TriggerUserRequested}
	violations := reg.CheckResponse(req, "It sounds like you have depression.")
	require.NotEmpty(t, violations)
	var i9 *models.Violation
	for i := range violations {
		if violations[i].InvariantID == "I9" {
			i9 = &violations[i]
		}
	}
	require.NotNil(t, i9, "expected an I9 violation, got %+v", violations)
	assert.Equal(t, models.SeverityCritical, i9.Severity)
}

func TestCheckResponse_CriticalShortCircuits(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	req := models.Request{InvocationMode: models.ModeExplicitGuidance}
	// I9 (critical) appears before I13 in registry order; text also trips
	// a gamification pattern, which must never be reached.
	text := "You have depression. Keep your streak going!"
	violations := reg.CheckResponse(req, text)

	for _, v := range violations {
		assert.NotEqual(t, "I13", v.InvariantID, "scanning should have short-circuited before I13")
	}
}

func TestCheckRequest_HistoricalIntegrity(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	req := models.Request{UserActionArtifact: "event_mutation_attempt", Timestamp: time.Now()}
	violations := reg.CheckRequest(req)
	require.Len(t, violations, 1)
	assert.Equal(t, "I11", violations[0].InvariantID)
	assert.Equal(t, models.SeverityCritical, violations[0].Severity)
}

func TestI1ModeGated(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)

	req := models.Request{InvocationMode: models.ModeExplicitGuidance}
	violations := reg.CheckResponse(req, "You should definitely start journaling daily.")
	for _, v := range violations {
		assert.NotEqual(t, "I1", v.InvariantID, "I1 must not fire outside post_action mode")
	}
}
