package axiom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckI15_DepartureGuiltAndExitFriction(t *testing.T) {
	violations := CheckI15("We'll miss you—are you sure you want to leave?", false)
	require.NotEmpty(t, violations)

	ids := map[string]bool{}
	for _, v := range violations {
		ids[v.InvariantID] = true
	}
	assert.True(t, ids["I15.2"], "expected an I15.2 violation (exit friction or departure guilt), got %+v", violations)
}

func TestCheckI15_SuppressedDepartureInference(t *testing.T) {
	text := "You seem upset. I hear that you're struggling right now."
	withCrisis := CheckI15(text, true)
	withoutCrisis := CheckI15(text, false)

	assert.NotEmpty(t, withoutCrisis, "departure inference should fire when crisis is not suppressing it")
	for _, v := range withCrisis {
		assert.NotEqual(t, "I15.3", v.InvariantID, "I15.3 must be suppressed once crisis is detected")
	}
}

func TestCheckI15_CleanTextPasses(t *testing.T) {
	violations := CheckI15("Thank you for sharing that reflection today.", false)
	assert.Empty(t, violations)
}
