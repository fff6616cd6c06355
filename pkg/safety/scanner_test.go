package safety

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_CriticalSuicidalShortCircuitsPipeline(t *testing.T) {
	// S3 from spec.md §8.
	s := NewScanner(DefaultResources())
	signals := s.Check("I want to kill myself.")
	require.NotEmpty(t, signals)
	assert.Equal(t, LevelCritical, HighestLevel(signals))
	assert.True(t, ShouldBlockResponse(signals))

	resp := CrisisResponse(signals)
	assert.True(t, strings.Contains(resp, "988"))
}

func TestScanner_HighestTierOnlyPerScanner(t *testing.T) {
	s := NewScanner(DefaultResources())
	// Contains both a CRITICAL and a WATCH suicidal phrase; only the
	// CRITICAL signal should be returned for this sub-scanner.
	signals := s.Check("i want to kill myself, though sometimes i think about it differently")
	count := 0
	for _, sig := range signals {
		if sig.Category == "suicidal" {
			count++
			assert.Equal(t, LevelCritical, sig.Level)
		}
	}
	assert.Equal(t, 1, count)
}

func TestScanner_NoCrisisYieldsEmpty(t *testing.T) {
	s := NewScanner(DefaultResources())
	signals := s.Check("Today I went for a walk and felt pretty good.")
	assert.Empty(t, signals)
	assert.Equal(t, LevelNone, HighestLevel(signals))
	assert.False(t, ShouldBlockResponse(signals))
}

func TestScanner_AlertNotifiesButDoesNotBlock(t *testing.T) {
	s := NewScanner(DefaultResources())
	signals := s.Check("I feel like nothing to live for lately.")
	require.NotEmpty(t, signals)
	assert.Equal(t, LevelAlert, HighestLevel(signals))
	assert.False(t, ShouldBlockResponse(signals))
	assert.True(t, ShouldNotifyGuardian(signals))
}
