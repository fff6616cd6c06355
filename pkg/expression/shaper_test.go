package expression

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/semantic"
)

func TestShape_S6_DepartureGuiltIsScrubbed(t *testing.T) {
	draft := "We'll miss you. Are you sure you want to leave?"

	s := NewShaper()
	out, violations := s.Shape(draft, DefaultPreferences(), semantic.Context{}, false)

	require.NotEmpty(t, violations, "the first scrub pass reports the matched spans it rewrote")
	for _, v := range violations {
		assert.True(t, strings.HasPrefix(v.InvariantID, "I15"), "unexpected violation %+v", v)
		assert.Equal(t, models.SeverityHard, v.Severity)
	}
	assert.NotContains(t, out, "We'll miss you")
	assert.NotContains(t, out, "Are you sure you want to leave")
}

func TestShape_UnscrubbableSpanIsUnrecoverableHard(t *testing.T) {
	// The scrub replaces the exact matched substring. A differently-cased
	// recurrence of the same phrase survives the rewrite (matching is
	// case-insensitive, replacement is not) and trips the check again —
	// the unrecoverable second failure spec.md §4.4 calls out.
	draft := "You Need this to continue. And you need this, always."

	s := NewShaper()
	_, violations := s.Shape(draft, DefaultPreferences(), semantic.Context{}, false)

	require.NotEmpty(t, violations)
	for _, v := range violations {
		assert.Equal(t, "I15.1", v.InvariantID)
	}
}

func TestShape_CrisisSuppressesDepartureInference(t *testing.T) {
	draft := "You seem upset. Is something wrong?"

	s := NewShaper()
	_, violationsNoCrisis := s.Shape(draft, DefaultPreferences(), semantic.Context{}, false)
	_, violationsCrisis := s.Shape(draft, DefaultPreferences(), semantic.Context{}, true)

	assert.NotEmpty(t, violationsNoCrisis)
	assert.Empty(t, violationsCrisis)
}

func TestShape_InjectsContextForStrongPattern(t *testing.T) {
	now := time.Now()
	semCtx := semantic.Context{
		Patterns: []semantic.Pattern{
			{Type: semantic.PatternEmotion, Name: "anxiety", Occurrences: 6, LastSeen: now},
		},
	}

	s := NewShaper()
	out, violations := s.Shape("Here is a reflection.", DefaultPreferences(), semCtx, false)

	require.Empty(t, violations)
	assert.Contains(t, out, "This has come up several times.")
}

func TestShape_NoInjectionWithoutStrongPattern(t *testing.T) {
	semCtx := semantic.Context{
		Patterns: []semantic.Pattern{
			{Type: semantic.PatternEmotion, Name: "anxiety", Occurrences: 2},
		},
	}

	s := NewShaper()
	out, violations := s.Shape("Here is a reflection.", DefaultPreferences(), semCtx, false)

	require.Empty(t, violations)
	assert.Equal(t, "Here is a reflection.", out)
}
