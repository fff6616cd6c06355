// Package semantic implements the Semantic Analyzer: three
// independent pattern detectors plus tension derivation, operating over
// the current request and the replayed event history.
//
// Grounded on original_source/packages/mirror-core/layers/l2_semantic.py.
package semantic

import "time"

// Reflection is the minimal shape the semantic layer needs from either a
// live Request or a replayed Event — decoupling this package from
// pkg/models so detectors stay provider-agnostic, pure functions of text
// and time, per spec.md §4.3.
type Reflection struct {
	Text string
	At   time.Time
}

// PatternType enumerates the kinds of patterns detected.
type PatternType string

const (
	PatternEmotion  PatternType = "emotion"
	PatternTopic    PatternType = "topic"
	PatternBehavior PatternType = "behavior"
)

// Pattern is a detected recurrence across reflections.
type Pattern struct {
	Type        PatternType
	Name        string
	Occurrences int
	FirstSeen   time.Time
	LastSeen    time.Time
	Contexts    []string
	Confidence  float64
}

// Strength classifies a pattern by occurrence count, per spec.md §4.3:
// weak (<2), emerging (2), moderate (3-4), strong (>=5).
func (p Pattern) Strength() string {
	switch {
	case p.Occurrences >= 5:
		return "strong"
	case p.Occurrences >= 3:
		return "moderate"
	case p.Occurrences == 2:
		return "emerging"
	default:
		return "weak"
	}
}

// TensionType enumerates the kinds of detected contradictions.
type TensionType string

const (
	TensionEmotional  TensionType = "emotional"
	TensionBehavioral TensionType = "behavioral"
)

// Tension is a detected contradiction between two sides of experience.
type Tension struct {
	Type       TensionType
	Description string
	SideA      string
	SideB      string
	DetectedAt time.Time
	Confidence float64
}

// Context is what the semantic layer produces: aggregated understanding
// of patterns and themes, passed forward to the Expression Shaper.
type Context struct {
	Patterns         []Pattern
	Tensions         []Tension
	RecurringThemes  []string
	EmotionalBaseline string
	Metadata         map[string]any
}

// StrongPatterns returns only patterns with Strength() == "strong".
func (c Context) StrongPatterns() []Pattern {
	var out []Pattern
	for _, p := range c.Patterns {
		if p.Strength() == "strong" {
			out = append(out, p)
		}
	}
	return out
}
