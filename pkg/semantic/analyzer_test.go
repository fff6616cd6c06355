package semantic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze_EmotionPatternRequiresTwoOccurrences(t *testing.T) {
	now := time.Now()
	history := []Reflection{
		{Text: "I've been feeling really anxious about work.", At: now.Add(-48 * time.Hour)},
	}
	current := Reflection{Text: "Still anxious today, can't shake it.", At: now}

	ctx := NewAnalyzer().Analyze(current, history)

	found := false
	for _, p := range ctx.Patterns {
		if p.Type == PatternEmotion && p.Name == "anxiety" {
			found = true
			assert.Equal(t, 2, p.Occurrences)
			assert.Equal(t, "emerging", p.Strength())
		}
	}
	assert.True(t, found)
	assert.Equal(t, "anxiety", ctx.EmotionalBaseline)
}

func TestAnalyze_BehavioralTensionIntentionVsAction(t *testing.T) {
	now := time.Now()
	history := []Reflection{
		{Text: "I'm going to start journaling every morning.", At: now.Add(-72 * time.Hour)},
		{Text: "I didn't get around to it today.", At: now.Add(-48 * time.Hour)},
	}
	current := Reflection{Text: "Another quiet day.", At: now}

	ctx := NewAnalyzer().Analyze(current, history)

	foundBehavioral := false
	for _, tn := range ctx.Tensions {
		if tn.Type == TensionBehavioral {
			foundBehavioral = true
		}
	}
	assert.True(t, foundBehavioral)
}

func TestAnalyze_EmotionalOppositesTension(t *testing.T) {
	now := time.Now()
	history := []Reflection{
		{Text: "So anxious about the deadline.", At: now.Add(-96 * time.Hour)},
		{Text: "Feeling calm after the walk.", At: now.Add(-72 * time.Hour)},
	}
	current := Reflection{Text: "Anxious again, but trying to stay calm.", At: now}

	ctx := NewAnalyzer().Analyze(current, history)

	found := false
	for _, tn := range ctx.Tensions {
		if tn.Type == TensionEmotional {
			found = true
		}
	}
	assert.True(t, found)
}
