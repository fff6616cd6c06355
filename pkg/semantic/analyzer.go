package semantic

import (
	"log/slog"
	"sort"
)

// detectorFunc is the shape shared by the three pattern detectors.
type detectorFunc func(current Reflection, history []Reflection) []Pattern

// Analyzer runs the three independent detectors and the tension mapper.
// Stateless; holds no mutable fields, so a single Analyzer value is safe
// to share across requests, per spec.md §4.3 ("provider-agnostic").
type Analyzer struct {
	detectors []detectorFunc
}

// NewAnalyzer builds the standard L2 semantic layer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{detectors: []detectorFunc{
		DetectEmotionPatterns,
		DetectTopicPatterns,
		DetectBehaviorPatterns,
	}}
}

// Analyze produces a Context from the current reflection and its
// history. A detector's failure is recovered and yields an empty result
// rather than aborting the whole analysis, per spec.md §4.3: "A
// detector's failure is caught and yields an empty list (never aborts)."
func (a *Analyzer) Analyze(current Reflection, history []Reflection) Context {
	var allPatterns []Pattern
	for _, detect := range a.detectors {
		allPatterns = append(allPatterns, runDetectorSafely(detect, current, history)...)
	}

	tensions := MapTensions(allPatterns, history)

	var topics []Pattern
	for _, p := range allPatterns {
		if p.Type == PatternTopic {
			topics = append(topics, p)
		}
	}
	sort.Slice(topics, func(i, j int) bool { return topics[i].Occurrences > topics[j].Occurrences })
	var themes []string
	for i, p := range topics {
		if i >= 5 {
			break
		}
		themes = append(themes, p.Name)
	}

	var emotions []Pattern
	for _, p := range allPatterns {
		if p.Type == PatternEmotion {
			emotions = append(emotions, p)
		}
	}
	sort.Slice(emotions, func(i, j int) bool { return emotions[i].Occurrences > emotions[j].Occurrences })
	baseline := ""
	if len(emotions) > 0 {
		baseline = emotions[0].Name
	}

	return Context{
		Patterns:          allPatterns,
		Tensions:          tensions,
		RecurringThemes:   themes,
		EmotionalBaseline: baseline,
		Metadata: map[string]any{
			"total_reflections": len(history) + 1,
			"patterns_detected": len(allPatterns),
			"tensions_detected": len(tensions),
		},
	}
}

func runDetectorSafely(detect detectorFunc, current Reflection, history []Reflection) (result []Pattern) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("semantic: detector panicked, yielding empty result", "error", r)
			result = nil
		}
	}()
	return detect(current, history)
}
