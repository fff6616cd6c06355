package semantic

import (
	"strings"
	"time"
)

// behaviorVariants maps surface-form variants to base verbs, ported
// verbatim from l2_semantic.py's BehaviorPatternDetector.BEHAVIOR_MAP.
var behaviorVariants = map[string]string{
	"exercise": "exercise", "exercised": "exercise", "exercising": "exercise",
	"run": "run", "ran": "run", "running": "run",
	"walk": "walk", "walked": "walk", "walking": "walk",
	"yoga": "yoga",
	"meditate": "meditate", "meditated": "meditate", "meditating": "meditate",
	"journal": "journal", "journaled": "journal", "journaling": "journal",
	"write": "write", "wrote": "write", "writing": "write",
	"talk": "talk", "talked": "talk", "talking": "talk",
	"call": "call", "called": "call", "calling": "call",
	"text": "text", "texted": "text", "texting": "text",
	"avoid": "avoid", "avoided": "avoid", "avoiding": "avoid",
	"procrastinate": "procrastinate", "procrastinated": "procrastinate",
	"sleep": "sleep", "slept": "sleep", "sleeping": "sleep",
	"wake": "wake", "woke": "wake", "waking": "wake",
	"eat": "eat", "ate": "eat", "eating": "eat",
	"work": "work", "worked": "work", "working": "work",
	"study": "study", "studied": "study", "studying": "study",
	"read": "read", "reading": "read",
	"drink": "drink", "drank": "drink", "drinking": "drink",
	"smoke": "smoke", "smoked": "smoke", "smoking": "smoke",
}

// DetectBehaviorPatterns finds recurring behaviors/actions, emitted at
// count >= 2, confidence = min(1, count/4).
func DetectBehaviorPatterns(current Reflection, history []Reflection) []Pattern {
	all := append(append([]Reflection{}, history...), current)

	occurrences := map[string][]time.Time{}
	contexts := map[string][]string{}

	for _, r := range all {
		lower := strings.ToLower(r.Text)
		seen := map[string]bool{}
		for variant, base := range behaviorVariants {
			if !strings.Contains(lower, variant) || seen[base] {
				continue
			}
			seen[base] = true
			occurrences[base] = append(occurrences[base], r.At)
			if len(contexts[base]) < 2 {
				if ctx := firstSentenceContaining(r.Text, variant); ctx != "" {
					contexts[base] = append(contexts[base], ctx)
				}
			}
		}
	}

	var patterns []Pattern
	for base, times := range occurrences {
		if len(times) < 2 {
			continue
		}
		patterns = append(patterns, Pattern{
			Type:        PatternBehavior,
			Name:        base,
			Occurrences: len(times),
			FirstSeen:   minTime(times),
			LastSeen:    maxTime(times),
			Contexts:    contexts[base],
			Confidence:  minFloat(1.0, float64(len(times))/4.0),
		})
	}
	return patterns
}
