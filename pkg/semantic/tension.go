package semantic

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// opposingEmotions are fixed contradiction pairs, ported from
// l2_semantic.py's TensionMapper._detect_emotional_tensions.
var opposingEmotions = [][2]string{
	{"anxiety", "calm"},
	{"sadness", "joy"},
	{"anger", "calm"},
	{"fear", "hope"},
	{"guilt", "gratitude"},
}

var intentionPhrases = []string{"i should", "i need to", "i want to", "planning to", "going to"}
var negationPhrases = []string{"didn't", "haven't", "couldn't", "failed to", "forgot to"}

// MapTensions derives tensions from detected patterns and from a
// sliding-window scan of history for intention-vs-action gaps. The
// REDESIGN FLAG fix from spec.md's DESIGN NOTES is applied here: history
// is sorted by strictly ascending timestamp before the windowed scan,
// since the source trusted index order, which is not always time order.
func MapTensions(patterns []Pattern, history []Reflection) []Tension {
	sorted := make([]Reflection, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].At.Before(sorted[j].At) })

	var out []Tension
	out = append(out, detectEmotionalTensions(patterns)...)
	out = append(out, detectBehavioralTensions(sorted)...)
	return out
}

func detectEmotionalTensions(patterns []Pattern) []Tension {
	byName := map[string]Pattern{}
	for _, p := range patterns {
		if p.Type == PatternEmotion {
			byName[p.Name] = p
		}
	}

	var out []Tension
	for _, pair := range opposingEmotions {
		a, okA := byName[pair[0]]
		b, okB := byName[pair[1]]
		if !okA || !okB {
			continue
		}
		conf := a.Confidence
		if b.Confidence < conf {
			conf = b.Confidence
		}
		out = append(out, Tension{
			Type:        TensionEmotional,
			Description: fmt.Sprintf("Experiencing both %s and %s", pair[0], pair[1]),
			SideA:       fmt.Sprintf("%s (%dx)", pair[0], a.Occurrences),
			SideB:       fmt.Sprintf("%s (%dx)", pair[1], b.Occurrences),
			DetectedAt:  maxTime2(a.LastSeen, b.LastSeen),
			Confidence:  conf,
		})
	}
	return out
}

func maxTime2(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// detectBehavioralTensions scans ascending-ordered history for an
// intention phrase followed, within the next two reflections, by a
// negation phrase — "saying vs doing" contradictions.
func detectBehavioralTensions(sorted []Reflection) []Tension {
	var out []Tension
	for i, r := range sorted {
		lower := strings.ToLower(r.Text)
		hasIntention := containsAnyPhrase(lower, intentionPhrases)
		if !hasIntention {
			continue
		}
		end := i + 3
		if end > len(sorted) {
			end = len(sorted)
		}
		for _, future := range sorted[i+1 : end] {
			if containsAnyPhrase(strings.ToLower(future.Text), negationPhrases) {
				out = append(out, Tension{
					Type:        TensionBehavioral,
					Description: "Intention vs action gap",
					SideA:       "Expressed intention to act",
					SideB:       "Reported difficulty following through",
					DetectedAt:  future.At,
					Confidence:  0.6,
				})
				break
			}
		}
	}
	return out
}

func containsAnyPhrase(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}
