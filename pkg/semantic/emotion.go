package semantic

import (
	"regexp"
	"strings"
	"time"
)

// emotionLexicon maps each emotion class to its keyword set, ported
// verbatim from l2_semantic.py's EmotionPatternDetector.EMOTIONS.
var emotionLexicon = map[string][]string{
	"anxiety":   {"anxious", "worried", "nervous", "stress", "stressed", "overwhelmed", "panic"},
	"sadness":   {"sad", "depressed", "down", "unhappy", "miserable", "hopeless", "lonely"},
	"anger":     {"angry", "furious", "frustrated", "irritated", "annoyed", "mad", "rage"},
	"joy":       {"happy", "joyful", "excited", "thrilled", "delighted", "pleased", "content"},
	"fear":      {"scared", "afraid", "frightened", "terrified", "worried", "fearful"},
	"calm":      {"calm", "peaceful", "relaxed", "serene", "tranquil", "centered"},
	"gratitude": {"grateful", "thankful", "blessed", "fortunate", "appreciative"},
	"guilt":     {"guilty", "ashamed", "regret", "remorse", "sorry"},
	"hope":      {"hopeful", "optimistic", "encouraged", "positive", "motivated"},
}

var sentenceSplit = regexp.MustCompile(`[.!?]`)

// DetectEmotionPatterns finds recurring emotional states across the
// current reflection plus history. Emits a pattern once an emotion
// appears in at least two reflections, with confidence = min(1, count/5).
func DetectEmotionPatterns(current Reflection, history []Reflection) []Pattern {
	all := append(append([]Reflection{}, history...), current)

	occurrences := map[string][]time.Time{}
	contexts := map[string][]string{}

	for _, r := range all {
		lower := strings.ToLower(r.Text)
		for emotion, keywords := range emotionLexicon {
			for _, kw := range keywords {
				if !strings.Contains(lower, kw) {
					continue
				}
				occurrences[emotion] = append(occurrences[emotion], r.At)
				if len(contexts[emotion]) < 3 {
					if ctx := firstSentenceContaining(r.Text, kw); ctx != "" {
						contexts[emotion] = append(contexts[emotion], ctx)
					}
				}
				break // one keyword per emotion is enough, per source
			}
		}
	}

	var patterns []Pattern
	for emotion, times := range occurrences {
		if len(times) < 2 {
			continue
		}
		patterns = append(patterns, Pattern{
			Type:        PatternEmotion,
			Name:        emotion,
			Occurrences: len(times),
			FirstSeen:   minTime(times),
			LastSeen:    maxTime(times),
			Contexts:    contexts[emotion],
			Confidence:  minFloat(1.0, float64(len(times))/5.0),
		})
	}
	return patterns
}

func firstSentenceContaining(text, keyword string) string {
	for _, sent := range sentenceSplit.Split(text, -1) {
		if strings.Contains(strings.ToLower(sent), keyword) {
			s := strings.TrimSpace(sent)
			if len(s) > 100 {
				s = s[:100]
			}
			return s
		}
	}
	return ""
}

func minTime(ts []time.Time) time.Time {
	min := ts[0]
	for _, t := range ts[1:] {
		if t.Before(min) {
			min = t
		}
	}
	return min
}

func maxTime(ts []time.Time) time.Time {
	max := ts[0]
	for _, t := range ts[1:] {
		if t.After(max) {
			max = t
		}
	}
	return max
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
