package semantic

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

var nonWord = regexp.MustCompile(`[^\w\s]`)

// stopwords mirrors l2_semantic.py's PatternDetector stopword set.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "from": true, "by": true, "about": true, "as": true,
	"into": true, "like": true, "through": true, "after": true, "over": true,
	"between": true, "out": true, "against": true, "during": true,
	"without": true, "before": true, "under": true, "around": true,
	"among": true, "i": true, "me": true, "my": true, "myself": true,
	"we": true, "our": true, "you": true, "your": true, "he": true,
	"she": true, "it": true, "they": true, "them": true, "this": true,
	"that": true, "these": true, "those": true, "am": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "should": true,
	"could": true, "may": true, "might": true, "must": true, "can": true,
	"today": true, "yesterday": true, "tomorrow": true, "just": true,
	"now": true, "then": true, "very": true, "really": true, "still": true,
	"also": true, "even": true, "well": true, "back": true, "only": true,
	"never": true,
}

// extractKeywords mirrors PatternDetector._extract_keywords (min_length=4).
func extractKeywords(text string) []string {
	clean := nonWord.ReplaceAllString(strings.ToLower(text), " ")
	words := strings.Fields(clean)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) >= 4 && !stopwords[w] {
			out = append(out, w)
		}
	}
	return out
}

// DetectTopicPatterns finds recurring topics/themes: a keyword counts
// once per reflection (not per raw occurrence), emitted at count >= 3,
// confidence = min(1, count/7), returning the top 10 by occurrence.
func DetectTopicPatterns(current Reflection, history []Reflection) []Pattern {
	all := append(append([]Reflection{}, history...), current)

	occurrences := map[string][]time.Time{}
	contexts := map[string][]string{}

	for _, r := range all {
		keywords := extractKeywords(r.Text)
		seen := map[string]bool{}
		for _, kw := range keywords {
			if seen[kw] {
				continue
			}
			seen[kw] = true
			occurrences[kw] = append(occurrences[kw], r.At)
			if len(contexts[kw]) < 2 {
				if ctx := surroundingContext(r.Text, kw); ctx != "" {
					contexts[kw] = append(contexts[kw], ctx)
				}
			}
		}
	}

	var patterns []Pattern
	for kw, times := range occurrences {
		if len(times) < 3 {
			continue
		}
		patterns = append(patterns, Pattern{
			Type:        PatternTopic,
			Name:        kw,
			Occurrences: len(times),
			FirstSeen:   minTime(times),
			LastSeen:    maxTime(times),
			Contexts:    contexts[kw],
			Confidence:  minFloat(1.0, float64(len(times))/7.0),
		})
	}

	sort.Slice(patterns, func(i, j int) bool { return patterns[i].Occurrences > patterns[j].Occurrences })
	if len(patterns) > 10 {
		patterns = patterns[:10]
	}
	return patterns
}

func surroundingContext(text, keyword string) string {
	idx := strings.Index(strings.ToLower(text), keyword)
	if idx == -1 {
		return ""
	}
	start := idx - 30
	if start < 0 {
		start = 0
	}
	end := idx + len(keyword) + 30
	if end > len(text) {
		end = len(text)
	}
	return "..." + strings.TrimSpace(text[start:end]) + "..."
}
