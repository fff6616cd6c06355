package expression

import "strings"

// lengthTarget is a (min, max) word-count band for a detail level. Min is
// a hard floor (never truncate below it); max is a soft ceiling (only
// trimmed at sentence boundaries, never mid-sentence).
type lengthTarget struct {
	min, max int
}

var lengthTargets = map[DetailLevel]lengthTarget{
	DetailBrief:    {min: 10, max: 40},
	DetailStandard: {min: 20, max: 90},
	DetailDeep:     {min: 40, max: 200},
}

// CalibrateLength trims draft toward the detail level's soft maximum,
// cutting only at sentence boundaries, and never drops below the hard
// minimum word count (it leaves short drafts untouched rather than
// padding them with invented content).
func CalibrateLength(draft string, level DetailLevel) string {
	target, ok := lengthTargets[level]
	if !ok {
		target = lengthTargets[DetailStandard]
	}

	words := strings.Fields(draft)
	if len(words) <= target.max {
		return draft
	}

	sentences := splitSentences(draft)
	var kept []string
	count := 0
	for _, s := range sentences {
		n := len(strings.Fields(s))
		if count > 0 && count+n > target.max {
			break
		}
		kept = append(kept, s)
		count += n
	}
	if count < target.min && len(sentences) > 0 {
		// Trimming would fall below the hard floor; keep the original.
		return draft
	}
	return strings.Join(kept, " ")
}

func splitSentences(text string) []string {
	var out []string
	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			out = append(out, strings.TrimSpace(text[start:i+1]))
			start = i + 1
		}
	}
	if start < len(text) {
		if rest := strings.TrimSpace(text[start:]); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}
