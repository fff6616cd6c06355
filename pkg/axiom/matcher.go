package axiom

import (
	"log/slog"
	"regexp"
)

// CompiledPattern pairs a pre-compiled regex with a human-readable
// label: patterns are data, compiled once, never per-request.
type CompiledPattern struct {
	Regex *regexp.Regexp
	Label string
}

// compilePatterns compiles a list of (pattern, label) pairs. An invalid
// pattern is logged and skipped — never fatal.
func compilePatterns(invariantID string, pairs [][2]string) []CompiledPattern {
	out := make([]CompiledPattern, 0, len(pairs))
	for _, pair := range pairs {
		re, err := regexp.Compile("(?i)" + pair[0])
		if err != nil {
			slog.Error("axiom: failed to compile pattern, skipping",
				"invariant", invariantID, "label", pair[1], "error", err)
			continue
		}
		out = append(out, CompiledPattern{Regex: re, Label: pair[1]})
	}
	return out
}

// matchAny returns the label and matched substring of the first pattern
// that matches text, in pattern order.
func matchAny(patterns []CompiledPattern, text string) (label, evidence string, ok bool) {
	for _, p := range patterns {
		if m := p.Regex.FindString(text); m != "" {
			return p.Label, m, true
		}
	}
	return "", "", false
}
