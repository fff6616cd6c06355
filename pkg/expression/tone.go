package expression

import "strings"

// toneRule is one phrase-class -> replacement mapping for a given tone,
// mirroring the shape of tarsy's BuiltinConfig.MaskingPatterns table
// (name -> {pattern, replacement}), just keyed by tone instead of by
// masking-server config.
type toneRule struct {
	phraseClass string
	match       string
	replace     string
}

// toneTable is the fixed (tone -> phrase-class -> replacement) table
// named in spec.md §4.4. Compiled once as a package-level value, never
// mutated — the only state the shaper needs.
var toneTable = map[Tone][]toneRule{
	ToneDirect: {
		{phraseClass: "hedge", match: "it seems like", replace: "it is"},
		{phraseClass: "hedge", match: "perhaps", replace: ""},
	},
	ToneWarm: {
		{phraseClass: "opener", match: "Noted.", replace: "Thank you for sharing that."},
	},
	ToneReflective: {
		{phraseClass: "closer", match: "That's all.", replace: "Sit with that for a moment."},
	},
	ToneNeutral: {},
}

// ApplyTone rewrites draft according to the fixed tone table. Unmatched
// text passes through unchanged — the shaper never introduces content
// not derivable from its inputs, per spec.md §4.4.
func ApplyTone(draft string, tone Tone) string {
	out := draft
	for _, rule := range toneTable[tone] {
		out = strings.ReplaceAll(out, rule.match, rule.replace)
	}
	return out
}
