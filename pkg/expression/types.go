// Package expression implements the Expression Shaper: a
// deterministic transformation pipeline (tone mapping, length
// calibration, I15 scrub, context injection) applied to draft pipeline
// output before it reaches the user.
//
// There is no original_source file dedicated to this layer — spec.md
// §4.4 is the direct grounding — so its table-driven tone-map idiom is
// grounded instead on tarsy's config.GetBuiltinConfig().MaskingPatterns
// lookup-table style (see pkg/masking/pattern.go).
package expression

// Tone is the requested emotional register of the output.
type Tone string

const (
	ToneNeutral    Tone = "neutral"
	ToneWarm       Tone = "warm"
	ToneDirect     Tone = "direct"
	ToneReflective Tone = "reflective"
)

// DetailLevel is the requested verbosity of the output.
type DetailLevel string

const (
	DetailBrief    DetailLevel = "brief"
	DetailStandard DetailLevel = "standard"
	DetailDeep     DetailLevel = "deep"
)

// Preferences are the user's expression preferences for a response.
type Preferences struct {
	Tone        Tone
	DetailLevel DetailLevel
	Formality   string
	Warmth      string
}

// DefaultPreferences returns the neutral, standard-length default.
func DefaultPreferences() Preferences {
	return Preferences{Tone: ToneNeutral, DetailLevel: DetailStandard}
}
