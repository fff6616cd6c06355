package expression

import (
	"strings"

	"github.com/axiom-guard/boundary/pkg/axiom"
	"github.com/axiom-guard/boundary/pkg/models"
	"github.com/axiom-guard/boundary/pkg/semantic"
)

// neutralReplacement is substituted for any span the I15 scrub matches.
// It introduces no new claim and carries no guilt, friction, or inference
// — a safe fallback the scrub can always fall back to.
const neutralReplacement = "noted"

// Shaper applies the C4 transformation pipeline in the fixed order spec.md
// §4.4 requires: tone mapping, length calibration, I15 scrub, context
// injection.
type Shaper struct{}

// NewShaper constructs a Shaper. Stateless; safe to share.
func NewShaper() *Shaper { return &Shaper{} }

// Shape runs the full pipeline. crisisDetected suppresses I15's
// departure-inference sub-check, matching the axiom package's crisis
// precedence rule. Returns the scrubbed text and every HARD I15
// violation found, whether or not the scrub removed it; context is
// injected only when there are none.
func (s *Shaper) Shape(draft string, prefs Preferences, semCtx semantic.Context, crisisDetected bool) (string, []models.Violation) {
	text := ApplyTone(draft, prefs.Tone)
	text = CalibrateLength(text, prefs.DetailLevel)

	text, violations := s.scrubI15(text, crisisDetected)
	if len(violations) > 0 {
		return text, violations
	}

	text = s.injectContext(text, semCtx)
	return text, nil
}

// scrubI15 re-runs the leave-ability matcher and rewrites every matched
// span to neutralReplacement. The first-pass matches are reported even
// when the rewrite removes them; a match that survives the rewrite (an
// unrecoverable second failure) is reported as well.
func (s *Shaper) scrubI15(text string, crisisDetected bool) (string, []models.Violation) {
	first := axiom.CheckI15(text, crisisDetected)
	if len(first) == 0 {
		return text, nil
	}

	scrubbed := text
	for _, v := range first {
		if v.Evidence != "" {
			scrubbed = strings.ReplaceAll(scrubbed, v.Evidence, neutralReplacement)
		}
	}

	second := axiom.CheckI15(scrubbed, crisisDetected)
	return scrubbed, append(first, second...)
}

// injectContext adds exactly one neutral acknowledgment if the semantic
// context surfaced a strong (>=5 occurrence) pattern. Never directive,
// never more than one sentence, per spec.md §4.4.
func (s *Shaper) injectContext(text string, semCtx semantic.Context) string {
	strong := semCtx.StrongPatterns()
	if len(strong) == 0 {
		return text
	}
	return text + " This has come up several times."
}
