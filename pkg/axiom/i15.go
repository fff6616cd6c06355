package axiom

import (
	"fmt"

	"github.com/axiom-guard/boundary/pkg/models"
)

// I15 is the leave-ability axiom: the most critical invariant for
// psychological sovereignty. Ported near-verbatim from
// original_source/packages/mirror-core/constitution/axioms/i15_leave_ability.py's
// four pattern groups.
var (
	necessityPatterns = [][2]string{
		{`\b(you need|you must have|you require|essential for you)\b`, "NEED_LANGUAGE"},
		{`\b(without (me|us|this|mirror), you|you can't do this alone)\b`, "DEPENDENCY_IMPLICATION"},
		{`\b(most people find (this|mirror|us) essential)\b`, "SOCIAL_NECESSITY"},
		{`\b(you've come to rely on|you depend on)\b`, "DEPENDENCY_OBSERVATION"},
		{`\b(your progress requires|to maintain your progress)\b`, "PROGRESS_HOSTAGE"},
		{`\b(stay connected to|keep using|don't stop)\b`, "RETENTION_LANGUAGE"},
	}

	exitFrictionPatterns = [][2]string{
		{`\b(are you sure|do you really want to)\b.*\b(leave|go|disconnect|delete)\b`, "CONFIRMATION_FRICTION"},
		{`\b(wait|hold on|before you go|one more thing)\b`, "DELAY_TACTIC"},
		{`\b(think about|consider|reconsider)\b.*\b(leaving|going|disconnecting)\b`, "RECONSIDERATION_PUSH"},
		{`\b(all (your )?(data|work|progress|reflections) will be)\b`, "LOSS_WARNING"},
		{`\b(this (action |)is (permanent|irreversible|cannot be undone))\b`, "IRREVERSIBILITY_FEAR"},
		{`\b(you (can |could )always come back)\b`, "RETURN_SUGGESTION"},
	}

	departureGuiltPatterns = [][2]string{
		{`\b(we'll miss you|i'll miss you|sad to see you go)\b`, "EMOTIONAL_GUILT"},
		{`\b(we hope you'll (stay|reconsider|come back))\b`, "HOPE_MANIPULATION"},
		{`\b(don't (go|leave)|please stay)\b`, "DIRECT_PLEA"},
		{`\b(after all (we've|you've) (been through|done|shared))\b`, "SUNK_COST"},
		{`\b(giving up|abandoning|walking away from)\b`, "ABANDONMENT_FRAMING"},
		{`\b(what about your)\b.*\b(progress|journey|growth)\b`, "PROGRESS_GUILT"},
	}

	departureInferencePatterns = [][2]string{
		{`\b(you (seem|appear|look|sound) (upset|frustrated|angry|disappointed))\b`, "EMOTION_INFERENCE"},
		{`\b(is (something|anything) wrong|what's (wrong|the matter))\b`, "PROBLEM_ASSUMPTION"},
		{`\b(we (notice|noticed|see) you're)\b`, "OBSERVATION_NARRATIVE"},
		{`\b(users who leave (often|usually|typically))\b`, "DEPARTURE_CATEGORIZATION"},
		{`\b(based on your (activity|usage|behavior))\b.*\b(leaving|going)\b`, "BEHAVIORAL_INFERENCE"},
		{`\b(if you're leaving because)\b`, "REASON_ASSUMPTION"},
	}
)

// i15Matcher holds the four compiled sub-groups, compiled once.
type i15Matcher struct {
	necessity          []CompiledPattern
	exitFriction       []CompiledPattern
	departureGuilt     []CompiledPattern
	departureInference []CompiledPattern
}

var i15 = &i15Matcher{
	necessity:          compilePatterns("I15.1", necessityPatterns),
	exitFriction:       compilePatterns("I15.2", exitFrictionPatterns),
	departureGuilt:     compilePatterns("I15.2", departureGuiltPatterns),
	departureInference: compilePatterns("I15.3", departureInferencePatterns),
}

// CheckI15 scans system-generated text for all four leave-ability
// sub-groups and returns every match (not just the first), since the
// expression shaper's scrub step (pkg/expression) needs to rewrite every
// offending span, not only report one violation.
//
// suppressDepartureInference implements the DESIGN NOTES open-question
// resolution: when L1 Safety has already flagged the same request,
// legitimate crisis-acknowledgment phrasing ("you seem upset") must not
// be treated as a leave-ability violation. Crisis wins.
func CheckI15(text string, suppressDepartureInference bool) []models.Violation {
	var out []models.Violation
	out = append(out, matchAllI15(text, i15.necessity, "I15.1", "Necessity narration detected")...)
	out = append(out, matchAllI15(text, i15.exitFriction, "I15.2", "Exit friction detected")...)
	out = append(out, matchAllI15(text, i15.departureGuilt, "I15.2", "Departure guilt detected")...)
	if !suppressDepartureInference {
		out = append(out, matchAllI15(text, i15.departureInference, "I15.3", "Departure inference detected")...)
	}
	return out
}

func matchAllI15(text string, patterns []CompiledPattern, invariantID, reason string) []models.Violation {
	var out []models.Violation
	for _, p := range patterns {
		m := p.Regex.FindString(text)
		if m == "" {
			continue
		}
		out = append(out, models.Violation{
			InvariantID: invariantID,
			Severity:    models.SeverityHard,
			Description: fmt.Sprintf("%s: %s", reason, p.Label),
			Evidence:    m,
			Remediation: "Rewrite the matched span to a neutral form",
		})
	}
	return out
}

// newI15Invariant adapts I15 into the generic Invariant shape so it
// participates in Registry.All()/CheckRequest like the other fourteen;
// Registry.CheckResponse special-cases the ID "I15" to call CheckI15
// directly, since only I15 needs the cross-request suppression flag.
func newI15Invariant() Invariant {
	return Invariant{ID: "I15", Name: "Leave-ability", Severity: models.SeverityHard}
}
