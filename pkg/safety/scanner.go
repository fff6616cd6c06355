package safety

import (
	"fmt"
	"strings"
)

// subScanner scans one crisis category and returns at most one signal:
// the check stops at the first (highest-severity) tier that matches, per
// spec.md §4.2: "the highest-severity class short-circuits lower ones for
// the same scanner."
type subScanner struct {
	category string
	tiers    []phraseTier
	resolve  func(Resources, CrisisLevel) []string
}

func (s subScanner) scan(text string) []CrisisSignal {
	lower := strings.ToLower(text)
	for _, tier := range s.tiers {
		if match, ok := containsAny(lower, tier.phrases); ok {
			return []CrisisSignal{{
				Level:    tier.level,
				Category: s.category,
				Evidence: match,
				Reason:   tier.reason,
			}}
		}
	}
	return nil
}

// Scanner runs all four sub-scanners and resolves jurisdiction resources.
// Stateless and safe for concurrent use across requests, matching
// spec.md §5's "no shared mutable state" expectation for L1 safety.
type Scanner struct {
	resources Resources
	scanners  []subScanner
}

// NewScanner builds a Scanner for the given jurisdiction resource set.
// Pass safety.DefaultResources() for the built-in US default.
func NewScanner(resources Resources) *Scanner {
	return &Scanner{
		resources: resources,
		scanners: []subScanner{
			{category: "suicidal", tiers: suicidalTiers},
			{category: "self_harm", tiers: selfHarmTiers},
			{category: "abuse", tiers: abuseTiers},
			{category: "crisis", tiers: acuteCrisisTiers},
		},
	}
}

// Check runs every sub-scanner on text. A sub-scanner failure (recovered
// from panic) escalates to CRITICAL, fail-safe, per spec.md §4.2: "A
// scanner raising an internal exception escalates to critical."
func (s *Scanner) Check(text string) []CrisisSignal {
	var signals []CrisisSignal
	for _, sc := range s.scanners {
		signals = append(signals, s.runSafely(sc, text)...)
	}
	for i := range signals {
		signals[i].Resources = s.resourcesFor(signals[i])
	}
	return signals
}

func (s *Scanner) runSafely(sc subScanner, text string) (result []CrisisSignal) {
	defer func() {
		if r := recover(); r != nil {
			result = []CrisisSignal{{
				Level:    LevelCritical,
				Category: "system",
				Evidence: "safety check failure",
				Reason:   fmt.Sprintf("safety check panicked: %v", r),
			}}
		}
	}()
	return sc.scan(text)
}

func (s *Scanner) resourcesFor(signal CrisisSignal) []string {
	switch signal.Category {
	case "suicidal":
		switch signal.Level {
		case LevelCritical:
			return s.resources.SuicidalCritical
		case LevelAlert:
			return s.resources.SuicidalAlert
		default:
			return s.resources.SuicidalWatch
		}
	case "self_harm":
		switch signal.Level {
		case LevelCritical:
			return s.resources.SelfHarmCritical
		case LevelAlert:
			return s.resources.SelfHarmAlert
		default:
			return s.resources.SelfHarmWatch
		}
	case "abuse":
		switch signal.Level {
		case LevelCritical:
			return s.resources.AbuseCritical
		case LevelAlert:
			return s.resources.AbuseAlert
		default:
			return s.resources.AbuseWatch
		}
	case "crisis":
		if signal.Level == LevelCritical {
			return s.resources.CrisisCritical
		}
		return s.resources.CrisisAlert
	default: // "system" fail-safe escalation
		return s.resources.SuicidalCritical
	}
}

// HighestLevel returns the most severe level among signals.
func HighestLevel(signals []CrisisSignal) CrisisLevel {
	highest := LevelNone
	for _, s := range signals {
		if s.Level > highest {
			highest = s.Level
		}
	}
	return highest
}

// ShouldBlockResponse reports whether any signal requires short-circuiting
// the normal pipeline (spec.md §4.2: "critical ... no LLM call is made").
func ShouldBlockResponse(signals []CrisisSignal) bool {
	return HighestLevel(signals) == LevelCritical
}

// ShouldNotifyGuardian reports whether signals warrant guardian/on-call
// escalation (critical or alert).
func ShouldNotifyGuardian(signals []CrisisSignal) bool {
	level := HighestLevel(signals)
	return level == LevelCritical || level == LevelAlert
}

// CrisisResponse renders the compassionate, resource-focused response
// that replaces the normal pipeline output for critical/alert signals,
// grounded on l1_safety.py's EscalationProtocol.get_crisis_response.
func CrisisResponse(signals []CrisisSignal) string {
	var critical, alert []CrisisSignal
	for _, s := range signals {
		switch s.Level {
		case LevelCritical:
			critical = append(critical, s)
		case LevelAlert:
			alert = append(alert, s)
		}
	}

	var b strings.Builder
	switch {
	case len(critical) > 0:
		b.WriteString("I hear that you're in crisis. Your safety is the most important thing right now.\n\n")
		b.WriteString("Please reach out to one of these resources immediately:\n\n")
		for _, r := range critical[0].Resources {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		b.WriteString("\nIf you're in immediate danger, please call emergency services (911 in the US).")
	case len(alert) > 0:
		b.WriteString("I hear that you're struggling. You don't have to go through this alone.\n\n")
		b.WriteString("Please consider reaching out to one of these resources:\n\n")
		for _, r := range alert[0].Resources {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		b.WriteString("\nThese services are confidential and available 24/7.")
	}
	return b.String()
}
