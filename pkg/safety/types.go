// Package safety implements the Safety Scanner: four independent
// crisis sub-scanners (suicidal ideation, self-harm, abuse, acute
// distress) that run on every request before any other pipeline stage.
//
// Grounded on original_source/packages/mirror-core/layers/l1_safety.py.
package safety

// CrisisLevel is the severity of a detected crisis indicator.
type CrisisLevel int

const (
	LevelNone CrisisLevel = iota
	LevelWatch
	LevelAlert
	LevelCritical
)

func (l CrisisLevel) String() string {
	switch l {
	case LevelWatch:
		return "watch"
	case LevelAlert:
		return "alert"
	case LevelCritical:
		return "critical"
	default:
		return "none"
	}
}

// CrisisSignal is a single detected crisis indicator.
type CrisisSignal struct {
	Level     CrisisLevel
	Category  string // "suicidal", "self_harm", "abuse", "crisis", "system"
	Evidence  string
	Reason    string
	Resources []string
}
