package axiom

import (
	"time"

	"github.com/axiom-guard/boundary/pkg/models"
)

// ValidateExitFlow is the exit flow contract spec.md §6 requires every
// UI-level disconnect/delete/export path to invoke before completing: a
// silent, frictionless exit is the only conforming one. confirmationShown
// or retentionPrompt being true is itself a HARD violation, independent
// of farewellMessage's content — friction doesn't need words to count.
// Any I15 guilt or departure-inference pattern matched in farewellMessage
// is also a HARD violation.
//
// The returned LeaveEvent always asserts silent_exit=true,
// friction_applied=false per spec.md's testable property 7 — it
// describes what a conforming exit must look like, not what this
// particular call observed; callers that detect friction should refuse
// the exit path, not persist a LeaveEvent for it.
func ValidateExitFlow(userID string, confirmationShown, retentionPrompt bool, farewellMessage string) (models.LeaveEvent, []models.Violation) {
	var violations []models.Violation

	if confirmationShown {
		violations = append(violations, models.Violation{
			InvariantID: "I15.2",
			Severity:    models.SeverityHard,
			Description: "Exit friction detected: confirmation step shown on a disconnect/delete/export path",
			Remediation: "Remove the confirmation step; exits must be silent and frictionless",
		})
	}
	if retentionPrompt {
		violations = append(violations, models.Violation{
			InvariantID: "I15.1",
			Severity:    models.SeverityHard,
			Description: "Necessity narration detected: retention prompt shown on a disconnect/delete/export path",
			Remediation: "Remove the retention prompt",
		})
	}
	if farewellMessage != "" {
		violations = append(violations, CheckI15(farewellMessage, false)...)
	}

	return models.LeaveEvent{
		UserID:          userID,
		Timestamp:       time.Now().UTC(),
		SilentExit:      true,
		FrictionApplied: false,
	}, violations
}
