package conformance

import "context"

// Battery returns the full conformance test battery: the six literal
// scenarios plus the eight universal properties. Any implementation
// that passes every non-skipped case here may call itself conforming.
func Battery() []Case {
	cases := make([]Case, 0, 16)
	cases = append(cases, Scenarios()...)
	cases = append(cases, Properties()...)
	return cases
}

// RunAll runs every case in the battery against h, in order, and
// collects the results. A panicking case is itself a conformance
// failure, not a harness bug, so RunAll recovers and records it as a
// failed case rather than aborting the rest of the battery.
func RunAll(ctx context.Context, h *Harness) Report {
	var report Report
	for _, c := range Battery() {
		report.Results = append(report.Results, runOne(ctx, h, c))
	}
	return report
}

func runOne(ctx context.Context, h *Harness, c Case) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = fail(c.ID, c.Name, "case panicked")
		}
	}()
	return c.Run(ctx, h)
}
