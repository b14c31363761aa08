// Package builder implements the five-step pipeline builder: the per-step
// validator, the analysis selection set and the wizard that drives them.
//
// Rejected input is never an error here. Every mutating call reports whether
// it was applied and leaves the wizard untouched when it was not.
package builder

// Step is a position in the wizard
type Step int

const (
	StepName Step = iota
	StepSources
	StepAnalysis
	StepSchedule
	StepOutput
)

// StepCount is the number of steps in the wizard
const StepCount = 5

var stepTitles = [StepCount]string{
	"Pipeline Name",
	"Data Sources",
	"Analysis Type",
	"Schedule",
	"Output",
}

// String returns the title shown for the step
func (s Step) String() string {
	if s < 0 || int(s) >= StepCount {
		return "Unknown"
	}
	return stepTitles[s]
}

// IsLast reports whether s is the final step
func (s Step) IsLast() bool {
	return s == StepOutput
}
