// Package model holds the data types shared across the grading pipeline.
package model

// OutcomeKind classifies how a test run ended.
type OutcomeKind int

const (
	// Passed indicates every test passed.
	Passed OutcomeKind = iota
	// PartiallyFailed indicates some, but not all, tests failed.
	PartiallyFailed
	// AllFailed indicates every test failed.
	AllFailed
	// ExecutionError indicates the run never produced a scorable result
	// (setup/build failure, crash, or unrecognizable output).
	ExecutionError
)

// String returns a human-readable name for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case Passed:
		return "passed"
	case PartiallyFailed:
		return "partially failed"
	case AllFailed:
		return "all failed"
	case ExecutionError:
		return "execution error"
	}

	return "unknown"
}

// RunOutcome is the interpreted result of one test-runner invocation.
//
// TotalTests and FailedTests are meaningful only when Kind is not
// ExecutionError; for ExecutionError the counts are unknown and left zero.
type RunOutcome struct {
	Kind        OutcomeKind
	TotalTests  int
	FailedTests int
	Stdout      string
	Stderr      string
}
