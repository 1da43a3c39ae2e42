package model

// Report status values used in the published result schema.
const (
	StatusPass  = "pass"
	StatusError = "error"
)

// TestEntry is one test summary row in the published report.
//
// Score is a pointer so that runs with no valid score (execution errors)
// omit the field entirely instead of reporting zero.
type TestEntry struct {
	Name          string   `json:"name"`
	Status        string   `json:"status"`
	Message       string   `json:"message"`
	TestCode      string   `json:"test_code"`
	Filename      string   `json:"filename"`
	LineNo        int      `json:"line_no"`
	ExecutionTime float64  `json:"execution_time"`
	Score         *float64 `json:"score,omitempty"`
}

// GradingReport is the terminal artifact of one grading run. It is
// constructed once by the assembler, then serialized and handed to the
// sink; it is never mutated after construction.
type GradingReport struct {
	Status     string
	MaxScore   float64
	Markdown   string
	PlainTable string
	Entries    []TestEntry
}

// ScoreOf returns a pointer suitable for TestEntry.Score.
func ScoreOf(v float64) *float64 {
	return &v
}
