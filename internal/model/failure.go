package model

// FailureRecord is one parsed failure block from the runner output.
//
// Invariant: Expected and Actual are either both set or both empty, and
// they are only set when Structured is true.
type FailureRecord struct {
	Message    string
	Expected   string
	Actual     string
	Structured bool
}
