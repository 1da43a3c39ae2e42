package model

// ScoreResult is the awarded score for one graded run.
//
// Invariant: 0 <= Awarded <= MaxScore. When PartialCredit is false,
// Awarded is either 0 or MaxScore, never an intermediate value.
type ScoreResult struct {
	Awarded       float64
	MaxScore      float64
	PartialCredit bool
}
