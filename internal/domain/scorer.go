package domain

import (
	"fmt"
	"math"

	m "gradekit.dev/pkg/gradekit/internal/model"
)

// AmbiguousScoreError reports that no valid score exists because the run
// detected zero tests. Callers must treat the run as an execution error
// rather than awarding zero.
type AmbiguousScoreError struct {
	FailedTests int
}

func (e *AmbiguousScoreError) Error() string {
	return fmt.Sprintf("no score can be derived from zero detected tests (%d failure blocks)", e.FailedTests)
}

// Score computes the awarded score for a completed run. It is a pure
// function of its arguments.
//
// With partial credit the award is the passing fraction of maxScore,
// rounded half-up to two decimals; without it the award is all or
// nothing. The result is clamped to [0, maxScore] to guard against
// floating-point overshoot.
func Score(totalTests, failedTests int, maxScore float64, partialCredit bool) (m.ScoreResult, error) {
	if totalTests == 0 {
		return m.ScoreResult{}, &AmbiguousScoreError{FailedTests: failedTests}
	}

	result := m.ScoreResult{
		MaxScore:      maxScore,
		PartialCredit: partialCredit,
	}

	if !partialCredit {
		if failedTests == 0 {
			result.Awarded = maxScore
		}

		return result, nil
	}

	passed := float64(totalTests-failedTests) / float64(totalTests)
	result.Awarded = clamp(round2(passed*maxScore), 0, maxScore)

	return result, nil
}

// round2 rounds half-up to two decimal places. math.Round rounds half
// away from zero, which coincides with half-up for the non-negative
// values produced here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
