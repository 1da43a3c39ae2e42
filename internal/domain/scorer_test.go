package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_ZeroTestsIsAmbiguous(t *testing.T) {
	_, err := Score(0, 0, 10, true)

	var ambiguous *AmbiguousScoreError
	require.ErrorAs(t, err, &ambiguous)

	_, err = Score(0, 0, 10, false)
	assert.Error(t, err)
}

func TestScore_PartialCreditBoundaries(t *testing.T) {
	for _, n := range []int{1, 3, 7, 100} {
		all, err := Score(n, 0, 12.5, true)
		require.NoError(t, err)
		assert.Equal(t, 12.5, all.Awarded)

		none, err := Score(n, n, 12.5, true)
		require.NoError(t, err)
		assert.Equal(t, 0.0, none.Awarded)
	}
}

func TestScore_PartialCreditRounding(t *testing.T) {
	result, err := Score(5, 2, 10, true)
	require.NoError(t, err)
	assert.Equal(t, 6.0, result.Awarded)

	result, err = Score(3, 1, 10, true)
	require.NoError(t, err)
	assert.Equal(t, 6.67, result.Awarded)

	result, err = Score(3, 2, 10, true)
	require.NoError(t, err)
	assert.Equal(t, 3.33, result.Awarded)
}

func TestScore_AllOrNothing(t *testing.T) {
	result, err := Score(4, 1, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Awarded)

	result, err = Score(4, 4, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Awarded)

	result, err = Score(4, 0, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 10.0, result.Awarded)
}

func TestScore_IsPure(t *testing.T) {
	first, err := Score(7, 3, 9.75, true)
	require.NoError(t, err)

	second, err := Score(7, 3, 9.75, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestScore_AwardedStaysWithinBounds(t *testing.T) {
	for failed := 0; failed <= 10; failed++ {
		result, err := Score(10, failed, 7.33, true)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, result.Awarded, 0.0)
		assert.LessOrEqual(t, result.Awarded, 7.33)
	}
}

func TestAmbiguousScoreError_Message(t *testing.T) {
	err := &AmbiguousScoreError{FailedTests: 3}

	assert.Contains(t, err.Error(), "zero detected tests")
	assert.True(t, errors.As(error(err), new(*AmbiguousScoreError)))
}
