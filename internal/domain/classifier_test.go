package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_StructuredComparison(t *testing.T) {
	block := "org.junit.ComparisonFailure: greeting text expected:<Hello, world> but was:<Hello world>\n" +
		"\tat org.junit.Assert.assertEquals(Assert.java:115)\n"

	records := Classify(block)

	require.Len(t, records, 1)
	assert.True(t, records[0].Structured)
	assert.Equal(t, "greeting text", records[0].Message)
	assert.Equal(t, "Hello, world", records[0].Expected)
	assert.Equal(t, "Hello world", records[0].Actual)
}

func TestClassify_EmptyMessageFallsBackToDefault(t *testing.T) {
	records := Classify("org.junit.ComparisonFailure: expected:<Goodbye> but was:<Bye>\n")

	require.Len(t, records, 1)
	assert.True(t, records[0].Structured)
	assert.Equal(t, "Test failed", records[0].Message)
	assert.Equal(t, "Goodbye", records[0].Expected)
	assert.Equal(t, "Bye", records[0].Actual)
}

func TestClassify_UnqualifiedKind(t *testing.T) {
	records := Classify("ComparisonFailure: msg expected:<A> but was:<B>")

	require.Len(t, records, 1)
	assert.True(t, records[0].Structured)
	assert.Equal(t, "msg", records[0].Message)
	assert.Equal(t, "A", records[0].Expected)
	assert.Equal(t, "B", records[0].Actual)
}

func TestClassify_UnqualifiedAssertionError(t *testing.T) {
	records := Classify("java.lang.AssertionError: wrong size expected:<3> but was:<4>\n")

	require.Len(t, records, 1)
	assert.True(t, records[0].Structured)
	assert.Equal(t, "wrong size", records[0].Message)
}

func TestClassify_MultipleComparisonsInOneBlock(t *testing.T) {
	block := "org.junit.ComparisonFailure: first expected:<a> but was:<b>\n" +
		"org.junit.ComparisonFailure: second expected:<c> but was:<d>\n"

	records := Classify(block)

	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].Message)
	assert.Equal(t, "a", records[0].Expected)
	assert.Equal(t, "second", records[1].Message)
	assert.Equal(t, "d", records[1].Actual)
}

func TestClassify_MultilineValuesKeepLineBreaks(t *testing.T) {
	block := "org.junit.ComparisonFailure: report body expected:<line one\nline two> but was:<line one\nline 2>\n"

	records := Classify(block)

	require.Len(t, records, 1)
	assert.Equal(t, "line one\nline two", records[0].Expected)
	assert.Equal(t, "line one\nline 2", records[0].Actual)
}

func TestClassify_FallbackStripsExceptionPrefix(t *testing.T) {
	block := "java.lang.ArithmeticException: / by zero\n" +
		"\tat Calculator.div(Calculator.java:9)\n"

	records := Classify(block)

	require.Len(t, records, 1)
	assert.False(t, records[0].Structured)
	assert.Equal(t, "/ by zero", records[0].Message)
	assert.Empty(t, records[0].Expected)
	assert.Empty(t, records[0].Actual)
}

func TestClassify_FallbackStripsTimeoutWrapper(t *testing.T) {
	block := "org.junit.runners.model.TestTimedOutException: test timed out after 300000 milliseconds\n" +
		"\tat java.lang.Thread.sleep(Native Method)\n"

	records := Classify(block)

	require.Len(t, records, 1)
	assert.False(t, records[0].Structured)
	assert.Equal(t, "test timed out after 300000 milliseconds", records[0].Message)
}

func TestClassify_BlankBlock(t *testing.T) {
	records := Classify("\n\n\t\n")

	require.Len(t, records, 1)
	assert.False(t, records[0].Structured)
	assert.Equal(t, "Test failed", records[0].Message)
}

func TestClassify_ComparisonFixtureEndToEnd(t *testing.T) {
	lexed := Lex(loadFixture(t, "junit_comparisons.txt"))
	require.Len(t, lexed.Blocks, 2)

	first := Classify(lexed.Blocks[0])
	require.Len(t, first, 1)
	assert.True(t, first[0].Structured)
	assert.Equal(t, "greeting text", first[0].Message)
	assert.Equal(t, "Hello, world", first[0].Expected)
	assert.Equal(t, "Hello world", first[0].Actual)

	second := Classify(lexed.Blocks[1])
	require.Len(t, second, 1)
	assert.Equal(t, "Test failed", second[0].Message)
	assert.Equal(t, "Goodbye", second[0].Expected)
	assert.Equal(t, "Bye", second[0].Actual)
}

func TestClassify_PrefixOnlyLine(t *testing.T) {
	records := Classify("java.lang.NullPointerException:\n\tat Foo.bar(Foo.java:3)\n")

	require.Len(t, records, 1)
	assert.Equal(t, "Test failed", records[0].Message)
}
