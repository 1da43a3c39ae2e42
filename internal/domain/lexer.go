// Package domain implements the grading engine: report lexing, failure
// classification, scoring and report assembly.
package domain

import (
	"regexp"
	"strings"
)

// The runner output grammar is centralized here so a format change in a
// future runner version is a one-place fix.
var (
	// markerLinePattern matches the runner version banner followed by the
	// compact summary line, one glyph per test ('.' pass, 'E'/'F' fail,
	// failure glyphs case-insensitive).
	markerLinePattern = regexp.MustCompile(`JUnit version [^\n]*\r?\n([.EFef]+)`)

	// blockHeaderPattern matches numbered failure-block headers such as
	// "1) testAdd(CalculatorTest)".
	blockHeaderPattern = regexp.MustCompile(`(?m)^\d+\) .*$`)
)

// Lexed is the raw structure recovered from one runner output.
type Lexed struct {
	// MarkerLine is the verbatim glyph line, empty when not found.
	MarkerLine string
	// Blocks are the failure-block bodies in original textual order,
	// header lines excluded.
	Blocks []string
	// TotalTests and FailedTests are derived counts, valid only when
	// Recognized is true.
	TotalTests  int
	FailedTests int
	// Recognized reports whether the output contained either a marker
	// line or at least one failure block.
	Recognized bool
}

// MarkerLine returns the compact pass/fail summary line from the runner
// output, or the empty string when none is present. Absence is not an
// error; callers must treat it as zero detected tests.
func MarkerLine(output string) string {
	match := markerLinePattern.FindStringSubmatch(output)
	if match == nil {
		return ""
	}

	return match[1]
}

// FailureBlocks splits the runner output on numbered failure headers and
// returns the block bodies in order. Text before the first header is
// discarded. No headers means no blocks.
func FailureBlocks(output string) []string {
	headers := blockHeaderPattern.FindAllStringIndex(output, -1)
	if headers == nil {
		return nil
	}

	blocks := make([]string, 0, len(headers))

	for i, header := range headers {
		start := header[1]

		end := len(output)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}

		blocks = append(blocks, output[start:end])
	}

	return blocks
}

// Lex recovers the marker line and failure blocks from one runner output
// and derives the test counts.
//
// When the marker line is missing but failure blocks exist, the block
// count stands in for both totals. When neither is present the output is
// not recognized as a test report at all.
func Lex(output string) Lexed {
	lexed := Lexed{
		MarkerLine: MarkerLine(output),
		Blocks:     FailureBlocks(output),
	}

	switch {
	case lexed.MarkerLine != "":
		lexed.TotalTests = len(lexed.MarkerLine)
		lexed.FailedTests = len(lexed.MarkerLine) - strings.Count(lexed.MarkerLine, ".")
		lexed.Recognized = true
	case len(lexed.Blocks) > 0:
		lexed.TotalTests = len(lexed.Blocks)
		lexed.FailedTests = len(lexed.Blocks)
		lexed.Recognized = true
	}

	return lexed
}
