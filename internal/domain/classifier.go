package domain

import (
	"regexp"
	"strings"

	m "gradekit.dev/pkg/gradekit/internal/model"
)

// fallbackMessage is reported when a failure carries no usable text.
const fallbackMessage = "Test failed"

var (
	// assertionPattern matches value-comparison assertion failures of the
	// form "<Kind>: <message> expected:<A> but was:<B>". The kind may be
	// package-qualified; the values may span lines.
	assertionPattern = regexp.MustCompile(
		`(?s)(?:[\w$]+\.)*(?:ComparisonFailure|AssertionFailedError|AssertionError):?` +
			`\s*(.*?)\s*expected\s*:\s*<(.*?)>\s+but was\s*:\s*<(.*?)>`)

	// classPrefixPattern matches a leading fully-qualified exception class
	// name ending in a colon, e.g. "java.lang.IllegalStateException: ".
	classPrefixPattern = regexp.MustCompile(`^(?:[\w$]+\.)+[\w$]+:\s*`)
)

// Classify turns one failure-block body into failure records.
//
// A block with one or more assertion matches yields one structured record
// per match, all attributed to the block. Anything else yields a single
// unstructured record summarizing the first meaningful line. Malformed
// text is a normal input, never an error.
func Classify(block string) []m.FailureRecord {
	matches := assertionPattern.FindAllStringSubmatch(block, -1)
	if len(matches) == 0 {
		return []m.FailureRecord{fallbackRecord(block)}
	}

	records := make([]m.FailureRecord, 0, len(matches))

	for _, match := range matches {
		message := strings.TrimSpace(match[1])
		if message == "" {
			message = fallbackMessage
		}

		records = append(records, m.FailureRecord{
			Message:    message,
			Expected:   strings.TrimSpace(match[2]),
			Actual:     strings.TrimSpace(match[3]),
			Structured: true,
		})
	}

	return records
}

func fallbackRecord(block string) m.FailureRecord {
	message := firstNonBlankLine(block)

	// Strip exception-class prefixes repeatedly: a timeout wrapper
	// exception around the real cause leaves nested prefixes.
	for {
		stripped := classPrefixPattern.ReplaceAllString(message, "")
		if stripped == message {
			break
		}

		message = stripped
	}

	if strings.TrimSpace(message) == "" {
		message = fallbackMessage
	}

	return m.FailureRecord{Message: message}
}

func firstNonBlankLine(block string) string {
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
