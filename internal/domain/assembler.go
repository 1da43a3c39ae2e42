package domain

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	m "gradekit.dev/pkg/gradekit/internal/model"
)

// Assemble merges a run outcome, its failure records and the computed
// score into the final grading report. A nil score marks a run with no
// valid score; the report then follows the execution-error shape with
// the captured output in place of a table and the score field omitted.
func Assemble(name string, outcome m.RunOutcome, records []m.FailureRecord, score *m.ScoreResult) m.GradingReport {
	if outcome.Kind == m.ExecutionError || score == nil {
		return assembleExecutionError(name, outcome)
	}

	if outcome.Kind == m.Passed {
		return m.GradingReport{
			Status:   m.StatusPass,
			MaxScore: score.MaxScore,
			Markdown: fmt.Sprintf("## %s\n\nAll %d tests passed.\n", name, outcome.TotalTests),
			Entries: []m.TestEntry{{
				Name:    name,
				Status:  m.StatusPass,
				Message: fmt.Sprintf("All %d tests passed.", outcome.TotalTests),
				Score:   m.ScoreOf(score.MaxScore),
			}},
		}
	}

	summary := fmt.Sprintf("%d of %d tests failed.", outcome.FailedTests, outcome.TotalTests)

	return m.GradingReport{
		Status:     m.StatusError,
		MaxScore:   score.MaxScore,
		Markdown:   failureMarkdown(name, summary, records),
		PlainTable: renderPlainTable(records),
		Entries: []m.TestEntry{{
			Name:    name,
			Status:  m.StatusError,
			Message: summary,
			Score:   m.ScoreOf(score.Awarded),
		}},
	}
}

func assembleExecutionError(name string, outcome m.RunOutcome) m.GradingReport {
	message := firstNonBlankLine(outcome.Stderr)
	if message == "" {
		message = firstNonBlankLine(outcome.Stdout)
	}

	if message == "" {
		message = "The test run produced no result."
	}

	var body strings.Builder

	fmt.Fprintf(&body, "## %s\n\nThe tests could not be run.\n\n", name)

	if strings.TrimSpace(outcome.Stdout) != "" {
		fmt.Fprintf(&body, "```\n%s\n```\n", strings.TrimRight(outcome.Stdout, "\n"))
	}

	if strings.TrimSpace(outcome.Stderr) != "" {
		fmt.Fprintf(&body, "```\n%s\n```\n", strings.TrimRight(outcome.Stderr, "\n"))
	}

	return m.GradingReport{
		Status:   m.StatusError,
		Markdown: body.String(),
		Entries: []m.TestEntry{{
			Name:    name,
			Status:  m.StatusError,
			Message: message,
		}},
	}
}

// renderPlainTable renders the failure records as a text table for logs.
// Embedded line breaks in expected/actual stay literal newlines inside
// the cell.
func renderPlainTable(records []m.FailureRecord) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Message", "Expected", "Actual"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, record := range records {
		if record.Structured {
			table.Append([]string{record.Message, record.Expected, record.Actual})
			continue
		}

		table.Append([]string{record.Message, "", ""})
	}

	table.Render()

	return buf.String()
}

// renderHTMLTable renders the failure records as an HTML table for the
// report body. Unstructured records span all three columns; embedded
// line breaks in expected/actual become explicit <br> markup.
func renderHTMLTable(records []m.FailureRecord) string {
	var body strings.Builder

	body.WriteString("<table>\n<tr><th>Message</th><th>Expected</th><th>Actual</th></tr>\n")

	for _, record := range records {
		if record.Structured {
			fmt.Fprintf(&body, "<tr><td>%s</td><td>%s</td><td>%s</td></tr>\n",
				htmlCell(record.Message), htmlCell(record.Expected), htmlCell(record.Actual))
			continue
		}

		fmt.Fprintf(&body, "<tr><td colspan=\"3\">%s</td></tr>\n", htmlCell(record.Message))
	}

	body.WriteString("</table>\n")

	return body.String()
}

func htmlCell(value string) string {
	escaped := html.EscapeString(value)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")

	return strings.ReplaceAll(escaped, "\n", "<br>")
}

func failureMarkdown(name, summary string, records []m.FailureRecord) string {
	var body strings.Builder

	fmt.Fprintf(&body, "## %s\n\n%s\n\n%s", name, summary, renderHTMLTable(records))

	for _, record := range records {
		diff := expectedActualDiff(record)
		if diff == "" {
			continue
		}

		fmt.Fprintf(&body, "\n```diff\n%s```\n", diff)
	}

	return body.String()
}

// expectedActualDiff renders a unified diff for structured records whose
// expected or actual value spans multiple lines; single-line values are
// readable enough in the table.
func expectedActualDiff(record m.FailureRecord) string {
	if !record.Structured {
		return ""
	}

	if !strings.Contains(record.Expected, "\n") && !strings.Contains(record.Actual, "\n") {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(record.Expected),
		B:        difflib.SplitLines(record.Actual),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		return ""
	}

	return diff
}
