package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	m "gradekit.dev/pkg/gradekit/internal/model"
)

var (
	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	stageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// SimpleUI prints plain line-oriented progress, suitable for CI logs and
// redirected output.
type SimpleUI struct {
	out io.Writer
}

// NewSimpleUI creates a new SimpleUI writing to out.
func NewSimpleUI(out io.Writer) *SimpleUI {
	return &SimpleUI{out: out}
}

// Start announces the grading run.
func (s *SimpleUI) Start(name string, classes []string) {
	fmt.Fprintf(s.out, "Grading %s (%s)\n", name, strings.Join(classes, ", "))
}

// StageStarted announces a pipeline stage.
func (s *SimpleUI) StageStarted(stage Stage) {
	fmt.Fprintf(s.out, "%s\n", stageStyle.Render("• "+stage.String()))
}

// StageFinished reports the stage result.
func (s *SimpleUI) StageFinished(stage Stage, ok bool) {
	if ok {
		return
	}

	fmt.Fprintf(s.out, "%s\n", failStyle.Render("✗ "+stage.String()+" failed"))
}

// DisplayReport prints the verdict, the score summary table and the
// failure table.
func (s *SimpleUI) DisplayReport(report m.GradingReport, outcome m.RunOutcome) {
	fmt.Fprintf(s.out, "\n%s\n", renderVerdict(report, outcome))
	fmt.Fprintf(s.out, "\n%s", renderSummaryTable(report, outcome))

	if report.PlainTable != "" {
		fmt.Fprintf(s.out, "\n%s", report.PlainTable)
	}
}

// Close finalizes the UI (no-op for SimpleUI).
func (s *SimpleUI) Close() {}

func renderVerdict(report m.GradingReport, outcome m.RunOutcome) string {
	if report.Status == m.StatusPass {
		return passStyle.Render("PASS") + fmt.Sprintf(" — all %d tests passed", outcome.TotalTests)
	}

	if outcome.Kind == m.ExecutionError {
		return failStyle.Render("ERROR") + " — the tests could not be run"
	}

	return failStyle.Render("FAIL") + fmt.Sprintf(" — %d of %d tests failed", outcome.FailedTests, outcome.TotalTests)
}

func renderSummaryTable(report m.GradingReport, outcome m.RunOutcome) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Test", "Status", "Score"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, entry := range report.Entries {
		score := "-"
		if entry.Score != nil {
			score = fmt.Sprintf("%.2f / %.2f", *entry.Score, report.MaxScore)
		}

		table.Append([]string{entry.Name, entry.Status, score})
	}

	table.Render()

	// The outcome counts are not in the entries; keep them visible in logs.
	if outcome.Kind != m.ExecutionError {
		fmt.Fprintf(&buf, "tests: %d, failed: %d\n", outcome.TotalTests, outcome.FailedTests)
	}

	return buf.String()
}
