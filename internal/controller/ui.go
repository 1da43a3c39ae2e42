// Package controller provides output adapters for displaying grading
// progress and results.
package controller

import (
	"io"
	"os"

	"golang.org/x/term"
	m "gradekit.dev/pkg/gradekit/internal/model"
)

// Stage identifies one step of the grading pipeline for display.
type Stage int

// Pipeline stages in execution order.
const (
	StageSetup Stage = iota
	StageBuild
	StageRun
	StageReport
)

// String returns the display label for the stage.
func (s Stage) String() string {
	switch s {
	case StageSetup:
		return "setup"
	case StageBuild:
		return "compile"
	case StageRun:
		return "run tests"
	case StageReport:
		return "assemble report"
	}

	return "unknown"
}

// UI displays grading progress and the final result. Implementations can
// use different output methods (simple text, TUI, etc).
type UI interface {
	Start(name string, classes []string)
	StageStarted(stage Stage)
	StageFinished(stage Stage, ok bool)
	DisplayReport(report m.GradingReport, outcome m.RunOutcome)
	Close()
}

// NewUI selects the progress TUI on interactive terminals and the plain
// console UI otherwise.
func NewUI(out io.Writer, interactive bool) UI {
	if interactive {
		return NewTUI(out)
	}

	return NewSimpleUI(out)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
