package adapter

import (
	"context"

	m "gradekit.dev/pkg/gradekit/internal/model"
)

// junitRunnerClass is the console runner that prints the textual report
// the engine parses.
const junitRunnerClass = "org.junit.runner.JUnitCore"

// TestLauncher starts the external test-runner process for the
// configured test classes and returns its captured output.
type TestLauncher interface {
	Run(ctx context.Context, cfg m.GradeConfig) (ExecResult, error)
}

// JUnitLauncher runs the JUnit console runner over all configured test
// classes in a single invocation, so the engine sees one report.
type JUnitLauncher struct {
	runner CommandRunner
}

// NewJUnitLauncher constructs a JUnitLauncher on top of the given runner.
func NewJUnitLauncher(runner CommandRunner) *JUnitLauncher {
	return &JUnitLauncher{runner: runner}
}

// Run launches the runner process. The caller bounds it with a deadline
// on ctx; a deadline hit surfaces as ExecResult.TimedOut.
func (l *JUnitLauncher) Run(ctx context.Context, cfg m.GradeConfig) (ExecResult, error) {
	args := append([]string{"-cp", Classpath(cfg.LibDir), junitRunnerClass}, cfg.Classes...)

	return l.runner.Run(ctx, cfg.WorkDir, "java", args...)
}
