package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gradekit.dev/pkg/gradekit/internal/adapter"
	"gradekit.dev/pkg/gradekit/internal/controller"
	m "gradekit.dev/pkg/gradekit/internal/model"
)

// Workflow drives one grading run end to end: setup, build, test run,
// interpretation, scoring, and publication.
type Workflow interface {
	Grade(ctx context.Context, cfg m.GradeConfig) error
}

type workflow struct {
	builder  adapter.Builder
	launcher adapter.TestLauncher
	sink     adapter.Sink
	ui       controller.UI
}

// NewWorkflow creates a Workflow with the provided collaborators.
func NewWorkflow(builder adapter.Builder, launcher adapter.TestLauncher, sink adapter.Sink, ui controller.UI) Workflow {
	return &workflow{
		builder:  builder,
		launcher: launcher,
		sink:     sink,
		ui:       ui,
	}
}

// Grade runs the pipeline. Every failure mode still produces a
// well-formed report, so the sink receives exactly one payload per run;
// the returned error is reserved for failures to deliver that payload.
func (w *workflow) Grade(ctx context.Context, cfg m.GradeConfig) error {
	w.ui.Start(cfg.Name, cfg.Classes)
	defer w.ui.Close()

	outcome, records, score := w.execute(ctx, cfg)

	w.ui.StageStarted(controller.StageReport)
	report := Assemble(cfg.Name, outcome, records, score)
	w.ui.StageFinished(controller.StageReport, true)

	w.ui.DisplayReport(report, outcome)

	if err := w.sink.Publish(report); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}

	slog.Info("grading run finished",
		"test", cfg.Name,
		"status", report.Status,
		"outcome", outcome.Kind.String())

	return nil
}

// execute runs setup, build and the test process, then interprets the
// output. It never returns an error: failures collapse into an
// ExecutionError outcome with a nil score.
func (w *workflow) execute(ctx context.Context, cfg m.GradeConfig) (m.RunOutcome, []m.FailureRecord, *m.ScoreResult) {
	if outcome, failed := w.runSetup(ctx, cfg); failed {
		return outcome, nil, nil
	}

	if outcome, failed := w.runBuild(ctx, cfg); failed {
		return outcome, nil, nil
	}

	return w.runTests(ctx, cfg)
}

func (w *workflow) runSetup(ctx context.Context, cfg m.GradeConfig) (m.RunOutcome, bool) {
	w.ui.StageStarted(controller.StageSetup)

	stageCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	result, err := w.builder.Setup(stageCtx, cfg)
	if err != nil {
		slog.Error("setup command unavailable", "error", err)
		w.ui.StageFinished(controller.StageSetup, false)

		return executionError(result, fmt.Sprintf("Setup command could not be started: %v", err)), true
	}

	if result.ExitCode != 0 {
		slog.Error("setup command failed", "exit_code", result.ExitCode)
		w.ui.StageFinished(controller.StageSetup, false)

		return executionError(result, fmt.Sprintf("Setup command exited with status %d.", result.ExitCode)), true
	}

	w.ui.StageFinished(controller.StageSetup, true)

	return m.RunOutcome{}, false
}

func (w *workflow) runBuild(ctx context.Context, cfg m.GradeConfig) (m.RunOutcome, bool) {
	w.ui.StageStarted(controller.StageBuild)

	stageCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	result, err := w.builder.Compile(stageCtx, cfg)
	if err != nil {
		slog.Error("build could not run", "error", err)
		w.ui.StageFinished(controller.StageBuild, false)

		return executionError(result, fmt.Sprintf("Build could not be run: %v", err)), true
	}

	if result.ExitCode != 0 {
		slog.Error("build failed", "exit_code", result.ExitCode)
		w.ui.StageFinished(controller.StageBuild, false)

		return executionError(result, "Compilation failed."), true
	}

	w.ui.StageFinished(controller.StageBuild, true)

	return m.RunOutcome{}, false
}

func (w *workflow) runTests(ctx context.Context, cfg m.GradeConfig) (m.RunOutcome, []m.FailureRecord, *m.ScoreResult) {
	w.ui.StageStarted(controller.StageRun)

	stageCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	result, err := w.launcher.Run(stageCtx, cfg)
	if err != nil {
		slog.Error("test runner could not run", "error", err)
		w.ui.StageFinished(controller.StageRun, false)

		return executionError(result, fmt.Sprintf("Test runner could not be started: %v", err)), nil, nil
	}

	if result.TimedOut {
		slog.Warn("test run timed out", "timeout", cfg.Timeout)
		w.ui.StageFinished(controller.StageRun, false)

		return executionError(result, fmt.Sprintf("Test run timed out after %s.", cfg.Timeout)), nil, nil
	}

	outcome, records, score := interpret(result, cfg)

	w.ui.StageFinished(controller.StageRun, outcome.Kind != m.ExecutionError)

	return outcome, records, score
}

// interpret turns one captured runner output into an outcome, its
// failure records and a score. Failure blocks keep their original
// textual order throughout.
func interpret(result adapter.ExecResult, cfg m.GradeConfig) (m.RunOutcome, []m.FailureRecord, *m.ScoreResult) {
	lexed := Lex(result.Stdout)

	if !lexed.Recognized && result.ExitCode != 0 {
		slog.Error("test run crashed before reporting", "exit_code", result.ExitCode)

		return executionError(result, fmt.Sprintf("Test run exited with status %d before reporting any result.", result.ExitCode)), nil, nil
	}

	score, err := Score(lexed.TotalTests, lexed.FailedTests, cfg.MaxScore, cfg.PartialCredit)
	if err != nil {
		var ambiguous *AmbiguousScoreError
		if errors.As(err, &ambiguous) {
			slog.Error("ambiguous score", "error", ambiguous)

			return executionError(result, "The test run reported no tests; no score can be awarded."), nil, nil
		}

		slog.Error("scoring failed", "error", err)

		return executionError(result, err.Error()), nil, nil
	}

	outcome := m.RunOutcome{
		TotalTests:  lexed.TotalTests,
		FailedTests: lexed.FailedTests,
		Stdout:      result.Stdout,
		Stderr:      result.Stderr,
	}

	switch {
	case lexed.FailedTests == 0:
		outcome.Kind = m.Passed
	case lexed.FailedTests == lexed.TotalTests:
		outcome.Kind = m.AllFailed
	default:
		outcome.Kind = m.PartiallyFailed
	}

	var records []m.FailureRecord
	for _, block := range lexed.Blocks {
		records = append(records, Classify(block)...)
	}

	return outcome, records, &score
}

func executionError(result adapter.ExecResult, reason string) m.RunOutcome {
	stderr := result.Stderr
	if stderr == "" {
		stderr = reason
	} else {
		stderr = reason + "\n" + stderr
	}

	return m.RunOutcome{
		Kind:   m.ExecutionError,
		Stdout: result.Stdout,
		Stderr: stderr,
	}
}
