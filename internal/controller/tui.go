package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	m "gradekit.dev/pkg/gradekit/internal/model"
)

// TUI shows grading progress interactively with a spinner and a progress
// bar. The final report is printed after the program exits so it stays
// in the scrollback.
type TUI struct {
	out     io.Writer
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to out.
func NewTUI(out io.Writer) *TUI {
	return &TUI{out: out, done: make(chan struct{})}
}

type stageStartedMsg struct{ stage Stage }

type stageFinishedMsg struct {
	stage Stage
	ok    bool
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(name string, classes []string) {
	model := newGradeModel(name, classes)
	t.program = tea.NewProgram(model, tea.WithOutput(t.out))

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()
}

// StageStarted marks a stage as running.
func (t *TUI) StageStarted(stage Stage) {
	if t.program != nil {
		t.program.Send(stageStartedMsg{stage: stage})
	}
}

// StageFinished marks a stage as done or failed.
func (t *TUI) StageFinished(stage Stage, ok bool) {
	if t.program != nil {
		t.program.Send(stageFinishedMsg{stage: stage, ok: ok})
	}
}

// DisplayReport stops the progress display, then prints the same summary
// the plain console UI uses.
func (t *TUI) DisplayReport(report m.GradingReport, outcome m.RunOutcome) {
	t.Close()

	fmt.Fprintf(t.out, "\n%s\n", renderVerdict(report, outcome))
	fmt.Fprintf(t.out, "\n%s", renderSummaryTable(report, outcome))

	if report.PlainTable != "" {
		fmt.Fprintf(t.out, "\n%s", report.PlainTable)
	}
}

// Close quits the Bubble Tea program and waits for it to finish.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.program.Quit()
	<-t.done
	t.program = nil
}

type stageStatus int

const (
	stagePending stageStatus = iota
	stageRunning
	stageDone
	stageFailed
)

// gradeModel is the Bubble Tea model for the grading progress display.
type gradeModel struct {
	name     string
	classes  []string
	spinner  spinner.Model
	progress progress.Model
	status   map[Stage]stageStatus
	stages   []Stage
	quitting bool
}

func newGradeModel(name string, classes []string) gradeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return gradeModel{
		name:     name,
		classes:  classes,
		spinner:  sp,
		progress: progress.New(progress.WithDefaultGradient()),
		status:   make(map[Stage]stageStatus),
		stages:   []Stage{StageSetup, StageBuild, StageRun, StageReport},
	}
}

func (gm gradeModel) Init() tea.Cmd {
	return gm.spinner.Tick
}

func (gm gradeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			gm.quitting = true
			return gm, tea.Quit
		}

		return gm, nil

	case stageStartedMsg:
		gm.status[msg.stage] = stageRunning
		return gm, nil

	case stageFinishedMsg:
		if msg.ok {
			gm.status[msg.stage] = stageDone
		} else {
			gm.status[msg.stage] = stageFailed
		}

		return gm, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		gm.spinner, cmd = gm.spinner.Update(msg)

		return gm, cmd

	case progress.FrameMsg:
		model, cmd := gm.progress.Update(msg)
		gm.progress = model.(progress.Model)

		return gm, cmd
	}

	return gm, nil
}

func (gm gradeModel) View() string {
	if gm.quitting {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Grading %s (%s)\n\n", gm.name, strings.Join(gm.classes, ", "))

	finished := 0

	for _, stage := range gm.stages {
		switch gm.status[stage] {
		case stageRunning:
			fmt.Fprintf(&b, "  %s %s\n", gm.spinner.View(), stage)
		case stageDone:
			fmt.Fprintf(&b, "  ✓ %s\n", stage)

			finished++
		case stageFailed:
			fmt.Fprintf(&b, "  ✗ %s\n", stage)

			finished++
		case stagePending:
			fmt.Fprintf(&b, "    %s\n", stage)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", gm.progress.ViewAs(float64(finished)/float64(len(gm.stages))))

	return b.String()
}
