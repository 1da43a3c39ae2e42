package model

import (
	"strings"
	"time"
)

// GradeConfig carries every input the grading pipeline needs. The engine
// never reads ambient process state; everything arrives through this
// struct so the pipeline is testable without spawning processes.
type GradeConfig struct {
	// Name is the display name for the graded test suite.
	Name string
	// Classes are the JUnit test class names to run, in order.
	Classes []string
	// SetupCommand is an optional shell command run before the build.
	SetupCommand string
	// WorkDir is the submission directory containing sources and tests.
	WorkDir string
	// LibDir holds the jars put on the compile and run classpath.
	LibDir string
	// Timeout bounds the build and each test-runner invocation.
	Timeout time.Duration
	// MaxScore is the score ceiling for the whole suite.
	MaxScore float64
	// PartialCredit awards proportional credit instead of all-or-nothing.
	PartialCredit bool
	// ResultPath is the sink target file; empty means stdout.
	ResultPath string
}

// ParseClasses splits a comma-separated class list, trimming whitespace
// and dropping empty items.
func ParseClasses(raw string) []string {
	parts := strings.Split(raw, ",")
	classes := make([]string, 0, len(parts))

	for _, part := range parts {
		class := strings.TrimSpace(part)
		if class == "" {
			continue
		}

		classes = append(classes, class)
	}

	return classes
}
