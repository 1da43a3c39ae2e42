package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	m "gradekit.dev/pkg/gradekit/internal/model"
)

// Builder prepares a submission for the test run: the optional setup
// command followed by compilation.
type Builder interface {
	Setup(ctx context.Context, cfg m.GradeConfig) (ExecResult, error)
	Compile(ctx context.Context, cfg m.GradeConfig) (ExecResult, error)
}

// JavacBuilder compiles the submission with javac, with the configured
// lib directory on the classpath.
type JavacBuilder struct {
	runner CommandRunner
}

// NewJavacBuilder constructs a JavacBuilder on top of the given runner.
func NewJavacBuilder(runner CommandRunner) *JavacBuilder {
	return &JavacBuilder{runner: runner}
}

// Setup runs the configured setup command through the shell. A missing
// setup command is a no-op.
func (b *JavacBuilder) Setup(ctx context.Context, cfg m.GradeConfig) (ExecResult, error) {
	command := strings.TrimSpace(cfg.SetupCommand)
	if command == "" {
		return ExecResult{}, nil
	}

	return b.runner.Run(ctx, cfg.WorkDir, "sh", "-c", command)
}

// Compile runs javac over every .java file found under the work
// directory.
func (b *JavacBuilder) Compile(ctx context.Context, cfg m.GradeConfig) (ExecResult, error) {
	sources, err := javaSources(cfg.WorkDir)
	if err != nil {
		return ExecResult{}, fmt.Errorf("scan sources: %w", err)
	}

	if len(sources) == 0 {
		return ExecResult{}, fmt.Errorf("no .java sources under %s", cfg.WorkDir)
	}

	args := append([]string{"-cp", Classpath(cfg.LibDir)}, sources...)

	return b.runner.Run(ctx, cfg.WorkDir, "javac", args...)
}

// Classpath builds the runtime classpath: every jar in libDir plus the
// working directory itself.
func Classpath(libDir string) string {
	if libDir == "" {
		return "."
	}

	return filepath.Join(libDir, "*") + ":."
}

func javaSources(workDir string) ([]string, error) {
	var sources []string

	err := filepath.WalkDir(workDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() || filepath.Ext(path) != ".java" {
			return nil
		}

		relative, relErr := filepath.Rel(workDir, path)
		if relErr != nil {
			return relErr
		}

		sources = append(sources, relative)

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(sources)

	return sources, nil
}
