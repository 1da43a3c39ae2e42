package adapter

import (
	"context"
	"strings"
	"testing"
	"time"
)

// These tests exercise LocalCommandRunner against the real shell instead
// of mocking process execution.

func TestLocalCommandRunner_CapturesBothStreams(t *testing.T) {
	runner := NewLocalCommandRunner()

	result, err := runner.Run(context.Background(), ".", "sh", "-c", "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if strings.TrimSpace(result.Stdout) != "out" {
		t.Fatalf("Run() stdout = %q, want %q", result.Stdout, "out")
	}

	if strings.TrimSpace(result.Stderr) != "err" {
		t.Fatalf("Run() stderr = %q, want %q", result.Stderr, "err")
	}

	if result.ExitCode != 0 || result.TimedOut {
		t.Fatalf("Run() unexpected result: %+v", result)
	}
}

func TestLocalCommandRunner_NonZeroExitIsNotAnError(t *testing.T) {
	runner := NewLocalCommandRunner()

	result, err := runner.Run(context.Background(), ".", "sh", "-c", "exit 3")
	if err != nil {
		t.Fatalf("Run() error = %v, want exit code in result", err)
	}

	if result.ExitCode != 3 {
		t.Fatalf("Run() exit code = %d, want 3", result.ExitCode)
	}
}

func TestLocalCommandRunner_StartFailure(t *testing.T) {
	runner := NewLocalCommandRunner()

	_, err := runner.Run(context.Background(), ".", "definitely-not-a-real-binary")
	if err == nil {
		t.Fatal("Run() expected error for missing binary, got nil")
	}
}

func TestLocalCommandRunner_Timeout(t *testing.T) {
	runner := NewLocalCommandRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	result, _ := runner.Run(ctx, ".", "sh", "-c", "sleep 5")
	if !result.TimedOut {
		t.Fatalf("Run() expected TimedOut, got %+v", result)
	}
}
