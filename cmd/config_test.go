package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "gradekit", configBaseName)
	assert.Equal(t, "gradekit.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "test.name", testNameKey)
	assert.Equal(t, "test.classes", testClassesKey)
	assert.Equal(t, "setup.command", setupCommandKey)
	assert.Equal(t, "run.timeout", runTimeoutKey)
	assert.Equal(t, "score.max", scoreMaxKey)
	assert.Equal(t, "score.partial", scorePartialKey)
	assert.Equal(t, "paths.lib", libPathKey)
	assert.Equal(t, "result.path", resultPathKey)
	assert.Equal(t, "GRADEKIT", envPrefix)
}

func TestConfigDefaults(t *testing.T) {
	assert.Equal(t, "Test", defaultTestName)
	assert.Equal(t, 5, defaultTimeoutMinutes)
	assert.Equal(t, 0.0, defaultMaxScore)
	assert.Equal(t, "lib", defaultLibPath)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseSlogLevel("debug", slog.LevelInfo))
	assert.Equal(t, slog.LevelWarn, parseSlogLevel("WARNING", slog.LevelInfo))
	assert.Equal(t, slog.LevelError, parseSlogLevel("error", slog.LevelInfo))
	assert.Equal(t, slog.Level(-4), parseSlogLevel("-4", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("", slog.LevelInfo))
	assert.Equal(t, slog.LevelInfo, parseSlogLevel("bogus", slog.LevelInfo))
}
