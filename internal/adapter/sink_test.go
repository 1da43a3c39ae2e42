package adapter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gradekit.dev/pkg/gradekit/internal/model"
	"gradekit.dev/pkg/gradekit/pkg"
)

func sampleReport() m.GradingReport {
	return m.GradingReport{
		Status:   m.StatusError,
		MaxScore: 10,
		Markdown: "## Week 3\n\n2 of 5 tests failed.\n",
		Entries: []m.TestEntry{{
			Name:    "Week 3",
			Status:  m.StatusError,
			Message: "2 of 5 tests failed.",
			Score:   m.ScoreOf(6),
		}},
	}
}

func TestWriterSink_PublishWritesOneBlobLine(t *testing.T) {
	var buf bytes.Buffer

	err := NewWriterSink(&buf).Publish(sampleReport())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)

	// The blob is opaque: no raw JSON leaks through.
	assert.NotContains(t, lines[0], "{")

	payload, err := DecodeReport(lines[0])
	require.NoError(t, err)
	assert.Equal(t, 1, payload.Version)
}

func TestEncodeReport_RoundTrip(t *testing.T) {
	blob, err := EncodeReport(sampleReport())
	require.NoError(t, err)

	payload, err := DecodeReport(blob)
	require.NoError(t, err)

	assert.Equal(t, 1, payload.Version)
	assert.Equal(t, m.StatusError, payload.Status)
	assert.Equal(t, 10.0, payload.MaxScore)
	assert.Equal(t, "## Week 3\n\n2 of 5 tests failed.\n", payload.Markdown)
	require.Len(t, payload.Tests, 1)
	require.NotNil(t, payload.Tests[0].Score)
	assert.Equal(t, 6.0, *payload.Tests[0].Score)
}

func TestEncodeReport_MarkdownIsEncodedInsideJSON(t *testing.T) {
	blob, err := EncodeReport(sampleReport())
	require.NoError(t, err)

	raw, err := pkg.DecodeBlob(blob)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "tests failed")
	assert.Contains(t, string(raw), `"version":1`)
}

func TestEncodeReport_OmitsAbsentScore(t *testing.T) {
	report := sampleReport()
	report.Entries[0].Score = nil

	blob, err := EncodeReport(report)
	require.NoError(t, err)

	raw, err := pkg.DecodeBlob(blob)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), `"score"`)

	payload, err := DecodeReport(blob)
	require.NoError(t, err)
	assert.Nil(t, payload.Tests[0].Score)
}

func TestDecodeReport_RejectsGarbage(t *testing.T) {
	_, err := DecodeReport("not base64!!!")
	assert.Error(t, err)

	_, err = DecodeReport(pkg.EncodeText("not json"))
	assert.Error(t, err)
}
