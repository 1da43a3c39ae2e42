package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	m "gradekit.dev/pkg/gradekit/internal/model"
	"gradekit.dev/pkg/gradekit/pkg"
)

// payloadVersion is the published result schema version.
const payloadVersion = 1

// ResultPayload is the wire form of a grading report. The markdown field
// is transport-encoded on its own; the whole payload is serialized to
// JSON and transport-encoded again before it reaches the sink.
type ResultPayload struct {
	Version  int           `json:"version"`
	Status   string        `json:"status"`
	MaxScore float64       `json:"max_score"`
	Markdown string        `json:"markdown"`
	Tests    []m.TestEntry `json:"tests"`
}

// Sink delivers the final grading report to the external result
// consumer. The opaque encoding lives entirely in this adapter; the rest
// of the system only ever sees the typed GradingReport.
type Sink interface {
	Publish(report m.GradingReport) error
}

// WriterSink publishes the encoded payload as a single line to a writer.
type WriterSink struct {
	out io.Writer
}

// NewWriterSink constructs a WriterSink.
func NewWriterSink(out io.Writer) *WriterSink {
	return &WriterSink{out: out}
}

// NewSink returns a sink writing to resultPath, or to stdout when
// resultPath is empty.
func NewSink(resultPath string) (Sink, func() error, error) {
	if resultPath == "" {
		return NewWriterSink(os.Stdout), func() error { return nil }, nil
	}

	file, err := os.Create(resultPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open result file: %w", err)
	}

	return NewWriterSink(file), file.Close, nil
}

// Publish encodes the report and writes the blob followed by a newline.
func (s *WriterSink) Publish(report m.GradingReport) error {
	blob, err := EncodeReport(report)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(s.out, blob); err != nil {
		return fmt.Errorf("write result payload: %w", err)
	}

	return nil
}

// EncodeReport serializes a grading report into the opaque transport
// blob handed to the sink.
func EncodeReport(report m.GradingReport) (string, error) {
	payload := ResultPayload{
		Version:  payloadVersion,
		Status:   report.Status,
		MaxScore: report.MaxScore,
		Markdown: pkg.EncodeText(report.Markdown),
		Tests:    report.Entries,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal result payload: %w", err)
	}

	return pkg.EncodeBlob(data), nil
}

// DecodeReport reverses EncodeReport, returning the wire payload with
// the markdown field decoded back to plain text.
func DecodeReport(blob string) (ResultPayload, error) {
	data, err := pkg.DecodeBlob(blob)
	if err != nil {
		return ResultPayload{}, err
	}

	var payload ResultPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return ResultPayload{}, fmt.Errorf("unmarshal result payload: %w", err)
	}

	markdown, err := pkg.DecodeText(payload.Markdown)
	if err != nil {
		return ResultPayload{}, err
	}

	payload.Markdown = markdown

	return payload, nil
}
