package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"
)

// Payload keys with meaning to the runner
const (
	KeyError          = "error"
	KeyStderr         = "stderr"
	KeySummary        = "summary"
	KeyFindings       = "findings"
	KeyRunnerDuration = "runner_duration"
)

// ErrNotObject is returned when analyzer output is valid JSON but not an object.
var ErrNotObject = errors.New("analyzer output is not a JSON object")

// AnalyzerResult is the outcome of one analyzer invocation.
// The payload is the analyzer's own JSON object (plus runner_duration) on
// success, or {"error", "stderr"} on failure. A result is failed iff the
// payload carries an "error" key.
type AnalyzerResult struct {
	payload map[string]any
}

// NewSuccessResult wraps a decoded analyzer payload and records how long the call took.
func NewSuccessResult(payload map[string]any, duration time.Duration) AnalyzerResult {
	if payload == nil {
		payload = make(map[string]any)
	}
	payload[KeyRunnerDuration] = RoundSeconds(duration)
	return AnalyzerResult{payload: payload}
}

// NewErrorResult builds a failure payload.
func NewErrorResult(message, stderr string) AnalyzerResult {
	return AnalyzerResult{payload: map[string]any{
		KeyError:  message,
		KeyStderr: stderr,
	}}
}

// ResultFromPayload wraps an already decoded payload as-is.
func ResultFromPayload(payload map[string]any) AnalyzerResult {
	return AnalyzerResult{payload: payload}
}

// Failed reports whether the payload carries an error.
func (r AnalyzerResult) Failed() bool {
	_, ok := r.payload[KeyError]
	return ok
}

// ErrorMessage returns the error text of a failed result.
func (r AnalyzerResult) ErrorMessage() string {
	return stringValue(r.payload[KeyError])
}

// Stderr returns the captured stderr of a failed result.
func (r AnalyzerResult) Stderr() string {
	return stringValue(r.payload[KeyStderr])
}

// Payload returns the underlying JSON object. Callers must not mutate it.
func (r AnalyzerResult) Payload() map[string]any {
	return r.payload
}

// Duration returns the injected runner_duration in seconds.
func (r AnalyzerResult) Duration() (float64, bool) {
	return numberValue(r.payload[KeyRunnerDuration])
}

// Summary returns the severity counts an analyzer reported.
// Non-numeric values are skipped; a missing summary yields an empty map.
func (r AnalyzerResult) Summary() map[string]int {
	counts := make(map[string]int)
	raw, ok := r.payload[KeySummary].(map[string]any)
	if !ok {
		return counts
	}
	for key, value := range raw {
		if n, ok := numberValue(value); ok {
			counts[key] = int(n)
		}
	}
	return counts
}

// Findings returns the finding records in analyzer order.
// Entries that are not JSON objects are skipped.
func (r AnalyzerResult) Findings() []Finding {
	raw, ok := r.payload[KeyFindings].([]any)
	if !ok {
		return nil
	}

	findings := make([]Finding, 0, len(raw))
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := Finding{
			Title:    stringValue(obj["title"]),
			Severity: stringValue(obj["severity"]),
			FilePath: stringValue(obj["file_path"]),
		}
		if n, ok := numberValue(obj["line_number"]); ok {
			line := int(n)
			f.LineNumber = &line
		}
		findings = append(findings, f)
	}
	return findings
}

// FindingCount returns len(findings) without decoding each record.
func (r AnalyzerResult) FindingCount() int {
	raw, _ := r.payload[KeyFindings].([]any)
	return len(raw)
}

// MarshalJSON emits the payload object.
func (r AnalyzerResult) MarshalJSON() ([]byte, error) {
	if r.payload == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.payload)
}

// UnmarshalJSON reads a payload object, keeping numbers exact.
func (r *AnalyzerResult) UnmarshalJSON(data []byte) error {
	payload, err := DecodePayload(data)
	if err != nil {
		return err
	}
	r.payload = payload
	return nil
}

// DecodePayload parses analyzer stdout. The document must be a single JSON
// object with nothing but whitespace after it.
func DecodePayload(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after JSON object at offset %d", dec.InputOffset())
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

func stringValue(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
