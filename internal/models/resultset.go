package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// NamedResult pairs an analyzer with its result.
type NamedResult struct {
	Name   AnalyzerName
	Result AnalyzerResult
}

// ResultSet is an insertion-ordered analyzer → result mapping.
// It serializes as a JSON object whose keys keep run order.
type ResultSet struct {
	entries []NamedResult
}

// Set stores a result, replacing any previous result for the same analyzer.
func (s *ResultSet) Set(name AnalyzerName, result AnalyzerResult) {
	for i := range s.entries {
		if s.entries[i].Name == name {
			s.entries[i].Result = result
			return
		}
	}
	s.entries = append(s.entries, NamedResult{Name: name, Result: result})
}

// Get looks up the result for an analyzer.
func (s ResultSet) Get(name AnalyzerName) (AnalyzerResult, bool) {
	for _, e := range s.entries {
		if e.Name == name {
			return e.Result, true
		}
	}
	return AnalyzerResult{}, false
}

// Entries returns results in insertion order.
func (s ResultSet) Entries() []NamedResult {
	return s.entries
}

// Len returns the number of stored results.
func (s ResultSet) Len() int {
	return len(s.entries)
}

// MarshalJSON writes an object with keys in insertion order.
func (s ResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(e.Name))
		if err != nil {
			return nil, err
		}
		value, err := e.Result.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", e.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object, keeping document key order.
func (s *ResultSet) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		s.entries = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("detailed results: expected object, got %v", tok)
	}

	s.entries = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("detailed results: expected key, got %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("detailed results %s: %w", name, err)
		}

		var result AnalyzerResult
		if err := result.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("detailed results %s: %w", name, err)
		}
		s.Set(AnalyzerName(name), result)
	}

	_, err = dec.Token()
	return err
}
