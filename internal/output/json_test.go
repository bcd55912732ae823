package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
)

func TestJSONWriter_RoundTrip(t *testing.T) {
	result := sampleResult()

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, result); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var decoded analysis.Result
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.Title != result.Title {
		t.Errorf("Title = %q, want %q", decoded.Title, result.Title)
	}
	if len(decoded.Issues) != len(result.Issues) {
		t.Errorf("Issues = %d, want %d", len(decoded.Issues), len(result.Issues))
	}
	if decoded.Score == nil || decoded.Score.SpellingGrammar != 85 {
		t.Error("Score breakdown should survive the round trip")
	}
}

func TestJSONWriter_OmitsEmptyScores(t *testing.T) {
	result := sampleResult()
	result.Score = nil

	var buf bytes.Buffer
	w := &JSONWriter{}
	if err := w.Write(&buf, result); err != nil {
		t.Fatalf("Write error: %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if _, ok := m["score"]; ok {
		t.Error("Nil score should be omitted")
	}
	if _, ok := m["bannt_score"]; ok {
		t.Error("Nil BANNT score should be omitted")
	}
}
