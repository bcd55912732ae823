package transcript

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Speaker identifies who said an utterance.
type Speaker struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
}

// Entry is one utterance in a recording export.
type Entry struct {
	Speaker   Speaker `json:"speaker"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"`
}

// Recording is a meeting recording export as produced by call recording
// tools.
type Recording struct {
	RecordingID string   `json:"recording_id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	ShareURL    string   `json:"share_url,omitempty"`
	CreatedAt   string   `json:"created_at"`
	Transcript  []Entry  `json:"transcript"`
	Summary     string   `json:"summary,omitempty"`
	ActionItems []string `json:"action_items,omitempty"`
}

// Parse decodes a recording export JSON document.
func Parse(data []byte) (*Recording, error) {
	var rec Recording
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing recording export: %w", err)
	}
	if len(rec.Transcript) == 0 {
		return nil, fmt.Errorf("recording export has no transcript entries")
	}
	return &rec, nil
}

// FullText renders the transcript in the canonical analyzable form, one
// "[timestamp] Speaker: text" line per utterance.
func (r *Recording) FullText() string {
	lines := make([]string, 0, len(r.Transcript))
	for _, e := range r.Transcript {
		name := e.Speaker.DisplayName
		if name == "" {
			name = "Unknown"
		}
		lines = append(lines, fmt.Sprintf("[%s] %s: %s", e.Timestamp, name, e.Text))
	}
	return strings.Join(lines, "\n")
}

// Attendees returns the distinct speaker names in first-spoken order.
func (r *Recording) Attendees() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, e := range r.Transcript {
		name := e.Speaker.DisplayName
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// AttendeeSummary formats the attendee list for display, listing the first
// five names and folding the rest into a "+N more" suffix.
func (r *Recording) AttendeeSummary() string {
	names := r.Attendees()
	if len(names) == 0 {
		return "No attendees identified"
	}
	if len(names) <= 5 {
		return strings.Join(names, ", ")
	}
	return fmt.Sprintf("%s +%d more", strings.Join(names[:5], ", "), len(names)-5)
}
