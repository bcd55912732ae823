package transcript

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `{
  "recording_id": "rec-123",
  "title": "Discovery Call",
  "url": "https://example.com/calls/rec-123",
  "created_at": "2026-08-20T15:00:00Z",
  "transcript": [
    {"speaker": {"display_name": "Alice", "email": "alice@example.com"}, "text": "Thanks for joining.", "timestamp": "00:00:05"},
    {"speaker": {"display_name": "Bob"}, "text": "Happy to be here.", "timestamp": "00:00:09"},
    {"speaker": {"display_name": "Alice"}, "text": "Let's talk budget.", "timestamp": "00:00:15"}
  ],
  "summary": "Intro call.",
  "action_items": ["Send proposal"]
}`

func TestParse(t *testing.T) {
	rec, err := Parse([]byte(sampleExport))
	require.NoError(t, err)
	assert.Equal(t, "Discovery Call", rec.Title)
	assert.Len(t, rec.Transcript, 3)
	assert.Equal(t, []string{"Send proposal"}, rec.ActionItems)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.Error(t, err)

	_, err = Parse([]byte(`{"title": "Empty", "transcript": []}`))
	assert.Error(t, err)
}

func TestFullText(t *testing.T) {
	rec, err := Parse([]byte(sampleExport))
	require.NoError(t, err)

	want := "[00:00:05] Alice: Thanks for joining.\n" +
		"[00:00:09] Bob: Happy to be here.\n" +
		"[00:00:15] Alice: Let's talk budget."
	assert.Equal(t, want, rec.FullText())
}

func TestFullText_UnknownSpeaker(t *testing.T) {
	rec := &Recording{Transcript: []Entry{
		{Text: "hello", Timestamp: "00:00:01"},
	}}
	assert.Equal(t, "[00:00:01] Unknown: hello", rec.FullText())
}

func TestAttendees(t *testing.T) {
	rec, err := Parse([]byte(sampleExport))
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, rec.Attendees())
}

func TestAttendeeSummary(t *testing.T) {
	t.Run("short list", func(t *testing.T) {
		rec, err := Parse([]byte(sampleExport))
		require.NoError(t, err)
		assert.Equal(t, "Alice, Bob", rec.AttendeeSummary())
	})

	t.Run("long list folds", func(t *testing.T) {
		var entries []Entry
		for i := 0; i < 7; i++ {
			entries = append(entries, Entry{
				Speaker: Speaker{DisplayName: fmt.Sprintf("Person %d", i+1)},
				Text:    "hi",
			})
		}
		rec := &Recording{Transcript: entries}
		assert.Equal(t, "Person 1, Person 2, Person 3, Person 4, Person 5 +2 more", rec.AttendeeSummary())
	})

	t.Run("empty", func(t *testing.T) {
		rec := &Recording{}
		assert.Equal(t, "No attendees identified", rec.AttendeeSummary())
	})
}
