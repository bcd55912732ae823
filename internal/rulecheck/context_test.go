package rulecheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineNumber(t *testing.T) {
	text := "one\ntwo\nthree"
	assert.Equal(t, 1, lineNumber(text, 0))
	assert.Equal(t, 1, lineNumber(text, 3)) // the newline itself is line 1
	assert.Equal(t, 2, lineNumber(text, 4))
	assert.Equal(t, 3, lineNumber(text, len(text)))
}

func TestCharPosition(t *testing.T) {
	text := "héllo wörld"
	// Byte offset of 'w' is 7 (two two-byte runes before it), rune position 6.
	assert.Equal(t, 6, charPosition(text, strings.IndexByte(text, 'w')))
	assert.Equal(t, 0, charPosition(text, 0))
}

func TestContextWindow(t *testing.T) {
	t.Run("short text has no ellipsis", func(t *testing.T) {
		text := "a bad  gap"
		got := contextWindow(text, 5, 7)
		assert.Equal(t, text, got)
	})

	t.Run("clipped on both sides", func(t *testing.T) {
		text := strings.Repeat("x", 100) + "!!" + strings.Repeat("y", 100)
		got := contextWindow(text, 100, 102)
		assert.Equal(t, "..."+strings.Repeat("x", ContextWindow)+"!!"+strings.Repeat("y", ContextWindow)+"...", got)
	})

	t.Run("span at document start", func(t *testing.T) {
		text := "!!" + strings.Repeat("y", 100)
		got := contextWindow(text, 0, 2)
		assert.True(t, strings.HasPrefix(got, "!!"))
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("span at document end", func(t *testing.T) {
		text := strings.Repeat("x", 100) + "!!"
		got := contextWindow(text, 100, 102)
		assert.True(t, strings.HasPrefix(got, "..."))
		assert.True(t, strings.HasSuffix(got, "!!"))
	})

	t.Run("steps runes not bytes", func(t *testing.T) {
		text := strings.Repeat("é", 50) + "!!" + strings.Repeat("ü", 50)
		got := contextWindow(text, 100, 102) // each é is 2 bytes
		assert.Equal(t, "..."+strings.Repeat("é", ContextWindow)+"!!"+strings.Repeat("ü", ContextWindow)+"...", got)
	})
}
