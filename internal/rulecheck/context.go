package rulecheck

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ContextWindow is the number of characters of surrounding text included on
// each side of a point finding.
const ContextWindow = 30

// lineNumber returns the 1-indexed line of the byte offset pos, counting
// newlines strictly before it.
func lineNumber(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}

// charPosition returns the 0-indexed character (rune) position of the byte
// offset pos.
func charPosition(text string, pos int) int {
	return utf8.RuneCountInString(text[:pos])
}

// lineLocation formats a point-finding location from a byte offset.
func lineLocation(text string, pos int) string {
	return fmt.Sprintf("Line %d", lineNumber(text, pos))
}

// linePosLocation is lineLocation plus the character position within the
// document.
func linePosLocation(text string, pos int) string {
	return fmt.Sprintf("Line %d, position %d", lineNumber(text, pos), charPosition(text, pos))
}

// contextWindow returns up to ContextWindow characters before and after the
// byte span [start, end), clipped to the document and marked with "..."
// where clipped mid-text. Safe for spans at position 0 and at document end.
func contextWindow(text string, start, end int) string {
	ctxStart := stepBack(text, start, ContextWindow)
	ctxEnd := stepForward(text, end, ContextWindow)

	var b strings.Builder
	if ctxStart > 0 {
		b.WriteString("...")
	}
	b.WriteString(text[ctxStart:ctxEnd])
	if ctxEnd < len(text) {
		b.WriteString("...")
	}
	return b.String()
}

// stepBack moves at most n runes backward from byte offset pos.
func stepBack(text string, pos, n int) int {
	for i := 0; i < n && pos > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:pos])
		pos -= size
	}
	return pos
}

// stepForward moves at most n runes forward from byte offset pos.
func stepForward(text string, pos, n int) int {
	for i := 0; i < n && pos < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return pos
}
