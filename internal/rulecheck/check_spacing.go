package rulecheck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	doubleSpaceRE       = regexp.MustCompile(` {2,}`)
	punctThenLetterRE   = regexp.MustCompile(`([.,;:!?])([A-Za-z])`)
	spaceBeforePunctRE  = regexp.MustCompile(`([\p{L}\p{N}_])\s+([.,;:!?])`)
	urlLookbackMarkers  = []string{"http", "www.", "ftp", ".com", ".org"}
	urlLookbackDistance = 10
)

// checkDoubleSpaces finds runs of two or more consecutive spaces. Runs at
// the start of a line are indentation, not an error, and are skipped.
func checkDoubleSpaces(text string) []Match {
	var matches []Match
	for _, span := range doubleSpaceRE.FindAllStringIndex(text, -1) {
		start, end := span[0], span[1]
		if start == 0 || text[start-1] == '\n' {
			continue
		}
		matches = append(matches, Match{
			RuleID:     "double-spaces",
			RuleName:   "Double Spaces",
			Category:   CategorySpacing,
			Severity:   SeverityMedium,
			Text:       strconv.Quote(text[start:end]),
			Suggestion: "Replace with single space",
			Location:   linePosLocation(text, start),
			Context:    contextWindow(text, start, end),
		})
	}
	return matches
}

// checkMissingSpaceAfterPunct finds punctuation immediately followed by a
// letter, as in "Hello,world". The URL exclusion looks back only
// urlLookbackDistance characters before the match; a URL whose scheme or
// domain marker sits further back in a long token is not excluded. That
// bound is intentional — it keeps the scan local and the false-negative
// rate has proven acceptable in practice.
func checkMissingSpaceAfterPunct(text string) []Match {
	var matches []Match
	for _, span := range punctThenLetterRE.FindAllStringIndex(text, -1) {
		start, end := span[0], span[1]
		punct, letter := text[start:start+1], text[start+1:end]

		lookStart := stepBack(text, start, urlLookbackDistance)
		before := strings.ToLower(text[lookStart:start])
		if containsAny(before, urlLookbackMarkers) {
			continue
		}
		// Decimal numbers like "3.5"
		if punct == "." && start > 0 {
			if r, _ := utf8.DecodeLastRuneInString(text[:start]); unicode.IsDigit(r) {
				continue
			}
		}
		matches = append(matches, Match{
			RuleID:     "missing-space-after-punct",
			RuleName:   "Missing Space After Punctuation",
			Category:   CategorySpacing,
			Severity:   SeverityMedium,
			Text:       text[start:end],
			Suggestion: fmt.Sprintf("%s %s", punct, letter),
			Location:   lineLocation(text, start),
			Context:    contextWindow(text, start, end),
		})
	}
	return matches
}

// checkSpaceBeforePunct finds whitespace between a word character and
// punctuation, as in "Hello ,". One match per occurrence.
func checkSpaceBeforePunct(text string) []Match {
	var matches []Match
	for _, span := range spaceBeforePunctRE.FindAllStringSubmatchIndex(text, -1) {
		start, end := span[0], span[1]
		word := text[span[2]:span[3]]
		punct := text[span[4]:span[5]]
		matches = append(matches, Match{
			RuleID:     "space-before-punct",
			RuleName:   "Space Before Punctuation",
			Category:   CategorySpacing,
			Severity:   SeverityMedium,
			Text:       text[start:end],
			Suggestion: word + punct,
			Location:   lineLocation(text, start),
			Context:    contextWindow(text, start, end),
		})
	}
	return matches
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
