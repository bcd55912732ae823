package rulecheck

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	blankLinesRE   = regexp.MustCompile(`\n{3,}`)
	doubleHyphenRE = regexp.MustCompile(`([\p{L}\p{N}_])\s*--\s*([\p{L}\p{N}_])`)
)

// bracketPairs are evaluated independently: an unmatched "(" is reported
// without regard to "["/"{" balance.
var bracketPairs = []struct{ open, close string }{
	{"(", ")"},
	{"[", "]"},
	{"{", "}"},
}

// checkUnclosedBrackets compares whole-document open and close counts per
// bracket pair. This is an aggregate count comparison, not a stack-based
// nesting check: ")(" balances. At most one match per unbalanced pair,
// worded by direction.
func checkUnclosedBrackets(text string) []Match {
	var matches []Match
	for _, p := range bracketPairs {
		opens := strings.Count(text, p.open)
		closes := strings.Count(text, p.close)
		if opens == closes {
			continue
		}
		if diff := opens - closes; diff > 0 {
			matches = append(matches, Match{
				RuleID:     "unclosed-brackets",
				RuleName:   "Unclosed Bracket",
				Category:   CategoryFormatting,
				Severity:   SeverityHigh,
				Text:       fmt.Sprintf("%d unclosed '%s'", diff, p.open),
				Suggestion: fmt.Sprintf("Add %d closing '%s'", diff, p.close),
				Location:   locationDocumentWide,
				Context:    fmt.Sprintf("Found %d '%s' but only %d '%s'", opens, p.open, closes, p.close),
			})
		} else {
			matches = append(matches, Match{
				RuleID:     "unclosed-brackets",
				RuleName:   "Extra Closing Bracket",
				Category:   CategoryFormatting,
				Severity:   SeverityHigh,
				Text:       fmt.Sprintf("%d extra '%s'", -diff, p.close),
				Suggestion: fmt.Sprintf("Remove %d extra '%s' or add opening '%s'", -diff, p.close, p.open),
				Location:   locationDocumentWide,
				Context:    fmt.Sprintf("Found %d '%s' but only %d '%s'", closes, p.close, opens, p.open),
			})
		}
	}
	return matches
}

// checkTrailingWhitespace reports lines ending in whitespace as a single
// aggregate match with the affected-line count, to avoid one finding per
// line of noise.
func checkTrailingWhitespace(text string) []Match {
	lines := strings.Split(text, "\n")
	trailing := 0
	for _, line := range lines {
		if line != strings.TrimRightFunc(line, unicode.IsSpace) {
			trailing++
		}
	}
	if trailing == 0 {
		return nil
	}
	return []Match{{
		RuleID:     "trailing-whitespace",
		RuleName:   "Trailing Whitespace",
		Category:   CategoryFormatting,
		Severity:   SeverityLow,
		Text:       fmt.Sprintf("%d line(s) with trailing whitespace", trailing),
		Suggestion: "Remove trailing spaces",
		Location:   locationMultipleLines,
		Context:    fmt.Sprintf("Found in %d of %d lines", trailing, len(lines)),
	}}
}

// checkMultipleBlankLines finds runs of three or more newlines. The blank
// line count is the newline run length minus one.
func checkMultipleBlankLines(text string) []Match {
	var matches []Match
	for _, span := range blankLinesRE.FindAllStringIndex(text, -1) {
		start, end := span[0], span[1]
		blanks := (end - start) - 1
		matches = append(matches, Match{
			RuleID:     "multiple-blank-lines",
			RuleName:   "Multiple Blank Lines",
			Category:   CategoryFormatting,
			Severity:   SeverityLow,
			Text:       fmt.Sprintf("%d consecutive blank lines", blanks),
			Suggestion: "Reduce to single blank line",
			Location:   lineLocation(text, start),
			Context:    "Excessive vertical spacing",
		})
	}
	return matches
}

// checkTabCharacters reports tab characters (usually copy-paste artifacts)
// as a single aggregate count.
func checkTabCharacters(text string) []Match {
	tabs := strings.Count(text, "\t")
	if tabs == 0 {
		return nil
	}
	return []Match{{
		RuleID:     "tab-characters",
		RuleName:   "Tab Characters",
		Category:   CategoryFormatting,
		Severity:   SeverityLow,
		Text:       fmt.Sprintf("%d tab character(s)", tabs),
		Suggestion: "Replace tabs with spaces for consistent formatting",
		Location:   locationMultipleLocations,
		Context:    "Tabs may render inconsistently across applications",
	}}
}

// checkDoubleHyphenEmdash finds "word -- word" used as an em-dash
// substitute, one match per occurrence.
func checkDoubleHyphenEmdash(text string) []Match {
	var matches []Match
	for _, span := range doubleHyphenRE.FindAllStringSubmatchIndex(text, -1) {
		start, end := span[0], span[1]
		left := text[span[2]:span[3]]
		right := text[span[4]:span[5]]
		matches = append(matches, Match{
			RuleID:     "double-hyphen-emdash",
			RuleName:   "Double Hyphen Instead of Em-Dash",
			Category:   CategoryFormatting,
			Severity:   SeverityLow,
			Text:       text[start:end],
			Suggestion: left + "—" + right,
			Location:   lineLocation(text, start),
			Context:    contextWindow(text, start, end),
		})
	}
	return matches
}
