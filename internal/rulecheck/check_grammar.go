package rulecheck

import (
	"fmt"
	"regexp"
	"strings"
)

var wordRE = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// repeatedWordStoplist holds words commonly doubled on purpose ("had had",
// "that that") which the repeated-words check must not flag.
var repeatedWordStoplist = map[string]struct{}{
	"that":   {},
	"had":    {},
	"very":   {},
	"really": {},
	"blah":   {},
}

// checkRepeatedWords finds the same word repeated consecutively with only
// whitespace between, case-insensitively ("The the"). Pairs are consumed
// left to right without overlap, so "the the the" yields one match.
func checkRepeatedWords(text string) []Match {
	var matches []Match
	words := wordRE.FindAllStringIndex(text, -1)

	for i := 0; i+1 < len(words); i++ {
		w1 := text[words[i][0]:words[i][1]]
		w2 := text[words[i+1][0]:words[i+1][1]]
		gap := text[words[i][1]:words[i+1][0]]
		if gap == "" || strings.TrimSpace(gap) != "" {
			continue
		}
		if !strings.EqualFold(w1, w2) {
			continue
		}
		if _, skip := repeatedWordStoplist[strings.ToLower(w1)]; skip {
			continue
		}
		start, end := words[i][0], words[i+1][1]
		matches = append(matches, Match{
			RuleID:     "repeated-words",
			RuleName:   "Repeated Word",
			Category:   CategoryGrammar,
			Severity:   SeverityHigh,
			Text:       text[start:end],
			Suggestion: fmt.Sprintf("Remove duplicate '%s'", w1),
			Location:   lineLocation(text, start),
			Context:    contextWindow(text, start, end),
		})
		i++ // the second word cannot start another pair
	}
	return matches
}
