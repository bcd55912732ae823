package rulecheck

import (
	"fmt"
	"strings"
)

// hiddenChars is the fixed set of invisible and control code points the
// hidden-characters check detects, in reporting order.
var hiddenChars = []struct {
	char string
	name string
}{
	{"\u200b", "zero-width space"},
	{"\u200c", "zero-width non-joiner"},
	{"\u200d", "zero-width joiner"},
	{"\ufeff", "byte order mark"},
	{"\u00a0", "non-breaking space"},
	{"\u2060", "word joiner"},
}

// checkHiddenCharacters reports all invisible characters found as a single
// aggregate match whose context lists each character type with its count.
func checkHiddenCharacters(text string) []Match {
	var found []string
	for _, hc := range hiddenChars {
		if n := strings.Count(text, hc.char); n > 0 {
			found = append(found, fmt.Sprintf("%s: %d", hc.name, n))
		}
	}
	if len(found) == 0 {
		return nil
	}
	return []Match{{
		RuleID:     "hidden-characters",
		RuleName:   "Hidden Characters",
		Category:   CategoryFormatting,
		Severity:   SeverityMedium,
		Text:       "Found hidden characters",
		Suggestion: "Remove hidden characters that may cause display issues",
		Location:   locationDocumentWide,
		Context:    strings.Join(found, ", "),
	}}
}
