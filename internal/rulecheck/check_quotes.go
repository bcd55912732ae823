package rulecheck

import (
	"fmt"
	"strings"
)

// apostropheMixThreshold is the minimum count of BOTH straight and curly
// apostrophes before a mix is flagged. Apostrophes are common enough that
// low counts of either kind are noise.
const apostropheMixThreshold = 3

// straightQuoteNudgeThreshold is the straight-quote count above which an
// all-straight document earns the style nudge.
const straightQuoteNudgeThreshold = 10

func countAll(text string, subs ...string) int {
	n := 0
	for _, s := range subs {
		n += strings.Count(text, s)
	}
	return n
}

// checkInconsistentQuotes flags a mix of straight and curly double quotes,
// and separately a mix of straight and curly apostrophes. Both findings
// share the inconsistent-quotes rule ID.
func checkInconsistentQuotes(text string) []Match {
	var matches []Match

	straightDouble := strings.Count(text, `"`)
	curlyDouble := countAll(text, "“", "”")
	straightSingle := strings.Count(text, "'")
	curlySingle := countAll(text, "‘", "’")

	if straightDouble > 0 && curlyDouble > 0 {
		matches = append(matches, Match{
			RuleID:     "inconsistent-quotes",
			RuleName:   "Inconsistent Double Quotes",
			Category:   CategoryFormatting,
			Severity:   SeverityLow,
			Text:       fmt.Sprintf("Mix of \" (%d) and “/” (%d)", straightDouble, curlyDouble),
			Suggestion: "Use consistent quote style throughout",
			Location:   locationDocumentWide,
			Context:    "Consider using curly quotes for published documents",
		})
	}

	if straightSingle > apostropheMixThreshold && curlySingle > apostropheMixThreshold {
		matches = append(matches, Match{
			RuleID:     "inconsistent-quotes",
			RuleName:   "Inconsistent Single Quotes/Apostrophes",
			Category:   CategoryFormatting,
			Severity:   SeverityLow,
			Text:       fmt.Sprintf("Mix of ' (%d) and ‘/’ (%d)", straightSingle, curlySingle),
			Suggestion: "Use consistent apostrophe style",
			Location:   locationDocumentWide,
			Context:    "May indicate copy-paste from different sources",
		})
	}
	return matches
}

// checkStraightVsCurlyQuotes nudges documents that use straight quotes
// exclusively: it fires only when straight quotes are plentiful and no
// curly quote appears at all. A style suggestion, not an error.
func checkStraightVsCurlyQuotes(text string) []Match {
	straight := strings.Count(text, `"`) + strings.Count(text, "'")
	curly := countAll(text, "“", "”", "‘", "’")

	if straight <= straightQuoteNudgeThreshold || curly != 0 {
		return nil
	}
	return []Match{{
		RuleID:     "straight-vs-curly-quotes",
		RuleName:   "Straight Quotes Only",
		Category:   CategoryFormatting,
		Severity:   SeverityLow,
		Text:       fmt.Sprintf("%d straight quotes", straight),
		Suggestion: "Consider using curly quotes for professional documents",
		Location:   locationDocumentWide,
		Context:    "Straight quotes are fine for code/technical docs",
	}}
}
