package rulecheck

// CheckFunc scans document text and returns its findings in discovery order.
type CheckFunc func(text string) []Match

// Rule pairs a stable identifier with its check implementation. Name,
// Category, and Severity describe the rule for catalogue listings; the
// matches a check emits carry their own copies (a rule that reports more
// than one shape of finding, like unclosed-brackets, varies the name).
type Rule struct {
	ID       string
	Name     string
	Category Category
	Severity Severity
	Check    CheckFunc
}

// catalogue is the fixed, ordered rule table. The order is part of the
// engine's contract: output always follows it, regardless of where in the
// document each rule's matches occur. Adding a rule is a code change;
// disabling one is a per-invocation option.
var catalogue = []Rule{
	// High value checks
	{ID: "double-spaces", Name: "Double Spaces", Category: CategorySpacing, Severity: SeverityMedium, Check: checkDoubleSpaces},
	{ID: "repeated-words", Name: "Repeated Word", Category: CategoryGrammar, Severity: SeverityHigh, Check: checkRepeatedWords},
	{ID: "missing-space-after-punct", Name: "Missing Space After Punctuation", Category: CategorySpacing, Severity: SeverityMedium, Check: checkMissingSpaceAfterPunct},
	{ID: "space-before-punct", Name: "Space Before Punctuation", Category: CategorySpacing, Severity: SeverityMedium, Check: checkSpaceBeforePunct},
	{ID: "unclosed-brackets", Name: "Unclosed Brackets", Category: CategoryFormatting, Severity: SeverityHigh, Check: checkUnclosedBrackets},
	{ID: "trailing-whitespace", Name: "Trailing Whitespace", Category: CategoryFormatting, Severity: SeverityLow, Check: checkTrailingWhitespace},

	// Medium value checks
	{ID: "multiple-blank-lines", Name: "Multiple Blank Lines", Category: CategoryFormatting, Severity: SeverityLow, Check: checkMultipleBlankLines},
	{ID: "inconsistent-quotes", Name: "Inconsistent Quotes", Category: CategoryFormatting, Severity: SeverityLow, Check: checkInconsistentQuotes},
	{ID: "tab-characters", Name: "Tab Characters", Category: CategoryFormatting, Severity: SeverityLow, Check: checkTabCharacters},
	{ID: "double-hyphen-emdash", Name: "Double Hyphen Instead of Em-Dash", Category: CategoryFormatting, Severity: SeverityLow, Check: checkDoubleHyphenEmdash},

	// Lower priority checks
	{ID: "hidden-characters", Name: "Hidden Characters", Category: CategoryFormatting, Severity: SeverityMedium, Check: checkHiddenCharacters},
	{ID: "straight-vs-curly-quotes", Name: "Straight Quotes Only", Category: CategoryFormatting, Severity: SeverityLow, Check: checkStraightVsCurlyQuotes},
}

// Catalogue returns the rule table in declared order. The returned slice is
// a copy; callers may not alter the registry.
func Catalogue() []Rule {
	out := make([]Rule, len(catalogue))
	copy(out, catalogue)
	return out
}

// Lookup returns the rule with the given ID, if registered.
func Lookup(id string) (Rule, bool) {
	for _, r := range catalogue {
		if r.ID == id {
			return r, true
		}
	}
	return Rule{}, false
}

// Run executes every enabled check against text and concatenates the
// results in catalogue order. Rule IDs present in disabled are skipped;
// IDs that name no registered rule are silently ignored. A nil or empty
// disabled set runs everything.
func Run(text string, disabled map[string]struct{}) []Match {
	var matches []Match
	for _, r := range catalogue {
		if _, off := disabled[r.ID]; off {
			continue
		}
		matches = append(matches, r.Check(text)...)
	}
	return matches
}

// DisabledSet builds a disabled-rule set from a list of IDs.
func DisabledSet(ids []string) map[string]struct{} {
	if len(ids) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
