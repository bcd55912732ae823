package rulecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_EmptyText(t *testing.T) {
	assert.Empty(t, Run("", nil))
}

func TestRun_CleanText(t *testing.T) {
	assert.Empty(t, Run("A perfectly ordinary sentence.", nil))
}

func TestRun_ArbitraryUnicode(t *testing.T) {
	inputs := []string{
		"日本語のテキスト。",
		"emoji 🎉 and more 🚀",
		"mixed \x00 control \x7f bytes",
		"\n\n\n",
		"a",
	}
	for _, in := range inputs {
		assert.NotPanics(t, func() { Run(in, nil) }, "input %q", in)
	}
}

func TestRun_DisableRemovesOnlyThatRule(t *testing.T) {
	// Triggers double-spaces and repeated-words.
	text := "the the cat  sat"

	all := Run(text, nil)
	require.NotEmpty(t, all)
	assert.True(t, hasRuleID(all, "double-spaces"))
	assert.True(t, hasRuleID(all, "repeated-words"))

	filtered := Run(text, DisabledSet([]string{"double-spaces"}))
	assert.False(t, hasRuleID(filtered, "double-spaces"))
	assert.True(t, hasRuleID(filtered, "repeated-words"))
	assert.Len(t, filtered, len(all)-countRuleID(all, "double-spaces"))
}

func TestRun_UnknownDisabledIDIsNoOp(t *testing.T) {
	text := "the the cat  sat"
	base := Run(text, nil)
	withUnknown := Run(text, DisabledSet([]string{"no-such-rule"}))
	assert.Equal(t, base, withUnknown)
}

func TestRun_Idempotent(t *testing.T) {
	text := "Hello,world  the the (unclosed\t\n\n\n\nend "
	disabled := DisabledSet([]string{"tab-characters"})
	first := Run(text, disabled)
	second := Run(text, disabled)
	assert.Equal(t, first, second)
}

func TestRun_OutputFollowsCatalogueOrder(t *testing.T) {
	// Arrange the text so later-catalogue rules match earlier in the text
	// than earlier-catalogue rules; output order must still be catalogue
	// order, not text order.
	text := "word -- word\nthe the cat\nended  badly"

	matches := Run(text, nil)
	require.NotEmpty(t, matches)

	order := catalogueIndexByID(t)
	last := -1
	for _, m := range matches {
		idx, ok := order[m.RuleID]
		require.True(t, ok, "unregistered rule id %q in output", m.RuleID)
		assert.GreaterOrEqual(t, idx, last, "rule %q out of catalogue order", m.RuleID)
		if idx > last {
			last = idx
		}
	}
}

func TestCatalogue_StableIDsAndOrder(t *testing.T) {
	want := []string{
		"double-spaces",
		"repeated-words",
		"missing-space-after-punct",
		"space-before-punct",
		"unclosed-brackets",
		"trailing-whitespace",
		"multiple-blank-lines",
		"inconsistent-quotes",
		"tab-characters",
		"double-hyphen-emdash",
		"hidden-characters",
		"straight-vs-curly-quotes",
	}
	rules := Catalogue()
	require.Len(t, rules, len(want))
	for i, r := range rules {
		assert.Equal(t, want[i], r.ID)
	}
}

func TestCatalogue_IsACopy(t *testing.T) {
	rules := Catalogue()
	rules[0].ID = "tampered"
	fresh := Catalogue()
	assert.Equal(t, "double-spaces", fresh[0].ID)
}

// TestChecks_EmitTheirCatalogueID runs each rule against a sample known to
// trigger it and verifies every emitted match carries the registered ID and
// the rule's static severity and category.
func TestChecks_EmitTheirCatalogueID(t *testing.T) {
	samples := map[string]string{
		"double-spaces":             "hello  world",
		"repeated-words":            "the the cat",
		"missing-space-after-punct": "Hello,world",
		"space-before-punct":        "Hello , world",
		"unclosed-brackets":         "(a, (b)",
		"trailing-whitespace":       "line one \nline two",
		"multiple-blank-lines":      "a\n\n\n\nb",
		"inconsistent-quotes":       "\"straight\" and “curly”",
		"tab-characters":            "col1\tcol2",
		"double-hyphen-emdash":      "one -- two",
		"hidden-characters":         "soft\u200bbreak",
		"straight-vs-curly-quotes":  `"a" "b" "c" "d" "e" "f"`,
	}

	for _, r := range Catalogue() {
		sample, ok := samples[r.ID]
		require.True(t, ok, "no trigger sample for %q", r.ID)

		matches := r.Check(sample)
		require.NotEmpty(t, matches, "sample failed to trigger %q", r.ID)
		for _, m := range matches {
			assert.Equal(t, r.ID, m.RuleID)
			assert.Equal(t, r.Severity, m.Severity)
			assert.Equal(t, r.Category, m.Category)
		}
	}
}

func TestLookup(t *testing.T) {
	r, ok := Lookup("unclosed-brackets")
	require.True(t, ok)
	assert.Equal(t, SeverityHigh, r.Severity)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func hasRuleID(ms []Match, id string) bool { return countRuleID(ms, id) > 0 }

func countRuleID(ms []Match, id string) int {
	n := 0
	for _, m := range ms {
		if m.RuleID == id {
			n++
		}
	}
	return n
}

func catalogueIndexByID(t *testing.T) map[string]int {
	t.Helper()
	m := make(map[string]int)
	for i, r := range Catalogue() {
		m[r.ID] = i
	}
	return m
}
