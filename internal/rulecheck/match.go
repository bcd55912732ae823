package rulecheck

// Category classifies the kind of issue a rule detects.
type Category string

const (
	CategorySpelling   Category = "spelling"
	CategoryGrammar    Category = "grammar"
	CategorySpacing    Category = "spacing"
	CategoryFormatting Category = "formatting"
)

// Severity is the static severity of a rule's findings.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Match is one finding from one check. Text and Context are copies of the
// offending input, never references into it; a Match is complete on its own
// and is never mutated after a check returns it.
//
// Point findings carry a "Line N" or "Line N, position P" location and a
// context window around the span. Aggregate findings summarize every
// occurrence in the document as a single record with a document-wide
// location and an explanatory context string.
type Match struct {
	RuleID     string   `json:"rule_id"`
	RuleName   string   `json:"rule_name"`
	Category   Category `json:"category"`
	Severity   Severity `json:"severity"`
	Text       string   `json:"text"`
	Suggestion string   `json:"suggestion"`
	Location   string   `json:"location"`
	Context    string   `json:"context"`
}

// Location descriptors used by aggregate findings.
const (
	locationDocumentWide      = "Document-wide"
	locationMultipleLines     = "Multiple lines"
	locationMultipleLocations = "Multiple locations"
)
