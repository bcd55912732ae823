package analysis

import (
	"strings"
	"time"
)

// DocumentType identifies what kind of document is being analyzed.
type DocumentType string

const (
	TypeProposal         DocumentType = "proposal"
	TypeKickoff          DocumentType = "kickoff"
	TypeTranscriptSales  DocumentType = "transcript_sales"
	TypeTranscriptClient DocumentType = "transcript_client"
)

// DetectDocumentType infers the document type from a source label such as a
// file name or title. Kickoff decks are the only type with a reliable naming
// convention; everything else defaults to proposal.
func DetectDocumentType(label string) DocumentType {
	l := strings.ToLower(label)
	if strings.Contains(l, "kickoff") || strings.Contains(l, "kick-off") {
		return TypeKickoff
	}
	return TypeProposal
}

// IssueSeverity is the severity level of a detected issue.
type IssueSeverity string

const (
	SeverityCritical IssueSeverity = "critical"
	SeverityHigh     IssueSeverity = "high"
	SeverityMedium   IssueSeverity = "medium"
	SeverityLow      IssueSeverity = "low"
	SeverityInfo     IssueSeverity = "info"
)

// SeverityRank returns a numeric rank for sorting (higher = more severe).
func SeverityRank(s IssueSeverity) int {
	switch s {
	case SeverityCritical:
		return 5
	case SeverityHigh:
		return 4
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// IssueCategory is the kind of problem an issue describes.
type IssueCategory string

const (
	CategorySpelling       IssueCategory = "spelling"
	CategoryGrammar        IssueCategory = "grammar"
	CategorySpacing        IssueCategory = "spacing"
	CategoryFormatting     IssueCategory = "formatting"
	CategoryMath           IssueCategory = "math"
	CategoryMissingContent IssueCategory = "missing_content"
	CategoryStyle          IssueCategory = "style"
	CategoryBANNT          IssueCategory = "bannt"
	CategoryOpportunity    IssueCategory = "opportunity"
	CategoryConcern        IssueCategory = "concern"
)

// Issue sources.
const (
	SourceRule = "rule"
	SourceLLM  = "llm"
)

// Issue is a single detected problem, from either the rule engine or an LLM
// analyzer.
type Issue struct {
	Category     IssueCategory `json:"category"`
	Severity     IssueSeverity `json:"severity"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Location     string        `json:"location,omitempty"`
	Context      string        `json:"context,omitempty"`
	Suggestion   string        `json:"suggestion,omitempty"`
	Source       string        `json:"source"`
	RuleID       string        `json:"rule_id,omitempty"`
	AffectsScore bool          `json:"affects_score"`
}

// ScoreBreakdown holds the per-category document scores, each 0 to 100.
type ScoreBreakdown struct {
	SpellingGrammar int `json:"spelling_grammar"`
	RequiredContent int `json:"required_content"`
	MathAccuracy    int `json:"math_accuracy"`
}

// Overall is the weighted document score: spelling/grammar 50%, required
// content 40%, math accuracy 10%.
func (s ScoreBreakdown) Overall() int {
	return int(float64(s.SpellingGrammar)*0.5 +
		float64(s.RequiredContent)*0.4 +
		float64(s.MathAccuracy)*0.1)
}

// BANNTScore records which BANNT elements a sales call covered.
type BANNTScore struct {
	Budget         bool   `json:"budget"`
	BudgetNotes    string `json:"budget_notes"`
	Authority      bool   `json:"authority"`
	AuthorityNotes string `json:"authority_notes"`
	Need           bool   `json:"need"`
	NeedNotes      string `json:"need_notes"`
	NextSteps      bool   `json:"next_steps"`
	NextStepsNotes string `json:"next_steps_notes"`
	Timeline       bool   `json:"timeline"`
	TimelineNotes  string `json:"timeline_notes"`
}

// Score counts the covered BANNT elements, 0 to 5.
func (b BANNTScore) Score() int {
	n := 0
	for _, ok := range []bool{b.Budget, b.Authority, b.Need, b.NextSteps, b.Timeline} {
		if ok {
			n++
		}
	}
	return n
}

// Timing contains performance metrics for one analysis run.
type Timing struct {
	LLMMs   int64 `json:"llm_ms"`
	TotalMs int64 `json:"total_ms"`
}

// Result is the full outcome of analyzing one document or transcript.
type Result struct {
	Source     string          `json:"source"`
	Title      string          `json:"title"`
	Type       DocumentType    `json:"document_type"`
	AnalyzedAt time.Time       `json:"analyzed_at"`
	Provider   string          `json:"provider"`
	RunID      string          `json:"run_id"`
	Score      *ScoreBreakdown `json:"score,omitempty"`
	BANNT      *BANNTScore     `json:"bannt_score,omitempty"`
	Issues     []Issue         `json:"issues"`
	TextLength int             `json:"text_length"`
	Timing     Timing          `json:"timing"`
}

// ScoredIssues returns the issues that affect the document score.
func (r *Result) ScoredIssues() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if i.AffectsScore {
			out = append(out, i)
		}
	}
	return out
}

// FlaggedIssues returns the issues reported for information only.
func (r *Result) FlaggedIssues() []Issue {
	var out []Issue
	for _, i := range r.Issues {
		if !i.AffectsScore {
			out = append(out, i)
		}
	}
	return out
}

// IssuesBySeverity groups the issues by severity level.
func (r *Result) IssuesBySeverity() map[IssueSeverity][]Issue {
	out := make(map[IssueSeverity][]Issue)
	for _, i := range r.Issues {
		out[i.Severity] = append(out[i.Severity], i)
	}
	return out
}

// SeverityCounts holds issue counts by severity level.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Info     int `json:"info"`
}

// Counts tallies the issues by severity.
func (r *Result) Counts() SeverityCounts {
	var c SeverityCounts
	for _, i := range r.Issues {
		switch i.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityHigh:
			c.High++
		case SeverityMedium:
			c.Medium++
		case SeverityLow:
			c.Low++
		case SeverityInfo:
			c.Info++
		}
	}
	return c
}
