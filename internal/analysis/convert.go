package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/rulecheck"
)

// rawSGResult is the JSON structure the spelling/grammar prompt asks for.
type rawSGResult struct {
	Issues []struct {
		Category   string `json:"category"`
		Text       string `json:"text"`
		Suggestion string `json:"suggestion"`
		Location   string `json:"location"`
		Severity   string `json:"severity"`
	} `json:"issues"`
}

// rawContentResult is the JSON structure the content prompt asks for.
type rawContentResult struct {
	Issues []struct {
		Category     string `json:"category"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		Suggestion   string `json:"suggestion"`
		Location     string `json:"location"`
		Severity     string `json:"severity"`
		AffectsScore *bool  `json:"affects_score"`
	} `json:"issues"`
	SectionsFound     []string `json:"required_sections_found"`
	SectionsMissing   []string `json:"required_sections_missing"`
	StyleObservations []string `json:"style_observations"`
}

// rawBANNTElement covers the per-element shape of the BANNT response. The
// prompt uses a different flag name per element, so all four are declared
// and Covered ORs them.
type rawBANNTElement struct {
	Discussed   bool   `json:"discussed"`
	Identified  bool   `json:"identified"`
	Articulated bool   `json:"articulated"`
	Scheduled   bool   `json:"scheduled"`
	Notes       string `json:"notes"`
}

func (e rawBANNTElement) Covered() bool {
	return e.Discussed || e.Identified || e.Articulated || e.Scheduled
}

type rawBANNTResult struct {
	Budget          rawBANNTElement `json:"budget"`
	Authority       rawBANNTElement `json:"authority"`
	Need            rawBANNTElement `json:"need"`
	NextSteps       rawBANNTElement `json:"next_steps"`
	Timeline        rawBANNTElement `json:"timeline"`
	Recommendations []string        `json:"recommendations"`
}

type rawClientCallResult struct {
	Opportunities []struct {
		Type        string `json:"type"`
		Description string `json:"description"`
		Quote       string `json:"quote"`
		Timestamp   string `json:"timestamp"`
	} `json:"opportunities"`
	Concerns []struct {
		Type              string `json:"type"`
		Severity          string `json:"severity"`
		Description       string `json:"description"`
		Quote             string `json:"quote"`
		Timestamp         string `json:"timestamp"`
		RecommendedAction string `json:"recommended_action"`
	} `json:"concerns"`
}

// parseObject decodes an LLM response into v, stripping a markdown code
// fence if the model wrapped the JSON in one.
func parseObject(content string, v any) error {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		if len(lines) >= 2 {
			start := 1
			end := len(lines)
			if strings.TrimSpace(lines[end-1]) == "```" {
				end--
			}
			content = strings.Join(lines[start:end], "\n")
		}
	}
	if err := json.Unmarshal([]byte(content), v); err != nil {
		return fmt.Errorf("invalid JSON object: %w", err)
	}
	return nil
}

// matchIssues converts rule engine matches to Issues tagged source "rule".
// Low severity matches are flagged only; anything higher counts toward the
// score.
func matchIssues(matches []rulecheck.Match) []Issue {
	issues := make([]Issue, 0, len(matches))
	for _, m := range matches {
		sev := ruleSeverity(m.Severity)
		issues = append(issues, Issue{
			Category:     ruleCategory(m.Category),
			Severity:     sev,
			Title:        m.RuleName,
			Description:  m.Text,
			Location:     m.Location,
			Context:      m.Context,
			Suggestion:   m.Suggestion,
			Source:       SourceRule,
			RuleID:       m.RuleID,
			AffectsScore: sev != SeverityLow,
		})
	}
	return issues
}

func ruleCategory(c rulecheck.Category) IssueCategory {
	switch c {
	case rulecheck.CategorySpelling:
		return CategorySpelling
	case rulecheck.CategoryGrammar:
		return CategoryGrammar
	case rulecheck.CategorySpacing:
		return CategorySpacing
	default:
		return CategoryFormatting
	}
}

func ruleSeverity(s rulecheck.Severity) IssueSeverity {
	switch s {
	case rulecheck.SeverityHigh:
		return SeverityHigh
	case rulecheck.SeverityMedium:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// issueKey identifies an issue for rule-vs-LLM deduplication: same category,
// same matched text.
func issueKey(cat IssueCategory, text string) string {
	return string(cat) + "\x00" + strings.ToLower(strings.TrimSpace(text))
}

// convertSpellingGrammar converts a spelling/grammar response to Issues,
// skipping entries the rule engine already reported (keys in seen).
func convertSpellingGrammar(res rawSGResult, seen map[string]struct{}) []Issue {
	var issues []Issue
	for _, item := range res.Issues {
		cat := sgCategory(item.Category)
		if _, dup := seen[issueKey(cat, item.Text)]; dup {
			continue
		}
		issues = append(issues, Issue{
			Category:     cat,
			Severity:     llmSeverity(item.Severity),
			Title:        fmt.Sprintf("%s error: %s", titleCase(string(cat)), truncateRunes(item.Text, 30)),
			Description:  fmt.Sprintf("Found: '%s'", item.Text),
			Location:     item.Location,
			Suggestion:   item.Suggestion,
			Source:       SourceLLM,
			AffectsScore: true,
		})
	}
	return issues
}

func sgCategory(s string) IssueCategory {
	switch s {
	case "grammar":
		return CategoryGrammar
	case "spacing":
		return CategorySpacing
	default:
		return CategorySpelling
	}
}

// convertContent converts a content analysis response to Issues: one high
// severity scored issue per missing required section, the model's own issue
// list, and style observations as unscored info.
func convertContent(res rawContentResult) []Issue {
	var issues []Issue

	for _, section := range res.SectionsMissing {
		issues = append(issues, Issue{
			Category:     CategoryMissingContent,
			Severity:     SeverityHigh,
			Title:        fmt.Sprintf("Missing section: %s", section),
			Description:  fmt.Sprintf("Required section '%s' was not found in the document", section),
			Suggestion:   fmt.Sprintf("Add a section for %s", section),
			Source:       SourceLLM,
			AffectsScore: true,
		})
	}

	for _, item := range res.Issues {
		cat := contentCategory(item.Category)
		sev := llmSeverity(item.Severity)
		affects := sev != SeverityLow
		if item.AffectsScore != nil {
			affects = *item.AffectsScore
		}
		title := item.Title
		if title == "" {
			title = "Content issue"
		}
		issues = append(issues, Issue{
			Category:     cat,
			Severity:     sev,
			Title:        title,
			Description:  item.Description,
			Location:     item.Location,
			Suggestion:   item.Suggestion,
			Source:       SourceLLM,
			AffectsScore: affects,
		})
	}

	for _, obs := range res.StyleObservations {
		issues = append(issues, Issue{
			Category:     CategoryStyle,
			Severity:     SeverityInfo,
			Title:        "Style observation",
			Description:  obs,
			Source:       SourceLLM,
			AffectsScore: false,
		})
	}

	return issues
}

func contentCategory(s string) IssueCategory {
	switch s {
	case "missing_content":
		return CategoryMissingContent
	case "formatting":
		return CategoryFormatting
	default:
		return CategoryStyle
	}
}

// convertBANNT maps a BANNT response to the score record.
func convertBANNT(res rawBANNTResult) BANNTScore {
	return BANNTScore{
		Budget:         res.Budget.Discussed,
		BudgetNotes:    res.Budget.Notes,
		Authority:      res.Authority.Identified,
		AuthorityNotes: res.Authority.Notes,
		Need:           res.Need.Articulated,
		NeedNotes:      res.Need.Notes,
		NextSteps:      res.NextSteps.Scheduled,
		NextStepsNotes: res.NextSteps.Notes,
		Timeline:       res.Timeline.Discussed,
		TimelineNotes:  res.Timeline.Notes,
	}
}

// banntIssues reports each uncovered BANNT element as a medium unscored gap
// (BANNT carries its own score) and the model's recommendations as info.
func banntIssues(res rawBANNTResult) []Issue {
	var issues []Issue
	gaps := []struct {
		elem  rawBANNTElement
		title string
	}{
		{res.Budget, "Budget not discussed"},
		{res.Authority, "Decision maker not identified"},
		{res.Need, "Pain points not articulated"},
		{res.NextSteps, "No follow-up scheduled"},
		{res.Timeline, "Timeline not discussed"},
	}
	for _, g := range gaps {
		if g.elem.Covered() {
			continue
		}
		desc := g.elem.Notes
		if desc == "" {
			desc = "Not covered in call"
		}
		issues = append(issues, Issue{
			Category:     CategoryBANNT,
			Severity:     SeverityMedium,
			Title:        g.title,
			Description:  desc,
			Source:       SourceLLM,
			AffectsScore: false,
		})
	}
	for _, rec := range res.Recommendations {
		issues = append(issues, Issue{
			Category:     CategoryBANNT,
			Severity:     SeverityInfo,
			Title:        "Recommendation",
			Description:  rec,
			Source:       SourceLLM,
			AffectsScore: false,
		})
	}
	return issues
}

// clientCallIssues converts a client call response: opportunities as info,
// concerns at the model's severity. Neither affects the document score.
func clientCallIssues(res rawClientCallResult) []Issue {
	var issues []Issue
	for _, opp := range res.Opportunities {
		t := opp.Type
		if t == "" {
			t = "unknown"
		}
		issues = append(issues, Issue{
			Category:     CategoryOpportunity,
			Severity:     SeverityInfo,
			Title:        fmt.Sprintf("Opportunity: %s", t),
			Description:  opp.Description,
			Context:      opp.Quote,
			Location:     opp.Timestamp,
			Source:       SourceLLM,
			AffectsScore: false,
		})
	}
	for _, c := range res.Concerns {
		t := c.Type
		if t == "" {
			t = "unknown"
		}
		issues = append(issues, Issue{
			Category:     CategoryConcern,
			Severity:     llmSeverity(c.Severity),
			Title:        fmt.Sprintf("Concern: %s", t),
			Description:  c.Description,
			Context:      c.Quote,
			Location:     c.Timestamp,
			Suggestion:   c.RecommendedAction,
			Source:       SourceLLM,
			AffectsScore: false,
		})
	}
	return issues
}

// llmSeverity maps a model-supplied severity string, defaulting unknown
// values to medium.
func llmSeverity(s string) IssueSeverity {
	switch s {
	case "critical":
		return SeverityCritical
	case "high":
		return SeverityHigh
	case "medium":
		return SeverityMedium
	case "low":
		return SeverityLow
	default:
		return SeverityMedium
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
