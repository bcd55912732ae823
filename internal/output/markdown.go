package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
)

// MarkdownWriter outputs a shareable markdown report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, result *analysis.Result) error {
	fmt.Fprintf(w, "## Document Quality Report — %s\n\n", result.Title)
	fmt.Fprintf(w, "**Source:** %s | **Type:** %s | **Provider:** %s\n\n",
		result.Source, result.Type, result.Provider)

	if result.Score != nil {
		fmt.Fprintf(w, "| Category | Score |\n")
		fmt.Fprintf(w, "|----------|-------|\n")
		fmt.Fprintf(w, "| Spelling & Grammar | %d/100 |\n", result.Score.SpellingGrammar)
		fmt.Fprintf(w, "| Required Content | %d/100 |\n", result.Score.RequiredContent)
		fmt.Fprintf(w, "| Math Accuracy | %d/100 |\n", result.Score.MathAccuracy)
		fmt.Fprintf(w, "| **Overall** | **%d/100** |\n\n", result.Score.Overall())
	}

	if result.BANNT != nil {
		fmt.Fprintf(w, "| Element | Covered | Notes |\n")
		fmt.Fprintf(w, "|---------|---------|-------|\n")
		fmt.Fprintf(w, "| Budget | %s | %s |\n", mdCovered(result.BANNT.Budget), mdCell(result.BANNT.BudgetNotes))
		fmt.Fprintf(w, "| Authority | %s | %s |\n", mdCovered(result.BANNT.Authority), mdCell(result.BANNT.AuthorityNotes))
		fmt.Fprintf(w, "| Need | %s | %s |\n", mdCovered(result.BANNT.Need), mdCell(result.BANNT.NeedNotes))
		fmt.Fprintf(w, "| Next Steps | %s | %s |\n", mdCovered(result.BANNT.NextSteps), mdCell(result.BANNT.NextStepsNotes))
		fmt.Fprintf(w, "| Timeline | %s | %s |\n", mdCovered(result.BANNT.Timeline), mdCell(result.BANNT.TimelineNotes))
		fmt.Fprintf(w, "\n**BANNT Score: %d/5**\n\n", result.BANNT.Score())
	}

	if len(result.Issues) == 0 {
		fmt.Fprintln(w, "No issues found. :white_check_mark:")
		return nil
	}

	grouped := result.IssuesBySeverity()
	for _, sev := range severityOrder {
		issues := grouped[sev]
		if len(issues) == 0 {
			continue
		}

		icon := mdSeverityIcon(sev)
		label := strings.ToUpper(string(sev))

		fmt.Fprintf(w, "<details>\n<summary>%s %s (%d)</summary>\n\n", icon, label, len(issues))

		sort.SliceStable(issues, func(i, j int) bool {
			if issues[i].Category != issues[j].Category {
				return issues[i].Category < issues[j].Category
			}
			return issues[i].Title < issues[j].Title
		})

		for _, iss := range issues {
			fmt.Fprintf(w, "### %s\n\n", iss.Title)
			fmt.Fprintf(w, "%s | source: %s", iss.Category, iss.Source)
			if iss.Location != "" {
				fmt.Fprintf(w, " | %s", iss.Location)
			}
			if !iss.AffectsScore {
				fmt.Fprintf(w, " | flagged only")
			}
			fmt.Fprintf(w, "\n\n%s\n\n", iss.Description)

			if iss.Context != "" {
				fmt.Fprintf(w, "> %s\n\n", strings.ReplaceAll(iss.Context, "\n", "\n> "))
			}
			if iss.Suggestion != "" {
				fmt.Fprintf(w, "**Suggestion:** %s\n\n", iss.Suggestion)
			}

			fmt.Fprintf(w, "---\n\n")
		}

		fmt.Fprintf(w, "</details>\n\n")
	}

	fmt.Fprintf(w, "*Analyzed in %dms (LLM: %dms)*\n",
		result.Timing.TotalMs, result.Timing.LLMMs)

	return nil
}

func mdCovered(ok bool) string {
	if ok {
		return ":white_check_mark:"
	}
	return ":x:"
}

// mdCell escapes newlines and pipes so notes stay inside one table cell.
func mdCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", "\\|")
}

func mdSeverityIcon(s analysis.IssueSeverity) string {
	switch s {
	case analysis.SeverityCritical:
		return ":red_circle:"
	case analysis.SeverityHigh:
		return ":orange_circle:"
	case analysis.SeverityMedium:
		return ":yellow_circle:"
	case analysis.SeverityLow:
		return ":white_circle:"
	case analysis.SeverityInfo:
		return ":information_source:"
	default:
		return ":white_circle:"
	}
}
