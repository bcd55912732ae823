package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
)

// severityOrder lists severities from most to least severe for display.
var severityOrder = []analysis.IssueSeverity{
	analysis.SeverityCritical,
	analysis.SeverityHigh,
	analysis.SeverityMedium,
	analysis.SeverityLow,
	analysis.SeverityInfo,
}

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, result *analysis.Result) error {
	ew := &errWriter{w: w}

	ew.printf("Document Quality Report — %s\n", result.Title)
	ew.printf("Source: %s | Type: %s | Provider: %s\n",
		result.Source, result.Type, result.Provider)
	ew.println(strings.Repeat("─", 60))

	if result.Score != nil {
		writeScoreTable(w, result.Score)
	}
	if result.BANNT != nil {
		writeBANNTTable(w, result.BANNT)
	}

	counts := result.Counts()
	total := len(result.Issues)
	ew.printf("\nIssues: %d total", total)
	if total > 0 {
		ew.printf(" (%d critical, %d high, %d medium, %d low, %d info)",
			counts.Critical, counts.High, counts.Medium, counts.Low, counts.Info)
	}
	ew.println("")
	ew.println(strings.Repeat("─", 60))

	if total == 0 {
		ew.println("\nNo issues found. Looks good!")
		return ew.err
	}

	grouped := result.IssuesBySeverity()
	for _, sev := range severityOrder {
		issues := grouped[sev]
		if len(issues) == 0 {
			continue
		}

		label := strings.ToUpper(string(sev))
		ew.printf("\n%s %s\n", severityIcon(sev), label)
		ew.println(strings.Repeat("─", 40))

		// Stable order within severity: category, then title
		sort.SliceStable(issues, func(i, j int) bool {
			if issues[i].Category != issues[j].Category {
				return issues[i].Category < issues[j].Category
			}
			return issues[i].Title < issues[j].Title
		})

		for _, iss := range issues {
			ew.printf("\n  %s\n", iss.Title)
			ew.printf("  Category: %s | Source: %s", iss.Category, iss.Source)
			if iss.Location != "" {
				ew.printf(" | %s", iss.Location)
			}
			if !iss.AffectsScore {
				ew.printf(" | flagged only")
			}
			ew.println("")

			for _, line := range wrapText(iss.Description, 70) {
				ew.printf("    %s\n", line)
			}
			if iss.Context != "" {
				ew.printf("    Context: %s\n", iss.Context)
			}
			if iss.Suggestion != "" {
				ew.println("  Suggestion:")
				for _, line := range wrapText(iss.Suggestion, 70) {
					ew.printf("    %s\n", line)
				}
			}
		}
	}

	ew.printf("\n%s\n", strings.Repeat("─", 60))
	ew.printf("Completed in %dms (LLM: %dms)\n",
		result.Timing.TotalMs, result.Timing.LLMMs)

	return ew.err
}

func writeScoreTable(w io.Writer, score *analysis.ScoreBreakdown) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Category", "Score"})
	t.AppendRow(table.Row{"Spelling & Grammar", fmt.Sprintf("%d/100", score.SpellingGrammar)})
	t.AppendRow(table.Row{"Required Content", fmt.Sprintf("%d/100", score.RequiredContent)})
	t.AppendRow(table.Row{"Math Accuracy", fmt.Sprintf("%d/100", score.MathAccuracy)})
	t.AppendFooter(table.Row{"Overall", fmt.Sprintf("%d/100", score.Overall())})
	t.Render()
}

func writeBANNTTable(w io.Writer, bannt *analysis.BANNTScore) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Element", "Covered", "Notes"})
	t.AppendRow(table.Row{"Budget", coveredMark(bannt.Budget), bannt.BudgetNotes})
	t.AppendRow(table.Row{"Authority", coveredMark(bannt.Authority), bannt.AuthorityNotes})
	t.AppendRow(table.Row{"Need", coveredMark(bannt.Need), bannt.NeedNotes})
	t.AppendRow(table.Row{"Next Steps", coveredMark(bannt.NextSteps), bannt.NextStepsNotes})
	t.AppendRow(table.Row{"Timeline", coveredMark(bannt.Timeline), bannt.TimelineNotes})
	t.AppendFooter(table.Row{"BANNT Score", fmt.Sprintf("%d/5", bannt.Score()), ""})
	t.Render()
}

func coveredMark(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}

func severityIcon(s analysis.IssueSeverity) string {
	switch s {
	case analysis.SeverityCritical:
		return "[!!!]"
	case analysis.SeverityHigh:
		return "[!!]"
	case analysis.SeverityMedium:
		return "[!]"
	case analysis.SeverityLow:
		return "[-]"
	case analysis.SeverityInfo:
		return "[i]"
	default:
		return "[?]"
	}
}

func wrapText(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	var lines []string
	words := strings.Fields(text)
	var current strings.Builder
	for _, word := range words {
		if current.Len()+len(word)+1 > width && current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
