package cli

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/config"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/rulecheck"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the deterministic rule checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig, nil)
		if err != nil {
			return err
		}
		disabled := rulecheck.DisabledSet(cfg.DisabledRules)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"ID", "Name", "Category", "Severity", "Enabled"})
		for _, r := range rulecheck.Catalogue() {
			enabled := "yes"
			if _, off := disabled[r.ID]; off {
				enabled = "no"
			}
			t.AppendRow(table.Row{r.ID, r.Name, r.Category, r.Severity, enabled})
		}
		t.Render()
		return nil
	},
}
