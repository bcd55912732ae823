package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/cache"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/config"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/output"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/providers"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/rulecheck"
)

var compareCmd = &cobra.Command{
	Use:   "compare <file>",
	Short: "Analyze a document with several providers and compare the scores",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig, cmd.Flags())
		if err != nil {
			return err
		}
		runCompare(args[0], cfg)
		return nil
	},
}

func init() {
	addAnalysisFlags(compareCmd)
	compareCmd.Flags().StringSlice("compare", nil, "Providers to compare (comma-separated)")
	compareCmd.Flags().StringVar(&flagType, "type", "", "Document type (proposal, kickoff)")
}

func runCompare(path string, cfg config.Config) {
	names := cfg.Compare
	if len(names) < 2 {
		fmt.Fprintln(os.Stderr, "Error: compare needs at least two providers (see the compare config key)")
		exitCode = ExitUsageError
		return
	}

	text, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}
	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cache: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	results := make([]*analysis.Result, len(names))
	g, ctx := errgroup.WithContext(context.Background())
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			client, err := providers.New(name, "")
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			opts := analysis.Options{
				Provider:      name,
				Client:        providers.WithCache(client, c, ""),
				Source:        path,
				Title:         flagTitle,
				Type:          analysis.DocumentType(flagType),
				DisabledRules: rulecheck.DisabledSet(cfg.DisabledRules),
				MaxChars:      cfg.MaxChars,
				RedactSecrets: cfg.Privacy.RedactSecrets,
			}
			res, err := analysis.AnalyzeDocument(ctx, text, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		reportAnalysisError(err)
		return
	}

	writeComparison(os.Stdout, results)

	// The full results go to --out as JSON when requested.
	if flagOut != "" {
		for _, res := range results {
			suffix := "." + res.Provider + ".json"
			if err := output.WriteResult(res, "json", flagOut+suffix); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
				exitCode = ExitRuntimeError
				return
			}
		}
	}

	if cfg.FailBelow > 0 {
		for _, res := range results {
			if res.Score != nil && res.Score.Overall() < cfg.FailBelow {
				fmt.Fprintf(os.Stderr, "%s score %d is below threshold %d\n",
					res.Provider, res.Score.Overall(), cfg.FailBelow)
				exitCode = ExitLowScore
			}
		}
	}
}

func writeComparison(w *os.File, results []*analysis.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Provider", "Overall", "Spelling & Grammar", "Required Content", "Issues", "LLM ms"})
	for _, res := range results {
		overall, sg, content := "-", "-", "-"
		if res.Score != nil {
			overall = fmt.Sprintf("%d", res.Score.Overall())
			sg = fmt.Sprintf("%d", res.Score.SpellingGrammar)
			content = fmt.Sprintf("%d", res.Score.RequiredContent)
		}
		t.AppendRow(table.Row{res.Provider, overall, sg, content, len(res.Issues), res.Timing.LLMMs})
	}
	t.Render()
}
