package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/config"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/transcript"
)

var (
	flagSales  bool
	flagExport bool
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript <file>",
	Short: "Analyze a call transcript",
	Long: "Analyze a call transcript. Sales calls (--sales) get BANNT coverage\n" +
		"scoring; client calls get opportunity and concern extraction. Input is\n" +
		"plain text, or a recording export JSON file (detected by extension, or\nforced with --export).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig, cmd.Flags())
		if err != nil {
			return err
		}
		analyzeTranscriptFile(args[0], cfg)
		return nil
	},
}

func init() {
	addAnalysisFlags(transcriptCmd)
	transcriptCmd.Flags().BoolVar(&flagSales, "sales", false, "Treat the call as a sales call (BANNT scoring)")
	transcriptCmd.Flags().BoolVar(&flagExport, "json", false, "Parse the input as a recording export JSON file")
}

func analyzeTranscriptFile(path string, cfg config.Config) {
	raw, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	text := raw
	title := flagTitle
	if flagExport || strings.HasSuffix(strings.ToLower(path), ".json") {
		rec, err := transcript.Parse([]byte(raw))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return
		}
		text = rec.FullText()
		if title == "" {
			title = rec.Title
		}
		fmt.Fprintf(os.Stderr, "Attendees: %s\n", rec.AttendeeSummary())
	}

	opts, ok := buildOptions(cfg, path)
	if !ok {
		return
	}
	opts.Title = title

	result, err := analysis.AnalyzeTranscript(context.Background(), text, flagSales, opts)
	if err != nil {
		reportAnalysisError(err)
		return
	}
	writeAndScore(result, cfg)
}
