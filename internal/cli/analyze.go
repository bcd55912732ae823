package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/cache"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/config"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/output"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/providers"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/rulecheck"
)

// Shared analysis flags
var (
	flagTitle    string
	flagType     string
	flagOut      string
	flagNoLLM    bool
	flagNoRedact bool
	flagWatch    bool
)

func addAnalysisFlags(cmd *cobra.Command) {
	cmd.Flags().String("provider", "", "LLM provider (openai, anthropic, gemini, ollama)")
	cmd.Flags().String("model", "", "Model name")
	cmd.Flags().String("format", "", "Output format (text, json, markdown)")
	cmd.Flags().StringSlice("disable", nil, "Rule IDs to disable (comma-separated)")
	cmd.Flags().Int("max-chars", 0, "Maximum characters sent to the LLM")
	cmd.Flags().Int("fail-below", 0, "Exit 1 when the overall score is below this value")
	cmd.Flags().StringVar(&flagTitle, "title", "", "Document title (default: derived from file name)")
	cmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&flagNoLLM, "no-llm", false, "Run only the deterministic rule checks")
	cmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze a document for quality issues",
	Long: "Analyze a proposal or kickoff document. Pass a file path, or - to read\n" +
		"from stdin. Kickoff decks are recognized by file name; override with --type.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig, cmd.Flags())
		if err != nil {
			return err
		}
		if flagWatch {
			return watchAndAnalyze(args[0], cfg)
		}
		analyzeFile(args[0], cfg)
		return nil
	},
}

func init() {
	addAnalysisFlags(analyzeCmd)
	analyzeCmd.Flags().StringVar(&flagType, "type", "", "Document type (proposal, kickoff)")
	analyzeCmd.Flags().BoolVar(&flagWatch, "watch", false, "Re-analyze whenever the file changes")
}

func analyzeFile(path string, cfg config.Config) {
	text, err := readInput(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}

	opts, ok := buildOptions(cfg, path)
	if !ok {
		return
	}
	opts.Type = analysis.DocumentType(flagType)

	result, err := analysis.AnalyzeDocument(context.Background(), text, opts)
	if err != nil {
		reportAnalysisError(err)
		return
	}
	writeAndScore(result, cfg)
}

// buildOptions assembles analysis options from config and flags, including
// the cached provider client. Reports and sets the exit code itself; the
// second return is false when provider setup failed.
func buildOptions(cfg config.Config, source string) (analysis.Options, bool) {
	if flagNoRedact {
		cfg.Privacy.RedactSecrets = false
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}

	opts := analysis.Options{
		Provider:      cfg.Provider,
		Model:         cfg.Model,
		Source:        source,
		Title:         flagTitle,
		DisabledRules: rulecheck.DisabledSet(cfg.DisabledRules),
		RulesOnly:     flagNoLLM,
		MaxChars:      cfg.MaxChars,
		RedactSecrets: cfg.Privacy.RedactSecrets,
	}
	if opts.RulesOnly {
		return opts, true
	}

	client, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exitCode = ExitAuthError
		return opts, false
	}
	c, err := cache.New(cfg.Cache.Enabled, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening cache: %v\n", err)
		exitCode = ExitRuntimeError
		return opts, false
	}
	opts.Client = providers.WithCache(client, c, cfg.Model)
	return opts, true
}

func reportAnalysisError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if providers.IsAuthError(err) {
		exitCode = ExitAuthError
	} else {
		exitCode = ExitRuntimeError
	}
}

// writeAndScore emits the result and applies the fail-below threshold.
func writeAndScore(result *analysis.Result, cfg config.Config) {
	if err := output.WriteResult(result, cfg.Format, flagOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		exitCode = ExitRuntimeError
		return
	}
	if cfg.FailBelow > 0 && result.Score != nil && result.Score.Overall() < cfg.FailBelow {
		fmt.Fprintf(os.Stderr, "Score %d is below threshold %d\n", result.Score.Overall(), cfg.FailBelow)
		exitCode = ExitLowScore
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// watchAndAnalyze analyzes the file once, then re-runs on every write. The
// parent directory is watched because editors replace files on save.
func watchAndAnalyze(path string, cfg config.Config) error {
	if path == "-" {
		return fmt.Errorf("--watch cannot be used with stdin input")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	// Watch mode runs the rule checks only; firing LLM calls on every
	// save would burn tokens on half-typed sentences.
	if !flagNoLLM {
		flagNoLLM = true
		fmt.Fprintln(os.Stderr, "Watch mode runs rule checks only.")
	}

	analyzeFile(path, cfg)
	fmt.Fprintf(os.Stderr, "Watching %s for changes...\n", path)

	// Debounce: editors fire several events per save.
	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != abs || !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(200*time.Millisecond, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case <-pending:
			exitCode = ExitSuccess
			analyzeFile(path, cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}
