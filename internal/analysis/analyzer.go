package analysis

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/providers"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/redact"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/rulecheck"
)

// MaxAnalysisChars caps how much document text is sent to an LLM in one
// analysis call. Keeps token cost bounded on large documents.
const MaxAnalysisChars = 30000

// llmMaxTokens and llmTemperature apply to every analysis request.
const (
	llmMaxTokens   = 4096
	llmTemperature = 0.3
)

// transcriptNoisyRules are disabled by default when analyzing transcripts:
// speech-to-text output mixes quote styles constantly and the findings are
// pure noise there.
var transcriptNoisyRules = []string{"inconsistent-quotes", "straight-vs-curly-quotes"}

// Options controls a single analysis run.
type Options struct {
	Provider string
	Model    string
	// Client overrides Provider/Model when set. Used by tests and by the
	// compare command, which constructs its clients up front.
	Client providers.Analyzer

	Source string // file path, "-" for stdin, or any label
	Title  string
	Type   DocumentType // zero value: detected from Source

	DisabledRules map[string]struct{}
	RulesOnly     bool
	MaxChars      int // 0 means MaxAnalysisChars
	RedactSecrets bool
}

func (o Options) client() (providers.Analyzer, error) {
	if o.Client != nil {
		return o.Client, nil
	}
	return providers.New(o.Provider, o.Model)
}

func (o Options) maxChars() int {
	if o.MaxChars > 0 {
		return o.MaxChars
	}
	return MaxAnalysisChars
}

// llmText prepares document text for a provider call: redaction first, then
// the character cap. The rule engine always sees the untruncated original.
func (o Options) llmText(text string) string {
	if o.RedactSecrets {
		text = redact.Secrets(text)
	}
	return truncateRunes(text, o.maxChars())
}

// AnalyzeDocument analyzes a proposal or kickoff document: rule engine
// first, then LLM spelling/grammar and content passes, merged with
// rule-first deduplication and scored.
func AnalyzeDocument(ctx context.Context, text string, opts Options) (*Result, error) {
	start := time.Now()

	docType := opts.Type
	if docType == "" {
		docType = DetectDocumentType(opts.Source)
	}
	res := newResult(opts, docType, text)

	ruleIssues := matchIssues(rulecheck.Run(text, opts.DisabledRules))
	res.Issues = ruleIssues

	if opts.RulesOnly {
		res.Provider = "rules"
		res.Timing.TotalMs = time.Since(start).Milliseconds()
		return res, nil
	}

	client, err := opts.client()
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}
	res.Provider = client.Name()
	prepared := opts.llmText(text)

	llmStart := time.Now()
	var sg rawSGResult
	if err := analyzeJSON(ctx, client, spellingGrammarPrompt, prepared, &sg); err != nil {
		return nil, fmt.Errorf("spelling/grammar analysis: %w", err)
	}
	var content rawContentResult
	if err := analyzeJSON(ctx, client, contentPrompt, prepared, &content); err != nil {
		return nil, fmt.Errorf("content analysis: %w", err)
	}
	res.Timing.LLMMs = time.Since(llmStart).Milliseconds()

	seen := make(map[string]struct{}, len(ruleIssues))
	for _, i := range ruleIssues {
		seen[issueKey(i.Category, i.Description)] = struct{}{}
	}
	res.Issues = append(res.Issues, convertSpellingGrammar(sg, seen)...)
	res.Issues = append(res.Issues, convertContent(content)...)

	score := calculateScore(res.Issues)
	res.Score = &score
	res.Timing.TotalMs = time.Since(start).Milliseconds()
	return res, nil
}

// AnalyzeTranscript analyzes a call transcript. Sales calls get BANNT
// coverage scoring; client calls get opportunity and concern extraction.
// The rule engine runs over the transcript text too, minus the quote-style
// rules unless the caller re-enables them via Options.DisabledRules.
func AnalyzeTranscript(ctx context.Context, text string, sales bool, opts Options) (*Result, error) {
	start := time.Now()

	docType := TypeTranscriptClient
	if sales {
		docType = TypeTranscriptSales
	}
	if opts.Title == "" {
		opts.Title = "Call Transcript"
	}
	res := newResult(opts, docType, text)

	disabled := opts.DisabledRules
	if disabled == nil {
		disabled = make(map[string]struct{}, len(transcriptNoisyRules))
		for _, id := range transcriptNoisyRules {
			disabled[id] = struct{}{}
		}
	}
	res.Issues = matchIssues(rulecheck.Run(text, disabled))

	if opts.RulesOnly {
		res.Provider = "rules"
		res.Timing.TotalMs = time.Since(start).Milliseconds()
		return res, nil
	}

	client, err := opts.client()
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}
	res.Provider = client.Name()
	prepared := opts.llmText(text)

	llmStart := time.Now()
	if sales {
		var raw rawBANNTResult
		if err := analyzeJSON(ctx, client, banntPrompt, prepared, &raw); err != nil {
			return nil, fmt.Errorf("BANNT analysis: %w", err)
		}
		score := convertBANNT(raw)
		res.BANNT = &score
		res.Issues = append(res.Issues, banntIssues(raw)...)
	} else {
		var raw rawClientCallResult
		if err := analyzeJSON(ctx, client, clientCallPrompt, prepared, &raw); err != nil {
			return nil, fmt.Errorf("client call analysis: %w", err)
		}
		res.Issues = append(res.Issues, clientCallIssues(raw)...)
	}
	res.Timing.LLMMs = time.Since(llmStart).Milliseconds()
	res.Timing.TotalMs = time.Since(start).Milliseconds()
	return res, nil
}

// analyzeJSON sends one analysis request and decodes the JSON response into
// v. A parse failure gets one repair round-trip before giving up.
func analyzeJSON(ctx context.Context, client providers.Analyzer, prompt, text string, v any) error {
	resp, err := client.Analyze(ctx, providers.Request{
		SystemPrompt: prompt,
		UserPrompt:   text,
		MaxTokens:    llmMaxTokens,
		Temperature:  llmTemperature,
	})
	if err != nil {
		return fmt.Errorf("provider analyze: %w", err)
	}

	parseErr := parseObject(resp.Content, v)
	if parseErr == nil {
		return nil
	}

	// Attempt one repair pass
	repairPrompt := fmt.Sprintf(
		"Your previous response was not valid JSON. The error was: %s\n\nPlease fix it and respond with ONLY the valid JSON object.\n\nYour previous response was:\n%s",
		parseErr.Error(), resp.Content,
	)
	resp2, err := client.Analyze(ctx, providers.Request{
		SystemPrompt: prompt,
		UserPrompt:   repairPrompt,
		MaxTokens:    llmMaxTokens,
		Temperature:  llmTemperature,
	})
	if err != nil {
		return fmt.Errorf("repair pass failed: %w (original error: %w)", err, parseErr)
	}
	if err := parseObject(resp2.Content, v); err != nil {
		return fmt.Errorf("response validation failed after repair: %w", err)
	}
	return nil
}

// calculateScore derives the score breakdown from the merged issue list.
// Spelling/grammar starts at 100 and loses 5 per scored language issue;
// required content loses 15 per missing section; math checking is not
// implemented yet and stays at 100.
func calculateScore(issues []Issue) ScoreBreakdown {
	sgIssues := 0
	missing := 0
	for _, i := range issues {
		if !i.AffectsScore {
			continue
		}
		switch i.Category {
		case CategorySpelling, CategoryGrammar, CategorySpacing:
			sgIssues++
		case CategoryMissingContent:
			missing++
		}
	}
	return ScoreBreakdown{
		SpellingGrammar: max(0, 100-sgIssues*5),
		RequiredContent: max(0, 100-missing*15),
		MathAccuracy:    100,
	}
}

func newResult(opts Options, docType DocumentType, text string) *Result {
	title := opts.Title
	if title == "" {
		title = "Untitled"
	}
	source := opts.Source
	if source == "" {
		source = "text"
	}
	return &Result{
		Source:     source,
		Title:      title,
		Type:       docType,
		AnalyzedAt: time.Now().UTC(),
		RunID:      uuid.NewString(),
		Issues:     []Issue{},
		TextLength: utf8.RuneCountInString(text),
	}
}
