package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/config"
)

// resetState clears the shared flag variables and exit code around a test.
func resetState(t *testing.T) {
	t.Helper()
	reset := func() {
		flagTitle, flagType, flagOut = "", "", ""
		flagNoLLM, flagNoRedact, flagWatch = false, false, false
		flagSales, flagExport = false, false
		exitCode = ExitSuccess
	}
	reset()
	t.Cleanup(reset)
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Config{
		Provider: "openai",
		Format:   "json",
		MaxChars: 30000,
	}
	cfg.Cache.Enabled = false
	return cfg
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readResult(t *testing.T, path string) analysis.Result {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var result analysis.Result
	require.NoError(t, json.Unmarshal(data, &result))
	return result
}

func TestAnalyzeFile_RulesOnly(t *testing.T) {
	resetState(t)
	flagNoLLM = true
	flagOut = filepath.Join(t.TempDir(), "out.json")

	doc := writeDoc(t, "proposal.md", "This proposal  has issues.\nIt has has repeated words.\n")
	analyzeFile(doc, testConfig(t))

	require.Equal(t, ExitSuccess, exitCode)
	result := readResult(t, flagOut)
	assert.Equal(t, "rules", result.Provider)
	assert.Equal(t, analysis.TypeProposal, result.Type)
	assert.Nil(t, result.Score)
	require.NotEmpty(t, result.Issues)

	ids := make(map[string]bool)
	for _, iss := range result.Issues {
		ids[iss.RuleID] = true
	}
	assert.True(t, ids["double-spaces"])
	assert.True(t, ids["repeated-words"])
}

func TestAnalyzeFile_KickoffDetection(t *testing.T) {
	resetState(t)
	flagNoLLM = true
	flagOut = filepath.Join(t.TempDir(), "out.json")

	doc := writeDoc(t, "kickoff-deck.md", "Agenda\n")
	analyzeFile(doc, testConfig(t))

	result := readResult(t, flagOut)
	assert.Equal(t, analysis.TypeKickoff, result.Type)
}

func TestAnalyzeFile_MissingFile(t *testing.T) {
	resetState(t)
	flagNoLLM = true

	analyzeFile(filepath.Join(t.TempDir(), "nope.md"), testConfig(t))
	assert.Equal(t, ExitRuntimeError, exitCode)
}

func TestWriteAndScore_FailBelow(t *testing.T) {
	resetState(t)
	flagOut = filepath.Join(t.TempDir(), "out.json")

	cfg := testConfig(t)
	cfg.FailBelow = 90
	result := &analysis.Result{
		Title:    "Low",
		Provider: "openai",
		Issues:   []analysis.Issue{},
		Score:    &analysis.ScoreBreakdown{SpellingGrammar: 60, RequiredContent: 55, MathAccuracy: 100},
	}
	writeAndScore(result, cfg)
	assert.Equal(t, ExitLowScore, exitCode)
}

func TestWriteAndScore_ThresholdMet(t *testing.T) {
	resetState(t)
	flagOut = filepath.Join(t.TempDir(), "out.json")

	cfg := testConfig(t)
	cfg.FailBelow = 50
	result := &analysis.Result{
		Title:    "Fine",
		Provider: "openai",
		Issues:   []analysis.Issue{},
		Score:    &analysis.ScoreBreakdown{SpellingGrammar: 90, RequiredContent: 85, MathAccuracy: 100},
	}
	writeAndScore(result, cfg)
	assert.Equal(t, ExitSuccess, exitCode)
}

func TestTranscriptFile_ExportRulesOnly(t *testing.T) {
	resetState(t)
	flagNoLLM = true
	flagSales = true
	flagOut = filepath.Join(t.TempDir(), "out.json")

	export := `{
		"recording_id": "rec-9",
		"title": "Q3 Discovery",
		"transcript": [
			{"speaker": {"display_name": "Sam"}, "text": "Thanks for joining.", "timestamp": "00:00"},
			{"speaker": {"display_name": "Alex"}, "text": "Happy to be  here.", "timestamp": "00:05"}
		]
	}`
	path := writeDoc(t, "call.json", export)
	analyzeTranscriptFile(path, testConfig(t))

	require.Equal(t, ExitSuccess, exitCode)
	result := readResult(t, flagOut)
	assert.Equal(t, "Q3 Discovery", result.Title)
	assert.Equal(t, analysis.TypeTranscriptSales, result.Type)
	assert.Nil(t, result.BANNT, "rules-only runs skip BANNT scoring")
}

func TestTranscriptFile_BadExport(t *testing.T) {
	resetState(t)
	flagExport = true
	flagNoLLM = true

	path := writeDoc(t, "call.txt", "not json")
	analyzeTranscriptFile(path, testConfig(t))
	assert.Equal(t, ExitRuntimeError, exitCode)
}

func TestReadInput_File(t *testing.T) {
	path := writeDoc(t, "doc.txt", "hello")
	text, err := readInput(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	_, err = readInput(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
