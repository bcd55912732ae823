package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/providers"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/rulecheck"
	"github.com/chrisarusso/ai-document-quality-analyzer/internal/transcript"
)

// analyzeRequest is the body for POST /api/analyze.
type analyzeRequest struct {
	Text          string   `json:"text"`
	Title         string   `json:"title"`
	Source        string   `json:"source"`
	Type          string   `json:"type"`
	Provider      string   `json:"provider"`
	Model         string   `json:"model"`
	RulesOnly     bool     `json:"rules_only"`
	DisabledRules []string `json:"disabled_rules"`
}

// transcriptRequest is the body for POST /api/analyze/transcript. Either
// text or export must be set; export takes a recording export document and
// supplies both the transcript text and the title.
type transcriptRequest struct {
	analyzeRequest
	Sales  bool            `json:"sales"`
	Export json.RawMessage `json:"export"`
}

// ruleInfo is one catalogue entry in GET /api/rules.
type ruleInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Severity string `json:"severity"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	rules := rulecheck.Catalogue()
	out := make([]ruleInfo, 0, len(rules))
	for _, r := range rules {
		out = append(out, ruleInfo{
			ID:       r.ID,
			Name:     r.Name,
			Category: string(r.Category),
			Severity: string(r.Severity),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"rules": out})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	opts := s.options(req)
	start := time.Now()
	result, err := s.analyzeDoc(r.Context(), req.Text, opts)
	if err != nil {
		s.metrics.RecordLLMError(opts.Provider)
		s.writeAnalysisError(w, err)
		return
	}
	s.record(result, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleAnalyzeTranscript(w http.ResponseWriter, r *http.Request) {
	var req transcriptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	text := req.Text
	if len(req.Export) > 0 {
		rec, err := transcript.Parse(req.Export)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid recording export: "+err.Error())
			return
		}
		text = rec.FullText()
		if req.Title == "" {
			req.Title = rec.Title
		}
	}
	if text == "" {
		writeError(w, http.StatusBadRequest, "text or export is required")
		return
	}

	opts := s.options(req.analyzeRequest)
	start := time.Now()
	result, err := s.analyzeTranscript(r.Context(), text, req.Sales, opts)
	if err != nil {
		s.metrics.RecordLLMError(opts.Provider)
		s.writeAnalysisError(w, err)
		return
	}
	s.record(result, time.Since(start))
	writeJSON(w, http.StatusOK, result)
}

// options merges the request with the server config. Request fields win.
func (s *Server) options(req analyzeRequest) analysis.Options {
	provider := req.Provider
	if provider == "" {
		provider = s.cfg.Provider
	}
	model := req.Model
	if model == "" {
		model = s.cfg.Model
	}
	disabled := append(append([]string{}, s.cfg.DisabledRules...), req.DisabledRules...)

	return analysis.Options{
		Provider:      provider,
		Model:         model,
		Source:        req.Source,
		Title:         req.Title,
		Type:          analysis.DocumentType(req.Type),
		DisabledRules: rulecheck.DisabledSet(disabled),
		RulesOnly:     req.RulesOnly,
		MaxChars:      s.cfg.MaxChars,
		RedactSecrets: s.cfg.Privacy.RedactSecrets,
	}
}

func (s *Server) record(result *analysis.Result, duration time.Duration) {
	s.metrics.RecordAnalysis(result.Provider, string(result.Type), duration)
	for _, iss := range result.Issues {
		if iss.RuleID != "" {
			s.metrics.RecordRuleMatches(iss.RuleID, 1)
		}
	}
}

func (s *Server) writeAnalysisError(w http.ResponseWriter, err error) {
	status := http.StatusBadGateway
	if providers.IsAuthError(err) {
		status = http.StatusUnauthorized
	}
	s.logger.Error("analysis failed", "error", err)
	writeError(w, status, err.Error())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
