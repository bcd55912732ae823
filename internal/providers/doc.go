// Package providers implements the Analyzer interface for each supported LLM
// provider.
//
// Supported providers: Anthropic (Claude), OpenAI (GPT), Google (Gemini), and
// Ollama / LMStudio for local models.
//
// All providers share a common retry helper with exponential back-off for
// rate limits and transient server errors. HTTP clients are plain net/http
// with a request timeout; tests redirect calls to local httptest servers.
//
// Use [New] to obtain an Analyzer by provider name and model string.
package providers
