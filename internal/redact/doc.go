// Package redact removes secrets from document and transcript text before
// it is sent to any LLM provider.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private keys, AWS access key IDs and secret access keys, bearer
// tokens, and provider-specific tokens (Anthropic, OpenAI, GitHub, Slack).
// Documents pasted together from consoles and env files do contain keys
// surprisingly often.
package redact
