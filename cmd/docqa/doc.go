// Docqa is a CLI for checking document quality with LLM providers.
//
// It analyzes proposals, kickoff decks, and call transcripts, combining a
// deterministic rule engine with LLM passes for spelling/grammar, required
// content, BANNT coverage, and client call insights, and emits scored
// results with deterministic exit codes suitable for CI gating.
//
// Usage:
//
//	docqa analyze proposal.md             # analyze a document
//	docqa analyze - < draft.md            # analyze from stdin
//	docqa transcript call.json --sales    # BANNT-score a sales call
//	docqa compare proposal.md             # compare providers side by side
//	docqa rules                           # list deterministic checks
//	docqa serve                           # run the HTTP API
//
// See https://github.com/chrisarusso/ai-document-quality-analyzer for full
// documentation.
package main
