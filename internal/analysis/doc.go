// Package analysis coordinates document quality analysis: it runs the
// deterministic rule engine, drives the LLM analyzers, merges and dedupes
// their findings, and computes the document score.
package analysis
