// Package rulecheck runs deterministic quality checks over document text.
//
// Each check is a pure function from text to zero or more [Match] records
// and is tagged with a stable rule ID so individual rules can be disabled
// per invocation without code changes. Checks catch the mechanical issues
// LLM review tends to miss: doubled spaces and words, missing or stray
// spaces around punctuation, unbalanced brackets, trailing whitespace,
// mixed quote styles, tabs, and invisible Unicode characters.
//
// [Run] executes the enabled subset of the catalogue in a fixed declared
// order and concatenates the results. It never performs I/O, never mutates
// its input, and never fails on any valid Unicode string — a document with
// nothing wrong simply yields no matches.
package rulecheck
