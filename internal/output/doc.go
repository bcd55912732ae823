// Package output renders analysis results in multiple formats.
//
// Three formats are supported: text (terminal report with score and BANNT
// tables), json (the full result serialized), and markdown (shareable
// report with collapsible issue sections). Use [GetWriter] to select a
// format and [WriteResult] to write to a file or stdout.
package output
