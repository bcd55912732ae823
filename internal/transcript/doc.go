// Package transcript parses meeting recording exports and renders them as
// plain text for analysis.
package transcript
