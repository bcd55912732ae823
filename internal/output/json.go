package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/chrisarusso/ai-document-quality-analyzer/internal/analysis"
)

// JSONWriter outputs the full analysis result as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, result *analysis.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
