package report

import (
	"encoding/json"
	"io"

	"github.com/bft-labs/nfgame/internal/domain"
)

// JSONWriter renders the report as indented JSON.
type JSONWriter struct{}

// Write implements ports.ReportWriter.
func (JSONWriter) Write(w io.Writer, r domain.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
