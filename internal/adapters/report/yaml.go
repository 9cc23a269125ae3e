package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/nfgame/internal/domain"
)

// YAMLWriter renders the report as a YAML document.
type YAMLWriter struct{}

// Write implements ports.ReportWriter.
func (YAMLWriter) Write(w io.Writer, r domain.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
