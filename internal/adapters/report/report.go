// Package report renders analysis reports as text, YAML or JSON.
package report

import (
	"fmt"
	"strings"

	"github.com/bft-labs/nfgame/internal/ports"
)

// Supported output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Formats lists every supported format name.
var Formats = []string{FormatText, FormatYAML, FormatJSON}

// New returns the writer for the named format.
func New(format string) (ports.ReportWriter, error) {
	switch strings.ToLower(format) {
	case FormatText, "":
		return TextWriter{}, nil
	case FormatYAML, "yml":
		return YAMLWriter{}, nil
	case FormatJSON:
		return JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}
