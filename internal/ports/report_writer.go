package ports

import (
	"io"

	"github.com/bft-labs/nfgame/internal/domain"
)

// ReportWriter renders a complete report to w.
type ReportWriter interface {
	Write(w io.Writer, r domain.Report) error
}
