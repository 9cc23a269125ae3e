package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/bft-labs/nfgame/internal/domain"
)

const none = "None"

// TextWriter renders the console format, one block per game:
//
//	--- Game 12 (Prisoners' dilemma) ---
//	  DSE: (b1, b2)
//	  Nash equilibria: (b1, b2)
//	  Pareto efficient outcomes: (a1, a2), (a1, b2), (b1, a2)
type TextWriter struct{}

// Write implements ports.ReportWriter.
func (TextWriter) Write(w io.Writer, r domain.Report) error {
	var b strings.Builder
	for _, g := range r.Games {
		writeGame(&b, g)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeGame(b *strings.Builder, g domain.GameReport) {
	if g.Label != "" {
		fmt.Fprintf(b, "--- Game %d (%s) ---\n", g.Index, g.Label)
	} else {
		fmt.Fprintf(b, "--- Game %d ---\n", g.Index)
	}

	dse := none
	if g.DSE != nil {
		dse = *g.DSE
	}
	fmt.Fprintf(b, "  DSE: %s\n", dse)
	fmt.Fprintf(b, "  Nash equilibria: %s\n", joinOrNone(g.Nash))
	fmt.Fprintf(b, "  Pareto efficient outcomes: %s\n", joinOrNone(g.Pareto))
	b.WriteString("\n")
}

func joinOrNone(labels []string) string {
	if len(labels) == 0 {
		return none
	}
	return strings.Join(labels, ", ")
}
