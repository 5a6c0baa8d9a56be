package solver

import (
	"fmt"
	"io"

	"github.com/Sarronnn/Algorithms-Date-Constraint/pkg/csp"
)

type DefaultTracer struct{}

func (DefaultTracer) Trace(_ csp.SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Trace(p csp.SearchPosition) {
	fmt.Fprintf(t.Writer, "---\nAssigned:\n")
	for _, date := range p.Assigned() {
		fmt.Fprintf(t.Writer, "- %s\n", date.Format(csp.DateFormat))
	}
	fmt.Fprintf(t.Writer, "Dead end: meeting %d\n", p.Meeting())
}
