package mock

import (
	"io"

	"github.com/fwojciec/legalindex"
)

var _ legalindex.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of legalindex.Exporter.
type Exporter struct {
	ExportFn func(w io.Writer, p *legalindex.Projection) error
}

func (e *Exporter) Export(w io.Writer, p *legalindex.Projection) error {
	return e.ExportFn(w, p)
}
