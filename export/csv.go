package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fwojciec/legalindex"
)

var _ legalindex.Exporter = (*CSVExporter)(nil)

// CSVExporter renders the tabular form: one data row per
// (term, category, occurrence), necessarily denormalized relative to the
// block-per-term formats.
type CSVExporter struct{}

// NewCSVExporter creates a new CSVExporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(w io.Writer, p *legalindex.Projection) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Term", "Category", "Page", "Context", "Headings"}); err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "writing csv output: %v", err)
	}

	for _, term := range p.Terms {
		entry := p.Entries[term]
		categories := append(entry.Categories(), legalindex.AllReferences)
		for _, cat := range categories {
			for _, occ := range entry[cat] {
				row := []string{term, cat, strconv.Itoa(occ.Page), "", ""}
				switch p.Options.ContextStyle {
				case legalindex.ContextSnippet:
					row[3] = occ.Snippet
				case legalindex.ContextHeadings:
					row[4] = occ.HeadingPath()
				}
				if err := cw.Write(row); err != nil {
					return legalindex.Errorf(legalindex.EINTERNAL, "writing csv output: %v", err)
				}
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "writing csv output: %v", err)
	}
	return nil
}
