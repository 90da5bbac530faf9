// Package fpdf renders index projections as paginated PDF documents.
package fpdf

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"

	"github.com/fwojciec/legalindex"
)

var _ legalindex.Exporter = (*Exporter)(nil)

// Page geometry in points (A4, portrait).
const (
	pageWidth  = 595.28
	pageHeight = 841.89
	margin     = 50.0
	columnGap  = 20.0
	lineHeight = 12.0
)

// Exporter renders the paginated document layout. The column count of
// the projection options is honored here and nowhere else.
type Exporter struct{}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

func (e *Exporter) Export(w io.Writer, p *legalindex.Projection) error {
	columns := p.Options.Columns
	if columns < 1 {
		columns = 1
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, margin)
	pdf.AddPage()

	l := &layout{
		pdf:      pdf,
		columns:  columns,
		colWidth: (pageWidth - 2*margin - float64(columns-1)*columnGap) / float64(columns),
		y:        margin,
	}

	l.title("Comprehensive Legal Index")

	l.header("Table of Contents")
	writeTOC(l, p.TOC)

	if !p.Options.TermsOnly {
		l.header("Case Law References")
		for _, term := range p.CaseLaw {
			writeTerm(l, term, p)
		}
		l.header("Statutory References")
		for _, term := range p.Statutory {
			writeTerm(l, term, p)
		}
	}

	l.header("Index by Subject")
	for _, cat := range p.SubjectCategories {
		l.subheader(titleCategory(cat))
		for _, term := range p.Subject[cat] {
			writeTerm(l, term, p)
		}
	}

	l.header("Alphabetical Index")
	for _, term := range p.Terms {
		writeAlphabetical(l, term, p)
	}

	if err := pdf.Output(w); err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "writing pdf output: %v", err)
	}
	return nil
}

func writeTOC(l *layout, toc legalindex.Outline) {
	for _, l1 := range toc.SortedKeys() {
		l.line(l1, 0)
		section := toc[l1]
		for _, l2 := range section.SortedKeys() {
			l.line(l2, 10)
			topic := section[l2]
			for _, l3 := range topic.SortedKeys() {
				leaf := topic[l3]
				if len(leaf.Sub) == 0 {
					l.line(fmt.Sprintf("%s: %d", l3, leaf.Page), 20)
					continue
				}
				l.line(l3, 20)
				subs := make([]string, 0, len(leaf.Sub))
				for sub := range leaf.Sub {
					subs = append(subs, sub)
				}
				sort.Strings(subs)
				for _, sub := range subs {
					l.line(fmt.Sprintf("%s: %d", sub, leaf.Sub[sub]), 30)
				}
			}
		}
	}
}

func writeTerm(l *layout, term string, p *legalindex.Projection) {
	if p.Options.ContextStyle == legalindex.ContextNone || p.Options.ContextStyle == "" {
		l.line(term+": "+formatPages(p.Pages(term)), 0)
		return
	}
	l.line(term, 0)
	for _, occ := range p.Entries[term][legalindex.AllReferences] {
		switch p.Options.ContextStyle {
		case legalindex.ContextSnippet:
			l.line(strconv.Itoa(occ.Page)+": "+occ.Snippet, 10)
		case legalindex.ContextHeadings:
			l.line(strconv.Itoa(occ.Page)+": "+occ.HeadingPath(), 10)
		}
	}
}

func writeAlphabetical(l *layout, term string, p *legalindex.Projection) {
	entry := p.Entries[term]
	l.line(term, 0)
	if p.Options.IncludeSubcategories {
		for _, cat := range entry.Categories() {
			l.line(titleCategory(cat)+": "+formatPages(entry.Pages(cat)), 10)
		}
	}
	l.line("All references: "+formatPages(entry.Pages(legalindex.AllReferences)), 10)
	if alts, ok := p.CrossRefs[term]; ok {
		l.line("See also: "+strings.Join(alts, ", "), 10)
	}
}

// layout places lines of text into columns, moving to the next column
// and then the next page as each fills.
type layout struct {
	pdf      *fpdf.Fpdf
	columns  int
	colWidth float64
	col      int
	y        float64
}

func (l *layout) title(s string) {
	l.pdf.SetFont("Helvetica", "B", 14)
	l.write(s, 0, 18)
	l.y += lineHeight / 2
}

func (l *layout) header(s string) {
	l.pdf.SetFont("Helvetica", "B", 11)
	l.y += lineHeight / 2
	l.write(s, 0, 14)
}

func (l *layout) subheader(s string) {
	l.pdf.SetFont("Helvetica", "B", 9)
	l.write(s, 0, lineHeight)
}

func (l *layout) line(s string, indent float64) {
	l.pdf.SetFont("Helvetica", "", 9)
	l.write(s, indent, lineHeight)
}

func (l *layout) write(s string, indent, height float64) {
	for _, part := range l.pdf.SplitText(s, l.colWidth-indent) {
		if l.y+height > pageHeight-margin {
			l.nextColumn()
		}
		l.pdf.Text(l.x()+indent, l.y, part)
		l.y += height
	}
}

func (l *layout) x() float64 {
	return margin + float64(l.col)*(l.colWidth+columnGap)
}

func (l *layout) nextColumn() {
	l.col++
	if l.col >= l.columns {
		l.col = 0
		l.pdf.AddPage()
	}
	l.y = margin
}

func formatPages(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}

func titleCategory(category string) string {
	words := strings.Split(category, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
