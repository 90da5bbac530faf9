package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fwojciec/legalindex"
)

// Ensure TextExporter implements legalindex.Exporter at compile time.
var _ legalindex.Exporter = (*TextExporter)(nil)

// TextExporter renders the plain-text report.
type TextExporter struct{}

// NewTextExporter creates a new TextExporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export writes the report. Output is deterministic: identical
// projections produce byte-identical reports.
func (e *TextExporter) Export(w io.Writer, p *legalindex.Projection) error {
	var b strings.Builder

	b.WriteString("COMPREHENSIVE LEGAL INDEX\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	writeTextTOC(&b, p.TOC)

	if !p.Options.TermsOnly {
		writeTextSection(&b, "CASE LAW REFERENCES", p.CaseLaw, p)
		writeTextSection(&b, "STATUTORY REFERENCES", p.Statutory, p)
	}

	b.WriteString("INDEX BY SUBJECT\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for _, cat := range p.SubjectCategories {
		fmt.Fprintf(&b, "\n-- %s --\n", titleCategory(cat))
		for _, term := range p.Subject[cat] {
			writeTextTerm(&b, term, p)
		}
	}
	b.WriteString("\n")

	b.WriteString("ALPHABETICAL INDEX\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for _, term := range p.Terms {
		writeTextAlphabetical(&b, term, p)
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "writing text output: %v", err)
	}
	return nil
}

func writeTextTOC(b *strings.Builder, toc legalindex.Outline) {
	b.WriteString("TABLE OF CONTENTS\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for _, l1 := range toc.SortedKeys() {
		b.WriteString(l1 + "\n")
		section := toc[l1]
		for _, l2 := range section.SortedKeys() {
			b.WriteString("  " + l2 + "\n")
			topic := section[l2]
			for _, l3 := range topic.SortedKeys() {
				leaf := topic[l3]
				if len(leaf.Sub) == 0 {
					fmt.Fprintf(b, "    %s: %d\n", l3, leaf.Page)
					continue
				}
				b.WriteString("    " + l3 + "\n")
				for _, l4 := range sortedIntKeys(leaf.Sub) {
					fmt.Fprintf(b, "      %s: %d\n", l4, leaf.Sub[l4])
				}
			}
		}
	}
	b.WriteString("\n")
}

func writeTextSection(b *strings.Builder, header string, terms []string, p *legalindex.Projection) {
	b.WriteString(header + "\n")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	for _, term := range terms {
		writeTextTerm(b, term, p)
	}
	b.WriteString("\n")
}

// writeTextTerm renders one term line, or a term block with one line per
// occurrence for the snippet and headings context styles.
func writeTextTerm(b *strings.Builder, term string, p *legalindex.Projection) {
	if p.Options.ContextStyle == legalindex.ContextNone || p.Options.ContextStyle == "" {
		fmt.Fprintf(b, "%s: %s\n", term, formatPages(p.Pages(term)))
		return
	}
	b.WriteString(term + "\n")
	for _, occ := range p.Entries[term][legalindex.AllReferences] {
		b.WriteString("  " + occurrenceDetail(occ, p.Options.ContextStyle) + "\n")
	}
}

// writeTextAlphabetical renders the full per-term block of the
// alphabetical index, with per-category detail when subcategories are
// included and any cross-references recorded for the term.
func writeTextAlphabetical(b *strings.Builder, term string, p *legalindex.Projection) {
	entry := p.Entries[term]

	b.WriteString(term + "\n")
	if p.Options.IncludeSubcategories {
		for _, cat := range entry.Categories() {
			fmt.Fprintf(b, "  %s: %s\n", titleCategory(cat), formatPages(entry.Pages(cat)))
		}
	}
	fmt.Fprintf(b, "  All references: %s\n", formatPages(entry.Pages(legalindex.AllReferences)))
	if alts, ok := p.CrossRefs[term]; ok {
		fmt.Fprintf(b, "  See also: %s\n", strings.Join(alts, ", "))
	}
	b.WriteString("\n")
}

func sortedIntKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
