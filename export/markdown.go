package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/legalindex"
)

var _ legalindex.Exporter = (*MarkdownExporter)(nil)

// MarkdownExporter renders the Markdown report, mirroring the sections
// of the plain-text report with heading structure.
type MarkdownExporter struct{}

// NewMarkdownExporter creates a new MarkdownExporter.
func NewMarkdownExporter() *MarkdownExporter {
	return &MarkdownExporter{}
}

func (e *MarkdownExporter) Export(w io.Writer, p *legalindex.Projection) error {
	var b strings.Builder

	b.WriteString("# Comprehensive Legal Index\n\n")

	writeMarkdownTOC(&b, p.TOC)

	if !p.Options.TermsOnly {
		writeMarkdownSection(&b, "## Case Law References", p.CaseLaw, p)
		writeMarkdownSection(&b, "## Statutory References", p.Statutory, p)
	}

	b.WriteString("## Index by Subject\n\n")
	for _, cat := range p.SubjectCategories {
		fmt.Fprintf(&b, "### %s\n\n", titleCategory(cat))
		for _, term := range p.Subject[cat] {
			writeMarkdownTerm(&b, term, p)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Alphabetical Index\n\n")
	for _, term := range p.Terms {
		writeMarkdownAlphabetical(&b, term, p)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return legalindex.Errorf(legalindex.EINTERNAL, "writing markdown output: %v", err)
	}
	return nil
}

func writeMarkdownTOC(b *strings.Builder, toc legalindex.Outline) {
	b.WriteString("## Table of Contents\n\n")
	for _, l1 := range toc.SortedKeys() {
		fmt.Fprintf(b, "- **%s**\n", l1)
		section := toc[l1]
		for _, l2 := range section.SortedKeys() {
			fmt.Fprintf(b, "  - **%s**\n", l2)
			topic := section[l2]
			for _, l3 := range topic.SortedKeys() {
				leaf := topic[l3]
				if len(leaf.Sub) == 0 {
					fmt.Fprintf(b, "    - %s: %d\n", l3, leaf.Page)
					continue
				}
				fmt.Fprintf(b, "    - %s\n", l3)
				for _, l4 := range sortedIntKeys(leaf.Sub) {
					fmt.Fprintf(b, "      - %s: %d\n", l4, leaf.Sub[l4])
				}
			}
		}
	}
	b.WriteString("\n")
}

func writeMarkdownSection(b *strings.Builder, header string, terms []string, p *legalindex.Projection) {
	b.WriteString(header + "\n\n")
	for _, term := range terms {
		writeMarkdownTerm(b, term, p)
	}
	b.WriteString("\n")
}

func writeMarkdownTerm(b *strings.Builder, term string, p *legalindex.Projection) {
	if p.Options.ContextStyle == legalindex.ContextNone || p.Options.ContextStyle == "" {
		fmt.Fprintf(b, "- %s: %s\n", term, formatPages(p.Pages(term)))
		return
	}
	fmt.Fprintf(b, "- %s\n", term)
	for _, occ := range p.Entries[term][legalindex.AllReferences] {
		fmt.Fprintf(b, "  - %s\n", occurrenceDetail(occ, p.Options.ContextStyle))
	}
}

func writeMarkdownAlphabetical(b *strings.Builder, term string, p *legalindex.Projection) {
	entry := p.Entries[term]

	fmt.Fprintf(b, "- %s\n", term)
	if p.Options.IncludeSubcategories {
		for _, cat := range entry.Categories() {
			fmt.Fprintf(b, "  - %s: %s\n", titleCategory(cat), formatPages(entry.Pages(cat)))
		}
	}
	fmt.Fprintf(b, "  - All references: %s\n", formatPages(entry.Pages(legalindex.AllReferences)))
	if alts, ok := p.CrossRefs[term]; ok {
		fmt.Fprintf(b, "  - See also: %s\n", strings.Join(alts, ", "))
	}
}
