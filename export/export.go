// Package export renders index projections into the text-based output
// formats: plain text, Markdown, JSON, and CSV. The XML and PDF
// renderings live in the etree and fpdf packages.
package export

import (
	"strconv"
	"strings"

	"github.com/fwojciec/legalindex"
)

// formatPages renders sorted page numbers as "2, 5, 11".
func formatPages(pages []int) string {
	parts := make([]string, len(pages))
	for i, p := range pages {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}

// titleCategory turns a category name into its display form,
// e.g. "case_law_references" → "Case Law References".
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

// occurrenceDetail renders the per-occurrence context line for the
// snippet and headings styles.
func occurrenceDetail(occ legalindex.Occurrence, style legalindex.ContextStyle) string {
	switch style {
	case legalindex.ContextSnippet:
		return strconv.Itoa(occ.Page) + ": " + occ.Snippet
	case legalindex.ContextHeadings:
		return strconv.Itoa(occ.Page) + ": " + occ.HeadingPath()
	}
	return strconv.Itoa(occ.Page)
}
