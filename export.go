package legalindex

import (
	"io"
	"path/filepath"
	"strings"
)

// Format identifies an output representation of the index.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatCSV      Format = "csv"
	FormatXML      Format = "xml"
	FormatMarkdown Format = "md"
	FormatPDF      Format = "pdf"
)

// ParseFormat validates a format selector. Returns EUNSUPPORTED for
// anything outside the supported set.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatText, FormatJSON, FormatCSV, FormatXML, FormatMarkdown, FormatPDF:
		return Format(strings.ToLower(s)), nil
	}
	return "", Errorf(EUNSUPPORTED, "unsupported output format: %q", s)
}

// FormatFromPath derives the output format from a file extension,
// defaulting to text for unrecognized extensions.
func FormatFromPath(path string) Format {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if f, err := ParseFormat(ext); err == nil {
		return f
	}
	return FormatText
}

// ContextStyle selects how much surrounding detail each occurrence shows.
type ContextStyle string

// Supported context styles.
const (
	// ContextNone shows only the sorted distinct page numbers per term.
	ContextNone ContextStyle = "none"
	// ContextSnippet shows page plus surrounding text per occurrence.
	ContextSnippet ContextStyle = "snippet"
	// ContextHeadings shows page plus heading path per occurrence.
	ContextHeadings ContextStyle = "headings"
)

// ExportOptions are projection-time parameters. They filter what an
// export shows; the underlying index is never mutated.
type ExportOptions struct {
	// TermsOnly hides the statutory and case-law reference sections.
	TermsOnly bool

	// SuppressCategories drops the named categories from every entry,
	// with AllReferences recomputed from the surviving categories.
	SuppressCategories []string

	// ContextStyle selects the per-occurrence detail level.
	ContextStyle ContextStyle

	// Columns is a layout hint honored only by the paginated document
	// rendering.
	Columns int

	// IncludeSubcategories toggles per-category detail in the
	// alphabetical index of the text-like formats.
	IncludeSubcategories bool
}

// Exporter renders a projection into one output format. All exporters
// are total: they render the identical filtered index, differing only in
// structural idiom.
type Exporter interface {
	Export(w io.Writer, p *Projection) error
}
