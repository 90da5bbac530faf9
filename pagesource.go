package legalindex

import "context"

// PageText is one extracted page of the source document. Pages are
// 1-based and returned in document order.
type PageText struct {
	Page int
	Text string
}

// PageSource extracts plain text per page from a source document.
// Implementations hide the extraction backend and any fallback for
// image-only pages.
type PageSource interface {
	// ExtractPages returns the ordered per-page text of the document.
	// Returns ENOTFOUND if the document does not exist. A page that
	// cannot be read is returned with empty text rather than failing
	// the whole document.
	ExtractPages(ctx context.Context, path string) ([]PageText, error)
}

// LayoutSource extracts the per-page layout stream used for outline
// inference: ordered text spans with font size and emphasis metadata.
type LayoutSource interface {
	// ExtractLayout returns the ordered per-page spans of the document.
	// Returns ENOTFOUND if the document does not exist. Pages whose
	// layout cannot be read are returned with no spans.
	ExtractLayout(ctx context.Context, path string) ([]PageLayout, error)
}
