// Package pdf extracts per-page text and layout metadata from PDF files.
package pdf

import (
	"context"
	"os"
	"strings"

	lpdf "github.com/ledongthuc/pdf"

	"github.com/fwojciec/legalindex"
)

// Ensure Source implements the collaborator interfaces at compile time.
var (
	_ legalindex.PageSource   = (*Source)(nil)
	_ legalindex.LayoutSource = (*Source)(nil)
)

// wordGapFactor is the fraction of the font size treated as a word gap
// when adjacent text fragments are merged into a span.
const wordGapFactor = 0.3

// Source reads PDF documents from the local filesystem.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// ExtractPages returns the plain text of every page in document order.
// Pages that fail to decode degrade to empty text; the document as a
// whole fails only when it cannot be opened or parsed at all.
func (s *Source) ExtractPages(ctx context.Context, path string) ([]legalindex.PageText, error) {
	f, r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pages := make([]legalindex.PageText, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, legalindex.PageText{Page: i})
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		pages = append(pages, legalindex.PageText{Page: i, Text: text})
	}
	return pages, nil
}

// ExtractLayout returns the per-page text spans with font size and
// emphasis metadata, merging adjacent fragments that share a row and
// font into single spans.
func (s *Source) ExtractLayout(ctx context.Context, path string) ([]legalindex.PageLayout, error) {
	f, r, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	layouts := make([]legalindex.PageLayout, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		layout := legalindex.PageLayout{Page: i}
		page := r.Page(i)
		if !page.V.IsNull() {
			layout.Spans = pageSpans(page)
		}
		layouts = append(layouts, layout)
	}
	return layouts, nil
}

func open(path string) (*os.File, *lpdf.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, legalindex.Errorf(legalindex.ENOTFOUND, "document not found: %s", path)
		}
		return nil, nil, legalindex.Errorf(legalindex.EINTERNAL, "opening document: %v", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, legalindex.Errorf(legalindex.EINTERNAL, "reading document: %v", err)
	}
	r, err := lpdf.NewReader(f, info.Size())
	if err != nil {
		f.Close()
		return nil, nil, legalindex.Errorf(legalindex.EINVALID, "not a readable PDF: %v", err)
	}
	return f, r, nil
}

// pageSpans merges the page's positioned text fragments into spans.
// Fragments on the same row sharing font and size join one span, with a
// space inserted across visible horizontal gaps.
func pageSpans(page lpdf.Page) []legalindex.Span {
	defer func() {
		// A corrupted content stream may panic inside the decoder;
		// the page then contributes no spans.
		_ = recover()
	}()

	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	var spans []legalindex.Span
	var b strings.Builder
	cur := content.Text[0]
	b.WriteString(cur.S)
	prev := cur

	flush := func(t lpdf.Text) {
		text := b.String()
		if strings.TrimSpace(text) != "" {
			spans = append(spans, legalindex.Span{
				Text:     strings.TrimSpace(text),
				FontSize: t.FontSize,
				Bold:     fontIsBold(t.Font),
			})
		}
		b.Reset()
	}

	for _, t := range content.Text[1:] {
		sameRow := t.Y == prev.Y
		sameFont := t.Font == prev.Font && t.FontSize == prev.FontSize
		if !sameRow || !sameFont {
			flush(prev)
			prev = t
			b.WriteString(t.S)
			continue
		}
		if gap := t.X - (prev.X + prev.W); gap > wordGapFactor*t.FontSize {
			b.WriteString(" ")
		}
		b.WriteString(t.S)
		prev = t
	}
	flush(prev)

	return spans
}

// fontIsBold derives the emphasis signal from the font name.
func fontIsBold(font string) bool {
	f := strings.ToLower(font)
	return strings.Contains(f, "bold") ||
		strings.Contains(f, "black") ||
		strings.Contains(f, "heavy")
}
