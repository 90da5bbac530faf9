package mock

import (
	"context"

	"github.com/fwojciec/legalindex"
)

var _ legalindex.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of legalindex.PageSource.
type PageSource struct {
	ExtractPagesFn func(ctx context.Context, path string) ([]legalindex.PageText, error)
}

func (s *PageSource) ExtractPages(ctx context.Context, path string) ([]legalindex.PageText, error) {
	return s.ExtractPagesFn(ctx, path)
}

var _ legalindex.LayoutSource = (*LayoutSource)(nil)

// LayoutSource is a mock implementation of legalindex.LayoutSource.
type LayoutSource struct {
	ExtractLayoutFn func(ctx context.Context, path string) ([]legalindex.PageLayout, error)
}

func (s *LayoutSource) ExtractLayout(ctx context.Context, path string) ([]legalindex.PageLayout, error) {
	return s.ExtractLayoutFn(ctx, path)
}
