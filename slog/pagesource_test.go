package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/legalindex"
	"github.com/fwojciec/legalindex/mock"
	lislog "github.com/fwojciec/legalindex/slog"
)

func TestLoggingPageSource(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		src := &mock.PageSource{
			ExtractPagesFn: func(ctx context.Context, path string) ([]legalindex.PageText, error) {
				return []legalindex.PageText{
					{Page: 1, Text: "content"},
					{Page: 2},
				}, nil
			},
		}

		pages, err := lislog.NewLoggingPageSource(src, logger).ExtractPages(context.Background(), "doc.pdf")

		require.NoError(t, err)
		assert.Len(t, pages, 2)
		assert.Contains(t, buf.String(), "page extraction")
		assert.Contains(t, buf.String(), "path=doc.pdf")
		assert.Contains(t, buf.String(), "pages=2")
		assert.Contains(t, buf.String(), "empty_pages=1")
	})

	t.Run("propagates errors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		src := &mock.PageSource{
			ExtractPagesFn: func(ctx context.Context, path string) ([]legalindex.PageText, error) {
				return nil, legalindex.Errorf(legalindex.ENOTFOUND, "document not found: %s", path)
			},
		}

		_, err := lislog.NewLoggingPageSource(src, logger).ExtractPages(context.Background(), "absent.pdf")

		require.Error(t, err)
		assert.Equal(t, legalindex.ENOTFOUND, legalindex.ErrorCode(err))
		assert.Contains(t, buf.String(), "not_found")
	})
}

func TestLoggingLayoutSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	src := &mock.LayoutSource{
		ExtractLayoutFn: func(ctx context.Context, path string) ([]legalindex.PageLayout, error) {
			return []legalindex.PageLayout{
				{Page: 1, Spans: []legalindex.Span{{Text: "PART ONE", Bold: true}}},
			}, nil
		},
	}

	layout, err := lislog.NewLoggingLayoutSource(src, logger).ExtractLayout(context.Background(), "doc.pdf")

	require.NoError(t, err)
	assert.Len(t, layout, 1)
	assert.Contains(t, buf.String(), "layout extraction")
	assert.Contains(t, buf.String(), "spans=1")
}
