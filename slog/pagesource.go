// Package slog provides logging decorators for legalindex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/legalindex"
)

// Ensure LoggingPageSource implements legalindex.PageSource.
var _ legalindex.PageSource = (*LoggingPageSource)(nil)

// LoggingPageSource wraps a PageSource with debug logging.
type LoggingPageSource struct {
	next   legalindex.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next legalindex.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// ExtractPages delegates to the wrapped source and logs the operation,
// including how many extracted pages came back empty.
func (s *LoggingPageSource) ExtractPages(ctx context.Context, path string) (pages []legalindex.PageText, err error) {
	defer func(begin time.Time) {
		empty := 0
		for _, p := range pages {
			if p.Text == "" {
				empty++
			}
		}
		s.logger.Info("page extraction",
			"path", path,
			"pages", len(pages),
			"empty_pages", empty,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractPages(ctx, path)
}
