package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/legalindex"
)

// Ensure LoggingLayoutSource implements legalindex.LayoutSource.
var _ legalindex.LayoutSource = (*LoggingLayoutSource)(nil)

// LoggingLayoutSource wraps a LayoutSource with debug logging.
type LoggingLayoutSource struct {
	next   legalindex.LayoutSource
	logger *slog.Logger
}

// NewLoggingLayoutSource creates a new LoggingLayoutSource.
func NewLoggingLayoutSource(next legalindex.LayoutSource, logger *slog.Logger) *LoggingLayoutSource {
	return &LoggingLayoutSource{next: next, logger: logger}
}

// ExtractLayout delegates to the wrapped source and logs the operation.
func (s *LoggingLayoutSource) ExtractLayout(ctx context.Context, path string) (layout []legalindex.PageLayout, err error) {
	defer func(begin time.Time) {
		spans := 0
		for _, pl := range layout {
			spans += len(pl.Spans)
		}
		s.logger.Info("layout extraction",
			"path", path,
			"pages", len(layout),
			"spans", spans,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractLayout(ctx, path)
}
