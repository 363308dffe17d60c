package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/krxlist"
)

// Ensure LoggingSource implements krxlist.ListingSource.
var _ krxlist.ListingSource = (*LoggingSource)(nil)

// LoggingSource wraps a ListingSource with logging.
type LoggingSource struct {
	next   krxlist.ListingSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next krxlist.ListingSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Listings delegates to the wrapped source and logs the listing count.
func (s *LoggingSource) Listings(ctx context.Context, market krxlist.Market) (listings []*krxlist.Listing, err error) {
	defer func(begin time.Time) {
		s.logger.Info("listings",
			"market", string(market),
			"count", len(listings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Listings(ctx, market)
}
