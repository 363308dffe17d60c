// Package slog provides log/slog decorators for krxlist services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/krxlist"
)

// Ensure LoggingDownloader implements krxlist.Downloader.
var _ krxlist.Downloader = (*LoggingDownloader)(nil)

// LoggingDownloader wraps a Downloader with logging.
type LoggingDownloader struct {
	next   krxlist.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next krxlist.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the transfer.
func (d *LoggingDownloader) Download(ctx context.Context, url, dst string) (archive *krxlist.Archive, err error) {
	defer func(begin time.Time) {
		var size int64
		var checksum string
		if archive != nil {
			size, checksum = archive.Size, archive.Checksum
		}
		d.logger.Info("download",
			"url", url,
			"bytes", size,
			"checksum", checksum,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.Download(ctx, url, dst)
}
