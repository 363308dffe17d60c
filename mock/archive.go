package mock

import (
	"context"
	"io"

	"github.com/fwojciec/krxlist"
)

// Compile-time interface verification.
var (
	_ krxlist.Downloader       = (*Downloader)(nil)
	_ krxlist.ArchiveExtractor = (*ArchiveExtractor)(nil)
	_ krxlist.LineDecoder      = (*LineDecoder)(nil)
)

// Downloader is a mock implementation of krxlist.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url, dst string) (*krxlist.Archive, error)
}

func (d *Downloader) Download(ctx context.Context, url, dst string) (*krxlist.Archive, error) {
	return d.DownloadFn(ctx, url, dst)
}

// ArchiveExtractor is a mock implementation of krxlist.ArchiveExtractor.
type ArchiveExtractor struct {
	ExtractFileFn func(archivePath, name, dstDir string) (string, error)
}

func (e *ArchiveExtractor) ExtractFile(archivePath, name, dstDir string) (string, error) {
	return e.ExtractFileFn(archivePath, name, dstDir)
}

// LineDecoder is a mock implementation of krxlist.LineDecoder.
type LineDecoder struct {
	DecodeLinesFn func(r io.Reader) ([]string, error)
}

func (d *LineDecoder) DecodeLines(r io.Reader) ([]string, error) {
	return d.DecodeLinesFn(r)
}
