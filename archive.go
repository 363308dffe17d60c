package krxlist

import (
	"context"
	"io"
)

// Archive describes a downloaded archive on local disk.
type Archive struct {
	Path     string
	Size     int64
	Checksum string // xxhash64, hex
}

// Downloader retrieves a remote file into a local path.
type Downloader interface {
	// Download fetches url and writes the body to dst.
	// The context controls timeout and cancellation.
	Download(ctx context.Context, url, dst string) (*Archive, error)
}

// ArchiveExtractor pulls a single named file out of an archive.
type ArchiveExtractor interface {
	// ExtractFile writes the entry called name from the archive at
	// archivePath into dstDir and returns the written path.
	// Returns ENOTFOUND if the archive has no such entry.
	ExtractFile(archivePath, name, dstDir string) (string, error)
}

// LineDecoder decodes a legacy-encoded text stream into lines.
// Lines keep their terminator so fixed-width offsets stay intact.
type LineDecoder interface {
	DecodeLines(r io.Reader) ([]string, error)
}

// Emitter writes the result of a run.
type Emitter interface {
	// Emit writes the combined listings.
	Emit(w io.Writer, listings []*Listing) error

	// EmitError writes a failure report for err.
	EmitError(w io.Writer, err error) error
}
