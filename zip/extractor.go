// Package zip implements krxlist.ArchiveExtractor for zip archives.
package zip

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/krxlist"
)

// Ensure Extractor implements krxlist.ArchiveExtractor at compile time.
var _ krxlist.ArchiveExtractor = (*Extractor)(nil)

// Extractor extracts single entries from zip archives.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFile implements krxlist.ArchiveExtractor. The entry is matched by
// its base name so archives that nest the file in a directory still work.
func (e *Extractor) ExtractFile(archivePath, name, dstDir string) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if r != nil {
		defer r.Close()
	}
	switch {
	case errors.Is(err, zip.ErrFormat):
		return "", krxlist.Errorf(krxlist.EINVALID, "%s is not a zip archive", filepath.Base(archivePath))
	case errors.Is(err, zip.ErrInsecurePath):
		return "", krxlist.Errorf(krxlist.EINVALID, "%s has entries outside the archive root", filepath.Base(archivePath))
	case err != nil:
		return "", err
	}

	for _, f := range r.File {
		if f.FileInfo().IsDir() || path.Base(f.Name) != name {
			continue
		}
		return extract(f, name, dstDir)
	}

	return "", krxlist.Errorf(krxlist.ENOTFOUND, "archive %s has no entry %q", filepath.Base(archivePath), name)
}

func extract(f *zip.File, name, dstDir string) (_ string, err error) {
	dst := filepath.Join(dstDir, name)
	if !strings.HasPrefix(dst, filepath.Clean(dstDir)+string(os.PathSeparator)) {
		return "", krxlist.Errorf(krxlist.EINVALID, "entry %q escapes destination", f.Name)
	}

	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, rc); err != nil {
		return "", fmt.Errorf("extract %s: %w", f.Name, err)
	}
	return dst, nil
}
