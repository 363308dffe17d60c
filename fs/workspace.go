// Package fs provides run-scoped file storage for downloaded archives.
package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/krxlist"
)

// Workspace is a temporary directory owned by a single run.
// Everything in it is removed on Close, whether the run succeeded or not.
type Workspace struct {
	baseDir string
	pattern string
	dir     string
}

// NewWorkspace creates a new Workspace under baseDir. An empty baseDir
// uses the system temporary directory; pattern follows os.MkdirTemp.
func NewWorkspace(baseDir, pattern string) *Workspace {
	return &Workspace{
		baseDir: baseDir,
		pattern: pattern,
	}
}

// Open creates the temporary directory.
func (w *Workspace) Open() error {
	if w.dir != "" {
		return krxlist.Errorf(krxlist.EINVALID, "workspace already open")
	}
	dir, err := os.MkdirTemp(w.baseDir, w.pattern)
	if err != nil {
		return err
	}
	w.dir = dir
	return nil
}

// Dir returns the workspace directory, or "" if it is not open.
func (w *Workspace) Dir() string {
	return w.dir
}

// Path returns name joined to the workspace directory.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// Close removes the workspace directory and everything in it.
// Closing a workspace that is not open is a no-op.
func (w *Workspace) Close() error {
	if w.dir == "" {
		return nil
	}
	dir := w.dir
	w.dir = ""
	return os.RemoveAll(dir)
}
