package infrastructure

import (
	"fmt"
	"path"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"appstarter/internal/features/generation/domain"
)

// Workspace is the persistence sink: it writes generated files beneath a
// root directory, creating parents and overwriting existing files.
type Workspace struct {
	fs billy.Filesystem
}

// NewWorkspace returns a Workspace rooted at dir on the local disk.
func NewWorkspace(dir string) *Workspace {
	return NewWorkspaceFS(osfs.New(dir))
}

// NewWorkspaceFS wraps an existing billy filesystem.
func NewWorkspaceFS(fs billy.Filesystem) *Workspace {
	return &Workspace{fs: fs}
}

// Root returns the directory the workspace writes into.
func (w *Workspace) Root() string {
	return w.fs.Root()
}

// WriteFiles writes files in order and returns the paths written. On error
// the paths written so far are returned alongside it.
func (w *Workspace) WriteFiles(files []domain.GeneratedFile) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, f := range files {
		p, err := cleanRelative(f.Path)
		if err != nil {
			return written, err
		}
		if dir := path.Dir(p); dir != "." {
			if err := w.fs.MkdirAll(dir, 0o755); err != nil {
				return written, fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(w.fs, p, []byte(f.Content), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", p, err)
		}
		written = append(written, p)
	}
	return written, nil
}

// cleanRelative rejects absolute paths and paths that escape the root.
func cleanRelative(p string) (string, error) {
	if p == "" || strings.HasPrefix(p, "/") || strings.Contains(p, "\\") {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsafePath, p)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q", domain.ErrUnsafePath, p)
	}
	return clean, nil
}
