package infrastructure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appstarter/internal/features/generation/domain"
)

func TestWorkspace_WriteFiles(t *testing.T) {
	fs := memfs.New()
	ws := NewWorkspaceFS(fs)
	files := []domain.GeneratedFile{
		{Path: "backend/main.py", Content: "print('hi')\n"},
		{Path: "frontend/src/components/TodoView.js", Content: "export default 1;\n"},
		{Path: "README.md", Content: "# Todo\n"},
	}

	written, err := ws.WriteFiles(files)
	require.NoError(t, err)
	assert.Equal(t, []string{"backend/main.py", "frontend/src/components/TodoView.js", "README.md"}, written)

	got, err := util.ReadFile(fs, "frontend/src/components/TodoView.js")
	require.NoError(t, err)
	assert.Equal(t, "export default 1;\n", string(got))
}

func TestWorkspace_Overwrites(t *testing.T) {
	fs := memfs.New()
	ws := NewWorkspaceFS(fs)
	_, err := ws.WriteFiles([]domain.GeneratedFile{{Path: "README.md", Content: "a much longer first version"}})
	require.NoError(t, err)
	_, err = ws.WriteFiles([]domain.GeneratedFile{{Path: "README.md", Content: "short"}})
	require.NoError(t, err)

	got, err := util.ReadFile(fs, "README.md")
	require.NoError(t, err)
	assert.Equal(t, "short", string(got))
}

func TestWorkspace_RejectsUnsafePaths(t *testing.T) {
	for _, p := range []string{"", "/etc/passwd", "../outside.txt", "a/../../b", "..", ".", `dir\file`} {
		t.Run(p, func(t *testing.T) {
			ws := NewWorkspaceFS(memfs.New())
			written, err := ws.WriteFiles([]domain.GeneratedFile{
				{Path: "ok.txt", Content: "ok"},
				{Path: p, Content: "x"},
			})
			assert.ErrorIs(t, err, domain.ErrUnsafePath)
			assert.Equal(t, []string{"ok.txt"}, written)
		})
	}
}

func TestWorkspace_OnDisk(t *testing.T) {
	dir := t.TempDir()
	ws := NewWorkspace(dir)

	_, err := ws.WriteFiles([]domain.GeneratedFile{{Path: "backend/main.py", Content: "x = 1\n"}})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, "backend", "main.py"))
	require.NoError(t, err)
	assert.Equal(t, "x = 1\n", string(content))
	assert.Equal(t, dir, ws.Root())
}
