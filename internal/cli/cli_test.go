package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appstarter/internal/features/generation/domain"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("RULES_PATH", filepath.Join(dir, "rules.json"))
	t.Setenv("HISTORY_DB_PATH", filepath.Join(dir, "history.db"))
	t.Setenv("WORKSPACE_DIR", filepath.Join(dir, "workspace"))
	t.Setenv("GIT_REPO_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ARTIFACT_S3_ENDPOINT", "")
	color.NoColor = true
	return dir
}

func TestAnalyzeCmd(t *testing.T) {
	isolateEnv(t)
	cmd := AnalyzeCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"complex", "real-time", "dashboard"})

	require.NoError(t, cmd.Execute())

	var meta domain.AppMetadata
	require.NoError(t, json.Unmarshal(out.Bytes(), &meta))
	assert.Equal(t, domain.CategoryDashboard, meta.AppCategory)
	assert.Equal(t, domain.StyleInteractive, meta.FrontendStyle)
}

func TestGenerateCmd(t *testing.T) {
	dir := isolateEnv(t)
	target := filepath.Join(dir, "out")

	cmd := GenerateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dir", target, "--complexity", "complex", "simple calculator"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "calculator_app [files_written]")
	assert.Contains(t, out.String(), "frontend/src/components/CalculatorView.js")
	_, err := os.Stat(filepath.Join(target, "frontend", "src", "App.js"))
	assert.NoError(t, err)
}

func TestGenerateCmd_PushWithoutRemote(t *testing.T) {
	dir := isolateEnv(t)

	cmd := GenerateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dir", filepath.Join(dir, "out"), "--push", "a notes app"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[files_written_push_failed]")
	assert.Contains(t, out.String(), "no git remote is configured")
}

func TestGenerateCmd_InvalidIdea(t *testing.T) {
	isolateEnv(t)

	cmd := GenerateCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"abc"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrInvalidIdea)
}
