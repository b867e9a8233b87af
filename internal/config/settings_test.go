package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestSettingsFromEnv_Defaults(t *testing.T) {
	s, err := SettingsFromEnv(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", s.Port)
	assert.Equal(t, "config/rules.json", s.RulesPath)
	assert.Equal(t, "workspace", s.WorkspaceDir)
	assert.Equal(t, "data/history.db", s.HistoryDBPath)
	assert.Equal(t, 5, s.MinIdeaLength)
	assert.Equal(t, 1000, s.MaxIdeaLength)
	assert.Equal(t, 8000, s.BackendPort)
	assert.Equal(t, 3000, s.FrontendPort)
	assert.Equal(t, "main", s.Git.Branch)
	assert.Equal(t, 2*time.Minute, s.Git.Timeout)
	assert.False(t, s.Git.PushByDefault, "no remote means no push")
	assert.Equal(t, "gpt-4o-mini", s.OpenAI.Model)
	assert.False(t, s.Artifact.Enabled)
}

func TestSettingsFromEnv_Overrides(t *testing.T) {
	s, err := SettingsFromEnv(envFrom(map[string]string{
		"PORT":                 ":9090",
		"WORKSPACE_DIR":        "/srv/ws",
		"GIT_REPO_URL":         "https://example.com/acme/app.git",
		"GIT_TIMEOUT":          "30s",
		"MIN_IDEA_LENGTH":      "10",
		"OPENAI_API_KEY":       " sk-test ",
		"ARTIFACT_S3_ENDPOINT": "minio:9000",
		"MINIO_ROOT_USER":      "minio",
		"MINIO_ROOT_PASSWORD":  "secret",
		"ARTIFACT_S3_USE_SSL":  "false",
	}))
	require.NoError(t, err)

	assert.Equal(t, ":9090", s.Port)
	assert.Equal(t, "/srv/ws", s.WorkspaceDir)
	assert.Equal(t, 30*time.Second, s.Git.Timeout)
	assert.True(t, s.Git.PushByDefault)
	assert.Equal(t, 10, s.MinIdeaLength)
	assert.Equal(t, "sk-test", s.OpenAI.APIKey)
	assert.True(t, s.Artifact.Enabled)
	assert.Equal(t, "minio", s.Artifact.AccessKey)
	assert.Equal(t, "secret", s.Artifact.SecretKey)
	assert.Equal(t, "app-starter-artifacts", s.Artifact.Bucket)
	assert.False(t, s.Artifact.UseSSL)
}

func TestSettingsFromEnv_PushCanBeDisabled(t *testing.T) {
	s, err := SettingsFromEnv(envFrom(map[string]string{
		"GIT_REPO_URL":        "https://example.com/acme/app.git",
		"GIT_PUSH_BY_DEFAULT": "false",
	}))
	require.NoError(t, err)
	assert.False(t, s.Git.PushByDefault)
}

func TestSettingsFromEnv_Invalid(t *testing.T) {
	for name, env := range map[string]map[string]string{
		"bad min":     {"MIN_IDEA_LENGTH": "five"},
		"bad timeout": {"GIT_TIMEOUT": "soon"},
		"max < min":   {"MIN_IDEA_LENGTH": "50", "MAX_IDEA_LENGTH": "10"},
		"bad port":    {"GENERATED_BACKEND_PORT": "http"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := SettingsFromEnv(envFrom(env))
			assert.Error(t, err)
		})
	}
}
