package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appstarter/internal/features/config/domain"
)

func TestAppConfigService_MissingFileUsesDefaults(t *testing.T) {
	svc := NewAppConfigService(filepath.Join(t.TempDir(), "rules.json"))

	cfg, err := svc.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppConfig(), cfg)
}

func TestAppConfigService_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "rules.json")
	svc := NewAppConfigService(path)

	cfg := domain.DefaultAppConfig()
	cfg.FallbackAppName = "starter_app"
	cfg.Categories = cfg.Categories[:2]
	require.NoError(t, svc.SaveAppConfig(cfg))

	loaded, err := svc.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestAppConfigService_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewAppConfigService(path).LoadAppConfig()
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestAppConfigService_EmptyPath(t *testing.T) {
	svc := NewAppConfigService("")

	cfg, err := svc.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "my_app", cfg.FallbackAppName)
	assert.Error(t, svc.SaveAppConfig(cfg))
}
