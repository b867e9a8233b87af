package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appstarter/internal/config"
	"appstarter/internal/features/config/application"
	"appstarter/internal/features/config/domain"
)

func setupConfigRouter(t *testing.T, onSaved RulesListener) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := config.NewAppConfigService(filepath.Join(t.TempDir(), "rules.json"))
	h := NewAppConfigHandler(application.NewConfigService(store), onSaved)

	r := gin.New()
	r.GET("/api/config/app", h.GetAppConfigHandler)
	r.POST("/api/config/app", h.SaveAppConfigHandler)
	return r
}

func TestGetAppConfigHandler(t *testing.T) {
	r := setupConfigRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config/app", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var rules domain.AppConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rules))
	assert.Equal(t, "todo", rules.Categories[0].Category)
}

func TestSaveAppConfigHandler(t *testing.T) {
	var notified *domain.AppConfig
	r := setupConfigRouter(t, func(rules *domain.AppConfig) { notified = rules })

	rules := domain.DefaultAppConfig()
	rules.FallbackAppName = "starter_app"
	body, err := json.Marshal(rules)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/config/app", strings.NewReader(string(body))))
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, notified)
	assert.Equal(t, "starter_app", notified.FallbackAppName)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/config/app", nil))
	assert.Contains(t, w.Body.String(), `"fallback_app_name":"starter_app"`)
}

func TestSaveAppConfigHandler_Rejects(t *testing.T) {
	called := false
	r := setupConfigRouter(t, func(*domain.AppConfig) { called = true })

	for _, body := range []string{
		`{"categories": [`,
		`{"categories": [{"category": "games", "keywords": ["chess"]}]}`,
	} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/config/app", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.False(t, called)
}
