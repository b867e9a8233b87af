package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Settings is the process configuration read from the environment.
type Settings struct {
	Port          string
	RulesPath     string
	WorkspaceDir  string
	HistoryDBPath string
	MinIdeaLength int
	MaxIdeaLength int
	BackendPort   int
	FrontendPort  int
	Git           GitSettings
	OpenAI        OpenAISettings
	Artifact      ArtifactSettings
}

type GitSettings struct {
	RepoURL string
	Branch  string
	Timeout time.Duration
	// PushByDefault applies when a request does not say whether to push.
	PushByDefault bool
}

type OpenAISettings struct {
	APIKey string
	Model  string
}

type ArtifactSettings struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LoadSettings loads .env when present and reads the environment.
func LoadSettings() (*Settings, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return SettingsFromEnv(os.Getenv)
}

// SettingsFromEnv builds Settings from a lookup function.
func SettingsFromEnv(getenv func(string) string) (*Settings, error) {
	env := func(key string) string { return strings.TrimSpace(getenv(key)) }

	port := firstNonEmpty(env("PORT"), "8080")
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	minLen, err := intFromEnv(env, "MIN_IDEA_LENGTH", 5)
	if err != nil {
		return nil, err
	}
	maxLen, err := intFromEnv(env, "MAX_IDEA_LENGTH", 1000)
	if err != nil {
		return nil, err
	}
	if maxLen > 0 && maxLen < minLen {
		return nil, fmt.Errorf("MAX_IDEA_LENGTH (%d) is smaller than MIN_IDEA_LENGTH (%d)", maxLen, minLen)
	}
	backendPort, err := intFromEnv(env, "GENERATED_BACKEND_PORT", 8000)
	if err != nil {
		return nil, err
	}
	frontendPort, err := intFromEnv(env, "GENERATED_FRONTEND_PORT", 3000)
	if err != nil {
		return nil, err
	}

	timeout := 2 * time.Minute
	if raw := env("GIT_TIMEOUT"); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid GIT_TIMEOUT %q: %w", raw, err)
		}
	}

	repoURL := env("GIT_REPO_URL")
	return &Settings{
		Port:          port,
		RulesPath:     firstNonEmpty(env("RULES_PATH"), "config/rules.json"),
		WorkspaceDir:  firstNonEmpty(env("WORKSPACE_DIR"), "workspace"),
		HistoryDBPath: firstNonEmpty(env("HISTORY_DB_PATH"), "data/history.db"),
		MinIdeaLength: minLen,
		MaxIdeaLength: maxLen,
		BackendPort:   backendPort,
		FrontendPort:  frontendPort,
		Git: GitSettings{
			RepoURL:       repoURL,
			Branch:        firstNonEmpty(env("GIT_BRANCH"), "main"),
			Timeout:       timeout,
			PushByDefault: repoURL != "" && boolFromEnv(env, "GIT_PUSH_BY_DEFAULT", true),
		},
		OpenAI: OpenAISettings{
			APIKey: env("OPENAI_API_KEY"),
			Model:  firstNonEmpty(env("OPENAI_MODEL"), "gpt-4o-mini"),
		},
		Artifact: loadArtifactSettings(env),
	}, nil
}

func loadArtifactSettings(env func(string) string) ArtifactSettings {
	endpoint := env("ARTIFACT_S3_ENDPOINT")
	return ArtifactSettings{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(env("ARTIFACT_S3_REGION"), "us-east-1"),
		AccessKey: firstNonEmpty(env("ARTIFACT_S3_ACCESS_KEY"), env("MINIO_ROOT_USER")),
		SecretKey: firstNonEmpty(env("ARTIFACT_S3_SECRET_KEY"), env("MINIO_ROOT_PASSWORD")),
		Bucket:    firstNonEmpty(env("ARTIFACT_S3_BUCKET"), "app-starter-artifacts"),
		UseSSL:    boolFromEnv(env, "ARTIFACT_S3_USE_SSL", true),
	}
}

func intFromEnv(env func(string) string, key string, def int) (int, error) {
	raw := env(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

func boolFromEnv(env func(string) string, key string, def bool) bool {
	raw := env(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
