// Package wire builds the services shared by the HTTP server and the CLI.
package wire

import (
	"fmt"
	"log"

	"appstarter/internal/config"
	configapp "appstarter/internal/features/config/application"
	"appstarter/internal/features/generation/application"
	"appstarter/internal/features/generation/infrastructure"
)

// App bundles the constructed services.
type App struct {
	Settings   *config.Settings
	Config     configapp.ConfigService
	Generation application.GenerationService

	closers []func() error
}

// Close releases resources opened by Build.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Build constructs every service from settings. Optional collaborators
// (history, archive, AI refinement) are skipped with a log line when they
// are not configured or fail to initialise.
func Build(settings *config.Settings) (*App, error) {
	app := &App{Settings: settings}

	app.Config = configapp.NewConfigService(config.NewAppConfigService(settings.RulesPath))
	rules, err := app.Config.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	synth, err := application.NewSynthesizer(application.SynthesizerOptions{
		BackendPort:  settings.BackendPort,
		FrontendPort: settings.FrontendPort,
	})
	if err != nil {
		return nil, err
	}

	deps := application.Dependencies{
		Rules:       rules,
		Synthesizer: synth,
		Workspace:   infrastructure.NewWorkspace(settings.WorkspaceDir),
		Git: infrastructure.NewGitSink(infrastructure.NewExecRunner(), infrastructure.GitConfig{
			RepoURL: settings.Git.RepoURL,
			Branch:  settings.Git.Branch,
			Timeout: settings.Git.Timeout,
		}),
	}

	if settings.HistoryDBPath != "" {
		history, err := infrastructure.OpenHistoryStore(settings.HistoryDBPath)
		if err != nil {
			log.Printf("[ERROR] History disabled: %v", err)
		} else {
			deps.History = history
			app.closers = append(app.closers, history.Close)
		}
	}

	if settings.Artifact.Enabled {
		archive, err := infrastructure.NewS3Archive(infrastructure.S3Config{
			Endpoint:  settings.Artifact.Endpoint,
			Region:    settings.Artifact.Region,
			AccessKey: settings.Artifact.AccessKey,
			SecretKey: settings.Artifact.SecretKey,
			Bucket:    settings.Artifact.Bucket,
			UseSSL:    settings.Artifact.UseSSL,
		})
		if err != nil {
			log.Printf("[ERROR] Archive disabled: %v", err)
		} else {
			deps.Archive = archive
		}
	}

	if settings.OpenAI.APIKey != "" {
		refiner, err := infrastructure.NewOpenAIClient(infrastructure.AIConfig{
			APIKey: settings.OpenAI.APIKey,
			Model:  settings.OpenAI.Model,
		})
		if err != nil {
			log.Printf("[ERROR] Idea refinement disabled: %v", err)
		} else {
			deps.Refiner = refiner
		}
	}

	app.Generation, err = application.NewGenerationService(application.ServiceConfig{
		MinIdeaLength: settings.MinIdeaLength,
		MaxIdeaLength: settings.MaxIdeaLength,
		PushByDefault: settings.Git.PushByDefault,
	}, deps)
	if err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}
