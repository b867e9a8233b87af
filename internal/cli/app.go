// Package cli holds the appgen subcommands.
package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"appstarter/internal/config"
	"appstarter/internal/features/generation/domain"
	"appstarter/internal/wire"
)

// loadApp reads settings and applies per-command overrides before building
// the services.
func loadApp(override func(*config.Settings)) (*wire.App, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if override != nil {
		override(settings)
	}
	return wire.Build(settings)
}

func ideaArg(args []string) string {
	return strings.Join(args, " ")
}

func statusColor(status domain.Status) *color.Color {
	switch status {
	case domain.StatusSuccess:
		return color.New(color.FgHiGreen, color.Bold)
	case domain.StatusFilesWritten:
		return color.New(color.FgGreen)
	case domain.StatusPushFailed:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
