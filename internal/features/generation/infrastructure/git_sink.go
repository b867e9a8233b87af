package infrastructure

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"appstarter/internal/features/generation/domain"
)

// GitConfig configures the version-control sink.
type GitConfig struct {
	RepoURL string
	Branch  string
	Timeout time.Duration
}

// GitOutcome is the result of one commit-and-push attempt.
type GitOutcome struct {
	Steps      []domain.StepResult
	CommitHash string
	// Pushed is true when every required step succeeded.
	Pushed bool
	// FailedStep names the first required step that failed.
	FailedStep string
}

type gitStep struct {
	name     string
	args     []string
	optional bool
	// fallback runs when the step exits non-zero; its result replaces the original.
	fallback []string
	// accept lets a non-zero exit count as success.
	accept func(CmdResult) bool
}

// GitSink stages, commits and pushes the workspace to a configured remote.
type GitSink struct {
	runner CommandRunner
	cfg    GitConfig
}

// NewGitSink creates a GitSink. Branch defaults to main.
func NewGitSink(runner CommandRunner, cfg GitConfig) *GitSink {
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Minute
	}
	return &GitSink{runner: runner, cfg: cfg}
}

// Configured reports whether a remote has been set.
func (g *GitSink) Configured() bool {
	return g != nil && strings.TrimSpace(g.cfg.RepoURL) != ""
}

func (g *GitSink) steps(message string) []gitStep {
	return []gitStep{
		{name: "init", args: []string{"init"}, optional: true},
		{name: "branch", args: []string{"branch", "-M", g.cfg.Branch}, optional: true},
		{
			name:     "remote",
			args:     []string{"remote", "add", "origin", g.cfg.RepoURL},
			fallback: []string{"remote", "set-url", "origin", g.cfg.RepoURL},
		},
		{name: "add", args: []string{"add", "."}},
		{
			name: "commit",
			args: []string{"commit", "-m", message},
			accept: func(res CmdResult) bool {
				return strings.Contains(res.Stdout+res.Stderr, "nothing to commit")
			},
		},
		{name: "rev_parse", args: []string{"rev-parse", "--short", "HEAD"}, optional: true},
		{name: "push", args: []string{"push", "-u", "origin", g.cfg.Branch, "--force"}},
	}
}

// CommitAndPush runs the git steps in dir in order. Optional steps may fail
// without stopping the pipeline; the first failing required step stops it.
func (g *GitSink) CommitAndPush(ctx context.Context, dir, message string) GitOutcome {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.Timeout)
	defer cancel()

	var out GitOutcome
	for _, step := range g.steps(message) {
		res := g.runStep(ctx, dir, step.name, step.args)
		if !res.Success && step.fallback != nil && res.Error == "" {
			res = g.runStep(ctx, dir, step.name, step.fallback)
		}
		if !res.Success && step.accept != nil && res.Error == "" {
			res.Success = step.accept(CmdResult{Stdout: res.Stdout, Stderr: res.Stderr, ExitCode: res.ExitCode})
		}
		out.Steps = append(out.Steps, res)

		if step.name == "rev_parse" && res.Success {
			out.CommitHash = strings.TrimSpace(res.Stdout)
		}
		if !res.Success && !step.optional {
			out.FailedStep = step.name
			log.Printf("[ERROR] git %s failed in %s: %s%s", step.name, dir, res.Stderr, res.Error)
			return out
		}
	}
	out.Pushed = true
	log.Printf("[INFO] Changes committed (%s) and pushed to %s", out.CommitHash, g.cfg.RepoURL)
	return out
}

func (g *GitSink) runStep(ctx context.Context, dir, name string, args []string) domain.StepResult {
	res := domain.StepResult{
		Name:    name,
		Command: "git " + strings.Join(args, " "),
	}
	cmd, err := g.runner.Run(ctx, dir, "git", args...)
	res.Stdout = strings.TrimSpace(cmd.Stdout)
	res.Stderr = strings.TrimSpace(cmd.Stderr)
	res.ExitCode = cmd.ExitCode
	if err != nil {
		res.Error = fmt.Sprintf("failed to run git %s: %v", name, err)
		res.ExitCode = -1
		return res
	}
	res.Success = cmd.ExitCode == 0
	return res
}
