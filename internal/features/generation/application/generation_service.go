package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	configdomain "appstarter/internal/features/config/domain"
	"appstarter/internal/features/generation/domain"
	"appstarter/internal/features/generation/infrastructure"
)

// ErrHistoryDisabled is returned by history lookups when no store is configured.
var ErrHistoryDisabled = errors.New("generation history is disabled")

// GenerationService defines the interface for the generation application service.
type GenerationService interface {
	Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerationResult, error)
	Analyze(idea string) (domain.AppMetadata, error)
	SetRules(rules *configdomain.AppConfig)
	GetGeneration(ctx context.Context, id string) (*domain.GenerationRecord, error)
	ListGenerations(ctx context.Context, limit int) ([]domain.GenerationRecord, error)
}

// FileWriter persists generated files.
type FileWriter interface {
	WriteFiles(files []domain.GeneratedFile) ([]string, error)
	Root() string
}

// VersionControl commits and pushes a directory.
type VersionControl interface {
	Configured() bool
	CommitAndPush(ctx context.Context, dir, message string) infrastructure.GitOutcome
}

// Archiver mirrors generated files somewhere durable.
type Archiver interface {
	Archive(ctx context.Context, id string, files []domain.GeneratedFile) error
}

// HistoryRepository stores one record per generation.
type HistoryRepository interface {
	Record(ctx context.Context, rec domain.GenerationRecord) error
	Get(ctx context.Context, id string) (*domain.GenerationRecord, error)
	List(ctx context.Context, limit int) ([]domain.GenerationRecord, error)
}

// ServiceConfig holds request validation and push defaults.
type ServiceConfig struct {
	MinIdeaLength int
	MaxIdeaLength int
	PushByDefault bool
}

// Dependencies are the collaborators of the generation service. Only
// Synthesizer and Workspace are required.
type Dependencies struct {
	Rules       *configdomain.AppConfig
	Synthesizer *Synthesizer
	Workspace   FileWriter
	Git         VersionControl
	Archive     Archiver
	History     HistoryRepository
	Refiner     infrastructure.IdeaRefiner
	Now         func() time.Time
	NewID       func() string
}

// generationService is the implementation of GenerationService.
type generationService struct {
	cfg      ServiceConfig
	analyzer atomic.Pointer[Analyzer]
	synth    *Synthesizer
	ws       FileWriter
	git      VersionControl
	archive  Archiver
	history  HistoryRepository
	refiner  infrastructure.IdeaRefiner
	now      func() time.Time
	newID    func() string

	// writeMu serialises workspace writes and git runs; every request shares
	// one working tree and one remote branch.
	writeMu sync.Mutex
}

// NewGenerationService creates a new instance of generationService.
func NewGenerationService(cfg ServiceConfig, deps Dependencies) (GenerationService, error) {
	if deps.Synthesizer == nil {
		return nil, fmt.Errorf("synthesizer is required")
	}
	if deps.Workspace == nil {
		return nil, fmt.Errorf("workspace is required")
	}
	if cfg.MinIdeaLength <= 0 {
		cfg.MinIdeaLength = domain.DefaultMinIdeaLength
	}
	s := &generationService{
		cfg:     cfg,
		synth:   deps.Synthesizer,
		ws:      deps.Workspace,
		git:     deps.Git,
		archive: deps.Archive,
		history: deps.History,
		refiner: deps.Refiner,
		now:     deps.Now,
		newID:   deps.NewID,
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	s.SetRules(deps.Rules)
	return s, nil
}

// SetRules swaps in a new analyzer; requests already running keep the old one.
func (s *generationService) SetRules(rules *configdomain.AppConfig) {
	s.analyzer.Store(NewAnalyzer(rules))
}

// Analyze validates idea and returns its metadata without side effects.
func (s *generationService) Analyze(idea string) (domain.AppMetadata, error) {
	trimmed, err := domain.ValidateIdea(idea, s.cfg.MinIdeaLength, s.cfg.MaxIdeaLength)
	if err != nil {
		return domain.AppMetadata{}, err
	}
	return s.analyzer.Load().Analyze(trimmed), nil
}

// Generate runs the whole pipeline. Invalid input is returned as an error
// wrapping domain.ErrInvalidIdea. Sink failures never discard the generated
// files; they are reported through the result's Status and Diagnostics.
func (s *generationService) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.GenerationResult, error) {
	complexity, err := domain.ParseComplexity(req.Complexity)
	if err != nil {
		return nil, err
	}
	idea, err := domain.ValidateIdea(req.Idea, s.cfg.MinIdeaLength, s.cfg.MaxIdeaLength)
	if err != nil {
		return nil, err
	}
	push := s.cfg.PushByDefault
	if req.Push != nil {
		push = *req.Push
	}

	result := &domain.GenerationResult{ID: s.newID(), Idea: idea}
	log.Printf("[INFO] Generation %s: received idea %q", result.ID, idea)

	analysisIdea := idea
	if req.Refine {
		analysisIdea = s.refine(ctx, result, idea)
	}

	meta := domain.ApplyComplexity(s.analyzer.Load().Analyze(analysisIdea), complexity)
	files, err := s.synth.Synthesize(meta, idea)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize files: %w", err)
	}
	result.Metadata = meta
	result.Files = files
	result.Structure = domain.BuildStructure(files)

	s.persist(ctx, result, push)

	if s.archive != nil && result.Status != domain.StatusFailed {
		if err := s.archive.Archive(ctx, result.ID, files); err != nil {
			log.Printf("[ERROR] Generation %s: archive failed: %v", result.ID, err)
			result.Diagnostics = append(result.Diagnostics, "archive failed: "+err.Error())
		}
	}

	result.Summary = summarize(result)
	s.record(ctx, result)
	log.Printf("[INFO] Generation %s: %s", result.ID, result.Status)
	return result, nil
}

// refine returns the refined idea, or idea itself when refinement is not
// possible.
func (s *generationService) refine(ctx context.Context, result *domain.GenerationResult, idea string) string {
	if s.refiner == nil {
		result.Diagnostics = append(result.Diagnostics, "refinement requested but no AI client is configured")
		return idea
	}
	refined, err := s.refiner.Refine(ctx, idea)
	if err != nil {
		result.Diagnostics = append(result.Diagnostics, "refinement failed, using original idea: "+err.Error())
		return idea
	}
	result.RefinedIdea = refined
	return refined
}

// persist writes the files and, when push is set, commits and pushes them.
func (s *generationService) persist(ctx context.Context, result *domain.GenerationResult, push bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	written, err := s.ws.WriteFiles(result.Files)
	result.WrittenFiles = written
	if err != nil {
		log.Printf("[ERROR] Generation %s: failed to write files: %v", result.ID, err)
		result.Status = domain.StatusFailed
		result.Diagnostics = append(result.Diagnostics, "failed to write files: "+err.Error())
		return
	}

	if !push {
		result.Status = domain.StatusFilesWritten
		return
	}
	if s.git == nil || !s.git.Configured() {
		result.Status = domain.StatusPushFailed
		result.Diagnostics = append(result.Diagnostics, "push requested but no git remote is configured")
		return
	}

	result.CommitMessage = domain.CommitMessage(result.Idea)
	outcome := s.git.CommitAndPush(ctx, s.ws.Root(), result.CommitMessage)
	result.Steps = outcome.Steps
	result.CommitHash = outcome.CommitHash
	if !outcome.Pushed {
		result.Status = domain.StatusPushFailed
		result.Diagnostics = append(result.Diagnostics, stepDiagnostic(outcome))
		return
	}
	result.Status = domain.StatusSuccess
}

func (s *generationService) record(ctx context.Context, result *domain.GenerationResult) {
	if s.history == nil {
		return
	}
	rec := domain.GenerationRecord{
		ID:         result.ID,
		Idea:       result.Idea,
		AppName:    result.Metadata.AppName,
		Category:   result.Metadata.AppCategory,
		Status:     result.Status,
		CommitHash: result.CommitHash,
		FileCount:  len(result.Files),
		CreatedAt:  s.now(),
	}
	if err := s.history.Record(ctx, rec); err != nil {
		log.Printf("[ERROR] Generation %s: %v", result.ID, err)
		result.Diagnostics = append(result.Diagnostics, "history not recorded: "+err.Error())
	}
}

// GetGeneration returns a history record by id.
func (s *generationService) GetGeneration(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.Get(ctx, id)
}

// ListGenerations returns the most recent history records.
func (s *generationService) ListGenerations(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, limit)
}

func stepDiagnostic(outcome infrastructure.GitOutcome) string {
	for _, step := range outcome.Steps {
		if step.Name != outcome.FailedStep {
			continue
		}
		detail := step.Error
		if detail == "" {
			detail = step.Stderr
		}
		if detail == "" {
			detail = fmt.Sprintf("exit code %d", step.ExitCode)
		}
		return fmt.Sprintf("git %s failed: %s", step.Name, detail)
	}
	return "git push failed"
}

func summarize(result *domain.GenerationResult) string {
	n := len(result.Files)
	switch result.Status {
	case domain.StatusSuccess:
		return fmt.Sprintf("Generated %d files and pushed them to the remote repository", n)
	case domain.StatusPushFailed:
		return fmt.Sprintf("Generated and wrote %d files, but pushing them failed", n)
	case domain.StatusFilesWritten:
		return fmt.Sprintf("Generated and wrote %d files", n)
	default:
		return fmt.Sprintf("Generated %d files, but writing them failed", n)
	}
}
