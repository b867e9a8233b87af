package domain

import "time"

// Category is the closed classification label assigned to an idea.
type Category string

const (
	CategoryTodo       Category = "todo"
	CategoryBlog       Category = "blog"
	CategoryEcommerce  Category = "ecommerce"
	CategorySocial     Category = "social"
	CategoryDashboard  Category = "dashboard"
	CategoryPortfolio  Category = "portfolio"
	CategoryCalculator Category = "calculator"
	CategoryWeather    Category = "weather"
	CategoryNote       Category = "note"
	CategoryGeneric    Category = "generic"
)

// AllCategories lists every category, generic last.
var AllCategories = []Category{
	CategoryTodo,
	CategoryBlog,
	CategoryEcommerce,
	CategorySocial,
	CategoryDashboard,
	CategoryPortfolio,
	CategoryCalculator,
	CategoryWeather,
	CategoryNote,
	CategoryGeneric,
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// FrontendStyle decides between a static page and a component-based client.
type FrontendStyle string

const (
	StyleSimpleHTML  FrontendStyle = "simple-html"
	StyleInteractive FrontendStyle = "interactive"
)

// Feature is an optional generated capability.
type Feature string

const (
	FeatureAuthentication Feature = "authentication"
	FeatureCRUD           Feature = "crud"
	FeatureSearch         Feature = "search"
	FeatureNotifications  Feature = "notifications"
	FeatureFileUpload     Feature = "file_upload"
	FeatureRealTime       Feature = "real_time"
	FeatureComments       Feature = "comments"
	FeatureCategories     Feature = "categories"
	FeatureSharing        Feature = "sharing"
)

// AllFeatures is the canonical feature order used when emitting metadata.
var AllFeatures = []Feature{
	FeatureAuthentication,
	FeatureCRUD,
	FeatureSearch,
	FeatureNotifications,
	FeatureFileUpload,
	FeatureRealTime,
	FeatureComments,
	FeatureCategories,
	FeatureSharing,
}

// IsValid reports whether f is one of the known features.
func (f Feature) IsValid() bool {
	for _, known := range AllFeatures {
		if f == known {
			return true
		}
	}
	return false
}

// AppMetadata is the structured description derived from an idea.
type AppMetadata struct {
	AppName          string        `json:"app_name"`
	AppCategory      Category      `json:"app_category"`
	FrontendStyle    FrontendStyle `json:"frontend_style"`
	Features         []Feature     `json:"features"`
	NeedsPersistence bool          `json:"needs_persistence"`
	APIRoutes        []string      `json:"api_routes"`
}

// FileType classifies a generated file.
type FileType string

const (
	FileTypeBackend       FileType = "backend-source"
	FileTypeFrontend      FileType = "frontend-source"
	FileTypeMarkup        FileType = "markup"
	FileTypeDocumentation FileType = "documentation"
)

// GeneratedFile is one rendered output file.
type GeneratedFile struct {
	// Path is relative to the project root.
	Path     string   `json:"path"`
	Content  string   `json:"content"`
	FileType FileType `json:"file_type"`
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Idea       string `json:"idea"`
	Complexity string `json:"complexity,omitempty"`
	// Push overrides the server default when set.
	Push   *bool `json:"push,omitempty"`
	Refine bool  `json:"refine,omitempty"`
}

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Idea string `json:"idea"`
}

// Status summarises how far a generation request got.
type Status string

const (
	StatusSuccess      Status = "success"
	StatusFilesWritten Status = "files_written"
	StatusPushFailed   Status = "files_written_push_failed"
	StatusFailed       Status = "failed"
)

// StepResult records one version-control command.
type StepResult struct {
	Name     string `json:"name"`
	Command  string `json:"command"`
	Stdout   string `json:"stdout,omitempty"`
	Stderr   string `json:"stderr,omitempty"`
	ExitCode int    `json:"exit_code"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}

// GenerationResult is returned to callers of the generation service.
type GenerationResult struct {
	ID            string          `json:"id"`
	Idea          string          `json:"idea"`
	RefinedIdea   string          `json:"refined_idea,omitempty"`
	Metadata      AppMetadata     `json:"metadata"`
	Files         []GeneratedFile `json:"files"`
	Structure     map[string]any  `json:"structure"`
	WrittenFiles  []string        `json:"written_files,omitempty"`
	Status        Status          `json:"status"`
	CommitMessage string          `json:"commit_message,omitempty"`
	CommitHash    string          `json:"commit_hash,omitempty"`
	Steps         []StepResult    `json:"git_steps,omitempty"`
	Diagnostics   []string        `json:"diagnostics,omitempty"`
	Summary       string          `json:"summary"`
}

// GenerationRecord is the history row kept for every request.
type GenerationRecord struct {
	ID         string    `json:"id"`
	Idea       string    `json:"idea"`
	AppName    string    `json:"app_name"`
	Category   Category  `json:"app_category"`
	Status     Status    `json:"status"`
	CommitHash string    `json:"commit_hash,omitempty"`
	FileCount  int       `json:"file_count"`
	CreatedAt  time.Time `json:"created_at"`
}
