package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	DefaultMinIdeaLength = 5
	DefaultMaxIdeaLength = 1000

	commitMessagePrefix = "Generated app starter: "
	commitIdeaLimit     = 50
)

// ValidateIdea trims the idea and checks it against the configured bounds.
// A non-positive max disables the upper bound.
func ValidateIdea(idea string, minLen, maxLen int) (string, error) {
	trimmed := strings.TrimSpace(idea)
	if trimmed == "" {
		return "", fmt.Errorf("%w: app idea cannot be empty", ErrInvalidIdea)
	}
	n := utf8.RuneCountInString(trimmed)
	if n < minLen {
		return "", fmt.Errorf("%w: app idea must be at least %d characters", ErrInvalidIdea, minLen)
	}
	if maxLen > 0 && n > maxLen {
		return "", fmt.Errorf("%w: app idea must be at most %d characters", ErrInvalidIdea, maxLen)
	}
	return trimmed, nil
}

// Complexity is the optional hint a caller may send with an idea.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// ParseComplexity accepts an empty string as simple.
func ParseComplexity(raw string) (Complexity, error) {
	switch c := Complexity(strings.ToLower(strings.TrimSpace(raw))); c {
	case "":
		return ComplexitySimple, nil
	case ComplexitySimple, ComplexityMedium, ComplexityComplex:
		return c, nil
	default:
		return "", fmt.Errorf("%w: complexity must be one of simple, medium, complex (got %q)", ErrInvalidIdea, raw)
	}
}

// ApplyComplexity returns meta with the frontend style forced to interactive
// for complex requests.
func ApplyComplexity(meta AppMetadata, c Complexity) AppMetadata {
	if c == ComplexityComplex {
		meta.FrontendStyle = StyleInteractive
	}
	return meta
}

// CommitMessage builds the commit message used when pushing generated files.
func CommitMessage(idea string) string {
	runes := []rune(idea)
	if len(runes) <= commitIdeaLimit {
		return commitMessagePrefix + idea
	}
	return commitMessagePrefix + string(runes[:commitIdeaLimit]) + "..."
}
