package application

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"appstarter/internal/config"
	"appstarter/internal/features/config/domain"
	gendomain "appstarter/internal/features/generation/domain"
)

// ErrInvalidRules is returned when a rule set fails validation.
var ErrInvalidRules = errors.New("invalid rules")

// ConfigService defines the interface for rule management.
type ConfigService interface {
	LoadRules() (*domain.AppConfig, error)
	SaveRules(rules *domain.AppConfig) error
}

// configService validates rule sets before handing them to the file store.
type configService struct {
	store config.AppConfigService
}

// NewConfigService creates a new instance of configService.
func NewConfigService(store config.AppConfigService) ConfigService {
	return &configService{store: store}
}

// LoadRules loads and validates the current rule set.
func (s *configService) LoadRules() (*domain.AppConfig, error) {
	rules, err := s.store.LoadAppConfig()
	if err != nil {
		return nil, err
	}
	if err := Validate(rules); err != nil {
		return nil, err
	}
	return rules, nil
}

// SaveRules validates rules and persists them.
func (s *configService) SaveRules(rules *domain.AppConfig) error {
	if err := Validate(rules); err != nil {
		return err
	}
	return s.store.SaveAppConfig(rules)
}

// Validate checks every category and feature name against the closed
// enumerations and requires at least one keyword per rule.
func Validate(rules *domain.AppConfig) error {
	if rules == nil {
		return fmt.Errorf("%w: rules are empty", ErrInvalidRules)
	}
	var problems []string
	addf := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	seen := make(map[string]bool)
	for i, rule := range rules.Categories {
		switch {
		case !gendomain.Category(rule.Category).IsValid():
			addf("categories[%d]: unknown category %q", i, rule.Category)
		case rule.Category == string(gendomain.CategoryGeneric):
			addf("categories[%d]: generic is the fallback and cannot have keywords", i)
		case seen[rule.Category]:
			addf("categories[%d]: duplicate category %q", i, rule.Category)
		}
		seen[rule.Category] = true
		if len(nonBlank(rule.Keywords)) == 0 {
			addf("categories[%d]: no keywords", i)
		}
	}
	for i, rule := range rules.Features {
		if !gendomain.Feature(rule.Feature).IsValid() {
			addf("features[%d]: unknown feature %q", i, rule.Feature)
		}
		if len(nonBlank(rule.Keywords)) == 0 {
			addf("features[%d]: no keywords", i)
		}
	}
	checkCategories := func(field string, names []string) {
		for _, name := range names {
			if !gendomain.Category(name).IsValid() {
				addf("%s: unknown category %q", field, name)
			}
		}
	}
	checkCategories("interactive_categories", rules.InteractiveCategories)
	checkCategories("persistent_categories", rules.PersistentCategories)

	for category, features := range rules.CategoryFeatures {
		if !gendomain.Category(category).IsValid() {
			addf("category_features: unknown category %q", category)
		}
		for _, f := range features {
			if !gendomain.Feature(f).IsValid() {
				addf("category_features[%s]: unknown feature %q", category, f)
			}
		}
	}
	for category, routes := range rules.CategoryRoutes {
		if !gendomain.Category(category).IsValid() {
			addf("category_routes: unknown category %q", category)
		}
		checkRoutes(addf, "category_routes["+category+"]", routes)
	}
	checkRoutes(addf, "default_routes", rules.DefaultRoutes)
	for i, fr := range rules.FeatureRoutes {
		if !gendomain.Feature(fr.Feature).IsValid() {
			addf("feature_routes[%d]: unknown feature %q", i, fr.Feature)
		}
		checkRoutes(addf, fmt.Sprintf("feature_routes[%d]", i), fr.Routes)
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidRules, strings.Join(problems, "; "))
	}
	return nil
}

// pathParam matches the names the generated backend can bind as handler
// arguments.
var pathParam = regexp.MustCompile(`^\{[a-z_][a-z0-9_]*\}$`)

func checkRoutes(addf func(string, ...any), field string, routes []string) {
	for _, r := range routes {
		if !strings.HasPrefix(r, "/") || strings.Contains(r, "..") {
			addf("%s: route %q must be an absolute path", field, r)
			continue
		}
		if strings.Trim(r, "/") == "" {
			addf("%s: route %q collides with the health check", field, r)
			continue
		}
		for _, seg := range strings.Split(strings.Trim(r, "/"), "/") {
			if strings.ContainsAny(seg, "{}") && !pathParam.MatchString(seg) {
				addf("%s: route %q: parameter %q must be a lowercase identifier", field, r, seg)
			}
		}
	}
}

func nonBlank(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
