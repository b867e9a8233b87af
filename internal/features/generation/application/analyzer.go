package application

import (
	"strings"
	"unicode"

	configdomain "appstarter/internal/features/config/domain"
	"appstarter/internal/features/generation/domain"
)

const fallbackAppName = "my_app"

var fallbackRoutes = []string{"/items", "/items/{id}"}

// phrase is a keyword split into tokens; multi-word keywords match as a
// contiguous token run.
type phrase []string

type keywordSet []phrase

func compileKeywords(keywords []string) keywordSet {
	set := make(keywordSet, 0, len(keywords))
	for _, kw := range keywords {
		if toks := tokenize(kw); len(toks) > 0 {
			set = append(set, toks)
		}
	}
	return set
}

// firstMatch returns the first keyword, in table order, present in tokens.
func (k keywordSet) firstMatch(tokens []string) (phrase, bool) {
	for _, p := range k {
		if containsPhrase(tokens, p) {
			return p, true
		}
	}
	return nil, false
}

func (k keywordSet) matches(tokens []string) bool {
	_, ok := k.firstMatch(tokens)
	return ok
}

type categoryRule struct {
	category domain.Category
	keywords keywordSet
}

type featureRule struct {
	feature  domain.Feature
	keywords keywordSet
}

type featureRoutes struct {
	feature domain.Feature
	routes  []string
}

// Analyzer maps idea text to AppMetadata using a fixed rule set.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	categories       []categoryRule
	features         []featureRule
	complexity       keywordSet
	persistence      keywordSet
	interactive      map[domain.Category]bool
	persistent       map[domain.Category]bool
	categoryFeatures map[domain.Category][]domain.Feature
	categoryRoutes   map[domain.Category][]string
	defaultRoutes    []string
	featureRoutes    []featureRoutes
	fallbackName     string
}

// NewAnalyzer compiles rules into an Analyzer. The rules are copied, so later
// changes to cfg do not affect the returned value.
func NewAnalyzer(cfg *configdomain.AppConfig) *Analyzer {
	if cfg == nil {
		cfg = configdomain.DefaultAppConfig()
	}
	a := &Analyzer{
		complexity:       compileKeywords(cfg.ComplexityKeywords),
		persistence:      compileKeywords(cfg.PersistenceKeywords),
		interactive:      categorySet(cfg.InteractiveCategories),
		persistent:       categorySet(cfg.PersistentCategories),
		categoryFeatures: make(map[domain.Category][]domain.Feature, len(cfg.CategoryFeatures)),
		categoryRoutes:   make(map[domain.Category][]string, len(cfg.CategoryRoutes)),
		defaultRoutes:    append([]string(nil), cfg.DefaultRoutes...),
		fallbackName:     cfg.FallbackAppName,
	}
	if len(a.defaultRoutes) == 0 {
		a.defaultRoutes = append([]string(nil), fallbackRoutes...)
	}
	if a.fallbackName == "" {
		a.fallbackName = fallbackAppName
	}
	for _, rule := range cfg.Categories {
		a.categories = append(a.categories, categoryRule{
			category: domain.Category(rule.Category),
			keywords: compileKeywords(rule.Keywords),
		})
	}
	for _, rule := range cfg.Features {
		a.features = append(a.features, featureRule{
			feature:  domain.Feature(rule.Feature),
			keywords: compileKeywords(rule.Keywords),
		})
	}
	for category, features := range cfg.CategoryFeatures {
		for _, f := range features {
			a.categoryFeatures[domain.Category(category)] = append(a.categoryFeatures[domain.Category(category)], domain.Feature(f))
		}
	}
	for category, routes := range cfg.CategoryRoutes {
		a.categoryRoutes[domain.Category(category)] = append([]string(nil), routes...)
	}
	for _, fr := range cfg.FeatureRoutes {
		a.featureRoutes = append(a.featureRoutes, featureRoutes{
			feature: domain.Feature(fr.Feature),
			routes:  append([]string(nil), fr.Routes...),
		})
	}
	return a
}

// Analyze derives metadata from idea. Ideas without any keyword match fall
// back to the generic category and default values.
func (a *Analyzer) Analyze(idea string) domain.AppMetadata {
	tokens := tokenize(idea)

	category, keyword := a.detectCategory(tokens)
	features := a.extractFeatures(tokens, category)

	meta := domain.AppMetadata{
		AppName:          a.deriveName(tokens, keyword),
		AppCategory:      category,
		FrontendStyle:    domain.StyleSimpleHTML,
		Features:         features,
		NeedsPersistence: a.persistence.matches(tokens) || a.persistent[category],
	}
	if a.complexity.matches(tokens) || a.interactive[category] {
		meta.FrontendStyle = domain.StyleInteractive
	}
	meta.APIRoutes = a.buildRoutes(category, features)
	return meta
}

// detectCategory returns the first category in table order whose keywords
// match, together with the keyword that matched.
func (a *Analyzer) detectCategory(tokens []string) (domain.Category, phrase) {
	for _, rule := range a.categories {
		if kw, ok := rule.keywords.firstMatch(tokens); ok {
			return rule.category, kw
		}
	}
	return domain.CategoryGeneric, nil
}

func (a *Analyzer) deriveName(tokens []string, keyword phrase) string {
	switch {
	case len(keyword) > 0:
		return strings.Join(keyword, "_") + "_app"
	case len(tokens) >= 2:
		return tokens[0] + "_" + tokens[1] + "_app"
	default:
		return a.fallbackName
	}
}

func (a *Analyzer) extractFeatures(tokens []string, category domain.Category) []domain.Feature {
	selected := make(map[domain.Feature]bool)
	for _, rule := range a.features {
		if rule.keywords.matches(tokens) {
			selected[rule.feature] = true
		}
	}
	for _, f := range a.categoryFeatures[category] {
		selected[f] = true
	}

	features := make([]domain.Feature, 0, len(selected))
	for _, f := range domain.AllFeatures {
		if selected[f] {
			features = append(features, f)
		}
	}
	return features
}

func (a *Analyzer) buildRoutes(category domain.Category, features []domain.Feature) []string {
	base, ok := a.categoryRoutes[category]
	if !ok || len(base) == 0 {
		base = a.defaultRoutes
	}

	routes := make([]string, 0, len(base)+4)
	seen := make(map[string]bool)
	add := func(r string) {
		if !seen[r] {
			seen[r] = true
			routes = append(routes, r)
		}
	}
	for _, r := range base {
		add(r)
	}

	has := make(map[domain.Feature]bool, len(features))
	for _, f := range features {
		has[f] = true
	}
	for _, fr := range a.featureRoutes {
		if !has[fr.feature] {
			continue
		}
		for _, r := range fr.routes {
			add(r)
		}
	}
	return routes
}

// tokenize lowercases s and splits it on every rune that is not a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsPhrase(tokens []string, p phrase) bool {
	if len(p) == 0 || len(p) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(p) <= len(tokens); i++ {
		for j := range p {
			if tokens[i+j] != p[j] {
				continue outer
			}
		}
		return true
	}
	return false
}

func categorySet(names []string) map[domain.Category]bool {
	set := make(map[domain.Category]bool, len(names))
	for _, n := range names {
		set[domain.Category(n)] = true
	}
	return set
}
