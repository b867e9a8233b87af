package domain

// AppConfig holds the rule tables the idea analyzer runs on.
// Order matters in every slice: categories are matched first-wins and
// feature routes are appended in the listed order.
type AppConfig struct {
	Categories            []CategoryRule      `json:"categories"`
	Features              []FeatureRule       `json:"features"`
	ComplexityKeywords    []string            `json:"complexity_keywords"`
	InteractiveCategories []string            `json:"interactive_categories"`
	PersistenceKeywords   []string            `json:"persistence_keywords"`
	PersistentCategories  []string            `json:"persistent_categories"`
	CategoryFeatures      map[string][]string `json:"category_features"`
	CategoryRoutes        map[string][]string `json:"category_routes"`
	DefaultRoutes         []string            `json:"default_routes"`
	FeatureRoutes         []FeatureRoute      `json:"feature_routes"`
	FallbackAppName       string              `json:"fallback_app_name"`
}

// CategoryRule maps a category to the keywords that select it.
type CategoryRule struct {
	Category string   `json:"category"`
	Keywords []string `json:"keywords"`
}

// FeatureRule maps a feature tag to the keywords that enable it.
type FeatureRule struct {
	Feature  string   `json:"feature"`
	Keywords []string `json:"keywords"`
}

// FeatureRoute lists the routes added when a feature is selected.
type FeatureRoute struct {
	Feature string   `json:"feature"`
	Routes  []string `json:"routes"`
}
