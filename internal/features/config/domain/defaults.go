package domain

// DefaultAppConfig returns a fresh copy of the built-in rule tables.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Categories: []CategoryRule{
			{Category: "todo", Keywords: []string{"todo", "to-do", "task", "tasks", "checklist"}},
			{Category: "blog", Keywords: []string{"blog", "post", "posts", "article", "articles"}},
			{Category: "ecommerce", Keywords: []string{"ecommerce", "e-commerce", "shop", "store", "cart", "product", "products"}},
			{Category: "social", Keywords: []string{"social", "friends", "follow", "followers", "feed"}},
			{Category: "dashboard", Keywords: []string{"dashboard", "analytics", "metrics", "chart", "charts"}},
			{Category: "portfolio", Keywords: []string{"portfolio", "resume", "showcase"}},
			{Category: "calculator", Keywords: []string{"calculator", "calculate", "math"}},
			{Category: "weather", Keywords: []string{"weather", "forecast", "temperature"}},
			{Category: "note", Keywords: []string{"note", "notes", "notebook", "journal", "memo"}},
		},
		Features: []FeatureRule{
			{Feature: "authentication", Keywords: []string{"login", "log in", "signup", "sign up", "register", "auth", "authentication", "account", "accounts", "password"}},
			{Feature: "crud", Keywords: []string{"create", "edit", "update", "delete", "manage", "crud"}},
			{Feature: "search", Keywords: []string{"search", "find", "filter", "lookup"}},
			{Feature: "notifications", Keywords: []string{"notify", "notification", "notifications", "alert", "alerts", "reminder", "reminders"}},
			{Feature: "file_upload", Keywords: []string{"upload", "uploads", "image", "images", "photo", "photos", "file", "files"}},
			{Feature: "real_time", Keywords: []string{"real-time", "realtime", "live", "chat", "websocket"}},
			{Feature: "comments", Keywords: []string{"comment", "comments", "review", "reviews"}},
			{Feature: "categories", Keywords: []string{"category", "categories", "tag", "tags", "label", "labels"}},
			{Feature: "sharing", Keywords: []string{"share", "sharing", "invite"}},
		},
		ComplexityKeywords:    []string{"complex", "interactive", "dynamic", "real-time", "realtime", "advanced", "live", "react"},
		InteractiveCategories: []string{"ecommerce", "social", "dashboard"},
		PersistenceKeywords:   []string{"save", "store", "persist", "database", "db", "storage", "history", "record", "records"},
		PersistentCategories:  []string{"todo", "blog", "ecommerce", "social", "dashboard", "note"},
		CategoryFeatures: map[string][]string{
			"todo":       {"crud", "categories"},
			"blog":       {"crud", "comments", "categories"},
			"ecommerce":  {"authentication", "crud", "search", "categories"},
			"social":     {"authentication", "real_time", "comments", "sharing"},
			"dashboard":  {"real_time"},
			"weather":    {"search"},
			"note":       {"crud", "search", "categories"},
			"generic":    {"crud"},
			"portfolio":  {},
			"calculator": {},
		},
		CategoryRoutes: map[string][]string{
			"todo":       {"/tasks", "/tasks/{id}"},
			"blog":       {"/posts", "/posts/{id}"},
			"ecommerce":  {"/products", "/products/{id}", "/cart"},
			"social":     {"/posts", "/posts/{id}", "/users/{id}"},
			"dashboard":  {"/metrics", "/metrics/{id}"},
			"portfolio":  {"/projects", "/projects/{id}"},
			"calculator": {"/calculate"},
			"weather":    {"/weather", "/weather/{city}"},
			"note":       {"/notes", "/notes/{id}"},
		},
		DefaultRoutes: []string{"/items", "/items/{id}"},
		FeatureRoutes: []FeatureRoute{
			{Feature: "authentication", Routes: []string{"/auth/login", "/auth/register"}},
			{Feature: "search", Routes: []string{"/search"}},
			{Feature: "categories", Routes: []string{"/categories"}},
		},
		FallbackAppName: "my_app",
	}
}
