package application

import (
	"fmt"
	"strings"
	"unicode"

	"appstarter/internal/features/generation/domain"
)

// Route kinds understood by the backend template.
const (
	routeCollection = "collection"
	routeItem       = "item"
	routeSearch     = "search"
	routeAuth       = "auth"
	routeAction     = "action"
)

// actionPaths are routes that compute a result instead of storing records.
var actionPaths = map[string]bool{"/calculate": true}

type routeSpec struct {
	Path  string
	Kind  string
	Table string
	Param string
	Func  string
}

type templateData struct {
	Idea             string
	AppName          string
	Title            string
	Category         string
	ComponentName    string
	FrontendStyle    string
	Features         []string
	NeedsPersistence bool
	Routes           []routeSpec
	Resources        []string
	PrimaryPath      string
	ActionPath       string
	HasAction        bool
	BackendPort      int
	FrontendPort     int
	APIBase          string

	features map[string]bool
}

// Has reports whether the named feature was selected.
func (d templateData) Has(feature string) bool {
	return d.features[feature]
}

func (s *Synthesizer) buildTemplateData(meta domain.AppMetadata, idea string) templateData {
	appName := meta.AppName
	if appName == "" {
		appName = fallbackAppName
	}
	category := meta.AppCategory
	if category == "" {
		category = domain.CategoryGeneric
	}

	d := templateData{
		Idea:             idea,
		AppName:          appName,
		Title:            humanize(appName),
		Category:         string(category),
		ComponentName:    componentName(category),
		FrontendStyle:    string(meta.FrontendStyle),
		NeedsPersistence: meta.NeedsPersistence,
		BackendPort:      s.opts.BackendPort,
		FrontendPort:     s.opts.FrontendPort,
		APIBase:          fmt.Sprintf("http://localhost:%d", s.opts.BackendPort),
		features:         make(map[string]bool, len(meta.Features)),
	}
	for _, f := range meta.Features {
		d.Features = append(d.Features, string(f))
		d.features[string(f)] = true
	}

	routes := meta.APIRoutes
	if len(routes) == 0 {
		routes = fallbackRoutes
	}
	seenTable := make(map[string]bool)
	for _, path := range routes {
		r := classifyRoute(path)
		d.Routes = append(d.Routes, r)
		if r.Table != "" && !seenTable[r.Table] {
			seenTable[r.Table] = true
			d.Resources = append(d.Resources, r.Table)
		}
		if r.Kind == routeCollection && d.PrimaryPath == "" {
			d.PrimaryPath = r.Path
		}
		if r.Kind == routeAction && d.ActionPath == "" {
			d.ActionPath = r.Path
			d.HasAction = true
		}
	}
	return d
}

func classifyRoute(path string) routeSpec {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	r := routeSpec{Path: path, Func: routeFunc(segments)}
	switch {
	case len(segments) > 0 && segments[0] == "auth":
		r.Kind = routeAuth
	case path == "/search":
		r.Kind = routeSearch
	case actionPaths[path]:
		r.Kind = routeAction
	case strings.Contains(path, "{"):
		r.Kind = routeItem
		r.Table = identifier(segments[0])
		for _, seg := range segments {
			if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
				r.Param = identifier(strings.Trim(seg, "{}"))
			}
		}
	default:
		r.Kind = routeCollection
		r.Table = identifier(strings.Join(segments, "_"))
	}
	if r.Table == "" && (r.Kind == routeItem || r.Kind == routeCollection) {
		r.Table = "items"
	}
	if r.Kind == routeItem && r.Param == "" {
		r.Param = "id"
	}
	return r
}

// routeFunc turns /tasks/{id} into tasks_by_id.
func routeFunc(segments []string) string {
	parts := make([]string, 0, len(segments)+1)
	for _, seg := range segments {
		if strings.HasPrefix(seg, "{") {
			parts = append(parts, "by", identifier(strings.Trim(seg, "{}")))
			continue
		}
		parts = append(parts, identifier(seg))
	}
	if len(parts) == 0 {
		return "root"
	}
	return strings.Join(parts, "_")
}

// identifier keeps lowercase letters, digits and underscores.
func identifier(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == '-':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// humanize turns todo_app into "Todo App".
func humanize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func componentName(category domain.Category) string {
	return humanize(string(category)) + "View"
}
