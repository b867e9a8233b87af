package application

import (
	"bytes"
	"fmt"
	"text/template"

	"appstarter/internal/features/generation/domain"
	gentmpl "appstarter/internal/templates/generation"
)

// SynthesizerOptions holds the values baked into every generated project.
type SynthesizerOptions struct {
	BackendPort  int
	FrontendPort int
}

// DefaultSynthesizerOptions returns the ports the generated README documents.
func DefaultSynthesizerOptions() SynthesizerOptions {
	return SynthesizerOptions{BackendPort: 8000, FrontendPort: 3000}
}

// fileSpec describes one templated output file.
type fileSpec struct {
	template string
	path     func(d templateData) string
	fileType domain.FileType
}

func fixedPath(p string) func(templateData) string {
	return func(templateData) string { return p }
}

var backendSpec = fileSpec{
	template: "backend_main.py",
	path:     fixedPath("backend/main.py"),
	fileType: domain.FileTypeBackend,
}

// frontendLayouts selects the frontend files for each style, in output order.
var frontendLayouts = map[domain.FrontendStyle][]fileSpec{
	domain.StyleSimpleHTML: {
		{template: "index.html", path: fixedPath("frontend/index.html"), fileType: domain.FileTypeMarkup},
	},
	domain.StyleInteractive: {
		{template: "App.js", path: fixedPath("frontend/src/App.js"), fileType: domain.FileTypeFrontend},
		{
			template: "component.js",
			path: func(d templateData) string {
				return "frontend/src/components/" + d.ComponentName + ".js"
			},
			fileType: domain.FileTypeFrontend,
		},
		{template: "public_index.html", path: fixedPath("frontend/public/index.html"), fileType: domain.FileTypeMarkup},
	},
}

// Synthesizer renders the fixed file skeleton for an AppMetadata.
// Templates are parsed once; rendering is safe for concurrent use.
type Synthesizer struct {
	opts      SynthesizerOptions
	templates map[string]*template.Template
}

// NewSynthesizer parses every template referenced by the layouts.
func NewSynthesizer(opts SynthesizerOptions) (*Synthesizer, error) {
	defaults := DefaultSynthesizerOptions()
	if opts.BackendPort <= 0 {
		opts.BackendPort = defaults.BackendPort
	}
	if opts.FrontendPort <= 0 {
		opts.FrontendPort = defaults.FrontendPort
	}

	s := &Synthesizer{opts: opts, templates: make(map[string]*template.Template)}
	specs := []fileSpec{backendSpec}
	for _, layout := range frontendLayouts {
		specs = append(specs, layout...)
	}
	for _, spec := range specs {
		if _, ok := s.templates[spec.template]; ok {
			continue
		}
		content, err := gentmpl.GetTemplate(spec.template)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", spec.template, err)
		}
		tmpl, err := template.New(spec.template).Funcs(gentmpl.TemplateFuncs()).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", spec.template, err)
		}
		s.templates[spec.template] = tmpl
	}
	return s, nil
}

// Synthesize renders the backend entry point, the frontend files for the
// metadata's style and a README, in that order. The same inputs always
// produce byte-identical output.
func (s *Synthesizer) Synthesize(meta domain.AppMetadata, idea string) ([]domain.GeneratedFile, error) {
	data := s.buildTemplateData(meta, idea)

	layout, ok := frontendLayouts[meta.FrontendStyle]
	if !ok {
		layout = frontendLayouts[domain.StyleSimpleHTML]
	}
	specs := append([]fileSpec{backendSpec}, layout...)

	files := make([]domain.GeneratedFile, 0, len(specs)+1)
	for _, spec := range specs {
		content, err := s.render(spec.template, data)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", spec.template, err)
		}
		files = append(files, domain.GeneratedFile{
			Path:     spec.path(data),
			Content:  content,
			FileType: spec.fileType,
		})
	}

	files = append(files, domain.GeneratedFile{
		Path:     "README.md",
		Content:  renderReadme(data, files),
		FileType: domain.FileTypeDocumentation,
	})
	return files, nil
}

func (s *Synthesizer) render(name string, data templateData) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("template %s not loaded", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
