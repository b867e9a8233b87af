// Package generation provides the embedded templates for generated app starters.
package generation

import (
	"embed"
	"strconv"
	"text/template"
)

//go:embed *.tmpl
var generationTemplates embed.FS

// GetTemplate returns the content of a named template.
func GetTemplate(name string) (string, error) {
	content, err := generationTemplates.ReadFile(name + ".tmpl")
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// TemplateFuncs returns the function map shared by all generation templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"quote": strconv.Quote,
	}
}
