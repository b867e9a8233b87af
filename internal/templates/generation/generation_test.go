package generation

import (
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTemplate(t *testing.T) {
	for _, name := range []string{"backend_main.py", "index.html", "App.js", "component.js", "public_index.html"} {
		content, err := GetTemplate(name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, content, name)
	}

	_, err := GetTemplate("missing")
	assert.Error(t, err)
}

func TestTemplateFuncs_CoverEveryTemplate(t *testing.T) {
	entries, err := generationTemplates.ReadDir(".")
	require.NoError(t, err)
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".tmpl")
		content, err := GetTemplate(name)
		require.NoError(t, err)
		_, err = template.New(name).Funcs(TemplateFuncs()).Parse(content)
		assert.NoError(t, err, name)
	}
	assert.Len(t, TemplateFuncs(), 1)
}

func TestQuote(t *testing.T) {
	tmpl := template.Must(template.New("q").Funcs(TemplateFuncs()).Parse(`IDEA = {{quote .}}`))
	var b strings.Builder
	require.NoError(t, tmpl.Execute(&b, `say "hi"`))
	assert.Equal(t, `IDEA = "say \"hi\""`, b.String())
}
