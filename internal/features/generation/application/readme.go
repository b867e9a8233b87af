package application

import (
	"fmt"
	"strings"

	"appstarter/internal/features/generation/domain"
)

var layoutComments = map[string]string{
	"backend/main.py":            "FastAPI server",
	"frontend/index.html":        "Static page with inline script",
	"frontend/src/App.js":        "React entry point",
	"frontend/public/index.html": "Page that mounts the React app",
	"README.md":                  "This file",
}

// renderReadme builds the README by plain string interpolation.
func renderReadme(d templateData, files []domain.GeneratedFile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "> %s\n\n", d.Idea)
	b.WriteString("Generated app starter.\n\n")

	fmt.Fprintf(&b, "- Category: `%s`\n", d.Category)
	fmt.Fprintf(&b, "- Frontend: `%s`\n", d.FrontendStyle)
	if d.NeedsPersistence {
		b.WriteString("- Storage: SQLite (`backend/app.db`)\n")
	} else {
		b.WriteString("- Storage: in-memory\n")
	}
	if len(d.Features) > 0 {
		fmt.Fprintf(&b, "- Features: %s\n", strings.Join(d.Features, ", "))
	}

	b.WriteString("\n## Project Structure\n\n```\n")
	paths := make([]string, 0, len(files)+1)
	for _, f := range files {
		paths = append(paths, f.Path)
	}
	paths = append(paths, "README.md")
	width := 0
	for _, p := range paths {
		if len(p) > width {
			width = len(p)
		}
	}
	for _, p := range paths {
		comment, ok := layoutComments[p]
		if !ok {
			comment = "UI component"
		}
		fmt.Fprintf(&b, "%-*s  # %s\n", width, p, comment)
	}
	b.WriteString("```\n")

	b.WriteString("\n## Setup Instructions\n\n### Backend\n\n")
	b.WriteString("1. Install Python dependencies:\n\n```bash\npip install fastapi uvicorn\n```\n\n")
	b.WriteString("2. Run the API server:\n\n```bash\ncd backend\npython main.py\n```\n\n")
	fmt.Fprintf(&b, "The API will be available at `%s`.\n", d.APIBase)

	b.WriteString("\n### Frontend\n\n")
	if d.FrontendStyle == string(domain.StyleInteractive) {
		b.WriteString("1. Install Node.js dependencies:\n\n```bash\ncd frontend\nnpm init -y\nnpm install react react-dom react-scripts\n```\n\n")
		b.WriteString("2. Start the development server:\n\n```bash\nnpx react-scripts start\n```\n\n")
		fmt.Fprintf(&b, "The app will be available at `http://localhost:%d`.\n", d.FrontendPort)
	} else {
		b.WriteString("Serve the static page:\n\n```bash\ncd frontend\n")
		fmt.Fprintf(&b, "python -m http.server %d\n```\n\n", d.FrontendPort)
		fmt.Fprintf(&b, "Then open `http://localhost:%d`.\n", d.FrontendPort)
	}

	b.WriteString("\n## API Endpoints\n\n")
	b.WriteString("- `GET /` - Health check\n")
	for _, r := range d.Routes {
		for _, line := range endpointLines(r) {
			fmt.Fprintf(&b, "- %s\n", line)
		}
	}
	return b.String()
}

func endpointLines(r routeSpec) []string {
	p := "`" + r.Path + "`"
	switch r.Kind {
	case routeCollection:
		return []string{"`GET " + r.Path + "` - List " + r.Table, "`POST " + r.Path + "` - Create " + r.Table}
	case routeItem:
		if r.Param != "id" {
			return []string{"`GET " + r.Path + "` - Look up " + r.Table + " by " + r.Param}
		}
		return []string{
			"`GET " + r.Path + "` - Get one of " + r.Table,
			"`PUT " + r.Path + "` - Update one of " + r.Table,
			"`DELETE " + r.Path + "` - Delete one of " + r.Table,
		}
	case routeSearch:
		return []string{"`GET " + r.Path + "?q=` - Search all resources"}
	case routeAuth:
		return []string{"`POST " + r.Path + "` - " + humanize(r.Func)}
	case routeAction:
		return []string{"`POST " + r.Path + "` - Compute a result"}
	default:
		return []string{p}
	}
}
