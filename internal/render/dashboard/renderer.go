// Package dashboard renders the interactive HTML views of the application.
package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/talentlens/talentlens/internal/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer implements echo.Renderer on top of html/template
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates
func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"timestamp": render.FormatTimestamp,
	}
	t, err := template.New("dashboard").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named template
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
