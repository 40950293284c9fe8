package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer serves the portal's server-rendered pages through echo's
// Renderer interface. Templates are embedded at build time.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates. Panics on a malformed
// template, which is a build defect rather than a runtime condition.
func NewRenderer() *Renderer {
	return &Renderer{templates: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

// Render satisfies the echo.Renderer interface.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
