package handlers

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/code4projects/raceboard/service"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Renderer implements echo.Renderer over the embedded HTML templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() *Renderer {
	funcs := template.FuncMap{
		"date":  func(t interface{ Format(string) string }) string { return t.Format(service.DateLayout) },
		"clock": func(t interface{ Format(string) string }) string { return t.Format(service.ClockLayout) },
	}
	return &Renderer{
		templates: template.Must(template.New("").Funcs(funcs).ParseFS(templateFiles, "templates/*.html")),
	}
}

// Render writes the named template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
