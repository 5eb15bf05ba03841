package handler

import (
	"embed"
	"html/template"
	"io"

	"github.com/katiamach/humidity-dashboard/internal/model"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// pageData is the view model for the dashboard page.
type pageData struct {
	Timestamp string
	Status    string
	Loaded    bool
	Chart     model.ChartData
	Markers   []model.Marker
}

func renderPage(w io.Writer, data *pageData) error {
	return pageTmpl.ExecuteTemplate(w, "dashboard.html", data)
}
