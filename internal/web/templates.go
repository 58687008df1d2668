package web

import (
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates
var templateFS embed.FS

var (
	listTmpl    = parseTemplate("list.html")
	searchTmpl  = parseTemplate("search_new.html")
	resultsTmpl = parseTemplate("search_results.html")
	detailTmpl  = parseTemplate("detail.html")
	errorTmpl   = parseTemplate("error.html")
)

func parseTemplate(filename string) *appTemplate {
	tmpl := template.Must(template.ParseFS(templateFS, "templates/base.html", "templates/"+filename))
	return &appTemplate{t: tmpl.Lookup("base.html")}
}

type appTemplate struct {
	t *template.Template
}

func (tmpl *appTemplate) Execute(w http.ResponseWriter, r *http.Request, data interface{}) *appError {
	d := struct {
		Data interface{}
	}{
		Data: data,
	}

	if err := tmpl.t.Execute(w, d); err != nil {
		return appErrorf(err, "could not write template: %v", err)
	}
	return nil
}
