// Package web holds the embedded browser UI: HTML templates, the stylesheet
// and the page models the templates render.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/Skufu/healthoracle/internal/catalog"
	"github.com/Skufu/healthoracle/internal/predictor"
	"github.com/Skufu/healthoracle/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"indicator":        view.Indicator,
	"severityText":     view.SeverityText,
	"confidenceTier":   view.ConfidenceTier,
	"formatConfidence": view.FormatConfidence,
	"disclaimer":       func() string { return view.Disclaimer },
	"noMatches":        func() string { return view.NoMatches },
}

// Templates parses every embedded page template.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static serves the embedded stylesheet directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// SymptomOption is one checkbox on the selection form.
type SymptomOption struct {
	catalog.Symptom
	Checked bool
}

// FormPage is the model for the symptom selection page.
type FormPage struct {
	Symptoms []SymptomOption
	Selected int
	Error    string
}

// ResultsPage is the model for the prediction results page.
// SymptomIDs holds the submitted IDs as scored, unknown ones included.
type ResultsPage struct {
	SymptomIDs  []string
	Selected    []catalog.Symptom
	Predictions []predictor.Prediction
}

// NewFormPage marks the selected IDs on the catalog's symptom list.
func NewFormPage(c *catalog.Catalog, selected []string, errMsg string) FormPage {
	checked := make(map[string]bool, len(selected))
	for _, id := range selected {
		checked[id] = true
	}

	page := FormPage{Error: errMsg}
	for _, s := range c.Symptoms() {
		opt := SymptomOption{Symptom: s, Checked: checked[s.ID]}
		if opt.Checked {
			page.Selected++
		}
		page.Symptoms = append(page.Symptoms, opt)
	}
	return page
}

// ReportURL links to the PDF rendering of the same selection.
func (p ResultsPage) ReportURL() template.URL {
	return template.URL("/report.pdf?" + p.query())
}

// FormURL links back to the selection form with the boxes still checked.
func (p ResultsPage) FormURL() template.URL {
	if len(p.SymptomIDs) == 0 {
		return "/"
	}
	return template.URL("/?" + p.query())
}

func (p ResultsPage) query() string {
	v := url.Values{"symptom": p.SymptomIDs}
	return v.Encode()
}
