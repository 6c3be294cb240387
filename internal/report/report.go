// Package report renders prediction results as a downloadable PDF.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Skufu/healthoracle/internal/catalog"
	"github.com/Skufu/healthoracle/internal/predictor"
	"github.com/Skufu/healthoracle/internal/view"
)

const title = "Health Oracle - Symptom Check"

type rgb struct{ r, g, b int }

var indicatorColors = map[string]rgb{
	"calm":    {22, 163, 74},
	"caution": {202, 138, 4},
	"urgent":  {220, 38, 38},
}

// Write renders the selection and its predictions as an A4 PDF.
// Only core fonts are used so no font files are needed at runtime.
func Write(w io.Writer, selected []catalog.Symptom, predictions []predictor.Prediction, generated time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetAuthor("Health Oracle", true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-18)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(107, 114, 128)
		pdf.MultiCell(0, 4, tr(view.Disclaimer), "", "C", false)
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(0, 6, "Generated "+generated.UTC().Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	names := make([]string, len(selected))
	for i, s := range selected {
		names[i] = s.Name
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(0, 7, "Selected symptoms", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, tr(strings.Join(names, ", ")), "", "L", false)
	pdf.Ln(4)

	if len(predictions) == 0 {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, tr(view.NoMatches), "", "L", false)
	}

	for i, p := range predictions {
		writePrediction(pdf, tr, i+1, p)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func writePrediction(pdf *gofpdf.Fpdf, tr func(string) string, rank int, p predictor.Prediction) {
	d := p.Disease

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(17, 24, 39)
	pdf.CellFormat(130, 8, tr(fmt.Sprintf("%d. %s", rank, d.Name)), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 8, view.FormatConfidence(p.Confidence), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(55, 65, 81)
	pdf.MultiCell(0, 5, tr(d.Description), "", "L", false)

	c := indicatorColors[view.Indicator(d.Severity)]
	pdf.SetTextColor(c.r, c.g, c.b)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(0, 6, tr(view.SeverityText(d.Severity)), "", 1, "L", false, 0, "")

	if len(d.Recommendations) > 0 {
		pdf.SetTextColor(17, 24, 39)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(0, 6, "Recommendations:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, r := range d.Recommendations {
			pdf.MultiCell(0, 5, tr("- "+r), "", "L", false)
		}
	}
	pdf.Ln(5)
}
