package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Skufu/healthoracle/internal/catalog"
	"github.com/Skufu/healthoracle/internal/predictor"
)

// WriteText writes a plain-text result report for terminals.
func WriteText(w io.Writer, selected []catalog.Symptom, predictions []predictor.Prediction) error {
	bw := bufio.NewWriter(w)

	names := make([]string, len(selected))
	for i, s := range selected {
		names[i] = s.Name
	}
	fmt.Fprintf(bw, "Selected symptoms: %s\n\n", strings.Join(names, ", "))

	if len(predictions) == 0 {
		fmt.Fprintln(bw, NoMatches)
	}
	for i, p := range predictions {
		d := p.Disease
		fmt.Fprintf(bw, "%d. %s - %s\n", i+1, d.Name, FormatConfidence(p.Confidence))
		fmt.Fprintf(bw, "   %s\n", d.Description)
		fmt.Fprintf(bw, "   [%s] %s: %s\n", Indicator(d.Severity), SeverityLabel(d.Severity), SeverityText(d.Severity))
		if len(d.Recommendations) > 0 {
			fmt.Fprintln(bw, "   Recommendations:")
			for _, r := range d.Recommendations {
				fmt.Fprintf(bw, "     - %s\n", r)
			}
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "\n%s\n", Disclaimer)
	return bw.Flush()
}
