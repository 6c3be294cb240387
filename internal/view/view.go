// Package view turns predictions into the wording and emphasis shown to users.
package view

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Skufu/healthoracle/internal/catalog"
)

const (
	Disclaimer = "This is a predictive tool only. Always consult with a healthcare professional for diagnosis."
	NoMatches  = "No matching conditions found for your symptoms."
)

// Indicator maps a severity tier to its visual treatment.
func Indicator(s catalog.Severity) string {
	switch s {
	case catalog.SeverityLow:
		return "calm"
	case catalog.SeverityMedium:
		return "caution"
	case catalog.SeverityHigh:
		return "urgent"
	default:
		return ""
	}
}

func SeverityText(s catalog.Severity) string {
	switch s {
	case catalog.SeverityLow:
		return "Low severity - typically self-resolving"
	case catalog.SeverityMedium:
		return "Moderate severity - medical advice recommended"
	case catalog.SeverityHigh:
		return "High severity - seek medical attention"
	default:
		return ""
	}
}

// SeverityLabel returns the tier name in title case, e.g. "Medium".
func SeverityLabel(s catalog.Severity) string {
	return cases.Title(language.English).String(string(s))
}

// ConfidenceTier buckets a confidence percentage for emphasis.
func ConfidenceTier(confidence float64) string {
	switch {
	case confidence >= 70:
		return "high"
	case confidence >= 40:
		return "moderate"
	default:
		return "low"
	}
}

// FormatConfidence renders a confidence as "66.7% match". Whole values drop
// the fraction ("20% match").
func FormatConfidence(confidence float64) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%v%% match", number.Decimal(confidence, number.MaxFractionDigits(1)))
}
