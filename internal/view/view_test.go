package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/healthoracle/internal/catalog"
	"github.com/Skufu/healthoracle/internal/predictor"
)

func TestIndicatorAndText(t *testing.T) {
	tests := []struct {
		severity  catalog.Severity
		indicator string
		label     string
		text      string
	}{
		{catalog.SeverityLow, "calm", "Low", "Low severity - typically self-resolving"},
		{catalog.SeverityMedium, "caution", "Medium", "Moderate severity - medical advice recommended"},
		{catalog.SeverityHigh, "urgent", "High", "High severity - seek medical attention"},
		{"unknown", "", "Unknown", ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			assert.Equal(t, tt.indicator, Indicator(tt.severity))
			assert.Equal(t, tt.label, SeverityLabel(tt.severity))
			assert.Equal(t, tt.text, SeverityText(tt.severity))
		})
	}
}

func TestConfidenceTier(t *testing.T) {
	tests := []struct {
		confidence float64
		want       string
	}{
		{100, "high"},
		{70, "high"},
		{69.9, "moderate"},
		{40, "moderate"},
		{39.9, "low"},
		{5.6, "low"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ConfidenceTier(tt.confidence), "ConfidenceTier(%v)", tt.confidence)
	}
}

func TestFormatConfidence(t *testing.T) {
	assert.Equal(t, "66.7% match", FormatConfidence(66.7))
	assert.Equal(t, "20% match", FormatConfidence(20.0))
	assert.Equal(t, "100% match", FormatConfidence(100))
	assert.Equal(t, "14.8% match", FormatConfidence(14.8))
}

func TestWriteText(t *testing.T) {
	c := catalog.Default()
	runny, _ := c.Symptom("runny_nose")
	preds := predictor.New(c).Predict([]string{"runny_nose"})

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []catalog.Symptom{runny}, preds))
	out := buf.String()

	assert.Contains(t, out, "Selected symptoms: Runny Nose")
	assert.Contains(t, out, "1. Seasonal Allergies - 33.3% match")
	assert.Contains(t, out, "2. Common Cold - 20% match")
	assert.Contains(t, out, "[calm] Low: Low severity - typically self-resolving")
	assert.Contains(t, out, "     - Avoid known allergens")
	assert.True(t, strings.HasSuffix(out, Disclaimer+"\n"))
	assert.NotContains(t, out, NoMatches)
}

func TestWriteText_NoMatches(t *testing.T) {
	c := catalog.Default()
	rash, _ := c.Symptom("rash")

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, []catalog.Symptom{rash}, nil))

	assert.Contains(t, buf.String(), "Selected symptoms: Skin Rash")
	assert.Contains(t, buf.String(), NoMatches)
	assert.Contains(t, buf.String(), Disclaimer)
}
