package predictor

import (
	"math"
	"sort"

	"github.com/Skufu/healthoracle/internal/catalog"
)

// Prediction pairs a disease with how well the selection matches it.
// Confidence is a percentage in (0, 100] rounded to one decimal place.
type Prediction struct {
	Disease    catalog.Disease `json:"disease"`
	Confidence float64         `json:"confidence"`
}

// Predictor ranks catalog diseases against a symptom selection.
type Predictor struct {
	catalog *catalog.Catalog
}

// New creates a Predictor over the given catalog.
func New(c *catalog.Catalog) *Predictor {
	return &Predictor{catalog: c}
}

// Predict scores every disease against the selected symptom IDs and returns
// the non-zero matches, best first. Duplicate IDs count once and unknown IDs
// never match. Equal confidences keep catalog order.
func (p *Predictor) Predict(selected []string) []Prediction {
	set := toSet(selected)
	if len(set) == 0 {
		return []Prediction{}
	}

	predictions := []Prediction{}
	for _, d := range p.catalog.Diseases() {
		confidence := score(d.Symptoms, set)
		if confidence == 0 {
			continue
		}
		predictions = append(predictions, Prediction{Disease: d, Confidence: confidence})
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Confidence > predictions[j].Confidence
	})
	return predictions
}

// Unknown returns the selected IDs the catalog does not know, deduplicated,
// in first-seen order.
func (p *Predictor) Unknown(selected []string) []string {
	unknown := []string{}
	seen := make(map[string]bool, len(selected))
	for _, id := range selected {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !p.catalog.HasSymptom(id) {
			unknown = append(unknown, id)
		}
	}
	return unknown
}

// score is the product of the share of the profile the user has and the share
// of the selection the profile explains, as a percentage.
func score(profile []string, selection map[string]struct{}) float64 {
	if len(profile) == 0 || len(selection) == 0 {
		return 0
	}

	matches := 0
	for _, id := range profile {
		if _, ok := selection[id]; ok {
			matches++
		}
	}
	if matches == 0 {
		return 0
	}

	m := float64(matches)
	raw := (m / float64(len(profile))) * (m / float64(len(selection)))
	return roundTenth(raw * 100)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
