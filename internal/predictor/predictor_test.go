package predictor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skufu/healthoracle/internal/catalog"
)

type ranked struct {
	id         string
	confidence float64
}

func flatten(ps []Prediction) []ranked {
	out := make([]ranked, len(ps))
	for i, p := range ps {
		out[i] = ranked{p.Disease.ID, p.Confidence}
	}
	return out
}

func TestPredict_Scenarios(t *testing.T) {
	p := New(catalog.Default())

	tests := []struct {
		name     string
		selected []string
		want     []ranked
	}{
		{
			name:     "influenza profile",
			selected: []string{"fever", "cough", "sore_throat", "body_ache", "fatigue", "headache"},
			want: []ranked{
				{"influenza", 100.0},
				{"covid_19", 66.7},
				{"common_cold", 53.3},
				{"bronchitis", 44.4},
				{"pneumonia", 30.0},
				{"allergies", 22.2},
			},
		},
		{
			name:     "rash matches nothing",
			selected: []string{"rash"},
			want:     []ranked{},
		},
		{
			name:     "runny nose",
			selected: []string{"runny_nose"},
			want: []ranked{
				{"allergies", 33.3},
				{"common_cold", 20.0},
			},
		},
		{
			name:     "respiratory distress",
			selected: []string{"fever", "shortness_of_breath", "chest_pain"},
			want: []ranked{
				{"pneumonia", 60.0},
				{"bronchitis", 50.0},
				{"covid_19", 14.8},
				{"influenza", 5.6},
			},
		},
		{
			name:     "unknown ids only",
			selected: []string{"sneezing", "FEVER"},
			want:     []ranked{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Predict(tt.selected)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, flatten(got))
		})
	}
}

func TestPredict_EmptySelection(t *testing.T) {
	p := New(catalog.Default())

	got := p.Predict(nil)
	require.NotNil(t, got)
	assert.Empty(t, got)

	got = p.Predict([]string{})
	assert.Empty(t, got)
}

func TestPredict_DuplicatesCountOnce(t *testing.T) {
	p := New(catalog.Default())

	once := p.Predict([]string{"runny_nose"})
	twice := p.Predict([]string{"runny_nose", "runny_nose", "runny_nose"})
	assert.Equal(t, once, twice)
}

func TestPredict_UnknownIDsDiluteSelection(t *testing.T) {
	p := New(catalog.Default())

	// The unknown ID still counts toward the selection size.
	got := p.Predict([]string{"runny_nose", "sneezing"})
	assert.Equal(t, []ranked{
		{"allergies", 16.7},
		{"common_cold", 10.0},
	}, flatten(got))
}

func TestPredict_TiesKeepCatalogOrder(t *testing.T) {
	c, err := catalog.New(
		[]catalog.Symptom{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}},
		[]catalog.Disease{
			{ID: "first", Name: "First", Symptoms: []string{"a", "b"}, Severity: catalog.SeverityLow},
			{ID: "second", Name: "Second", Symptoms: []string{"b", "a"}, Severity: catalog.SeverityHigh},
			{ID: "third", Name: "Third", Symptoms: []string{"a"}, Severity: catalog.SeverityMedium},
		},
	)
	require.NoError(t, err)

	got := New(c).Predict([]string{"a", "b"})
	assert.Equal(t, []ranked{
		{"first", 100.0},
		{"second", 100.0},
		{"third", 50.0},
	}, flatten(got))
}

func TestPredict_DoesNotMutateInput(t *testing.T) {
	p := New(catalog.Default())
	selected := []string{"headache", "fever", "headache"}
	before := append([]string(nil), selected...)

	first := p.Predict(selected)
	second := p.Predict(selected)

	assert.Equal(t, before, selected)
	assert.Equal(t, first, second)

	// Mutating a returned disease must not leak into the catalog.
	first[0].Disease.Symptoms[0] = "mutated"
	assert.Equal(t, second, p.Predict(selected))
}

// Exhaustively checks every subset of the built-in symptom list.
func TestPredict_Properties(t *testing.T) {
	c := catalog.Default()
	p := New(c)
	symptoms := c.Symptoms()
	profiles := make(map[string][]string)
	for _, d := range c.Diseases() {
		profiles[d.ID] = d.Symptoms
	}

	for mask := 1; mask < 1<<len(symptoms); mask++ {
		var selected []string
		for i, s := range symptoms {
			if mask&(1<<i) != 0 {
				selected = append(selected, s.ID)
			}
		}

		got := p.Predict(selected)
		for i, pr := range got {
			if pr.Confidence <= 0 || pr.Confidence > 100 {
				t.Fatalf("selection %v: %s confidence %v out of range", selected, pr.Disease.ID, pr.Confidence)
			}
			if i > 0 && got[i-1].Confidence < pr.Confidence {
				t.Fatalf("selection %v: results not sorted at %d", selected, i)
			}
			if pr.Confidence == 100 && !sameSet(profiles[pr.Disease.ID], selected) {
				t.Fatalf("selection %v: %s scored 100 without an exact match", selected, pr.Disease.ID)
			}
			if tenths := pr.Confidence * 10; math.Abs(tenths-math.Round(tenths)) > 1e-9 {
				t.Fatalf("selection %v: %s confidence %v has more than one decimal", selected, pr.Disease.ID, pr.Confidence)
			}
		}
	}
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	in := make(map[string]bool, len(a))
	for _, s := range a {
		in[s] = true
	}
	for _, s := range b {
		if !in[s] {
			return false
		}
	}
	return true
}

func TestUnknown(t *testing.T) {
	p := New(catalog.Default())

	assert.Equal(t, []string{}, p.Unknown(nil))
	assert.Equal(t, []string{}, p.Unknown([]string{"fever", "rash"}))
	assert.Equal(t,
		[]string{"sneezing", "Fever"},
		p.Unknown([]string{"fever", "sneezing", "Fever", "sneezing"}),
	)
}

func TestRoundTenth(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{66.6666, 66.7},
		{33.3333, 33.3},
		{14.8148, 14.8},
		{60.00000000000001, 60.0},
		{5.5555, 5.6},
		{100, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, roundTenth(tt.in), "roundTenth(%v)", tt.in)
	}
}
