package catalog

// Severity is the display tier of a disease. It never affects scoring.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Valid reports whether s is one of the known tiers.
func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return true
	default:
		return false
	}
}

// Symptom is a condition a user may report.
type Symptom struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Disease is a named condition with its expected symptom profile.
// Symptoms holds distinct symptom IDs in display order.
type Disease struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Symptoms        []string `json:"symptoms"`
	Severity        Severity `json:"severity"`
	Recommendations []string `json:"recommendations"`
}

// Catalog is the validated, read-only set of symptoms and diseases.
// It is safe for concurrent use since nothing writes to it after New returns.
type Catalog struct {
	symptoms  []Symptom
	diseases  []Disease
	symptomIx map[string]int
	diseaseIx map[string]int
}

// New validates the given data and builds a Catalog from private copies of it.
// Every problem found is reported in the returned error.
func New(symptoms []Symptom, diseases []Disease) (*Catalog, error) {
	if err := validate(symptoms, diseases); err != nil {
		return nil, err
	}

	c := &Catalog{
		symptoms:  make([]Symptom, len(symptoms)),
		diseases:  make([]Disease, len(diseases)),
		symptomIx: make(map[string]int, len(symptoms)),
		diseaseIx: make(map[string]int, len(diseases)),
	}
	copy(c.symptoms, symptoms)
	for i, s := range c.symptoms {
		c.symptomIx[s.ID] = i
	}
	for i, d := range diseases {
		c.diseases[i] = cloneDisease(d)
		c.diseaseIx[d.ID] = i
	}
	return c, nil
}

// Symptoms returns every symptom in catalog order.
func (c *Catalog) Symptoms() []Symptom {
	out := make([]Symptom, len(c.symptoms))
	copy(out, c.symptoms)
	return out
}

// Diseases returns every disease in catalog order.
func (c *Catalog) Diseases() []Disease {
	out := make([]Disease, len(c.diseases))
	for i, d := range c.diseases {
		out[i] = cloneDisease(d)
	}
	return out
}

// Symptom looks up a symptom by ID.
func (c *Catalog) Symptom(id string) (Symptom, bool) {
	i, ok := c.symptomIx[id]
	if !ok {
		return Symptom{}, false
	}
	return c.symptoms[i], true
}

// Disease looks up a disease by ID.
func (c *Catalog) Disease(id string) (Disease, bool) {
	i, ok := c.diseaseIx[id]
	if !ok {
		return Disease{}, false
	}
	return cloneDisease(c.diseases[i]), true
}

// HasSymptom reports whether id names a catalog symptom.
func (c *Catalog) HasSymptom(id string) bool {
	_, ok := c.symptomIx[id]
	return ok
}

// SelectSymptoms returns the catalog symptoms named in ids, in catalog order.
// Unknown and repeated IDs are ignored.
func (c *Catalog) SelectSymptoms(ids []string) []Symptom {
	picked := make(map[string]bool, len(ids))
	for _, id := range ids {
		picked[id] = true
	}
	var out []Symptom
	for _, s := range c.symptoms {
		if picked[s.ID] {
			out = append(out, s)
		}
	}
	return out
}

func cloneDisease(d Disease) Disease {
	d.Symptoms = append([]string(nil), d.Symptoms...)
	d.Recommendations = append([]string(nil), d.Recommendations...)
	return d
}
