package catalog

import "fmt"

var builtinSymptoms = []Symptom{
	{ID: "fever", Name: "Fever", Description: "Elevated body temperature above 37.5°C or 99.5°F"},
	{ID: "cough", Name: "Cough", Description: "Sudden expulsion of air from the lungs"},
	{ID: "headache", Name: "Headache", Description: "Pain in the head or upper neck"},
	{ID: "fatigue", Name: "Fatigue", Description: "Extreme tiredness resulting from mental or physical exertion"},
	{ID: "sore_throat", Name: "Sore Throat", Description: "Pain or irritation in the throat"},
	{ID: "shortness_of_breath", Name: "Shortness of Breath", Description: "Difficulty breathing or catching your breath"},
	{ID: "body_ache", Name: "Body Ache", Description: "Generalized muscle pain throughout the body"},
	{ID: "runny_nose", Name: "Runny Nose", Description: "Excess discharge of mucus from the nose"},
	{ID: "nausea", Name: "Nausea", Description: "Feeling of sickness with an inclination to vomit"},
	{ID: "diarrhea", Name: "Diarrhea", Description: "Loose, watery bowel movements"},
	{ID: "chest_pain", Name: "Chest Pain", Description: "Pain or discomfort in the chest area"},
	{ID: "rash", Name: "Skin Rash", Description: "Area of irritated or swollen skin"},
}

var builtinDiseases = []Disease{
	{
		ID:          "common_cold",
		Name:        "Common Cold",
		Description: "A viral infectious disease of the upper respiratory tract that primarily affects the nose.",
		Symptoms:    []string{"cough", "sore_throat", "runny_nose", "fatigue", "headache"},
		Severity:    SeverityLow,
		Recommendations: []string{
			"Rest and stay hydrated",
			"Take over-the-counter cold medications",
			"Use a humidifier to ease congestion",
		},
	},
	{
		ID:          "influenza",
		Name:        "Influenza (Flu)",
		Description: "A contagious respiratory illness caused by influenza viruses.",
		Symptoms:    []string{"fever", "cough", "sore_throat", "body_ache", "fatigue", "headache"},
		Severity:    SeverityMedium,
		Recommendations: []string{
			"Rest and stay hydrated",
			"Take antiviral medications if prescribed",
			"Take pain relievers for fever and aches",
		},
	},
	{
		ID:          "covid_19",
		Name:        "COVID-19",
		Description: "A respiratory illness caused by the SARS-CoV-2 virus.",
		Symptoms:    []string{"fever", "cough", "fatigue", "shortness_of_breath", "body_ache", "headache", "sore_throat", "nausea", "diarrhea"},
		Severity:    SeverityHigh,
		Recommendations: []string{
			"Isolate to prevent spreading the virus",
			"Rest and stay hydrated",
			"Monitor symptoms and seek medical attention if they worsen",
		},
	},
	{
		ID:          "allergies",
		Name:        "Seasonal Allergies",
		Description: "An immune system response to allergens such as pollen, dust, or pet dander.",
		Symptoms:    []string{"runny_nose", "cough", "headache"},
		Severity:    SeverityLow,
		Recommendations: []string{
			"Avoid known allergens",
			"Take antihistamines as directed",
			"Use nasal sprays if recommended by a doctor",
		},
	},
	{
		ID:          "bronchitis",
		Name:        "Bronchitis",
		Description: "Inflammation of the bronchial tubes, which carry air to your lungs.",
		Symptoms:    []string{"cough", "shortness_of_breath", "chest_pain", "fatigue", "headache", "fever"},
		Severity:    SeverityMedium,
		Recommendations: []string{
			"Rest and drink plenty of fluids",
			"Use a humidifier to loosen mucus",
			"Take cough medicine as recommended by a doctor",
		},
	},
	{
		ID:          "pneumonia",
		Name:        "Pneumonia",
		Description: "Infection that inflames air sacs in one or both lungs, which may fill with fluid.",
		Symptoms:    []string{"fever", "cough", "shortness_of_breath", "chest_pain", "fatigue"},
		Severity:    SeverityHigh,
		Recommendations: []string{
			"Seek immediate medical attention",
			"Take prescribed antibiotics if bacterial",
			"Rest and stay hydrated",
		},
	},
}

// defaultCatalog is built once at init; the built-in tables must always validate.
var defaultCatalog *Catalog

func init() {
	c, err := New(builtinSymptoms, builtinDiseases)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in data is invalid: %v", err))
	}
	defaultCatalog = c
}

// Default returns the built-in catalog shared by the whole process.
func Default() *Catalog {
	return defaultCatalog
}
