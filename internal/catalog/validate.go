package catalog

import (
	"errors"
	"fmt"
)

// validate performs all structural checks on the given data.
// Returns a joined error describing every problem found, or nil if valid.
func validate(symptoms []Symptom, diseases []Disease) error {
	var errs []error

	known := make(map[string]bool, len(symptoms))
	for _, s := range symptoms {
		if s.ID == "" {
			errs = append(errs, fmt.Errorf("symptom %q has an empty ID", s.Name))
			continue
		}
		if known[s.ID] {
			errs = append(errs, fmt.Errorf("duplicate symptom ID: %q", s.ID))
		}
		known[s.ID] = true
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("symptom %q has an empty name", s.ID))
		}
	}

	seen := make(map[string]bool, len(diseases))
	for _, d := range diseases {
		if d.ID == "" {
			errs = append(errs, fmt.Errorf("disease %q has an empty ID", d.Name))
		} else if seen[d.ID] {
			errs = append(errs, fmt.Errorf("duplicate disease ID: %q", d.ID))
		}
		seen[d.ID] = true

		if d.Name == "" {
			errs = append(errs, fmt.Errorf("disease %q has an empty name", d.ID))
		}
		if !d.Severity.Valid() {
			errs = append(errs, fmt.Errorf("disease %q has invalid severity %q", d.ID, d.Severity))
		}

		// Scoring divides by the profile size.
		if len(d.Symptoms) == 0 {
			errs = append(errs, fmt.Errorf("disease %q has no symptoms", d.ID))
		}
		profile := make(map[string]bool, len(d.Symptoms))
		for _, id := range d.Symptoms {
			if profile[id] {
				errs = append(errs, fmt.Errorf("disease %q lists symptom %q twice", d.ID, id))
			}
			profile[id] = true
			if !known[id] {
				errs = append(errs, fmt.Errorf("disease %q references nonexistent symptom %q", d.ID, id))
			}
		}
	}

	return errors.Join(errs...)
}
