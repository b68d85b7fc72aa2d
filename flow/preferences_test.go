package flow

import (
	"strings"
	"testing"

	"github.com/BadSquidward/roomlab/catalog"
)

func TestPreferencesValidate(t *testing.T) {
	opts := catalog.Default().Preferences

	tests := []struct {
		name      string
		prefs     Preferences
		wantField string
	}{
		{"valid", Preferences{Style: "Modern", Budget: 10000}, ""},
		{"valid with palettes", Preferences{Style: "Traditional", Budget: 3000, Palettes: []string{"Neutral", "Cool"}}, ""},
		{"upper bound", Preferences{Style: "Industrial", Budget: 20000}, ""},
		{"missing style", Preferences{Budget: 10000}, "style"},
		{"unknown style", Preferences{Style: "Gothic", Budget: 10000}, "style"},
		{"missing budget", Preferences{Style: "Modern"}, "budget"},
		{"budget too low", Preferences{Style: "Modern", Budget: 2999}, "budget"},
		{"budget too high", Preferences{Style: "Modern", Budget: 20001}, "budget"},
		{"unknown palette", Preferences{Style: "Modern", Budget: 5000, Palettes: []string{"Warm", "Neon"}}, "palette"},
		{"requirements too long", Preferences{Style: "Modern", Budget: 5000, Requirements: strings.Repeat("x", MaxRequirementsLength+1)}, "requirements"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prefs.Validate(opts)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			fields := FieldErrors(err)
			if _, ok := fields[tt.wantField]; !ok {
				t.Errorf("expected error on %q, got %v", tt.wantField, fields)
			}
		})
	}
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences(catalog.Default().Preferences)
	if p.Style != "Modern" {
		t.Errorf("style = %q, want Modern", p.Style)
	}
	if p.Budget != 10000 {
		t.Errorf("budget = %d, want 10000", p.Budget)
	}
	if p.IsZero() {
		t.Error("defaults should not be zero")
	}
	if !(Preferences{}).IsZero() {
		t.Error("empty preferences should be zero")
	}
}

func TestFieldErrors_NotValidation(t *testing.T) {
	if got := FieldErrors(nil); got != nil {
		t.Errorf("FieldErrors(nil) = %v", got)
	}
}
