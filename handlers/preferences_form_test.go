package handlers

import (
	"errors"
	"net/url"
	"reflect"
	"testing"

	"github.com/BadSquidward/roomlab/catalog"
	"github.com/BadSquidward/roomlab/flow"
)

func TestParsePreferencesForm(t *testing.T) {
	opts := catalog.Default().Preferences

	tests := []struct {
		name   string
		values url.Values
		want   flow.Preferences
	}{
		{
			"full form",
			url.Values{"style": {"Industrial"}, "budget": {"12500"}, "palette": {"Cool", "Bold"}, "requirements": {"  Reading nook  "}},
			flow.Preferences{Style: "Industrial", Budget: 12500, Palettes: []string{"Cool", "Bold"}, Requirements: "Reading nook"},
		},
		{
			"missing budget uses default",
			url.Values{"style": {"Modern"}},
			flow.Preferences{Style: "Modern", Budget: 10000},
		},
		{
			"blank palette entries dropped",
			url.Values{"style": {"Modern"}, "budget": {"4000"}, "palette": {"", " Warm "}},
			flow.Preferences{Style: "Modern", Budget: 4000, Palettes: []string{"Warm"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePreferencesForm(tt.values, opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParsePreferencesForm_BadBudget(t *testing.T) {
	_, err := ParsePreferencesForm(url.Values{"style": {"Modern"}, "budget": {"12.5k"}}, catalog.Default().Preferences)
	if !errors.Is(err, flow.ErrInvalidPreferences) {
		t.Fatalf("expected ErrInvalidPreferences, got %v", err)
	}
	fields := flow.FieldErrors(err)
	if fields["budget"] != "Budget must be a whole number" {
		t.Errorf("unexpected field errors %v", fields)
	}
}
