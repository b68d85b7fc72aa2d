package flow

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BadSquidward/roomlab/catalog"
)

// MaxRequirementsLength caps the free-text requirements field, in runes.
const MaxRequirementsLength = 2000

// Preferences is a submission of the design preference form.
type Preferences struct {
	Style        string   `json:"style"`
	Budget       int      `json:"budget"`
	Palettes     []string `json:"palette"`
	Requirements string   `json:"requirements"`
}

// DefaultPreferences returns the initial values of the preference form.
func DefaultPreferences(opts catalog.PreferenceOptions) Preferences {
	p := Preferences{Budget: opts.BudgetDefault}
	if len(opts.Styles) > 0 {
		p.Style = opts.Styles[0]
	}
	return p
}

// IsZero reports whether the preferences were never submitted.
func (p Preferences) IsZero() bool {
	return p.Style == "" && p.Budget == 0 && len(p.Palettes) == 0 && p.Requirements == ""
}

// Validate checks the preferences against the options offered by the form.
func (p Preferences) Validate(opts catalog.PreferenceOptions) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Style,
			validation.Required.Error("Please choose a style"),
			validation.In(toAny(opts.Styles)...).Error("Unknown style"),
		),
		validation.Field(&p.Budget,
			validation.Required.Error("Please choose a budget"),
			validation.Min(opts.BudgetMin).Error("Budget is below the minimum"),
			validation.Max(opts.BudgetMax).Error("Budget is above the maximum"),
		),
		validation.Field(&p.Palettes,
			validation.Each(validation.In(toAny(opts.Palettes)...).Error("Unknown color palette")),
		),
		validation.Field(&p.Requirements,
			validation.RuneLength(0, MaxRequirementsLength).Error("Special requirements are too long"),
		),
	)
}

// FieldErrors flattens a validation error into field -> message. It returns
// nil when err carries no field errors.
func FieldErrors(err error) map[string]string {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for field, e := range verrs {
		var nested validation.Errors
		if errors.As(e, &nested) {
			// Each() reports per-element errors; one message per field is enough.
			for _, ne := range nested {
				out[field] = ne.Error()
				break
			}
			continue
		}
		out[field] = e.Error()
	}
	return out
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
