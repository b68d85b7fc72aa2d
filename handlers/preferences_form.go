package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/BadSquidward/roomlab/catalog"
	"github.com/BadSquidward/roomlab/flow"
)

// ParsePreferencesForm reads the preference form. A missing budget takes the
// form's default; a budget that is not a whole number is reported as a field
// error wrapped in flow.ErrInvalidPreferences.
func ParsePreferencesForm(values url.Values, opts catalog.PreferenceOptions) (flow.Preferences, error) {
	prefs := flow.Preferences{
		Style:        strings.TrimSpace(values.Get("style")),
		Budget:       opts.BudgetDefault,
		Requirements: strings.TrimSpace(values.Get("requirements")),
	}

	for _, p := range values["palette"] {
		if p = strings.TrimSpace(p); p != "" {
			prefs.Palettes = append(prefs.Palettes, p)
		}
	}

	if raw := strings.TrimSpace(values.Get("budget")); raw != "" {
		budget, err := strconv.Atoi(raw)
		if err != nil {
			prefs.Budget = 0
			return prefs, fmt.Errorf("%w: %w", flow.ErrInvalidPreferences, validation.Errors{
				"budget": errors.New("Budget must be a whole number"),
			})
		}
		prefs.Budget = budget
	}

	return prefs, nil
}
