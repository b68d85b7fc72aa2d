package flow

import (
	"context"

	"github.com/BadSquidward/roomlab/catalog"
)

// Suggester produces design options for a room and a set of preferences.
type Suggester interface {
	Suggest(ctx context.Context, room catalog.Room, prefs Preferences) ([]catalog.DesignOption, error)
}

// Estimator produces the bill of quantities for a chosen design.
type Estimator interface {
	Estimate(ctx context.Context, room catalog.Room, design catalog.DesignOption) ([]catalog.BOQItem, error)
}

// StaticSuggester returns the catalog's design options whatever the input.
type StaticSuggester struct {
	Catalog *catalog.Catalog
}

func (s StaticSuggester) Suggest(ctx context.Context, _ catalog.Room, _ Preferences) ([]catalog.DesignOption, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Catalog.DesignList(), nil
}

// StaticEstimator returns the catalog's fixed bill of quantities for every
// room and design.
type StaticEstimator struct {
	Catalog *catalog.Catalog
}

func (s StaticEstimator) Estimate(ctx context.Context, _ catalog.Room, _ catalog.DesignOption) ([]catalog.BOQItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Catalog.BOQ(), nil
}
