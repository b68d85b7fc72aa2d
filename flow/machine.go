package flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/BadSquidward/roomlab/catalog"
)

var (
	// ErrInvalidAction is returned when an action is not allowed on the
	// current screen. The session keeps its state.
	ErrInvalidAction = errors.New("action not allowed on this screen")

	// ErrUnknownRoom is returned when a room id is not in the catalog.
	ErrUnknownRoom = errors.New("unknown room")

	// ErrUnknownDesign is returned when a design id is not among the
	// generated options.
	ErrUnknownDesign = errors.New("unknown design option")

	// ErrInvalidPreferences wraps the field errors of a rejected form.
	ErrInvalidPreferences = errors.New("invalid design preferences")
)

// Notice is a transient message shown after a transition.
type Notice struct {
	Type    string // success, info, warning or error
	Message string
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool { return n.Message == "" }

const (
	MsgRegenerating = "Generating new design options..."
	MsgOrderPlaced  = "Your order has been placed! Our team will contact you shortly."
	MsgMessageSent  = "Your message has been sent! We'll get back to you soon."
)

// Machine applies actions to screens. It holds no per-session state and is
// safe for concurrent use.
type Machine struct {
	Catalog   *catalog.Catalog
	Suggester Suggester
	Estimator Estimator
}

// NewMachine returns a machine backed by the static catalog collaborators.
func NewMachine(c *catalog.Catalog) *Machine {
	return &Machine{
		Catalog:   c,
		Suggester: StaticSuggester{Catalog: c},
		Estimator: StaticEstimator{Catalog: c},
	}
}

// Apply computes the screen that follows from. On error the returned screen
// is from itself.
func (m *Machine) Apply(ctx context.Context, from Screen, a Action) (Screen, Notice, error) {
	if from == nil {
		from = Home{}
	}

	// The nav bar works from every screen.
	switch a.(type) {
	case NavHome:
		return Home{}, Notice{}, nil
	case NavDesign:
		return RoomSelection{}, Notice{}, nil
	case NavPortfolio:
		return Portfolio{}, Notice{}, nil
	case NavContact:
		return Contact{}, Notice{}, nil
	}

	switch s := from.(type) {
	case Home:
		if _, ok := a.(GetStarted); ok {
			return RoomSelection{}, Notice{}, nil
		}

	case RoomSelection:
		if act, ok := a.(SelectRoom); ok {
			room, found := m.Catalog.RoomByID(act.RoomID)
			if !found {
				return from, Notice{}, fmt.Errorf("%w: %q", ErrUnknownRoom, act.RoomID)
			}
			return DesignGeneration{Room: room}, Notice{}, nil
		}

	case DesignGeneration:
		switch act := a.(type) {
		case SubmitPreferences:
			if err := act.Preferences.Validate(m.Catalog.Preferences); err != nil {
				return from, Notice{}, fmt.Errorf("%w: %w", ErrInvalidPreferences, err)
			}
			designs, err := m.Suggester.Suggest(ctx, s.Room, act.Preferences)
			if err != nil {
				return from, Notice{}, fmt.Errorf("suggest designs for %s: %w", s.Room.ID, err)
			}
			return DesignComparison{
				Room:        s.Room,
				Preferences: act.Preferences,
				Designs:     designs,
			}, Notice{}, nil
		case Back:
			return RoomSelection{}, Notice{}, nil
		}

	case DesignComparison:
		switch act := a.(type) {
		case SelectDesign:
			design, found := findDesign(s.Designs, act.DesignID)
			if !found {
				return from, Notice{}, fmt.Errorf("%w: %q", ErrUnknownDesign, act.DesignID)
			}
			items, err := m.Estimator.Estimate(ctx, s.Room, design)
			if err != nil {
				return from, Notice{}, fmt.Errorf("estimate %s/%s: %w", s.Room.ID, design.ID, err)
			}
			return BOQGeneration{
				Room:        s.Room,
				Preferences: s.Preferences,
				Designs:     s.Designs,
				Design:      design,
				Items:       items,
			}, Notice{}, nil
		case Back:
			return DesignGeneration{Room: s.Room, Preferences: s.Preferences}, Notice{}, nil
		case Regenerate:
			return s, Notice{Type: "info", Message: MsgRegenerating}, nil
		}

	case BOQGeneration:
		switch a.(type) {
		case Back:
			return DesignComparison{
				Room:        s.Room,
				Preferences: s.Preferences,
				Designs:     s.Designs,
			}, Notice{}, nil
		case PlaceOrder:
			return s, Notice{Type: "success", Message: MsgOrderPlaced}, nil
		}

	case Contact:
		if _, ok := a.(SendMessage); ok {
			return s, Notice{Type: "success", Message: MsgMessageSent}, nil
		}
	}

	return from, Notice{}, fmt.Errorf("%w: %s on %s", ErrInvalidAction, a.Name(), from.Page())
}

func findDesign(designs []catalog.DesignOption, id string) (catalog.DesignOption, bool) {
	for _, d := range designs {
		if d.ID == id {
			return d, true
		}
	}
	return catalog.DesignOption{}, false
}
