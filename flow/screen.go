// Package flow implements the navigation state machine of the design
// ordering flow and the per-visitor sessions that hold its state.
package flow

import (
	"github.com/BadSquidward/roomlab/catalog"
)

// Page names one of the screens the application can display.
type Page string

const (
	PageHome             Page = "home"
	PageRoomSelection    Page = "room_selection"
	PageDesignGeneration Page = "design_generation"
	PageDesignComparison Page = "design_comparison"
	PageBOQGeneration    Page = "boq_generation"
	PagePortfolio        Page = "portfolio"
	PageContact          Page = "contact"
)

// Pages lists every page in navigation order.
var Pages = []Page{
	PageHome,
	PageRoomSelection,
	PageDesignGeneration,
	PageDesignComparison,
	PageBOQGeneration,
	PagePortfolio,
	PageContact,
}

// Screen is the state of a session. Each implementation carries only the
// data that is valid on its page, so a screen that needs a selected room or
// design cannot exist without one.
type Screen interface {
	Page() Page
}

type Home struct{}

type RoomSelection struct{}

// DesignGeneration shows the preference form for Room. Preferences holds
// the last submission so the form can be prefilled after going back.
type DesignGeneration struct {
	Room        catalog.Room
	Preferences Preferences
}

// DesignComparison lists the generated design options for Room.
type DesignComparison struct {
	Room        catalog.Room
	Preferences Preferences
	Designs     []catalog.DesignOption
}

// BOQGeneration shows the bill of quantities for the chosen Design.
type BOQGeneration struct {
	Room        catalog.Room
	Preferences Preferences
	Designs     []catalog.DesignOption
	Design      catalog.DesignOption
	Items       []catalog.BOQItem
}

type Portfolio struct{}

type Contact struct{}

func (Home) Page() Page             { return PageHome }
func (RoomSelection) Page() Page    { return PageRoomSelection }
func (DesignGeneration) Page() Page { return PageDesignGeneration }
func (DesignComparison) Page() Page { return PageDesignComparison }
func (BOQGeneration) Page() Page    { return PageBOQGeneration }
func (Portfolio) Page() Page        { return PagePortfolio }
func (Contact) Page() Page          { return PageContact }

// SelectedRoom returns the room chosen on screens that have one.
func SelectedRoom(s Screen) (catalog.Room, bool) {
	switch v := s.(type) {
	case DesignGeneration:
		return v.Room, true
	case DesignComparison:
		return v.Room, true
	case BOQGeneration:
		return v.Room, true
	}
	return catalog.Room{}, false
}

// SelectedDesign returns the design chosen on the BOQ screen.
func SelectedDesign(s Screen) (catalog.DesignOption, bool) {
	if v, ok := s.(BOQGeneration); ok {
		return v.Design, true
	}
	return catalog.DesignOption{}, false
}

// GeneratedDesigns returns the design list of screens that carry one.
func GeneratedDesigns(s Screen) []catalog.DesignOption {
	switch v := s.(type) {
	case DesignComparison:
		return v.Designs
	case BOQGeneration:
		return v.Designs
	}
	return nil
}
