package flow

// Action is a user interaction that may move a session to another screen.
type Action interface {
	Name() string
}

type (
	NavHome      struct{}
	NavDesign    struct{}
	NavPortfolio struct{}
	NavContact   struct{}
	GetStarted   struct{}

	// SelectRoom picks a room from the catalog.
	SelectRoom struct{ RoomID string }

	// SubmitPreferences asks for design options matching the preferences.
	SubmitPreferences struct{ Preferences Preferences }

	// Back returns to the previous step of the design flow.
	Back struct{}

	// Regenerate asks for new design options. The current list is kept.
	Regenerate struct{}

	// SelectDesign picks one of the generated design options.
	SelectDesign struct{ DesignID string }

	PlaceOrder struct{}

	// SendMessage submits the contact form. The message is not validated.
	SendMessage struct{ Message ContactMessage }
)

// ContactMessage is the content of the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

func (NavHome) Name() string           { return "nav_home" }
func (NavDesign) Name() string         { return "nav_design" }
func (NavPortfolio) Name() string      { return "nav_portfolio" }
func (NavContact) Name() string        { return "nav_contact" }
func (GetStarted) Name() string        { return "get_started" }
func (SelectRoom) Name() string        { return "select_room" }
func (SubmitPreferences) Name() string { return "submit_preferences" }
func (Back) Name() string              { return "back" }
func (Regenerate) Name() string        { return "regenerate" }
func (SelectDesign) Name() string      { return "select_design" }
func (PlaceOrder) Name() string        { return "place_order" }
func (SendMessage) Name() string       { return "send_message" }

// NavAction maps a nav-bar slug to its action.
func NavAction(slug string) (Action, bool) {
	switch slug {
	case "home":
		return NavHome{}, true
	case "design":
		return NavDesign{}, true
	case "portfolio":
		return NavPortfolio{}, true
	case "contact":
		return NavContact{}, true
	}
	return nil, false
}
