// Package templates renders the screens of the design flow as templ
// components. Components are authored in the .templ files and compiled with
// `templ generate`; every component is a pure function of its view data.
package templates

// LayoutData is shared by every full page.
type LayoutData struct {
	SiteName  string
	Footer    string
	ActiveNav string // home, design, portfolio or contact
}

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Slug  string
	Label string
}

// NavItems are the nav bar entries in display order.
var NavItems = []NavItem{
	{Slug: "home", Label: "Home"},
	{Slug: "design", Label: "Design"},
	{Slug: "portfolio", Label: "Portfolio"},
	{Slug: "contact", Label: "Contact"},
}

type RoomCard struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
}

type RoomSelectionData struct {
	Rooms []RoomCard
}

// Option is a choice in a select or checkbox group.
type Option struct {
	Value    string
	Selected bool
}

// PreferenceForm holds the values and errors of the design preference form.
type PreferenceForm struct {
	Styles          []Option
	Palettes        []Option
	BudgetMin       int
	BudgetMax       int
	BudgetStep      int
	Budget          int
	BudgetLabel     string
	Requirements    string
	MaxRequirements int
	Errors          map[string]string
}

type DesignGenerationData struct {
	RoomName     string
	RoomImageURL string
	Form         PreferenceForm
}

type DesignCard struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Tags        string
	Price       string
}

// PreferenceSummary is the submitted form as shown next to the options.
type PreferenceSummary struct {
	Style        string
	Budget       string
	Palettes     string
	Requirements string
}

type DesignComparisonData struct {
	RoomName    string
	Designs     []DesignCard
	Preferences PreferenceSummary
}

type BOQRow struct {
	Item       string
	Quantity   int
	UnitPrice  string
	TotalPrice string
}

// ExportLink is a download link for the bill of quantities.
type ExportLink struct {
	Label    string
	URL      string
	FileName string
}

// DesignOverview summarizes the selected design above its bill of quantities.
type DesignOverview struct {
	Description     string
	Style           string
	Pieces          int
	EstimatedCost   string
	AverageLeadTime string
}

// FurnitureCard is one BOQ item with its catalog details. Description,
// Category and LeadTime may be empty.
type FurnitureCard struct {
	Item        string
	Description string
	Category    string
	LeadTime    string
	Quantity    int
	UnitPrice   string
}

type BOQData struct {
	RoomName       string
	DesignTitle    string
	DesignImageURL string
	Overview       DesignOverview
	Furniture      []FurnitureCard
	Rows           []BOQRow
	Total          string
	Exports        []ExportLink
}
