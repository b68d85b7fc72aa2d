package templates

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	if err := c.Render(context.Background(), &sb); err != nil {
		t.Fatalf("render error: %v", err)
	}
	return sb.String()
}

func assertContains(t *testing.T, body string, fragments ...string) {
	t.Helper()
	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected output to contain %q\nbody: %s", frag, body)
		}
	}
}

var testLayout = LayoutData{
	SiteName:  "Interior Synergy",
	Footer:    "© 2023 Interior Synergy. All rights reserved.",
	ActiveNav: "design",
}

func TestPage_WrapsContent(t *testing.T) {
	body := render(t, Page(testLayout, HomeContent()))

	assertContains(t, body,
		"<!doctype html>",
		"<title>Interior Synergy</title>",
		`<main id="screen"`,
		"Transform Your Space with AI-Powered Interior Design",
		"© 2023 Interior Synergy. All rights reserved.",
		`id="toast-container"`,
	)
	if strings.Contains(body, "hx-swap-oob") {
		t.Error("full page should not carry an out-of-band nav bar")
	}
}

func TestPartial_SendsNavbarOutOfBand(t *testing.T) {
	body := render(t, Partial(testLayout, PortfolioContent()))

	assertContains(t, body, "Our Portfolio", `id="navbar"`, `hx-swap-oob="true"`)
	if strings.Contains(body, "<html") {
		t.Error("partial should not render the document shell")
	}
}

func TestNavbar_ActiveEntry(t *testing.T) {
	body := render(t, Navbar(testLayout, false))

	for _, item := range NavItems {
		assertContains(t, body, `action="/nav/`+item.Slug+`"`, ">"+item.Label+"</button>")
	}
	assertContains(t, body, `class="btn btn-ghost active">Design</button>`)
	if strings.Count(body, " active\"") != 1 {
		t.Errorf("expected exactly one active nav entry\nbody: %s", body)
	}
}

func TestHomeContent(t *testing.T) {
	body := render(t, HomeContent())

	assertContains(t, body,
		"How It Works",
		"Select your room",
		"Generate BOQ",
		`action="/start"`,
		">Get Started</button>",
		"photo-1618219740975-d40978bb7378?auto=format&amp;fit=crop&amp;w=1200&amp;q=80",
	)
}

func TestRoomSelectionContent(t *testing.T) {
	data := RoomSelectionData{Rooms: []RoomCard{
		{ID: "kitchen", Name: "Kitchen", Description: "Cook.", ImageURL: "https://img/k"},
		{ID: "bathroom", Name: "Bathroom", Description: "Relax.", ImageURL: "https://img/b"},
	}}
	body := render(t, RoomSelectionContent(data))

	assertContains(t, body,
		"Select Your Room",
		`id="room-kitchen"`,
		"<h3>Kitchen</h3>",
		`action="/rooms/bathroom/select"`,
		"https://img/k?auto=format&amp;fit=crop&amp;w=800&amp;q=80",
	)
	if got := strings.Count(body, ">Select Room</button>"); got != 2 {
		t.Errorf("expected 2 select buttons, got %d", got)
	}
}

func TestDesignGenerationContent(t *testing.T) {
	data := DesignGenerationData{
		RoomName:     "Living Room",
		RoomImageURL: "https://img/lr",
		Form: PreferenceForm{
			Styles:          []Option{{Value: "Modern"}, {Value: "Industrial", Selected: true}},
			Palettes:        []Option{{Value: "Warm", Selected: true}, {Value: "Cool"}},
			BudgetMin:       3000,
			BudgetMax:       20000,
			BudgetStep:      500,
			Budget:          12000,
			BudgetLabel:     "$12,000",
			Requirements:    "pet <friendly>",
			MaxRequirements: 2000,
			Errors:          map[string]string{"budget": "Budget is above the maximum"},
		},
	}
	body := render(t, DesignGenerationContent(data))

	assertContains(t, body,
		"Living Room Design",
		"Design Preferences",
		`<option value="Industrial" selected>`,
		`<option value="Modern">`,
		`value="Warm" checked>`,
		`min="3000"`, `max="20000"`, `step="500"`, `value="12000"`,
		"$12,000",
		"pet &lt;friendly&gt;</textarea>",
		`maxlength="2000"`,
		`id="budget-error"`,
		"Budget is above the maximum",
		"Generate Design Options",
		"Back to Room Selection",
	)
	if strings.Contains(body, `id="style-error"`) {
		t.Error("style error rendered without an error")
	}
}

func TestDesignGenerationContent_NoRequirementsLimit(t *testing.T) {
	body := render(t, DesignGenerationContent(DesignGenerationData{RoomName: "Kitchen"}))

	assertContains(t, body, `<textarea id="requirements" name="requirements" rows="4"></textarea>`)
	if strings.Contains(body, "maxlength") {
		t.Error("maxlength rendered without a limit")
	}
}

func TestDesignComparisonContent(t *testing.T) {
	data := DesignComparisonData{
		RoomName: "Bedroom",
		Designs: []DesignCard{
			{ID: "design1", Title: "Modern Elegance", Tags: "Modern, Minimalist", Price: "$8,500", ImageURL: "https://img/d1"},
		},
		Preferences: PreferenceSummary{Style: "Modern", Budget: "$10,000", Palettes: "Warm, Cool"},
	}
	body := render(t, DesignComparisonContent(data))

	assertContains(t, body,
		"Your Bedroom Design Options",
		`action="/back"`,
		"Regenerate Options",
		"<h3>Modern Elegance</h3>",
		"Modern, Minimalist",
		"<strong>Estimated Cost:</strong> $8,500",
		`action="/designs/design1/select"`,
		"Warm, Cool",
	)
	if strings.Contains(body, "Special Requirements") {
		t.Error("empty requirements should not be listed")
	}
}

func TestBOQContent(t *testing.T) {
	data := BOQData{
		RoomName:       "Kitchen",
		DesignTitle:    "Industrial Chic",
		DesignImageURL: "https://img/d3",
		Rows: []BOQRow{
			{Item: "Sofa", Quantity: 1, UnitPrice: "$1,200", TotalPrice: "$1,200"},
			{Item: "Floor Lamp", Quantity: 2, UnitPrice: "$150", TotalPrice: "$300"},
		},
		Total: "$3,900",
		Exports: []ExportLink{
			{Label: "Download CSV", URL: "/boq/export/csv", FileName: "Kitchen_BOQ.csv"},
		},
	}
	body := render(t, BOQContent(data))

	assertContains(t, body,
		"Bill of Quantities: Industrial Chic",
		"Review the materials and furniture needed for your Kitchen design.",
		"Back to Designs",
		`href="/boq/export/csv"`,
		`download="Kitchen_BOQ.csv"`,
		"<td>Floor Lamp</td>",
		`<td class="num">2</td>`,
		"Total Cost: $3,900",
		`action="/order"`,
	)
	if strings.Contains(body, "Furniture Details") {
		t.Error("furniture section rendered without furniture")
	}
}

func TestBOQContent_OverviewAndFurniture(t *testing.T) {
	data := BOQData{
		RoomName:    "Living Room",
		DesignTitle: "Modern Elegance",
		Rows: []BOQRow{
			{Item: "Sofa", Quantity: 1, UnitPrice: "$1,200", TotalPrice: "$1,200"},
		},
		Total: "$1,500",
		Overview: DesignOverview{
			Description:     "Clean lines and neutral colors.",
			Style:           "Modern, Minimalist",
			Pieces:          2,
			EstimatedCost:   "$1,500",
			AverageLeadTime: "2-3 weeks",
		},
		Furniture: []FurnitureCard{
			{Item: "Sofa", Description: "Three-seater in grey linen", Category: "Seating", LeadTime: "3-4 weeks", Quantity: 1, UnitPrice: "$1,200"},
			{Item: "Vase", Quantity: 3, UnitPrice: "$100"},
		},
	}
	body := render(t, BOQContent(data))

	assertContains(t, body,
		"<h2>Design Overview</h2>",
		"<p>Clean lines and neutral colors.</p>",
		"<dt>Style</dt><dd>Modern, Minimalist</dd>",
		"<dt>Furniture Pieces</dt><dd>2</dd>",
		"<dt>Estimated Cost</dt><dd>$1,500</dd>",
		"<dt>Average Lead Time</dt><dd>2-3 weeks</dd>",
		"<h2>Furniture Details</h2>",
		"<h3>Sofa</h3><p>Three-seater in grey linen</p>",
		"Quantity: 1 at $1,200 each",
		"Lead time: 3-4 weeks",
		`<span class="badge">Seating</span>`,
		"<h3>Vase</h3><p class=\"furniture-line\">Quantity: 3 at $100 each</p></div>",
	)
	if got := strings.Count(body, "Lead time:"); got != 1 {
		t.Errorf("expected lead time on one card, got %d", got)
	}
}

func TestBOQContent_NoLeadTimes(t *testing.T) {
	body := render(t, BOQContent(BOQData{
		Overview: DesignOverview{Pieces: 1, EstimatedCost: "$50"},
	}))

	assertContains(t, body, "<dt>Furniture Pieces</dt><dd>1</dd>")
	for _, frag := range []string{"Average Lead Time", "<dt>Style</dt>"} {
		if strings.Contains(body, frag) {
			t.Errorf("unexpected %q in overview", frag)
		}
	}
}

func TestPortfolioAndContact(t *testing.T) {
	assertContains(t, render(t, PortfolioContent()), "Our Portfolio", PortfolioNotice)
	assertContains(t, render(t, ContactContent()),
		"Contact Us", `name="name"`, `name="email"`, `name="message"`, "Send Message")
}

func TestEscaping(t *testing.T) {
	data := RoomSelectionData{Rooms: []RoomCard{
		{ID: `x" onclick="y`, Name: "<script>alert(1)</script>"},
	}}
	body := render(t, RoomSelectionContent(data))

	if strings.Contains(body, "<script>alert(1)") {
		t.Error("room name was not escaped")
	}
	if strings.Contains(body, `" onclick="`) {
		t.Error("room id broke out of its attribute")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRender_ReturnsWriteError(t *testing.T) {
	err := HomeContent().Render(context.Background(), failingWriter{})
	if err == nil {
		t.Fatal("expected write error")
	}
}
