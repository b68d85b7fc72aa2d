package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BadSquidward/roomlab/flow"
	"github.com/BadSquidward/roomlab/testhelpers"
)

func TestHandleIndex_NewVisitor(t *testing.T) {
	d := newTestDeps(t)
	handler := HandleIndex(d)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"<!doctype html>",
		"Interior Synergy",
		"Transform Your Space",
		"© 2023 Interior Synergy. All rights reserved.",
	)
	if testhelpers.FindCookie(rec.Result(), SessionCookieName) == nil {
		t.Error("expected a session cookie for a new visitor")
	}
}

func TestHandleIndex_HTMXPartial(t *testing.T) {
	d := newTestDeps(t)
	sess := sessionOn(t, d, flow.NavPortfolio{})
	handler := HandleIndex(d)

	req := withSession(htmxRequest(http.MethodGet, "/", nil), sess)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	body := rec.Body.String()
	testhelpers.AssertHTMLContains(t, body, "Our Portfolio", `hx-swap-oob="true"`)
	testhelpers.AssertHTMLNotContains(t, body, "<html")
}

func TestHandleIndex_RendersEveryScreen(t *testing.T) {
	prefs := flow.Preferences{Style: "Industrial", Budget: 15000, Palettes: []string{"Bold"}, Requirements: "Home bar"}
	tests := []struct {
		name    string
		actions []flow.Action
		want    []string
	}{
		{"home", nil, []string{"How It Works", "Get Started"}},
		{"room selection", []flow.Action{flow.GetStarted{}}, []string{
			"Select Your Room", "Living Room", "Bedroom", "Kitchen", "Dining Room", "Home Office", "Bathroom",
		}},
		{"design generation", []flow.Action{flow.GetStarted{}, flow.SelectRoom{RoomID: "kitchen"}}, []string{
			"Kitchen Design", `<option value="Modern" selected>`, `value="10000"`, "$10,000", "Back to Room Selection",
		}},
		{"design generation prefilled after back", []flow.Action{
			flow.GetStarted{}, flow.SelectRoom{RoomID: "kitchen"},
			flow.SubmitPreferences{Preferences: prefs}, flow.Back{},
		}, []string{
			`<option value="Industrial" selected>`, `value="15000"`, `value="Bold" checked>`, "Home bar",
		}},
		{"design comparison", []flow.Action{
			flow.GetStarted{}, flow.SelectRoom{RoomID: "bedroom"}, flow.SubmitPreferences{Preferences: prefs},
		}, []string{
			"Your Bedroom Design Options", "Modern Elegance", "Scandinavian Comfort", "Industrial Chic",
			"$8,500", "$7,200", "$9,100", "Modern, Minimalist", "$15,000",
		}},
		{"boq", toBOQ, []string{
			"Bill of Quantities: Scandinavian Comfort",
			"Review the materials and furniture needed for your Living Room design.",
			"<td>Accent Chair</td>", "Total Cost: $3,900", "Place Order",
			`href="/boq/export/csv"`, `download="Living Room_BOQ.csv"`,
			`href="/boq/export/xlsx"`, `href="/boq/export/pdf"`,
			"<h2>Design Overview</h2>", "<dt>Style</dt><dd>Scandinavian, Cozy</dd>",
			"<dt>Furniture Pieces</dt><dd>8</dd>", "<dt>Estimated Cost</dt><dd>$3,900</dd>",
			"<dt>Average Lead Time</dt><dd>2-3 weeks</dd>",
			"Upholstered lounge chair with solid oak legs", "Lead time: 3-4 weeks", `<span class="badge">Seating</span>`,
		}},
		{"portfolio", []flow.Action{flow.NavPortfolio{}}, []string{"Our Portfolio", "under construction"}},
		{"contact", []flow.Action{flow.NavContact{}}, []string{"Contact Us", "Send Message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDeps(t)
			sess := sessionOn(t, d, tt.actions...)

			req := withSession(htmxRequest(http.MethodGet, "/", nil), sess)
			rec := httptest.NewRecorder()
			if err := HandleIndex(d)(newTestRequestEvent(req, rec)); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			testhelpers.AssertHTMLContains(t, rec.Body.String(), tt.want...)
		})
	}
}

func TestHandleIndex_NavHighlight(t *testing.T) {
	tests := []struct {
		page flow.Page
		want string
	}{
		{flow.PageHome, "home"},
		{flow.PageRoomSelection, "design"},
		{flow.PageDesignGeneration, "design"},
		{flow.PageDesignComparison, "design"},
		{flow.PageBOQGeneration, "design"},
		{flow.PagePortfolio, "portfolio"},
		{flow.PageContact, "contact"},
	}
	for _, tt := range tests {
		if got := navSlug(tt.page); got != tt.want {
			t.Errorf("navSlug(%s) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()

	if err := HandleHealth()(newTestRequestEvent(req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("expected 200 OK, got %d %q", rec.Code, rec.Body.String())
	}
}
