package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/BadSquidward/roomlab/catalog"
	"github.com/BadSquidward/roomlab/flow"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.Request = req
	e.Response = rec
	return e
}

var testNow = time.Date(2025, time.January, 15, 10, 0, 0, 0, time.UTC)

func newTestDeps(t *testing.T) *Deps {
	t.Helper()
	d := NewDeps(catalog.Default())
	d.Now = func() time.Time { return testNow }
	return d
}

// sessionOn starts a session and drives it through actions.
func sessionOn(t *testing.T, d *Deps, actions ...flow.Action) *flow.Session {
	t.Helper()
	sess := d.Sessions.Create()
	for _, a := range actions {
		if _, err := sess.Apply(context.Background(), d.Machine, a); err != nil {
			t.Fatalf("setup action %s: %v", a.Name(), err)
		}
	}
	return sess
}

// toBOQ are the actions that lead from home to the living room BOQ.
var toBOQ = []flow.Action{
	flow.GetStarted{},
	flow.SelectRoom{RoomID: "living-room"},
	flow.SubmitPreferences{Preferences: flow.Preferences{Style: "Modern", Budget: 10000}},
	flow.SelectDesign{DesignID: "design2"},
}

func withSession(req *http.Request, sess *flow.Session) *http.Request {
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sess.ID})
	return req
}

func htmxRequest(method, target string, form url.Values) *http.Request {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.Header.Set("HX-Request", "true")
	return req
}
