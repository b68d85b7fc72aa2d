package handlers

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"github.com/BadSquidward/roomlab/flow"
	"github.com/BadSquidward/roomlab/templates"
)

// HandleIndex renders the session's current screen: the full page, or just
// the #screen content for htmx requests.
func HandleIndex(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := sessionFor(e, d)
		return renderScreen(e, d, sess.Screen(), screenContent(d, sess.Screen()))
	}
}

// HandleHealth answers liveness probes.
func HandleHealth() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.String(http.StatusOK, "OK")
	}
}

func renderScreen(e *core.RequestEvent, d *Deps, s flow.Screen, content templ.Component) error {
	layout := layoutData(d, s.Page())

	var component templ.Component
	if isHTMX(e) {
		component = templates.Partial(layout, content)
	} else {
		component = templates.Page(layout, content)
	}
	e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(e.Request.Context(), e.Response)
}

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}
