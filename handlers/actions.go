package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"github.com/BadSquidward/roomlab/flow"
	"github.com/BadSquidward/roomlab/templates"
)

// HandleNav serves the nav bar buttons: home, design, portfolio and contact.
func HandleNav(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		a, ok := flow.NavAction(e.Request.PathValue("page"))
		if !ok {
			return ErrorToast(e, http.StatusNotFound, "Page not found")
		}
		return applyAction(e, d, a)
	}
}

func HandleGetStarted(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return applyAction(e, d, flow.GetStarted{})
	}
}

func HandleSelectRoom(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return applyAction(e, d, flow.SelectRoom{RoomID: e.Request.PathValue("id")})
	}
}

// HandleSubmitPreferences validates the preference form and moves on to the
// design options. An invalid form is rendered again with its field errors.
func HandleSubmitPreferences(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		sess := sessionFor(e, d)

		prefs, err := ParsePreferencesForm(e.Request.PostForm, d.Catalog.Preferences)
		if err == nil {
			var notice flow.Notice
			notice, err = sess.Apply(e.Request.Context(), d.Machine, flow.SubmitPreferences{Preferences: prefs})
			if err == nil {
				return afterAction(e, d, sess, notice)
			}
		}

		if errors.Is(err, flow.ErrInvalidPreferences) {
			gen, ok := sess.Screen().(flow.DesignGeneration)
			if !ok {
				return ErrorToast(e, http.StatusConflict, invalidActionMessage)
			}
			SetToast(e, "warning", "Please correct the highlighted fields.")
			content := templates.DesignGenerationContent(
				designGenerationData(d.Catalog, gen.Room, prefs, flow.FieldErrors(err)),
			)
			return renderScreen(e, d, gen, content)
		}
		return actionError(e, flow.SubmitPreferences{}, err)
	}
}

func HandleBack(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return applyAction(e, d, flow.Back{})
	}
}

func HandleRegenerate(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return applyAction(e, d, flow.Regenerate{})
	}
}

func HandleSelectDesign(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return applyAction(e, d, flow.SelectDesign{DesignID: e.Request.PathValue("id")})
	}
}

func HandlePlaceOrder(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return applyAction(e, d, flow.PlaceOrder{})
	}
}

// HandleSendMessage accepts the contact form. The fields are not validated
// and the message is not stored.
func HandleSendMessage(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}
		msg := flow.ContactMessage{
			Name:    strings.TrimSpace(e.Request.PostFormValue("name")),
			Email:   strings.TrimSpace(e.Request.PostFormValue("email")),
			Message: strings.TrimSpace(e.Request.PostFormValue("message")),
		}
		return applyAction(e, d, flow.SendMessage{Message: msg})
	}
}

const invalidActionMessage = "That action is not available on this screen."

// applyAction runs a on the visitor's session and answers with the new screen.
func applyAction(e *core.RequestEvent, d *Deps, a flow.Action) error {
	sess := sessionFor(e, d)
	notice, err := sess.Apply(e.Request.Context(), d.Machine, a)
	if err != nil {
		return actionError(e, a, err)
	}
	return afterAction(e, d, sess, notice)
}

// afterAction renders the new screen for htmx, or redirects home so a plain
// form post does not resubmit on reload.
func afterAction(e *core.RequestEvent, d *Deps, sess *flow.Session, notice flow.Notice) error {
	NoticeToast(e, notice)
	if !isHTMX(e) {
		return e.Redirect(http.StatusFound, "/")
	}
	s := sess.Screen()
	return renderScreen(e, d, s, screenContent(d, s))
}

func actionError(e *core.RequestEvent, a flow.Action, err error) error {
	switch {
	case errors.Is(err, flow.ErrInvalidAction):
		log.Printf("actions: %v", err)
		return ErrorToast(e, http.StatusConflict, invalidActionMessage)
	case errors.Is(err, flow.ErrUnknownRoom):
		return ErrorToast(e, http.StatusNotFound, "Room not found")
	case errors.Is(err, flow.ErrUnknownDesign):
		return ErrorToast(e, http.StatusNotFound, "Design option not found")
	default:
		log.Printf("actions: %s failed: %v", a.Name(), err)
		return ErrorToast(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
	}
}
