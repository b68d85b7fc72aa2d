package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"github.com/BadSquidward/roomlab/flow"
)

type contextKey string

const SessionKey contextKey = "session"

// SessionCookieName holds the id of the visitor's flow session.
const SessionCookieName = "interior_session"

// GetSession extracts the session stored by SessionMiddleware.
func GetSession(r *http.Request) *flow.Session {
	if val, ok := r.Context().Value(SessionKey).(*flow.Session); ok {
		return val
	}
	return nil
}

// SessionMiddleware resolves the visitor's session from the cookie, starting
// a new one when the cookie is missing or stale, and stores it in the request
// context.
func SessionMiddleware(d *Deps) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sess := resolveSession(e, d)
		ctx := context.WithValue(e.Request.Context(), SessionKey, sess)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// sessionFor returns the session from the context, falling back to the
// cookie when the middleware did not run.
func sessionFor(e *core.RequestEvent, d *Deps) *flow.Session {
	if sess := GetSession(e.Request); sess != nil {
		return sess
	}
	return resolveSession(e, d)
}

func resolveSession(e *core.RequestEvent, d *Deps) *flow.Session {
	if cookie, err := e.Request.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if sess, ok := d.Sessions.Get(cookie.Value); ok {
			return sess
		}
		log.Printf("middleware: session %s not found, starting a new one", cookie.Value)
	}

	sess := d.Sessions.Create()
	http.SetCookie(e.Response, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}
