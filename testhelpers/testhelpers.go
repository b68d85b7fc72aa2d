// Package testhelpers provides utilities for testing the PocketBase app and
// its handlers.
package testhelpers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory
// and bootstraps it. The directory is cleaned up when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: t.TempDir(),
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	return app
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML not to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertRedirect checks for a 302 to the expected location.
func AssertRedirect(t *testing.T, resp *http.Response, expectedURL string) {
	t.Helper()

	if resp.StatusCode != http.StatusFound {
		t.Errorf("expected status 302, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != expectedURL {
		t.Errorf("expected Location %q, got %q", expectedURL, loc)
	}
}

// AssertToast checks the showToast payload of an HX-Trigger header.
func AssertToast(t *testing.T, headerVal, toastType, message string) {
	t.Helper()

	if headerVal == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}
	var parsed map[string]map[string]string
	if err := json.Unmarshal([]byte(headerVal), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	toast, ok := parsed["showToast"]
	if !ok {
		t.Fatalf("expected showToast key in HX-Trigger %s", headerVal)
	}
	if toast["type"] != toastType {
		t.Errorf("expected toast type %q, got %q", toastType, toast["type"])
	}
	if toast["message"] != message {
		t.Errorf("expected toast message %q, got %q", message, toast["message"])
	}
}

// FindCookie returns the named cookie set on resp, or nil.
func FindCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
