package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase/apis"

	"github.com/BadSquidward/roomlab/catalog"
	"github.com/BadSquidward/roomlab/handlers"
	"github.com/BadSquidward/roomlab/services"
	"github.com/BadSquidward/roomlab/testhelpers"
)

type testClient struct {
	t      *testing.T
	base   string
	client *http.Client
}

func newTestServer(t *testing.T) (*testClient, *handlers.Deps) {
	t.Helper()

	app := testhelpers.NewTestApp(t)
	d := handlers.NewDeps(catalog.Default())

	r, err := apis.NewRouter(app)
	if err != nil {
		t.Fatalf("failed to create router: %v", err)
	}
	registerRoutes(r, d)

	mux, err := r.BuildMux()
	if err != nil {
		t.Fatalf("failed to build mux: %v", err)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	return &testClient{t: t, base: srv.URL, client: client}, d
}

// post sends an htmx form post and returns status and body.
func (c *testClient) post(path string, form url.Values) (int, string) {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodPost, c.base+path, strings.NewReader(form.Encode()))
	if err != nil {
		c.t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return c.do(req)
}

func (c *testClient) get(path string) (int, string) {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodGet, c.base+path, nil)
	if err != nil {
		c.t.Fatal(err)
	}
	return c.do(req)
}

func (c *testClient) do(req *http.Request) (int, string) {
	c.t.Helper()
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestEndToEnd_DesignFlow(t *testing.T) {
	c, d := newTestServer(t)

	code, body := c.get("/")
	if code != http.StatusOK {
		t.Fatalf("GET / = %d", code)
	}
	testhelpers.AssertHTMLContains(t, body, "Transform Your Space", `id="navbar"`)

	steps := []struct {
		path string
		form url.Values
		want string
	}{
		{"/start", nil, "Select Your Room"},
		{"/rooms/bedroom/select", nil, "Bedroom Design"},
		{"/preferences", url.Values{"style": {"Traditional"}, "budget": {"8000"}, "palette": {"Neutral"}}, "Your Bedroom Design Options"},
		{"/designs/regenerate", nil, "Modern Elegance"},
		{"/designs/design1/select", nil, "Bill of Quantities: Modern Elegance"},
		{"/order", nil, "Total Cost: $3,900"},
	}
	for _, s := range steps {
		code, body := c.post(s.path, s.form)
		if code != http.StatusOK {
			t.Fatalf("POST %s = %d: %s", s.path, code, body)
		}
		testhelpers.AssertHTMLContains(t, body, s.want)
	}

	code, body = c.get("/boq/export/csv")
	if code != http.StatusOK {
		t.Fatalf("csv export = %d: %s", code, body)
	}
	items, err := services.ParseBOQCSV(strings.NewReader(body))
	if err != nil {
		t.Fatalf("exported csv: %v", err)
	}
	if services.BOQTotal(items) != 3900 || len(items) != 8 {
		t.Errorf("unexpected export: %d items totalling %d", len(items), services.BOQTotal(items))
	}

	if d.Sessions.Len() != 1 {
		t.Errorf("expected one session for one visitor, got %d", d.Sessions.Len())
	}
}

func TestEndToEnd_InvalidActionIsRejected(t *testing.T) {
	c, _ := newTestServer(t)

	code, _ := c.post("/designs/design1/select", nil)
	if code != http.StatusConflict {
		t.Errorf("select design from home = %d, want 409", code)
	}

	code, _ = c.get("/boq/export/pdf")
	if code != http.StatusConflict {
		t.Errorf("export from home = %d, want 409", code)
	}

	_, body := c.get("/")
	testhelpers.AssertHTMLContains(t, body, "How It Works")
}

func TestEndToEnd_PlainFormPostRedirects(t *testing.T) {
	c, _ := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPost, c.base+"/nav/contact", nil)
	code, _ := c.do(req)
	if code != http.StatusFound {
		t.Fatalf("plain POST = %d, want 302", code)
	}

	_, body := c.get("/")
	testhelpers.AssertHTMLContains(t, body, "Contact Us")
}

func TestEndToEnd_Health(t *testing.T) {
	c, d := newTestServer(t)

	code, body := c.get("/healthz")
	if code != http.StatusOK || body != "OK" {
		t.Errorf("GET /healthz = %d %q", code, body)
	}
	if d.Sessions.Len() != 0 {
		t.Error("health checks should not start sessions")
	}
}

func TestLoadCatalog(t *testing.T) {
	c, err := loadCatalog("")
	if err != nil {
		t.Fatalf("built-in catalog: %v", err)
	}
	if len(c.Rooms) != 6 {
		t.Errorf("expected 6 rooms, got %d", len(c.Rooms))
	}

	if _, err := loadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestCatalogCommand(t *testing.T) {
	path := ""
	cmd := newCatalogCommand(&path)

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("catalog command: %v", err)
	}

	testhelpers.AssertHTMLContains(t, out.String(),
		"Interior Synergy",
		"Rooms (6)",
		"living-room",
		"Designs (3)",
		"Industrial Chic",
		"$9,100",
		"Bill of quantities (8 items)",
		"$3,900",
	)
}

func TestCatalogCommand_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("rooms: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cmd := newCatalogCommand(&path)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected validation error")
	}
}
