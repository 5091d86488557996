package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"portfolio/internal/config"
	"portfolio/internal/content"
	applog "portfolio/internal/log"
	"portfolio/internal/repos"
	"portfolio/internal/server"
)

func testConfig() config.Config {
	return config.Config{
		Port:           "0",
		StateBackend:   "sqlite",
		DBDSN:          ":memory:",
		StateTTL:       30 * time.Minute,
		APITestLatency: 20 * time.Millisecond,
		RateLimit:      1000,
		ResumeURL:      "https://example.com/resume.pdf",
	}
}

// newApp builds the full application on an in-memory SQLite store.
func newApp(t *testing.T, tweak func(*config.Config)) *fiber.App {
	t.Helper()
	cfg := testConfig()
	if tweak != nil {
		tweak(&cfg)
	}
	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	app, _, err := server.New(cfg, content.MustLoad(), repos.NewStateRepo(db, cfg.StateTTL))
	if err != nil {
		t.Fatalf("server: %v", err)
	}
	return app
}

// captureLogs routes the app logger into an in-memory observer for the test.
func captureLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	applog.Set(zap.New(core))
	t.Cleanup(func() { applog.Set(nil) })
	return logs
}

// page is a freshly loaded demo page: its CSRF cookie and its scope.
type page struct {
	csrf  string
	scope string
	doc   *goquery.Document
}

func openPage(t *testing.T, app *fiber.App, path string) page {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", path, resp.StatusCode)
	}
	p := page{doc: parse(t, resp)}
	for _, c := range resp.Cookies() {
		if c.Name == "csrf_" {
			p.csrf = c.Value
		}
	}
	if p.csrf == "" {
		t.Fatalf("GET %s: csrf cookie missing", path)
	}
	p.scope, _ = p.doc.Find(`input[name="scope"]`).First().Attr("value")
	if p.scope == "" {
		t.Fatalf("GET %s: scope field missing", path)
	}
	return p
}

// post submits a form the way the page would, with the page's CSRF token
// and scope filled in unless the caller set them.
func (p page) post(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	if form == nil {
		form = url.Values{}
	}
	if _, ok := form["csrf"]; !ok {
		form.Set("csrf", p.csrf)
	}
	if _, ok := form["scope"]; !ok {
		form.Set("scope", p.scope)
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "csrf_", Value: p.csrf})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	return resp
}

func parse(t *testing.T, resp *http.Response) *goquery.Document {
	t.Helper()
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(b)
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("expected %d, got %d", want, resp.StatusCode)
	}
}

func text(doc *goquery.Document, sel string) string {
	return strings.TrimSpace(doc.Find(sel).First().Text())
}
