package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Zachkp/folio/content"
	"github.com/Zachkp/folio/internal/catalog"
	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/metrics"
	"github.com/Zachkp/folio/internal/profile"
)

func newSite(t *testing.T) *Site {
	t.Helper()
	p, err := profile.Load(content.FS, content.ProfileFile)
	if err != nil {
		t.Fatalf("profile.Load() error = %v", err)
	}
	c, err := catalog.Load(content.FS, content.ProjectsDir)
	if err != nil {
		t.Fatalf("catalog.Load() error = %v", err)
	}
	return NewSite(p, c)
}

func newRouter(t *testing.T, m *metrics.Metrics) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	cfg := config.Config{Port: "0", StaticDir: dir, ImagesDir: dir, PDFDir: dir}
	srv, err := NewServer(cfg, newSite(t), m)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv.Router()
}

func get(r http.Handler, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// lastCookie returns the final Set-Cookie value for name, which is the one a
// browser keeps.
func lastCookie(rec *httptest.ResponseRecorder, name string) string {
	value := ""
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			value = c.Value
		}
	}
	return value
}

func TestHomeListsProjectsAndSections(t *testing.T) {
	rec := get(newRouter(t, nil), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		`href="/projects/b-call-app"`,
		`id="home"`, `id="about"`, `id="skills"`, `id="projects"`, `id="contact"`,
		`data-section="skills"`,
		">Home<",
		"Frontend-leaning Web Developer",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("home page missing %q", want)
		}
	}
	if strings.Contains(body, `class="dark"`) {
		t.Error("default theme should be light")
	}
}

func TestHomeUsesThemeCookie(t *testing.T) {
	rec := get(newRouter(t, nil), "/", &http.Cookie{Name: "theme", Value: "dark"})
	if !strings.Contains(rec.Body.String(), `<html lang="en" class="dark">`) {
		t.Fatal("expected dark class on root element")
	}
}

func TestProjectDetail(t *testing.T) {
	rec := get(newRouter(t, nil), "/projects/b-call-app")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<h1>B-Call App</h1>") {
		t.Error("missing title")
	}
	if !strings.Contains(body, "<p>A mobile application designed") {
		t.Error("missing rendered paragraph")
	}
	if strings.Contains(body, "Live Demo") || strings.Contains(body, "View Code") {
		t.Error("placeholder links should be hidden")
	}
	if !strings.Contains(body, `href="/"`) {
		t.Error("missing link back to listing")
	}
}

func TestProjectNotFound(t *testing.T) {
	rec := get(newRouter(t, nil), "/projects/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Project not found") {
		t.Error("missing not-found heading")
	}
	if !strings.Contains(body, `<a href="/" class="back">Back to portfolio</a>`) {
		t.Error("missing link back to listing")
	}
}

func TestUnknownRouteRendersNotFound(t *testing.T) {
	rec := get(newRouter(t, nil), "/nope/deeper")
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "Back to portfolio") {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestToggleTheme(t *testing.T) {
	m := metrics.New()
	r := newRouter(t, m)

	form := url.Values{"return": {"/projects/b-call-app"}}
	req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/projects/b-call-app" {
		t.Fatalf("Location = %q", loc)
	}
	if got := lastCookie(rec, "theme"); got != "dark" {
		t.Fatalf("theme cookie = %q, want dark", got)
	}
	n, err := testutil.GatherAndCount(m.Registry(), "folio_theme_toggles_total")
	if err != nil || n != 1 {
		t.Fatalf("toggle series = %d, %v", n, err)
	}
}

func TestSafeReturn(t *testing.T) {
	tests := map[string]string{
		"":                     "/",
		"/":                    "/",
		"/projects/x":          "/projects/x",
		"//evil.example":       "/",
		"https://evil.example": "/",
		"/\\evil.example":      "/",
		"/\t/evil.example":     "/",
		"/\n/evil.example":     "/",
		"/\r/evil.example":     "/",
		"/\x7f/evil.example":   "/",
		"/projects/x?a=1":      "/projects/x?a=1",
	}
	for in, want := range tests {
		if got := safeReturn(in); got != want {
			t.Errorf("safeReturn(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToggleThemeRejectsControlCharacterRedirect(t *testing.T) {
	r := newRouter(t, nil)
	for _, target := range []string{"/\t/evil.example", "/\n/evil.example"} {
		form := url.Values{"return": {target}}
		req := httptest.NewRequest(http.MethodPost, "/theme", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if loc := rec.Header().Get("Location"); loc != "/" {
			t.Errorf("return %q: Location = %q, want /", target, loc)
		}
	}
}

func countCookies(rec *httptest.ResponseRecorder, name string) int {
	n := 0
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			n++
		}
	}
	return n
}

func TestThemeCookieWrittenOnlyOnChange(t *testing.T) {
	r := newRouter(t, nil)

	rec := get(r, "/", &http.Cookie{Name: "theme", Value: "dark"})
	if n := countCookies(rec, "theme"); n != 0 {
		t.Fatalf("unchanged theme sent %d cookies, want 0", n)
	}

	rec = get(r, "/")
	if n := countCookies(rec, "theme"); n != 1 || lastCookie(rec, "theme") != "light" {
		t.Fatalf("first visit: %d cookies, value %q", n, lastCookie(rec, "theme"))
	}

	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "light"})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if n := countCookies(rec, "theme"); n != 1 || lastCookie(rec, "theme") != "dark" {
		t.Fatalf("toggle: %d cookies, value %q", n, lastCookie(rec, "theme"))
	}
}

func TestHealthz(t *testing.T) {
	rec := get(newRouter(t, nil), "/healthz")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"projects":6`) {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	if err := Export(newSite(t), dir, true, nil); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	for _, rel := range []string{"index.html", "404.html", "projects/b-call-app/index.html"} {
		raw, err := os.ReadFile(filepath.Join(dir, rel))
		if err != nil {
			t.Fatalf("read %s: %v", rel, err)
		}
		if !strings.Contains(string(raw), `class="dark"`) {
			t.Errorf("%s not rendered dark", rel)
		}
	}
}

func TestExportCopiesAssets(t *testing.T) {
	static := t.TempDir()
	for name, data := range map[string]string{
		"boot.js":      "boot",
		"folio.wasm":   "wasm",
		"wasm_exec.js": "exec",
	} {
		if err := os.WriteFile(filepath.Join(static, name), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	dir := t.TempDir()
	assets := map[string]string{
		"static": static,
		"images": filepath.Join(t.TempDir(), "missing"),
	}
	if err := Export(newSite(t), dir, false, assets); err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	for _, name := range []string{"boot.js", "folio.wasm", "wasm_exec.js"} {
		if _, err := os.Stat(filepath.Join(dir, "static", name)); err != nil {
			t.Errorf("static/%s not exported: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "images")); err == nil {
		t.Error("missing asset directory should be skipped")
	}
}

func TestPagesLoadBrowserModule(t *testing.T) {
	body := get(newRouter(t, nil), "/").Body.String()
	for _, src := range []string{"/static/wasm_exec.js", "/static/boot.js"} {
		if !strings.Contains(body, src) {
			t.Errorf("page does not load %s", src)
		}
	}
}
