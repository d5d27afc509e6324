package httpserver_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	httpserver "github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/http_server"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/app"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/i18n"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/storage/memory"
)

const testSecret = "s3cret"

func newTestServer(t *testing.T, store *memory.Store) *httptest.Server {
	t.Helper()

	bundle, err := i18n.NewEmbedded()
	if err != nil {
		t.Fatalf("NewEmbedded: %v", err)
	}
	cache := memory.NewCache()

	h := &httpserver.Handlers{
		Admin:       app.NewAdminService(store, cache, time.Minute),
		Contacts:    app.NewContactService(store, cache),
		Analytics:   app.NewAnalyticsService(store),
		Bundle:      bundle,
		DefaultLang: domain.LangEN,
		Secret:      testSecret,
	}
	s := httpserver.New()
	s.MountHandlers(h)

	srv := httptest.NewServer(s.Mux())
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &http.Client{Jar: jar}
}

func getJSON(t *testing.T, c *http.Client, url string, out any) *http.Response {
	t.Helper()
	resp, err := c.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

func postJSON(t *testing.T, c *http.Client, url string, body any, out any) *http.Response {
	t.Helper()
	b, _ := json.Marshal(body)
	resp, err := c.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

// eventually polls f until it returns true or the deadline passes.
func eventually(t *testing.T, d time.Duration, f func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if f() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return f()
}

func TestContactSubmitAndValidation(t *testing.T) {
	store := memory.NewEmptyStore()
	srv := newTestServer(t, store)
	c := newClient(t)

	var out struct {
		Message string `json:"message"`
	}
	resp := postJSON(t, c, srv.URL+"/contact-us", map[string]string{
		"name": "Jane", "email": "jane@example.com", "message": "Planning a honeymoon in the Maldives.",
	}, &out)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	if out.Message == "" || out.Message == "contact.success_message" {
		t.Fatalf("expected translated success message, got %q", out.Message)
	}

	msgs, err := store.ListContacts(resp.Request.Context())
	if err != nil {
		t.Fatalf("ListContacts: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Name != "Jane" || msgs[0].Language != domain.LangEN {
		t.Fatalf("stored = %+v", msgs)
	}

	// blank message is rejected and not stored
	resp = postJSON(t, c, srv.URL+"/contact-us", map[string]string{
		"name": "Jane", "email": "jane@example.com", "message": "   ",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if n, _ := store.CountContacts(resp.Request.Context()); n != 1 {
		t.Fatalf("contacts = %d, want 1", n)
	}
}

func TestPageViewLoggedForPublicPagesOnly(t *testing.T) {
	store := memory.NewEmptyStore()
	srv := newTestServer(t, store)
	c := newClient(t)

	resp := getJSON(t, c, srv.URL+"/destinations", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	// the write is async; wait for it
	ok := eventually(t, 2*time.Second, func() bool {
		n, _ := store.CountPageViews(resp.Request.Context())
		return n == 1
	})
	if !ok {
		t.Fatal("page view was never recorded")
	}

	// admin traffic must never be counted
	getJSON(t, c, srv.URL+"/admin", nil)
	getJSON(t, c, srv.URL+"/admin/messages", nil)
	time.Sleep(50 * time.Millisecond)
	if n, _ := store.CountPageViews(resp.Request.Context()); n != 1 {
		t.Fatalf("page views = %d, want 1", n)
	}
}

func TestLoginFlowAndAdminGate(t *testing.T) {
	store := memory.NewStore() // seeded: 123 views, 2 contacts
	srv := newTestServer(t, store)
	c := newClient(t)

	// gate closed
	resp := getJSON(t, c, srv.URL+"/admin", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}

	// wrong password
	resp = postJSON(t, c, srv.URL+"/login", map[string]string{"password": "nope"}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("login status = %d, want 401", resp.StatusCode)
	}
	resp = getJSON(t, c, srv.URL+"/admin", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status after bad login = %d, want 401", resp.StatusCode)
	}

	// correct password opens the gate for this session
	resp = postJSON(t, c, srv.URL+"/login", map[string]string{"password": testSecret}, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, want 200", resp.StatusCode)
	}

	var stats struct {
		PageViews int `json:"page_views"`
		Messages  int `json:"messages"`
	}
	resp = getJSON(t, c, srv.URL+"/admin", &stats)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("admin status = %d, want 200", resp.StatusCode)
	}
	if stats.PageViews != 123 || stats.Messages != 2 {
		t.Fatalf("stats = %+v", stats)
	}

	var list struct {
		Messages []struct {
			Name string `json:"name"`
		} `json:"messages"`
	}
	getJSON(t, c, srv.URL+"/admin/messages", &list)
	if len(list.Messages) != 2 || list.Messages[0].Name != "David Chen" {
		t.Fatalf("messages = %+v, want newest first", list.Messages)
	}

	// logout closes the gate again
	resp = postJSON(t, c, srv.URL+"/logout", nil, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}
	resp = getJSON(t, c, srv.URL+"/admin", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status after logout = %d, want 401", resp.StatusCode)
	}
}

func TestDestinationsFiltering(t *testing.T) {
	srv := newTestServer(t, memory.NewEmptyStore())
	c := newClient(t)

	var page struct {
		Packages []struct {
			Slug   string `json:"slug"`
			Price  int    `json:"price"`
			Nights int    `json:"nights"`
		} `json:"packages"`
	}

	getJSON(t, c, srv.URL+"/destinations", &page)
	if len(page.Packages) != 10 {
		t.Fatalf("unfiltered = %d packages, want 10", len(page.Packages))
	}

	getJSON(t, c, srv.URL+"/destinations?category=cultural&price=15000_to_25000", &page)
	want := []string{"venice", "new_york", "london", "santorini"}
	if len(page.Packages) != len(want) {
		t.Fatalf("filtered = %d packages, want %d", len(page.Packages), len(want))
	}
	for i, w := range want {
		if page.Packages[i].Slug != w {
			t.Fatalf("packages[%d] = %q, want %q (catalog order must be preserved)", i, page.Packages[i].Slug, w)
		}
		if page.Packages[i].Price < 15000 || page.Packages[i].Price > 25000 {
			t.Fatalf("package %q price %d outside bucket", w, page.Packages[i].Price)
		}
	}
}

func TestLanguageSwitchChangesContentAndDirection(t *testing.T) {
	srv := newTestServer(t, memory.NewEmptyStore())
	c := newClient(t)

	var home struct {
		Meta  struct{ Direction string } `json:"meta"`
		Title string                     `json:"title"`
	}
	getJSON(t, c, srv.URL+"/", &home)
	if home.Meta.Direction != "ltr" {
		t.Fatalf("default direction = %q, want ltr", home.Meta.Direction)
	}
	enTitle := home.Title

	var sw struct {
		Language  string `json:"language"`
		Direction string `json:"direction"`
	}
	resp := postJSON(t, c, srv.URL+"/language", map[string]string{"language": "ar"}, &sw)
	if resp.StatusCode != http.StatusOK || sw.Language != "ar" || sw.Direction != "rtl" {
		t.Fatalf("switch = %d %+v", resp.StatusCode, sw)
	}

	// cookie persists the choice across requests
	getJSON(t, c, srv.URL+"/", &home)
	if home.Meta.Direction != "rtl" {
		t.Fatalf("direction after switch = %q, want rtl", home.Meta.Direction)
	}
	if home.Title == enTitle {
		t.Fatalf("title did not change with language: %q", home.Title)
	}
}

func TestThemeToggle(t *testing.T) {
	srv := newTestServer(t, memory.NewEmptyStore())
	c := newClient(t)

	var out struct {
		Theme string `json:"theme"`
	}
	postJSON(t, c, srv.URL+"/theme/toggle", nil, &out)
	if out.Theme != "dark" {
		t.Fatalf("first toggle = %q, want dark", out.Theme)
	}
	postJSON(t, c, srv.URL+"/theme/toggle", nil, &out)
	if out.Theme != "light" {
		t.Fatalf("second toggle = %q, want light", out.Theme)
	}
}

func TestUnknownSlugReturnsTranslated404(t *testing.T) {
	srv := newTestServer(t, memory.NewEmptyStore())
	c := newClient(t)

	resp, err := c.Get(srv.URL + "/destinations/atlantis")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	var p struct {
		Detail string `json:"detail"`
		Link   string `json:"link"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Detail == "" || p.Detail == "not_found.destination" {
		t.Fatalf("expected translated detail, got %q", p.Detail)
	}
	if p.Link != "/destinations" {
		t.Fatalf("link = %q, want /destinations", p.Link)
	}
}

func TestETagShortCircuits(t *testing.T) {
	srv := newTestServer(t, memory.NewEmptyStore())
	c := newClient(t)

	resp := getJSON(t, c, srv.URL+"/about-us", nil)
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag")
	}

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/about-us", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := c.Do(req)
	if err != nil {
		t.Fatalf("conditional GET: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", resp2.StatusCode)
	}
}
