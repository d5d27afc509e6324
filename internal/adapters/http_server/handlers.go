package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/app"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/auth"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/catalog"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/filter"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/i18n"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/theme"
)

type Handlers struct {
	Admin     *app.AdminService
	Contacts  *app.ContactService
	Analytics *app.AnalyticsService

	Bundle      *i18n.Bundle
	DefaultLang domain.Language
	Secret      string // admin password
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
	Link   string `json:"link,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("ok"))
	})

	// public pages; every GET here is counted
	s.mux.Group(func(r chi.Router) {
		r.Use(PageViews(h.Analytics))
		r.Get("/", h.home)
		r.Get("/about-us", h.aboutUs)
		r.Get("/services", h.services)
		r.Get("/destinations", h.destinations)
		r.Get("/destinations/{slug}", h.destinationDetail)
		r.Get("/map", h.mapPage)
		r.Get("/contact-us", h.contactPage)
		r.Get("/blog", h.blogIndex)
		r.Get("/blog/{slug}", h.blogPost)
	})

	s.mux.Post("/contact-us", h.submitContact)
	s.mux.Post("/language", h.setLanguage)
	s.mux.Post("/theme/toggle", h.toggleTheme)
	s.mux.Post("/login", h.login)
	s.mux.Post("/logout", h.logout)

	// admin area; never counted, gated by the session flag
	s.mux.Group(func(r chi.Router) {
		r.Use(RequireAdmin(h.rejectUnauthenticated))
		r.Get("/admin", h.adminStats)
		r.Get("/admin/messages", h.adminMessages)
	})
}

// ---- per-request state ----

// locale builds the visitor's language state: persisted cookie first,
// ?lang override wins and persists, Accept-Language only seeds the
// fallback.
func (h *Handlers) locale(w http.ResponseWriter, r *http.Request) *i18n.Store {
	fb := h.DefaultLang
	if strings.HasPrefix(strings.ToLower(r.Header.Get("Accept-Language")), "ar") {
		fb = domain.LangAR
	}
	st := i18n.NewStore(h.Bundle, durableCookies(w, r), fb)
	if q := r.URL.Query().Get("lang"); q != "" {
		if lang, ok := domain.ParseLanguage(q); ok {
			st.SetLanguage(lang)
		}
	}
	return st
}

func (h *Handlers) themeStore(w http.ResponseWriter, r *http.Request) *theme.Store {
	hint := domain.ThemeLight
	if r.Header.Get("Sec-CH-Prefers-Color-Scheme") == "dark" {
		hint = domain.ThemeDark
	}
	return theme.NewStore(durableCookies(w, r), hint)
}

type pageMeta struct {
	Language  domain.Language  `json:"language"`
	Direction string           `json:"direction"`
	Theme     domain.ThemeMode `json:"theme"`
}

func (h *Handlers) meta(w http.ResponseWriter, r *http.Request, loc *i18n.Store) pageMeta {
	return pageMeta{
		Language:  loc.Language(),
		Direction: loc.Direction(),
		Theme:     h.themeStore(w, r).Current(),
	}
}

// ---- response helpers ----

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeProblemLink(w http.ResponseWriter, status int, title, detail, link string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Link: link}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeCachedJSON(w http.ResponseWriter, r *http.Request, lang domain.Language, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", string(lang))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- view models ----

type packageView struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Categories  []string `json:"categories"`
	Price       int      `json:"price"`
	Nights      int      `json:"nights"`
}

type packageDetailView struct {
	packageView
	GalleryImages []string `json:"gallery_images"`
	Included      []string `json:"included"`
}

func toPackageView(loc *i18n.Store, d domain.Destination) packageView {
	cats := make([]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		cats = append(cats, loc.T("destinations_page.categories."+string(c)))
	}
	return packageView{
		Slug:        d.Slug,
		Title:       loc.T("destinations_page." + d.Slug + ".title"),
		Description: loc.T("destinations_page." + d.Slug + ".description"),
		Image:       d.Image,
		Categories:  cats,
		Price:       d.Price,
		Nights:      d.Nights,
	}
}

func toPackageDetailView(loc *i18n.Store, d domain.Destination) packageDetailView {
	inc := make([]string, 0, len(d.Included))
	for _, k := range d.Included {
		inc = append(inc, loc.T("destinations_page.included_items."+k))
	}
	return packageDetailView{
		packageView:   toPackageView(loc, d),
		GalleryImages: d.GalleryImages,
		Included:      inc,
	}
}

// ---- public pages ----

func (h *Handlers) home(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)

	featured := catalog.Packages()
	if len(featured) > 3 {
		featured = featured[:3]
	}
	views := make([]packageView, 0, len(featured))
	for _, d := range featured {
		views = append(views, toPackageView(loc, d))
	}

	writeCachedJSON(w, r, loc.Language(), map[string]any{
		"meta":     h.meta(w, r, loc),
		"title":    loc.T("home.title"),
		"subtitle": loc.T("home.subtitle"),
		"featured": views,
	})
}

func (h *Handlers) aboutUs(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)
	writeCachedJSON(w, r, loc.Language(), map[string]any{
		"meta":     h.meta(w, r, loc),
		"title":    loc.T("about.title"),
		"subtitle": loc.T("about.subtitle"),
	})
}

func (h *Handlers) services(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)
	writeCachedJSON(w, r, loc.Language(), map[string]any{
		"meta":     h.meta(w, r, loc),
		"title":    loc.T("services.title"),
		"subtitle": loc.T("services.subtitle"),
	})
}

func (h *Handlers) destinations(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)

	c := filter.DefaultPackageCriteria()
	q := r.URL.Query()
	if v := q.Get("category"); v != "" {
		c.Category = v
	}
	if v := q.Get("price"); v != "" {
		c.Price = v
	}
	if v := q.Get("nights"); v != "" {
		c.Nights = v
	}

	filtered := filter.Packages(catalog.Packages(), c)
	views := make([]packageView, 0, len(filtered))
	for _, d := range filtered {
		views = append(views, toPackageView(loc, d))
	}

	writeCachedJSON(w, r, loc.Language(), map[string]any{
		"meta":     h.meta(w, r, loc),
		"title":    loc.T("destinations_page.title"),
		"subtitle": loc.T("destinations_page.subtitle"),
		"criteria": c,
		"packages": views,
	})
}

func (h *Handlers) destinationDetail(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)
	slug := chi.URLParam(r, "slug")

	d, ok := catalog.PackageBySlug(slug)
	if !ok {
		writeProblemLink(w, http.StatusNotFound, "Not Found",
			loc.T("not_found.destination"), "/destinations")
		return
	}

	writeCachedJSON(w, r, loc.Language(), map[string]any{
		"meta":    h.meta(w, r, loc),
		"package": toPackageDetailView(loc, d),
	})
}

func (h *Handlers) mapPage(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)

	c := filter.DefaultMapCriteria()
	q := r.URL.Query()
	c.Query = q.Get("q")
	if v := q.Get("continent"); v != "" {
		c.Continent = v
	}
	if v := q.Get("types"); v != "" {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				c.TripTypes = append(c.TripTypes, domain.TripType(t))
			}
		}
	}
	if v := q.Get("budget"); v != "" {
		c.Budget = v
	}
	if v := q.Get("max_price"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.MaxPrice = n
		}
	}

	writeCachedJSON(w, r, loc.Language(), map[string]any{
		"meta":         h.meta(w, r, loc),
		"title":        loc.T("map.title"),
		"subtitle":     loc.T("map.subtitle"),
		"criteria":     c,
		"destinations": filter.Map(catalog.MapDestinations(), c),
		"continents":   catalog.Continents(),
		"trip_types":   catalog.TripTypes(),
		"trip_colors":  catalog.TripTypeColors(),
		"budgets":      catalog.BudgetRanges(),
	})
}

func (h *Handlers) contactPage(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)
	writeCachedJSON(w, r, loc.Language(), map[string]any{
		"meta":     h.meta(w, r, loc),
		"title":    loc.T("contact.title"),
		"subtitle": loc.T("contact.subtitle"),
		"phones":   []string{loc.T("contact.phone1"), loc.T("contact.phone2")},
		"email":    loc.T("contact.email"),
	})
}

type blogPostView struct {
	Slug    string `json:"slug"`
	Image   string `json:"image"`
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

func (h *Handlers) blogIndex(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)
	lang := loc.Language()

	posts := catalog.BlogPosts()
	views := make([]blogPostView, 0, len(posts))
	for _, p := range posts {
		a := p.In(lang)
		views = append(views, blogPostView{
			Slug: p.Slug, Image: p.Image,
			Title: a.Title, Excerpt: a.Excerpt, Author: a.Author, Date: a.Date,
		})
	}

	writeCachedJSON(w, r, lang, map[string]any{
		"meta":     h.meta(w, r, loc),
		"title":    loc.T("blog.title"),
		"subtitle": loc.T("blog.subtitle"),
		"posts":    views,
	})
}

func (h *Handlers) blogPost(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)
	slug := chi.URLParam(r, "slug")

	p, ok := catalog.BlogPostBySlug(slug)
	if !ok {
		writeProblemLink(w, http.StatusNotFound, "Not Found",
			loc.T("not_found.post"), "/blog")
		return
	}

	a := p.In(loc.Language())
	writeCachedJSON(w, r, loc.Language(), map[string]any{
		"meta": h.meta(w, r, loc),
		"post": map[string]any{
			"slug":    p.Slug,
			"image":   p.Image,
			"title":   a.Title,
			"excerpt": a.Excerpt,
			"author":  a.Author,
			"date":    a.Date,
			"content": a.Content,
		},
	})
}

// ---- forms and state changes ----

func (h *Handlers) submitContact(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)

	var in struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", loc.T("contact.invalid_message"))
		return
	}

	err := h.Contacts.Submit(r.Context(), domain.ContactMessage{
		Name: in.Name, Email: in.Email, Message: in.Message, Language: loc.Language(),
	})
	if errors.Is(err, domain.ErrInvalid) {
		writeProblem(w, http.StatusBadRequest, "Bad Request", loc.T("contact.invalid_message"))
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("contact submit failed")
		writeProblem(w, http.StatusBadGateway, "Backend Error", loc.T("contact.error_message"))
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": loc.T("contact.success_message"),
	})
}

func (h *Handlers) setLanguage(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "body must be JSON with a language field")
		return
	}
	lang, ok := domain.ParseLanguage(in.Language)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "language must be en or ar")
		return
	}

	loc := i18n.NewStore(h.Bundle, durableCookies(w, r), h.DefaultLang)
	loc.SetLanguage(lang)

	writeJSON(w, http.StatusOK, map[string]string{
		"language":  string(lang),
		"direction": lang.Direction(),
	})
}

func (h *Handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	next := h.themeStore(w, r).Toggle()
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(next)})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)

	var in struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "body must be JSON with a password field")
		return
	}

	gate := auth.NewStore(h.Secret, sessionCookies(w, r))
	if !gate.Login(in.Password) {
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", loc.T("admin.login.error"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"authenticated": true})
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	auth.NewStore(h.Secret, sessionCookies(w, r)).Logout()
	w.WriteHeader(http.StatusNoContent)
}

// ---- admin ----

func (h *Handlers) rejectUnauthenticated(w http.ResponseWriter, r *http.Request) {
	loc := h.locale(w, r)
	writeProblem(w, http.StatusUnauthorized, "Unauthorized", loc.T("admin.login.error"))
}

func (h *Handlers) adminStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Admin.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("admin stats failed")
		writeProblem(w, http.StatusBadGateway, "Backend Error", "could not load dashboard counters")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handlers) adminMessages(w http.ResponseWriter, r *http.Request) {
	ms, err := h.Admin.Messages(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("admin messages failed")
		writeProblem(w, http.StatusBadGateway, "Backend Error", "could not load messages")
		return
	}
	if ms == nil {
		ms = []domain.ContactMessage{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": ms})
}
