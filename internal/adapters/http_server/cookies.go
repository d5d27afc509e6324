package httpserver

import "net/http"

// cookieStorage adapts request/response cookies to the client-storage
// interfaces the stores in i18n, theme and auth expect. An overlay map
// makes a value Set earlier in the same request visible to Get.
type cookieStorage struct {
	w        http.ResponseWriter
	r        *http.Request
	maxAge   int // 0 = session cookie
	httpOnly bool
	overlay  map[string]string
	deleted  map[string]bool
}

const yearSeconds = 365 * 24 * 60 * 60

// durableCookies persists across browser sessions (language, theme).
func durableCookies(w http.ResponseWriter, r *http.Request) *cookieStorage {
	return &cookieStorage{w: w, r: r, maxAge: yearSeconds}
}

// sessionCookies vanishes with the browser session (admin flag).
func sessionCookies(w http.ResponseWriter, r *http.Request) *cookieStorage {
	return &cookieStorage{w: w, r: r, httpOnly: true}
}

func (c *cookieStorage) Get(key string) string {
	if c.deleted[key] {
		return ""
	}
	if v, ok := c.overlay[key]; ok {
		return v
	}
	ck, err := c.r.Cookie(key)
	if err != nil {
		return ""
	}
	return ck.Value
}

func (c *cookieStorage) Set(key, value string) {
	if c.overlay == nil {
		c.overlay = map[string]string{}
	}
	c.overlay[key] = value
	delete(c.deleted, key)
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   c.maxAge,
		HttpOnly: c.httpOnly,
		SameSite: http.SameSiteLaxMode,
	})
}

func (c *cookieStorage) Del(key string) {
	if c.deleted == nil {
		c.deleted = map[string]bool{}
	}
	c.deleted[key] = true
	delete(c.overlay, key)
	http.SetCookie(c.w, &http.Cookie{
		Name:     key,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: c.httpOnly,
		SameSite: http.SameSiteLaxMode,
	})
}
