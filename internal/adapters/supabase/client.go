// Package supabase is the network-backed Store: a thin client for the
// hosted backend's PostgREST-style REST API. Selected at startup only
// when credentials are configured; the in-memory store covers the
// degraded case.
package supabase

import (
	"bytes"
	"context"
	crand "crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/observability"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

var (
	ErrNotFound     = fmt.Errorf("supabase: %w", domain.ErrNotFound)
	ErrUnauthorized = fmt.Errorf("supabase: %w", domain.ErrUnauthorized)
	ErrForbidden    = errors.New("supabase: forbidden")
)

type Client struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base, key string, rps int) (*Client, error) {
	if base == "" || key == "" {
		return nil, fmt.Errorf("supabase URL and key are required")
	}
	if rps <= 0 {
		rps = 5
	}
	return &Client{
		base: strings.TrimSuffix(base, "/"),
		key:  key,
		hc:   &http.Client{Timeout: 20 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// ---- domain.Store ----

func (c *Client) InsertPageView(ctx context.Context, page string) error {
	return c.insert(ctx, "page_views", map[string]any{"page": page})
}

func (c *Client) InsertContact(ctx context.Context, m domain.ContactMessage) error {
	return c.insert(ctx, "contacts", map[string]any{
		"name":     m.Name,
		"email":    m.Email,
		"message":  m.Message,
		"language": string(m.Language),
	})
}

func (c *Client) CountPageViews(ctx context.Context) (int, error) {
	return c.count(ctx, "page_views")
}

func (c *Client) CountContacts(ctx context.Context) (int, error) {
	return c.count(ctx, "contacts")
}

func (c *Client) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	var rows []contactRow
	url := fmt.Sprintf("%s/rest/v1/contacts?select=*&order=created_at.desc", c.base)
	if err := c.do(ctx, http.MethodGet, url, "contacts", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.ContactMessage, 0, len(rows))
	for _, r := range rows {
		lang, _ := domain.ParseLanguage(r.Language)
		out = append(out, domain.ContactMessage{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Message:   r.Message,
			Language:  lang,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

type contactRow struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// ---- Internals ----

func (c *Client) insert(ctx context.Context, table string, record any) error {
	url := fmt.Sprintf("%s/rest/v1/%s", c.base, table)
	return c.do(ctx, http.MethodPost, url, table, record, nil)
}

// count asks PostgREST for an exact row count without a body and reads
// it from the Content-Range header ("0-0/123" or "*/123").
func (c *Client) count(ctx context.Context, table string) (int, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return 0, err
	}
	url := fmt.Sprintf("%s/rest/v1/%s?select=*", c.base, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, err
	}
	c.setHeaders(req)
	req.Header.Set("Prefer", "count=exact")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("supabase", "count:"+table, resp.StatusCode, time.Since(start))

	if err := statusErr(resp.StatusCode); err != nil {
		return 0, err
	}
	return parseContentRangeTotal(resp.Header.Get("Content-Range"))
}

func parseContentRangeTotal(h string) (int, error) {
	slash := strings.LastIndexByte(h, '/')
	if slash < 0 || slash == len(h)-1 {
		return 0, fmt.Errorf("missing or malformed Content-Range %q", h)
	}
	total := h[slash+1:]
	if total == "*" {
		return 0, fmt.Errorf("backend returned unknown count")
	}
	n, err := strconv.Atoi(total)
	if err != nil {
		return 0, fmt.Errorf("bad Content-Range total %q", total)
	}
	return n, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "cleopatra-holidays/1.0")
}

func statusErr(code int) error {
	switch code {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	}
	return nil
}

// do performs a request with client-side rate limiting, retries on 429
// and transient 5xx (honoring Retry-After), and decodes JSON into out
// when out is non-nil.
func (c *Client) do(ctx context.Context, method, url, endpoint string, body, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}

	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		payload = b
	}

	var lastErr error
	for i := 0; i < 4; i++ {
		// build a fresh request each attempt
		var rdr io.Reader
		if payload != nil {
			rdr = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, rdr)
		if err != nil {
			return err
		}
		c.setHeaders(req)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Prefer", "return=minimal")
		}

		start := time.Now()
		resp, err := c.hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			if i < 3 && sleepCtx(ctx, backoff(i)) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr
		}
		observability.ObserveExternal("supabase", endpoint, resp.StatusCode, time.Since(start))

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated, http.StatusAccepted:
			if out == nil {
				io.Copy(io.Discard, resp.Body)
				resp.Body.Close()
				return nil
			}
			err := json.NewDecoder(resp.Body).Decode(out)
			resp.Body.Close()
			return err

		case http.StatusNoContent:
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			return nil

		case http.StatusNotFound, http.StatusUnauthorized, http.StatusForbidden:
			resp.Body.Close()
			return statusErr(resp.StatusCode)

		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			wait := retryAfter(resp)
			resp.Body.Close()
			if wait == 0 {
				wait = backoff(i)
			}
			lastErr = fmt.Errorf("remote %d", resp.StatusCode)
			if i < 3 && sleepCtx(ctx, wait) {
				continue
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return lastErr

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			resp.Body.Close()
			return fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
		}
	}

	return lastErr
}

// sleepCtx waits for d or returns early if ctx is done.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// retryAfter parses Retry-After (seconds or HTTP-date). 0 if absent.
func retryAfter(resp *http.Response) time.Duration {
	h := resp.Header.Get("Retry-After")
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(h)); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// backoff returns an exponential delay (200ms, 400ms, 800ms...) with
// up to +50% jitter to avoid thundering herds.
func backoff(i int) time.Duration {
	base := time.Duration(1<<i) * 200 * time.Millisecond
	var b [1]byte
	if _, err := crand.Read(b[:]); err != nil {
		return base
	}
	f := float64(b[0]) / 255.0
	j := time.Duration(0.5 * f * float64(base))
	return base + j
}
