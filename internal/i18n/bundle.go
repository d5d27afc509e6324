// Package i18n owns the bilingual translation dictionaries and the
// per-request language state. Lookup of a missing dotted key returns
// the key itself; that is the graceful-degradation contract every
// caller relies on, never an error.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

//go:embed locales/*.json
var localeFS embed.FS

var supported = []domain.Language{domain.LangEN, domain.LangAR}

// Bundle holds one flattened dictionary per language. Dictionaries are
// either embedded at build time (available from the first request) or
// fetched remotely after startup; until a remote fetch completes every
// lookup falls through to the raw key.
type Bundle struct {
	mu   sync.RWMutex
	dict map[domain.Language]map[string]string
}

// NewEmbedded loads the dictionaries compiled into the binary.
func NewEmbedded() (*Bundle, error) {
	b := &Bundle{dict: map[domain.Language]map[string]string{}}
	for _, lang := range supported {
		raw, err := localeFS.ReadFile(fmt.Sprintf("locales/%s.json", lang))
		if err != nil {
			return nil, fmt.Errorf("load locale %s: %w", lang, err)
		}
		m, err := parseDict(raw)
		if err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		b.dict[lang] = m
	}
	return b, nil
}

// NewRemote returns an empty bundle; call Fetch to populate it. The
// empty state is usable: T returns keys until the fetch lands.
func NewRemote() *Bundle {
	return &Bundle{dict: map[domain.Language]map[string]string{}}
}

// Fetch downloads <base>/<lang>.json for every supported language and
// installs the result atomically. A failure leaves the bundle in its
// previous (possibly empty) state.
func (b *Bundle) Fetch(ctx context.Context, hc *http.Client, base string) error {
	if hc == nil {
		hc = http.DefaultClient
	}
	fresh := make(map[domain.Language]map[string]string, len(supported))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, lang := range supported {
		lang := lang
		g.Go(func() error {
			url := strings.TrimSuffix(base, "/") + "/" + string(lang) + ".json"
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			resp, err := hc.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("fetch locale %s: status %d", lang, resp.StatusCode)
			}
			raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
			if err != nil {
				return err
			}
			m, err := parseDict(raw)
			if err != nil {
				return fmt.Errorf("parse locale %s: %w", lang, err)
			}
			mu.Lock()
			fresh[lang] = m
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	b.mu.Lock()
	b.dict = fresh
	b.mu.Unlock()
	return nil
}

// T resolves a dotted key in lang's dictionary. Missing language,
// missing key, or a not-yet-loaded bundle all yield the key unchanged.
// Pure given (dictionary, key); no side effects.
func (b *Bundle) T(lang domain.Language, key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if m, ok := b.dict[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// parseDict decodes a nested JSON dictionary and flattens it to a map
// from dotted key to string. Non-string leaves are coerced.
func parseDict(raw []byte) (map[string]string, error) {
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	out := make(map[string]string, 256)
	flatten("", tree, out)
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch t := v.(type) {
		case map[string]any:
			flatten(key, t, out)
		case string:
			out[key] = t
		case nil:
			// skip null leaves; lookup miss returns the key anyway
		default:
			out[key] = fmt.Sprint(t)
		}
	}
}
