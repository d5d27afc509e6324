package app

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

const (
	statsCacheKey    = "admin:stats"
	messagesCacheKey = "admin:messages"
)

// Stats are the two dashboard counters.
type Stats struct {
	PageViews int `json:"page_views"`
	Messages  int `json:"messages"`
}

type AdminService struct {
	store    domain.Store
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewAdminService(s domain.Store, c domain.Cache, ttl time.Duration) *AdminService {
	return &AdminService{store: s, cache: c, cacheTTL: ttl}
}

// Stats counts page views and messages concurrently. The dashboard
// tolerates slightly stale numbers, so results are cached briefly.
func (s *AdminService) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	if ok, _ := s.cache.Get(ctx, statsCacheKey, &st); ok {
		return st, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.store.CountPageViews(gctx)
		st.PageViews = n
		return err
	})
	g.Go(func() error {
		n, err := s.store.CountContacts(gctx)
		st.Messages = n
		return err
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	_ = s.cache.Set(ctx, statsCacheKey, st, int(s.cacheTTL.Seconds()))
	return st, nil
}

// Messages returns contact messages newest first.
func (s *AdminService) Messages(ctx context.Context) ([]domain.ContactMessage, error) {
	var out []domain.ContactMessage
	if ok, _ := s.cache.Get(ctx, messagesCacheKey, &out); ok {
		return out, nil
	}

	ms, err := s.store.ListContacts(ctx)
	if err != nil {
		return nil, err
	}

	// copy before caching so callers can't mutate the cached value
	cp := make([]domain.ContactMessage, len(ms))
	copy(cp, ms)
	_ = s.cache.Set(ctx, messagesCacheKey, cp, int(s.cacheTTL.Seconds()))
	return ms, nil
}
