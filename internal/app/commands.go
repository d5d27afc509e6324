package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/adapters/observability"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

type ContactService struct {
	store domain.Store
	cache domain.Cache
}

func NewContactService(s domain.Store, c domain.Cache) *ContactService {
	return &ContactService{store: s, cache: c}
}

// Submit validates and persists a contact inquiry, then evicts the
// admin caches so the new message shows up immediately.
func (s *ContactService) Submit(ctx context.Context, m domain.ContactMessage) error {
	if strings.TrimSpace(m.Name) == "" ||
		strings.TrimSpace(m.Email) == "" ||
		strings.TrimSpace(m.Message) == "" {
		return fmt.Errorf("%w: name, email and message are required", domain.ErrInvalid)
	}
	if err := s.store.InsertContact(ctx, m); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Del(ctx, statsCacheKey)
		_ = s.cache.Del(ctx, messagesCacheKey)
	}
	return nil
}

type AnalyticsService struct {
	store domain.Store
}

func NewAnalyticsService(s domain.Store) *AnalyticsService {
	return &AnalyticsService{store: s}
}

// LogPageView records a public page view. Admin-area and login traffic
// is never recorded. Storage failures are logged and dropped; analytics
// must not affect page serving.
func (s *AnalyticsService) LogPageView(ctx context.Context, path string) {
	if IsAdminPath(path) {
		return
	}
	if err := s.store.InsertPageView(ctx, path); err != nil {
		log.Warn().Err(err).Str("page", path).Msg("page view insert failed")
		return
	}
	observability.ObservePageView(path)
}

// IsAdminPath reports whether path belongs to the login or admin area.
func IsAdminPath(path string) bool {
	return path == "/login" || path == "/admin" || strings.HasPrefix(path, "/admin/")
}
