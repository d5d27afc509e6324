// Package memory holds the fixture-backed Store used when no backend
// credentials are configured. It lets the whole site, including the
// admin area, run and be demonstrated offline.
package memory

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

type Store struct {
	mu          sync.Mutex
	contacts    []domain.ContactMessage
	pageViews   []domain.PageView
	nextContact int64
	nextView    int64
}

// NewStore returns a store pre-seeded with demo data so the admin
// dashboard has something to show out of the box.
func NewStore() *Store {
	s := &Store{nextContact: 1, nextView: 1}
	for _, m := range FixtureContacts() {
		m.ID = s.nextContact
		s.nextContact++
		s.contacts = append(s.contacts, m)
	}
	for _, v := range FixturePageViews() {
		v.ID = s.nextView
		s.nextView++
		s.pageViews = append(s.pageViews, v)
	}
	return s
}

// NewEmptyStore returns a store with no seed data, for tests that need
// a clean slate.
func NewEmptyStore() *Store {
	return &Store{nextContact: 1, nextView: 1}
}

func (s *Store) InsertPageView(_ context.Context, page string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := domain.PageView{ID: s.nextView, Page: page, CreatedAt: now()}
	s.nextView++
	s.pageViews = append(s.pageViews, v)
	log.Debug().Str("page", page).Int64("id", v.ID).Msg("memory: page view recorded")
	return nil
}

func (s *Store) InsertContact(_ context.Context, m domain.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextContact
	s.nextContact++
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now()
	}
	s.contacts = append(s.contacts, m)
	log.Info().Str("email", m.Email).Int64("id", m.ID).Msg("memory: contact stored")
	return nil
}

func (s *Store) CountPageViews(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pageViews), nil
}

func (s *Store) CountContacts(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.contacts), nil
}

// ListContacts returns a copy, newest first.
func (s *Store) ListContacts(_ context.Context) ([]domain.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ContactMessage, 0, len(s.contacts))
	for i := len(s.contacts) - 1; i >= 0; i-- {
		out = append(out, s.contacts[i])
	}
	return out, nil
}
