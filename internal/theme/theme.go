// Package theme owns the light/dark preference. Purely client-local:
// no backend call is ever made on its behalf.
package theme

import "github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"

// StorageKey is the durable client-storage key for the theme choice.
const StorageKey = "theme"

type Storage interface {
	Get(key string) string
	Set(key, value string)
}

// Store resolves and flips the theme for one visitor. systemHint is
// the OS/browser preference signal, consulted only when nothing is
// persisted yet.
type Store struct {
	storage    Storage
	systemHint domain.ThemeMode
}

func NewStore(s Storage, systemHint domain.ThemeMode) *Store {
	return &Store{storage: s, systemHint: systemHint}
}

// Current resolves the theme: persisted value, else system hint, else
// light.
func (s *Store) Current() domain.ThemeMode {
	if m, ok := domain.ParseThemeMode(s.storage.Get(StorageKey)); ok {
		return m
	}
	if s.systemHint == domain.ThemeDark {
		return domain.ThemeDark
	}
	return domain.ThemeLight
}

// Toggle flips the theme and persists the result. Toggling twice is a
// no-op overall.
func (s *Store) Toggle() domain.ThemeMode {
	next := domain.ThemeLight
	if s.Current() == domain.ThemeLight {
		next = domain.ThemeDark
	}
	s.storage.Set(StorageKey, string(next))
	return next
}
