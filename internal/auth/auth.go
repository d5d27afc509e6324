// Package auth gates the admin area behind a single shared password.
// This is a soft access gate, not a security boundary: the secret is
// compared in the same process that serves the page.
package auth

import "crypto/subtle"

// StorageKey is the session-scoped client-storage key for the flag.
const StorageKey = "isAuthenticated"

// Storage is session-scoped client storage: it survives a reload in
// the same browser tab and vanishes with the session. The HTTP layer
// backs it with a session cookie; tests use a map.
type Storage interface {
	Get(key string) string
	Set(key, value string)
	Del(key string)
}

type Store struct {
	secret  string
	storage Storage
}

func NewStore(secret string, s Storage) *Store {
	return &Store{secret: secret, storage: s}
}

// Login compares password against the configured secret. On success
// the session flag is set and persisted; on failure nothing changes.
func (s *Store) Login(password string) bool {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		return false
	}
	s.storage.Set(StorageKey, "true")
	return true
}

// Logout clears the session flag.
func (s *Store) Logout() {
	s.storage.Del(StorageKey)
}

// IsAuthenticated reads the session flag.
func (s *Store) IsAuthenticated() bool {
	return s.storage.Get(StorageKey) == "true"
}
