package i18n

import "github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"

// StorageKey is the durable client-storage key for the language choice.
const StorageKey = "language"

// Storage is the durable client storage a Store persists into. The
// HTTP layer backs it with cookies; tests use a map.
type Storage interface {
	Get(key string) string
	Set(key, value string)
}

// Store binds the shared Bundle to one visitor's language state. It is
// cheap to construct per request.
type Store struct {
	bundle   *Bundle
	storage  Storage
	fallback domain.Language
}

func NewStore(b *Bundle, s Storage, fallback domain.Language) *Store {
	if fallback == "" {
		fallback = domain.LangEN
	}
	return &Store{bundle: b, storage: s, fallback: fallback}
}

// Language reads the persisted choice, falling back to the default.
func (s *Store) Language() domain.Language {
	if lang, ok := domain.ParseLanguage(s.storage.Get(StorageKey)); ok {
		return lang
	}
	return s.fallback
}

// SetLanguage switches the active dictionary and persists the choice.
// Unknown codes are ignored.
func (s *Store) SetLanguage(lang domain.Language) {
	if _, ok := domain.ParseLanguage(string(lang)); !ok {
		return
	}
	s.storage.Set(StorageKey, string(lang))
}

// Direction is the document text direction for the active language.
func (s *Store) Direction() string { return s.Language().Direction() }

// T resolves key in the active language's dictionary.
func (s *Store) T(key string) string { return s.bundle.T(s.Language(), key) }
