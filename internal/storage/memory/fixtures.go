package memory

import (
	"time"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

func now() time.Time { return time.Now().UTC() }

// FixtureContacts returns the two demo inquiries, oldest first. Also
// consumed by the seeder when populating a fresh backend.
func FixtureContacts() []domain.ContactMessage {
	return []domain.ContactMessage{
		{
			Name:      "Aisha Al-Farsi",
			Email:     "aisha@example.com",
			Message:   "Hello, I would like more details about the European grand tour package for two travellers in October.",
			Language:  domain.LangEN,
			CreatedAt: now().Add(-24 * time.Hour),
		},
		{
			Name:      "David Chen",
			Email:     "david.chen@example.com",
			Message:   "Do you arrange private aviation transfers for the Japan itinerary? We are a party of four.",
			Language:  domain.LangEN,
			CreatedAt: now(),
		},
	}
}

// FixturePageViews returns 123 seed views so the dashboard counter is
// non-trivial in demo mode.
func FixturePageViews() []domain.PageView {
	views := make([]domain.PageView, 0, 123)
	for i := 0; i < 123; i++ {
		views = append(views, domain.PageView{Page: "/mock-page", CreatedAt: now()})
	}
	return views
}
