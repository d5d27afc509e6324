package domain

import "context"

// Store is the persistence boundary. The site only ever writes
// page-view and contact records and reads them back for the admin
// area; everything else it serves is static.
type Store interface {
	// Write paths
	InsertPageView(ctx context.Context, page string) error
	InsertContact(ctx context.Context, m ContactMessage) error

	// Read paths (admin)
	CountPageViews(ctx context.Context) (int, error)
	CountContacts(ctx context.Context) (int, error)
	ListContacts(ctx context.Context) ([]ContactMessage, error) // newest first
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
