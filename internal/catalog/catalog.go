package catalog

import (
	"fmt"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

// Packages returns the travel-package catalog in display order.
func Packages() []domain.Destination { return packages }

// MapDestinations returns the map-pin catalog in display order.
func MapDestinations() []domain.MapDestination { return mapDestinations }

// BlogPosts returns all posts, newest first.
func BlogPosts() []domain.BlogPost { return blogPosts }

// PackageBySlug resolves a package by its stable identifier.
func PackageBySlug(slug string) (domain.Destination, bool) {
	for _, d := range packages {
		if d.Slug == slug {
			return d, true
		}
	}
	return domain.Destination{}, false
}

// BlogPostBySlug resolves a post by its stable identifier.
func BlogPostBySlug(slug string) (domain.BlogPost, bool) {
	for _, p := range blogPosts {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.BlogPost{}, false
}

// Validate checks catalog integrity: package slugs must be unique and
// every map pin's slug must resolve to a package, otherwise the pin's
// detail link is dead. Returns one message per defect.
func Validate() []string {
	var defects []string

	seen := make(map[string]struct{}, len(packages))
	for _, d := range packages {
		if _, dup := seen[d.Slug]; dup {
			defects = append(defects, fmt.Sprintf("duplicate package slug %q", d.Slug))
		}
		seen[d.Slug] = struct{}{}
	}

	for _, m := range mapDestinations {
		if _, ok := seen[m.Slug]; !ok {
			defects = append(defects, fmt.Sprintf("map destination %q links to unknown package slug %q", m.ID, m.Slug))
		}
		if len(m.TripTypes) == 0 {
			defects = append(defects, fmt.Sprintf("map destination %q has no trip types", m.ID))
		}
	}

	return defects
}
