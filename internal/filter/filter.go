// Package filter derives the visible subset of the static catalogs
// from a set of criteria. All predicates combine with logical AND and
// filtering is stable: results keep the catalog's original order.
package filter

import (
	"strings"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

// Price buckets for the package catalog. Boundaries are fixed, not
// configurable.
const (
	PriceAny        = "any"
	PriceUnder15000 = "under_15000" // price < 15000
	Price15000To25K = "15000_to_25000"
	PriceOver25000  = "over_25000" // price > 25000
)

// Nights buckets: short = [5,7], medium = [8,12], long = 13+.
const (
	NightsAny    = "any"
	NightsShort  = "short"
	NightsMedium = "medium"
	NightsLong   = "long"
)

const (
	All = "all"

	// DefaultMaxPrice is the upper bound of the map price slider.
	DefaultMaxPrice = 50000
)

// PackageCriteria filters the travel-package catalog.
type PackageCriteria struct {
	Category string // "all" or a domain.Category value
	Price    string // price bucket
	Nights   string // nights bucket
}

// DefaultPackageCriteria is the reset state for the packages page.
func DefaultPackageCriteria() PackageCriteria {
	return PackageCriteria{Category: All, Price: PriceAny, Nights: NightsAny}
}

// Packages returns the subsequence of in that satisfies every active
// predicate in c.
func Packages(in []domain.Destination, c PackageCriteria) []domain.Destination {
	out := make([]domain.Destination, 0, len(in))
	for _, d := range in {
		if matchesPackage(d, c) {
			out = append(out, d)
		}
	}
	return out
}

func matchesPackage(d domain.Destination, c PackageCriteria) bool {
	if c.Category != "" && c.Category != All && !d.HasCategory(domain.Category(c.Category)) {
		return false
	}

	switch c.Price {
	case PriceUnder15000:
		if d.Price >= 15000 {
			return false
		}
	case Price15000To25K:
		if d.Price < 15000 || d.Price > 25000 {
			return false
		}
	case PriceOver25000:
		if d.Price <= 25000 {
			return false
		}
	}

	switch c.Nights {
	case NightsShort:
		if d.Nights < 5 || d.Nights > 7 {
			return false
		}
	case NightsMedium:
		if d.Nights < 8 || d.Nights > 12 {
			return false
		}
	case NightsLong:
		if d.Nights < 13 {
			return false
		}
	}

	return true
}

// MapCriteria filters the interactive-map catalog.
type MapCriteria struct {
	Query     string            // free text over name, country, short description
	Continent string            // "all" or a domain.Continent value
	TripTypes []domain.TripType // OR across selected types; empty = no filtering
	Budget    string            // "all" or a domain.BudgetRange value
	MaxPrice  int               // inclusive ceiling; floor is fixed at 0
}

// DefaultMapCriteria is the reset state for the map sidebar.
func DefaultMapCriteria() MapCriteria {
	return MapCriteria{
		Query:     "",
		Continent: All,
		TripTypes: nil,
		Budget:    All,
		MaxPrice:  DefaultMaxPrice,
	}
}

// Map returns the subsequence of in that satisfies every active
// predicate in c.
func Map(in []domain.MapDestination, c MapCriteria) []domain.MapDestination {
	out := make([]domain.MapDestination, 0, len(in))
	for _, m := range in {
		if matchesMap(m, c) {
			out = append(out, m)
		}
	}
	return out
}

func matchesMap(m domain.MapDestination, c MapCriteria) bool {
	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		if !strings.Contains(strings.ToLower(m.Name), q) &&
			!strings.Contains(strings.ToLower(m.Country), q) &&
			!strings.Contains(strings.ToLower(m.ShortDescription), q) {
			return false
		}
	}

	if c.Continent != "" && c.Continent != All && m.Continent != domain.Continent(c.Continent) {
		return false
	}

	if len(c.TripTypes) > 0 {
		any := false
		for _, t := range c.TripTypes {
			if m.HasTripType(t) {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}

	if c.Budget != "" && c.Budget != All && m.Budget != domain.BudgetRange(c.Budget) {
		return false
	}

	if m.Price < 0 || m.Price > c.MaxPrice {
		return false
	}

	return true
}
