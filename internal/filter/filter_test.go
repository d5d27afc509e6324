package filter

import (
	"reflect"
	"testing"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/catalog"
	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

func slugs(in []domain.Destination) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		out = append(out, d.Slug)
	}
	return out
}

func TestDefaultCriteriaPassEverything(t *testing.T) {
	all := catalog.Packages()
	got := Packages(all, DefaultPackageCriteria())
	if len(got) != len(all) {
		t.Fatalf("defaults filtered out packages: %d of %d", len(got), len(all))
	}
	if !reflect.DeepEqual(slugs(got), slugs(all)) {
		t.Fatal("defaults must preserve catalog order")
	}

	pins := catalog.MapDestinations()
	gotPins := Map(pins, DefaultMapCriteria())
	if len(gotPins) != len(pins) {
		t.Fatalf("map defaults filtered out pins: %d of %d", len(gotPins), len(pins))
	}
}

func TestResetStateIsExact(t *testing.T) {
	pc := DefaultPackageCriteria()
	if pc != (PackageCriteria{Category: All, Price: PriceAny, Nights: NightsAny}) {
		t.Fatalf("package defaults = %+v", pc)
	}

	mc := DefaultMapCriteria()
	if mc.Query != "" || mc.Continent != All || len(mc.TripTypes) != 0 ||
		mc.Budget != All || mc.MaxPrice != DefaultMaxPrice {
		t.Fatalf("map defaults = %+v", mc)
	}
}

func TestCategoryAndPriceCombineWithAnd(t *testing.T) {
	got := Packages(catalog.Packages(), PackageCriteria{
		Category: string(domain.CategoryCultural),
		Price:    Price15000To25K,
		Nights:   NightsAny,
	})
	want := []string{"venice", "new_york", "london", "santorini"}
	if !reflect.DeepEqual(slugs(got), want) {
		t.Fatalf("got %v, want %v", slugs(got), want)
	}
	for _, d := range got {
		if !d.HasCategory(domain.CategoryCultural) {
			t.Fatalf("%q is not cultural", d.Slug)
		}
		if d.Price < 15000 || d.Price > 25000 {
			t.Fatalf("%q price %d outside bucket", d.Slug, d.Price)
		}
	}
}

func TestPriceBucketBoundaries(t *testing.T) {
	in := []domain.Destination{
		{Slug: "a", Price: 14999, Nights: 6},
		{Slug: "b", Price: 15000, Nights: 6},
		{Slug: "c", Price: 25000, Nights: 6},
		{Slug: "d", Price: 25001, Nights: 6},
	}

	if got := slugs(Packages(in, PackageCriteria{Price: PriceUnder15000})); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("under: %v", got)
	}
	if got := slugs(Packages(in, PackageCriteria{Price: Price15000To25K})); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("middle: %v", got)
	}
	if got := slugs(Packages(in, PackageCriteria{Price: PriceOver25000})); !reflect.DeepEqual(got, []string{"d"}) {
		t.Fatalf("over: %v", got)
	}
}

func TestNightsBucketBoundaries(t *testing.T) {
	in := []domain.Destination{
		{Slug: "n4", Nights: 4},
		{Slug: "n5", Nights: 5},
		{Slug: "n7", Nights: 7},
		{Slug: "n8", Nights: 8},
		{Slug: "n12", Nights: 12},
		{Slug: "n13", Nights: 13},
	}

	if got := slugs(Packages(in, PackageCriteria{Nights: NightsShort})); !reflect.DeepEqual(got, []string{"n5", "n7"}) {
		t.Fatalf("short: %v", got)
	}
	if got := slugs(Packages(in, PackageCriteria{Nights: NightsMedium})); !reflect.DeepEqual(got, []string{"n8", "n12"}) {
		t.Fatalf("medium: %v", got)
	}
	if got := slugs(Packages(in, PackageCriteria{Nights: NightsLong})); !reflect.DeepEqual(got, []string{"n13"}) {
		t.Fatalf("long: %v", got)
	}
	// nights 4 falls in no bucket
	if got := Packages(in, PackageCriteria{Nights: NightsShort}); len(got) == 3 {
		t.Fatal("4 nights must not match short")
	}
}

func TestFilteringIsIdempotent(t *testing.T) {
	c := PackageCriteria{Category: string(domain.CategoryRelaxation), Price: PriceAny, Nights: NightsAny}
	once := Packages(catalog.Packages(), c)
	twice := Packages(once, c)
	if !reflect.DeepEqual(slugs(once), slugs(twice)) {
		t.Fatalf("not idempotent: %v vs %v", slugs(once), slugs(twice))
	}
}

func TestMapSearchIsCaseInsensitive(t *testing.T) {
	pins := catalog.MapDestinations()

	c := DefaultMapCriteria()
	c.Query = "MALD"
	got := Map(pins, c)
	if len(got) != 1 || got[0].Slug != "maldives" {
		t.Fatalf("search: %+v", got)
	}

	// country matches too
	c.Query = "greece"
	got = Map(pins, c)
	if len(got) != 1 || got[0].Slug != "santorini" {
		t.Fatalf("country search: %+v", got)
	}
}

func TestMapTripTypesCombineWithOr(t *testing.T) {
	pins := catalog.MapDestinations()

	c := DefaultMapCriteria()
	c.TripTypes = []domain.TripType{domain.TripBeach, domain.TripMountain}
	got := Map(pins, c)
	if len(got) == 0 {
		t.Fatal("expected matches for beach OR mountain")
	}
	for _, m := range got {
		if !m.HasTripType(domain.TripBeach) && !m.HasTripType(domain.TripMountain) {
			t.Fatalf("%q matches neither type", m.ID)
		}
	}
}

func TestMapPriceCeilingIsInclusive(t *testing.T) {
	in := []domain.MapDestination{
		{ID: "cheap", Price: 9000},
		{ID: "edge", Price: 20000},
		{ID: "rich", Price: 20001},
	}
	c := DefaultMapCriteria()
	c.MaxPrice = 20000

	got := Map(in, c)
	if len(got) != 2 || got[0].ID != "cheap" || got[1].ID != "edge" {
		t.Fatalf("ceiling: %+v", got)
	}
}

func TestMapContinentAndBudget(t *testing.T) {
	pins := catalog.MapDestinations()

	c := DefaultMapCriteria()
	c.Continent = string(domain.ContinentEurope)
	c.Budget = string(domain.BudgetLuxury)
	got := Map(pins, c)
	if len(got) == 0 {
		t.Fatal("expected European luxury pins")
	}
	for _, m := range got {
		if m.Continent != domain.ContinentEurope || m.Budget != domain.BudgetLuxury {
			t.Fatalf("%q escaped the AND: %+v", m.ID, m)
		}
	}
}
