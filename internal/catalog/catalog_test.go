package catalog

import (
	"testing"

	"github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"
)

func TestCatalogSizes(t *testing.T) {
	if got := len(Packages()); got != 10 {
		t.Fatalf("packages = %d, want 10", got)
	}
	if got := len(MapDestinations()); got != 10 {
		t.Fatalf("map destinations = %d, want 10", got)
	}
	if got := len(BlogPosts()); got == 0 {
		t.Fatal("expected blog posts")
	}
}

func TestValidatePassesOnShippedData(t *testing.T) {
	if defects := Validate(); len(defects) != 0 {
		t.Fatalf("shipped catalog has defects: %v", defects)
	}
}

func TestEveryMapPinLinksToAPackage(t *testing.T) {
	for _, m := range MapDestinations() {
		if _, ok := PackageBySlug(m.Slug); !ok {
			t.Errorf("pin %q links to unknown package %q", m.ID, m.Slug)
		}
	}
}

func TestPackageBySlug(t *testing.T) {
	d, ok := PackageBySlug("maldives")
	if !ok {
		t.Fatal("maldives not found")
	}
	if !d.HasCategory(domain.CategoryRelaxation) {
		t.Fatalf("maldives categories = %v", d.Categories)
	}
	if _, ok := PackageBySlug("atlantis"); ok {
		t.Fatal("unknown slug must not resolve")
	}
}

func TestBlogPostBySlugAndFallback(t *testing.T) {
	p, ok := BlogPostBySlug("serenity-in-the-maldives")
	if !ok {
		t.Fatal("post not found")
	}
	if p.EN.Title == "" || p.AR.Title == "" {
		t.Fatalf("post missing a language: %+v", p)
	}
	if p.In(domain.LangAR).Title != p.AR.Title {
		t.Fatal("In(ar) must return the Arabic article")
	}
	if p.In(domain.Language("fr")).Title != p.EN.Title {
		t.Fatal("unknown language must fall back to English")
	}
}

func TestSidebarEnumsCoverDomain(t *testing.T) {
	if got := len(Continents()); got != 5 {
		t.Fatalf("continents = %d, want 5", got)
	}
	if got := len(TripTypes()); got != 7 {
		t.Fatalf("trip types = %d, want 7", got)
	}
	if got := len(BudgetRanges()); got != 4 {
		t.Fatalf("budgets = %d, want 4", got)
	}
	colors := TripTypeColors()
	for _, tt := range TripTypes() {
		if colors[tt] == "" {
			t.Errorf("trip type %q has no color", tt)
		}
	}
}
