package domain

// Category classifies a travel package.
type Category string

const (
	CategoryRelaxation Category = "relaxation"
	CategoryAdventure  Category = "adventure"
	CategoryCultural   Category = "cultural"
)

// Destination is a bookable travel package. Identity is Slug; the
// localized title and description live in the translation dictionaries
// under "destinations_page.<slug>".
type Destination struct {
	Slug          string     `json:"slug"`
	Image         string     `json:"image"`
	Categories    []Category `json:"categories"`
	GalleryImages []string   `json:"gallery_images"`
	Price         int        `json:"price"` // QAR
	Nights        int        `json:"nights"`
	Included      []string   `json:"included"` // included-item keys
}

// HasCategory reports whether the package carries the given category.
func (d Destination) HasCategory(c Category) bool {
	for _, dc := range d.Categories {
		if dc == c {
			return true
		}
	}
	return false
}

type Continent string

const (
	ContinentAfrica       Continent = "africa"
	ContinentAsia         Continent = "asia"
	ContinentEurope       Continent = "europe"
	ContinentNorthAmerica Continent = "north_america"
	ContinentOceania      Continent = "oceania"
)

type TripType string

const (
	TripBeach     TripType = "beach"
	TripMountain  TripType = "mountain"
	TripCity      TripType = "city"
	TripCultural  TripType = "cultural"
	TripAdventure TripType = "adventure"
	TripRomantic  TripType = "romantic"
	TripLuxury    TripType = "luxury"
)

type BudgetRange string

const (
	BudgetBudget      BudgetRange = "budget"
	BudgetModerate    BudgetRange = "moderate"
	BudgetLuxury      BudgetRange = "luxury"
	BudgetUltraLuxury BudgetRange = "ultra_luxury"
)

type Coords struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// MapDestination is a pin on the interactive map. Slug must resolve to
// a Destination.Slug so a pin can link into the detail page; the
// catalog package validates that linkage.
type MapDestination struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	Country          string      `json:"country"`
	Continent        Continent   `json:"continent"`
	Coords           Coords      `json:"coords"`
	TripTypes        []TripType  `json:"trip_types"`
	Budget           BudgetRange `json:"budget"`
	Price            int         `json:"price"`
	Nights           int         `json:"nights"`
	Image            string      `json:"image"`
	ShortDescription string      `json:"short_description"`
	Highlights       []string    `json:"highlights"`
	Slug             string      `json:"slug"`
}

// HasTripType reports whether the pin carries the given trip type.
func (m MapDestination) HasTripType(t TripType) bool {
	for _, mt := range m.TripTypes {
		if mt == t {
			return true
		}
	}
	return false
}
