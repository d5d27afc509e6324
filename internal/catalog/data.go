package catalog

import "github.com/cleopatraholidays25-spec/cleopatraholidays/internal/domain"

// Static site content. Nothing here mutates after init; handlers must
// treat the slices as read-only.

var packages = []domain.Destination{
	{
		Slug:       "berlin",
		Image:      "/Destiantions/berlin.jpg",
		Categories: []domain.Category{domain.CategoryCultural},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1602617385826-3678795603e3?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1618749651770-a2613f10d391?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1614673643604-80f75a27de57?w=800&h=600&fit=crop",
		},
		Price:    14196,
		Nights:   7,
		Included: []string{"flights", "hotel_5_star", "private_tours", "transfers", "daily_breakfast"},
	},
	{
		Slug:       "bali",
		Image:      "/Destiantions/bali.jpg",
		Categories: []domain.Category{domain.CategoryRelaxation, domain.CategoryCultural},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
		},
		Price:    13832,
		Nights:   9,
		Included: []string{"flights", "hotel_5_star", "transfers", "daily_breakfast"},
	},
	{
		Slug:       "venice",
		Image:      "/Destiantions/venice.jpg",
		Categories: []domain.Category{domain.CategoryCultural, domain.CategoryRelaxation},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1523906834658-6e24ef2386f9?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1515488764276-beab7607c1e6?w=800&h=600&fit=crop",
		},
		Price:    17472,
		Nights:   6,
		Included: []string{"flights", "hotel_5_star", "private_tours", "transfers", "daily_breakfast"},
	},
	{
		Slug:       "dubai",
		Image:      "/Destiantions/dubai.jpg",
		Categories: []domain.Category{domain.CategoryCultural, domain.CategoryRelaxation},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1512453979798-5ea266f8880c?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1518684079-3c830dcef090?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
		},
		Price:    11648,
		Nights:   5,
		Included: []string{"flights", "hotel_5_star", "transfers", "daily_breakfast"},
	},
	{
		Slug:       "damascus",
		Image:      "/Destiantions/damascus.jpg",
		Categories: []domain.Category{domain.CategoryCultural},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1544735716-392fe2489ffa?w=800&h=600&fit=crop",
		},
		Price:    9100,
		Nights:   8,
		Included: []string{"hotel_5_star", "private_tours", "transfers", "daily_breakfast", "exclusive_access"},
	},
	{
		Slug:       "cairo",
		Image:      "/Destiantions/cairo.jpg",
		Categories: []domain.Category{domain.CategoryCultural},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1539650116574-75c0c6d73fb6?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
		},
		Price:    12740,
		Nights:   8,
		Included: []string{"flights", "hotel_5_star", "private_tours", "transfers", "daily_breakfast", "exclusive_access"},
	},
	{
		Slug:       "new_york",
		Image:      "/Destiantions/new_york.jpg",
		Categories: []domain.Category{domain.CategoryCultural},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
		},
		Price:    21112,
		Nights:   8,
		Included: []string{"flights", "hotel_5_star", "private_tours", "transfers", "daily_breakfast"},
	},
	{
		Slug:       "london",
		Image:      "/Destiantions/london.jpg",
		Categories: []domain.Category{domain.CategoryCultural},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
		},
		Price:    18928,
		Nights:   7,
		Included: []string{"flights", "hotel_5_star", "private_tours", "transfers", "daily_breakfast", "exclusive_access"},
	},
	{
		Slug:       "maldives",
		Image:      "/Destiantions/maldives.jpg",
		Categories: []domain.Category{domain.CategoryRelaxation},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
		},
		Price:    36036,
		Nights:   10,
		Included: []string{"flights", "hotel_5_star", "transfers", "daily_breakfast"},
	},
	{
		Slug:       "santorini",
		Image:      "/Destiantions/santorini.jpg",
		Categories: []domain.Category{domain.CategoryRelaxation, domain.CategoryCultural},
		GalleryImages: []string{
			"https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800&h=600&fit=crop",
			"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
		},
		Price:    15288,
		Nights:   7,
		Included: []string{"flights", "hotel_5_star", "private_tours", "transfers", "daily_breakfast"},
	},
}

var mapDestinations = []domain.MapDestination{
	{
		ID: "berlin", Name: "Berlin", Country: "Germany", Continent: domain.ContinentEurope,
		Coords:    domain.Coords{Lat: 52.5200, Lon: 13.4050},
		TripTypes: []domain.TripType{domain.TripCity, domain.TripCultural},
		Budget:    domain.BudgetLuxury, Price: 14196, Nights: 7,
		Image:            "/Destiantions/berlin.jpg",
		ShortDescription: "Explore the vibrant capital of Germany with its rich history and modern culture",
		Highlights:       []string{"Brandenburg Gate", "Museum Island", "Berlin Wall Memorial"},
		Slug:             "berlin",
	},
	{
		ID: "bali", Name: "Bali", Country: "Indonesia", Continent: domain.ContinentAsia,
		Coords:    domain.Coords{Lat: -8.3405, Lon: 115.0920},
		TripTypes: []domain.TripType{domain.TripBeach, domain.TripCultural, domain.TripRomantic, domain.TripLuxury},
		Budget:    domain.BudgetLuxury, Price: 13832, Nights: 9,
		Image:            "/Destiantions/bali.jpg",
		ShortDescription: "Paradise island with stunning beaches, temples, and lush rice terraces",
		Highlights:       []string{"Ubud Rice Terraces", "Tanah Lot Temple", "Beach Clubs"},
		Slug:             "bali",
	},
	{
		ID: "venice", Name: "Venice", Country: "Italy", Continent: domain.ContinentEurope,
		Coords:    domain.Coords{Lat: 45.4408, Lon: 12.3155},
		TripTypes: []domain.TripType{domain.TripCity, domain.TripCultural, domain.TripRomantic},
		Budget:    domain.BudgetLuxury, Price: 17472, Nights: 6,
		Image:            "/Destiantions/venice.jpg",
		ShortDescription: "The floating city of romance, art, and timeless beauty",
		Highlights:       []string{"Grand Canal", "St. Mark's Basilica", "Gondola Rides"},
		Slug:             "venice",
	},
	{
		ID: "dubai", Name: "Dubai", Country: "UAE", Continent: domain.ContinentAsia,
		Coords:    domain.Coords{Lat: 25.2048, Lon: 55.2708},
		TripTypes: []domain.TripType{domain.TripCity, domain.TripLuxury, domain.TripBeach},
		Budget:    domain.BudgetLuxury, Price: 11648, Nights: 5,
		Image:            "/Destiantions/dubai.jpg",
		ShortDescription: "Modern metropolis of luxury, innovation, and Arabian hospitality",
		Highlights:       []string{"Burj Khalifa", "Palm Jumeirah", "Desert Safari"},
		Slug:             "dubai",
	},
	{
		ID: "damascus", Name: "Damascus", Country: "Syria", Continent: domain.ContinentAsia,
		Coords:    domain.Coords{Lat: 33.5138, Lon: 36.2765},
		TripTypes: []domain.TripType{domain.TripCultural, domain.TripCity},
		Budget:    domain.BudgetModerate, Price: 9100, Nights: 8,
		Image:            "/Destiantions/damascus.jpg",
		ShortDescription: "One of the oldest continuously inhabited cities in the world",
		Highlights:       []string{"Umayyad Mosque", "Old City", "Souq al-Hamidiyya"},
		Slug:             "damascus",
	},
	{
		ID: "cairo", Name: "Cairo", Country: "Egypt", Continent: domain.ContinentAfrica,
		Coords:    domain.Coords{Lat: 30.0444, Lon: 31.2357},
		TripTypes: []domain.TripType{domain.TripCultural, domain.TripCity, domain.TripAdventure},
		Budget:    domain.BudgetLuxury, Price: 12740, Nights: 8,
		Image:            "/Destiantions/cairo.jpg",
		ShortDescription: "Ancient wonders meet modern civilization in Egypt's bustling capital",
		Highlights:       []string{"Pyramids of Giza", "Egyptian Museum", "Nile River Cruise"},
		Slug:             "cairo",
	},
	{
		ID: "new_york", Name: "New York", Country: "USA", Continent: domain.ContinentNorthAmerica,
		Coords:    domain.Coords{Lat: 40.7128, Lon: -74.0060},
		TripTypes: []domain.TripType{domain.TripCity, domain.TripCultural},
		Budget:    domain.BudgetUltraLuxury, Price: 21112, Nights: 8,
		Image:            "/Destiantions/new_york.jpg",
		ShortDescription: "The city that never sleeps - iconic skyline and endless possibilities",
		Highlights:       []string{"Statue of Liberty", "Central Park", "Times Square"},
		Slug:             "new_york",
	},
	{
		ID: "london", Name: "London", Country: "United Kingdom", Continent: domain.ContinentEurope,
		Coords:    domain.Coords{Lat: 51.5074, Lon: -0.1278},
		TripTypes: []domain.TripType{domain.TripCity, domain.TripCultural},
		Budget:    domain.BudgetLuxury, Price: 18928, Nights: 7,
		Image:            "/Destiantions/london.jpg",
		ShortDescription: "Royal heritage, world-class museums, and vibrant cosmopolitan culture",
		Highlights:       []string{"Buckingham Palace", "Tower of London", "British Museum"},
		Slug:             "london",
	},
	{
		ID: "maldives", Name: "Maldives", Country: "Maldives", Continent: domain.ContinentAsia,
		Coords:    domain.Coords{Lat: 3.2028, Lon: 73.2207},
		TripTypes: []domain.TripType{domain.TripBeach, domain.TripRomantic, domain.TripLuxury},
		Budget:    domain.BudgetUltraLuxury, Price: 36036, Nights: 10,
		Image:            "/Destiantions/maldives.jpg",
		ShortDescription: "Tropical paradise with crystal-clear waters and overwater bungalows",
		Highlights:       []string{"Private Islands", "Underwater Restaurant", "Diving & Snorkeling"},
		Slug:             "maldives",
	},
	{
		ID: "santorini", Name: "Santorini", Country: "Greece", Continent: domain.ContinentEurope,
		Coords:    domain.Coords{Lat: 36.3932, Lon: 25.4615},
		TripTypes: []domain.TripType{domain.TripBeach, domain.TripRomantic, domain.TripCultural},
		Budget:    domain.BudgetLuxury, Price: 15288, Nights: 7,
		Image:            "/Destiantions/santorini.jpg",
		ShortDescription: "Stunning sunsets, white-washed buildings, and Aegean Sea views",
		Highlights:       []string{"Oia Sunset", "Red Beach", "Wine Tasting"},
		Slug:             "santorini",
	},
}

var blogPosts = []domain.BlogPost{
	{
		Slug:  "unveiling-secrets-of-rome",
		Image: "/hero-backgrounds/hero-1.jpg",
		EN: domain.BlogArticle{
			Title:   "Unveiling the Secrets of Ancient Rome",
			Excerpt: "Walk through history as we explore the hidden alleyways and majestic ruins of the eternal city...",
			Author:  "Dr. Alistair Finch",
			Date:    "October 26, 2023",
			Content: "The heart of Rome is not just in its colossal monuments like the Colosseum or the Roman Forum, but in the whispers of its ancient stones. Our journey began in the quiet morning light at the Palatine Hill, the mythical birthplace of Rome. We bypassed the usual crowds with an exclusive, pre-opening tour of the Vatican Museums, and later delved into the culinary secrets of the Trastevere district, learning the art of pasta-making from a local nonna in her private kitchen.",
		},
		AR: domain.BlogArticle{
			Title:   "كشف أسرار روما القديمة",
			Excerpt: "تجول عبر التاريخ بينما نستكشف الأزقة الخفية والآثار المهيبة للمدينة الخالدة...",
			Author:  "د. أليستير فينش",
			Date:    "٢٦ أكتوبر ٢٠٢٣",
			Content: "قلب روما ليس فقط في معالمها الضخمة مثل الكولوسيوم أو المنتدى الروماني، بل في همسات حجارتها القديمة. بدأت رحلتنا في ضوء الصباح الهادئ على هضبة بالاتين، مهد روما الأسطوري. تجاوزنا الحشود بجولة حصرية قبل الافتتاح لمتاحف الفاتيكان، ثم تعمقنا في الأسرار الطهوية لمنطقة تراستيفيري حيث تعلمنا فن صناعة المعكرونة.",
		},
	},
	{
		Slug:  "culinary-journey-through-morocco",
		Image: "/hero-backgrounds/hero-2.jpg",
		EN: domain.BlogArticle{
			Title:   "A Culinary Journey Through Morocco",
			Excerpt: "Taste the vibrant flavors of Marrakech, from bustling souks to serene riads. A feast for the senses.",
			Author:  "Aisha Al-Farsi",
			Date:    "September 15, 2023",
			Content: "Marrakech is a city that engages every sense, but none more so than taste. We navigated the labyrinthine alleys of the Djemaa el-Fna square for the sizzling tagines and fragrant couscous served at hidden food stalls known only to locals. The highlight was a private cooking class in a serene riad, where we learned the delicate balance of spices that forms the backbone of Moroccan cuisine.",
		},
		AR: domain.BlogArticle{
			Title:   "رحلة طهي عبر المغرب",
			Excerpt: "تذوق النكهات النابضة بالحياة في مراكش، من الأسواق المزدحمة إلى الرياضات الهادئة. وليمة للحواس.",
			Author:  "عائشة الفارسي",
			Date:    "١٥ سبتمبر ٢٠٢٣",
			Content: "مراكش مدينة تثير كل الحواس، ولكن لا شيء يضاهي حاسة التذوق. تنقلنا في أزقة ساحة جامع الفنا من أجل الطواجن الساخنة والكسكس العطري في أكشاك الطعام المخفية. كانت ذروة التجربة درس طهي خاص في رياض هادئ، حيث تعلمنا التوازن الدقيق للتوابل التي تشكل العمود الفقري للمطبخ المغربي.",
		},
	},
	{
		Slug:  "serenity-in-the-maldives",
		Image: "/hero-backgrounds/hero-3.jpg",
		EN: domain.BlogArticle{
			Title:   "Finding Serenity in the Maldives",
			Excerpt: "Discover the art of relaxation in the world's most pristine overwater villas. Paradise found.",
			Author:  "John & Jane Doe",
			Date:    "August 02, 2023",
			Content: "The Maldives is the physical embodiment of tranquility. From the moment our private seaplane touched down on the turquoise lagoon, the stresses of the world melted away. Our days were defined not by schedules but by the rhythm of the tides: snorkeling with manta rays in a protected biosphere reserve and a private candlelit dinner on a deserted sandbank under a canopy of stars.",
		},
		AR: domain.BlogArticle{
			Title:   "العثور على الصفاء في جزر المالديف",
			Excerpt: "اكتشف فن الاسترخاء في أروع الفيلات العائمة في العالم. لقد وجدنا الجنة.",
			Author:  "جون وجين دو",
			Date:    "٠٢ أغسطس ٢٠٢٣",
			Content: "جزر المالديف هي التجسيد المادي للهدوء. منذ اللحظة التي هبطت فيها طائرتنا المائية الخاصة على البحيرة الفيروزية، تلاشت ضغوط العالم. لم تكن أيامنا محددة بالجداول بل بإيقاع المد والجزر: الغطس مع أسماك شيطان البحر في محمية طبيعية وعشاء خاص على ضفة رملية مهجورة تحت سماء مليئة بالنجوم.",
		},
	},
}

// Sidebar enumerations and pin colors for the interactive map.

func Continents() []domain.Continent {
	return []domain.Continent{
		domain.ContinentAfrica, domain.ContinentAsia, domain.ContinentEurope,
		domain.ContinentNorthAmerica, domain.ContinentOceania,
	}
}

func TripTypes() []domain.TripType {
	return []domain.TripType{
		domain.TripBeach, domain.TripMountain, domain.TripCity, domain.TripCultural,
		domain.TripAdventure, domain.TripRomantic, domain.TripLuxury,
	}
}

func BudgetRanges() []domain.BudgetRange {
	return []domain.BudgetRange{
		domain.BudgetBudget, domain.BudgetModerate, domain.BudgetLuxury, domain.BudgetUltraLuxury,
	}
}

func TripTypeColors() map[domain.TripType]string {
	return map[domain.TripType]string{
		domain.TripBeach:     "#00B4D8",
		domain.TripMountain:  "#8B4513",
		domain.TripCity:      "#6C757D",
		domain.TripCultural:  "#9B59B6",
		domain.TripAdventure: "#E74C3C",
		domain.TripRomantic:  "#E91E63",
		domain.TripLuxury:    "#D4AF37",
	}
}
