package cms

// fallbackPages keeps every route renderable when the content directory is
// missing (e.g. a binary started outside the repository root).
var fallbackPages = map[string]Page{
	"home": {
		Slug:  "home",
		Title: "Premium Aluminium Windows & Doors",
		Hero: Hero{
			Badge:     "Global Aluminium Systems, Now in India",
			Heading:   "Crafting Views,",
			Highlight: "Shaping Spaces.",
			Lead:      "For more than 15 years, Almil Systems has been a trusted global name in premium aluminium windows and doors systems, designed and engineered in the United States.",
			Image:     "/images/hero/Hero-Image.jpg",
		},
	},
	"about": {
		Slug:  "about",
		Title: "About Us",
		Hero: Hero{
			Badge:     "About Almil Systems",
			Heading:   "15+ Years of Global Excellence,",
			Highlight: "Now in India",
			Lead:      "Bringing world-class aluminium systems, superior craftsmanship, and unmatched quality to transform Indian homes and businesses.",
		},
	},
	"why-almil": {
		Slug:  "why-almil",
		Title: "Why Almil",
		Hero: Hero{
			Badge:     "Why Choose Almil",
			Heading:   "From Consultation to",
			Highlight: "After-Sales Support",
			Lead:      "A single partner for every stage of your project.",
		},
	},
	"contact": {
		Slug:  "contact",
		Title: "Contact Us",
		Hero: Hero{
			Badge:     "Contact Us",
			Heading:   "Let's Start a",
			Highlight: "Conversation",
			Lead:      "Have a project in mind? We're here to help bring your vision to life with premium aluminium solutions.",
		},
	},
	"products": {
		Slug:  "products",
		Title: "Products",
		Hero: Hero{
			Badge:     "Our Products",
			Heading:   "Our Premium Systems",
			Highlight: "Windows & Doors",
			Lead:      "Discover our complete range of premium aluminium windows and doors systems, designed and engineered in the United States.",
		},
	},
}

func fallbackPage(slug string) (Page, error) {
	p, ok := fallbackPages[slug]
	if !ok {
		return Page{}, ErrNotFound
	}
	return clonePage(p), nil
}
