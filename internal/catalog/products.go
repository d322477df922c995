package catalog

var products = []Product{
	{
		ID:          "sliding",
		Name:        "Sliding Windows & Doors",
		Tagline:     "Seamless transitions between indoor and outdoor spaces",
		Summary:     "Seamless transitions between spaces",
		Description: "Our sliding systems are designed for smooth, effortless functionality and wide openings that connect indoor and outdoor spaces seamlessly. With their sleek frames and easy operation, they maximize natural light and create a sense of openness, making them ideal for both modern homes and commercial spaces.",
		TechnicalAdvantages: []string{
			"Thermal Performance: Precision-engineered aluminium profiles with multi-chamber design and EPDM gaskets ensure airtight sealing, minimizing thermal transmittance (U-value).",
			"Structural Integrity: High-strength aluminium alloys provide stability for wide-span openings without deformation under load.",
			"Operational Efficiency: Ball-bearing rollers allow frictionless sliding and extended service life.",
			"Corrosion Resistance: Powder-coated and anodized finishes enhance resistance against oxidation, moisture, and saline environments.",
		},
		Specifications: []string{
			"Profile options: Slimline and heavy-duty sections",
			"Glazing compatibility: Single, double, and laminated glass",
			"Air-tightness: Compliant with international EN/ASTM standards",
			"Locking mechanism: Multipoint or single-point options for enhanced security",
		},
		Images: []string{
			"/images/products/Slider-1.jpg",
			"/images/products/Slider-2.jpg",
			"/images/products/Slim-Slider.jpg",
		},
		Cover: "/images/products/Slider-1.jpg",
	},
	{
		ID:          "casement",
		Name:        "Casement Windows & Doors",
		Tagline:     "Timeless design with robust performance",
		Summary:     "Timeless design meets performance",
		Description: "A timeless choice, our casement systems combine classic design with robust performance. Built with precision-engineered aluminium, they offer excellent ventilation, durability, and security while complementing every style of architecture from traditional to contemporary.",
		TechnicalAdvantages: []string{
			"Maximum Ventilation: Outward or inward opening sash design enables optimal airflow.",
			"High Sealing Performance: EPDM gaskets and multipoint locking ensure Class 4 air permeability and Class E1200 water tightness.",
			"Load Resistance: Robust hinges tested for high cyclic performance and sash weights up to 120 kg.",
			"Energy Efficiency: Thermal break technology available for improved insulation.",
		},
		Specifications: []string{
			"Opening types: Side-hung, top-hung, French casement",
			"Glazing thickness: 5 mm to 32 mm",
			"Hardware: Heavy-duty concealed or exposed hinges",
			"Finish options: Powder coating (60–80 microns) and anodizing",
		},
		Images: []string{
			"/images/products/Casement-1.png",
			"/images/products/Casement-2.png",
			"/images/products/Casement-3.png",
			"/images/products/Casement-Door-4.jpg",
			"/images/products/Casement-Door-5.jpg",
		},
		Cover: "/images/products/Casement-Door-4.jpg",
	},
	{
		ID:          "lift-slide",
		Name:        "Lift & Slide Systems",
		Tagline:     "Luxury living with expansive glass openings",
		Summary:     "Luxury living with expansive views",
		Description: "For those who seek luxury and expansive views, our lift & slide systems are the perfect solution. With advanced engineering, large glass panels glide effortlessly, creating uninterrupted views and seamless transitions between interiors and exteriors.",
		TechnicalAdvantages: []string{
			"Wide Span Applications: Supports glass panels up to 3 meters in height and 300 kg per sash.",
			"Smooth Operation: Advanced lift mechanism disengages gaskets during sliding for minimal friction, ensuring effortless handling.",
			"Enhanced Insulation: Multi-point locking and continuous gaskets improve energy performance and acoustic insulation (Rw values up to 45 dB).",
			"Durability: Designed for heavy-duty use in premium residential and commercial projects.",
		},
		Specifications: []string{
			"Track systems: Single, double, or triple-track configurations",
			"Thermal performance: Uw ≤ 1.6 W/m²K with double glazing",
			"Glass options: Toughened, laminated, low-E, or acoustic glazing",
			"Weather resistance: Compliant with Class 9A (EN12208)",
		},
		Images: []string{
			"/images/products/Slim-Slider.jpg",
			"/images/products/Slider-1.jpg",
			"/images/products/Slider-2.jpg",
		},
		Cover: "/images/products/Slim-Slider.jpg",
	},
	{
		ID:          "fold-slide",
		Name:        "Fold & Slide Systems",
		Tagline:     "Flexible designs for modern living",
		Summary:     "Flexible designs for modern spaces",
		Description: "Our fold & slide systems are crafted for flexibility and modern living. Designed to fold neatly to one side, they open up entire walls, creating versatile spaces that adapt easily to gatherings, entertainment, or everyday comfort.",
		TechnicalAdvantages: []string{
			"Space Optimization: Multi-panel folding mechanism allows complete opening of wall sections.",
			"High Stability: Top-hung or bottom-rolling configurations engineered for smooth stacking.",
			"Sealing & Safety: EPDM gaskets and multi-point locking ensure secure closure with high air and water resistance.",
			"Flexibility: Panels can be stacked internally or externally, with odd/even panel combinations for greater versatility.",
		},
		Specifications: []string{
			"Panel height: Up to 3 meters",
			"Panel width: 600 mm – 1200 mm",
			"Max panel weight: 120 kg",
			"Glass compatibility: 6 mm – 32 mm",
		},
		Images: []string{
			"/images/products/Slider-2.jpg",
			"/images/products/Casement-Door-4.jpg",
			"/images/products/Casement-Door-5.jpg",
		},
		Cover: "/images/products/Slider-2.jpg",
	},
	{
		ID:          "fixed",
		Name:        "Fixed Windows",
		Tagline:     "Minimalist elegance with maximum natural light",
		Summary:     "Minimalist elegance and natural light",
		Description: "Designed for minimalist elegance, our fixed windows invite abundant natural light while framing outdoor views like living art. With slim profiles and maximum glass surface, they add sophistication and brightness to any space.",
		TechnicalAdvantages: []string{
			"Structural Performance: Capable of supporting large spans of glass with slim aluminium mullions.",
			"Daylight Optimization: Maximized visible light transmission (VLT) with minimal frame visibility.",
			"Thermal & Acoustic Efficiency: Supports insulated glazing units (IGU) for superior performance.",
			"Low Maintenance: No moving parts, reducing wear and service requirements.",
		},
		Specifications: []string{
			"Glass options: Single, double, laminated, acoustic, or solar control glass",
			"Frame depths: 45 mm – 100 mm (depending on span)",
			"Performance standards: Meets IS/EN standards for wind load resistance",
			"Finish: Powder coating, anodizing, or wood-grain sublimation",
		},
		Images: []string{
			"/images/products/Casement-Door-5.jpg",
			"/images/products/Casement-2.png",
			"/images/products/Casement-1.png",
		},
		Cover: "/images/products/Casement-Door-5.jpg",
	},
	{
		ID:          "custom",
		Name:        "Customised Solutions",
		Tagline:     "Bespoke aluminium systems crafted for you",
		Summary:     "Bespoke systems crafted for you",
		Description: "Every project is unique, and so are our solutions. With custom-designed aluminium systems, we craft windows and doors tailored to your architectural vision, lifestyle, and functional needs. From size and finish to performance features, we make sure your system is truly one of a kind.",
		TechnicalAdvantages: []string{
			"Tailor-Made Profiles: Engineered profiles for non-standard dimensions, shapes, or façade integrations.",
			"System Compatibility: Designed to integrate seamlessly with curtain wall, skylight, and structural glazing systems.",
			"Advanced Engineering: FEM (Finite Element Method) analysis applied for structural and wind load calculations.",
			"Special Coatings: Availability of PVDF and marine-grade finishes for coastal projects.",
		},
		Specifications: []string{
			"Glazing thickness: 4 mm – 42 mm",
			"Thermal break profiles for high-performance insulation",
			"Customized hardware solutions for oversized panels",
			"Compliant with ASTM, EN, and Indian Standards (IS)",
		},
		Images: []string{
			"/images/products/Casement-1.jpg",
			"/images/products/Casement-3.jpg",
			"/images/products/Casement-Door-4.jpg",
		},
		Cover: "/images/products/Casement-1.png",
	},
}
