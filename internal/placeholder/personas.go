package placeholder

import (
	"glowfolio-backend/internal/models"
	"glowfolio-backend/internal/theme"
)

// DefaultPreview is the detailed sample for the Default template.
func DefaultPreview() models.EditorPreviewData { return build(defaultPersona(), false) }

// DefaultThumbnail is the sparse sample for the Default template.
func DefaultThumbnail() models.EditorPreviewData { return build(defaultPersona(), true) }

func AestheticPreview() models.EditorPreviewData   { return build(aestheticPersona(), false) }
func AestheticThumbnail() models.EditorPreviewData { return build(aestheticPersona(), true) }

func LuxuryPreview() models.EditorPreviewData   { return build(luxuryPersona(), false) }
func LuxuryThumbnail() models.EditorPreviewData { return build(luxuryPersona(), true) }

func ElegantPreview() models.EditorPreviewData   { return build(elegantPersona(), false) }
func ElegantThumbnail() models.EditorPreviewData { return build(elegantPersona(), true) }

func V1Preview() models.EditorPreviewData   { return build(v1Persona(), false) }
func V1Thumbnail() models.EditorPreviewData { return build(v1Persona(), true) }

func defaultPersona() persona {
	return persona{
		slug:      "sophia-carter",
		fullName:  "Sophia Carter",
		brandName: "Sophia Carter Studio",
		tagline:   "Lifestyle & travel storyteller",
		bio:       "I share slow travel, everyday rituals and honest product reviews with a community that loves discovering new places.",
		niche:     "Lifestyle",
		location:  "Los Angeles, CA",
		font:      theme.FontSans,
		colors: models.ColorScheme{
			Background:  "#FFFFFF",
			Text:        "#1F2937",
			Secondary:   "#6B7280",
			AccentLight: "#F3E8FF",
			Accent:      "#EC4899",
			Primary:     "#9333EA",
		},
		skills: []string{"Content Strategy", "Photography", "Video Editing", "Copywriting", "Community Building"},
		services: []models.Service{
			{ID: "svc-1", ServiceName: "Instagram Reel", Description: "One 30-60s reel with two rounds of revisions.", PriceRange: "$800 - $1,200"},
			{ID: "svc-2", ServiceName: "TikTok Video", Description: "Native TikTok concept, script and edit.", PriceRange: "$600 - $900"},
			{ID: "svc-3", ServiceName: "Story Set", Description: "Three-frame story sequence with link sticker.", PriceRange: "$300 - $500"},
		},
		collaborations: []models.BrandCollaboration{
			{ID: "collab-1", BrandName: "Glossier", Description: "Summer skincare launch", CollaborationType: "Sponsored Post", CollaborationDate: "2024-06"},
			{ID: "collab-2", BrandName: "Airbnb", Description: "City guide series", CollaborationType: "Campaign", CollaborationDate: "2024-03"},
			{ID: "collab-3", BrandName: "Lululemon", Description: "Morning routine feature", CollaborationType: "Ambassador", CollaborationDate: "2023-11"},
		},
		videos: []models.VideoItem{
			tiktok("sophiacarter", "7301234567890123456", "Packing for Lisbon"),
			tiktok("sophiacarter", "7309876543210987654", "Sunday reset"),
			youtube("dQw4w9WgXcQ", "Week in my life"),
		},
		followers:         125000,
		engagementRate:    4.8,
		avgLikes:          6200,
		avgComments:       340,
		weeklyReach:       310000,
		impressions:       1450000,
		audienceAge:       "18-34",
		audienceGender:    "72% Female, 28% Male",
		audienceLocations: "United States, Canada, United Kingdom",
		audienceInterests: "Travel, Wellness, Fashion",
	}
}

func aestheticPersona() persona {
	return persona{
		slug:      "luna-park",
		fullName:  "Luna Park",
		brandName: "Luna Beauty",
		tagline:   "Soft glam & skincare diaries",
		bio:       "Pastel palettes, gentle routines and makeup that feels like you. Based in Seoul, creating for a worldwide audience.",
		niche:     "Beauty",
		location:  "Seoul, South Korea",
		font:      theme.FontRounded,
		colors: models.ColorScheme{
			Background:  "#FDF8F5",
			Text:        "#3F3F46",
			Secondary:   "#A1A1AA",
			AccentLight: "#FCE7F3",
			Accent:      "#F472B6",
			Primary:     "#DB2777",
		},
		skills: []string{"Makeup Artistry", "Skincare Education", "Product Photography", "Reels"},
		services: []models.Service{
			{ID: "svc-1", ServiceName: "Get Ready With Me", Description: "Full routine video featuring your product.", PriceRange: "$1,000 - $1,500"},
			{ID: "svc-2", ServiceName: "Product Flatlay", Description: "Three styled photos for your feed.", PriceRange: "$400 - $650"},
			{ID: "svc-3", ServiceName: "Unboxing Story", Description: "Authentic first impressions in stories.", PriceRange: "$250 - $400"},
		},
		collaborations: []models.BrandCollaboration{
			{ID: "collab-1", BrandName: "Laneige", Description: "Lip sleeping mask campaign", CollaborationType: "Campaign"},
			{ID: "collab-2", BrandName: "Sephora", Description: "Holiday gift guide", CollaborationType: "Sponsored Post"},
			{ID: "collab-3", BrandName: "Innisfree", Description: "Green tea line", CollaborationType: "Ambassador"},
		},
		videos: []models.VideoItem{
			tiktok("lunapark", "7312345678901234567", "Glass skin routine"),
			tiktok("lunapark", "7318765432109876543", "5 minute makeup"),
		},
		followers:         86000,
		engagementRate:    6.2,
		avgLikes:          5300,
		avgComments:       410,
		weeklyReach:       190000,
		impressions:       820000,
		audienceAge:       "18-24",
		audienceGender:    "85% Female, 15% Male",
		audienceLocations: "South Korea, United States, Philippines",
		audienceInterests: "Skincare, Makeup, K-Beauty",
	}
}

func luxuryPersona() persona {
	return persona{
		slug:      "isabella-laurent",
		fullName:  "Isabella Laurent",
		brandName: "Maison Laurent",
		tagline:   "Haute couture, fine travel & timeless style",
		bio:       "Editorial fashion and five-star travel for an audience that values craftsmanship. Paris based, available worldwide.",
		niche:     "Luxury Fashion",
		location:  "Paris, France",
		font:      theme.FontSerif,
		colors: models.ColorScheme{
			Background:  "#0B0B0C",
			Text:        "#F5F5F4",
			Secondary:   "#A8A29E",
			AccentLight: "#FDE68A",
			Accent:      "#D4AF37",
			Primary:     "#D4AF37",
		},
		skills: []string{"Editorial Styling", "Art Direction", "Luxury Travel", "Event Hosting"},
		services: []models.Service{
			{ID: "svc-1", ServiceName: "Editorial Campaign", Description: "Concept, styling and a six-image editorial.", PriceRange: "$5,000 - $8,000"},
			{ID: "svc-2", ServiceName: "Event Appearance", Description: "Red carpet or launch event coverage.", PriceRange: "$3,500+"},
			{ID: "svc-3", ServiceName: "Hotel Feature", Description: "Two-night stay with reel and carousel.", PriceRange: "$4,000 - $6,000"},
		},
		collaborations: []models.BrandCollaboration{
			{ID: "collab-1", BrandName: "Cartier", Description: "Panthère anniversary", CollaborationType: "Campaign"},
			{ID: "collab-2", BrandName: "Four Seasons", Description: "Riviera escape", CollaborationType: "Hotel Partnership"},
			{ID: "collab-3", BrandName: "Dior", Description: "Fashion week coverage", CollaborationType: "Event"},
		},
		videos: []models.VideoItem{
			tiktok("isabellalaurent", "7323456789012345678", "Front row in Paris"),
			youtube("M7lc1UVf-VE", "Inside the atelier"),
		},
		followers:         420000,
		engagementRate:    3.1,
		avgLikes:          12800,
		avgComments:       510,
		weeklyReach:       880000,
		impressions:       3900000,
		audienceAge:       "25-44",
		audienceGender:    "64% Female, 36% Male",
		audienceLocations: "France, United States, United Arab Emirates",
		audienceInterests: "Fashion, Fine Dining, Travel",
	}
}

func elegantPersona() persona {
	return persona{
		slug:      "amelia-hart",
		fullName:  "Amelia Hart",
		brandName: "Hart & Home",
		tagline:   "Mindful living, interiors & slow mornings",
		bio:       "Calm interiors, seasonal recipes and wellness rituals for people who want a softer pace of life.",
		niche:     "Home & Wellness",
		location:  "London, United Kingdom",
		font:      theme.FontElegant,
		colors: models.ColorScheme{
			Background:  "#FAF7F2",
			Text:        "#2D2A26",
			Secondary:   "#8C857B",
			AccentLight: "#E8DCCB",
			Accent:      "#B08968",
			Primary:     "#7F5539",
		},
		skills: []string{"Interior Styling", "Recipe Development", "Yoga", "Long-form Writing"},
		services: []models.Service{
			{ID: "svc-1", ServiceName: "Home Tour Feature", Description: "Styled room reveal with product tags.", PriceRange: "$1,200 - $1,800"},
			{ID: "svc-2", ServiceName: "Recipe Series", Description: "Three seasonal recipes with photography.", PriceRange: "$900 - $1,400"},
		},
		collaborations: []models.BrandCollaboration{
			{ID: "collab-1", BrandName: "Le Creuset", Description: "Autumn kitchen edit", CollaborationType: "Sponsored Post"},
			{ID: "collab-2", BrandName: "Aesop", Description: "Evening ritual", CollaborationType: "Campaign"},
		},
		videos: []models.VideoItem{
			tiktok("ameliahart", "7334567890123456789", "Slow Sunday morning"),
			youtube("ScMzIvxBSi4", "Cottage kitchen tour"),
		},
		followers:         58000,
		engagementRate:    5.4,
		avgLikes:          3100,
		avgComments:       220,
		weeklyReach:       140000,
		impressions:       560000,
		audienceAge:       "25-44",
		audienceGender:    "78% Female, 22% Male",
		audienceLocations: "United Kingdom, Ireland, Australia",
		audienceInterests: "Interiors, Cooking, Wellness",
	}
}

func v1Persona() persona {
	return persona{
		slug:      "alex-rivera",
		fullName:  "Alex Rivera",
		brandName: "Rivera Tech",
		tagline:   "Gadgets, setups & honest reviews",
		bio:       "Desk setups, productivity tools and no-nonsense tech reviews for creators and remote workers.",
		niche:     "Technology",
		location:  "Austin, TX",
		font:      theme.FontV1,
		colors: models.ColorScheme{
			Background:  "#F8FAFC",
			Text:        "#0F172A",
			Secondary:   "#64748B",
			AccentLight: "#DBEAFE",
			Accent:      "#3B82F6",
			Primary:     "#1D4ED8",
		},
		skills: []string{"Product Reviews", "Tutorials", "Live Streaming", "Scriptwriting", "Motion Graphics"},
		services: []models.Service{
			{ID: "svc-1", ServiceName: "Dedicated Review", Description: "8-12 minute YouTube review.", PriceRange: "$2,500 - $4,000"},
			{ID: "svc-2", ServiceName: "Integrated Mention", Description: "60-90s integration in a weekly video.", PriceRange: "$1,200 - $1,800"},
			{ID: "svc-3", ServiceName: "Short Form Bundle", Description: "Three TikTok or Shorts clips.", PriceRange: "$900 - $1,500"},
		},
		collaborations: []models.BrandCollaboration{
			{ID: "collab-1", BrandName: "Logitech", Description: "MX desk setup", CollaborationType: "Sponsored Video"},
			{ID: "collab-2", BrandName: "Notion", Description: "Productivity system walkthrough", CollaborationType: "Integration"},
			{ID: "collab-3", BrandName: "Anker", Description: "Charging gear roundup", CollaborationType: "Review"},
		},
		videos: []models.VideoItem{
			youtube("aqz-KE-bpKQ", "Ultimate desk setup 2024"),
			tiktok("alexrivera", "7345678901234567890", "3 gadgets under $50"),
			tiktok("alexrivera", "7349876543210123456", "Cable management hack"),
		},
		followers:         240000,
		engagementRate:    3.9,
		avgLikes:          8700,
		avgComments:       960,
		weeklyReach:       520000,
		impressions:       2100000,
		audienceAge:       "18-34",
		audienceGender:    "31% Female, 69% Male",
		audienceLocations: "United States, India, Germany",
		audienceInterests: "Technology, Productivity, Gaming",
	}
}
