package siteconfig

// defaultSchema is served as the initial customSchema value; admins
// edit it as free text.
const defaultSchema = `{
  "@context": "https://schema.org",
  "@type": "AutoSalvage",
  "name": "On Kaul Auto Salvage LLC",
  "alternateName": "Milwaukee Junk Car Removal Specialists",
  "description": "Top-rated cash for junk cars service in Milwaukee. We buy junk cars for cash and offer free towing and same-day removal across all surrounding areas.",
  "url": "https://onkaulsalvage.com",
  "telephone": "(414) 719-6558",
  "address": {
    "@type": "PostalAddress",
    "streetAddress": "8520 W Kaul Ave",
    "addressLocality": "Milwaukee",
    "addressRegion": "WI",
    "postalCode": "53225",
    "addressCountry": "US"
  },
  "geo": {
    "@type": "GeoCoordinates",
    "latitude": 43.1080275,
    "longitude": -88.0195521
  },
  "openingHours": "Mo-Fr 08:00-18:00, Sa 08:00-15:00"
}`

// Defaults returns the hard-coded default configuration. This is the
// canonical schema source of truth: every field has a value here, and
// the stored record is merged over it at load time.
func Defaults() SiteConfig {
	return SiteConfig{
		BusinessNamePart1:  "On",
		BusinessNameColor1: "#111827",
		BusinessNamePart2:  "Kaul Auto",
		BusinessNameColor2: "#111827",
		BusinessNamePart3:  "Salvage",
		BusinessNameColor3: "#16a34a",
		BusinessNamePart4:  "LLC",
		BusinessNameColor4: "#6b7280",

		Headline:             "Top Rated Cash for Junk Cars in Milwaukee",
		HeadlineSize:         "6xl",
		HeadlineColor:        "#ffffff",
		HeroSubHeadline:      "Looking to sell my junk car fast? We are the leading junk car buyers in Milwaukee. Get instant junk car removal and the most junk car for cash today with free towing.",
		HeroSubHeadlineSize:  "xl",
		HeroSubHeadlineColor: "#f3f4f6",
		HeroButtonText:       "Get Cash for Junk Cars",
		HeroButtonColor:      "#16a34a",
		ShowHeroButton:       true,
		HeroButtonSize:       "lg",
		HeroButtonShape:      "pill",
		HeroImage:            "https://images.unsplash.com/photo-1599404221775-816799042250?auto=format&fit=crop&q=80&w=2000",
		Logo:                 "",

		PhoneNumber:      "(414) 719-6558",
		ShowPhoneNumber:  true,
		PhoneTextColor:   "#16a34a",
		PhoneTextSize:    "base",
		Address:          "8520 W Kaul Ave, Milwaukee, WI 53225",
		ShowAddress:      true,
		AddressTextColor: "#9ca3af",
		AddressTextSize:  "sm",
		Email:            "quotes@onkaulsalvage.com",
		ShowEmail:        true,
		EmailTextColor:   "#9ca3af",
		EmailTextSize:    "sm",

		HomeSection1Title:      "Professional Junk Car Removal",
		HomeSection1TitleSize:  "5xl",
		HomeSection1TitleColor: "#111827",
		HomeSection1Sub:        "We buy junk cars near me and offer the most competitive Cash For Junk Cars in the Milwaukee area.",
		HomeSection1SubSize:    "xl",
		HomeSection1SubColor:   "#6b7280",

		QuoteSectionTitle:      "Get Your Highest Cash Offer",
		QuoteSectionTitleSize:  "5xl",
		QuoteSectionTitleColor: "#111827",
		QuoteSectionSub:        "We buy any junk car in Milwaukee. Our system connects your request directly to our secure yard for an instant review.",
		QuoteSectionSubSize:    "xl",
		QuoteSectionSubColor:   "#4b5563",

		MapSectionTitle:      "Our Milwaukee Yard",
		MapSectionTitleSize:  "5xl",
		MapSectionTitleColor: "#111827",
		MapSectionSub:        "Junk Yards Near Me • Open for Pickup",
		MapSectionSubSize:    "base",
		MapSectionSubColor:   "#6b7280",

		TestimonialsSectionTitle:      "Real Milwaukee Feedback",
		TestimonialsSectionTitleSize:  "5xl",
		TestimonialsSectionTitleColor: "#111827",
		TestimonialsSectionSub:        "See why we are the top choice for junk car removal. Our reputation as trusted junk car buyers has helped thousands sell junk car units.",
		TestimonialsSectionSubSize:    "xl",
		TestimonialsSectionSubColor:   "#4b5563",

		FAQSectionTitle:      "Frequently Asked Questions",
		FAQSectionTitleSize:  "4xl",
		FAQSectionTitleColor: "#ffffff",
		FAQSectionSub:        "Everything you need to know about selling your junk car in Milwaukee.",
		FAQSectionSubSize:    "xl",
		FAQSectionSubColor:   "#9ca3af",

		SocialLinks: []SocialLink{
			{ID: "1", Platform: "Facebook", URL: "https://facebook.com/onkaul", IsVisible: true},
			{ID: "2", Platform: "WhatsApp", URL: "https://wa.me/14147196558", IsVisible: true},
			{ID: "3", Platform: "YouTube", URL: "https://youtube.com/@onkaul", IsVisible: false},
		},
		MapEmbedURL:           "https://www.google.com/maps/embed?pb=!1m18!1m12!1m3!1d2912.8336336495343!2d-88.0195521!3d43.1080275!2m3!1f0!2f0!3f0!3m2!1i1024!2i768!4f13.1!3m3!1m2!1s0x88051a808f907897%3A0x6a2135967000e39b!2sOn%20Kaul%20Auto%20Salvage!5e0!3m2!1sen!2sus!4v1740000000000!5m2!1sen!2sus",
		MapImage:              "",
		LocationDirectionsURL: "https://maps.app.goo.gl/LDc7Gx1Fo7aP34Vz9",
		LicenseNumber:         "MV-SALVAGE-53225-01",

		HeroTopBadgeText:    "#1 Rated Junk Car Buyer in Milwaukee County",
		ShowHeroTopBadge:    true,
		HeroTopBadgeSize:    "sm",
		HeroTopBadgeColor:   "#ffffff",
		HeroTopBadgeBgColor: "#16a34a",

		HeroTrustBadge1Text: "WI LICENSED & INSURED",
		ShowHeroTrustBadge1: true,
		HeroTrustBadge2Text: "LOCAL MILWAUKEE OWNED",
		ShowHeroTrustBadge2: true,
		HeroTrustBadgeSize:  "sm",
		HeroTrustBadgeColor: "#ffffff",

		SEOKeywords:       "Junk car for cash, Cash for junk cars, Sell my junk car, Junk car removal, Junk yards near me, Sell junk car, we buy junk cars, junk cars near me, junk car buyers, buy junk cars near me",
		HiddenKeywords:    "",
		CustomSchema:      defaultSchema,
		KeywordTextSize:   "xs",
		KeywordTextColor:  "#9ca3af",
		KeywordBadgeColor: "#e5e7eb",
		KeywordBgColor:    "#ffffff",

		DirectionsButtonText:  "Open Directions",
		DirectionsButtonColor: "#16a34a",
		ShowDirectionsButton:  true,
		DirectionsButtonSize:  "sm",
		DirectionsButtonShape: "rounded",
		FAQCallButtonText:     "(414) 719-6558",
		FAQCallButtonColor:    "#16a34a",
		ShowFAQCallButton:     true,
		FAQCallButtonSize:     "lg",
		FAQCallButtonShape:    "rounded",
		QuoteButtonText:       "GET CASH QUOTE NOW",
		QuoteButtonColor:      "#16a34a",
		ShowQuoteButton:       true,
		QuoteButtonSize:       "lg",
		QuoteButtonShape:      "rounded",

		Gallery: []GalleryEntry{
			{
				ID:    "1",
				URL:   "https://images.unsplash.com/photo-1533473359331-0135ef1b58bf?auto=format&fit=crop&q=80&w=800",
				Title: "Fast Junk Car Removal",
				Desc:  "Same-day pickup for junk cars near me.",
			},
			{
				ID:    "2",
				URL:   "https://images.unsplash.com/photo-1544620347-c4fd4a3d5957?auto=format&fit=crop&q=80&w=800",
				Title: "Sell Junk Car Fast",
				Desc:  "We buy junk cars in any condition, running or not.",
			},
		},
	}
}

// DefaultFAQ is a bundled question/answer pair served when the faqs
// table is empty.
type DefaultFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// DefaultFAQs returns the bundled fallback FAQ list.
func DefaultFAQs() []DefaultFAQ {
	return []DefaultFAQ{
		{
			Question: "Do you pay cash for junk cars in Milwaukee?",
			Answer:   "Yes! On Kaul Auto Salvage pays top dollar cash on the spot for all junk cars, trucks, and SUVs in Milwaukee and surrounding areas. We provide immediate payments at the time of pickup.",
		},
		{
			Question: "How fast can I sell my junk car?",
			Answer:   "Most of our junk car removals are completed same-day. Once you accept our quote, we can often have a tow truck at your location within 1-4 hours to hand you cash and remove the vehicle.",
		},
		{
			Question: "Is junk car removal really free?",
			Answer:   "Absolutely. We never charge for towing or removal. The price we quote you is the exact amount of cash you will receive in your hand. No hidden fees or surprise deductions.",
		},
		{
			Question: "Do you buy cars that don’t run?",
			Answer:   "Yes, we buy cars in any condition! Whether your vehicle is wrecked, has engine failure, transmission issues, or is just old and taking up space, we will buy it for cash.",
		},
		{
			Question: "Can I sell my junk car without a title in Wisconsin?",
			Answer:   "In many cases, yes. While having a title makes the process faster, we can often purchase vehicles with just a valid registration and a driver's license matching the registration. Contact us to verify your specific situation.",
		},
	}
}
