package siteconfig

import (
	"encoding/json"
	"strings"
)

// SocialLink is a footer/header social entry. It has no table of its
// own: links live inside the serialized site configuration and are
// rewritten with it.
type SocialLink struct {
	ID            string `json:"id"`
	Platform      string `json:"platform"`
	URL           string `json:"url"`
	IsVisible     bool   `json:"isVisible"`
	CustomIconURL string `json:"customIconUrl,omitempty"`
}

// Platforms is the closed set of supported social platforms.
// CustomIconURL is only meaningful for "Other".
var Platforms = []string{"Facebook", "Twitter", "YouTube", "TikTok", "WhatsApp", "Other"}

// ValidPlatform reports whether p is a member of Platforms.
func ValidPlatform(p string) bool {
	for _, known := range Platforms {
		if known == p {
			return true
		}
	}
	return false
}

// GalleryEntry is the gallery image as it appears inside the
// configuration view. The collection itself is stored in the gallery
// table; this slice is spliced in at load time and stripped before the
// configuration record is persisted.
type GalleryEntry struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// SiteConfig is the singleton configuration record describing all
// editable site text, colors, sizes, visibility flags and button
// styling. Every visible content unit follows the same quadruple:
// value, color, size-or-shape, visibility flag.
type SiteConfig struct {
	// Hero
	Headline             string `json:"headline"`
	HeadlineSize         string `json:"headlineSize"`
	HeadlineColor        string `json:"headlineColor"`
	HeroSubHeadline      string `json:"heroSubHeadline"`
	HeroSubHeadlineSize  string `json:"heroSubHeadlineSize"`
	HeroSubHeadlineColor string `json:"heroSubHeadlineColor"`
	HeroButtonText       string `json:"heroButtonText"`
	HeroImage            string `json:"heroImage"`
	Logo                 string `json:"logo"`

	// Contact
	PhoneNumber      string `json:"phoneNumber"`
	ShowPhoneNumber  bool   `json:"showPhoneNumber"`
	PhoneTextColor   string `json:"phoneTextColor"`
	PhoneTextSize    string `json:"phoneTextSize"`
	Address          string `json:"address"`
	ShowAddress      bool   `json:"showAddress"`
	AddressTextColor string `json:"addressTextColor"`
	AddressTextSize  string `json:"addressTextSize"`
	Email            string `json:"email"`
	ShowEmail        bool   `json:"showEmail"`
	EmailTextColor   string `json:"emailTextColor"`
	EmailTextSize    string `json:"emailTextSize"`

	// Home section 1 (gallery/features)
	HomeSection1Title      string `json:"homeSection1Title"`
	HomeSection1TitleSize  string `json:"homeSection1TitleSize"`
	HomeSection1TitleColor string `json:"homeSection1TitleColor"`
	HomeSection1Sub        string `json:"homeSection1Sub"`
	HomeSection1SubSize    string `json:"homeSection1SubSize"`
	HomeSection1SubColor   string `json:"homeSection1SubColor"`

	// Quote section
	QuoteSectionTitle      string `json:"quoteSectionTitle"`
	QuoteSectionTitleSize  string `json:"quoteSectionTitleSize"`
	QuoteSectionTitleColor string `json:"quoteSectionTitleColor"`
	QuoteSectionSub        string `json:"quoteSectionSub"`
	QuoteSectionSubSize    string `json:"quoteSectionSubSize"`
	QuoteSectionSubColor   string `json:"quoteSectionSubColor"`

	// Testimonials section
	TestimonialsSectionTitle      string `json:"testimonialsSectionTitle"`
	TestimonialsSectionTitleSize  string `json:"testimonialsSectionTitleSize"`
	TestimonialsSectionTitleColor string `json:"testimonialsSectionTitleColor"`
	TestimonialsSectionSub        string `json:"testimonialsSectionSub"`
	TestimonialsSectionSubSize    string `json:"testimonialsSectionSubSize"`
	TestimonialsSectionSubColor   string `json:"testimonialsSectionSubColor"`

	// Map section
	MapSectionTitle      string `json:"mapSectionTitle"`
	MapSectionTitleSize  string `json:"mapSectionTitleSize"`
	MapSectionTitleColor string `json:"mapSectionTitleColor"`
	MapSectionSub        string `json:"mapSectionSub"`
	MapSectionSubSize    string `json:"mapSectionSubSize"`
	MapSectionSubColor   string `json:"mapSectionSubColor"`

	// FAQ section
	FAQSectionTitle      string `json:"faqSectionTitle"`
	FAQSectionTitleSize  string `json:"faqSectionTitleSize"`
	FAQSectionTitleColor string `json:"faqSectionTitleColor"`
	FAQSectionSub        string `json:"faqSectionSub"`
	FAQSectionSubSize    string `json:"faqSectionSubSize"`
	FAQSectionSubColor   string `json:"faqSectionSubColor"`

	// Technical
	MapEmbedURL           string `json:"mapEmbedUrl"`
	MapImage              string `json:"mapImage"`
	LocationDirectionsURL string `json:"locationDirectionsUrl"`
	LicenseNumber         string `json:"licenseNumber"`

	// Business name: four independently colored fragments joined in
	// fixed order. Any fragment may be empty.
	BusinessNamePart1  string `json:"businessNamePart1"`
	BusinessNameColor1 string `json:"businessNameColor1"`
	BusinessNamePart2  string `json:"businessNamePart2"`
	BusinessNameColor2 string `json:"businessNameColor2"`
	BusinessNamePart3  string `json:"businessNamePart3"`
	BusinessNameColor3 string `json:"businessNameColor3"`
	BusinessNamePart4  string `json:"businessNamePart4"`
	BusinessNameColor4 string `json:"businessNameColor4"`

	SocialLinks []SocialLink   `json:"socialLinks"`
	Gallery     []GalleryEntry `json:"gallery,omitempty"`

	// Badges
	HeroTopBadgeText    string `json:"heroTopBadgeText"`
	ShowHeroTopBadge    bool   `json:"showHeroTopBadge"`
	HeroTopBadgeSize    string `json:"heroTopBadgeSize"`
	HeroTopBadgeColor   string `json:"heroTopBadgeColor"`
	HeroTopBadgeBgColor string `json:"heroTopBadgeBgColor"`

	HeroTrustBadge1Text string `json:"heroTrustBadge1Text"`
	ShowHeroTrustBadge1 bool   `json:"showHeroTrustBadge1"`
	HeroTrustBadge2Text string `json:"heroTrustBadge2Text"`
	ShowHeroTrustBadge2 bool   `json:"showHeroTrustBadge2"`
	HeroTrustBadgeSize  string `json:"heroTrustBadgeSize"`
	HeroTrustBadgeColor string `json:"heroTrustBadgeColor"`

	// SEO
	SEOKeywords      string `json:"seoKeywords"`
	HiddenKeywords   string `json:"hiddenKeywords"`
	CustomSchema     string `json:"customSchema"`
	KeywordTextSize  string `json:"keywordTextSize"`
	KeywordTextColor string `json:"keywordTextColor"`
	KeywordBadgeColor string `json:"keywordBadgeColor"`
	KeywordBgColor   string `json:"keywordBgColor"`

	// Buttons
	HeroButtonColor string `json:"heroButtonColor"`
	ShowHeroButton  bool   `json:"showHeroButton"`
	HeroButtonSize  string `json:"heroButtonSize"`
	HeroButtonShape string `json:"heroButtonShape"`

	DirectionsButtonText  string `json:"directionsButtonText"`
	DirectionsButtonColor string `json:"directionsButtonColor"`
	ShowDirectionsButton  bool   `json:"showDirectionsButton"`
	DirectionsButtonSize  string `json:"directionsButtonSize"`
	DirectionsButtonShape string `json:"directionsButtonShape"`

	FAQCallButtonText  string `json:"faqCallButtonText"`
	FAQCallButtonColor string `json:"faqCallButtonColor"`
	ShowFAQCallButton  bool   `json:"showFaqCallButton"`
	FAQCallButtonSize  string `json:"faqCallButtonSize"`
	FAQCallButtonShape string `json:"faqCallButtonShape"`

	QuoteButtonText  string `json:"quoteButtonText"`
	QuoteButtonColor string `json:"quoteButtonColor"`
	ShowQuoteButton  bool   `json:"showQuoteButton"`
	QuoteButtonSize  string `json:"quoteButtonSize"`
	QuoteButtonShape string `json:"quoteButtonShape"`
}

// Merge layers a stored configuration document over the defaults.
// The merge is shallow: every key present in the document overrides
// its default, absent keys keep the default, and sub-objects such as
// socialLinks are replaced wholesale rather than merged key by key.
func Merge(stored []byte) (SiteConfig, error) {
	cfg := Defaults()
	if len(stored) == 0 {
		return cfg, nil
	}
	if err := json.Unmarshal(stored, &cfg); err != nil {
		return Defaults(), err
	}
	return cfg, nil
}

// MarshalForStore serializes the configuration for the site_config
// table. The gallery field is owned by the gallery table and must
// never ride along, or the two stores drift apart.
func (c SiteConfig) MarshalForStore() ([]byte, error) {
	c.Gallery = nil
	return json.Marshal(c)
}

// DisplayName joins the four business-name fragments with single
// spaces, skipping empty fragments so no double spacing appears.
func (c SiteConfig) DisplayName() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{c.BusinessNamePart1, c.BusinessNamePart2, c.BusinessNamePart3, c.BusinessNamePart4} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// VisibleKeywords returns seoKeywords minus hiddenKeywords, trimmed,
// in original order. Duplicates are kept as-is.
func (c SiteConfig) VisibleKeywords() []string {
	hidden := map[string]bool{}
	for _, k := range strings.Split(c.HiddenKeywords, ",") {
		if k = strings.TrimSpace(k); k != "" {
			hidden[k] = true
		}
	}
	visible := []string{}
	for _, k := range strings.Split(c.SEOKeywords, ",") {
		if k = strings.TrimSpace(k); k != "" && !hidden[k] {
			visible = append(visible, k)
		}
	}
	return visible
}

// VisibleSocialLinks returns the isVisible subset in original order.
func (c SiteConfig) VisibleSocialLinks() []SocialLink {
	visible := []SocialLink{}
	for _, l := range c.SocialLinks {
		if l.IsVisible {
			visible = append(visible, l)
		}
	}
	return visible
}

// Normalize fills absent styling tokens with their documented
// per-field defaults so the view never carries an unrepresentable
// state: text sizes fall back to "base", button sizes to "md" and
// shapes to "rounded".
func (c *SiteConfig) Normalize() {
	textSizes := []*string{
		&c.HeadlineSize, &c.HeroSubHeadlineSize,
		&c.PhoneTextSize, &c.AddressTextSize, &c.EmailTextSize,
		&c.HomeSection1TitleSize, &c.HomeSection1SubSize,
		&c.QuoteSectionTitleSize, &c.QuoteSectionSubSize,
		&c.TestimonialsSectionTitleSize, &c.TestimonialsSectionSubSize,
		&c.MapSectionTitleSize, &c.MapSectionSubSize,
		&c.FAQSectionTitleSize, &c.FAQSectionSubSize,
		&c.HeroTopBadgeSize, &c.HeroTrustBadgeSize, &c.KeywordTextSize,
	}
	for _, p := range textSizes {
		if *p == "" {
			*p = "base"
		}
	}

	buttonSizes := []*string{&c.HeroButtonSize, &c.DirectionsButtonSize, &c.FAQCallButtonSize, &c.QuoteButtonSize}
	for _, p := range buttonSizes {
		if *p == "" {
			*p = "md"
		}
	}

	shapes := []*string{&c.HeroButtonShape, &c.DirectionsButtonShape, &c.FAQCallButtonShape, &c.QuoteButtonShape}
	for _, p := range shapes {
		if *p == "" {
			*p = "rounded"
		}
	}
}
