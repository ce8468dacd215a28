package handlers

import (
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/onkaul/internal/models"
	"github.com/example/onkaul/internal/siteconfig"
	"github.com/example/onkaul/internal/store"
)

// SiteHandler serves the public site view and the admin configuration
// editing endpoints, including the social links that live inside the
// configuration record.
type SiteHandler struct {
	db    *gorm.DB
	store *store.ConfigStore
}

// NewSiteHandler constructs SiteHandler.
func NewSiteHandler(db *gorm.DB, cs *store.ConfigStore) *SiteHandler {
	return &SiteHandler{db: db, store: cs}
}

const (
	defaultGalleryTitle = "Job Site"
	defaultGalleryDesc  = "Milwaukee"
)

func galleryEntries(rows []models.GalleryImage) []siteconfig.GalleryEntry {
	entries := make([]siteconfig.GalleryEntry, 0, len(rows))
	for _, row := range rows {
		title := row.Title
		if title == "" {
			title = defaultGalleryTitle
		}
		desc := row.Description
		if desc == "" {
			desc = defaultGalleryDesc
		}
		entries = append(entries, siteconfig.GalleryEntry{
			ID:    row.ID.String(),
			URL:   row.URL,
			Title: title,
			Desc:  desc,
		})
	}
	return entries
}

// loadView returns the merged configuration with the gallery
// collection spliced over the gallery field. Fetch errors are logged
// and degrade to whatever did load; the view is always served.
func (h *SiteHandler) loadView() siteconfig.SiteConfig {
	cfg := h.store.Load()
	cfg.Normalize()

	var rows []models.GalleryImage
	if err := h.db.Order("created_at desc").Find(&rows).Error; err != nil {
		log.Printf("[Site] gallery fetch failed: %v", err)
	} else if len(rows) > 0 {
		cfg.Gallery = galleryEntries(rows)
	}
	return cfg
}

// GetSite returns everything the public page needs in one payload:
// the merged configuration, testimonials newest-first, and the FAQ
// list (bundled defaults when the table is empty).
func (h *SiteHandler) GetSite(c *fiber.Ctx) error {
	cfg := h.loadView()

	reviews := []models.Testimonial{}
	if err := h.db.Order("date desc").Find(&reviews).Error; err != nil {
		log.Printf("[Site] testimonials fetch failed: %v", err)
		reviews = []models.Testimonial{}
	}

	faqs := []models.FAQ{}
	var faqPayload interface{}
	if err := h.db.Order("id asc").Find(&faqs).Error; err != nil {
		log.Printf("[Site] faq fetch failed: %v", err)
	}
	if len(faqs) == 0 {
		faqPayload = siteconfig.DefaultFAQs()
	} else {
		faqPayload = faqs
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"config":       cfg,
			"businessName": cfg.DisplayName(),
			"keywords":     cfg.VisibleKeywords(),
			"socialLinks":  cfg.VisibleSocialLinks(),
			"testimonials": reviews,
			"faqs":         faqPayload,
		},
	})
}

// GetConfig returns the full merged configuration for the admin
// editor, hidden fields included.
func (h *SiteHandler) GetConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true, "data": h.loadView()})
}

type updateFieldRequest struct {
	Field string          `json:"field"`
	Value json.RawMessage `json:"value"`
}

// UpdateField is the generic field setter: it validates one field,
// splices it into the stored document and persists the whole record.
func (h *SiteHandler) UpdateField(c *fiber.Ctx) error {
	var req updateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Field == "" {
		return fiber.NewError(fiber.StatusBadRequest, "field is required")
	}
	if err := siteconfig.ValidateField(req.Field, req.Value); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	cfg, err := h.store.SetField(req.Field, req.Value)
	if err != nil {
		return err
	}
	cfg.Normalize()
	return c.JSON(fiber.Map{"success": true, "data": cfg})
}

type toggleRequest struct {
	Field string `json:"field"`
}

// ToggleVisibility negates a boolean visibility flag through the same
// setter primitive UpdateField uses.
func (h *SiteHandler) ToggleVisibility(c *fiber.Ctx) error {
	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if !siteconfig.VisibilityField(req.Field) {
		return fiber.NewError(fiber.StatusBadRequest, "not a visibility flag")
	}

	updated, err := h.store.Toggle(req.Field)
	if err != nil {
		return err
	}
	updated.Normalize()
	return c.JSON(fiber.Map{"success": true, "data": updated})
}

// ReplaceConfig persists a whole configuration document at once, for
// clients that edit locally and push the full object.
func (h *SiteHandler) ReplaceConfig(c *fiber.Ctx) error {
	cfg := siteconfig.Defaults()
	if err := c.BodyParser(&cfg); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	for _, l := range cfg.SocialLinks {
		if !siteconfig.ValidPlatform(l.Platform) {
			return fiber.NewError(fiber.StatusBadRequest, "unknown social platform "+strconv.Quote(l.Platform))
		}
	}

	if err := h.store.Save(cfg); err != nil {
		return err
	}
	cfg.Normalize()
	return c.JSON(fiber.Map{"success": true, "data": cfg})
}

// Social links have no table of their own: every mutation rewrites
// the socialLinks array inside the configuration record.

type socialLinkRequest struct {
	Platform      string `json:"platform"`
	URL           string `json:"url"`
	IsVisible     *bool  `json:"isVisible"`
	CustomIconURL string `json:"customIconUrl"`
}

// AddSocialLink appends a link with a client-style timestamp id.
func (h *SiteHandler) AddSocialLink(c *fiber.Ctx) error {
	var req socialLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.URL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "url is required")
	}
	if req.Platform == "" {
		req.Platform = "Other"
	}
	if !siteconfig.ValidPlatform(req.Platform) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown social platform "+strconv.Quote(req.Platform))
	}

	link := siteconfig.SocialLink{
		ID:            strconv.FormatInt(time.Now().UnixMilli(), 10),
		Platform:      req.Platform,
		URL:           req.URL,
		IsVisible:     true,
		CustomIconURL: req.CustomIconURL,
	}
	if req.IsVisible != nil {
		link.IsVisible = *req.IsVisible
	}

	cfg := h.store.Load()
	cfg.SocialLinks = append(cfg.SocialLinks, link)
	if err := h.store.Save(cfg); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": cfg.SocialLinks})
}

// UpdateSocialLink edits an existing link in place.
func (h *SiteHandler) UpdateSocialLink(c *fiber.Ctx) error {
	id := c.Params("id")

	var req socialLinkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Platform != "" && !siteconfig.ValidPlatform(req.Platform) {
		return fiber.NewError(fiber.StatusBadRequest, "unknown social platform "+strconv.Quote(req.Platform))
	}

	cfg := h.store.Load()
	found := false
	for i := range cfg.SocialLinks {
		if cfg.SocialLinks[i].ID != id {
			continue
		}
		found = true
		if req.Platform != "" {
			cfg.SocialLinks[i].Platform = req.Platform
		}
		if req.URL != "" {
			cfg.SocialLinks[i].URL = req.URL
		}
		if req.IsVisible != nil {
			cfg.SocialLinks[i].IsVisible = *req.IsVisible
		}
		if req.CustomIconURL != "" {
			cfg.SocialLinks[i].CustomIconURL = req.CustomIconURL
		}
	}
	if !found {
		return fiber.NewError(fiber.StatusNotFound, "social link not found")
	}

	if err := h.store.Save(cfg); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": cfg.SocialLinks})
}

// RemoveSocialLink deletes a link by id. Removing an absent id is a
// no-op.
func (h *SiteHandler) RemoveSocialLink(c *fiber.Ctx) error {
	id := c.Params("id")

	cfg := h.store.Load()
	kept := cfg.SocialLinks[:0]
	for _, l := range cfg.SocialLinks {
		if l.ID != id {
			kept = append(kept, l)
		}
	}
	cfg.SocialLinks = kept

	if err := h.store.Save(cfg); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": cfg.SocialLinks})
}
