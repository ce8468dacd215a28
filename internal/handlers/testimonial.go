package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/onkaul/internal/models"
)

// TestimonialHandler manages customer reviews.
type TestimonialHandler struct {
	db *gorm.DB
}

// NewTestimonialHandler constructs TestimonialHandler.
func NewTestimonialHandler(db *gorm.DB) *TestimonialHandler {
	return &TestimonialHandler{db: db}
}

// List returns reviews newest-first by date.
func (h *TestimonialHandler) List(c *fiber.Ctx) error {
	items := []models.Testimonial{}
	if err := h.db.Order("date desc").Find(&items).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

type createTestimonialRequest struct {
	Name       string `json:"name"`
	Text       string `json:"text"`
	ImageURL   string `json:"imageUrl"`
	LogoColor  string `json:"logoColor"`
	YoutubeURL string `json:"youtubeUrl"`
}

// Create publishes a review. The date is fixed at creation time and
// never mutated afterwards.
func (h *TestimonialHandler) Create(c *fiber.Ctx) error {
	var req createTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" || req.Text == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name and text are required")
	}

	item := models.Testimonial{
		Name:       req.Name,
		Text:       req.Text,
		ImageURL:   req.ImageURL,
		LogoColor:  req.LogoColor,
		YoutubeURL: req.YoutubeURL,
		Date:       time.Now(),
	}
	if err := h.db.Create(&item).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

type updateTestimonialRequest struct {
	Name       *string `json:"name"`
	Text       *string `json:"text"`
	ImageURL   *string `json:"imageUrl"`
	LogoColor  *string `json:"logoColor"`
	YoutubeURL *string `json:"youtubeUrl"`
}

// Update edits review content. The id and date stay untouched.
func (h *TestimonialHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.Testimonial
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "testimonial not found")
		}
		return err
	}

	var req updateTestimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Text != nil {
		item.Text = *req.Text
	}
	if req.ImageURL != nil {
		item.ImageURL = *req.ImageURL
	}
	if req.LogoColor != nil {
		item.LogoColor = *req.LogoColor
	}
	if req.YoutubeURL != nil {
		item.YoutubeURL = *req.YoutubeURL
	}

	if err := h.db.Save(&item).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": item})
}

// Delete removes a review by id. Deleting an absent id is a no-op.
func (h *TestimonialHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(&models.Testimonial{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
