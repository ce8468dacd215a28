package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/onkaul/internal/models"
)

// GalleryHandler manages the yard photo gallery.
type GalleryHandler struct {
	db *gorm.DB
}

// NewGalleryHandler constructs GalleryHandler.
func NewGalleryHandler(db *gorm.DB) *GalleryHandler {
	return &GalleryHandler{db: db}
}

// List returns gallery rows newest-first.
func (h *GalleryHandler) List(c *fiber.Ctx) error {
	items := []models.GalleryImage{}
	if err := h.db.Order("created_at desc").Find(&items).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

type createGalleryRequest struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

// Create inserts an uploaded image. The url carries the already
// encoded data URL (or a plain http url); title and description fall
// back to the upload defaults.
func (h *GalleryHandler) Create(c *fiber.Ctx) error {
	var req createGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.URL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "url is required")
	}
	if req.Title == "" {
		req.Title = defaultGalleryTitle
	}
	if req.Desc == "" {
		req.Desc = defaultGalleryDesc
	}

	item := models.GalleryImage{
		URL:         req.URL,
		Title:       req.Title,
		Description: req.Desc,
	}
	if err := h.db.Create(&item).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

type updateGalleryRequest struct {
	Title *string `json:"title"`
	Desc  *string `json:"desc"`
}

// Update edits title and/or description, leaving the image alone.
func (h *GalleryHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.GalleryImage
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
		}
		return err
	}

	var req updateGalleryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Desc != nil {
		item.Description = *req.Desc
	}

	if err := h.db.Save(&item).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": item})
}

type replacePhotoRequest struct {
	URL string `json:"url"`
}

// Replace swaps the photo in place: only the url column changes, so
// the image keeps its id, title and description.
func (h *GalleryHandler) Replace(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req replacePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.URL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "url is required")
	}

	var item models.GalleryImage
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "gallery image not found")
		}
		return err
	}

	if err := h.db.Model(&item).Update("url", req.URL).Error; err != nil {
		return err
	}
	item.URL = req.URL
	return c.JSON(fiber.Map{"success": true, "data": item})
}

// Delete removes an image by id. Deleting an absent id is a no-op.
func (h *GalleryHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(&models.GalleryImage{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
