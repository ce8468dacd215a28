package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/onkaul/internal/models"
	"github.com/example/onkaul/internal/siteconfig"
)

// FAQHandler manages question/answer entries.
type FAQHandler struct {
	db *gorm.DB
}

// NewFAQHandler constructs FAQHandler.
func NewFAQHandler(db *gorm.DB) *FAQHandler {
	return &FAQHandler{db: db}
}

// List returns FAQ rows in ascending id order, falling back to the
// bundled defaults when the table is empty.
func (h *FAQHandler) List(c *fiber.Ctx) error {
	items := []models.FAQ{}
	if err := h.db.Order("id asc").Find(&items).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return c.JSON(fiber.Map{"success": true, "data": siteconfig.DefaultFAQs()})
	}
	return c.JSON(fiber.Map{"success": true, "data": items})
}

type faqRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Create appends a new entry; the assigned id places it last in
// display order.
func (h *FAQHandler) Create(c *fiber.Ctx) error {
	var req faqRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Question == "" || req.Answer == "" {
		return fiber.NewError(fiber.StatusBadRequest, "question and answer are required")
	}

	item := models.FAQ{Question: req.Question, Answer: req.Answer}
	if err := h.db.Create(&item).Error; err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

type updateFAQRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

// Update edits question and/or answer for one entry.
func (h *FAQHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.FAQ
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "faq not found")
		}
		return err
	}

	var req updateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Question != nil {
		item.Question = *req.Question
	}
	if req.Answer != nil {
		item.Answer = *req.Answer
	}

	if err := h.db.Save(&item).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": item})
}

// Delete removes an entry by id. Deleting an absent id is a no-op, so
// racing deletes of the same entry are safe.
func (h *FAQHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}
	if err := h.db.Delete(&models.FAQ{}, "id = ?", id).Error; err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
