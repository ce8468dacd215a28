package handlers

import (
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/onkaul/internal/models"
	"github.com/example/onkaul/internal/services"
	"github.com/example/onkaul/internal/utils"
)

// LeadHandler manages quote request intake and the admin lead
// database.
type LeadHandler struct {
	db       *gorm.DB
	telegram *services.TelegramService
}

// NewLeadHandler constructs LeadHandler.
func NewLeadHandler(db *gorm.DB, telegram *services.TelegramService) *LeadHandler {
	return &LeadHandler{db: db, telegram: telegram}
}

type submitLeadRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Year        string `json:"year"`
	Make        string `json:"make"`
	Model       string `json:"model"`
	Condition   string `json:"condition"`
	TitleStatus string `json:"titleStatus"`
	Address     string `json:"address"`
	Message     string `json:"message"`
}

func (r submitLeadRequest) missingFields() []string {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", r.FirstName},
		{"lastName", r.LastName},
		{"phone", r.Phone},
		{"year", r.Year},
		{"make", r.Make},
		{"model", r.Model},
		{"address", r.Address},
	}
	missing := []string{}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Submit records a quote request. This is the one path where a store
// failure is surfaced to the visitor as a blocking error; on success
// the generated form number is the confirmation code they keep.
func (h *LeadHandler) Submit(c *fiber.Ctx) error {
	var req submitLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if missing := req.missingFields(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
	}

	if req.Condition == "" {
		req.Condition = "Non-Running"
	}
	if req.TitleStatus == "" {
		req.TitleStatus = "Clean Title"
	}

	lead := models.Lead{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Phone:       req.Phone,
		Email:       req.Email,
		Year:        req.Year,
		Make:        req.Make,
		Model:       req.Model,
		Condition:   req.Condition,
		TitleStatus: req.TitleStatus,
		Address:     req.Address,
		Message:     req.Message,
		FormNumber:  utils.GenerateFormNumber(),
		Status:      "New",
	}

	if err := h.db.Create(&lead).Error; err != nil {
		log.Printf("[Lead] insert failed: %v", err)
		return fiber.NewError(fiber.StatusBadGateway, "submission failed: "+err.Error())
	}

	if h.telegram != nil {
		go func(l models.Lead) {
			if err := h.telegram.NotifyNewLead(services.LeadNotification{
				FormNumber:  l.FormNumber,
				Name:        l.FirstName + " " + l.LastName,
				Phone:       l.Phone,
				Vehicle:     fmt.Sprintf("%s %s %s", l.Year, l.Make, l.Model),
				Condition:   l.Condition,
				TitleStatus: l.TitleStatus,
				Address:     l.Address,
			}); err != nil {
				log.Printf("[Lead] telegram notification failed for %s: %v", l.ID, err)
			}
		}(lead)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":         lead.ID,
			"formNumber": lead.FormNumber,
			"status":     lead.Status,
			"createdAt":  lead.CreatedAt,
		},
	})
}

// List returns the lead database newest-first for the admin panel.
func (h *LeadHandler) List(c *fiber.Ctx) error {
	pg := utils.ParsePagination(c)

	var total int64
	if err := h.db.Model(&models.Lead{}).Count(&total).Error; err != nil {
		return err
	}

	items := []models.Lead{}
	if err := h.db.Limit(pg.Limit).Offset(pg.Offset).
		Order("created_at desc").Find(&items).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": items, "pagination": fiber.Map{
		"current_page":   pg.Page,
		"items_per_page": pg.Limit,
		"total_items":    total,
	}})
}

// Get returns one lead by its row id.
func (h *LeadHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var lead models.Lead
	if err := h.db.First(&lead, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "lead not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": lead})
}

// Receipt returns the read-only projection the receipt renderer
// consumes. Leads are always resolved by row id, never by form
// number.
func (h *LeadHandler) Receipt(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var lead models.Lead
	if err := h.db.First(&lead, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "lead not found")
		}
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": lead.ToReceipt()})
}

type updateLeadStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus lets the back office move a lead through its pipeline.
func (h *LeadHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateLeadStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Status == "" {
		return fiber.NewError(fiber.StatusBadRequest, "status is required")
	}

	var lead models.Lead
	if err := h.db.First(&lead, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "lead not found")
		}
		return err
	}

	lead.Status = req.Status
	if err := h.db.Save(&lead).Error; err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true, "data": lead})
}
