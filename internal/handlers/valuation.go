package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/onkaul/internal/services"
)

// ValuationHandler exposes the AI market estimate to the quote form.
type ValuationHandler struct {
	svc *services.ValuationService
}

// NewValuationHandler constructs ValuationHandler.
func NewValuationHandler(svc *services.ValuationService) *ValuationHandler {
	return &ValuationHandler{svc: svc}
}

// Estimate returns a cash value range for the vehicle. The oracle
// never fails: any upstream problem yields the documented fallback.
func (h *ValuationHandler) Estimate(c *fiber.Ctx) error {
	var req services.ValuationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Year == "" || req.Make == "" || req.Model == "" {
		return fiber.NewError(fiber.StatusBadRequest, "year, make and model are required")
	}
	if req.Condition == "" {
		req.Condition = "Non-Running"
	}

	result := h.svc.EstimateValue(c.Context(), req)
	return c.JSON(fiber.Map{"success": true, "data": result})
}
