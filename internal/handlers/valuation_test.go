package handlers

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/onkaul/internal/services"
)

func valuationApp() *fiber.App {
	app := fiber.New()
	h := NewValuationHandler(services.NewValuationService("", "gemini-2.5-flash"))
	app.Post("/api/valuation", h.Estimate)
	return app
}

func TestValuationRequiresVehicleDetails(t *testing.T) {
	app := valuationApp()

	resp := doRequest(t, app, fiber.MethodPost, "/api/valuation", fiber.Map{"year": "2010"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestValuationAlwaysAnswers(t *testing.T) {
	app := valuationApp()

	resp := doRequest(t, app, fiber.MethodPost, "/api/valuation", fiber.Map{
		"year": "2010", "make": "Toyota", "model": "Corolla",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result services.ValuationResult
	decodeData(t, resp, &result)
	assert.Equal(t, services.FallbackValuation(), result)
}
