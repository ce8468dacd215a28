package handlers

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/onkaul/internal/models"
)

func TestFAQListFallsBackToBundledDefaults(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/faqs", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var faqs []models.FAQ
	decodeData(t, resp, &faqs)
	require.Len(t, faqs, 5)
	assert.Equal(t, "Do you pay cash for junk cars in Milwaukee?", faqs[0].Question)
}

func TestFAQCreateAndOrder(t *testing.T) {
	app, _ := newTestApp(t)

	first := doRequest(t, app, fiber.MethodPost, "/api/admin/faqs", fiber.Map{
		"question": "Do you tow for free?",
		"answer":   "Yes, towing is always included.",
	})
	require.Equal(t, fiber.StatusCreated, first.StatusCode)

	second := doRequest(t, app, fiber.MethodPost, "/api/admin/faqs", fiber.Map{
		"question": "Do I need to be home?",
		"answer":   "No, we can pick up with keys and title left out.",
	})
	require.Equal(t, fiber.StatusCreated, second.StatusCode)

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/faqs", nil)
	var faqs []models.FAQ
	decodeData(t, resp, &faqs)

	require.Len(t, faqs, 2)
	assert.Equal(t, "Do you tow for free?", faqs[0].Question)
	assert.Equal(t, "Do I need to be home?", faqs[1].Question)
	assert.Less(t, faqs[0].ID, faqs[1].ID)
}

func TestFAQCreateRequiresQuestionAndAnswer(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/admin/faqs", fiber.Map{"question": "Only a question"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFAQUpdate(t *testing.T) {
	app, _ := newTestApp(t)

	created := doRequest(t, app, fiber.MethodPost, "/api/admin/faqs", fiber.Map{
		"question": "Old question?",
		"answer":   "Old answer.",
	})
	var faq models.FAQ
	decodeData(t, created, &faq)

	resp := doRequest(t, app, fiber.MethodPut, fmt.Sprintf("/api/admin/faqs/%d", faq.ID), fiber.Map{
		"answer": "New answer.",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.FAQ
	decodeData(t, resp, &updated)
	assert.Equal(t, faq.ID, updated.ID)
	assert.Equal(t, "Old question?", updated.Question)
	assert.Equal(t, "New answer.", updated.Answer)
}

func TestFAQUpdateMissingEntry(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPut, "/api/admin/faqs/999", fiber.Map{"answer": "x"})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFAQDeleteIsIdempotent(t *testing.T) {
	app, db := newTestApp(t)

	created := doRequest(t, app, fiber.MethodPost, "/api/admin/faqs", fiber.Map{
		"question": "Will this survive?",
		"answer":   "No.",
	})
	var faq models.FAQ
	decodeData(t, created, &faq)

	path := fmt.Sprintf("/api/admin/faqs/%d", faq.ID)
	resp := doRequest(t, app, fiber.MethodDelete, path, nil)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Racing deletes of the same entry both land as no-ops.
	resp = doRequest(t, app, fiber.MethodDelete, path, nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&models.FAQ{}).Count(&count).Error)
	assert.Zero(t, count)
}
