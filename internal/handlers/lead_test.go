package handlers

import (
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/onkaul/internal/models"
)

func validLeadBody() fiber.Map {
	return fiber.Map{
		"firstName": "James",
		"lastName":  "Carter",
		"phone":     "(414) 555-0100",
		"year":      "2009",
		"make":      "Honda",
		"model":     "Civic",
		"address":   "1200 W North Ave, Milwaukee, WI",
	}
}

func TestLeadSubmitReportsMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/leads", fiber.Map{
		"firstName": "James",
		"phone":     "(414) 555-0100",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "lastName")
	assert.Contains(t, string(body), "address")
	assert.NotContains(t, string(body), "firstName")
}

func TestLeadSubmitAppliesDefaultsAndFormNumber(t *testing.T) {
	app, db := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/leads", validLeadBody())
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		ID         string `json:"id"`
		FormNumber string `json:"formNumber"`
		Status     string `json:"status"`
	}
	decodeData(t, resp, &created)

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.FormNumber)
	assert.Equal(t, "New", created.Status)

	var lead models.Lead
	require.NoError(t, db.First(&lead, "id = ?", created.ID).Error)
	assert.Equal(t, "Non-Running", lead.Condition)
	assert.Equal(t, "Clean Title", lead.TitleStatus)
	assert.Equal(t, created.FormNumber, lead.FormNumber)
}

func TestLeadSubmitKeepsExplicitCondition(t *testing.T) {
	app, db := newTestApp(t)

	body := validLeadBody()
	body["condition"] = "Running"
	body["titleStatus"] = "No Title"

	resp := doRequest(t, app, fiber.MethodPost, "/api/leads", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created struct {
		ID string `json:"id"`
	}
	decodeData(t, resp, &created)

	var lead models.Lead
	require.NoError(t, db.First(&lead, "id = ?", created.ID).Error)
	assert.Equal(t, "Running", lead.Condition)
	assert.Equal(t, "No Title", lead.TitleStatus)
}

func TestLeadGetAndReceipt(t *testing.T) {
	app, _ := newTestApp(t)

	submitted := doRequest(t, app, fiber.MethodPost, "/api/leads", validLeadBody())
	var created struct {
		ID string `json:"id"`
	}
	decodeData(t, submitted, &created)

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/leads/"+created.ID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lead models.Lead
	decodeData(t, resp, &lead)
	assert.Equal(t, "James", lead.FirstName)

	resp = doRequest(t, app, fiber.MethodGet, "/api/admin/leads/"+created.ID+"/receipt", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var receipt models.Receipt
	decodeData(t, resp, &receipt)
	assert.Equal(t, lead.FormNumber, receipt.FormNumber)
	assert.Equal(t, "Honda", receipt.Make)
	assert.Equal(t, "New", receipt.Status)
}

func TestLeadLookupMissing(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/leads/0b5f7f5e-2f2c-4a76-9a3e-222222222222", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodGet, "/api/admin/leads/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLeadListPagination(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 3; i++ {
		resp := doRequest(t, app, fiber.MethodPost, "/api/leads", validLeadBody())
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doRequest(t, app, fiber.MethodGet, "/api/admin/leads?page=1&limit=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var leads []models.Lead
	decodeData(t, resp, &leads)
	assert.Len(t, leads, 2)
}

func TestLeadUpdateStatus(t *testing.T) {
	app, _ := newTestApp(t)

	submitted := doRequest(t, app, fiber.MethodPost, "/api/leads", validLeadBody())
	var created struct {
		ID string `json:"id"`
	}
	decodeData(t, submitted, &created)

	resp := doRequest(t, app, fiber.MethodPatch, "/api/admin/leads/"+created.ID+"/status", fiber.Map{
		"status": "Picked Up",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var lead models.Lead
	decodeData(t, resp, &lead)
	assert.Equal(t, "Picked Up", lead.Status)

	resp = doRequest(t, app, fiber.MethodPatch, "/api/admin/leads/"+created.ID+"/status", fiber.Map{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
