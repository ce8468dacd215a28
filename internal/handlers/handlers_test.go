package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/onkaul/internal/config"
	"github.com/example/onkaul/internal/database"
	"github.com/example/onkaul/internal/store"
)

// newTestDB opens an isolated in-memory database migrated to the
// service schema. The shared-cache name keeps all pooled connections
// on the same database for the duration of the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret",
		TokenExpires:  time.Hour,
		AdminPasscode: "0000",
	}
}

// newTestApp wires every handler onto a bare app. Auth middleware is
// exercised separately; these routes are open so each test can hit its
// endpoint directly.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	cs := store.NewConfigStore(db)

	site := NewSiteHandler(db, cs)
	gallery := NewGalleryHandler(db)
	testimonials := NewTestimonialHandler(db)
	faqs := NewFAQHandler(db)
	leads := NewLeadHandler(db, nil)
	auth := NewAuthHandler(testConfig())

	app := fiber.New()
	api := app.Group("/api")

	api.Get("/site", site.GetSite)
	api.Post("/leads", leads.Submit)
	api.Post("/admin/login", auth.Login)

	admin := api.Group("/admin")
	admin.Get("/config", site.GetConfig)
	admin.Put("/config", site.ReplaceConfig)
	admin.Patch("/config", site.UpdateField)
	admin.Post("/config/toggle", site.ToggleVisibility)
	admin.Post("/config/social-links", site.AddSocialLink)
	admin.Put("/config/social-links/:id", site.UpdateSocialLink)
	admin.Delete("/config/social-links/:id", site.RemoveSocialLink)

	admin.Get("/gallery", gallery.List)
	admin.Post("/gallery", gallery.Create)
	admin.Put("/gallery/:id", gallery.Update)
	admin.Put("/gallery/:id/photo", gallery.Replace)
	admin.Delete("/gallery/:id", gallery.Delete)

	admin.Post("/testimonials", testimonials.Create)
	admin.Get("/testimonials", testimonials.List)
	admin.Put("/testimonials/:id", testimonials.Update)
	admin.Delete("/testimonials/:id", testimonials.Delete)

	admin.Get("/faqs", faqs.List)
	admin.Post("/faqs", faqs.Create)
	admin.Put("/faqs/:id", faqs.Update)
	admin.Delete("/faqs/:id", faqs.Delete)

	admin.Get("/leads", leads.List)
	admin.Get("/leads/:id", leads.Get)
	admin.Get("/leads/:id/receipt", leads.Receipt)
	admin.Patch("/leads/:id/status", leads.UpdateStatus)

	return app, db
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeData unmarshals the "data" half of the response envelope.
func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}
