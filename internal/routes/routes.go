package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/onkaul/internal/config"
	"github.com/example/onkaul/internal/handlers"
	"github.com/example/onkaul/internal/middleware"
	"github.com/example/onkaul/internal/services"
	"github.com/example/onkaul/internal/store"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)
	valuationService := services.NewValuationService(cfg.GeminiAPIKey, cfg.GeminiModel)
	configStore := store.NewConfigStore(db)

	authHandler := handlers.NewAuthHandler(cfg)
	siteHandler := handlers.NewSiteHandler(db, configStore)
	galleryHandler := handlers.NewGalleryHandler(db)
	testimonialHandler := handlers.NewTestimonialHandler(db)
	faqHandler := handlers.NewFAQHandler(db)
	leadHandler := handlers.NewLeadHandler(db, telegramService)
	valuationHandler := handlers.NewValuationHandler(valuationService)

	api := app.Group("/api")

	// Public surface: everything the landing page needs.
	api.Get("/site", siteHandler.GetSite)
	api.Get("/gallery", galleryHandler.List)
	api.Get("/testimonials", testimonialHandler.List)
	api.Get("/faqs", faqHandler.List)
	api.Post("/leads", leadHandler.Submit)
	api.Post("/valuation", valuationHandler.Estimate)

	api.Post("/admin/login", authHandler.Login)

	// Admin console, behind the session token.
	admin := api.Group("/admin", middleware.AdminAuth(cfg))

	admin.Get("/config", siteHandler.GetConfig)
	admin.Put("/config", siteHandler.ReplaceConfig)
	admin.Patch("/config", siteHandler.UpdateField)
	admin.Post("/config/toggle", siteHandler.ToggleVisibility)

	admin.Post("/config/social-links", siteHandler.AddSocialLink)
	admin.Put("/config/social-links/:id", siteHandler.UpdateSocialLink)
	admin.Delete("/config/social-links/:id", siteHandler.RemoveSocialLink)

	admin.Get("/gallery", galleryHandler.List)
	admin.Post("/gallery", galleryHandler.Create)
	admin.Put("/gallery/:id", galleryHandler.Update)
	admin.Put("/gallery/:id/photo", galleryHandler.Replace)
	admin.Delete("/gallery/:id", galleryHandler.Delete)

	admin.Post("/testimonials", testimonialHandler.Create)
	admin.Put("/testimonials/:id", testimonialHandler.Update)
	admin.Delete("/testimonials/:id", testimonialHandler.Delete)

	admin.Post("/faqs", faqHandler.Create)
	admin.Put("/faqs/:id", faqHandler.Update)
	admin.Delete("/faqs/:id", faqHandler.Delete)

	admin.Get("/leads", leadHandler.List)
	admin.Get("/leads/:id", leadHandler.Get)
	admin.Get("/leads/:id/receipt", leadHandler.Receipt)
	admin.Patch("/leads/:id/status", leadHandler.UpdateStatus)
}
