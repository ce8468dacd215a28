package models

import "time"

// GalleryImage is a yard photo shown in the home gallery. Title and
// description are editable independently of the image itself, and a
// replace-in-place edit swaps the url without touching either.
type GalleryImage struct {
	BaseModel
	URL         string `gorm:"column:url" json:"url"`
	Title       string `gorm:"column:title" json:"title"`
	Description string `gorm:"column:description" json:"desc"`
}

// TableName pins the table name used by the original store.
func (GalleryImage) TableName() string { return "gallery" }

// Testimonial is a customer review. Date is set once at creation and
// never mutated; LogoColor is the fallback badge color used when
// ImageURL is absent.
type Testimonial struct {
	BaseModel
	Name       string    `gorm:"column:name" json:"name"`
	Text       string    `gorm:"column:text" json:"text"`
	ImageURL   string    `gorm:"column:image_url" json:"imageUrl"`
	LogoColor  string    `gorm:"column:logo_color" json:"logoColor"`
	YoutubeURL string    `gorm:"column:youtube_url" json:"youtubeUrl,omitempty"`
	Date       time.Time `gorm:"column:date" json:"date"`
}

// TableName pins the table name used by the original store.
func (Testimonial) TableName() string { return "testimonials" }

// FAQ is a question/answer entry. The numeric id is opaque to
// clients; ascending id is the display order.
type FAQ struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Question string `gorm:"column:question" json:"question"`
	Answer   string `gorm:"column:answer" json:"answer"`
}

// TableName pins the table name used by the original store.
func (FAQ) TableName() string { return "faqs" }
