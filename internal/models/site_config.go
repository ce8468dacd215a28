package models

// SiteConfigRecord is the singleton configuration row. Exactly one
// live instance exists (id = 1); the config column holds the
// serialized site configuration with the gallery field stripped.
type SiteConfigRecord struct {
	ID     int    `gorm:"primaryKey;column:id" json:"id"`
	Config string `gorm:"column:config;type:jsonb" json:"config"`
}

// TableName pins the table name used by the original store.
func (SiteConfigRecord) TableName() string { return "site_config" }
