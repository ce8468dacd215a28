package store

import (
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"github.com/example/onkaul/internal/models"
	"github.com/example/onkaul/internal/siteconfig"
)

// ConfigRecordID is the fixed id of the singleton configuration row.
const ConfigRecordID = 1

// ConfigStore owns reads and writes of the singleton site
// configuration record. It is constructed once at startup and passed
// into the handlers that need it; nothing reaches the database through
// ambient package state.
type ConfigStore struct {
	db *gorm.DB
}

// NewConfigStore constructs a ConfigStore.
func NewConfigStore(db *gorm.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

// Load fetches the configuration record and merges it over the
// defaults. A missing row or a fetch error degrades to the defaults;
// load never fails.
func (s *ConfigStore) Load() siteconfig.SiteConfig {
	var rec models.SiteConfigRecord
	if err := s.db.First(&rec, "id = ?", ConfigRecordID).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("[Config] load failed, serving defaults: %v", err)
		}
		return siteconfig.Defaults()
	}

	cfg, err := siteconfig.Merge([]byte(rec.Config))
	if err != nil {
		log.Printf("[Config] stored record unreadable, serving defaults: %v", err)
		return siteconfig.Defaults()
	}
	return cfg
}

// Save persists the entire configuration view as the singleton row,
// with the gallery field stripped before serialization.
func (s *ConfigStore) Save(cfg siteconfig.SiteConfig) error {
	raw, err := cfg.MarshalForStore()
	if err != nil {
		return err
	}

	var existing models.SiteConfigRecord
	result := s.db.First(&existing, "id = ?", ConfigRecordID)
	if result.Error == gorm.ErrRecordNotFound {
		rec := models.SiteConfigRecord{ID: ConfigRecordID, Config: string(raw)}
		return s.db.Create(&rec).Error
	} else if result.Error != nil {
		return result.Error
	}

	existing.Config = string(raw)
	return s.db.Save(&existing).Error
}

// Toggle negates a boolean field through the same splice primitive
// SetField uses.
func (s *ConfigStore) Toggle(name string) (siteconfig.SiteConfig, error) {
	cfg := s.Load()

	raw, err := json.Marshal(cfg)
	if err != nil {
		return cfg, err
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return cfg, err
	}

	var current bool
	_ = json.Unmarshal(doc[name], &current)
	value, _ := json.Marshal(!current)
	return s.SetField(name, value)
}

// SetField splices a single validated field value into the stored
// document and persists the whole record. The returned view reflects
// the change merged over defaults.
func (s *ConfigStore) SetField(name string, value json.RawMessage) (siteconfig.SiteConfig, error) {
	cfg := s.Load()

	raw, err := cfg.MarshalForStore()
	if err != nil {
		return cfg, err
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return cfg, err
	}
	doc[name] = value

	merged, err := json.Marshal(doc)
	if err != nil {
		return cfg, err
	}
	updated, err := siteconfig.Merge(merged)
	if err != nil {
		return cfg, err
	}
	updated.Gallery = cfg.Gallery

	if err := s.Save(updated); err != nil {
		return cfg, err
	}
	return updated, nil
}
