package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/onkaul/internal/database"
	"github.com/example/onkaul/internal/models"
	"github.com/example/onkaul/internal/siteconfig"
)

func newTestStore(t *testing.T) (*ConfigStore, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewConfigStore(db), db
}

func TestLoadWithoutRowServesDefaults(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Equal(t, siteconfig.Defaults(), s.Load())
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	cfg := siteconfig.Defaults()
	cfg.Headline = "Junk Cars Wanted"
	cfg.ShowEmail = false
	require.NoError(t, s.Save(cfg))

	loaded := s.Load()
	assert.Equal(t, "Junk Cars Wanted", loaded.Headline)
	assert.False(t, loaded.ShowEmail)
}

func TestSaveStripsGalleryFromStoredRow(t *testing.T) {
	s, db := newTestStore(t)

	cfg := siteconfig.Defaults()
	require.NotEmpty(t, cfg.Gallery)
	require.NoError(t, s.Save(cfg))

	var rec models.SiteConfigRecord
	require.NoError(t, db.First(&rec, "id = ?", ConfigRecordID).Error)

	doc := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal([]byte(rec.Config), &doc))
	_, found := doc["gallery"]
	assert.False(t, found, "gallery belongs to its own table, never the config row")
	assert.Contains(t, doc, "headline")
}

func TestSaveIsSingletonUpsert(t *testing.T) {
	s, db := newTestStore(t)

	cfg := siteconfig.Defaults()
	require.NoError(t, s.Save(cfg))

	cfg.Headline = "Second write"
	require.NoError(t, s.Save(cfg))

	var count int64
	require.NoError(t, db.Model(&models.SiteConfigRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	assert.Equal(t, "Second write", s.Load().Headline)
}

func TestSetFieldSplicesSingleValue(t *testing.T) {
	s, _ := newTestStore(t)

	updated, err := s.SetField("headline", json.RawMessage(`"One Field Changed"`))
	require.NoError(t, err)
	assert.Equal(t, "One Field Changed", updated.Headline)

	// Everything else stays at its default, in memory and on disk.
	def := siteconfig.Defaults()
	assert.Equal(t, def.PhoneNumber, updated.PhoneNumber)
	assert.Equal(t, "One Field Changed", s.Load().Headline)
	assert.Equal(t, def.PhoneNumber, s.Load().PhoneNumber)
}

func TestSetFieldKeepsInMemoryGalleryView(t *testing.T) {
	s, _ := newTestStore(t)

	updated, err := s.SetField("showHeroButton", json.RawMessage(`false`))
	require.NoError(t, err)
	assert.False(t, updated.ShowHeroButton)
	assert.Equal(t, siteconfig.Defaults().Gallery, updated.Gallery)
}

func TestToggleNegatesVisibilityFlag(t *testing.T) {
	s, _ := newTestStore(t)

	updated, err := s.Toggle("showAddress")
	require.NoError(t, err)
	assert.False(t, updated.ShowAddress)

	updated, err = s.Toggle("showAddress")
	require.NoError(t, err)
	assert.True(t, updated.ShowAddress)
	assert.True(t, s.Load().ShowAddress)
}

func TestLoadUnreadableRowDegradesToDefaults(t *testing.T) {
	s, db := newTestStore(t)

	rec := models.SiteConfigRecord{ID: ConfigRecordID, Config: `{"headline":`}
	require.NoError(t, db.Create(&rec).Error)

	assert.Equal(t, siteconfig.Defaults(), s.Load())
}
