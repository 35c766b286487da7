package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/linkhub/internal/models"
)

// BrandStore reads and writes the single brand_settings row.
type BrandStore struct {
	db *gorm.DB
}

// NewBrandStore constructs BrandStore.
func NewBrandStore(db *gorm.DB) *BrandStore {
	return &BrandStore{db: db}
}

// Get returns the saved branding, or the defaults when none was saved yet.
func (s *BrandStore) Get(ctx context.Context) (models.BrandSettings, error) {
	var settings models.BrandSettings
	err := s.db.WithContext(ctx).First(&settings, "id = ?", models.BrandSettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultBrandSettings(), nil
	}
	if err != nil {
		return models.BrandSettings{}, err
	}
	models.ApplyBrandDefaults(&settings)
	return settings, nil
}

// Upsert writes settings under the fixed brand key.
func (s *BrandStore) Upsert(ctx context.Context, settings *models.BrandSettings) error {
	settings.ID = models.BrandSettingsID
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(settings).Error
}
