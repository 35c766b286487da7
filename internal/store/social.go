package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/ordering"
)

// SocialStore reads and writes the social_links table.
type SocialStore struct {
	db *gorm.DB
}

// NewSocialStore constructs SocialStore.
func NewSocialStore(db *gorm.DB) *SocialStore {
	return &SocialStore{db: db}
}

// List returns every social link ordered by position, oldest first on ties.
func (s *SocialStore) List(ctx context.Context) ([]models.SocialLink, error) {
	var items []models.SocialLink
	if err := s.db.WithContext(ctx).Order("position asc, created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get loads one social link by id.
func (s *SocialStore) Get(ctx context.Context, id uuid.UUID) (*models.SocialLink, error) {
	var item models.SocialLink
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// Insert creates social and fills in its id and timestamps.
func (s *SocialStore) Insert(ctx context.Context, social *models.SocialLink) error {
	return s.db.WithContext(ctx).Create(social).Error
}

// Update applies fields (column name to value) to one social link.
func (s *SocialStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.SocialLink{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one social link.
func (s *SocialStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.SocialLink{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkUpsert inserts socials, overwriting rows whose id already exists.
func (s *SocialStore) BulkUpsert(ctx context.Context, socials []models.SocialLink) error {
	if len(socials) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "url", "icon", "position", "updated_at"}),
	}).Create(&socials).Error
}

// ApplyPlacements rewrites positions in one transaction. Social links have no
// category, so only the expected position is checked.
func (s *SocialStore) ApplyPlacements(ctx context.Context, placements []ordering.Placement) error {
	if len(placements) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range placements {
			res := tx.Model(&models.SocialLink{}).
				Where("id = ? AND position = ?", p.ID, p.FromPosition).
				Update("position", p.Position)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("social link %s: %w", p.ID, ErrConflict)
			}
		}
		return nil
	})
}
