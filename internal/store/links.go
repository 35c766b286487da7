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

// LinkStore reads and writes the links table.
type LinkStore struct {
	db *gorm.DB
}

// NewLinkStore constructs LinkStore.
func NewLinkStore(db *gorm.DB) *LinkStore {
	return &LinkStore{db: db}
}

// List returns every link ordered by position, oldest first on ties.
func (s *LinkStore) List(ctx context.Context) ([]models.Link, error) {
	var items []models.Link
	if err := s.db.WithContext(ctx).Order("position asc, created_at asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// Get loads one link by id.
func (s *LinkStore) Get(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	var item models.Link
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// Insert creates link and fills in its id and timestamps.
func (s *LinkStore) Insert(ctx context.Context, link *models.Link) error {
	return s.db.WithContext(ctx).Create(link).Error
}

// Update applies fields (column name to value) to one link.
func (s *LinkStore) Update(ctx context.Context, id uuid.UUID, fields map[string]any) error {
	res := s.db.WithContext(ctx).Model(&models.Link{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one link.
func (s *LinkStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&models.Link{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// BulkUpsert inserts links, updating every editable column of rows whose id
// already exists.
func (s *LinkStore) BulkUpsert(ctx context.Context, links []models.Link) error {
	if len(links) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"title", "description", "url", "type", "icon", "badge",
			"category", "position", "is_highlighted", "updated_at",
		}),
	}).Create(&links).Error
}

// ApplyPlacements writes the output of the ordering engine in one transaction.
// A row is only rewritten while it still holds the position and category the
// placement was computed from; otherwise nothing is applied and ErrConflict is
// returned.
func (s *LinkStore) ApplyPlacements(ctx context.Context, placements []ordering.Placement) error {
	if len(placements) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range placements {
			res := tx.Model(&models.Link{}).
				Where("id = ? AND position = ? AND category = ?", p.ID, p.FromPosition, p.FromCategory).
				Updates(map[string]any{"position": p.Position, "category": p.Category})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("link %s: %w", p.ID, ErrConflict)
			}
		}
		return nil
	})
}

// IncrementClicks adds one to the click counter of a link.
func (s *LinkStore) IncrementClicks(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Model(&models.Link{}).Where("id = ?", id).
		UpdateColumn("click_count", gorm.Expr("click_count + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
