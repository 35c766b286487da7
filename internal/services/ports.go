package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/ordering"
)

// LinkRepository is the link store the services depend on.
type LinkRepository interface {
	List(ctx context.Context) ([]models.Link, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Link, error)
	Insert(ctx context.Context, link *models.Link) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpsert(ctx context.Context, links []models.Link) error
	ApplyPlacements(ctx context.Context, placements []ordering.Placement) error
}

// SocialRepository is the social link store the services depend on.
type SocialRepository interface {
	List(ctx context.Context) ([]models.SocialLink, error)
	Get(ctx context.Context, id uuid.UUID) (*models.SocialLink, error)
	Insert(ctx context.Context, social *models.SocialLink) error
	Update(ctx context.Context, id uuid.UUID, fields map[string]any) error
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpsert(ctx context.Context, socials []models.SocialLink) error
	ApplyPlacements(ctx context.Context, placements []ordering.Placement) error
}

// BrandRepository is the brand settings store the services depend on.
type BrandRepository interface {
	Get(ctx context.Context) (models.BrandSettings, error)
	Upsert(ctx context.Context, settings *models.BrandSettings) error
}

// ClickRepository records click counts.
type ClickRepository interface {
	IncrementClicks(ctx context.Context, id uuid.UUID) error
}

// Notifier delivers a short operator notification.
type Notifier interface {
	SendToAdmin(text string) error
}
