package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/metrics"
	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/ordering"
)

// SocialInput describes a social link. Position 0 appends to the end.
type SocialInput struct {
	Name     string
	URL      string
	Icon     string
	Position int
}

// SocialPatch holds the fields of a social link edit; nil fields are kept.
type SocialPatch struct {
	Name     *string
	URL      *string
	Icon     *string
	Position *int
}

func (p SocialPatch) fields() map[string]any {
	fields := make(map[string]any)
	if p.Name != nil {
		fields["name"] = strings.TrimSpace(*p.Name)
	}
	if p.URL != nil {
		fields["url"] = strings.TrimSpace(*p.URL)
	}
	if p.Icon != nil {
		fields["icon"] = strings.TrimSpace(*p.Icon)
	}
	if p.Position != nil {
		fields["position"] = max(*p.Position, 1)
	}
	return fields
}

func (s *AdminService) ListSocials(ctx context.Context) ([]models.SocialLink, error) {
	return s.socials.List(ctx)
}

// CreateSocial stores a social link at the end and splices it into place.
func (s *AdminService) CreateSocial(ctx context.Context, in SocialInput) (*models.SocialLink, error) {
	current, err := s.socials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}

	social := models.SocialLink{
		Name:     strings.TrimSpace(in.Name),
		URL:      strings.TrimSpace(in.URL),
		Icon:     strings.TrimSpace(in.Icon),
		Position: ordering.NextPosition(ordering.SocialItems(current), models.DefaultCategory),
	}
	desired := in.Position
	if desired <= 0 {
		desired = social.Position
	}
	if err := s.socials.Insert(ctx, &social); err != nil {
		return nil, fmt.Errorf("insert social link: %w", err)
	}

	current, err = s.socials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	created := ordering.Item{ID: social.ID, Category: models.DefaultCategory, Position: social.Position}
	placements := ordering.InsertAtPosition(ordering.SocialItems(current), created, desired, models.DefaultCategory)
	if err := s.applySocials(ctx, "social_insert", placements); err != nil {
		return nil, err
	}

	s.notify("Social link created: %s", social.Name)
	return s.socials.Get(ctx, social.ID)
}

// UpdateSocial applies patch and re-places the social link.
func (s *AdminService) UpdateSocial(ctx context.Context, id uuid.UUID, patch SocialPatch) (*models.SocialLink, error) {
	if _, err := s.socials.Get(ctx, id); err != nil {
		return nil, err
	}
	if fields := patch.fields(); len(fields) > 0 {
		if err := s.socials.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update social link: %w", err)
		}
	}

	current, err := s.socials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	if err := s.applySocials(ctx, "social_update", ordering.UpdateInPlace(ordering.SocialItems(current), id)); err != nil {
		return nil, err
	}
	return s.socials.Get(ctx, id)
}

func (s *AdminService) DeleteSocial(ctx context.Context, id uuid.UUID) error {
	if err := s.socials.Delete(ctx, id); err != nil {
		return err
	}
	s.notify("Social link deleted: %s", id)
	return nil
}

// MoveSocial moves a social link one step up or down. Edges and unknown ids
// are no-ops.
func (s *AdminService) MoveSocial(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]models.SocialLink, error) {
	current, err := s.socials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	placements := ordering.MoveWithinCategory(ordering.SocialItems(current), id, dir)
	if len(placements) == 0 {
		return current, nil
	}
	if err := s.applySocials(ctx, "social_move", placements); err != nil {
		return nil, err
	}
	return s.socials.List(ctx)
}

// RenormalizeSocials rewrites social link positions to 1..N.
func (s *AdminService) RenormalizeSocials(ctx context.Context) ([]models.SocialLink, error) {
	current, err := s.socials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	if err := s.applySocials(ctx, "social_renormalize", ordering.RenormalizeAll(ordering.SocialItems(current), nil)); err != nil {
		return nil, err
	}
	return s.socials.List(ctx)
}

func (s *AdminService) applySocials(ctx context.Context, operation string, placements []ordering.Placement) error {
	if len(placements) == 0 {
		return nil
	}
	if err := s.socials.ApplyPlacements(ctx, placements); err != nil {
		metrics.Reorders.WithLabelValues(operation, "error").Inc()
		logger.Error("social link reorder failed", zap.String("operation", operation), zap.Error(err))
		return fmt.Errorf("%s: apply placements: %w", operation, err)
	}
	metrics.Reorders.WithLabelValues(operation, "ok").Inc()
	return nil
}
