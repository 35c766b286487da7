package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/linkhub/internal/models"
)

// BrandInput carries the editable branding fields. The category order is
// managed separately through SetCategoryOrder.
type BrandInput struct {
	Name          string
	Tagline       string
	LogoURL       string
	BackgroundURL string
	Verified      bool
	FooterText    string
	Effect        models.Effect
}

func (s *AdminService) GetBrand(ctx context.Context) (models.BrandSettings, error) {
	return s.brand.Get(ctx)
}

// UpdateBrand overwrites the branding, keeping the stored category order.
func (s *AdminService) UpdateBrand(ctx context.Context, in BrandInput) (models.BrandSettings, error) {
	existing, err := s.brand.Get(ctx)
	if err != nil {
		return models.BrandSettings{}, fmt.Errorf("load brand settings: %w", err)
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.Tagline = strings.TrimSpace(in.Tagline)
	existing.LogoURL = strings.TrimSpace(in.LogoURL)
	existing.BackgroundURL = strings.TrimSpace(in.BackgroundURL)
	existing.Verified = in.Verified
	existing.FooterText = strings.TrimSpace(in.FooterText)
	existing.Effect = in.Effect
	models.ApplyBrandDefaults(&existing)

	if err := s.brand.Upsert(ctx, &existing); err != nil {
		return models.BrandSettings{}, fmt.Errorf("save brand settings: %w", err)
	}

	s.notify("Brand settings updated: %s", existing.Name)
	return s.brand.Get(ctx)
}
