package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/ordering"
)

// PublicService assembles the public hub page. Read failures are logged and
// degrade to empty data; the public page never reports them.
type PublicService struct {
	links   LinkRepository
	socials SocialRepository
	brand   BrandRepository
}

// NewPublicService constructs PublicService.
func NewPublicService(links LinkRepository, socials SocialRepository, brand BrandRepository) *PublicService {
	return &PublicService{links: links, socials: socials, brand: brand}
}

// Page is everything the public page renders.
type Page struct {
	Brand          models.BrandSettings `json:"brand"`
	SocialLinks    []models.SocialLink  `json:"socialLinks"`
	Categories     []string             `json:"categories"`
	ActiveCategory string               `json:"activeCategory"`
	Links          []models.Link        `json:"links"`
}

// Page loads the page for category. An unknown or empty category selects the
// first one.
func (s *PublicService) Page(ctx context.Context, category string) Page {
	var (
		g       errgroup.Group
		brand   models.BrandSettings
		socials []models.SocialLink
		links   []models.Link
	)
	g.Go(func() error {
		brand = s.Brand(ctx)
		return nil
	})
	g.Go(func() error {
		socials = s.SocialLinks(ctx)
		return nil
	})
	g.Go(func() error {
		links = s.Links(ctx)
		return nil
	})
	_ = g.Wait()

	items := ordering.LinkItems(links)
	cats := ordering.Categories(items, brand.CategoryOrder)

	page := Page{
		Brand:       brand,
		SocialLinks: socials,
		Categories:  cats,
		Links:       []models.Link{},
	}
	if len(cats) == 0 {
		return page
	}

	page.ActiveCategory = cats[0]
	if category != "" {
		wanted := models.NormalizeCategory(category)
		for _, name := range cats {
			if name == wanted {
				page.ActiveCategory = name
				break
			}
		}
	}

	byID := make(map[uuid.UUID]models.Link, len(links))
	for _, link := range links {
		byID[link.ID] = link
	}
	for _, item := range ordering.InCategory(items, page.ActiveCategory) {
		page.Links = append(page.Links, byID[item.ID])
	}
	return page
}

// Links returns every link, or an empty list when the store is unreachable.
func (s *PublicService) Links(ctx context.Context) []models.Link {
	links, err := s.links.List(ctx)
	if err != nil {
		logger.Error("failed to load links", zap.Error(err))
		return []models.Link{}
	}
	return links
}

// SocialLinks returns the social links, or an empty list on failure.
func (s *PublicService) SocialLinks(ctx context.Context) []models.SocialLink {
	socials, err := s.socials.List(ctx)
	if err != nil {
		logger.Error("failed to load social links", zap.Error(err))
		return []models.SocialLink{}
	}
	return socials
}

// Brand returns the branding, or the defaults on failure.
func (s *PublicService) Brand(ctx context.Context) models.BrandSettings {
	brand, err := s.brand.Get(ctx)
	if err != nil {
		logger.Error("failed to load brand settings", zap.Error(err))
		return models.DefaultBrandSettings()
	}
	return brand
}

// Resolve returns the link a click on id should navigate to.
func (s *PublicService) Resolve(ctx context.Context, id uuid.UUID) (*models.Link, error) {
	return s.links.Get(ctx, id)
}
