package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/models"
)

// SeedFile is the YAML document accepted by the seed command.
type SeedFile struct {
	Brand       *models.BrandSettings `yaml:"brand"`
	SocialLinks []models.SocialLink   `yaml:"social_links"`
	Links       []models.Link         `yaml:"links"`
}

// ParseSeed decodes a seed document. Unknown keys are rejected.
func ParseSeed(r io.Reader) (*SeedFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file SeedFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &file, nil
		}
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &file, nil
}

// SeedResult reports how many rows an import wrote.
type SeedResult struct {
	Links       int
	SocialLinks int
	Brand       bool
}

// SeedService loads a seed document into the stores. Rows carrying an id are
// upserted, so importing the same file twice is harmless.
type SeedService struct {
	admin   *AdminService
	links   LinkRepository
	socials SocialRepository
	brand   BrandRepository
}

// NewSeedService constructs SeedService.
func NewSeedService(admin *AdminService, links LinkRepository, socials SocialRepository, brand BrandRepository) *SeedService {
	return &SeedService{admin: admin, links: links, socials: socials, brand: brand}
}

// Import writes file and renormalizes both link lists afterwards.
func (s *SeedService) Import(ctx context.Context, file *SeedFile) (SeedResult, error) {
	var result SeedResult

	if file.Brand != nil {
		brand := *file.Brand
		models.ApplyBrandDefaults(&brand)
		if err := s.brand.Upsert(ctx, &brand); err != nil {
			return result, fmt.Errorf("seed brand: %w", err)
		}
		result.Brand = true
	}

	links := make([]models.Link, len(file.Links))
	copy(links, file.Links)
	next := make(map[string]int)
	for i := range links {
		links[i].Normalize()
		if links[i].Position > 0 {
			next[links[i].Category] = max(next[links[i].Category], links[i].Position)
		}
	}
	for i := range links {
		if links[i].Position <= 0 {
			next[links[i].Category]++
			links[i].Position = next[links[i].Category]
		}
	}
	if err := s.links.BulkUpsert(ctx, links); err != nil {
		return result, fmt.Errorf("seed links: %w", err)
	}
	result.Links = len(links)

	socials := make([]models.SocialLink, len(file.SocialLinks))
	copy(socials, file.SocialLinks)
	last := 0
	for _, social := range socials {
		last = max(last, social.Position)
	}
	for i := range socials {
		if socials[i].Position <= 0 {
			last++
			socials[i].Position = last
		}
	}
	if err := s.socials.BulkUpsert(ctx, socials); err != nil {
		return result, fmt.Errorf("seed social links: %w", err)
	}
	result.SocialLinks = len(socials)

	if _, err := s.admin.RenormalizeLinks(ctx); err != nil {
		return result, err
	}
	if _, err := s.admin.RenormalizeSocials(ctx); err != nil {
		return result, err
	}

	logger.Info("seed imported",
		zap.Int("links", result.Links),
		zap.Int("social_links", result.SocialLinks),
		zap.Bool("brand", result.Brand),
	)
	return result, nil
}
