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

// AdminService carries out operator edits. Reorders are computed by the
// ordering package and written as one conditional batch; every operation
// re-reads the store afterwards instead of merging results locally. When a
// step fails the sequence stops and the error is returned; rows already
// written stay as they are.
type AdminService struct {
	links    LinkRepository
	socials  SocialRepository
	brand    BrandRepository
	notifier Notifier
}

// NewAdminService constructs AdminService. notifier may be nil.
func NewAdminService(links LinkRepository, socials SocialRepository, brand BrandRepository, notifier Notifier) *AdminService {
	return &AdminService{links: links, socials: socials, brand: brand, notifier: notifier}
}

// LinkInput describes a new link. Position 0 appends to the end of the category.
type LinkInput struct {
	Title         string
	Description   string
	URL           string
	Type          models.LinkType
	Icon          string
	Badge         *string
	Category      string
	Position      int
	IsHighlighted bool
}

// LinkPatch holds the fields of an edit; nil fields are left untouched. An
// empty Badge clears it.
type LinkPatch struct {
	Title         *string
	Description   *string
	URL           *string
	Type          *models.LinkType
	Icon          *string
	Badge         *string
	Category      *string
	Position      *int
	IsHighlighted *bool
}

func (p LinkPatch) fields() map[string]any {
	fields := make(map[string]any)
	if p.Title != nil {
		fields["title"] = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		fields["description"] = *p.Description
	}
	if p.URL != nil {
		fields["url"] = strings.TrimSpace(*p.URL)
	}
	if p.Type != nil {
		fields["type"] = *p.Type
	}
	if p.Icon != nil {
		icon := strings.TrimSpace(*p.Icon)
		if icon == "" {
			icon = models.IconAuto
		}
		fields["icon"] = icon
	}
	if p.Badge != nil {
		if badge := strings.TrimSpace(*p.Badge); badge != "" {
			fields["badge"] = badge
		} else {
			fields["badge"] = nil
		}
	}
	if p.Category != nil {
		fields["category"] = models.NormalizeCategory(*p.Category)
	}
	if p.Position != nil {
		fields["position"] = max(*p.Position, 1)
	}
	if p.IsHighlighted != nil {
		fields["is_highlighted"] = *p.IsHighlighted
	}
	return fields
}

// CategorySummary is one category with its link count, in display order.
type CategorySummary struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ListLinks returns every link in position order.
func (s *AdminService) ListLinks(ctx context.Context) ([]models.Link, error) {
	return s.links.List(ctx)
}

// CreateLink stores a new link at the end of its category and then splices it
// into the requested position.
func (s *AdminService) CreateLink(ctx context.Context, in LinkInput) (*models.Link, error) {
	link := models.Link{
		Title:         in.Title,
		Description:   in.Description,
		URL:           in.URL,
		Type:          in.Type,
		Icon:          in.Icon,
		Badge:         in.Badge,
		Category:      in.Category,
		IsHighlighted: in.IsHighlighted,
	}
	link.Normalize()

	current, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	link.Position = ordering.NextPosition(ordering.LinkItems(current), link.Category)
	desired := in.Position
	if desired <= 0 {
		desired = link.Position
	}

	if err := s.links.Insert(ctx, &link); err != nil {
		return nil, fmt.Errorf("insert link: %w", err)
	}

	current, err = s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	created := ordering.Item{ID: link.ID, Category: link.Category, Position: link.Position}
	placements := ordering.InsertAtPosition(ordering.LinkItems(current), created, desired, link.Category)
	if err := s.applyLinks(ctx, "insert", placements); err != nil {
		return nil, err
	}

	s.notify("Link created: %s (%s, #%d)", link.Title, link.Category, desired)
	return s.links.Get(ctx, link.ID)
}

// UpdateLink applies patch and re-places the link at its resulting position
// so duplicates created by the edit are absorbed.
func (s *AdminService) UpdateLink(ctx context.Context, id uuid.UUID, patch LinkPatch) (*models.Link, error) {
	if _, err := s.links.Get(ctx, id); err != nil {
		return nil, err
	}

	if fields := patch.fields(); len(fields) > 0 {
		if err := s.links.Update(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update link: %w", err)
		}
	}

	current, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	if err := s.applyLinks(ctx, "update", ordering.UpdateInPlace(ordering.LinkItems(current), id)); err != nil {
		return nil, err
	}

	return s.links.Get(ctx, id)
}

// DeleteLink removes a link. The remaining positions are not compacted.
func (s *AdminService) DeleteLink(ctx context.Context, id uuid.UUID) error {
	link, err := s.links.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.links.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	s.notify("Link deleted: %s", link.Title)
	return nil
}

// MoveLink moves a link one step up or down inside its category. Moving past
// either end, or an id that is not listed, changes nothing.
func (s *AdminService) MoveLink(ctx context.Context, id uuid.UUID, dir ordering.Direction) ([]models.Link, error) {
	current, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	placements := ordering.MoveWithinCategory(ordering.LinkItems(current), id, dir)
	if len(placements) == 0 {
		return current, nil
	}
	if err := s.applyLinks(ctx, "move_link", placements); err != nil {
		return nil, err
	}
	return s.links.List(ctx)
}

// MoveCategory swaps a category with its neighbour in the category order by
// exchanging the labels of their links.
func (s *AdminService) MoveCategory(ctx context.Context, category string, dir ordering.Direction) ([]models.Link, error) {
	current, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	brand, err := s.brand.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand settings: %w", err)
	}

	placements := ordering.MoveCategory(ordering.LinkItems(current), brand.CategoryOrder, category, dir)
	if len(placements) == 0 {
		return current, nil
	}
	if err := s.applyLinks(ctx, "move_category", placements); err != nil {
		return nil, err
	}
	s.notify("Category moved: %s (%s)", models.NormalizeCategory(category), dir)
	return s.links.List(ctx)
}

// RenameCategory relabels every link of from as to. When to already exists
// the moved links are appended after its own.
func (s *AdminService) RenameCategory(ctx context.Context, from, to string) ([]models.Link, error) {
	current, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	placements := ordering.MergeCategory(ordering.LinkItems(current), from, to)
	if len(placements) == 0 {
		return current, nil
	}
	if err := s.applyLinks(ctx, "rename_category", placements); err != nil {
		return nil, err
	}

	from, to = models.NormalizeCategory(from), models.NormalizeCategory(to)
	brand, err := s.brand.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand settings: %w", err)
	}
	if renamed, changed := renameInOrder(brand.CategoryOrder, from, to); changed {
		brand.CategoryOrder = renamed
		if err := s.brand.Upsert(ctx, &brand); err != nil {
			return nil, fmt.Errorf("save category order: %w", err)
		}
	}

	s.notify("Category renamed: %s -> %s", from, to)
	return s.links.List(ctx)
}

// RenormalizeLinks rewrites every category to positions 1..N.
func (s *AdminService) RenormalizeLinks(ctx context.Context) ([]models.Link, error) {
	current, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	brand, err := s.brand.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand settings: %w", err)
	}

	placements := ordering.RenormalizeAll(ordering.LinkItems(current), brand.CategoryOrder)
	if err := s.applyLinks(ctx, "renormalize", placements); err != nil {
		return nil, err
	}
	if len(placements) > 0 {
		logger.Info("links renormalized", zap.Int("rewritten", len(placements)))
	}
	return s.links.List(ctx)
}

// RenormalizePreview is what a renormalize would write, and the link layout
// that would result from it.
type RenormalizePreview struct {
	Links   []ordering.Placement
	Socials []ordering.Placement
	Layout  []CategoryLayout
}

// CategoryLayout is one category's links in position order.
type CategoryLayout struct {
	Name  string
	Items []ordering.Item
}

// RenormalizePlan computes a renormalize without applying it.
func (s *AdminService) RenormalizePlan(ctx context.Context) (*RenormalizePreview, error) {
	currentLinks, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	currentSocials, err := s.socials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list social links: %w", err)
	}
	brand, err := s.brand.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand settings: %w", err)
	}

	items := ordering.LinkItems(currentLinks)
	preview := &RenormalizePreview{
		Links:   ordering.RenormalizeAll(items, brand.CategoryOrder),
		Socials: ordering.RenormalizeAll(ordering.SocialItems(currentSocials), nil),
	}
	after := ordering.Apply(items, preview.Links)
	for _, name := range ordering.Categories(after, brand.CategoryOrder) {
		preview.Layout = append(preview.Layout, CategoryLayout{Name: name, Items: ordering.InCategory(after, name)})
	}
	return preview, nil
}

// Categories lists categories in display order with their link counts.
func (s *AdminService) Categories(ctx context.Context) ([]CategorySummary, error) {
	current, err := s.links.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	brand, err := s.brand.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand settings: %w", err)
	}
	return summarize(ordering.LinkItems(current), brand.CategoryOrder), nil
}

// SetCategoryOrder persists the explicit category order.
func (s *AdminService) SetCategoryOrder(ctx context.Context, order []string) ([]CategorySummary, error) {
	brand, err := s.brand.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load brand settings: %w", err)
	}

	seen := make(map[string]bool, len(order))
	cleaned := make([]string, 0, len(order))
	for _, name := range order {
		name = models.NormalizeCategory(name)
		if !seen[name] {
			seen[name] = true
			cleaned = append(cleaned, name)
		}
	}
	brand.CategoryOrder = cleaned
	if err := s.brand.Upsert(ctx, &brand); err != nil {
		return nil, fmt.Errorf("save category order: %w", err)
	}

	return s.Categories(ctx)
}

func (s *AdminService) applyLinks(ctx context.Context, operation string, placements []ordering.Placement) error {
	if len(placements) == 0 {
		return nil
	}
	if err := s.links.ApplyPlacements(ctx, placements); err != nil {
		metrics.Reorders.WithLabelValues(operation, "error").Inc()
		logger.Error("link reorder failed",
			zap.String("operation", operation),
			zap.Int("placements", len(placements)),
			zap.Error(err),
		)
		return fmt.Errorf("%s: apply placements: %w", operation, err)
	}
	metrics.Reorders.WithLabelValues(operation, "ok").Inc()
	return nil
}

func (s *AdminService) notify(format string, args ...any) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.SendToAdmin(fmt.Sprintf(format, args...)); err != nil {
		logger.Warn("admin notification failed", zap.Error(err))
	}
}

func summarize(items []ordering.Item, explicit []string) []CategorySummary {
	names := ordering.Categories(items, explicit)
	out := make([]CategorySummary, 0, len(names))
	for _, name := range names {
		out = append(out, CategorySummary{Name: name, Count: len(ordering.InCategory(items, name))})
	}
	return out
}

func renameInOrder(order []string, from, to string) ([]string, bool) {
	at := -1
	hasTarget := false
	for i, name := range order {
		switch models.NormalizeCategory(name) {
		case from:
			at = i
		case to:
			hasTarget = true
		}
	}
	if at < 0 {
		return order, false
	}
	out := make([]string, 0, len(order))
	for i, name := range order {
		if i == at {
			if !hasTarget {
				out = append(out, to)
			}
			continue
		}
		out = append(out, name)
	}
	return out, true
}
