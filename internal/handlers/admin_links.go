package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/ordering"
	"github.com/example/linkhub/internal/services"
	"github.com/example/linkhub/internal/utils"
)

// AdminHandler serves the operator console endpoints.
type AdminHandler struct {
	admin *services.AdminService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type createLinkRequest struct {
	Title         string  `json:"title" validate:"required,notblank,max=200"`
	Description   string  `json:"description" validate:"max=500"`
	URL           string  `json:"url" validate:"required,http_url"`
	Type          string  `json:"type" validate:"omitempty,link_type"`
	Icon          string  `json:"icon" validate:"max=64"`
	Badge         *string `json:"badge" validate:"omitempty,max=32"`
	Category      string  `json:"category" validate:"max=64"`
	Position      int     `json:"position" validate:"min=0"`
	IsHighlighted bool    `json:"is_highlighted"`
}

type updateLinkRequest struct {
	Title         *string `json:"title" validate:"omitempty,notblank,max=200"`
	Description   *string `json:"description" validate:"omitempty,max=500"`
	URL           *string `json:"url" validate:"omitempty,http_url"`
	Type          *string `json:"type" validate:"omitempty,link_type"`
	Icon          *string `json:"icon" validate:"omitempty,max=64"`
	Badge         *string `json:"badge" validate:"omitempty,max=32"`
	Category      *string `json:"category" validate:"omitempty,max=64"`
	Position      *int    `json:"position" validate:"omitempty,min=1"`
	IsHighlighted *bool   `json:"is_highlighted"`
}

type moveLinkRequest struct {
	Direction string `json:"direction" validate:"required,vertical"`
}

type moveCategoryRequest struct {
	Category  string `json:"category" validate:"required"`
	Direction string `json:"direction" validate:"required,horizontal"`
}

type categoryOrderRequest struct {
	Order []string `json:"order" validate:"required,dive,max=64"`
}

type renameCategoryRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required,max=64"`
}

// ListLinks returns every link; page and limit query params select a slice.
func (h *AdminHandler) ListLinks(c *fiber.Ctx) error {
	links, err := h.admin.ListLinks(c.UserContext())
	if err != nil {
		return err
	}

	p, paged := utils.ParsePagination(c)
	if !paged {
		return respond(c, links)
	}
	page, meta := utils.Paginate(links, p)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    page,
		"meta":    meta,
	})
}

// CreateLink adds a link, splicing it in at the requested position.
func (h *AdminHandler) CreateLink(c *fiber.Ctx) error {
	var req createLinkRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	link, err := h.admin.CreateLink(c.UserContext(), services.LinkInput{
		Title:         req.Title,
		Description:   req.Description,
		URL:           req.URL,
		Type:          models.LinkType(req.Type),
		Icon:          req.Icon,
		Badge:         req.Badge,
		Category:      req.Category,
		Position:      req.Position,
		IsHighlighted: req.IsHighlighted,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    link,
	})
}

// UpdateLink edits the fields present in the body.
func (h *AdminHandler) UpdateLink(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req updateLinkRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	patch := services.LinkPatch{
		Title:         req.Title,
		Description:   req.Description,
		URL:           req.URL,
		Icon:          req.Icon,
		Badge:         req.Badge,
		Category:      req.Category,
		Position:      req.Position,
		IsHighlighted: req.IsHighlighted,
	}
	if req.Type != nil {
		t := models.LinkType(*req.Type)
		patch.Type = &t
	}

	link, err := h.admin.UpdateLink(c.UserContext(), id, patch)
	if err != nil {
		return err
	}
	return respond(c, link)
}

// DeleteLink removes a link.
func (h *AdminHandler) DeleteLink(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteLink(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// MoveLink moves a link one step up or down within its category.
func (h *AdminHandler) MoveLink(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req moveLinkRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	links, err := h.admin.MoveLink(c.UserContext(), id, ordering.Direction(req.Direction))
	if err != nil {
		return err
	}
	return respond(c, links)
}

// MoveCategory swaps a category with its left or right neighbour.
func (h *AdminHandler) MoveCategory(c *fiber.Ctx) error {
	var req moveCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	links, err := h.admin.MoveCategory(c.UserContext(), req.Category, ordering.Direction(req.Direction))
	if err != nil {
		return err
	}
	return respond(c, links)
}

// Categories lists categories in display order with link counts.
func (h *AdminHandler) Categories(c *fiber.Ctx) error {
	cats, err := h.admin.Categories(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, cats)
}

// SetCategoryOrder stores the explicit category order.
func (h *AdminHandler) SetCategoryOrder(c *fiber.Ctx) error {
	var req categoryOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cats, err := h.admin.SetCategoryOrder(c.UserContext(), req.Order)
	if err != nil {
		return err
	}
	return respond(c, cats)
}

// RenameCategory relabels a category, merging it into an existing one.
func (h *AdminHandler) RenameCategory(c *fiber.Ctx) error {
	var req renameCategoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	links, err := h.admin.RenameCategory(c.UserContext(), req.From, req.To)
	if err != nil {
		return err
	}
	return respond(c, links)
}

// RenormalizeLinks rewrites every category to positions 1..N.
func (h *AdminHandler) RenormalizeLinks(c *fiber.Ctx) error {
	links, err := h.admin.RenormalizeLinks(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, links)
}
