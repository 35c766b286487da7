package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/linkhub/internal/ordering"
	"github.com/example/linkhub/internal/services"
)

type createSocialRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=64"`
	URL      string `json:"url" validate:"required,http_url"`
	Icon     string `json:"icon" validate:"max=64"`
	Position int    `json:"position" validate:"min=0"`
}

type updateSocialRequest struct {
	Name     *string `json:"name" validate:"omitempty,notblank,max=64"`
	URL      *string `json:"url" validate:"omitempty,http_url"`
	Icon     *string `json:"icon" validate:"omitempty,max=64"`
	Position *int    `json:"position" validate:"omitempty,min=1"`
}

func (h *AdminHandler) ListSocials(c *fiber.Ctx) error {
	socials, err := h.admin.ListSocials(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, socials)
}

func (h *AdminHandler) CreateSocial(c *fiber.Ctx) error {
	var req createSocialRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	social, err := h.admin.CreateSocial(c.UserContext(), services.SocialInput{
		Name:     req.Name,
		URL:      req.URL,
		Icon:     req.Icon,
		Position: req.Position,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    social,
	})
}

func (h *AdminHandler) UpdateSocial(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req updateSocialRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	social, err := h.admin.UpdateSocial(c.UserContext(), id, services.SocialPatch{
		Name:     req.Name,
		URL:      req.URL,
		Icon:     req.Icon,
		Position: req.Position,
	})
	if err != nil {
		return err
	}
	return respond(c, social)
}

func (h *AdminHandler) DeleteSocial(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteSocial(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *AdminHandler) MoveSocial(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req moveLinkRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	socials, err := h.admin.MoveSocial(c.UserContext(), id, ordering.Direction(req.Direction))
	if err != nil {
		return err
	}
	return respond(c, socials)
}

func (h *AdminHandler) RenormalizeSocials(c *fiber.Ctx) error {
	socials, err := h.admin.RenormalizeSocials(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, socials)
}
