package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/linkhub/internal/models"
	"github.com/example/linkhub/internal/services"
)

type brandRequest struct {
	Name          string `json:"name" validate:"max=120"`
	Tagline       string `json:"tagline" validate:"max=300"`
	LogoURL       string `json:"logoUrl" validate:"omitempty,http_url"`
	BackgroundURL string `json:"backgroundUrl" validate:"omitempty,http_url"`
	Verified      bool   `json:"verified"`
	FooterText    string `json:"footerText" validate:"max=300"`
	Effect        string `json:"effect" validate:"omitempty,effect"`
}

// GetBrand returns the stored branding for the console.
func (h *AdminHandler) GetBrand(c *fiber.Ctx) error {
	brand, err := h.admin.GetBrand(c.UserContext())
	if err != nil {
		return err
	}
	return respond(c, brand)
}

// UpdateBrand replaces the branding. Blank fields fall back to the defaults.
func (h *AdminHandler) UpdateBrand(c *fiber.Ctx) error {
	var req brandRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	brand, err := h.admin.UpdateBrand(c.UserContext(), services.BrandInput{
		Name:          req.Name,
		Tagline:       req.Tagline,
		LogoURL:       req.LogoURL,
		BackgroundURL: req.BackgroundURL,
		Verified:      req.Verified,
		FooterText:    req.FooterText,
		Effect:        models.Effect(req.Effect),
	})
	if err != nil {
		return err
	}
	return respond(c, brand)
}
