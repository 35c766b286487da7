package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/services"
	"github.com/example/linkhub/internal/store"
)

// ClickSink accepts click events without blocking.
type ClickSink interface {
	Record(id uuid.UUID) bool
}

// PublicHandler serves the public hub page.
type PublicHandler struct {
	public *services.PublicService
	clicks ClickSink
}

// NewPublicHandler constructs PublicHandler.
func NewPublicHandler(public *services.PublicService, clicks ClickSink) *PublicHandler {
	return &PublicHandler{public: public, clicks: clicks}
}

// Page returns the branding, social links, categories and the links of the
// selected category in one response.
func (h *PublicHandler) Page(c *fiber.Ctx) error {
	return respond(c, h.public.Page(c.UserContext(), c.Query("category")))
}

// Links returns every link in position order.
func (h *PublicHandler) Links(c *fiber.Ctx) error {
	return respond(c, h.public.Links(c.UserContext()))
}

// SocialLinks returns the social links in position order.
func (h *PublicHandler) SocialLinks(c *fiber.Ctx) error {
	return respond(c, h.public.SocialLinks(c.UserContext()))
}

// Brand returns the branding settings.
func (h *PublicHandler) Brand(c *fiber.Ctx) error {
	return respond(c, h.public.Brand(c.UserContext()))
}

// Click records a click and answers before it is stored.
func (h *PublicHandler) Click(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	accepted := h.clicks.Record(id)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"success":  true,
		"accepted": accepted,
	})
}

// Redirect sends the visitor to the link target and counts the click. A
// lookup that fails for any reason answers 404.
func (h *PublicHandler) Redirect(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	link, err := h.public.Resolve(c.UserContext(), id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.Error("resolve link failed", zap.String("link_id", id.String()), zap.Error(err))
		}
		return fiber.NewError(fiber.StatusNotFound, "link not found")
	}
	if !h.clicks.Record(link.ID) {
		logger.Debug("click not recorded", zap.String("link_id", link.ID.String()))
	}
	return c.Redirect(link.URL, fiber.StatusFound)
}

// Health reports liveness.
func (h *PublicHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
