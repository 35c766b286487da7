package ordering

import "github.com/example/linkhub/internal/models"

// LinkItems projects stored links onto engine items, preserving order.
func LinkItems(links []models.Link) []Item {
	out := make([]Item, len(links))
	for i, link := range links {
		out[i] = Item{ID: link.ID, Category: link.Category, Position: link.Position}
	}
	return out
}

// SocialItems projects social links onto engine items. They all share the
// default category.
func SocialItems(socials []models.SocialLink) []Item {
	out := make([]Item, len(socials))
	for i, social := range socials {
		out[i] = Item{ID: social.ID, Category: models.DefaultCategory, Position: social.Position}
	}
	return out
}
