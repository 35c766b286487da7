package models

import "strings"

// DefaultCategory is the page label given to links saved without one.
const DefaultCategory = "Página 1"

// LinkType selects the card style a link is rendered with.
type LinkType string

const (
	LinkTypeGold       LinkType = "gold"
	LinkTypeNeonPurple LinkType = "neon-purple"
	LinkTypeNeonGreen  LinkType = "neon-green"
	LinkTypeGlass      LinkType = "glass"
)

// IconAuto asks the page to derive the icon from the link's domain.
const IconAuto = "auto"

// LinkTypes lists every accepted LinkType in display order.
var LinkTypes = []LinkType{LinkTypeGold, LinkTypeNeonPurple, LinkTypeNeonGreen, LinkTypeGlass}

// Valid reports whether t is one of the known card styles.
func (t LinkType) Valid() bool {
	for _, known := range LinkTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Link is one outbound affiliate link on the hub page.
type Link struct {
	BaseModel     `yaml:",inline"`
	Title         string   `gorm:"not null" json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	URL           string   `gorm:"not null" json:"url" yaml:"url"`
	Type          LinkType `gorm:"type:varchar(32);default:glass" json:"type" yaml:"type"`
	Icon          string   `gorm:"default:auto" json:"icon" yaml:"icon"`
	Badge         *string  `json:"badge" yaml:"badge"`
	Category      string   `gorm:"index;not null" json:"category" yaml:"category"`
	Position      int      `gorm:"index;not null" json:"position" yaml:"position"`
	IsHighlighted bool     `json:"is_highlighted" yaml:"is_highlighted"`
	ClickCount    int64    `gorm:"default:0;not null" json:"click_count" yaml:"-"`
}

// Normalize fills the defaults a link gets when fields are left blank.
func (l *Link) Normalize() {
	l.Title = strings.TrimSpace(l.Title)
	l.URL = strings.TrimSpace(l.URL)
	l.Category = NormalizeCategory(l.Category)
	if l.Type == "" {
		l.Type = LinkTypeGlass
	}
	if strings.TrimSpace(l.Icon) == "" {
		l.Icon = IconAuto
	}
	if l.Badge != nil && strings.TrimSpace(*l.Badge) == "" {
		l.Badge = nil
	}
}

// NormalizeCategory trims a category label and maps blank labels to DefaultCategory.
func NormalizeCategory(category string) string {
	category = strings.TrimSpace(category)
	if category == "" {
		return DefaultCategory
	}
	return category
}
