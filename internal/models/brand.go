package models

import (
	"strings"
	"time"
)

// BrandSettingsID is the fixed key of the single brand_settings row.
const BrandSettingsID uint = 1

// Effect identifies the background motif of the public page.
type Effect string

const (
	EffectNone      Effect = "none"
	EffectParticles Effect = "particles"
	EffectGradient  Effect = "gradient"
	EffectAurora    Effect = "aurora"
)

// Valid reports whether e is a known motif.
func (e Effect) Valid() bool {
	switch e {
	case EffectNone, EffectParticles, EffectGradient, EffectAurora:
		return true
	}
	return false
}

// BrandSettings stores the page branding. There is only ever one row, keyed by
// BrandSettingsID.
type BrandSettings struct {
	ID            uint      `gorm:"primaryKey;autoIncrement:false" json:"-" yaml:"-"`
	Name          string    `json:"name" yaml:"name"`
	Tagline       string    `json:"tagline" yaml:"tagline"`
	LogoURL       string    `json:"logoUrl" yaml:"logo_url"`
	BackgroundURL string    `json:"backgroundUrl" yaml:"background_url"`
	Verified      bool      `json:"verified" yaml:"verified"`
	FooterText    string    `json:"footerText" yaml:"footer_text"`
	Effect        Effect    `gorm:"type:varchar(32)" json:"effect" yaml:"effect"`
	CategoryOrder []string  `gorm:"type:text;serializer:json" json:"categoryOrder" yaml:"category_order"`
	UpdatedAt     time.Time `json:"updatedAt" yaml:"-"`
}

const (
	defaultBrandName    = "Link Hub"
	defaultBrandTagline = "Os melhores links num só lugar"
	defaultFooterText   = "Jogue com responsabilidade. +18"
)

// DefaultBrandSettings returns the branding served before an operator saves any.
func DefaultBrandSettings() BrandSettings {
	settings := BrandSettings{ID: BrandSettingsID}
	ApplyBrandDefaults(&settings)
	return settings
}

// ApplyBrandDefaults fills blank fields with the built-in branding.
func ApplyBrandDefaults(settings *BrandSettings) {
	if settings == nil {
		return
	}
	settings.ID = BrandSettingsID
	if strings.TrimSpace(settings.Name) == "" {
		settings.Name = defaultBrandName
	}
	if strings.TrimSpace(settings.Tagline) == "" {
		settings.Tagline = defaultBrandTagline
	}
	if strings.TrimSpace(settings.FooterText) == "" {
		settings.FooterText = defaultFooterText
	}
	if settings.Effect == "" {
		settings.Effect = EffectParticles
	}
	if settings.CategoryOrder == nil {
		settings.CategoryOrder = []string{}
	}
}
