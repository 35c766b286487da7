package models

// SocialLink is an icon link shown in the page header. All social links share
// one ordering.
type SocialLink struct {
	BaseModel `yaml:",inline"`
	Name     string `gorm:"not null" json:"name" yaml:"name"`
	URL      string `gorm:"not null" json:"url" yaml:"url"`
	Icon     string `json:"icon" yaml:"icon"`
	Position int    `gorm:"index;not null" json:"position" yaml:"position"`
}
