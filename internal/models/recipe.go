package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe is a catalog entry. Trashed recipes keep their rows (soft delete via
// DeletedAt) so they can be restored until the purge window expires.
type Recipe struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Title          string         `gorm:"size:255;not null" json:"title"`
	IngredientsRaw string         `gorm:"type:text;not null" json:"ingredients_raw"`
	Instructions   string         `gorm:"type:text;not null" json:"instructions"`
	Notes          *string        `gorm:"type:text" json:"notes"`
	SourceURL      *string        `gorm:"size:2048" json:"source_url"`
	ImageURL       *string        `gorm:"size:2048" json:"image_url"`
	Rating         *int           `json:"rating"`
	LastViewedAt   *time.Time     `gorm:"index" json:"last_viewed_at"`

	Tags        []Tag        `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
}

func (Recipe) TableName() string {
	return "recipes"
}

// Ingredient is one structured line of a recipe's ingredient text. The set is
// always regenerated as a whole when the raw text changes; Position preserves
// source order.
type Ingredient struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     int64   `gorm:"not null;index" json:"-"`
	Name         string  `gorm:"size:512;not null" json:"name"`
	NameLower    string  `gorm:"size:512;not null;index" json:"-"`
	Quantity     *string `gorm:"size:128" json:"quantity"`
	OriginalText string  `gorm:"size:1024;not null" json:"original_text"`
	Position     int     `gorm:"not null" json:"position"`
}

func (Ingredient) TableName() string {
	return "ingredients"
}
