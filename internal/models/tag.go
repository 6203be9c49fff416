package models

import "time"

// Tag carries a display name plus its lowercase twin. NameLower backs
// case-insensitive lookup and uniqueness; the two columns are always written
// together.
type Tag struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	NameLower string    `gorm:"size:50;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// TagWithCount is a Tag joined with the number of non-trashed recipes using
// it. Kept flat so it scans directly from the aggregated query.
type TagWithCount struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	RecipeCount int64     `json:"recipe_count"`
}

// RecipeTag links recipes and tags. The composite primary key doubles as the
// dedup constraint for association replacement.
type RecipeTag struct {
	RecipeID  int64     `gorm:"primaryKey" json:"recipe_id"`
	TagID     int64     `gorm:"primaryKey" json:"tag_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (RecipeTag) TableName() string {
	return "recipe_tags"
}
