package types

import "github.com/recipevault/backend/internal/models"

// CreateRecipeRequest is the body for POST /recipes.
type CreateRecipeRequest struct {
	Title          string  `json:"title" binding:"required"`
	IngredientsRaw string  `json:"ingredients_raw" binding:"required"`
	Instructions   string  `json:"instructions" binding:"required"`
	Notes          *string `json:"notes"`
	SourceURL      *string `json:"source_url"`
	ImageURL       *string `json:"image_url"`
	TagIDs         []int64 `json:"tag_ids"`
}

// UpdateRecipeRequest is the body for PUT /recipes/:id. Absent fields are
// left unchanged; an explicit empty string clears the nullable fields.
type UpdateRecipeRequest struct {
	Title          *string  `json:"title"`
	IngredientsRaw *string  `json:"ingredients_raw"`
	Instructions   *string  `json:"instructions"`
	Notes          *string  `json:"notes"`
	SourceURL      *string  `json:"source_url"`
	ImageURL       *string  `json:"image_url"`
	TagIDs         *[]int64 `json:"tag_ids"`
}

// SetRatingRequest is the body for PUT /recipes/:id/rating.
type SetRatingRequest struct {
	Rating int `json:"rating" binding:"required"`
}

// SetTagsRequest is the body for PUT /recipes/:id/tags. An empty list clears
// every association.
type SetTagsRequest struct {
	TagIDs []int64 `json:"tag_ids"`
}

// RecipeListResponse is one page of search results plus the total match
// count for pagination.
type RecipeListResponse struct {
	Recipes []models.Recipe `json:"recipes"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// PurgeResponse reports how many recipes a purge removed.
type PurgeResponse struct {
	Purged int64 `json:"purged"`
}
