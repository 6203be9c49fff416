package types

// CreateTagRequest is the body for POST /tags and PUT /tags/:id.
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

// SuggestTagsRequest carries the recipe text to score. Ingredients and
// instructions are optional; an empty title with empty everything else just
// yields no suggestions.
type SuggestTagsRequest struct {
	Title          string `json:"title"`
	IngredientsRaw string `json:"ingredients_raw"`
	Instructions   string `json:"instructions"`
}

// TagSuggestion is one scored suggestion. ExistingTagID is set when a tag
// with the suggested name already exists.
type TagSuggestion struct {
	Name          string   `json:"name"`
	Confidence    float64  `json:"confidence"`
	Sources       []string `json:"sources"`
	ExistingTagID *int64   `json:"existing_tag_id,omitempty"`
}
