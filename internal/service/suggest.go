package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/recipevault/backend/internal/models"
	"github.com/recipevault/backend/internal/suggest"
	"github.com/recipevault/backend/internal/types"
)

// SuggestionService scores recipe text against the keyword dictionary and
// annotates each suggestion with the id of an existing tag when one matches
// the suggested name case-insensitively.
type SuggestionService struct {
	db *gorm.DB
}

func NewSuggestionService(db *gorm.DB) *SuggestionService {
	return &SuggestionService{db: db}
}

// Suggest returns up to ten tag suggestions for the given recipe text.
func (s *SuggestionService) Suggest(ctx context.Context, title, ingredientsRaw, instructions string) ([]types.TagSuggestion, error) {
	scored := suggest.Score(title, ingredientsRaw, instructions)
	if len(scored) == 0 {
		return []types.TagSuggestion{}, nil
	}

	var tags []models.Tag
	if err := s.db.WithContext(ctx).Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("loading tags for suggestions: %w", err)
	}
	byName := make(map[string]int64, len(tags))
	for _, tag := range tags {
		byName[tag.NameLower] = tag.ID
	}

	suggestions := make([]types.TagSuggestion, 0, len(scored))
	for _, sc := range scored {
		suggestion := types.TagSuggestion{
			Name:       sc.Name,
			Confidence: sc.Confidence,
			Sources:    sc.Sources,
		}
		if id, ok := byName[strings.ToLower(sc.Name)]; ok {
			suggestion.ExistingTagID = &id
		}
		suggestions = append(suggestions, suggestion)
	}
	return suggestions, nil
}
