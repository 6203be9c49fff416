package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recipevault/backend/internal/models"
)

// TagService owns tag identity and recipe-tag associations. Uniqueness is
// case-insensitive on the trimmed name; the unique index on name_lower backs
// it up when a caller skips the pre-check.
type TagService struct {
	db    *gorm.DB
	cache *Cache
}

func NewTagService(db *gorm.DB, cache *Cache) *TagService {
	return &TagService{db: db, cache: cache}
}

// List returns every tag with the number of non-trashed recipes using it.
// Tags with zero usage are included.
func (s *TagService) List(ctx context.Context) ([]models.TagWithCount, error) {
	var tags []models.TagWithCount
	if s.cache.GetJSON(ctx, cacheKeyTagCounts, &tags) {
		return tags, nil
	}

	err := s.db.WithContext(ctx).
		Table("tags").
		Select("tags.id, tags.name, tags.created_at, COUNT(recipes.id) AS recipe_count").
		Joins("LEFT JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
		Joins("LEFT JOIN recipes ON recipes.id = recipe_tags.recipe_id AND recipes.deleted_at IS NULL").
		Group("tags.id, tags.name, tags.created_at").
		Order("tags.name").
		Scan(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	s.cache.SetJSON(ctx, cacheKeyTagCounts, tags)
	return tags, nil
}

// Get returns a tag by id.
func (s *TagService) Get(ctx context.Context, id int64) (*models.Tag, error) {
	var tag models.Tag
	if err := s.db.WithContext(ctx).First(&tag, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading tag %d: %w", id, err)
	}
	return &tag, nil
}

// FindByName looks a tag up by its trimmed, lowercased name. Returns
// (nil, nil) when no tag matches.
func (s *TagService) FindByName(ctx context.Context, name string) (*models.Tag, error) {
	var tag models.Tag
	err := s.db.WithContext(ctx).
		First(&tag, "name_lower = ?", strings.ToLower(strings.TrimSpace(name))).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up tag %q: %w", name, err)
	}
	return &tag, nil
}

// Create inserts a new tag. The handler checks uniqueness first so it can
// report the conflict; the unique index still converts a race into
// ErrDuplicateTag here.
func (s *TagService) Create(ctx context.Context, name string) (*models.Tag, error) {
	trimmed := strings.TrimSpace(name)
	tag := models.Tag{
		Name:      trimmed,
		NameLower: strings.ToLower(trimmed),
	}
	if err := s.db.WithContext(ctx).Create(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTag
		}
		return nil, fmt.Errorf("creating tag %q: %w", trimmed, err)
	}
	s.cache.Invalidate(ctx, cacheKeyTagCounts)
	return &tag, nil
}

// FindOrCreate returns the existing tag for name or creates it.
func (s *TagService) FindOrCreate(ctx context.Context, name string) (*models.Tag, error) {
	if tag, err := s.FindByName(ctx, name); err != nil {
		return nil, err
	} else if tag != nil {
		return tag, nil
	}
	return s.Create(ctx, name)
}

// Rename changes a tag's display name, keeping name_lower in sync in the
// same statement.
func (s *TagService) Rename(ctx context.Context, id int64, name string) (*models.Tag, error) {
	trimmed := strings.TrimSpace(name)
	res := s.db.WithContext(ctx).Model(&models.Tag{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":       trimmed,
		"name_lower": strings.ToLower(trimmed),
	})
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateTag
		}
		return nil, fmt.Errorf("renaming tag %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	s.cache.Invalidate(ctx, cacheKeyTagCounts)
	return s.Get(ctx, id)
}

// Delete removes a tag and its association rows.
func (s *TagService) Delete(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.RecipeTag{}).Error; err != nil {
			return fmt.Errorf("deleting tag associations: %w", err)
		}
		res := tx.Delete(&models.Tag{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("deleting tag: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err == nil {
		s.cache.Invalidate(ctx, cacheKeyTagCounts)
	}
	return err
}

// SetTagsForRecipe atomically replaces a recipe's tag set.
func (s *TagService) SetTagsForRecipe(ctx context.Context, recipeID int64, tagIDs []int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceRecipeTags(tx, recipeID, tagIDs)
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyTagCounts)
	return nil
}

// replaceRecipeTags deletes every association for the recipe and inserts the
// given set inside the caller's transaction. Duplicate ids in the input are
// silently absorbed by the composite primary key.
func replaceRecipeTags(tx *gorm.DB, recipeID int64, tagIDs []int64) error {
	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
		return fmt.Errorf("clearing recipe tags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]models.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, models.RecipeTag{RecipeID: recipeID, TagID: tagID, CreatedAt: now})
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("inserting recipe tags: %w", err)
	}
	return nil
}
