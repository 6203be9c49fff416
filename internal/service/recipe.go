package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/recipevault/backend/internal/ingredient"
	"github.com/recipevault/backend/internal/models"
)

// Sort keys accepted by Search.
const (
	SortTitle        = "title"
	SortRating       = "rating"
	SortCreatedAt    = "created_at"
	SortUpdatedAt    = "updated_at"
	SortLastViewedAt = "last_viewed_at"
	SortRandom       = "random"
)

const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SearchOptions is a validated repository query. Handlers go through
// BuildSearchOptions rather than populating this directly.
type SearchOptions struct {
	TextQuery           string
	TagIDs              []int64
	IngredientSubstring string
	Sort                string
	Order               string
	Limit               int
	Offset              int
	IncludeTrashed      bool
}

// RecipeInput is the payload for creating a recipe. String fields arrive
// trimmed and non-empty from the handler.
type RecipeInput struct {
	Title          string
	IngredientsRaw string
	Instructions   string
	Notes          *string
	SourceURL      *string
	ImageURL       *string
	TagIDs         []int64
}

// RecipeUpdate is a partial update. Nil fields are left untouched; for the
// nullable fields (notes, source_url, image_url) an empty string clears the
// column. A non-nil TagIDs replaces the whole association set.
type RecipeUpdate struct {
	Title          *string
	IngredientsRaw *string
	Instructions   *string
	Notes          *string
	SourceURL      *string
	ImageURL       *string
	TagIDs         *[]int64
}

// RecipeService owns recipe records, their active/trashed lifecycle and the
// compound search query. Whole-collection replacements (ingredients, tag
// associations) always run inside one transaction so a concurrent reader
// never observes a half-replaced set.
type RecipeService struct {
	db    *gorm.DB
	fts   bool
	cache *Cache
}

// NewRecipeService creates a RecipeService. fts reports whether the sqlite
// build has the recipe_fts table available; on postgres it is ignored.
func NewRecipeService(db *gorm.DB, fts bool, cache *Cache) *RecipeService {
	return &RecipeService{db: db, fts: fts, cache: cache}
}

// Search runs the compound query and returns one page plus the total match
// count. The count comes from an independent query, so under concurrent
// writes it may reflect a slightly different table state than the page.
func (s *RecipeService) Search(ctx context.Context, opts SearchOptions) ([]models.Recipe, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})
	if opts.IncludeTrashed {
		query = query.Unscoped()
	}

	if opts.TextQuery != "" {
		query = s.applyTextFilter(query, opts.TextQuery)
	}

	if opts.IngredientSubstring != "" {
		sub := "%" + strings.ToLower(opts.IngredientSubstring) + "%"
		query = query.Where("recipes.id IN (?)",
			s.db.Table("ingredients").Distinct("recipe_id").Where("name_lower LIKE ?", sub))
	}

	if len(opts.TagIDs) > 0 {
		// Intersection: the recipe must carry every requested tag.
		query = query.Where("recipes.id IN (?)",
			s.db.Table("recipe_tags").
				Select("recipe_id").
				Where("tag_id IN ?", opts.TagIDs).
				Group("recipe_id").
				Having("COUNT(DISTINCT tag_id) = ?", len(opts.TagIDs)))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting recipes: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	var recipes []models.Recipe
	err := query.
		Order(orderClause(opts.Sort, opts.Order)).
		Limit(limit).
		Offset(opts.Offset).
		Preload("Tags", sortTagsByName).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("searching recipes: %w", err)
	}

	return recipes, total, nil
}

// applyTextFilter adds the full-text condition. Postgres uses a prefix
// tsquery over the indexed expression; sqlite uses the recipe_fts table when
// the build has FTS5, and otherwise falls back to a LIKE scan over the three
// searchable fields.
func (s *RecipeService) applyTextFilter(query *gorm.DB, text string) *gorm.DB {
	if s.db.Dialector.Name() == "postgres" {
		tsquery := prefixTSQuery(text)
		if tsquery == "" {
			return query
		}
		return query.Where(
			"to_tsvector('simple', title || ' ' || ingredients_raw || ' ' || instructions) @@ to_tsquery('simple', ?)",
			tsquery)
	}

	if s.fts {
		return query.Where(
			"recipes.id IN (SELECT rowid FROM recipe_fts WHERE recipe_fts MATCH ?)",
			text+"*")
	}

	like := "%" + strings.ToLower(text) + "%"
	return query.Where(
		"(LOWER(title) LIKE ? OR LOWER(ingredients_raw) LIKE ? OR LOWER(instructions) LIKE ?)",
		like, like, like)
}

// prefixTSQuery turns free text into an AND-ed prefix tsquery, dropping
// characters to_tsquery would reject.
func prefixTSQuery(text string) string {
	var terms []string
	for _, field := range strings.Fields(text) {
		term := strings.Map(func(r rune) rune {
			if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, field)
		if term != "" {
			terms = append(terms, term+":*")
		}
	}
	return strings.Join(terms, " & ")
}

func orderClause(sort, order string) string {
	dir := "DESC"
	if order == OrderAsc {
		dir = "ASC"
	}
	switch sort {
	case SortRandom:
		return "RANDOM()"
	case SortLastViewedAt:
		// Never-viewed recipes always sort after viewed ones.
		return "last_viewed_at IS NULL, last_viewed_at " + dir
	case SortTitle, SortRating, SortUpdatedAt:
		return sort + " " + dir
	default:
		return "created_at " + dir
	}
}

func sortTagsByName(db *gorm.DB) *gorm.DB {
	return db.Order("tags.name")
}

func sortIngredientsByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("ingredients.position")
}

// Get returns the full detail of an active recipe. When touchViewed is set,
// the read also stamps last_viewed_at (without bumping updated_at), which
// intentionally makes it non-idempotent.
func (s *RecipeService) Get(ctx context.Context, id int64, touchViewed bool) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Preload("Tags", sortTagsByName).
		Preload("Ingredients", sortIngredientsByPosition).
		First(&recipe, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading recipe %d: %w", id, err)
	}

	if touchViewed {
		now := time.Now().UTC()
		if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).
			UpdateColumn("last_viewed_at", now).Error; err != nil {
			return nil, fmt.Errorf("stamping last_viewed_at: %w", err)
		}
		recipe.LastViewedAt = &now
	}

	return &recipe, nil
}

// Create inserts the recipe row, its tag associations and its parsed
// ingredients as one transaction, then returns the fresh detail.
func (s *RecipeService) Create(ctx context.Context, input RecipeInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:          input.Title,
		IngredientsRaw: input.IngredientsRaw,
		Instructions:   input.Instructions,
		Notes:          input.Notes,
		SourceURL:      input.SourceURL,
		ImageURL:       input.ImageURL,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return fmt.Errorf("inserting recipe: %w", err)
		}
		if len(input.TagIDs) > 0 {
			if err := replaceRecipeTags(tx, recipe.ID, input.TagIDs); err != nil {
				return err
			}
		}
		return insertIngredients(tx, recipe.ID, input.IngredientsRaw)
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cacheKeyTagCounts)
	return s.Get(ctx, recipe.ID, false)
}

// Update applies a partial update to an active recipe. A supplied
// ingredients_raw or tag set replaces the whole collection; scalar changes
// bump updated_at through GORM's map update path.
func (s *RecipeService) Update(ctx context.Context, id int64, update RecipeUpdate) (*models.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Recipe
		if err := tx.First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("loading recipe %d: %w", id, err)
		}

		updates := map[string]interface{}{}
		if update.Title != nil {
			updates["title"] = strings.TrimSpace(*update.Title)
		}
		if update.IngredientsRaw != nil {
			updates["ingredients_raw"] = strings.TrimSpace(*update.IngredientsRaw)
		}
		if update.Instructions != nil {
			updates["instructions"] = strings.TrimSpace(*update.Instructions)
		}
		if update.Notes != nil {
			updates["notes"] = nullableText(*update.Notes)
		}
		if update.SourceURL != nil {
			updates["source_url"] = nullableText(*update.SourceURL)
		}
		if update.ImageURL != nil {
			updates["image_url"] = nullableText(*update.ImageURL)
		}

		if len(updates) > 0 {
			if err := tx.Model(&existing).Updates(updates).Error; err != nil {
				return fmt.Errorf("updating recipe %d: %w", id, err)
			}
		}

		if update.IngredientsRaw != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&models.Ingredient{}).Error; err != nil {
				return fmt.Errorf("clearing ingredients: %w", err)
			}
			if err := insertIngredients(tx, id, strings.TrimSpace(*update.IngredientsRaw)); err != nil {
				return err
			}
		}

		if update.TagIDs != nil {
			if err := replaceRecipeTags(tx, id, *update.TagIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cacheKeyTagCounts)
	return s.Get(ctx, id, false)
}

// nullableText maps an empty string to NULL so optional columns are cleared
// rather than stored as "".
func nullableText(s string) interface{} {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return trimmed
}

// insertIngredients parses raw and inserts the ingredient rows for the
// recipe. Callers replacing an existing set clear the old rows first, in the
// same transaction.
func insertIngredients(tx *gorm.DB, recipeID int64, raw string) error {
	parsed := ingredient.ParseBatch(raw)
	if len(parsed) == 0 {
		return nil
	}

	rows := make([]models.Ingredient, 0, len(parsed))
	for _, p := range parsed {
		rows = append(rows, models.Ingredient{
			RecipeID:     recipeID,
			Name:         p.Name,
			NameLower:    strings.ToLower(p.Name),
			Quantity:     p.Quantity,
			OriginalText: p.OriginalText,
			Position:     p.Position,
		})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("inserting ingredients: %w", err)
	}
	return nil
}

// SoftDelete moves an active recipe to the trash. Returns false without
// error when the recipe is missing or already trashed.
func (s *RecipeService) SoftDelete(ctx context.Context, id int64) (bool, error) {
	now := time.Now().UTC()
	res := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).
		Updates(map[string]interface{}{"deleted_at": now, "updated_at": now})
	if res.Error != nil {
		return false, fmt.Errorf("trashing recipe %d: %w", id, res.Error)
	}
	if res.RowsAffected > 0 {
		s.cache.Invalidate(ctx, cacheKeyTagCounts)
	}
	return res.RowsAffected > 0, nil
}

// Restore brings a trashed recipe back and returns its detail. ErrNotFound
// when the recipe is missing or not currently trashed. Ingredients and tag
// associations survive the trash round trip untouched.
func (s *RecipeService) Restore(ctx context.Context, id int64) (*models.Recipe, error) {
	res := s.db.WithContext(ctx).Unscoped().Model(&models.Recipe{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Updates(map[string]interface{}{"deleted_at": nil, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, fmt.Errorf("restoring recipe %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	s.cache.Invalidate(ctx, cacheKeyTagCounts)
	return s.Get(ctx, id, false)
}

// ListTrashed returns trashed recipes, most recently trashed first.
func (s *RecipeService) ListTrashed(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Order("deleted_at DESC").
		Preload("Tags", sortTagsByName).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("listing trash: %w", err)
	}
	return recipes, nil
}

// PurgeOlderThan permanently removes recipes trashed more than days ago,
// together with their ingredients and tag associations. Returns how many
// recipes were removed. This is irreversible.
func (s *RecipeService) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)

	var purged int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ids []int64
		if err := tx.Unscoped().Model(&models.Recipe{}).
			Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("finding purgeable recipes: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("recipe_id IN ?", ids).Delete(&models.Ingredient{}).Error; err != nil {
			return fmt.Errorf("purging ingredients: %w", err)
		}
		if err := tx.Where("recipe_id IN ?", ids).Delete(&models.RecipeTag{}).Error; err != nil {
			return fmt.Errorf("purging tag associations: %w", err)
		}
		res := tx.Unscoped().Where("id IN ?", ids).Delete(&models.Recipe{})
		if res.Error != nil {
			return fmt.Errorf("purging recipes: %w", res.Error)
		}
		purged = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	if purged > 0 {
		s.cache.Invalidate(ctx, cacheKeyTagCounts)
	}
	return purged, nil
}

// SetRating stores a rating in [1,5] or clears it with nil.
func (s *RecipeService) SetRating(ctx context.Context, id int64, rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return ErrInvalidRating
	}

	var value interface{}
	if rating != nil {
		value = *rating
	}
	res := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).
		Updates(map[string]interface{}{"rating": value, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return fmt.Errorf("rating recipe %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
