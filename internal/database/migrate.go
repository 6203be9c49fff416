package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/recipevault/backend/internal/models"
)

// Migrate creates or updates the schema and the full-text search structures.
// It returns whether a native full-text path is available: always true on
// postgres, and true on sqlite only when the build carries FTS5. Callers use
// the flag to pick between indexed search and a LIKE fallback.
func Migrate(db *gorm.DB) (fts bool, err error) {
	if err := db.SetupJoinTable(&models.Recipe{}, "Tags", &models.RecipeTag{}); err != nil {
		return false, fmt.Errorf("configuring recipe_tags join table: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Recipe{},
		&models.Tag{},
		&models.Ingredient{},
	); err != nil {
		return false, fmt.Errorf("migrating schema: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		if err := migratePostgresFTS(db); err != nil {
			return false, err
		}
		return true, nil
	}
	return migrateSQLiteFTS(db), nil
}

func migratePostgresFTS(db *gorm.DB) error {
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_recipes_fts
		ON recipes
		USING GIN (to_tsvector('simple', title || ' ' || ingredients_raw || ' ' || instructions))
	`).Error
	if err != nil {
		return fmt.Errorf("creating full-text index: %w", err)
	}
	return nil
}

// migrateSQLiteFTS sets up the recipe_fts virtual table plus the triggers
// that keep it in sync with recipes. Some sqlite builds ship without FTS5;
// in that case search falls back to LIKE and we log the downgrade once.
func migrateSQLiteFTS(db *gorm.DB) bool {
	err := db.Exec(`
		CREATE VIRTUAL TABLE IF NOT EXISTS recipe_fts USING fts5(
			title, ingredients_raw, instructions,
			content='recipes', content_rowid='id'
		)
	`).Error
	if err != nil {
		zap.L().Warn("sqlite build lacks FTS5, text search will use LIKE", zap.Error(err))
		return false
	}

	triggers := []string{
		`CREATE TRIGGER IF NOT EXISTS recipe_fts_insert AFTER INSERT ON recipes BEGIN
			INSERT INTO recipe_fts(rowid, title, ingredients_raw, instructions)
			VALUES (new.id, new.title, new.ingredients_raw, new.instructions);
		END`,
		`CREATE TRIGGER IF NOT EXISTS recipe_fts_delete AFTER DELETE ON recipes BEGIN
			INSERT INTO recipe_fts(recipe_fts, rowid, title, ingredients_raw, instructions)
			VALUES ('delete', old.id, old.title, old.ingredients_raw, old.instructions);
		END`,
		`CREATE TRIGGER IF NOT EXISTS recipe_fts_update AFTER UPDATE OF title, ingredients_raw, instructions ON recipes BEGIN
			INSERT INTO recipe_fts(recipe_fts, rowid, title, ingredients_raw, instructions)
			VALUES ('delete', old.id, old.title, old.ingredients_raw, old.instructions);
			INSERT INTO recipe_fts(rowid, title, ingredients_raw, instructions)
			VALUES (new.id, new.title, new.ingredients_raw, new.instructions);
		END`,
	}
	for _, trigger := range triggers {
		if err := db.Exec(trigger).Error; err != nil {
			zap.L().Warn("creating FTS trigger failed, text search will use LIKE", zap.Error(err))
			return false
		}
	}
	return true
}
