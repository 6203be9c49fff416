package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/recipevault/backend/internal/database"
)

// newTestDB opens an in-memory sqlite database with the full schema. A
// single connection keeps the in-memory database alive across pool
// checkouts. The second return value reports whether the sqlite build has
// FTS5, so search tests can exercise whichever text path is compiled in.
func newTestDB(t *testing.T) (*gorm.DB, bool) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	fts, err := database.Migrate(db)
	require.NoError(t, err)
	return db, fts
}

func newTestServices(t *testing.T) (*RecipeService, *TagService) {
	t.Helper()
	db, fts := newTestDB(t)
	return NewRecipeService(db, fts, nil), NewTagService(db, nil)
}

// mustCreateRecipe is shorthand for tests that just need a recipe row.
func mustCreateRecipe(t *testing.T, recipes *RecipeService, input RecipeInput) int64 {
	t.Helper()
	recipe, err := recipes.Create(context.Background(), input)
	require.NoError(t, err)
	return recipe.ID
}

// mustCreateTag is shorthand for tests that just need a tag row.
func mustCreateTag(t *testing.T, tags *TagService, name string) int64 {
	t.Helper()
	tag, err := tags.Create(context.Background(), name)
	require.NoError(t, err)
	return tag.ID
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
