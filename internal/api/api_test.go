package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/recipevault/backend/internal/database"
	"github.com/recipevault/backend/internal/service"
)

// setupTestRouter builds a router over an in-memory sqlite database with all
// API routes mounted, mirroring the production wiring minus redis.
func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	recipes := service.NewRecipeService(db, fts, nil)
	tags := service.NewTagService(db, nil)
	suggestions := service.NewSuggestionService(db)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewRecipeHandler(recipes, tags, 30).RegisterRoutes(v1)
	NewTagHandler(tags, suggestions).RegisterRoutes(v1)
	return router
}

// doJSON issues a request with an optional JSON body and decodes the JSON
// response into a generic map when there is one.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w.Code, decoded
}

func createTestRecipe(t *testing.T, router *gin.Engine, title string, tagIDs []float64) float64 {
	t.Helper()

	body := map[string]interface{}{
		"title":           title,
		"ingredients_raw": "2 cups flour\n1 tsp salt",
		"instructions":    "mix and bake",
	}
	if tagIDs != nil {
		body["tag_ids"] = tagIDs
	}
	code, resp := doJSON(t, router, http.MethodPost, "/api/v1/recipes", body)
	require.Equal(t, http.StatusCreated, code)
	return resp["id"].(float64)
}

func createTestTag(t *testing.T, router *gin.Engine, name string) float64 {
	t.Helper()

	code, resp := doJSON(t, router, http.MethodPost, "/api/v1/tags",
		map[string]interface{}{"name": name})
	require.Equal(t, http.StatusCreated, code)
	return resp["id"].(float64)
}
