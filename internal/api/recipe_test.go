package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecipe(t *testing.T) {
	router := setupTestRouter(t)

	code, resp := doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"title":           "Test Bread",
		"ingredients_raw": "3 cups flour\n1 tsp yeast",
		"instructions":    "knead and bake",
		"notes":           "family favorite",
	})
	require.Equal(t, http.StatusCreated, code)

	assert.Equal(t, "Test Bread", resp["title"])
	assert.Equal(t, "family favorite", resp["notes"])
	ingredients := resp["ingredients"].([]interface{})
	require.Len(t, ingredients, 2)
	first := ingredients[0].(map[string]interface{})
	assert.Equal(t, "flour", first["name"])
	assert.Equal(t, "3 cups", first["quantity"])
}

func TestCreateRecipeValidation(t *testing.T) {
	router := setupTestRouter(t)

	// Missing required fields.
	code, _ := doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"title": "No Ingredients",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// Whitespace-only title.
	code, _ = doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"title":           "   ",
		"ingredients_raw": "1 cup rice",
		"instructions":    "cook",
	})
	assert.Equal(t, http.StatusBadRequest, code)

	// Unknown tag id.
	code, resp := doJSON(t, router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{
		"title":           "Tagged",
		"ingredients_raw": "1 cup rice",
		"instructions":    "cook",
		"tag_ids":         []int64{999},
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "unknown tag id", resp["error"])
}

func TestGetRecipeNotFound(t *testing.T) {
	router := setupTestRouter(t)

	code, _ := doJSON(t, router, http.MethodGet, "/api/v1/recipes/999", nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doJSON(t, router, http.MethodGet, "/api/v1/recipes/banana", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestGetRecipeStampsLastViewed(t *testing.T) {
	router := setupTestRouter(t)
	id := createTestRecipe(t, router, "Viewed", nil)

	code, resp := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%.0f", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, resp["last_viewed_at"])
}

func TestListRecipesPagination(t *testing.T) {
	router := setupTestRouter(t)
	for i := 0; i < 3; i++ {
		createTestRecipe(t, router, fmt.Sprintf("Recipe %d", i), nil)
	}

	code, resp := doJSON(t, router, http.MethodGet, "/api/v1/recipes?limit=2&offset=0&sort=title&order=asc", nil)
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, float64(3), resp["total"])
	assert.Equal(t, float64(2), resp["limit"])
	assert.Equal(t, float64(0), resp["offset"])
	assert.Len(t, resp["recipes"].([]interface{}), 2)
}

func TestListRecipesByTagIntersection(t *testing.T) {
	router := setupTestRouter(t)
	a := createTestTag(t, router, "A")
	b := createTestTag(t, router, "B")

	createTestRecipe(t, router, "Only A", []float64{a})
	createTestRecipe(t, router, "Both", []float64{a, b})

	code, resp := doJSON(t, router, http.MethodGet,
		fmt.Sprintf("/api/v1/recipes?tags=%.0f,%.0f", a, b), nil)
	require.Equal(t, http.StatusOK, code)

	recipes := resp["recipes"].([]interface{})
	require.Len(t, recipes, 1)
	assert.Equal(t, "Both", recipes[0].(map[string]interface{})["title"])
}

func TestUpdateRecipe(t *testing.T) {
	router := setupTestRouter(t)
	id := createTestRecipe(t, router, "Before", nil)

	code, resp := doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/recipes/%.0f", id),
		map[string]interface{}{"title": "After"})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "After", resp["title"])

	// Blank title is rejected even though the field is optional.
	code, _ = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/recipes/%.0f", id),
		map[string]interface{}{"title": "  "})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDeleteRestoreRoundTrip(t *testing.T) {
	router := setupTestRouter(t)
	id := createTestRecipe(t, router, "Doomed", nil)
	path := fmt.Sprintf("/api/v1/recipes/%.0f", id)

	code, _ := doJSON(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = doJSON(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, code)

	code, resp := doJSON(t, router, http.MethodGet, "/api/v1/trash", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, resp["recipes"].([]interface{}), 1)

	code, resp = doJSON(t, router, http.MethodPost, path+"/restore", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Doomed", resp["title"])

	code, _ = doJSON(t, router, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusOK, code)
}

func TestPurgeTrashEmpty(t *testing.T) {
	router := setupTestRouter(t)
	id := createTestRecipe(t, router, "Fresh Trash", nil)

	code, _ := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/recipes/%.0f", id), nil)
	require.Equal(t, http.StatusNoContent, code)

	// Freshly trashed recipes are inside the retention window.
	code, resp := doJSON(t, router, http.MethodPost, "/api/v1/trash/purge", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(0), resp["purged"])
}

func TestRatingEndpoints(t *testing.T) {
	router := setupTestRouter(t)
	id := createTestRecipe(t, router, "Rated", nil)
	path := fmt.Sprintf("/api/v1/recipes/%.0f/rating", id)

	code, _ := doJSON(t, router, http.MethodPut, path, map[string]interface{}{"rating": 5})
	assert.Equal(t, http.StatusNoContent, code)

	code, resp := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%.0f", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(5), resp["rating"])

	code, _ = doJSON(t, router, http.MethodPut, path, map[string]interface{}{"rating": 9})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = doJSON(t, router, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, code)

	code, resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/recipes/%.0f", id), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Nil(t, resp["rating"])
}

func TestSetTagsEndpoint(t *testing.T) {
	router := setupTestRouter(t)
	a := createTestTag(t, router, "First")
	b := createTestTag(t, router, "Second")
	id := createTestRecipe(t, router, "Tagged", []float64{a})
	path := fmt.Sprintf("/api/v1/recipes/%.0f/tags", id)

	code, resp := doJSON(t, router, http.MethodPut, path,
		map[string]interface{}{"tag_ids": []float64{b}})
	require.Equal(t, http.StatusOK, code)

	tags := resp["tags"].([]interface{})
	require.Len(t, tags, 1)
	assert.Equal(t, "Second", tags[0].(map[string]interface{})["name"])

	code, resp = doJSON(t, router, http.MethodPut, path,
		map[string]interface{}{"tag_ids": []float64{}})
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp["tags"])
}
