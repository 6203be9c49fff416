package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recipevault/backend/internal/service"
	"github.com/recipevault/backend/internal/types"
)

// RecipeHandler exposes the recipe catalog over HTTP: search, detail,
// create/update, ratings and the trash lifecycle.
type RecipeHandler struct {
	recipes       *service.RecipeService
	tags          *service.TagService
	retentionDays int
}

func NewRecipeHandler(recipes *service.RecipeService, tags *service.TagService, retentionDays int) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, tags: tags, retentionDays: retentionDays}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.POST("", h.CreateRecipe)
		recipes.GET("/:id", h.GetRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.POST("/:id/restore", h.RestoreRecipe)
		recipes.PUT("/:id/rating", h.SetRating)
		recipes.DELETE("/:id/rating", h.ClearRating)
		recipes.PUT("/:id/tags", h.SetTags)
	}

	// Static /trash routes live outside the /recipes group so they cannot
	// collide with the :id parameter.
	trash := router.Group("/trash")
	{
		trash.GET("", h.ListTrash)
		trash.POST("/purge", h.PurgeTrash)
	}
}

// ListRecipes handles GET /recipes with the compound search parameters.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	opts := service.BuildSearchOptions(service.SearchParams{
		Search:     c.Query("search"),
		Tags:       c.Query("tags"),
		Ingredient: c.Query("ingredient"),
		Sort:       c.Query("sort"),
		Order:      c.Query("order"),
		Limit:      c.Query("limit"),
		Offset:     c.Query("offset"),
	})

	recipes, total, err := h.recipes.Search(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.RecipeListResponse{
		Recipes: recipes,
		Total:   total,
		Limit:   opts.Limit,
		Offset:  opts.Offset,
	})
}

// GetRecipe handles GET /recipes/:id and stamps last_viewed_at.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id, true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := service.RecipeInput{
		Title:          strings.TrimSpace(req.Title),
		IngredientsRaw: strings.TrimSpace(req.IngredientsRaw),
		Instructions:   strings.TrimSpace(req.Instructions),
		Notes:          req.Notes,
		SourceURL:      req.SourceURL,
		ImageURL:       req.ImageURL,
		TagIDs:         req.TagIDs,
	}
	if input.Title == "" || input.IngredientsRaw == "" || input.Instructions == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, ingredients_raw and instructions must not be blank"})
		return
	}
	if !h.tagsExist(c, input.TagIDs) {
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for name, field := range map[string]*string{
		"title":           req.Title,
		"ingredients_raw": req.IngredientsRaw,
		"instructions":    req.Instructions,
	} {
		if field != nil && strings.TrimSpace(*field) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": name + " must not be blank"})
			return
		}
	}
	if req.TagIDs != nil && !h.tagsExist(c, *req.TagIDs) {
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), id, service.RecipeUpdate{
		Title:          req.Title,
		IngredientsRaw: req.IngredientsRaw,
		Instructions:   req.Instructions,
		Notes:          req.Notes,
		SourceURL:      req.SourceURL,
		ImageURL:       req.ImageURL,
		TagIDs:         req.TagIDs,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe handles DELETE /recipes/:id, moving the recipe to the trash.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	trashed, err := h.recipes.SoftDelete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !trashed {
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) RestoreRecipe(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	recipe, err := h.recipes.Restore(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) SetRating(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.SetRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recipes.SetRating(c.Request.Context(), id, &req.Rating); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *RecipeHandler) ClearRating(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.recipes.SetRating(c.Request.Context(), id, nil); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetTags handles PUT /recipes/:id/tags, replacing the whole tag set.
func (h *RecipeHandler) SetTags(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req types.SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.tagsExist(c, req.TagIDs) {
		return
	}

	// Confirm the recipe exists before touching associations.
	if _, err := h.recipes.Get(c.Request.Context(), id, false); err != nil {
		respondError(c, err)
		return
	}
	if err := h.tags.SetTagsForRecipe(c.Request.Context(), id, req.TagIDs); err != nil {
		respondError(c, err)
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), id, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) ListTrash(c *gin.Context) {
	recipes, err := h.recipes.ListTrashed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// PurgeTrash permanently removes recipes past the retention window.
func (h *RecipeHandler) PurgeTrash(c *gin.Context) {
	purged, err := h.recipes.PurgeOlderThan(c.Request.Context(), h.retentionDays)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, types.PurgeResponse{Purged: purged})
}

// tagsExist verifies every referenced tag id and writes the 400 itself when
// one is missing.
func (h *RecipeHandler) tagsExist(c *gin.Context, tagIDs []int64) bool {
	for _, tagID := range tagIDs {
		if _, err := h.tags.Get(c.Request.Context(), tagID); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown tag id"})
			} else {
				respondError(c, err)
			}
			return false
		}
	}
	return true
}
