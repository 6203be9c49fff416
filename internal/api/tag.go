package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/recipevault/backend/internal/service"
	"github.com/recipevault/backend/internal/types"
)

// TagHandler exposes tag CRUD and the tag suggestion endpoint.
type TagHandler struct {
	tags        *service.TagService
	suggestions *service.SuggestionService
}

func NewTagHandler(tags *service.TagService, suggestions *service.SuggestionService) *TagHandler {
	return &TagHandler{tags: tags, suggestions: suggestions}
}

func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tags")
	{
		tags.GET("", h.ListTags)
		tags.POST("", h.CreateTag)
		tags.PUT("/:id", h.RenameTag)
		tags.DELETE("/:id", h.DeleteTag)
	}

	router.POST("/suggest-tags", h.SuggestTags)
}

// ListTags returns every tag with its non-trashed usage count.
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tags.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tags": tags})
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	name, ok := h.tagName(c, 0)
	if !ok {
		return
	}

	tag, err := h.tags.Create(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tag)
}

func (h *TagHandler) RenameTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	name, ok := h.tagName(c, id)
	if !ok {
		return
	}

	tag, err := h.tags.Rename(c.Request.Context(), id, name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tag)
}

func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.tags.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SuggestTags scores the submitted recipe text against the keyword
// dictionary and returns up to ten suggestions.
func (h *TagHandler) SuggestTags(c *gin.Context) {
	var req types.SuggestTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestions, err := h.suggestions.Suggest(c.Request.Context(),
		req.Title, req.IngredientsRaw, req.Instructions)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// tagName validates the submitted name: non-blank after trimming, at most 50
// characters, and not already used by another tag. selfID excludes the tag
// being renamed from the duplicate check.
func (h *TagHandler) tagName(c *gin.Context, selfID int64) (string, bool) {
	var req types.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag name must not be blank"})
		return "", false
	}
	if utf8.RuneCountInString(name) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "tag name must be at most 50 characters"})
		return "", false
	}

	existing, err := h.tags.FindByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err)
		return "", false
	}
	if existing != nil && existing.ID != selfID {
		respondError(c, service.ErrDuplicateTag)
		return "", false
	}
	return name, true
}
