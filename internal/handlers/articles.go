package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Aditi2k5/ai-job-dashboard/internal/articles"
	"github.com/Aditi2k5/ai-job-dashboard/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultArticleLimit is the number of cards the dashboard sidebar shows
	DefaultArticleLimit = 12
	// MaxArticleLimit caps the limit query parameter
	MaxArticleLimit = 100
)

// ArticlesHandler handles HTTP requests for job impact articles
type ArticlesHandler struct {
	repo         repository.JobImpactRepository
	transformer  *articles.Transformer
	defaultLimit int
}

// NewArticlesHandler creates a new articles handler
func NewArticlesHandler(repo repository.JobImpactRepository, transformer *articles.Transformer, defaultLimit int) *ArticlesHandler {
	if defaultLimit < 1 {
		defaultLimit = DefaultArticleLimit
	}
	return &ArticlesHandler{
		repo:         repo,
		transformer:  transformer,
		defaultLimit: defaultLimit,
	}
}

// ListArticles handles GET /api/articles
func (h *ArticlesHandler) ListArticles(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), h.defaultLimit)

	records, err := h.repo.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err, "Failed to fetch articles from database")
		return
	}

	c.JSON(http.StatusOK, h.transformer.Cards(records))
}

// GetArticle handles GET /api/articles/:id
func (h *ArticlesHandler) GetArticle(c *gin.Context) {
	record, err := h.repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to fetch article from database")
		return
	}

	c.JSON(http.StatusOK, h.transformer.Detail(*record))
}

// parseLimit reads the limit query parameter. "all" lifts the limit, and
// missing or malformed values use the default.
func parseLimit(raw string, defaultLimit int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultLimit
	}
	if strings.EqualFold(raw, "all") {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultLimit
	}
	if limit > MaxArticleLimit {
		return MaxArticleLimit
	}
	return limit
}
