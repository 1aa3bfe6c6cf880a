package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aditi2k5/ai-job-dashboard/internal/articles"
	"github.com/Aditi2k5/ai-job-dashboard/internal/dashboard"
	"github.com/Aditi2k5/ai-job-dashboard/internal/middleware"
	"github.com/Aditi2k5/ai-job-dashboard/internal/models"
	"github.com/Aditi2k5/ai-job-dashboard/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of the job impact repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, rawID string) (*models.JobImpactRecord, error) {
	args := m.Called(ctx, rawID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.JobImpactRecord), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, limit int) ([]models.JobImpactRecord, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.JobImpactRecord), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

func fixedTransformer() *articles.Transformer {
	now := func() time.Time { return time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC) }
	return articles.NewTransformerWith(now, rand.New(rand.NewSource(1)))
}

func testRecord() models.JobImpactRecord {
	return models.JobImpactRecord{
		ID:               7,
		Title:            models.NewText(`"Banks Automate Reconciliation"`),
		URL:              models.NewText("https://www.reuters.com/technology/banks"),
		JobsAtRisk:       models.NewText("50000"),
		JobsReplaced:     models.NewText("10000"),
		NewAIJobs:        models.NewText("40000"),
		SkillsAutomated:  models.NewText(`["Bookkeeping"]`),
		SkillsRemaining:  models.NewText("Audit, Advisory"),
		AffectedIndustry: models.NewText(`["Finance"]`),
		FundingData:      models.NewText(`["Raised $250 million"]`),
	}
}

func setupTestRouter(repo repository.JobImpactRepository, ping func(ctx context.Context) error) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.HandleMethodNotAllowed = true
	r.NoMethod(MethodNotAllowed)
	r.NoRoute(NotFound)

	articlesHandler := NewArticlesHandler(repo, fixedTransformer(), 0)
	dashboardHandler := NewDashboardHandler(dashboard.NewService(repo, 3))
	healthHandler := NewHealthHandler(ping)

	r.GET("/health", healthHandler.HealthCheck)
	r.GET("/articles/:id", articlesHandler.GetArticle)
	api := r.Group("/api")
	{
		api.GET("/articles", articlesHandler.ListArticles)
		api.GET("/articles/:id", articlesHandler.GetArticle)
		api.GET("/dashboard/overview", dashboardHandler.GetOverview)
	}
	return r
}

func performRequest(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListArticles_DefaultLimit(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, DefaultArticleLimit).Return([]models.JobImpactRecord{testRecord()}, nil)

	w := performRequest(setupTestRouter(repo, nil), http.MethodGet, "/api/articles")

	require.Equal(t, http.StatusOK, w.Code)

	var cards []models.DisplayArticle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cards))
	require.Len(t, cards, 1)

	card := cards[0]
	assert.Equal(t, int64(7), card.ID)
	assert.Equal(t, "Banks Automate Reconciliation", card.Title)
	assert.Equal(t, articles.DatabaseSource, card.Source)
	assert.Equal(t, "Finance", card.Category)
	assert.Equal(t, "positive", string(card.Insights.Trend))
	require.NotNil(t, card.Insights.CostSavings)
	assert.Equal(t, "$250M", *card.Insights.CostSavings)
	require.NotNil(t, card.Insights.JobCreationRatio)
	assert.Equal(t, 4.0, *card.Insights.JobCreationRatio)

	repo.AssertExpectations(t)
}

func TestListArticles_LimitParameter(t *testing.T) {
	tests := []struct {
		query string
		limit int
	}{
		{"?limit=5", 5},
		{"?limit=500", MaxArticleLimit},
		{"?limit=all", 0},
		{"?limit=ALL", 0},
		{"?limit=0", DefaultArticleLimit},
		{"?limit=-4", DefaultArticleLimit},
		{"?limit=ten", DefaultArticleLimit},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("List", mock.Anything, tt.limit).Return([]models.JobImpactRecord{}, nil)

			w := performRequest(setupTestRouter(repo, nil), http.MethodGet, "/api/articles"+tt.query)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
			repo.AssertExpectations(t)
		})
	}
}

func TestListArticles_StorageFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, DefaultArticleLimit).
		Return(nil, fmt.Errorf("%w: list: %w", repository.ErrStorageFailure, errors.New("dial tcp 10.0.0.3:3306: connection refused")))

	w := performRequest(setupTestRouter(repo, nil), http.MethodGet, "/api/articles")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.NotContains(t, w.Body.String(), "10.0.0.3")

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch articles from database", body["error"])
	assert.NotEmpty(t, body["request_id"])
	assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), body["request_id"])
}

func TestGetArticle(t *testing.T) {
	record := testRecord()
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "7").Return(&record, nil)

	w := performRequest(setupTestRouter(repo, nil), http.MethodGet, "/api/articles/7")

	require.Equal(t, http.StatusOK, w.Code)

	var article models.DisplayArticle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &article))
	assert.Equal(t, int64(7), article.ID)
	assert.Equal(t, "Reuters", article.Source)
	assert.Equal(t, "neutral", string(article.Insights.Trend))
	assert.Equal(t, "https://www.reuters.com/technology/banks", article.URL)
	assert.Equal(t, []string{"Bookkeeping"}, article.Insights.SkillsReplaced)
	assert.Equal(t, []string{"Audit", "Advisory"}, article.Insights.SkillsCreated)

	repo.AssertExpectations(t)
}

func TestGetArticle_ShortRoute(t *testing.T) {
	record := testRecord()
	repo := new(MockRepository)
	repo.On("GetByID", mock.Anything, "7").Return(&record, nil)

	w := performRequest(setupTestRouter(repo, nil), http.MethodGet, "/articles/7")

	assert.Equal(t, http.StatusOK, w.Code)
	repo.AssertExpectations(t)
}

func TestGetArticle_Errors(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		err       error
		status    int
		errorText string
	}{
		{
			name:      "invalid id",
			id:        "abc",
			err:       fmt.Errorf("%w: article id %q is not an integer", repository.ErrInvalidInput, "abc"),
			status:    http.StatusBadRequest,
			errorText: "Invalid article ID",
		},
		{
			name:      "missing record",
			id:        "999",
			err:       fmt.Errorf("%w: article 999", repository.ErrNotFound),
			status:    http.StatusNotFound,
			errorText: "Article not found",
		},
		{
			name:      "storage failure",
			id:        "3",
			err:       fmt.Errorf("%w: get article 3: %w", repository.ErrStorageFailure, errors.New("Error 1146: Table 'ai_jobs.jobs_tracker' doesn't exist")),
			status:    http.StatusInternalServerError,
			errorText: "Failed to fetch article from database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			repo.On("GetByID", mock.Anything, tt.id).Return(nil, tt.err)

			w := performRequest(setupTestRouter(repo, nil), http.MethodGet, "/api/articles/"+tt.id)

			assert.Equal(t, tt.status, w.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.errorText, body["error"])
			assert.NotContains(t, w.Body.String(), "jobs_tracker")
			repo.AssertExpectations(t)
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	repo := new(MockRepository)
	r := setupTestRouter(repo, nil)

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := performRequest(r, method, "/api/articles")
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
		assert.JSONEq(t, `{"error":"Method not allowed"}`, w.Body.String())
	}

	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUnknownRoute(t *testing.T) {
	w := performRequest(setupTestRouter(new(MockRepository), nil), http.MethodGet, "/api/unknown")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthCheck(t *testing.T) {
	healthy := func(ctx context.Context) error { return nil }
	w := performRequest(setupTestRouter(new(MockRepository), healthy), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"ai-job-dashboard","database":"ok"}`, w.Body.String())

	down := func(ctx context.Context) error { return errors.New("connection refused") }
	w = performRequest(setupTestRouter(new(MockRepository), down), http.MethodGet, "/health")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestGetOverview(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, 0).Return([]models.JobImpactRecord{testRecord()}, nil)

	w := performRequest(setupTestRouter(repo, nil), http.MethodGet, "/api/dashboard/overview")

	require.Equal(t, http.StatusOK, w.Code)

	var overview dashboard.Overview
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overview))
	assert.Equal(t, 1, overview.RecordCount)
	assert.Equal(t, 50000, overview.TotalJobsAtRisk)
	assert.Equal(t, 30000, overview.NetJobChange)
	assert.Equal(t, "$250M", overview.LargestFunding)
	assert.Equal(t, "50.0K", overview.Display.JobsAtRisk)

	repo.AssertExpectations(t)
}

func TestGetOverview_StorageFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, 0).Return(nil, repository.ErrStorageFailure)

	w := performRequest(setupTestRouter(repo, nil), http.MethodGet, "/api/dashboard/overview")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "request_id")
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 12, parseLimit("", 12))
	assert.Equal(t, 12, parseLimit("  ", 12))
	assert.Equal(t, 1, parseLimit("1", 12))
	assert.Equal(t, 100, parseLimit("100", 12))
	assert.Equal(t, 100, parseLimit("101", 12))
	assert.Equal(t, 0, parseLimit("all", 12))
	assert.Equal(t, 20, parseLimit("x", 20))
}
