package router

import (
	"context"
	"os"
	"strconv"

	"github.com/Aditi2k5/ai-job-dashboard/internal/articles"
	"github.com/Aditi2k5/ai-job-dashboard/internal/dashboard"
	"github.com/Aditi2k5/ai-job-dashboard/internal/handlers"
	"github.com/Aditi2k5/ai-job-dashboard/internal/middleware"
	"github.com/Aditi2k5/ai-job-dashboard/internal/repository"

	"github.com/gin-gonic/gin"
)

// Config holds HTTP server configuration
type Config struct {
	Port                string
	GinMode             string
	ArticleDefaultLimit int
	DashboardTopN       int
}

// LoadConfig loads server configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Port:                getEnv("PORT", "8080"),
		GinMode:             getEnv("GIN_MODE", gin.DebugMode),
		ArticleDefaultLimit: getEnvInt("ARTICLES_DEFAULT_LIMIT", handlers.DefaultArticleLimit),
		DashboardTopN:       getEnvInt("DASHBOARD_TOP_N", dashboard.DefaultTopN),
	}
}

// Addr returns the listen address for the configured port
func (c *Config) Addr() string {
	return ":" + c.Port
}

// Dependencies are the collaborators the routes are served from
type Dependencies struct {
	Repository  repository.JobImpactRepository
	Transformer *articles.Transformer
	Ping        func(ctx context.Context) error
}

// New builds the gin engine with every dashboard route registered
func New(config *Config, deps Dependencies) *gin.Engine {
	if config.GinMode == gin.ReleaseMode || config.GinMode == gin.TestMode {
		gin.SetMode(config.GinMode)
	}

	transformer := deps.Transformer
	if transformer == nil {
		transformer = articles.NewTransformer()
	}
	ping := deps.Ping
	if ping == nil {
		ping = func(context.Context) error { return nil }
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())

	r.HandleMethodNotAllowed = true
	r.NoMethod(handlers.MethodNotAllowed)
	r.NoRoute(handlers.NotFound)

	// Initialize handlers
	articlesHandler := handlers.NewArticlesHandler(deps.Repository, transformer, config.ArticleDefaultLimit)
	dashboardHandler := handlers.NewDashboardHandler(dashboard.NewService(deps.Repository, config.DashboardTopN))
	healthHandler := handlers.NewHealthHandler(ping)
	docsHandler := handlers.NewDocsHandler()

	// Health check
	r.GET("/health", healthHandler.HealthCheck)

	// About page and Markdown documentation
	r.GET("/about", docsHandler.ServeAbout)
	r.GET("/doc/:doc", docsHandler.ServeMarkdownAsHTML)

	// Short article routes used by the dashboard frontend
	r.GET("/articles", articlesHandler.ListArticles)
	r.GET("/articles/:id", articlesHandler.GetArticle)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/articles", articlesHandler.ListArticles)
		api.GET("/articles/:id", articlesHandler.GetArticle)
		api.GET("/dashboard/overview", dashboardHandler.GetOverview)
	}

	return r
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

