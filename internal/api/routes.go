package api

import (
	"net/http"
	"time"

	"research_hub_go_backend/internal/config"
	apperrors "research_hub_go_backend/internal/errors"
	"research_hub_go_backend/internal/models"
	"research_hub_go_backend/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const bibtexContentType = "application/x-bibtex; charset=utf-8"

// NewRouter builds the single engine the server runs: middleware, CORS
// policy and routes.
func NewRouter(cfg *config.Config, searcher services.PaperSearcher) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLoggerMiddleware())
	r.Use(cors.New(corsConfig(cfg)))

	SetupRoutes(r, searcher)
	return r
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type"},
		ExposeHeaders: []string{requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if cfg.AllowsAnyOrigin() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	return corsCfg
}

func SetupRoutes(r *gin.Engine, searcher services.PaperSearcher) {
	r.GET("/health", healthCheck)

	api := r.Group("/api")
	{
		api.GET("/search", searchHandler(searcher))
		api.GET("/search/bibtex", searchBibTeXHandler(searcher))
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "research-hub",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func searchHandler(searcher services.PaperSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		source := c.DefaultQuery("source", services.SourceArxiv)

		results, err := searcher.Search(c.Request.Context(), query, source)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		if results == nil {
			results = []models.PaperRecord{}
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
	}
}

func searchBibTeXHandler(searcher services.PaperSearcher) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("query")
		source := c.DefaultQuery("source", services.SourceArxiv)

		results, err := searcher.Search(c.Request.Context(), query, source)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		c.Data(http.StatusOK, bibtexContentType, []byte(services.ExportBibTeX(results)))
	}
}
