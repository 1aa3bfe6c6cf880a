package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Aditi2k5/ai-job-dashboard/internal/middleware"
	"github.com/Aditi2k5/ai-job-dashboard/internal/repository"

	"github.com/gin-gonic/gin"
)

// respondError maps repository errors to HTTP responses. Storage details are
// logged with the request id and never sent to the client.
func respondError(c *gin.Context, err error, message string) {
	requestID := middleware.GetRequestID(c)

	switch {
	case errors.Is(err, repository.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid article ID",
		})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Article not found",
		})
	default:
		log.Printf("request %s: %s: %v", requestID, message, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      message,
			"request_id": requestID,
		})
	}
}

// MethodNotAllowed answers requests using a method a route does not serve
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{
		"error": "Method not allowed",
	})
}

// NotFound answers requests for unknown routes
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "Route not found",
	})
}
