package handler

import (
	"errors"
	"net/http"

	"moviehub/internal/repository"
	"moviehub/internal/service"
	"moviehub/internal/shared"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError converts service/repository failures into the response
// envelope. Validation failures carry the full field→message map; anything
// unrecognized becomes an opaque 500 so internals never leak.
func respondError(c *gin.Context, err error) {
	var verr shared.ValidationErrors
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"errors": verr})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, repository.ErrAlreadyReviewed):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotReviewOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
