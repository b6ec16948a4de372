package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	reviewService service.ReviewService
}

func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// Create handles POST /api/watchlist/:movie_id/reviews-create (authenticated)
func (h *ReviewHandler) Create(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.BindingErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review, err := h.reviewService.CreateForMovie(ctx, userID.(string), movieID, req.ReviewText, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToReviewResponse(review))
}

// ListByMovie handles GET /api/watchlist/:movie_id/reviews?username=&page=&page_size=
func (h *ReviewHandler) ListByMovie(c *gin.Context) {
	movieID, ok := movieIDParam(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	username := strings.TrimSpace(c.Query("username"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviews, total, err := h.reviewService.GetByMovie(ctx, movieID, username, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, dto.NewPaginatedReviewResponse(resp, int(total), page, pageSize))
}

// ListByUser handles GET /api/reviews/user?username=<name>.
// 400 without a username; 404 when the user has no reviews on record.
func (h *ReviewHandler) ListByUser(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username parameter is required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	reviews, err := h.reviewService.GetByUsername(ctx, username)
	if err != nil {
		respondError(c, err)
		return
	}
	if len(reviews) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No reviews found for user '" + username + "'"})
		return
	}

	resp := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		resp = append(resp, *dto.FromModelToReviewResponse(&reviews[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/reviews/:review_id
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review, err := h.reviewService.GetByID(ctx, reviewID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToReviewResponse(review))
}

// Update handles PUT /api/reviews/:review_id (author only)
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req dto.CreateReviewDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.BindingErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	review, err := h.reviewService.Update(ctx, userID.(string), reviewID, req.ReviewText, req.Rating)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToReviewResponse(review))
}

// Delete handles DELETE /api/reviews/:review_id (author only)
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := reviewIDParam(c)
	if !ok {
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.reviewService.Delete(ctx, userID.(string), reviewID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func reviewIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
		return 0, false
	}
	return id, true
}
