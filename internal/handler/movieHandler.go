package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"
	"moviehub/internal/shared"

	"github.com/gin-gonic/gin"
)

type MovieHandler struct {
	svc service.MovieService
}

func NewMovieHandler(svc service.MovieService) *MovieHandler {
	return &MovieHandler{svc: svc}
}

// List handles GET /api/watchlist?page=1&page_size=20
func (h *MovieHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	page, pageSize := parsePagination(c)

	list, total, err := h.svc.GetAll(ctx, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromModelToMovieResponse(m))
	}

	c.JSON(http.StatusOK, gin.H{
		"data": resp,
		"pagination": gin.H{
			"page":        page,
			"page_size":   pageSize,
			"total":       total,
			"total_pages": (total + int64(pageSize) - 1) / int64(pageSize),
		},
	})
}

// Get handles GET /api/watchlist/:movie_id
func (h *MovieHandler) Get(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	m, err := h.svc.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Movie not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToMovieResponse(*m))
}

// Create handles POST /api/watchlist (admin only)
func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.MovieRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.BindingErrors(err)})
		return
	}

	model, err := in.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": shared.ValidationErrors{"release_date": err.Error()}})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Create(ctx, &model); err != nil {
		respondError(c, err)
		return
	}

	// fetch with the platform attached so the response carries its name
	created, err := h.svc.GetByID(ctx, model.ID)
	if err != nil {
		c.JSON(http.StatusCreated, dto.FromModelToMovieResponse(model))
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToMovieResponse(*created))
}

// Update handles PUT /api/watchlist/:movie_id (admin only)
func (h *MovieHandler) Update(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	var in dto.MovieRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.BindingErrors(err)})
		return
	}

	model, err := in.ToModel()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": shared.ValidationErrors{"release_date": err.Error()}})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Update(ctx, id, &model); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToMovieResponse(*updated))
}

// Delete handles DELETE /api/watchlist/:movie_id (admin only)
func (h *MovieHandler) Delete(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Search handles GET /api/watchlist/search?search=<text>&ordering=average_rating
func (h *MovieHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("search"))
	ordering := strings.TrimSpace(c.Query("ordering"))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.Search(ctx, query, ordering)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, dto.FromModelToMovieResponse(m))
	}
	c.JSON(http.StatusOK, gin.H{
		"data":  resp,
		"total": len(resp),
	})
}

func movieIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return 0, false
	}
	return id, true
}

func parsePagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
