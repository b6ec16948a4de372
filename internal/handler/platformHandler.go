package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"moviehub/internal/dto"
	"moviehub/internal/service"

	"github.com/gin-gonic/gin"
)

type PlatformHandler struct {
	svc service.PlatformService
}

func NewPlatformHandler(svc service.PlatformService) *PlatformHandler {
	return &PlatformHandler{svc: svc}
}

// List handles GET /api/streaming-platforms
func (h *PlatformHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.PlatformResponse, 0, len(list))
	for _, p := range list {
		resp = append(resp, dto.FromModelToPlatformResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/streaming-platforms/:platform_id
func (h *PlatformHandler) Get(c *gin.Context) {
	id, ok := platformIDParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	p, err := h.svc.GetByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Streaming platform not found"})
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToPlatformResponse(*p))
}

// Create handles POST /api/streaming-platforms (admin only)
func (h *PlatformHandler) Create(c *gin.Context) {
	var in dto.PlatformRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.BindingErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	model := in.ToModel()
	if err := h.svc.Create(ctx, &model); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToPlatformResponse(model))
}

// Update handles PUT /api/streaming-platforms/:platform_id (admin only)
func (h *PlatformHandler) Update(c *gin.Context) {
	id, ok := platformIDParam(c)
	if !ok {
		return
	}

	var in dto.PlatformRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": dto.BindingErrors(err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	model := in.ToModel()
	if err := h.svc.Update(ctx, id, &model); err != nil {
		respondError(c, err)
		return
	}

	updated, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToPlatformResponse(*updated))
}

// Delete handles DELETE /api/streaming-platforms/:platform_id (admin only)
func (h *PlatformHandler) Delete(c *gin.Context) {
	id, ok := platformIDParam(c)
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

func platformIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("platform_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid platform ID"})
		return 0, false
	}
	return id, true
}
