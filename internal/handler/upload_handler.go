package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"food_order/internal/service"

	"github.com/gin-gonic/gin"
)

// UploadHandler accepts product images and serves them back
type UploadHandler struct {
	service    service.UploadService
	uploadsDir string
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(s service.UploadService, uploadsDir string) *UploadHandler {
	return &UploadHandler{service: s, uploadsDir: uploadsDir}
}

func (h *UploadHandler) UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required: " + err.Error()})
		return
	}

	imageURL, err := h.service.SaveImage(file)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFileFormat) || errors.Is(err, service.ErrFileSizeExceeded) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		slog.ErrorContext(c.Request.Context(), "image upload failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"imageUrl": imageURL})
}

// RegisterUploadRoutes registers POST /upload under rg and serves the uploads
// directory at /uploads on r
func (h *UploadHandler) RegisterUploadRoutes(r gin.IRoutes, rg *gin.RouterGroup) {
	rg.POST("/upload", h.UploadImage)
	r.Static("/uploads", h.uploadsDir)
}
