package handlers

import (
	"net/http"

	"rozklad-api/models"
	"rozklad-api/services"

	"github.com/gin-gonic/gin"
)

const filesCacheKey = "files:uploads"

type FileHandler struct {
	minioService *services.MinIOService
	cacheService *services.CacheService
}

func NewFileHandler(minio *services.MinIOService, cache *services.CacheService) *FileHandler {
	return &FileHandler{
		minioService: minio,
		cacheService: cache,
	}
}

// ListFiles повертає список завантажених файлів розкладу
func (h *FileHandler) ListFiles(c *gin.Context) {
	if cached, found := h.cacheService.Get(filesCacheKey); found {
		c.JSON(http.StatusOK, gin.H{
			"data":   cached,
			"cached": true,
		})
		return
	}

	files, err := h.minioService.ListScheduleFiles(c.Request.Context(), "")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list schedule files",
			Message: err.Error(),
		})
		return
	}

	h.cacheService.Set(filesCacheKey, files, 0)

	c.JSON(http.StatusOK, gin.H{
		"data":   files,
		"cached": false,
	})
}

// GetPresignedDownloadURL повертає тимчасове посилання на оригінал
func (h *FileHandler) GetPresignedDownloadURL(c *gin.Context) {
	fileName := c.Param("filename")
	if fileName == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "filename parameter is required",
		})
		return
	}

	objectPath := "uploads/" + fileName

	exists, err := h.minioService.SourceObjectExists(c.Request.Context(), objectPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to check file existence",
			Message: err.Error(),
		})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "file not found",
		})
		return
	}

	urlResponse, err := h.minioService.GetPresignedURL(c.Request.Context(), objectPath)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate download url",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, urlResponse)
}
