package handlers

import (
	"bytes"
	"net/http"
	"time"

	"rozklad-api/exporter"
	"rozklad-api/models"
	"rozklad-api/parser"
	"rozklad-api/services"

	"github.com/gin-gonic/gin"
)

// Шлях до поточного розібраного розкладу в цільовому бакеті
const currentScheduleObject = "schedule/current.json"

type ScheduleHandler struct {
	minioService *services.MinIOService
	cacheService *services.CacheService
}

func NewScheduleHandler(minio *services.MinIOService, cache *services.CacheService) *ScheduleHandler {
	return &ScheduleHandler{
		minioService: minio,
		cacheService: cache,
	}
}

// loadCurrent читає поточний розклад: спершу кеш, далі сховище
func (h *ScheduleHandler) loadCurrent(c *gin.Context) (models.ParseResult, bool) {
	if cached, found := h.cacheService.GetParseResult(services.CacheKeySchedule); found {
		return cached, true
	}

	result, err := h.minioService.LoadParseResult(c.Request.Context(), currentScheduleObject)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "schedule not found",
			Message: err.Error(),
		})
		return models.ParseResult{}, false
	}

	h.cacheService.Set(services.CacheKeySchedule, result, 0)
	return result, true
}

// GetSchedule повертає відфільтрований і відсортований розклад
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	var filter models.LessonFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid filter parameters",
			Message: err.Error(),
		})
		return
	}

	result, ok := h.loadCurrent(c)
	if !ok {
		return
	}

	lessons := services.SortLessons(services.FilterLessons(result.Lessons, filter))

	c.JSON(http.StatusOK, gin.H{
		"lessons":  lessons,
		"metadata": result.Metadata,
		"errors":   result.Errors,
	})
}

// GetFilterOptions повертає унікальні значення для фільтрів
func (h *ScheduleHandler) GetFilterOptions(c *gin.Context) {
	result, ok := h.loadCurrent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.ExtractFilterOptions(result.Lessons))
}

// GetStatistics повертає зведені показники розкладу
func (h *ScheduleHandler) GetStatistics(c *gin.Context) {
	result, ok := h.loadCurrent(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, services.CalculateStatistics(result.Lessons))
}

// ExportCSV віддає розклад у плоскому CSV
func (h *ScheduleHandler) ExportCSV(c *gin.Context) {
	result, ok := h.loadCurrent(c)
	if !ok {
		return
	}

	text := parser.SerializeLessons(services.SortLessons(result.Lessons), true)

	c.Header("Content-Disposition", `attachment; filename="rozklad.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(text))
}

// ExportICS віддає розклад як iCalendar на поточний тиждень
func (h *ScheduleHandler) ExportICS(c *gin.Context) {
	result, ok := h.loadCurrent(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	weekStart := exporter.WeekStart(time.Now())
	if err := exporter.GenerateICS(result.Lessons, weekStart, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to generate calendar",
			Message: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="rozklad.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

// InvalidateCache скидає кеш
func (h *ScheduleHandler) InvalidateCache(c *gin.Context) {
	h.cacheService.Flush()
	c.JSON(http.StatusOK, gin.H{
		"message": "cache invalidated successfully",
	})
}
