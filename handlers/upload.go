package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"path"

	"rozklad-api/models"
	"rozklad-api/parser"
	"rozklad-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	minioService  *services.MinIOService
	parserService *services.ParserService
	sheetsService *services.SheetsService
	cacheService  *services.CacheService
}

func NewUploadHandler(minio *services.MinIOService, sheets *services.SheetsService, cache *services.CacheService) *UploadHandler {
	return &UploadHandler{
		minioService:  minio,
		parserService: services.NewParserService(),
		sheetsService: sheets,
		cacheService:  cache,
	}
}

// Upload приймає файл розкладу, розбирає його та зберігає
// оригінал і результат розбору у сховищі
func (h *UploadHandler) Upload(c *gin.Context) {
	log.Println("UploadHandler - Upload")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "file is required",
			Message: err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to open uploaded file",
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to read uploaded file",
			Message: err.Error(),
		})
		return
	}

	result, err := h.parserService.ParseUpload(fileHeader.Filename, bytes.NewReader(data))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse file",
			Message: err.Error(),
		})
		return
	}

	// uuid-префікс, щоб повторні завантаження одного імені не затирались
	sourcePath := fmt.Sprintf("uploads/%s_%s", uuid.New().String(), path.Base(fileHeader.Filename))
	h.storeAndRespond(c, fileHeader.Filename, sourcePath, data, contentTypeFor(fileHeader.Filename), result)
}

// ImportSheets тягне публічний CSV-експорт Google-таблиці та розбирає його
func (h *UploadHandler) ImportSheets(c *gin.Context) {
	log.Println("UploadHandler - ImportSheets")

	var req models.ImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	fetched, err := h.sheetsService.FetchCSV(c.Request.Context(), req.SpreadsheetID, req.GID)
	if err != nil {
		c.JSON(fetchStatusCode(err), models.ErrorResponse{
			Error:   "failed to fetch spreadsheet",
			Message: err.Error(),
		})
		return
	}

	result := parser.Parse(fetched.Data)

	fileName := fmt.Sprintf("%s.csv", req.SpreadsheetID)
	sourcePath := fmt.Sprintf("imports/%s_%s", uuid.New().String(), fileName)
	h.storeAndRespond(c, fileName, sourcePath, []byte(fetched.Data), "text/csv", result)
}

func (h *UploadHandler) storeAndRespond(c *gin.Context, fileName, sourcePath string, data []byte, contentType string, result models.ParseResult) {
	// структурний збій: жодного заняття, лише діагностика
	if len(result.Lessons) == 0 && len(result.Errors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
			Error:   "schedule could not be parsed",
			Message: result.Errors[0].Message,
		})
		return
	}

	ctx := c.Request.Context()

	if err := h.minioService.UploadSource(ctx, sourcePath, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store original file",
			Message: err.Error(),
		})
		return
	}

	if err := h.minioService.SaveParseResult(ctx, currentScheduleObject, result); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to store parse result",
			Message: err.Error(),
		})
		return
	}

	h.cacheService.Set(services.CacheKeySchedule, result, 0)
	h.cacheService.Delete(filesCacheKey)

	log.Printf("Файл оброблено: %s -> %s (занять: %d)", fileName, currentScheduleObject, len(result.Lessons))

	c.JSON(http.StatusOK, models.UploadResponse{
		FileName:    fileName,
		SourceFile:  sourcePath,
		TargetFile:  currentScheduleObject,
		LessonCount: len(result.Lessons),
		Errors:      result.Errors,
	})
}

// fetchStatusCode відображає тип помилки отримання на HTTP-статус
func fetchStatusCode(err error) int {
	var fetchErr *services.FetchError
	if !errors.As(err, &fetchErr) {
		return http.StatusInternalServerError
	}
	switch fetchErr.Type {
	case services.FetchErrConfig:
		return http.StatusBadRequest
	case services.FetchErrTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func contentTypeFor(fileName string) string {
	switch path.Ext(fileName) {
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".xls":
		return "application/vnd.ms-excel"
	default:
		return "text/csv"
	}
}
