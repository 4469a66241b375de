package main

import (
	"log"
	"time"

	"rozklad-api/config"
	"rozklad-api/handlers"
	"rozklad-api/middleware"
	"rozklad-api/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	log.Println("Start service")
	// .env необов'язковий, у продакшні значення приходять із середовища
	_ = godotenv.Load()

	cfg := config.Load()

	log.Println("init services")
	minioService, err := services.NewMinIOService(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	cacheService := services.NewCacheService(cfg.CacheTTL, 2*cfg.CacheTTL)
	sheetsService := services.NewSheetsService(cfg.FetchTimeout, cfg.FetchMaxAttempts, cfg.FetchBaseDelay, cfg.FetchMaxDelay)

	log.Println("init handlers")
	scheduleHandler := handlers.NewScheduleHandler(minioService, cacheService)
	fileHandler := handlers.NewFileHandler(minioService, cacheService)
	uploadHandler := handlers.NewUploadHandler(minioService, sheetsService, cacheService)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Println("init router")
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(gin.Recovery())

	api := router.Group("/api/v1")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now(),
			})
		})

		// Поточний розклад
		api.GET("/schedule", scheduleHandler.GetSchedule)
		api.GET("/schedule/options", scheduleHandler.GetFilterOptions)
		api.GET("/schedule/stats", scheduleHandler.GetStatistics)
		api.GET("/schedule/export/csv", scheduleHandler.ExportCSV)
		api.GET("/schedule/export/ics", scheduleHandler.ExportICS)

		// Завантажені файли
		api.GET("/files", fileHandler.ListFiles)
		api.GET("/files/:filename/download", fileHandler.GetPresignedDownloadURL)

		// Імпорт розкладу
		api.POST("/upload", uploadHandler.Upload)
		api.POST("/import/sheets", uploadHandler.ImportSheets)

		// Кеш
		api.POST("/cache/invalidate", scheduleHandler.InvalidateCache)
	}

	log.Printf("Starting server on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
