package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort       string
	MinIOEndpoint    string
	MinIOAccessKey   string
	MinIOSecretKey   string
	MinIOUseSSL      bool
	SourceBucket     string // Бакет для оригінальних файлів розкладу
	TargetBucket     string // Бакет для розібраних JSON
	CacheTTL         time.Duration
	PresignedURLTTL  time.Duration
	Environment      string
	FetchTimeout     time.Duration
	FetchMaxAttempts int
	FetchBaseDelay   time.Duration
	FetchMaxDelay    time.Duration
}

// значення з необов'язкового YAML-файла; середовище має пріоритет
type fileConfig struct {
	ServerPort     string `yaml:"server_port"`
	MinIOEndpoint  string `yaml:"minio_endpoint"`
	MinIOAccessKey string `yaml:"minio_access_key"`
	MinIOSecretKey string `yaml:"minio_secret_key"`
	SourceBucket   string `yaml:"source_bucket"`
	TargetBucket   string `yaml:"target_bucket"`
	Environment    string `yaml:"environment"`
}

func Load() *Config {
	file := loadFile(getEnv("CONFIG_FILE", "config.yaml"))

	cacheMinutes, _ := strconv.Atoi(getEnv("CACHE_TTL_MINUTES", "10"))
	presignedMinutes, _ := strconv.Atoi(getEnv("PRESIGNED_URL_TTL_MINUTES", "15"))
	useSSL, _ := strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "15"))
	fetchAttempts, _ := strconv.Atoi(getEnv("FETCH_MAX_ATTEMPTS", "3"))
	fetchBaseDelay, _ := strconv.Atoi(getEnv("FETCH_BASE_DELAY_MS", "500"))
	fetchMaxDelay, _ := strconv.Atoi(getEnv("FETCH_MAX_DELAY_MS", "5000"))

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", or(file.ServerPort, "8080")),
		MinIOEndpoint:    getEnv("MINIO_ENDPOINT", or(file.MinIOEndpoint, "minio:9000")),
		MinIOAccessKey:   getEnv("MINIO_ACCESS_KEY", or(file.MinIOAccessKey, "minioadmin")),
		MinIOSecretKey:   getEnv("MINIO_SECRET_KEY", or(file.MinIOSecretKey, "minioadmin")),
		MinIOUseSSL:      useSSL,
		SourceBucket:     getEnv("SOURCE_BUCKET", or(file.SourceBucket, "schedule-uploads")),
		TargetBucket:     getEnv("TARGET_BUCKET", or(file.TargetBucket, "schedule-parsed")),
		CacheTTL:         time.Duration(cacheMinutes) * time.Minute,
		PresignedURLTTL:  time.Duration(presignedMinutes) * time.Minute,
		Environment:      getEnv("ENVIRONMENT", or(file.Environment, "development")),
		FetchTimeout:     time.Duration(fetchTimeout) * time.Second,
		FetchMaxAttempts: fetchAttempts,
		FetchBaseDelay:   time.Duration(fetchBaseDelay) * time.Millisecond,
		FetchMaxDelay:    time.Duration(fetchMaxDelay) * time.Millisecond,
	}
}

func loadFile(path string) fileConfig {
	var cfg fileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Printf("Не вдалося прочитати %s: %v", path, err)
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func or(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
