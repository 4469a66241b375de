package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"rozklad-api/config"
	"rozklad-api/models"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// розширення, які вважаються файлами розкладу при переліку сховища
var scheduleFileExtensions = []string{".xlsx", ".xls", ".csv"}

type MinIOService struct {
	client       *minio.Client
	sourceBucket string
	targetBucket string
	urlTTL       time.Duration
}

func NewMinIOService(cfg *config.Config) (*MinIOService, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOService{
		client:       client,
		sourceBucket: cfg.SourceBucket,
		targetBucket: cfg.TargetBucket,
		urlTTL:       cfg.PresignedURLTTL,
	}, nil
}

// ListScheduleFiles повертає список вихідних файлів розкладу у сховищі
func (s *MinIOService) ListScheduleFiles(ctx context.Context, prefix string) ([]models.ScheduleFile, error) {
	var files []models.ScheduleFile

	opts := minio.ListObjectsOptions{
		Prefix:       prefix,
		Recursive:    true,
		WithVersions: false,
	}

	for object := range s.client.ListObjects(ctx, s.sourceBucket, opts) {
		if object.Err != nil {
			return nil, object.Err
		}

		if strings.HasSuffix(object.Key, "/") {
			continue
		}
		if !isScheduleFile(object.Key) {
			continue
		}

		files = append(files, models.ScheduleFile{
			Name:         extractFileName(object.Key),
			Path:         object.Key,
			Size:         object.Size,
			LastModified: object.LastModified,
			ETag:         object.ETag,
			Version:      object.VersionID,
		})
	}

	return files, nil
}

// GetPresignedURL генерує тимчасове посилання на скачування оригіналу
func (s *MinIOService) GetPresignedURL(ctx context.Context, objectPath string) (*models.PresignedURLResponse, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=\"%s\"", extractFileName(objectPath)))

	presignedURL, err := s.client.PresignedGetObject(ctx, s.sourceBucket, objectPath, s.urlTTL, reqParams)
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned url: %w", err)
	}

	return &models.PresignedURLResponse{
		URL:       presignedURL.String(),
		ExpiresAt: time.Now().Add(s.urlTTL),
		FileName:  extractFileName(objectPath),
	}, nil
}

// SourceObjectExists перевіряє наявність оригіналу у сховищі
func (s *MinIOService) SourceObjectExists(ctx context.Context, objectPath string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.sourceBucket, objectPath, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// UploadSource зберігає оригінальний файл розкладу
func (s *MinIOService) UploadSource(ctx context.Context, objectPath string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.sourceBucket, objectPath, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// SaveParseResult зберігає результат розбору як JSON у цільовому бакеті
func (s *MinIOService) SaveParseResult(ctx context.Context, objectPath string, result models.ParseResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal parse result: %w", err)
	}

	_, err = s.client.PutObject(ctx, s.targetBucket, objectPath, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload parse result: %w", err)
	}
	return nil
}

// LoadParseResult читає збережений результат розбору з цільового бакета
func (s *MinIOService) LoadParseResult(ctx context.Context, objectPath string) (models.ParseResult, error) {
	var result models.ParseResult

	object, err := s.client.GetObject(ctx, s.targetBucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return result, fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return result, fmt.Errorf("failed to read object: %w", err)
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal parse result: %w", err)
	}
	return result, nil
}

// Вспоміжні функції
func extractFileName(path string) string {
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}

func isScheduleFile(key string) bool {
	lower := strings.ToLower(key)
	for _, ext := range scheduleFileExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
