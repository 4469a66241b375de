package models

import "time"

// ScheduleFile — завантажений файл розкладу у сховищі
type ScheduleFile struct {
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
	ETag         string    `json:"etag"`
	Version      string    `json:"version,omitempty"`
}

type PresignedURLResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
	FileName  string    `json:"fileName"`
}

// UploadResponse — підсумок обробки завантаженого файлу
type UploadResponse struct {
	FileName    string       `json:"fileName"`
	SourceFile  string       `json:"sourceFile"`
	TargetFile  string       `json:"targetFile"`
	LessonCount int          `json:"lessonCount"`
	Errors      []ParseError `json:"errors,omitempty"`
}

// ImportRequest — запит на імпорт публічної Google-таблиці
type ImportRequest struct {
	SpreadsheetID string `json:"spreadsheetId" binding:"required"`
	GID           string `json:"gid"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
