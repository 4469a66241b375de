package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Типи помилок отримання таблиці
const (
	FetchErrConfig  = "config"
	FetchErrNetwork = "network"
	FetchErrHTTP    = "http"
	FetchErrTimeout = "timeout"
)

// FetchResult — успішно отриманий CSV-експорт таблиці
type FetchResult struct {
	Data      string
	FetchedAt time.Time
}

// FetchError — тегована помилка отримання; тип розрізняє помилки
// конфігурації, мережі, HTTP-статусу та таймауту
type FetchError struct {
	Type       string
	Message    string
	StatusCode int
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// SheetsService тягне публічний CSV-експорт Google-таблиці.
// Повтори з експоненційною паузою стосуються лише мережі:
// розбір детермінований, повторювати його нема сенсу.
type SheetsService struct {
	client      *http.Client
	baseURL     string
	maxAttempts int
	baseDelay   time.Duration
	maxDelay    time.Duration
}

const sheetsBaseURL = "https://docs.google.com"

func NewSheetsService(timeout time.Duration, maxAttempts int, baseDelay, maxDelay time.Duration) *SheetsService {
	return &SheetsService{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:     sheetsBaseURL,
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		maxDelay:    maxDelay,
	}
}

// FetchCSV завантажує CSV-експорт аркуша таблиці
func (s *SheetsService) FetchCSV(ctx context.Context, spreadsheetID, gid string) (*FetchResult, error) {
	if spreadsheetID == "" {
		return nil, &FetchError{Type: FetchErrConfig, Message: "spreadsheet id is empty"}
	}
	if gid == "" {
		gid = "0"
	}

	url := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s", s.baseURL, spreadsheetID, gid)

	var lastErr *FetchError
	delay := s.baseDelay

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		result, fetchErr := s.fetchOnce(ctx, url)
		if fetchErr == nil {
			return result, nil
		}
		lastErr = fetchErr
		log.Printf("Спроба %d/%d не вдалась: %v", attempt, s.maxAttempts, fetchErr)

		if attempt == s.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, &FetchError{Type: FetchErrTimeout, Message: ctx.Err().Error()}
		case <-time.After(delay):
		}
		delay *= 2
		if delay > s.maxDelay {
			delay = s.maxDelay
		}
	}

	return nil, lastErr
}

func (s *SheetsService) fetchOnce(ctx context.Context, url string) (*FetchResult, *FetchError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Type: FetchErrConfig, Message: err.Error()}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeoutError(err) {
			return nil, &FetchError{Type: FetchErrTimeout, Message: err.Error()}
		}
		return nil, &FetchError{Type: FetchErrNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{
			Type:       FetchErrHTTP,
			Message:    fmt.Sprintf("unexpected status code %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Type: FetchErrNetwork, Message: err.Error()}
	}

	return &FetchResult{
		Data:      string(data),
		FetchedAt: time.Now(),
	}, nil
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
