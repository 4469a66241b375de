package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestSheetsService(baseURL string) *SheetsService {
	s := NewSheetsService(time.Second, 3, time.Millisecond, 4*time.Millisecond)
	s.baseURL = baseURL
	return s
}

func TestFetchCSVSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("День,Початок\n"))
	}))
	defer server.Close()

	s := newTestSheetsService(server.URL)
	result, err := s.FetchCSV(context.Background(), "abc123", "")
	if err != nil {
		t.Fatalf("FetchCSV failed: %v", err)
	}
	if result.Data != "День,Початок\n" {
		t.Errorf("Data = %q", result.Data)
	}
	if result.FetchedAt.IsZero() {
		t.Errorf("FetchedAt is zero")
	}
}

func TestFetchCSVEmptyID(t *testing.T) {
	s := newTestSheetsService("http://unused")
	_, err := s.FetchCSV(context.Background(), "", "")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Type != FetchErrConfig {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestFetchCSVHTTPErrorRetries(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s := newTestSheetsService(server.URL)
	_, err := s.FetchCSV(context.Background(), "abc123", "")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Type != FetchErrHTTP {
		t.Fatalf("expected http error, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", fetchErr.StatusCode)
	}
	if requests != 3 {
		t.Errorf("expected 3 attempts, got %d", requests)
	}
}

func TestFetchCSVNetworkError(t *testing.T) {
	// закритий сервер: з'єднання відмовлено
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	s := newTestSheetsService(server.URL)
	_, err := s.FetchCSV(context.Background(), "abc123", "")

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.Type != FetchErrNetwork {
		t.Errorf("expected network error, got %v", err)
	}
}
