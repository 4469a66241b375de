package parser

import (
	"testing"

	"rozklad-api/models"
)

func TestExtractMetadataFromSheetHeader(t *testing.T) {
	rows := [][]string{
		{"2 семестр 2024-2025 н.р."},
		{"1 тиждень онлайн"},
		{"Час", "КН-21", "", "", "КН-22", "", ""},
	}

	meta := ExtractMetadata(rows)

	if meta.CurrentWeek != 1 {
		t.Errorf("CurrentWeek = %d, want 1", meta.CurrentWeek)
	}
	if meta.DefaultFormat != models.FormatOnline {
		t.Errorf("DefaultFormat = %q, want %q", meta.DefaultFormat, models.FormatOnline)
	}
	if meta.Semester != "2 семестр 2024-2025 н.р." {
		t.Errorf("Semester = %q", meta.Semester)
	}
}

func TestExtractMetadataWeekToken(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{"1", 1},
		{"І", 1}, // кирилична римська
		{"перший", 1},
		{"2", 2},
		{"II", 2},
		{"другий", 2},
	}

	for _, tt := range tests {
		rows := [][]string{
			{"", "", "", "", tt.token, "", ""},
		}
		meta := ExtractMetadata(rows)
		if meta.CurrentWeek != tt.want {
			t.Errorf("token %q: CurrentWeek = %d, want %d", tt.token, meta.CurrentWeek, tt.want)
		}
	}
}

func TestExtractMetadataWeekTokenOutsideColumns(t *testing.T) {
	// голий токен поза службовими колонками не є позначкою тижня
	rows := [][]string{
		{"1", "", "", "", "", "", ""},
	}
	if meta := ExtractMetadata(rows); meta.CurrentWeek != 0 {
		t.Errorf("CurrentWeek = %d, want 0", meta.CurrentWeek)
	}
}

func TestExtractMetadataOffline(t *testing.T) {
	rows := [][]string{
		{"розклад занять, офлайн"},
	}
	meta := ExtractMetadata(rows)
	if meta.DefaultFormat != models.FormatOffline {
		t.Errorf("DefaultFormat = %q, want %q", meta.DefaultFormat, models.FormatOffline)
	}
}

func TestExtractMetadataEmpty(t *testing.T) {
	meta := ExtractMetadata([][]string{{"Час", "КН-21"}})
	if meta.CurrentWeek != 0 || meta.DefaultFormat != "" || meta.Semester != "" {
		t.Errorf("expected empty metadata, got %+v", meta)
	}
}
