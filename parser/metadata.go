package parser

import (
	"regexp"
	"strings"

	"rozklad-api/models"
)

const (
	metadataWeekRows  = 5
	metadataScanRows  = 10
	weekTokenFirstCol = 3
	weekTokenLastCol  = 6
)

// тиждень як фраза "1 тиждень" / "2 тиждень" у будь-якій клітинці шапки
var weekPhraseRe = regexp.MustCompile(`(?i)(?:^|\s)([12])\s*тиждень`)

var (
	onlineRe   = regexp.MustCompile(`(?i)онлайн|online`)
	offlineRe  = regexp.MustCompile(`(?i)офлайн|оффлайн|offline`)
	semesterRe = regexp.MustCompile(`(?i)(\d+)\s*семестр\s*\d{4}\s*[-–]\s*\d{4}\s*н\.?\s*р\.?`)
)

// ExtractMetadata збирає метадані з перших рядків аркуша.
// Витяг best-effort: відсутність будь-якого поля не є помилкою.
func ExtractMetadata(rows [][]string) models.ScheduleMetadata {
	var meta models.ScheduleMetadata
	meta.CurrentWeek = extractCurrentWeek(rows)

	for i := 0; i < metadataScanRows && i < len(rows); i++ {
		text := strings.Join(rows[i], " ")
		if meta.DefaultFormat == "" {
			if onlineRe.MatchString(text) {
				meta.DefaultFormat = models.FormatOnline
			} else if offlineRe.MatchString(text) {
				meta.DefaultFormat = models.FormatOffline
			}
		}
		if meta.Semester == "" {
			if m := semesterRe.FindString(text); m != "" {
				meta.Semester = strings.TrimSpace(m)
			}
		}
	}

	return meta
}

// extractCurrentWeek шукає позначку поточного тижня: голий токен у службових
// колонках шапки або фразу "N тиждень" у будь-якій клітинці. Перший збіг виграє.
func extractCurrentWeek(rows [][]string) int {
	for i := 0; i < metadataWeekRows && i < len(rows); i++ {
		for j, cell := range rows[i] {
			if m := weekPhraseRe.FindStringSubmatch(cell); m != nil {
				if m[1] == "1" {
					return 1
				}
				return 2
			}
			if j >= weekTokenFirstCol && j <= weekTokenLastCol {
				if week := weekFromToken(cell); week != 0 {
					return week
				}
			}
		}
	}
	return 0
}

// weekFromToken розпізнає номер тижня: цифра, римська цифра чи слово
func weekFromToken(cell string) int {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "1", "i", "і", "перший", "first":
		return 1
	case "2", "ii", "іі", "другий", "second":
		return 2
	}
	return 0
}
