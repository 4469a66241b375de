// Package parser перетворює слабоструктуровані аркуші розкладу
// (CSV-текст або вже розбиті на клітинки рядки таблиці) на нормалізовану
// колекцію занять. Розбір завжди завершується звичайним результатом:
// помилки збираються у ParseResult.Errors, panic чи error тут не буває.
package parser

import (
	"unicode/utf8"

	"rozklad-api/models"
)

// Parse розбирає сирий текст таблиці (кома — роздільник, лапки за
// правилами RFC 4180) у колекцію занять.
func Parse(raw string) models.ParseResult {
	if raw == "" || !utf8.ValidString(raw) {
		return failedResult("Invalid input")
	}

	lines := SplitIntoRows(raw)
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, ParseLine(line))
	}

	return ParseRows(rows)
}

// ParseRows проганяє вже розбиті рядки через той самий конвеєр.
// Використовується для XLSX/XLS, де клітинки приходять готовою матрицею.
func ParseRows(rows [][]string) models.ParseResult {
	if len(rows) > 0 {
		if header := detectFlatHeader(rows[0]); header != nil {
			meta := models.ScheduleMetadata{}
			return models.ParseResult{
				Lessons:  parseFlat(rows, header, meta),
				Errors:   []models.ParseError{},
				Metadata: meta,
			}
		}
	}

	if len(rows) < 3 {
		return failedResult("Not enough data rows")
	}

	meta := ExtractMetadata(rows)
	lessons := newVerticalParser(meta).parse(rows)

	return models.ParseResult{
		Lessons:  lessons,
		Errors:   []models.ParseError{},
		Metadata: meta,
	}
}

func failedResult(message string) models.ParseResult {
	return models.ParseResult{
		Lessons: []models.Lesson{},
		Errors:  []models.ParseError{{Row: 0, Message: message}},
	}
}
