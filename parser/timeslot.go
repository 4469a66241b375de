package parser

import (
	"regexp"
	"strings"
)

// TimeRange — часові межі заняття у вигляді HH:MM
type TimeRange struct {
	Start string
	End   string
}

// діапазон виду "9:00-10:30" чи "9:00–10:30", можливо з номером пари "1) "
var timeRangeRe = regexp.MustCompile(`^(?:\d{1,2}\s*[).]\s*)?(\d{1,2}):(\d{2})\s*[-–]\s*(\d{1,2}):(\d{2})$`)

var singleTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeRange розбирає часовий діапазон з клітинки.
// Повертає nil, якщо клітинка не є діапазоном часу.
func ParseTimeRange(cell string) *TimeRange {
	m := timeRangeRe.FindStringSubmatch(strings.TrimSpace(cell))
	if m == nil {
		return nil
	}
	return &TimeRange{
		Start: padTime(m[1], m[2]),
		End:   padTime(m[3], m[4]),
	}
}

// NormalizeTime зводить час H:MM чи HH:MM до HH:MM.
// Нестрогі форми відхиляються.
func NormalizeTime(cell string) (string, bool) {
	m := singleTimeRe.FindStringSubmatch(strings.TrimSpace(cell))
	if m == nil {
		return "", false
	}
	return padTime(m[1], m[2]), true
}

func padTime(hours, minutes string) string {
	if len(hours) == 1 {
		hours = "0" + hours
	}
	return hours + ":" + minutes
}
