package parser

import (
	"strings"

	"rozklad-api/models"
)

// апострофи у регіональних варіантах написання ("П'ятниця", "П’ятниця")
var apostropheReplacer = strings.NewReplacer("'", "", "’", "", "ʼ", "", "`", "")

var dayByKey = buildDayIndex()

func buildDayIndex() map[string]string {
	m := make(map[string]string, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		m[dayKey(day)] = day
	}
	return m
}

func dayKey(s string) string {
	return apostropheReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// MatchDay зводить назву дня до канонічної форми.
// Регістр, зайві пробіли та варіант апострофа не впливають на результат.
func MatchDay(s string) (string, bool) {
	day, ok := dayByKey[dayKey(s)]
	return day, ok
}

// DayIndex повертає порядковий номер дня у тижні, -1 для невідомого
func DayIndex(day string) int {
	for i, d := range models.DaysOfWeek {
		if d == day {
			return i
		}
	}
	return -1
}
