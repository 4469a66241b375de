package parser

import "rozklad-api/models"

// parseFlat розбирає плоский формат: один рядок — одне заняття.
// "Мигалки" тут не обробляються: плоскі рядки вважаються остаточними.
func parseFlat(rows [][]string, header *flatHeader, meta models.ScheduleMetadata) []models.Lesson {
	lessons := make([]models.Lesson, 0, len(rows))

	for _, row := range rows[1:] {
		day, ok := MatchDay(fieldAt(row, header.day))
		if !ok {
			continue
		}
		startTime, ok := NormalizeTime(fieldAt(row, header.startTime))
		if !ok {
			continue
		}
		endTime, ok := NormalizeTime(fieldAt(row, header.endTime))
		if !ok {
			continue
		}

		subject := fieldAt(row, header.subject)
		teacher := fieldAt(row, header.teacher)
		group := fieldAt(row, header.group)
		if subject == "" && teacher == "" && group == "" {
			continue
		}

		lessons = append(lessons, models.Lesson{
			ID:        makeLessonID(day, startTime, group, len(lessons)),
			DayOfWeek: day,
			StartTime: startTime,
			EndTime:   endTime,
			Subject:   subject,
			Teacher:   teacher,
			Classroom: fieldAt(row, header.classroom),
			Group:     group,
			Format:    meta.DefaultFormat,
		})
	}

	return lessons
}
