package parser

import (
	"strings"

	"rozklad-api/models"
)

// шапка плоского формату; підписи розпізнаються класифікатором шапки,
// тож серіалізований текст розбирається назад плоским шляхом
var serializerHeader = []string{"День", "Початок", "Кінець", "Предмет", "Викладач", "Група", "Аудиторія"}

// SerializeLessons — зворотне відображення: колекція занять → текст
// плоского формату. Номер тижня та формат через плоский шлях не проходять.
func SerializeLessons(lessons []models.Lesson, includeHeader bool) string {
	var b strings.Builder

	if includeHeader {
		writeRow(&b, serializerHeader)
	}
	for _, lesson := range lessons {
		writeRow(&b, []string{
			lesson.DayOfWeek,
			lesson.StartTime,
			lesson.EndTime,
			lesson.Subject,
			lesson.Teacher,
			lesson.Group,
			lesson.Classroom,
		})
	}

	return b.String()
}

func writeRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeField(field))
	}
	b.WriteByte('\n')
}

// escapeField загортає поле в лапки, якщо воно містить роздільник,
// лапку чи перенос рядка; внутрішні лапки подвоюються
func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
