package parser

import (
	"fmt"
	"strings"

	"rozklad-api/models"
)

// службові слова шапки, які не можуть бути назвою групи
var reservedHeaderWords = map[string]bool{
	"час":       true,
	"time":      true,
	"предмет":   true,
	"subject":   true,
	"викладач":  true,
	"teacher":   true,
	"аудиторія": true,
	"classroom": true,
}

// groupColumn — відображення назви групи на три послідовні колонки.
// Перебудовується при кожній новій шапці груп, ніколи не зливається.
type groupColumn struct {
	name         string
	subjectCol   int
	teacherCol   int
	classroomCol int
}

// verticalParser несе стан розбору вертикального формату.
// Створюється на один виклик парсера і після нього відкидається.
type verticalParser struct {
	groups      []groupColumn
	currentDay  string
	firstDay    string
	isFirstDay  bool
	timeSlots   []TimeRange
	lessonInDay int
	meta        models.ScheduleMetadata
	lessons     []models.Lesson
}

func newVerticalParser(meta models.ScheduleMetadata) *verticalParser {
	return &verticalParser{
		meta:    meta,
		lessons: make([]models.Lesson, 0),
	}
}

// parse проходить рядки зверху вниз, класифікуючи кожен за пріоритетом:
// титул → шапка груп → маркер дня → рядок даних.
func (p *verticalParser) parse(rows [][]string) []models.Lesson {
	for i := 0; i < len(rows); i++ {
		row := rows[i]

		if isTitleRow(row) {
			continue
		}

		if isGroupHeaderRow(row) {
			p.rebuildGroups(row)
			// наступний рядок може бути під-шапкою з підписами колонок
			if i+1 < len(rows) && hasSubjectTeacherLabels(rows[i+1]) {
				i++
			}
			continue
		}

		if day, ok := matchDayRow(row); ok {
			p.setDay(day)
			continue
		}

		if p.currentDay == "" || len(p.groups) == 0 {
			continue
		}

		p.parseDataRow(row)
	}

	return p.lessons
}

func (p *verticalParser) setDay(day string) {
	if p.firstDay == "" {
		p.firstDay = day
		p.isFirstDay = true
	} else if day != p.firstDay {
		// перший день визначає сітку часу; далі слоти не збираються
		p.isFirstDay = false
	}
	p.currentDay = day
	p.lessonInDay = 0
}

// rebuildGroups виводить колонки груп із шапки: кожна непорожня
// неслужбова клітинка після першої відкриває трійку колонок
func (p *verticalParser) rebuildGroups(row []string) {
	groups := make([]groupColumn, 0)
	for i := 1; i < len(row); i++ {
		cell := strings.TrimSpace(row[i])
		if cell == "" || reservedHeaderWords[strings.ToLower(cell)] {
			continue
		}
		groups = append(groups, groupColumn{
			name:         cell,
			subjectCol:   i,
			teacherCol:   i + 1,
			classroomCol: i + 2,
		})
	}
	p.groups = groups
}

func (p *verticalParser) parseDataRow(row []string) {
	timeRange := ParseTimeRange(fieldAt(row, 0))
	if timeRange != nil {
		if p.isFirstDay {
			p.collectTimeSlot(*timeRange)
		}
	} else if !p.isFirstDay && len(p.timeSlots) > 0 && p.rowHasContent(row) {
		// час не вказано: успадковуємо слот першого дня за позицією
		if p.lessonInDay >= len(p.timeSlots) {
			return
		}
		timeRange = &p.timeSlots[p.lessonInDay]
	}

	if timeRange == nil {
		return
	}
	// лічильник рухається і для рядків без жодного заняття,
	// щоб позиції слотів не з'їжджали
	p.lessonInDay++

	for _, group := range p.groups {
		p.emitGroupCell(group, row, *timeRange)
	}
}

func (p *verticalParser) collectTimeSlot(timeRange TimeRange) {
	for _, slot := range p.timeSlots {
		if slot == timeRange {
			return
		}
	}
	p.timeSlots = append(p.timeSlots, timeRange)
}

func (p *verticalParser) rowHasContent(row []string) bool {
	for _, group := range p.groups {
		if fieldAt(row, group.subjectCol) != "" || fieldAt(row, group.teacherCol) != "" {
			return true
		}
	}
	return false
}

func (p *verticalParser) emitGroupCell(group groupColumn, row []string, timeRange TimeRange) {
	subject := fieldAt(row, group.subjectCol)
	teacher := fieldAt(row, group.teacherCol)
	classroom := fieldAt(row, group.classroomCol)

	if subject == "" && teacher == "" && classroom == "" {
		return
	}
	if hasErrorMarker(subject) {
		return
	}
	if subject == "" && teacher == "" {
		return
	}

	for _, variant := range buildVariants(subject, teacher, classroom) {
		p.lessons = append(p.lessons, models.Lesson{
			ID:         makeLessonID(p.currentDay, timeRange.Start, group.name, len(p.lessons)),
			DayOfWeek:  p.currentDay,
			StartTime:  timeRange.Start,
			EndTime:    timeRange.End,
			Subject:    variant.subject,
			Teacher:    variant.teacher,
			Classroom:  variant.classroom,
			Group:      group.name,
			WeekNumber: variant.weekNumber,
			Format:     p.meta.DefaultFormat,
		})
	}
}

// makeLessonID — детермінований ідентифікатор, унікальний у межах
// одного розбору; позиційний, а не за вмістом
func makeLessonID(day, startTime, group string, ordinal int) string {
	return fmt.Sprintf("%s-%s-%s-%d", day, startTime, group, ordinal)
}

func isTitleRow(row []string) bool {
	text := strings.ToLower(strings.Join(row, " "))
	return strings.Contains(text, "розклад") || strings.Contains(text, "schedule")
}

func isGroupHeaderRow(row []string) bool {
	if len(row) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(row[0]))
	if first == "час" || first == "time" {
		return true
	}
	return hasSubjectTeacherLabels(row)
}

func hasSubjectTeacherLabels(row []string) bool {
	text := strings.ToLower(strings.Join(row, " "))
	hasSubject := strings.Contains(text, "предмет") || strings.Contains(text, "subject")
	hasTeacher := strings.Contains(text, "викладач") || strings.Contains(text, "teacher")
	return hasSubject && hasTeacher
}

func matchDayRow(row []string) (string, bool) {
	for _, cell := range row {
		if day, ok := MatchDay(cell); ok {
			return day, true
		}
	}
	return "", false
}

func fieldAt(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func hasErrorMarker(s string) bool {
	upper := strings.ToUpper(s)
	return strings.Contains(upper, "#ERROR") || strings.Contains(upper, "#REF")
}
