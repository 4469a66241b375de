package parser

import (
	"regexp"
	"strings"
)

// Заповнювачі для половинки "мигалки", в якій автор аркуша лишив поле порожнім
const (
	unknownSubject = "Невідомий предмет"
	unknownTeacher = "Невідомий викладач"
)

// lessonVariant — одне заняття, отримане з клітинки аркуша.
// Клітинка-"мигалка" дає два варіанти з різними номерами тижнів.
type lessonVariant struct {
	subject    string
	teacher    string
	classroom  string
	weekNumber int
}

// явне кодування "1 тиждень ... / 2 тиждень ..."
var explicitPairRe = regexp.MustCompile(`(?i)^\s*(?:1|і|i|перший|first)\s*(?:тиждень|тижд\.?|week)\s*[:\-–]?\s*(.*?)\s*/\s*(?:2|іі|ii|другий|second)\s*(?:тиждень|тижд\.?|week)\s*[:\-–]?\s*(.*)$`)

// залишки маркерів тижня всередині тексту
var weekMarkerRe = regexp.MustCompile(`(?i)\(?\s*(?:[12]|і{1,2}|i{1,2}|перший|другий|first|second)\s*(?:тиждень|тижд\.?|week)\s*\)?`)

// одиночний маркер тижня в тексті клітинки
var inlineWeekRe = regexp.MustCompile(`(?i)(?:^|[\s(])([12]|і{1,2}|i{1,2}|перший|другий|first|second)\s*(?:тиждень|тижд\.?|week)`)

// buildVariants розбирає трійку предмет/викладач/аудиторія на варіанти занять.
// Повертає нуль, один або два варіанти; помилок не буває —
// часткові кодування вирішуються політикою, а не відмовою.
func buildVariants(subject, teacher, classroom string) []lessonVariant {
	subjectHalves := splitAlternating(subject)
	teacherHalves := splitAlternating(teacher)
	classroomHalves := splitAlternating(classroom)

	if subjectHalves != nil || teacherHalves != nil || classroomHalves != nil {
		// хоч одне поле розділилось — клітинка кодує два тижні;
		// нерозділені поля дублюються в обидві половинки
		subjects := orBoth(subjectHalves, subject)
		teachers := orBoth(teacherHalves, teacher)
		classrooms := orBoth(classroomHalves, classroom)

		variants := make([]lessonVariant, 0, 2)
		for week := 1; week <= 2; week++ {
			subj := stripWeekMarker(subjects[week-1])
			teach := stripWeekMarker(teachers[week-1])
			room := stripWeekMarker(classrooms[week-1])

			if isBlankValue(subj) && isBlankValue(teach) {
				continue
			}
			if isBlankValue(subj) {
				subj = unknownSubject
			}
			if isBlankValue(teach) {
				teach = unknownTeacher
			}
			if isBlankValue(room) {
				room = "-"
			}
			variants = append(variants, lessonVariant{
				subject:    subj,
				teacher:    teach,
				classroom:  room,
				weekNumber: week,
			})
		}
		return variants
	}

	// розділення нема — лишається хіба одиночний маркер тижня
	week := scanInlineWeek(subject, teacher, classroom)
	variant := lessonVariant{
		subject:    strings.TrimSpace(subject),
		teacher:    strings.TrimSpace(teacher),
		classroom:  strings.TrimSpace(classroom),
		weekNumber: week,
	}
	if week != 0 {
		variant.subject = stripWeekMarker(variant.subject)
		variant.teacher = stripWeekMarker(variant.teacher)
		variant.classroom = stripWeekMarker(variant.classroom)
	}
	return []lessonVariant{variant}
}

// splitAlternating ділить поле на половинки тижнів: спершу за явними
// маркерами, інакше за голою похилою рискою. nil — поле не ділиться.
func splitAlternating(field string) []string {
	if m := explicitPairRe.FindStringSubmatch(field); m != nil {
		return []string{m[1], m[2]}
	}
	if strings.Contains(field, "/") {
		halves := strings.SplitN(field, "/", 2)
		return []string{halves[0], halves[1]}
	}
	return nil
}

func orBoth(halves []string, whole string) []string {
	if halves != nil {
		return halves
	}
	return []string{whole, whole}
}

func stripWeekMarker(s string) string {
	return strings.TrimSpace(weekMarkerRe.ReplaceAllString(s, " "))
}

// isBlankValue — порожній рядок або його рисковані еквіваленти
func isBlankValue(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "-", "–", "—":
		return true
	}
	return false
}

func scanInlineWeek(fields ...string) int {
	for _, field := range fields {
		m := inlineWeekRe.FindStringSubmatch(field)
		if m == nil {
			continue
		}
		switch strings.ToLower(m[1]) {
		case "1", "i", "і", "перший", "first":
			return 1
		case "2", "ii", "іі", "другий", "second":
			return 2
		}
	}
	return 0
}
