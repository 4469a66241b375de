package services

import (
	"sort"
	"strconv"
	"strings"

	"rozklad-api/models"
	"rozklad-api/parser"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Чисті функції над колекцією занять: фільтрація, списки значень,
// статистика, сортування. Вхідний зріз і його елементи не змінюються.

type slotKey struct {
	day   string
	start string
	group string
}

// FilterLessons застосовує AND-комбінацію заданих предикатів фільтра.
// Порожній фільтр повертає копію списку без змін.
func FilterLessons(lessons []models.Lesson, filter models.LessonFilter) []models.Lesson {
	// тижні, представлені у кожному слоті (день, час, група):
	// потрібно, щоб непарне заняття без пари лишалось видимим
	weeksBySlot := make(map[slotKey]map[int]bool)
	if filter.Week != 0 {
		for _, lesson := range lessons {
			if lesson.WeekNumber == 0 {
				continue
			}
			key := slotKey{lesson.DayOfWeek, lesson.StartTime, lesson.Group}
			if weeksBySlot[key] == nil {
				weeksBySlot[key] = make(map[int]bool)
			}
			weeksBySlot[key][lesson.WeekNumber] = true
		}
	}

	search := strings.ToLower(strings.TrimSpace(filter.Search))

	filtered := make([]models.Lesson, 0, len(lessons))
	for _, lesson := range lessons {
		if filter.Group != "" && lesson.Group != filter.Group {
			continue
		}
		if filter.Teacher != "" && lesson.Teacher != filter.Teacher {
			continue
		}
		if filter.Classroom != "" && lesson.Classroom != filter.Classroom {
			continue
		}
		if filter.Subgroup != 0 && lesson.SubgroupNumber != 0 && lesson.SubgroupNumber != filter.Subgroup {
			continue
		}
		if search != "" && !matchesSearch(lesson, search) {
			continue
		}
		if filter.Week != 0 && lesson.WeekNumber != 0 && lesson.WeekNumber != filter.Week {
			// чужий тиждень ховається лише коли у тому ж слоті
			// є заняття запитаного тижня; непарні лишаються видимими
			key := slotKey{lesson.DayOfWeek, lesson.StartTime, lesson.Group}
			if weeksBySlot[key][filter.Week] {
				continue
			}
		}
		filtered = append(filtered, lesson)
	}

	return filtered
}

func matchesSearch(lesson models.Lesson, search string) bool {
	return strings.Contains(strings.ToLower(lesson.Subject), search) ||
		strings.Contains(strings.ToLower(lesson.Teacher), search) ||
		strings.Contains(strings.ToLower(lesson.Group), search) ||
		strings.Contains(strings.ToLower(lesson.Classroom), search)
}

// ExtractFilterOptions збирає унікальні значення для фільтрів,
// відсортовані за українським порядком сортування
func ExtractFilterOptions(lessons []models.Lesson) models.FilterOptions {
	groups := make(map[string]bool)
	teachers := make(map[string]bool)
	classrooms := make(map[string]bool)

	for _, lesson := range lessons {
		if lesson.Group != "" {
			groups[lesson.Group] = true
		}
		if lesson.Teacher != "" {
			teachers[lesson.Teacher] = true
		}
		if lesson.Classroom != "" {
			classrooms[lesson.Classroom] = true
		}
	}

	return models.FilterOptions{
		Groups:     sortedKeys(groups),
		Teachers:   sortedKeys(teachers),
		Classrooms: sortedKeys(classrooms),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	collate.New(language.Ukrainian).SortStrings(keys)
	return keys
}

// CalculateStatistics рахує зведені показники розкладу
func CalculateStatistics(lessons []models.Lesson) models.ScheduleStatistics {
	groups := make(map[string]bool)
	teachers := make(map[string]bool)
	classrooms := make(map[string]bool)

	for _, lesson := range lessons {
		groups[lesson.Group] = true
		teachers[lesson.Teacher] = true
		classrooms[lesson.Classroom] = true
	}

	return models.ScheduleStatistics{
		TotalLessons:     len(lessons),
		ActiveGroups:     len(groups),
		ActiveTeachers:   len(teachers),
		ActiveClassrooms: len(classrooms),
	}
}

// SortLessons повертає копію списку, стабільно впорядковану за днем
// тижня та часом початку
func SortLessons(lessons []models.Lesson) []models.Lesson {
	sorted := make([]models.Lesson, len(lessons))
	copy(sorted, lessons)

	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := parser.DayIndex(sorted[i].DayOfWeek), parser.DayIndex(sorted[j].DayOfWeek)
		if di != dj {
			return di < dj
		}
		return timeToMinutes(sorted[i].StartTime) < timeToMinutes(sorted[j].StartTime)
	})

	return sorted
}

func timeToMinutes(t string) int {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}
