package services

import (
	"reflect"
	"testing"

	"rozklad-api/models"
)

func sampleLessons() []models.Lesson {
	return []models.Lesson{
		{ID: "1", DayOfWeek: "Вівторок", StartTime: "10:40", EndTime: "12:10", Subject: "Фізика", Teacher: "Петров", Classroom: "202", Group: "КН-22"},
		{ID: "2", DayOfWeek: "Понеділок", StartTime: "09:00", EndTime: "10:30", Subject: "Математика", Teacher: "Іванов", Classroom: "101", Group: "КН-21"},
		{ID: "3", DayOfWeek: "Понеділок", StartTime: "10:40", EndTime: "12:10", Subject: "Алгебра", Teacher: "Сидоренко", Classroom: "103", Group: "КН-21"},
	}
}

func TestFilterLessonsEmptyFilter(t *testing.T) {
	lessons := sampleLessons()
	got := FilterLessons(lessons, models.LessonFilter{})

	if !reflect.DeepEqual(got, lessons) {
		t.Errorf("empty filter must return the same sequence")
	}
	if len(got) != len(lessons) {
		t.Errorf("length changed: %d -> %d", len(lessons), len(got))
	}
}

func TestFilterLessonsAND(t *testing.T) {
	lessons := sampleLessons()
	filter := models.LessonFilter{Group: "КН-21", Teacher: "Іванов"}

	got := FilterLessons(lessons, filter)
	if len(got) != 1 {
		t.Fatalf("expected 1 lesson, got %d", len(got))
	}
	for _, lesson := range got {
		if lesson.Group != filter.Group || lesson.Teacher != filter.Teacher {
			t.Errorf("lesson violates filter: %+v", lesson)
		}
	}
}

func TestFilterLessonsSearch(t *testing.T) {
	got := FilterLessons(sampleLessons(), models.LessonFilter{Search: "фіз"})
	if len(got) != 1 || got[0].Subject != "Фізика" {
		t.Errorf("search: got %+v", got)
	}
}

func TestFilterLessonsWeekSibling(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "1", DayOfWeek: "Понеділок", StartTime: "09:00", Group: "КН-21", Subject: "Математика", WeekNumber: 1},
		{ID: "2", DayOfWeek: "Понеділок", StartTime: "09:00", Group: "КН-21", Subject: "Фізика", WeekNumber: 2},
		{ID: "3", DayOfWeek: "Понеділок", StartTime: "10:40", Group: "КН-21", Subject: "Хімія", WeekNumber: 2},
		{ID: "4", DayOfWeek: "Вівторок", StartTime: "09:00", Group: "КН-21", Subject: "Алгебра"},
	}

	got := FilterLessons(lessons, models.LessonFilter{Week: 1})

	ids := make([]string, 0, len(got))
	for _, lesson := range got {
		ids = append(ids, lesson.ID)
	}

	// пара у слоті: чужий тиждень ховається; непарне заняття другого
	// тижня та заняття без номера тижня лишаються видимими
	want := []string{"1", "3", "4"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("week filter: got %v, want %v", ids, want)
	}
}

func TestFilterLessonsSubgroup(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "1", Subject: "А", SubgroupNumber: 1},
		{ID: "2", Subject: "Б", SubgroupNumber: 2},
		{ID: "3", Subject: "В"},
	}

	got := FilterLessons(lessons, models.LessonFilter{Subgroup: 1})
	if len(got) != 2 {
		t.Fatalf("expected 2 lessons (subgroup 1 and whole-group), got %d", len(got))
	}
	for _, lesson := range got {
		if lesson.SubgroupNumber == 2 {
			t.Errorf("subgroup 2 must be hidden: %+v", lesson)
		}
	}
}

func TestFilterLessonsDoesNotMutate(t *testing.T) {
	lessons := sampleLessons()
	original := make([]models.Lesson, len(lessons))
	copy(original, lessons)

	FilterLessons(lessons, models.LessonFilter{Group: "КН-21"})
	SortLessons(lessons)

	if !reflect.DeepEqual(lessons, original) {
		t.Errorf("input slice was mutated")
	}
}

func TestExtractFilterOptions(t *testing.T) {
	options := ExtractFilterOptions(sampleLessons())

	if !reflect.DeepEqual(options.Groups, []string{"КН-21", "КН-22"}) {
		t.Errorf("groups: %v", options.Groups)
	}
	if len(options.Teachers) != 3 {
		t.Errorf("teachers: %v", options.Teachers)
	}
	if len(options.Classrooms) != 3 {
		t.Errorf("classrooms: %v", options.Classrooms)
	}
}

func TestCalculateStatistics(t *testing.T) {
	lessons := sampleLessons()
	stats := CalculateStatistics(lessons)

	if stats.TotalLessons != len(lessons) {
		t.Errorf("TotalLessons = %d, want %d", stats.TotalLessons, len(lessons))
	}
	if stats.ActiveGroups != 2 {
		t.Errorf("ActiveGroups = %d, want 2", stats.ActiveGroups)
	}
	if stats.ActiveTeachers != 3 {
		t.Errorf("ActiveTeachers = %d, want 3", stats.ActiveTeachers)
	}
	if stats.ActiveClassrooms != 3 {
		t.Errorf("ActiveClassrooms = %d, want 3", stats.ActiveClassrooms)
	}
}

func TestSortLessons(t *testing.T) {
	sorted := SortLessons(sampleLessons())

	ids := make(map[string]bool)
	for i := 1; i < len(sorted); i++ {
		prev, curr := sorted[i-1], sorted[i]
		if dayOrder(prev.DayOfWeek) > dayOrder(curr.DayOfWeek) {
			t.Errorf("day order violated at %d: %s > %s", i, prev.DayOfWeek, curr.DayOfWeek)
		}
		if prev.DayOfWeek == curr.DayOfWeek && timeToMinutes(prev.StartTime) > timeToMinutes(curr.StartTime) {
			t.Errorf("time order violated at %d", i)
		}
	}
	for _, lesson := range sorted {
		ids[lesson.ID] = true
	}
	if len(ids) != len(sorted) {
		t.Errorf("sorting lost or duplicated lessons")
	}

	if sorted[0].ID != "2" {
		t.Errorf("first lesson after sort: %+v", sorted[0])
	}
}

func dayOrder(day string) int {
	for i, d := range models.DaysOfWeek {
		if d == day {
			return i
		}
	}
	return -1
}

func TestTimeToMinutes(t *testing.T) {
	if got := timeToMinutes("09:30"); got != 570 {
		t.Errorf("timeToMinutes(09:30) = %d, want 570", got)
	}
	if got := timeToMinutes("зранку"); got != 0 {
		t.Errorf("timeToMinutes(зранку) = %d, want 0", got)
	}
}
