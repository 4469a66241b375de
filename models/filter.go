package models

// LessonFilter — набір необов'язкових предикатів, що поєднуються через AND.
// Порожнє значення поля означає "не фільтрувати".
type LessonFilter struct {
	Group     string `form:"group" json:"group"`
	Teacher   string `form:"teacher" json:"teacher"`
	Classroom string `form:"classroom" json:"classroom"`
	Search    string `form:"search" json:"search"`
	Week      int    `form:"week" json:"week"`
	Subgroup  int    `form:"subgroup" json:"subgroup"`
}

// FilterOptions — унікальні значення для випадаючих списків фільтрів
type FilterOptions struct {
	Groups     []string `json:"groups"`
	Teachers   []string `json:"teachers"`
	Classrooms []string `json:"classrooms"`
}

// ScheduleStatistics — зведені показники розкладу
type ScheduleStatistics struct {
	TotalLessons     int `json:"totalLessons"`
	ActiveGroups     int `json:"activeGroups"`
	ActiveTeachers   int `json:"activeTeachers"`
	ActiveClassrooms int `json:"activeClassrooms"`
}
