package models

// Дні тижня у канонічній формі (неділя не є навчальним днем)
var DaysOfWeek = []string{
	"Понеділок",
	"Вівторок",
	"Середа",
	"Четвер",
	"П'ятниця",
	"Субота",
}

// Формати проведення занять
const (
	FormatOnline  = "онлайн"
	FormatOffline = "офлайн"
)

// Lesson — одне заняття у нормалізованому розкладі.
// Після створення парсером запис не змінюється.
type Lesson struct {
	ID        string `json:"id"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"` // завжди HH:MM
	EndTime   string `json:"endTime"`   // завжди HH:MM
	Subject   string `json:"subject"`
	Teacher   string `json:"teacher"`
	Classroom string `json:"classroom"`
	Group     string `json:"group"`
	// 0 — щотижня, 1 або 2 — заняття лише відповідного тижня
	WeekNumber int `json:"weekNumber,omitempty"`
	// 0 — вся група, 1 або 2 — підгрупа
	SubgroupNumber int    `json:"subgroupNumber,omitempty"`
	Format         string `json:"format,omitempty"`
}

// ScheduleMetadata — метадані, закодовані вручну у шапці аркуша
type ScheduleMetadata struct {
	CurrentWeek   int    `json:"currentWeek,omitempty"` // 1 або 2, 0 — не вказано
	DefaultFormat string `json:"defaultFormat,omitempty"`
	Semester      string `json:"semester,omitempty"`
}

// ParseError — діагностика парсингу; не зупиняє розбір
type ParseError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ParseResult — результат одного виклику парсера.
// Створюється один раз і далі тільки читається.
type ParseResult struct {
	Lessons  []Lesson         `json:"lessons"`
	Errors   []ParseError     `json:"errors"`
	Metadata ScheduleMetadata `json:"metadata"`
}
