// Package exporter рендерить нормалізований розклад у календарні формати.
package exporter

import (
	"fmt"
	"io"
	"time"

	"rozklad-api/models"
	"rozklad-api/parser"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS будує iCalendar з колекції занять і пише його у w.
// Дні тижня прив'язуються до дат тижня, що починається з weekStart (понеділок).
func GenerateICS(lessons []models.Lesson, weekStart time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	loc := kyivLocation()

	for _, lesson := range lessons {
		dayIndex := parser.DayIndex(lesson.DayOfWeek)
		if dayIndex < 0 {
			continue
		}
		date := weekStart.AddDate(0, 0, dayIndex)

		startTime, err := parseClock(date, lesson.StartTime, loc)
		if err != nil {
			continue
		}
		endTime, err := parseClock(date, lesson.EndTime, loc)
		if err != nil {
			continue
		}

		event := cal.AddEvent(lesson.ID)
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(endTime)
		event.SetSummary(lesson.Subject)
		event.SetLocation(lesson.Classroom)

		description := fmt.Sprintf("Викладач: %s\nГрупа: %s", lesson.Teacher, lesson.Group)
		if lesson.WeekNumber != 0 {
			description += fmt.Sprintf("\nТиждень: %d", lesson.WeekNumber)
		}
		if lesson.Format != "" {
			description += fmt.Sprintf("\nФормат: %s", lesson.Format)
		}
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}

// WeekStart повертає понеділок тижня, до якого належить t
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

func parseClock(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func kyivLocation() *time.Location {
	if loc, err := time.LoadLocation("Europe/Kyiv"); err == nil {
		return loc
	}
	// старіші бази часових зон знають лише попередню назву
	if loc, err := time.LoadLocation("Europe/Kiev"); err == nil {
		return loc
	}
	return time.FixedZone("EET", 2*60*60)
}
