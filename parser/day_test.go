package parser

import (
	"strings"
	"testing"

	"rozklad-api/models"
)

func TestMatchDayAllForms(t *testing.T) {
	for _, canonical := range models.DaysOfWeek {
		forms := []string{
			canonical,
			strings.ToUpper(canonical),
			strings.ToLower(canonical),
			"  " + canonical + "  ",
		}
		for _, form := range forms {
			day, ok := MatchDay(form)
			if !ok {
				t.Errorf("MatchDay(%q): not matched", form)
				continue
			}
			if day != canonical {
				t.Errorf("MatchDay(%q) = %q, want %q", form, day, canonical)
			}
		}
	}
}

func TestMatchDayFridayApostrophes(t *testing.T) {
	for _, form := range []string{"П'ятниця", "П’ятниця", "Пятниця", "п'ятниця"} {
		day, ok := MatchDay(form)
		if !ok || day != "П'ятниця" {
			t.Errorf("MatchDay(%q) = %q, %v; want П'ятниця, true", form, day, ok)
		}
	}
}

func TestMatchDayUnknown(t *testing.T) {
	for _, form := range []string{"", "Неділя", "Monday", "09:00-10:30"} {
		if _, ok := MatchDay(form); ok {
			t.Errorf("MatchDay(%q): unexpected match", form)
		}
	}
}

func TestDayIndex(t *testing.T) {
	if got := DayIndex("Понеділок"); got != 0 {
		t.Errorf("DayIndex(Понеділок) = %d, want 0", got)
	}
	if got := DayIndex("Субота"); got != 5 {
		t.Errorf("DayIndex(Субота) = %d, want 5", got)
	}
	if got := DayIndex("щось"); got != -1 {
		t.Errorf("DayIndex(щось) = %d, want -1", got)
	}
}
