package parser

import "strings"

// flatHeader — індекси іменованих колонок плоского формату
type flatHeader struct {
	day       int
	startTime int
	endTime   int
	subject   int
	teacher   int
	group     int
	classroom int
}

// відомі підписи колонок двома мовами; збіг лише точний, без нечіткого пошуку
var flatLabels = map[string]string{
	"день":       "day",
	"day":        "day",
	"початок":    "start",
	"start time": "start",
	"кінець":     "end",
	"end time":   "end",
	"предмет":    "subject",
	"subject":    "subject",
	"викладач":   "teacher",
	"teacher":    "teacher",
	"група":      "group",
	"group":      "group",
	"аудиторія":  "classroom",
	"classroom":  "classroom",
}

// detectFlatHeader перевіряє, чи перший рядок є шапкою плоского формату.
// Усі сім колонок мають бути знайдені, інакше повертається nil
// і парсинг іде вертикальним шляхом.
func detectFlatHeader(fields []string) *flatHeader {
	found := make(map[string]int, 7)
	for i, field := range fields {
		kind, ok := flatLabels[strings.ToLower(strings.TrimSpace(field))]
		if !ok {
			continue
		}
		if _, seen := found[kind]; !seen {
			found[kind] = i
		}
	}
	if len(found) < 7 {
		return nil
	}
	return &flatHeader{
		day:       found["day"],
		startTime: found["start"],
		endTime:   found["end"],
		subject:   found["subject"],
		teacher:   found["teacher"],
		group:     found["group"],
		classroom: found["classroom"],
	}
}
