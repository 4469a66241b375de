package parser

import "strings"

// SplitIntoRows розбиває текст на рядки таблиці.
// Перенос рядка всередині лапок не розриває рядок, \r відкидається.
func SplitIntoRows(text string) []string {
	var rows []string
	var b strings.Builder
	inQuotes := false

	for _, ch := range text {
		switch ch {
		case '\r':
			// \r\n і \n — обидва завершують рядок
		case '"':
			inQuotes = !inQuotes
			b.WriteRune(ch)
		case '\n':
			if inQuotes {
				b.WriteRune(ch)
			} else {
				rows = append(rows, b.String())
				b.Reset()
			}
		default:
			b.WriteRune(ch)
		}
	}

	// хвіст без завершального переносу
	if b.Len() > 0 {
		rows = append(rows, b.String())
	}

	return rows
}

// сегмент поля: текст у лапках зберігається дослівно,
// текст поза лапками обрізається від пробілів
type fieldSegment struct {
	text   string
	quoted bool
}

// ParseLine розбирає один рядок на поля.
// Кома в лапках не розділяє поля, подвоєна лапка — екранована лапка.
// Незакрита лапка поглинає все до кінця рядка (best-effort, без помилок).
func ParseLine(line string) []string {
	var fields []string
	var segments []fieldSegment
	var b strings.Builder
	inQuotes := false

	flushSegment := func(quoted bool) {
		if b.Len() > 0 {
			segments = append(segments, fieldSegment{text: b.String(), quoted: quoted})
			b.Reset()
		}
	}
	flushField := func() {
		flushSegment(false)
		fields = append(fields, joinSegments(segments))
		segments = segments[:0]
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		if inQuotes {
			if ch == '"' {
				if i+1 < len(runes) && runes[i+1] == '"' {
					b.WriteRune('"')
					i++
					continue
				}
				flushSegment(true)
				inQuotes = false
				continue
			}
			b.WriteRune(ch)
			continue
		}
		switch ch {
		case '"':
			flushSegment(false)
			inQuotes = true
		case ',':
			flushField()
		default:
			b.WriteRune(ch)
		}
	}
	if inQuotes {
		// незакрита лапка: вміст лишається як лапкований сегмент
		flushSegment(true)
	}
	flushField()

	return fields
}

func joinSegments(segments []fieldSegment) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.quoted {
			b.WriteString(seg.text)
		} else {
			b.WriteString(strings.TrimSpace(seg.text))
		}
	}
	return b.String()
}
