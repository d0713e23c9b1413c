package export

import (
	"fmt"
	"strings"
	"time"

	"minutes-backend/internal/domains/minutes"
)

// weekdayNames maps time.Weekday (Sunday first) to the single-character
// Korean day name.
var weekdayNames = [7]string{"일", "월", "화", "수", "목", "금", "토"}

// LongDateTime renders the signature-sheet date line, for example
// "2024년 3월 10일(일요일) 12시 00분 - 13시 00분". A date or time range
// that does not parse falls back to the raw values joined by a space.
func LongDateTime(date, timeRange string) string {
	dt, err := time.Parse(minutes.DateLayout, date)
	if err != nil {
		return date + " " + timeRange
	}

	start, end, found := strings.Cut(timeRange, "~")
	if !found {
		return date + " " + timeRange
	}

	return fmt.Sprintf("%d년 %d월 %d일(%s요일) %s - %s",
		dt.Year(), int(dt.Month()), dt.Day(), weekdayNames[dt.Weekday()],
		clockReading(start), clockReading(end))
}

// clockReading turns "14:00" into "14시 00분".
func clockReading(t string) string {
	return strings.Replace(strings.TrimSpace(t), ":", "시 ", 1) + "분"
}

// ShortDateTime renders the tabular date cell, for example
// "24.3.10.(일), 12:00 ~ 13:00". Unparseable input falls back to the
// raw values joined by a comma.
func ShortDateTime(date, timeRange string) string {
	dt, err := time.Parse(minutes.DateLayout, date)
	if err != nil {
		return date + ", " + timeRange
	}

	tr := strings.ReplaceAll(timeRange, " ", "")
	tr = strings.ReplaceAll(tr, "~", " ~ ")
	return fmt.Sprintf("%d.%d.%d.(%s), %s",
		dt.Year()%100, int(dt.Month()), dt.Day(), weekdayNames[dt.Weekday()], tr)
}

// EscapeFormula guards cell text that a spreadsheet application would
// execute as a formula by prefixing it with a quote.
func EscapeFormula(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return s
	}
	switch trimmed[0] {
	case '-', '=', '+':
		return "'" + s
	}
	return s
}

// AttendeeLines converts the comma-separated attendee display text
// into one attendee per line for table cells.
func AttendeeLines(attendeeText string) string {
	out := strings.ReplaceAll(attendeeText, ", ", "\n")
	return strings.ReplaceAll(out, ",", "\n")
}
