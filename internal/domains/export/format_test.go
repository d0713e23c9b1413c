package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLongDateTime(t *testing.T) {
	got := LongDateTime("2024-03-10", "12:00 ~ 13:00")
	assert.Equal(t, "2024년 3월 10일(일요일) 12시 00분 - 13시 00분", got)
}

func TestLongDateTimeFallback(t *testing.T) {
	assert.Equal(t, "언젠가 정오쯤", LongDateTime("언젠가", "정오쯤"))
	assert.Equal(t, "2024-03-10 정오쯤", LongDateTime("2024-03-10", "정오쯤"))
}

func TestShortDateTime(t *testing.T) {
	got := ShortDateTime("2024-03-10", "12:00~13:00")
	assert.Equal(t, "24.3.10.(일), 12:00 ~ 13:00", got)

	// Spacing around the separator is normalized either way.
	got = ShortDateTime("2024-12-02", "09:00  ~  10:30")
	assert.Equal(t, "24.12.2.(월), 09:00 ~ 10:30", got)
}

func TestShortDateTimeFallback(t *testing.T) {
	assert.Equal(t, "언젠가, 정오쯤", ShortDateTime("언젠가", "정오쯤"))
}

func TestEscapeFormula(t *testing.T) {
	assert.Equal(t, "'- 논의함", EscapeFormula("- 논의함"))
	assert.Equal(t, "'=SUM(A1)", EscapeFormula("=SUM(A1)"))
	assert.Equal(t, "'+추가", EscapeFormula("+추가"))
	assert.Equal(t, "일반 내용", EscapeFormula("일반 내용"))
	assert.Equal(t, "", EscapeFormula(""))
}

func TestAttendeeLines(t *testing.T) {
	got := AttendeeLines("김철수(컴퓨터공학과), 이영희(전자공학과),박민수(기계공학과)")
	assert.Equal(t, "김철수(컴퓨터공학과)\n이영희(전자공학과)\n박민수(기계공학과)", got)
}
