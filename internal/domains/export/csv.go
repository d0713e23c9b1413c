package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"minutes-backend/internal/domains/minutes"
)

// reportHeader is the fixed column set the administration office
// expects in the tabular report.
var reportHeader = []string{
	"일시",
	"장소",
	"주제",
	"참석자(3명 이상)",
	"회의 내용(2줄 이상, 구체적으로 작성)",
	"증빙자료",
}

const evidenceCell = "서명부\n첨부"

// reportRow renders one meeting into the report's column order.
func reportRow(rec minutes.Minutes) []string {
	return []string{
		ShortDateTime(rec.Date, rec.TimeRange),
		rec.Place,
		rec.Topic,
		AttendeeLines(rec.AttendeeText),
		EscapeFormula(rec.Content),
		evidenceCell,
	}
}

// RenderCSV writes the tabular report as UTF-8 CSV with a BOM so
// spreadsheet applications open the Korean text correctly.
func RenderCSV(records []minutes.Minutes) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if err := w.Write(reportHeader); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	for _, rec := range records {
		if err := w.Write(reportRow(rec)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}
