package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"minutes-backend/internal/domains/minutes"
)

// RenderXLSX writes the tabular report as a styled workbook.
func RenderXLSX(records []minutes.Minutes) ([]byte, error) {
	f := excelize.NewFile()

	sheetName := "회의록"
	f.SetSheetName("Sheet1", sheetName)

	for colIdx, header := range reportHeader {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "F1", headerStyle)
	}

	for i, rec := range records {
		rowNum := i + 2
		for colIdx, value := range reportRow(rec) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowNum)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}
