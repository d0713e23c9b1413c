package export

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/go-pdf/fpdf"

	"minutes-backend/internal/domains/minutes"
	"minutes-backend/pkg/logger"
)

// Signature sheet geometry, in millimeters on A4.
var signColWidths = [6]float64{15, 40, 30, 30, 45, 20}

const (
	signRowHeight = 13.0
	signTableTop  = 90.0
	signTableLeft = 20.0

	// minSignRows pads the table so the printed sheet always has
	// blank lines to sign on.
	minSignRows = 10
)

var signTableHeader = [6]string{"연번", "소속학과명", "직급", "성명", "자필서명\n(도장날인X)", "비고"}

// RenderPDF builds the signature sheet, one A4 page per meeting. The
// Korean font at fontPath is embedded when present; otherwise the
// built-in Helvetica is used and Hangul will not render, matching how
// the sheet degrades on a machine without the font file.
func RenderPDF(records []minutes.Minutes, fontPath string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")

	fontName := "Helvetica"
	if _, err := os.Stat(fontPath); err == nil {
		pdf.AddUTF8Font("Nanum", "", fontPath)
		fontName = "Nanum"
	} else {
		logger.Warn("signature sheet font missing, falling back to Helvetica", err)
	}

	for _, rec := range records {
		renderSignaturePage(pdf, fontName, rec)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return buf.Bytes(), nil
}

func renderSignaturePage(pdf *fpdf.Fpdf, fontName string, rec minutes.Minutes) {
	pdf.AddPage()

	pdf.SetFont(fontName, "", 14)
	pdf.Text(20, 25, "<교수학습방법개선 공동체 운영>")

	pdf.SetFont(fontName, "", 20)
	pdf.SetXY(0, 38)
	pdf.CellFormat(210, 10, "회의참석자 서명부", "", 1, "C", false, 0, "")

	pdf.SetFont(fontName, "", 11)
	pdf.Text(25, 65, "■ 일시: "+LongDateTime(rec.Date, rec.TimeRange))
	pdf.Text(25, 73, "■ 장소: "+rec.Place)

	pdf.SetFont(fontName, "", 10)
	drawSignHeaderRow(pdf)

	attendees := rec.Attendees()

	y := signTableTop + signRowHeight
	for i, person := range attendees {
		drawSignRow(pdf, y, [6]string{strconv.Itoa(i + 1), person.Department, person.Rank, person.Name, "", ""})
		y += signRowHeight
	}
	for i := len(attendees); i < minSignRows; i++ {
		drawSignRow(pdf, y, [6]string{})
		y += signRowHeight
	}
}

func drawSignHeaderRow(pdf *fpdf.Fpdf) {
	pdf.SetFillColor(211, 211, 211)
	pdf.SetXY(signTableLeft, signTableTop)
	for i, text := range signTableHeader {
		if i == 4 {
			// The signature column header is two stacked lines.
			x, y := pdf.GetXY()
			pdf.MultiCell(signColWidths[i], signRowHeight/2, text, "1", "C", true)
			pdf.SetXY(x+signColWidths[i], y)
			continue
		}
		pdf.CellFormat(signColWidths[i], signRowHeight, text, "1", 0, "CM", true, 0, "")
	}
}

func drawSignRow(pdf *fpdf.Fpdf, y float64, cells [6]string) {
	pdf.SetXY(signTableLeft, y)
	for i, text := range cells {
		pdf.CellFormat(signColWidths[i], signRowHeight, text, "1", 0, "CM", false, 0, "")
	}
}
